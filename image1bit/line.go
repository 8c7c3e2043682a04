// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

// DrawLine draws a line from (x0, y0) to (x1, y1), both included, using
// integer Bresenham stepping.
//
// Both end points must be inside the image; SetBit panics otherwise. Drawing
// from a point to itself plots that single point.
func (i *VerticalLSB) DrawLine(x0, y0, x1, y1 int, b Bit) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		i.SetBit(x0, y0, b)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawHLine draws a horizontal line on row y from x0 included to x1 excluded.
func (i *VerticalLSB) DrawHLine(x0, x1, y int, b Bit) {
	if x1 <= x0 {
		return
	}
	i.DrawLine(x0, y, x1-1, y, b)
}

// DrawVLine draws a vertical line on column x from y0 included to y1 excluded.
func (i *VerticalLSB) DrawVLine(y0, y1, x int, b Bit) {
	if y1 <= y0 {
		return
	}
	i.DrawLine(x, y0, x, y1-1, b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
