// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func litPoints(img *VerticalLSB) []image.Point {
	var out []image.Point
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.BitAt(x, y) {
				out = append(out, image.Point{x, y})
			}
		}
	}
	return out
}

func sortPoints(p []image.Point) []image.Point {
	sort.Slice(p, func(i, j int) bool {
		if p[i].Y != p[j].Y {
			return p[i].Y < p[j].Y
		}
		return p[i].X < p[j].X
	})
	return p
}

func TestDrawLine(t *testing.T) {
	data := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{"horizontal", 0, 0, 10, 0, nil},
		{"vertical", 0, 0, 0, 10, nil},
		{"diagonal", 0, 0, 5, 5, nil},
		{"point", 7, 9, 7, 9, []image.Point{{7, 9}}},
		{"shallow", 0, 0, 4, 2, []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
		{"steep", 0, 0, 2, 4, []image.Point{{0, 0}, {1, 1}, {1, 2}, {2, 3}, {2, 4}}},
	}
	for i := 0; i <= 10; i++ {
		data[0].want = append(data[0].want, image.Point{i, 0})
		data[1].want = append(data[1].want, image.Point{0, i})
	}
	for i := 0; i <= 5; i++ {
		data[2].want = append(data[2].want, image.Point{i, i})
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
			img.DrawLine(line.x0, line.y0, line.x1, line.y1, On)
			if diff := cmp.Diff(sortPoints(line.want), litPoints(img)); diff != "" {
				t.Fatalf("points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawLine_reversed(t *testing.T) {
	data := [][4]int{{0, 0, 127, 63}, {3, 60, 90, 2}, {10, 10, 10, 50}, {120, 5, 0, 5}}
	for _, l := range data {
		a := NewVerticalLSB(image.Rect(0, 0, 128, 64))
		b := NewVerticalLSB(image.Rect(0, 0, 128, 64))
		a.DrawLine(l[0], l[1], l[2], l[3], On)
		b.DrawLine(l[2], l[3], l[0], l[1], On)
		if diff := cmp.Diff(litPoints(a), litPoints(b)); diff != "" {
			t.Errorf("%v: forward and backward differ (-forward +backward):\n%s", l, diff)
		}
	}
}

func TestDrawLine_off(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 32, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	img.DrawLine(0, 3, 31, 3, Off)
	for x := 0; x < 32; x++ {
		if img.BitAt(x, 3) {
			t.Fatalf("(%d, 3) still on", x)
		}
		if !img.BitAt(x, 2) || !img.BitAt(x, 4) {
			t.Fatalf("neighbours of (%d, 3) cleared", x)
		}
	}
}

func TestDrawHVLine(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 32, 16))
	img.DrawHLine(0, 32, 7, On)
	img.DrawVLine(0, 16, 15, On)
	img.DrawHLine(5, 5, 0, On)
	if got := len(litPoints(img)); got != 32+16-1 {
		t.Fatalf("got %d points, want %d", got, 32+16-1)
	}
}

func TestDrawLine_outOfRange(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 32, 16))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	img.DrawLine(0, 0, 32, 0, On)
}
