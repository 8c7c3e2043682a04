// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import "fmt"

// Addressing modes, page 34.
const (
	horizontal = 0
	vertical   = 1
	paged      = 2
)

// reset puts the controller in its power on reset state.
func (d *Dev) reset() {
	d.mode = paged
	d.colStart, d.colEnd = 0, d.w-1
	d.pageStart, d.pageEnd = 0, len(d.ram)/d.w-1
	d.col, d.page = 0, 0
	d.on = false
	d.inverted = false
	d.contrast = 0x7F
	d.multiplex = 64
}

// args returns the number of parameter bytes following command c.
func args(c byte) (int, bool) {
	switch {
	case c == 0x20, c == 0x81, c == 0x8D, c == 0xA8, c == 0xD3, c == 0xD5,
		c == 0xD9, c == 0xDA, c == 0xDB:
		return 1, true
	case c == 0x21, c == 0x22:
		return 2, true
	case c <= 0x1F, c == 0x2E, c == 0x2F, c >= 0x40 && c <= 0x7F,
		c == 0xA0, c == 0xA1, c >= 0xA4 && c <= 0xA7, c == 0xAE, c == 0xAF,
		c >= 0xB0 && c <= 0xB7, c == 0xC0, c == 0xC8, c == 0xE3:
		return 0, true
	}
	return 0, false
}

// command decodes a command stream. Commands before a malformed one are
// applied, as the controller would.
func (d *Dev) command(s []byte) error {
	for len(s) != 0 {
		c := s[0]
		n, ok := args(c)
		if !ok {
			return fmt.Errorf("screen2d: unknown command %#x", c)
		}
		if len(s) < 1+n {
			return fmt.Errorf("screen2d: command %#x needs %d parameters, got %d", c, n, len(s)-1)
		}
		p := s[1 : 1+n]
		s = s[1+n:]
		switch {
		case c == 0x20:
			if p[0] > paged {
				return fmt.Errorf("screen2d: invalid addressing mode %d", p[0])
			}
			d.mode = p[0]
		case c == 0x21:
			d.colStart, d.colEnd = clamp(int(p[0]), d.w), clamp(int(p[1]), d.w)
			d.col = d.colStart
		case c == 0x22:
			pages := len(d.ram) / d.w
			d.pageStart, d.pageEnd = clamp(int(p[0]), pages), clamp(int(p[1]), pages)
			d.page = d.pageStart
		case c == 0x81:
			d.contrast = p[0]
		case c == 0xA8:
			d.multiplex = int(p[0]&0x3F) + 1
		case c == 0xA6:
			d.inverted = false
		case c == 0xA7:
			d.inverted = true
		case c == 0xAE:
			d.on = false
		case c == 0xAF:
			d.on = true
		case c <= 0x0F:
			d.col = d.col&0xF0 | int(c)
		case c <= 0x1F:
			d.col = d.col&0x0F | int(c&0x0F)<<4
		case c >= 0xB0 && c <= 0xB7:
			d.page = clamp(int(c&0x07), len(d.ram)/d.w)
		}
	}
	return nil
}

// data writes s to the GDDRAM, advancing the pointers according to the
// addressing mode.
func (d *Dev) data(s []byte) {
	for _, b := range s {
		if d.col < d.w && d.page < len(d.ram)/d.w {
			d.ram[d.page*d.w+d.col] = b
		}
		switch d.mode {
		case horizontal:
			if d.col++; d.col > d.colEnd {
				d.col = d.colStart
				if d.page++; d.page > d.pageEnd {
					d.page = d.pageStart
				}
			}
		case vertical:
			if d.page++; d.page > d.pageEnd {
				d.page = d.pageStart
				if d.col++; d.col > d.colEnd {
					d.col = d.colStart
				}
			}
		default:
			if d.col++; d.col >= d.w {
				d.col = 0
			}
		}
	}
}

func clamp(v, n int) int {
	if v >= n {
		return n - 1
	}
	return v
}
