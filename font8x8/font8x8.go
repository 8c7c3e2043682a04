// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font8x8 is a tiny 8x8 bitmap font covering A-Z and 0-9 laid out for
// page organized monochrome displays.
//
// Every glyph is 8 column bytes. The raw table is stored with bit 7 at the top
// of the glyph; Table holds the same glyphs reversed so that bit 0 is the top
// row, matching the framebuffer layout of image1bit.
package font8x8

import "unicode"

// Width and Height of a glyph in pixels.
const (
	Width  = 8
	Height = 8
)

// NumGlyphs is the number of glyphs in the font, the blank glyph included.
const NumGlyphs = 37

// Index returns the glyph index of r.
//
// Letters are case insensitive and map to 1-26, digits map to 27-36.
// Everything else maps to 0, the blank glyph.
func Index(r rune) int {
	r = unicode.ToUpper(r)
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 1
	case r >= '0' && r <= '9':
		return int(r-'0') + 27
	default:
		return 0
	}
}

// Table is the font with every column byte reversed, bit 0 at the top.
//
// It is immutable once built.
type Table struct {
	glyphs [NumGlyphs][Width]byte
}

// New builds the reversed table from the raw font.
func New() *Table {
	t := &Table{}
	for i := range t.glyphs {
		for c := 0; c < Width; c++ {
			t.glyphs[i][c] = Reverse(raw[i*Width+c])
		}
	}
	return t
}

// Default returns the table shared by every display in the process.
//
// It is built at package initialization so it is never observed half built.
func Default() *Table {
	return defaultTable
}

// Glyph returns the columns of the glyph for r, bit 0 being the top row.
func (t *Table) Glyph(r rune) [Width]byte {
	return t.glyphs[Index(r)]
}

// GlyphAt returns the columns of glyph number i.
func (t *Table) GlyphAt(i int) [Width]byte {
	return t.glyphs[i]
}

// Reverse reverses the bit order of b.
func Reverse(b byte) byte {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// Expand doubles every bit of b: bit i of b lands on bits 2i and 2i+1 of the
// result. The low byte covers the top half of a doubled column, the high byte
// the bottom half.
func Expand(b byte) uint16 {
	var w uint16
	for i := 7; i >= 0; i-- {
		t := uint16(b) & (1 << uint(i))
		w |= t << uint(i)
		w |= t << uint(i+1)
	}
	return w
}

var defaultTable = New()
