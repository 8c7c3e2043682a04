// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"github.com/rackadev/devices/font8x8"
	"github.com/rackadev/devices/image1bit"
)

// Drawing functions only touch the framebuffer. Nothing reaches the panel
// until Flush, so a frame built from several calls is never seen half drawn.

// Clear turns off every pixel of the framebuffer.
func (d *Dev) Clear() {
	d.buf.Clear()
}

// SetPixel sets or clears one pixel.
//
// It panics if x, y is outside the display.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.buf.SetBit(x, y, image1bit.Bit(on))
}

// Pixel reports whether the pixel at x, y is on in the framebuffer.
func (d *Dev) Pixel(x, y int) bool {
	return bool(d.buf.BitAt(x, y))
}

// DrawLine draws a line between two points, both included.
//
// It panics if an end point is outside the display.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, on bool) {
	d.buf.DrawLine(x0, y0, x1, y1, image1bit.Bit(on))
}

// WriteChar draws an 8x8 glyph with its top left corner at x, y.
//
// y is rounded down to a multiple of 8: glyphs are only drawn on page
// boundaries. Nothing is drawn if the glyph would not fit entirely.
// Characters missing from the font render as a blank cell.
func (d *Dev) WriteChar(x, y int, r rune) {
	if !d.fits(x, y, font8x8.Width) {
		return
	}
	g := d.font.Glyph(r)
	off := d.buf.PageOffset(x, y)
	copy(d.buf.Pix[off:off+font8x8.Width], g[:])
}

// WriteBigChar draws a glyph scaled 2x, 16x16 pixels, with its top left corner
// at x, y.
//
// The same placement rules as WriteChar apply.
func (d *Dev) WriteBigChar(x, y int, r rune) {
	if !d.fits(x, y, 2*font8x8.Width) {
		return
	}
	g := d.font.Glyph(r)
	off := d.buf.PageOffset(x, y)
	s := d.buf.Stride
	for _, col := range g {
		w := font8x8.Expand(col)
		top, bottom := byte(w), byte(w>>8)
		d.buf.Pix[off] = top
		d.buf.Pix[off+1] = top
		d.buf.Pix[off+s] = bottom
		d.buf.Pix[off+s+1] = bottom
		off += 2
	}
}

// WriteString draws s left to right with WriteChar, 8 pixels per character.
//
// Only the origin is checked: if the first character does not fit nothing is
// drawn, otherwise characters running past the right edge are dropped.
func (d *Dev) WriteString(x, y int, s string) {
	if !d.fits(x, y, font8x8.Width) {
		return
	}
	for _, r := range s {
		d.WriteChar(x, y, r)
		x += font8x8.Width
	}
}

// WriteBigString draws s left to right with WriteBigChar, 16 pixels per
// character.
//
// The same clipping rule as WriteString applies.
func (d *Dev) WriteBigString(x, y int, s string) {
	if !d.fits(x, y, 2*font8x8.Width) {
		return
	}
	for _, r := range s {
		d.WriteBigChar(x, y, r)
		x += 2 * font8x8.Width
	}
}

// fits reports whether a size x size cell at x, y is inside the display.
func (d *Dev) fits(x, y, size int) bool {
	return x >= 0 && y >= 0 && x <= d.rect.Dx()-size && y <= d.rect.Dy()-size
}
