// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Bit implements a 1 bit color.
type Bit bool

// Possible bitness.
const (
	On  = Bit(true)
	Off = Bit(false)
)

// RGBA returns either all white or all black.
//
// Technically the monochrome display could be colored but this information is
// unavailable here.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel is the color Model for 1 bit color.
var BitModel = color.ModelFunc(convert)

// VerticalLSB is a packed 1 bit image, bands of 8 pixels high, least
// significant bit at the top.
type VerticalLSB struct {
	// Pix holds the image's pixels, as vertically LSB-first packed bitmap. It
	// can be passed directly to the controller in horizontal addressing mode.
	Pix []byte
	// Stride is the number of bytes per page, that is the width.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized VerticalLSB instance.
//
// The height is rounded up to a whole page.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w := r.Dx()
	pages := (r.Dy() + 7) / 8
	return &VerticalLSB{Pix: make([]byte, pages*w), Stride: w, Rect: r}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
//
// Outside the bounds it returns Off.
func (i *VerticalLSB) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Off
	}
	return i.BitAt(x, y)
}

// Set implements draw.Image.
//
// Outside the bounds it is a no-op, as for the standard library images.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	i.SetBit(x, y, convertBit(c))
}

// BitAt returns the pixel at x, y.
//
// It panics if the pixel is outside the image.
func (i *VerticalLSB) BitAt(x, y int) Bit {
	offset, mask := i.bitOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// SetBit sets or clears exactly one pixel.
//
// It panics if the pixel is outside the image; wrapping around would silently
// corrupt another byte of the buffer.
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	offset, mask := i.bitOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// Clear turns off every pixel.
func (i *VerticalLSB) Clear() {
	for j := range i.Pix {
		i.Pix[j] = 0
	}
}

// Opaque implements the optional image.Image opacity check. A 1 bit image is
// always opaque.
func (i *VerticalLSB) Opaque() bool {
	return true
}

// PageOffset returns the offset in Pix of column x of the page holding row y.
//
// Rows are quantized down to the page boundary.
func (i *VerticalLSB) PageOffset(x, y int) int {
	return ((y-i.Rect.Min.Y)/8)*i.Stride + x - i.Rect.Min.X
}

func (i *VerticalLSB) bitOffset(x, y int) (int, byte) {
	if !(image.Point{x, y}.In(i.Rect)) {
		panic(fmt.Sprintf("image1bit: pixel (%d, %d) outside %s", x, y, i.Rect))
	}
	return i.PageOffset(x, y), 1 << uint((y-i.Rect.Min.Y)&7)
}

func convert(c color.Color) color.Color {
	return convertBit(c)
}

// convertBit lights a pixel when any channel is at least at half intensity.
func convertBit(c color.Color) Bit {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	return Bit((r | g | b) >= 0x8000)
}

var _ draw.Image = &VerticalLSB{}
var _ color.Color = On
