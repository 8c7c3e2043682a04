// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"fmt"
	"image/color"
	"io"
)

// Render draws the panel as currently seen on the glass.
//
// In color mode each pixel is one block of the palette and the previous
// render is overwritten in place. In plain mode two rows of pixels share one
// line of half blocks.
func (d *Dev) Render() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	if d.plain {
		d.renderPlain()
	} else {
		d.renderColor()
	}
	_, err := d.buf.WriteTo(d.out)
	return err
}

// litAt reports whether the pixel is lit on the glass, taking power and
// inversion into account.
func (d *Dev) litAt(x, y int) bool {
	if !d.on {
		return false
	}
	on := d.ram[(y/8)*d.w+x]&(1<<uint(y&7)) != 0
	return on != d.inverted
}

func (d *Dev) renderColor() {
	if d.rendered != 0 {
		// Move back to the top of the previous frame.
		fmt.Fprintf(&d.buf, "\033[%dA", d.rendered)
	}
	off := color.NRGBA{0, 0, 0, 255}
	for y := 0; y < d.h; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.w; x++ {
			c := off
			if d.litAt(x, y) {
				c = d.lit
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.rendered = d.h
}

func (d *Dev) renderPlain() {
	for y := 0; y < d.h; y += 2 {
		for x := 0; x < d.w; x++ {
			top := d.litAt(x, y)
			bottom := y+1 < d.h && d.litAt(x, y+1)
			switch {
			case top && bottom:
				_, _ = d.buf.WriteString("█")
			case top:
				_, _ = d.buf.WriteString("▀")
			case bottom:
				_, _ = d.buf.WriteString("▄")
			default:
				_ = d.buf.WriteByte(' ')
			}
		}
		_ = d.buf.WriteByte('\n')
	}
	_ = d.buf.WriteByte('\n')
}
