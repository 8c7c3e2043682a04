// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package snapshot renders a 1 bit framebuffer as it would look on an OLED
// panel, for documentation and bug reports.
package snapshot

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rackadev/devices/image1bit"
)

// Options controls the rendering.
type Options struct {
	// Scale is the size in pixels of one panel pixel. Defaults to 4.
	Scale int
	// Caption is printed under the panel when not empty.
	Caption string
	// Inverted renders the frame as the controller shows it when inverted.
	Inverted bool
	// Lit is the color of a lit pixel. Defaults to a pale blue.
	Lit color.Color
}

const captionHeight = 24

var (
	background = color.NRGBA{0x10, 0x10, 0x14, 0xFF}
	defaultLit = color.NRGBA{0x9F, 0xD7, 0xFF, 0xFF}
)

// Render draws img scaled up, each lit pixel as a rounded dot.
func Render(img *image1bit.VerticalLSB, opts *Options) (image.Image, error) {
	if img == nil {
		return nil, errors.New("snapshot: nil image")
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 4
	}
	lit := opts.Lit
	if lit == nil {
		lit = defaultLit
	}
	r := img.Bounds()
	h := r.Dy() * scale
	if opts.Caption != "" {
		h += captionHeight
	}
	dc := gg.NewContext(r.Dx()*scale, h)
	dc.SetColor(background)
	dc.Clear()

	s := float64(scale)
	radius := s / 4
	dc.SetColor(lit)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if bool(img.BitAt(x, y)) == opts.Inverted {
				continue
			}
			px := float64(x-r.Min.X) * s
			py := float64(y-r.Min.Y) * s
			dc.DrawRoundedRectangle(px+0.5, py+0.5, s-1, s-1, radius)
		}
	}
	dc.Fill()

	if opts.Caption != "" {
		face, err := captionFace()
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(opts.Caption, float64(dc.Width())/2, float64(r.Dy()*scale)+captionHeight/2, 0.5, 0.35)
	}
	return dc.Image(), nil
}

// SavePNG renders img and writes it as a PNG file.
func SavePNG(path string, img *image1bit.VerticalLSB, opts *Options) error {
	out, err := Render(img, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, out)
}

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func captionFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			faceErr = err
			return
		}
		face = truetype.NewFace(f, &truetype.Options{Size: 14})
	})
	return face, faceErr
}
