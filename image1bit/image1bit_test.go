// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewVerticalLSB(t *testing.T) {
	data := []struct {
		r      image.Rectangle
		length int
	}{
		{image.Rect(0, 0, 128, 64), 1024},
		{image.Rect(0, 0, 128, 32), 512},
		{image.Rect(0, 0, 64, 48), 384},
		{image.Rect(0, 0, 8, 1), 8},
	}
	for _, line := range data {
		img := NewVerticalLSB(line.r)
		if len(img.Pix) != line.length {
			t.Errorf("%s: len(Pix) = %d, want %d", line.r, len(img.Pix), line.length)
		}
		if img.Stride != line.r.Dx() {
			t.Errorf("%s: Stride = %d, want %d", line.r, img.Stride, line.r.Dx())
		}
	}
}

func TestSetBit_roundTrip(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			img.SetBit(x, y, On)
			if img.BitAt(x, y) != On {
				t.Fatalf("(%d, %d) not set", x, y)
			}
			img.SetBit(x, y, Off)
			if img.BitAt(x, y) != Off {
				t.Fatalf("(%d, %d) not cleared", x, y)
			}
		}
	}
}

func TestSetBit_layout(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
	img.SetBit(5, 0, On)
	img.SetBit(5, 13, On)
	img.SetBit(127, 63, On)
	want := make([]byte, 1024)
	want[5] = 0x01
	want[128+5] = 0x20
	want[7*128+127] = 0x80
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Fatalf("Pix mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBit_isolated(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xA5
	}
	before := append([]byte(nil), img.Pix...)
	img.SetBit(3, 9, On)
	img.SetBit(3, 8, Off)
	for i := range img.Pix {
		if i == 16+3 {
			continue
		}
		if img.Pix[i] != before[i] {
			t.Fatalf("byte %d changed: %#x -> %#x", i, before[i], img.Pix[i])
		}
	}
	// 0xA5 = 1010_0101: bit 0 cleared, bit 1 set, other bits untouched.
	if got := img.Pix[16+3]; got != 0xA6 {
		t.Fatalf("got %#x, want 0xa6", got)
	}
}

func TestSetBit_outOfRange(t *testing.T) {
	data := []image.Point{{-1, 0}, {0, -1}, {128, 0}, {0, 64}, {200, 200}}
	for _, p := range data {
		t.Run(p.String(), func(t *testing.T) {
			img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
				if diff := cmp.Diff(make([]byte, 1024), img.Pix); diff != "" {
					t.Fatalf("buffer corrupted (-want +got):\n%s", diff)
				}
			}()
			img.SetBit(p.X, p.Y, On)
		})
	}
}

func TestClear(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	img.Clear()
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if img.BitAt(x, y) {
				t.Fatalf("(%d, %d) still on", x, y)
			}
		}
	}
}

func TestImageInterface(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 8))
	draw.Draw(img, image.Rect(2, 2, 4, 4), &image.Uniform{color.White}, image.Point{}, draw.Src)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			want := Bit(x >= 2 && x < 4 && y >= 2 && y < 4)
			if got := img.At(x, y); got != want {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	// Lenient outside bounds.
	img.Set(100, 100, On)
	if img.At(100, 100) != Off {
		t.Fatal("At outside bounds must be Off")
	}
	if img.ColorModel().Convert(color.Gray{0x90}) != On {
		t.Fatal("light gray must convert to On")
	}
	if img.ColorModel().Convert(color.Gray{0x10}) != Off {
		t.Fatal("dark gray must convert to Off")
	}
}

func TestBit(t *testing.T) {
	if On.String() != "On" || Off.String() != "Off" {
		t.Fatal("unexpected String()")
	}
	if r, g, b, a := On.RGBA(); r != 65535 || g != 65535 || b != 65535 || a != 65535 {
		t.Fatal("On must be white")
	}
	if r, _, _, a := Off.RGBA(); r != 0 || a != 65535 {
		t.Fatal("Off must be opaque black")
	}
}
