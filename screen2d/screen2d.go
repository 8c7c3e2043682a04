// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d emulates a SSD1306 OLED panel sitting on an I²C bus and
// renders its GDDRAM to the terminal using ANSI color codes.
//
// Useful while you are waiting for your super nice OLED panel to come by mail,
// and to check the exact byte stream a driver sends.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/rackadev/devices/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	W, H int
	// Addr is the address the emulated controller answers to. 0 selects 0x3C.
	Addr uint16
	// Out receives Render output. Defaults to stdout.
	Out io.Writer
	// Plain renders with Unicode half blocks and no color codes. It is forced
	// when Out is nil and stdout is not a terminal.
	Plain bool
	// Lit is the color of a lit pixel. Defaults to a pale blue.
	Lit     color.Color
	Palette *ansi256.Palette

	_ struct{}
}

// ErrNack is returned for transfers to an address the emulator doesn't own.
var ErrNack = errors.New("screen2d: address not acknowledged")

// Dev is an emulated SSD1306 controller. It implements i2c.Bus.
type Dev struct {
	addr    uint16
	w, h    int
	out     io.Writer
	plain   bool
	lit     color.NRGBA
	palette ansi256.Palette

	mu sync.Mutex
	// Emulated GDDRAM, same layout as image1bit.VerticalLSB.
	ram       []byte
	mode      byte
	colStart  int
	colEnd    int
	pageStart int
	pageEnd   int
	col       int
	page      int
	on        bool
	inverted  bool
	contrast  byte
	multiplex int
	speed     physic.Frequency
	commands  [][]byte
	failNext  error
	frames    int

	buf      bytes.Buffer
	rendered int
}

// New returns an emulated panel.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		addr:    opts.Addr,
		w:       opts.W,
		h:       opts.H,
		out:     opts.Out,
		plain:   opts.Plain,
		palette: *p,
		ram:     make([]byte, opts.W*((opts.H+7)/8)),
	}
	if d.addr == 0 {
		d.addr = 0x3C
	}
	d.lit = color.NRGBA{0x9F, 0xD7, 0xFF, 0xFF}
	if opts.Lit != nil {
		d.lit = color.NRGBAModel.Convert(opts.Lit).(color.NRGBA)
	}
	if d.out == nil {
		d.out = colorable.NewColorableStdout()
		if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			d.plain = true
		}
	}
	d.reset()
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%#x, %dx%d}", d.addr, d.w, d.h)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	if d.plain {
		return nil
	}
	_, err := d.out.Write([]byte("\033[0m\n"))
	return err
}

// Tx implements i2c.Bus.
//
// Writes must start with a control byte: 0x00 for commands, 0x40 for GDDRAM
// data. A read returns the status byte, bit 6 set when the display is off.
func (d *Dev) Tx(addr uint16, w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failNext; err != nil {
		d.failNext = nil
		return err
	}
	if addr != d.addr {
		return fmt.Errorf("%w: %#x", ErrNack, addr)
	}
	if len(r) != 0 {
		r[0] = 0x06
		if !d.on {
			r[0] |= 0x40
		}
		for i := 1; i < len(r); i++ {
			r[i] = 0
		}
	}
	if len(w) == 0 {
		return nil
	}
	switch w[0] {
	case 0x00:
		d.commands = append(d.commands, append([]byte(nil), w[1:]...))
		return d.command(w[1:])
	case 0x40:
		d.data(w[1:])
		d.frames++
		return nil
	default:
		return fmt.Errorf("screen2d: unsupported control byte %#x", w[0])
	}
}

// SetSpeed implements i2c.Bus.
func (d *Dev) SetSpeed(f physic.Frequency) error {
	if f > 3400*physic.KiloHertz {
		return fmt.Errorf("screen2d: invalid speed %s", f)
	}
	d.mu.Lock()
	d.speed = f
	d.mu.Unlock()
	return nil
}

// FailNext makes the next Tx return err, to emulate a NACK or a bus fault.
func (d *Dev) FailNext(err error) {
	d.mu.Lock()
	d.failNext = err
	d.mu.Unlock()
}

// Image returns a copy of the GDDRAM.
func (d *Dev) Image() *image1bit.VerticalLSB {
	d.mu.Lock()
	defer d.mu.Unlock()
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, d.w, d.h))
	copy(img.Pix, d.ram)
	return img
}

// On reports whether the display is on.
func (d *Dev) On() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.on
}

// Inverted reports whether the display is inverted.
func (d *Dev) Inverted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inverted
}

// Contrast returns the current contrast level.
func (d *Dev) Contrast() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contrast
}

// Multiplex returns the number of lines the controller scans.
func (d *Dev) Multiplex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.multiplex
}

// Speed returns the last bus speed set.
func (d *Dev) Speed() physic.Frequency {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.speed
}

// Commands returns every command stream received, control byte excluded.
func (d *Dev) Commands() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]byte, len(d.commands))
	copy(out, d.commands)
	return out
}

// Frames returns the number of data transfers received.
func (d *Dev) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

var _ i2c.Bus = &Dev{}
var _ fmt.Stringer = &Dev{}
