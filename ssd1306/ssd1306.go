// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// The SSD1306 is a monochrome OLED controller with 128x64 bits of GDDRAM,
// usually wired over I²C at 0x3C or 0x3D.
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/rackadev/devices/font8x8"
	"github.com/rackadev/devices/image1bit"
)

const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SEGREMAP127         = 0xA1
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETSTARTLINE        = 0x40
)

// TransferKind is the control byte leading every I²C transfer. It tells the
// controller how to interpret the bytes that follow.
type TransferKind byte

// Transfer kinds.
const (
	Command TransferKind = 0x00 // Stream of command bytes
	Data    TransferKind = 0x40 // Stream of GDDRAM bytes
)

func (k TransferKind) String() string {
	switch k {
	case Command:
		return "Command"
	case Data:
		return "Data"
	default:
		return fmt.Sprintf("TransferKind(%#x)", byte(k))
	}
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:     128,
	H:     64,
	Addr:  0x3C,
	Clock: 400 * physic.KiloHertz,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// Addr is the I²C address of the display. 0 selects 0x3C.
	Addr uint16
	// Clock is the bus speed set on Init. Many panels accept more than the
	// nominal 400kHz. 0 leaves the bus speed untouched.
	Clock physic.Frequency
	// Sequential corresponds to the Sequential/Alternative COM pin configuration
	// in the OLED panel hardware. Try toggling this if half the rows appear to be
	// missing on your display. Particularly on 32 pixel height displays.
	Sequential bool
	// SDA and SCL, when set, get their internal pull-up enabled and are switched
	// to their I²C function on Init. Leave nil when the host already muxes the
	// bus, as Linux does.
	SDA gpio.PinIO
	SCL gpio.PinIO
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller.
//
// It allocates the framebuffer and runs Init.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	o := *opts
	if o.Addr == 0 {
		o.Addr = DefaultOpts.Addr
	}
	if o.W < 8 || o.W > 128 || o.W&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", o.W)
	}
	if o.H < 8 || o.H > 64 || o.H&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid height %d", o.H)
	}
	rect := image.Rect(0, 0, o.W, o.H)
	// The leading byte stays Data so Flush sends the frame in a single Tx
	// without copying it.
	frame := make([]byte, 1+o.W*o.H/8)
	frame[0] = byte(Data)
	d := &Dev{
		bus:   b,
		c:     &i2c.Dev{Bus: b, Addr: o.Addr},
		opts:  o,
		rect:  rect,
		frame: frame,
		buf:   &image1bit.VerticalLSB{Pix: frame[1:], Stride: o.W, Rect: rect},
		font:  font8x8.Default(),
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is an open handle to the display controller.
//
// It is not safe for concurrent use; serialize calls when a Dev is shared
// between goroutines.
type Dev struct {
	// Communication
	bus i2c.Bus
	c   conn.Conn

	opts Opts
	rect image.Rectangle

	// frame is the Data control byte followed by the framebuffer. buf.Pix
	// aliases frame[1:].
	frame []byte
	buf   *image1bit.VerticalLSB
	font  *font8x8.Table

	// Device side state, orthogonal to each other.
	powered  bool
	inverted bool
}

func (d *Dev) String() string {
	return fmt.Sprintf("SSD1306.Dev{%s, %s}", d.c, d.rect.Max)
}

// Init configures the bus and the pins, then sends the power-on command
// sequence.
//
// It never touches the framebuffer; call Flush to push it to the panel. It can
// be called again to recover a panel that was power cycled.
func (d *Dev) Init() error {
	if d.opts.Clock != 0 {
		if err := d.bus.SetSpeed(d.opts.Clock); err != nil {
			return fmt.Errorf("ssd1306: set bus speed %s: %w", d.opts.Clock, err)
		}
	}
	if err := configureLine(d.opts.SDA, i2c.SDA); err != nil {
		return err
	}
	if err := configureLine(d.opts.SCL, i2c.SCL); err != nil {
		return err
	}
	if err := d.send(Command, getInitCmd(&d.opts)); err != nil {
		return fmt.Errorf("ssd1306: init: %w", err)
	}
	d.powered = true
	d.inverted = false
	return nil
}

func getInitCmd(opts *Opts) []byte {
	// See page 40.
	hwLayout := byte(0x02)
	if !opts.Sequential {
		hwLayout |= 0x10
	}
	// Page 64 has the full recommended flow.
	return []byte{
		_DISPLAYOFF,                     // Display off
		_SETMULTIPLEX, byte(opts.H - 1), // Set multiplex ratio (number of lines to display)
		_SETDISPLAYOFFSET, 0x00, // Set display offset; 0
		_SETSTARTLINE,         // Start display start line; 0
		_SEGREMAP127,          // Set segment remap; column 127 is SEG0
		_COMSCANDEC,           // Scan from COM[N-1] to COM0
		_SETCOMPINS, hwLayout, // Set COM pins hardware configuration
		_SETCONTRAST, 0xFF, // Set max contrast
		_DISPLAYALLON_RESUME,      // Set display to use GDDRAM content
		_NORMALDISPLAY,            // Set normal display
		_SETDISPLAYCLOCKDIV, 0x80, // Set osc frequency and divide ratio; power on reset value
		_CHARGEPUMP, 0x14, // Enable charge pump regulator; page 62
		_DISPLAYON,        // Display on
		_MEMORYMODE, 0x00, // Set memory addressing mode to horizontal
		_COLUMNADDR, 0, byte(opts.W - 1), // Set column address (Width)
		_PAGEADDR, 0, byte(opts.H/8 - 1), // Set page address (Pages)
	}
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It composes src into the framebuffer then flushes the whole frame. Once
// this function returns, the display is updated.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, image1bit encoding: fast path!
		copy(d.buf.Pix, img.Pix)
	} else {
		draw.Src.Draw(d.buf, r, src, sp)
	}
	return d.Flush()
}

// Write replaces the framebuffer with pixels and flushes it.
//
// The format is unusual as each byte represent 8 vertical pixels at a time.
// The format is horizontal bands of 8 pixels high, as in
// image1bit.VerticalLSB.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.buf.Pix) {
		return 0, fmt.Errorf("ssd1306: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.buf.Pix), len(pixels))
	}
	copy(d.buf.Pix, pixels)
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Flush copies the entire framebuffer to the display in one transfer.
//
// The framebuffer is left untouched, so on failure the panel merely shows
// stale content and Flush can be called again.
func (d *Dev) Flush() error {
	if err := d.c.Tx(d.frame, nil); err != nil {
		return fmt.Errorf("ssd1306: flush: %w", err)
	}
	return nil
}

// Invert the display (black on white vs white on black).
//
// The framebuffer is untouched.
func (d *Dev) Invert(blackOnWhite bool) error {
	b := []byte{_NORMALDISPLAY}
	if blackOnWhite {
		b[0] = _INVERTDISPLAY
	}
	if err := d.send(Command, b); err != nil {
		return fmt.Errorf("ssd1306: invert: %w", err)
	}
	d.inverted = blackOnWhite
	return nil
}

// PowerOff puts the panel to sleep. GDDRAM content is retained.
func (d *Dev) PowerOff() error {
	if err := d.send(Command, []byte{_DISPLAYOFF}); err != nil {
		return fmt.Errorf("ssd1306: power off: %w", err)
	}
	d.powered = false
	return nil
}

// PowerOn wakes the panel up.
func (d *Dev) PowerOn() error {
	if err := d.send(Command, []byte{_DISPLAYON}); err != nil {
		return fmt.Errorf("ssd1306: power on: %w", err)
	}
	d.powered = true
	return nil
}

// Halt implements conn.Resource. It turns off the display.
func (d *Dev) Halt() error {
	return d.PowerOff()
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	if err := d.send(Command, []byte{_SETCONTRAST, level}); err != nil {
		return fmt.Errorf("ssd1306: set contrast: %w", err)
	}
	return nil
}

// Inverted reports whether the last successful Invert call inverted the
// display.
func (d *Dev) Inverted() bool {
	return d.inverted
}

// Powered reports whether the panel is on.
func (d *Dev) Powered() bool {
	return d.powered
}

// Buffer returns the framebuffer. It is only sent to the display by Flush.
func (d *Dev) Buffer() *image1bit.VerticalLSB {
	return d.buf
}

// send writes one transfer made of the kind control byte then payload.
func (d *Dev) send(kind TransferKind, payload []byte) error {
	return d.c.Tx(append([]byte{byte(kind)}, payload...), nil)
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = Command
