// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"

	"github.com/rackadev/devices/image1bit"
)

const addr = 0x3C

// initSeq is the power-on transfer for a 128x64 panel.
var initSeq = []byte{
	0x00,
	0xAE,
	0xA8, 0x3F,
	0xD3, 0x00,
	0x40,
	0xA1,
	0xC8,
	0xDA, 0x12,
	0x81, 0xFF,
	0xA4,
	0xA6,
	0xD5, 0x80,
	0x8D, 0x14,
	0xAF,
	0x20, 0x00,
	0x21, 0x00, 0x7F,
	0x22, 0x00, 0x07,
}

func frame(pix []byte) []byte {
	return append([]byte{0x40}, pix...)
}

// newDev returns a 128x64 Dev on a playback bus expecting the init sequence
// followed by ops.
func newDev(t *testing.T, ops ...i2ctest.IO) (*Dev, *i2ctest.Playback) {
	bus := &i2ctest.Playback{
		Ops:       append([]i2ctest.IO{{Addr: addr, W: initSeq}}, ops...),
		DontPanic: true,
	}
	d, err := NewI2C(bus, &DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	return d, bus
}

func TestNewI2C(t *testing.T) {
	d, bus := newDev(t)
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
	if s := d.String(); s != "SSD1306.Dev{playback(60), (128,64)}" {
		t.Fatal(s)
	}
	if d.Bounds() != image.Rect(0, 0, 128, 64) {
		t.Fatal(d.Bounds())
	}
	if d.ColorModel() != image1bit.BitModel {
		t.Fatal("unexpected color model")
	}
	if len(d.Buffer().Pix) != 1024 {
		t.Fatal(len(d.Buffer().Pix))
	}
	if !d.Powered() || d.Inverted() {
		t.Fatal("expected powered, non inverted display")
	}
}

func TestNewI2C_opts(t *testing.T) {
	data := []struct {
		name string
		opts Opts
		err  string
	}{
		{"width zero", Opts{W: 0, H: 64}, "ssd1306: invalid width 0"},
		{"width not multiple of 8", Opts{W: 100, H: 64}, "ssd1306: invalid width 100"},
		{"width too large", Opts{W: 256, H: 64}, "ssd1306: invalid width 256"},
		{"height too large", Opts{W: 128, H: 128}, "ssd1306: invalid height 128"},
		{"height not multiple of 8", Opts{W: 128, H: 60}, "ssd1306: invalid height 60"},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			bus := &i2ctest.Playback{DontPanic: true}
			_, err := NewI2C(bus, &line.opts)
			if err == nil || err.Error() != line.err {
				t.Fatalf("got %v, want %q", err, line.err)
			}
			if bus.Count != 0 {
				t.Fatal("no transfer expected on invalid options")
			}
		})
	}
}

func TestNewI2C_128x32(t *testing.T) {
	want := []byte{
		0x00, 0xAE, 0xA8, 0x1F, 0xD3, 0x00, 0x40, 0xA1, 0xC8, 0xDA, 0x02, 0x81, 0xFF,
		0xA4, 0xA6, 0xD5, 0x80, 0x8D, 0x14, 0xAF, 0x20, 0x00, 0x21, 0x00, 0x7F, 0x22, 0x00, 0x03,
	}
	bus := &i2ctest.Playback{Ops: []i2ctest.IO{{Addr: 0x3D, W: want}}, DontPanic: true}
	d, err := NewI2C(bus, &Opts{W: 128, H: 32, Addr: 0x3D, Sequential: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
	if len(d.Buffer().Pix) != 512 {
		t.Fatal(len(d.Buffer().Pix))
	}
}

func TestNewI2C_busError(t *testing.T) {
	bus := &i2ctest.Playback{DontPanic: true}
	if _, err := NewI2C(bus, &DefaultOpts); err == nil || !strings.HasPrefix(err.Error(), "ssd1306: init: ") {
		t.Fatalf("unexpected error %v", err)
	}
}

// speedBus records SetSpeed calls and can refuse them.
type speedBus struct {
	i2ctest.Record
	speeds []physic.Frequency
	err    error
}

func (s *speedBus) SetSpeed(f physic.Frequency) error {
	s.speeds = append(s.speeds, f)
	return s.err
}

func TestInit_speed(t *testing.T) {
	bus := &speedBus{}
	if _, err := NewI2C(bus, &DefaultOpts); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]physic.Frequency{400 * physic.KiloHertz}, bus.speeds); diff != "" {
		t.Fatalf("speeds mismatch (-want +got):\n%s", diff)
	}

	bus = &speedBus{err: errors.New("not supported")}
	if _, err := NewI2C(bus, &DefaultOpts); err == nil {
		t.Fatal("expected error")
	}
	if len(bus.Ops) != 0 {
		t.Fatal("no command must be sent when the bus cannot be configured")
	}

	bus = &speedBus{err: errors.New("not supported")}
	opts := DefaultOpts
	opts.Clock = 0
	if _, err := NewI2C(bus, &opts); err != nil {
		t.Fatal(err)
	}
	if len(bus.speeds) != 0 {
		t.Fatal("Clock 0 must leave the bus speed alone")
	}
}

func TestInit_idempotent(t *testing.T) {
	d, bus := newDev(t, i2ctest.IO{Addr: addr, W: initSeq}, i2ctest.IO{Addr: addr, W: initSeq})
	d.WriteString(0, 0, "HI")
	d.SetPixel(100, 50, true)
	before := append([]byte(nil), d.Buffer().Pix...)
	for i := 0; i < 2; i++ {
		if err := d.Init(); err != nil {
			t.Fatal(err)
		}
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, d.Buffer().Pix); diff != "" {
		t.Fatalf("Init touched the framebuffer (-want +got):\n%s", diff)
	}
}

// muxPin is a gpiotest.Pin that can be switched to its I²C function.
type muxPin struct {
	gpiotest.Pin
	fn pin.Func
}

func (m *muxPin) Func() pin.Func {
	return m.fn
}

func (m *muxPin) SupportedFuncs() []pin.Func {
	return []pin.Func{gpio.IN, gpio.OUT, i2c.SDA.Specialize(0, -1), i2c.SCL.Specialize(0, -1)}
}

func (m *muxPin) SetFunc(f pin.Func) error {
	m.fn = f
	return nil
}

func TestInit_pins(t *testing.T) {
	sda := &muxPin{Pin: gpiotest.Pin{N: "GP4", Num: 4}}
	scl := &gpiotest.Pin{N: "GP5", Num: 5}
	bus := &i2ctest.Playback{Ops: []i2ctest.IO{{Addr: addr, W: initSeq}}, DontPanic: true}
	opts := DefaultOpts
	opts.SDA = sda
	opts.SCL = scl
	if _, err := NewI2C(bus, &opts); err != nil {
		t.Fatal(err)
	}
	if sda.Pull() != gpio.PullUp || scl.Pull() != gpio.PullUp {
		t.Fatal("pull-ups not enabled")
	}
	if sda.Func() != "I2C0_SDA" {
		t.Fatalf("SDA function is %q", sda.Func())
	}
}

func TestFlush(t *testing.T) {
	want := make([]byte, 1024)
	want[0] = 0x01
	want[1023] = 0x80
	d, bus := newDev(t, i2ctest.IO{Addr: addr, W: frame(want)})
	d.SetPixel(0, 0, true)
	d.SetPixel(127, 63, true)
	if err := d.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestFlush_retry(t *testing.T) {
	d, bus := newDev(t)
	d.WriteBigString(0, 0, "OK")
	before := append([]byte(nil), d.Buffer().Pix...)
	if err := d.Flush(); err == nil || !strings.HasPrefix(err.Error(), "ssd1306: flush: ") {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := cmp.Diff(before, d.Buffer().Pix); diff != "" {
		t.Fatalf("failed Flush touched the framebuffer (-want +got):\n%s", diff)
	}
	bus.Ops = append(bus.Ops, i2ctest.IO{Addr: addr, W: frame(before)})
	if err := d.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestCommands(t *testing.T) {
	d, bus := newDev(t,
		i2ctest.IO{Addr: addr, W: []byte{0x00, 0xA7}},
		i2ctest.IO{Addr: addr, W: []byte{0x00, 0xAE}},
		i2ctest.IO{Addr: addr, W: []byte{0x00, 0xAF}},
		i2ctest.IO{Addr: addr, W: []byte{0x00, 0xA6}},
		i2ctest.IO{Addr: addr, W: []byte{0x00, 0x81, 0x10}},
		i2ctest.IO{Addr: addr, W: []byte{0x00, 0xAE}},
	)
	d.SetPixel(1, 1, true)
	before := append([]byte(nil), d.Buffer().Pix...)
	if err := d.Invert(true); err != nil {
		t.Fatal(err)
	}
	if !d.Inverted() {
		t.Fatal("expected inverted")
	}
	if err := d.PowerOff(); err != nil {
		t.Fatal(err)
	}
	if d.Powered() || !d.Inverted() {
		t.Fatal("power and invert are independent")
	}
	if err := d.PowerOn(); err != nil {
		t.Fatal(err)
	}
	if err := d.Invert(false); err != nil {
		t.Fatal(err)
	}
	if err := d.SetContrast(0x10); err != nil {
		t.Fatal(err)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if d.Powered() || d.Inverted() {
		t.Fatal("unexpected state")
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, d.Buffer().Pix); diff != "" {
		t.Fatalf("commands touched the framebuffer (-want +got):\n%s", diff)
	}
}

func TestCommands_error(t *testing.T) {
	d, _ := newDev(t)
	if err := d.Invert(true); err == nil {
		t.Fatal("expected error")
	}
	if d.Inverted() {
		t.Fatal("state must not change on failure")
	}
	if err := d.PowerOff(); err == nil {
		t.Fatal("expected error")
	}
	if !d.Powered() {
		t.Fatal("state must not change on failure")
	}
}

func TestWrite(t *testing.T) {
	pix := make([]byte, 1024)
	for i := range pix {
		pix[i] = byte(i)
	}
	d, bus := newDev(t, i2ctest.IO{Addr: addr, W: frame(pix)})
	if _, err := d.Write(pix[:10]); err == nil {
		t.Fatal("expected length error")
	}
	if n, err := d.Write(pix); n != 1024 || err != nil {
		t.Fatal(n, err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDraw(t *testing.T) {
	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
	src.DrawLine(0, 0, 127, 63, image1bit.On)
	partial := image.NewGray(image.Rect(0, 0, 128, 64))
	partial.Pix[0] = 0xFF
	// Only the top left 2x2 square is composed: (0, 0) stays on and (1, 1)
	// is turned off, the rest of the diagonal is kept.
	want := append([]byte(nil), src.Pix...)
	want[1] &^= 0x02
	d, bus := newDev(t, i2ctest.IO{Addr: addr, W: frame(src.Pix)}, i2ctest.IO{Addr: addr, W: frame(want)})
	if err := d.Draw(d.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if err := d.Draw(image.Rect(0, 0, 2, 2), partial, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestTransferKind(t *testing.T) {
	if Command.String() != "Command" || Data.String() != "Data" || TransferKind(1).String() != "TransferKind(0x1)" {
		t.Fatal("unexpected String()")
	}
}
