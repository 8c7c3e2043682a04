// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/go-errors/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/rackadev/devices/internal/config"
	"github.com/rackadev/devices/internal/log"
	"github.com/rackadev/devices/preview"
	"github.com/rackadev/devices/screen2d"
	"github.com/rackadev/devices/ssd1306"
)

// panel is a display plus its mirrors: the terminal when emulated and the
// browser preview when enabled.
type panel struct {
	*ssd1306.Dev
	emu  *screen2d.Dev
	sink *preview.Sink
	bus  i2c.BusCloser
}

// openPanel opens the hardware panel described by c, or an emulated one
// printing to out when c.Emulate is set. A nil out selects stdout.
func openPanel(c *config.Config, out io.Writer) (*panel, error) {
	opts := ssd1306.Opts{
		W:     c.Width,
		H:     c.Height,
		Addr:  c.Addr,
		Clock: physic.Frequency(c.ClockKHz) * physic.KiloHertz,
	}
	p := &panel{}
	var bus i2c.Bus
	if c.Emulate {
		p.emu = screen2d.New(&screen2d.Opts{W: c.Width, H: c.Height, Addr: c.Addr, Out: out})
		bus = p.emu
	} else {
		if _, err := host.Init(); err != nil {
			return nil, errors.Wrap(err, 0)
		}
		b, err := i2creg.Open(c.Bus)
		if err != nil {
			return nil, errors.Wrap(err, 0)
		}
		p.bus = b
		bus = b
		if opts.SDA, err = pinByName(c.SDA); err != nil {
			b.Close()
			return nil, err
		}
		if opts.SCL, err = pinByName(c.SCL); err != nil {
			b.Close()
			return nil, err
		}
	}
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		if p.bus != nil {
			p.bus.Close()
		}
		return nil, errors.Wrap(err, 0)
	}
	p.Dev = dev
	log.Info("display ready", "dev", dev)
	return p, nil
}

func pinByName(name string) (gpio.PinIO, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.Errorf("unknown pin %q", name)
	}
	return p, nil
}

// show flushes the framebuffer and refreshes the mirrors.
func (p *panel) show() error {
	if err := p.Flush(); err != nil {
		return errors.Wrap(err, 0)
	}
	return p.mirror()
}

// invert toggles inversion and refreshes the mirrors.
func (p *panel) invert(on bool) error {
	if err := p.Invert(on); err != nil {
		return errors.Wrap(err, 0)
	}
	return p.mirror()
}

// power switches the panel on or off and refreshes the mirrors.
func (p *panel) power(on bool) error {
	var err error
	if on {
		err = p.PowerOn()
	} else {
		err = p.PowerOff()
	}
	if err != nil {
		return errors.Wrap(err, 0)
	}
	return p.mirror()
}

// mirror shows the panel state in the terminal and the preview, as received
// by the emulator when there is one.
func (p *panel) mirror() error {
	img, on, inverted := p.Buffer(), p.Powered(), p.Inverted()
	if p.emu != nil {
		if err := p.emu.Render(); err != nil {
			return errors.Wrap(err, 0)
		}
		img, on, inverted = p.emu.Image(), p.emu.On(), p.emu.Inverted()
	}
	if p.sink != nil {
		if err := p.sink.Publish(img, on, inverted); err != nil {
			return errors.Wrap(err, 0)
		}
	}
	return nil
}

func (p *panel) close() error {
	err := p.Halt()
	if p.sink != nil {
		if err2 := p.sink.Halt(); err == nil {
			err = err2
		}
	}
	if p.emu != nil {
		if err2 := p.emu.Halt(); err == nil {
			err = err2
		}
	}
	if p.bus != nil {
		if err2 := p.bus.Close(); err == nil {
			err = err2
		}
	}
	return err
}
