// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/rackadev/devices/internal/log"
)

// demo runs the animation loop on a panel.
type demo struct {
	p     *panel
	delay time.Duration
	// sleep returns early with ctx.Err() when ctx is canceled.
	sleep func(ctx context.Context, d time.Duration) error
}

func newDemo(p *panel, delay time.Duration) *demo {
	return &demo{p: p, delay: delay, sleep: sleepCtx}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// loop repeats the demo until ctx is canceled.
func (d *demo) loop(ctx context.Context) error {
	for i := 0; ; i++ {
		log.Debug("demo pass", "n", i)
		if err := d.once(ctx); err != nil {
			return err
		}
	}
}

// once runs every step of the demo a single time.
func (d *demo) once(ctx context.Context) error {
	for _, step := range []struct {
		name string
		f    func(context.Context) error
	}{
		{"title", d.title},
		{"countdown", d.countdown},
		{"blastoff", d.blastoff},
		{"flashes", d.flashes},
		{"wipe", d.wipe},
		{"banner", d.banner},
	} {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("demo step", "step", step.name)
		if err := step.f(ctx); err != nil {
			return err
		}
	}
	return nil
}

// titleFrame draws the border and the greeting without flushing.
func (d *demo) titleFrame() {
	b := d.p.Bounds()
	w, h := b.Dx(), b.Dy()
	d.p.Clear()
	d.p.DrawLine(0, 0, w-1, 0, true)
	d.p.DrawLine(0, 0, 0, h-1, true)
	d.p.DrawLine(w-1, 0, w-1, h-1, true)
	d.p.DrawLine(0, h-1, w-1, h-1, true)
	d.p.WriteString(13, 8, "HELLO SSD1306")
}

func (d *demo) title(ctx context.Context) error {
	d.titleFrame()
	return nil
}

func (d *demo) countdown(ctx context.Context) error {
	for ch := '9'; ch >= '1'; ch-- {
		d.p.WriteBigChar(56, 36, ch)
		if err := d.p.show(); err != nil {
			return err
		}
		if err := d.sleep(ctx, d.delay); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) blastoff(ctx context.Context) error {
	d.p.WriteBigString(0, 35, "BLASTOFF")
	return d.p.show()
}

func (d *demo) flashes(ctx context.Context) error {
	for i := 0; i < 10; i++ {
		for _, on := range []bool{true, false} {
			if err := d.p.invert(on); err != nil {
				return err
			}
			if err := d.sleep(ctx, d.delay/5); err != nil {
				return err
			}
		}
	}
	return nil
}

// wipe fills the panel from both edges toward the center, then clears it
// from the center outward.
func (d *demo) wipe(ctx context.Context) error {
	b := d.p.Bounds()
	w, h := b.Dx(), b.Dy()
	for i := 0; i < w; i++ {
		on := i < w/2
		d.p.DrawLine(i, 0, i, h-1, on)
		d.p.DrawLine(w-i-1, 0, w-i-1, h-1, on)
		if err := d.p.show(); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// banner shows the rack card and blinks the panel power.
func (d *demo) banner(ctx context.Context) error {
	d.p.Clear()
	d.p.WriteBigString(13, 0, "RACKADEV")
	y := 24
	for _, s := range []string{"KOTLIN..", "C..", "JAVA..", "RUST.."} {
		d.p.WriteString(13, y, s)
		y += 10
	}
	if err := d.p.show(); err != nil {
		return err
	}
	if err := d.sleep(ctx, 4*d.delay); err != nil {
		return err
	}
	if err := d.p.power(false); err != nil {
		return err
	}
	if err := d.sleep(ctx, 3*d.delay/5); err != nil {
		return err
	}
	return d.p.power(true)
}
