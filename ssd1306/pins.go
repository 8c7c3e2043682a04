// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// configureLine enables the internal pull-up of p and switches it to f when
// the pin advertises that function. A nil pin is left alone.
func configureLine(p gpio.PinIO, f pin.Func) error {
	if p == nil {
		return nil
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return fmt.Errorf("ssd1306: pull-up on %s: %w", p, err)
	}
	pf, ok := p.(pin.PinFunc)
	if !ok {
		return nil
	}
	for _, s := range pf.SupportedFuncs() {
		if s.Generalize() == f {
			if err := pf.SetFunc(s); err != nil {
				return fmt.Errorf("ssd1306: set %s to %s: %w", p, s, err)
			}
			return nil
		}
	}
	return nil
}
