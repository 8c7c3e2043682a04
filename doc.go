// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the SSD1306 OLED framebuffer driver and
// the tooling around it.
//
// The driver lives in ssd1306. Its packed pixel buffer is image1bit, its
// bitmap font is font8x8. screen2d emulates the panel on an I²C bus for host
// side development, snapshot renders frames to PNG and preview streams them
// to a browser.
package devices
