// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display driven by a SSD1306
// controller over I²C.
//
// The driver keeps a packed framebuffer in memory. Pixel, line and text
// functions only write to that buffer; Flush sends the whole buffer to the
// controller in a single transfer. Building a frame costs no bus time and the
// panel never shows a partially drawn frame.
//
// Text uses the 8x8 font8x8 glyphs, either at native size or doubled to
// 16x16. Glyphs are placed on page boundaries only: the y coordinate is
// rounded down to a multiple of 8. A glyph or string that would not fit from
// its origin is silently skipped, whereas SetPixel and DrawLine panic on out
// of range coordinates.
//
// Every transfer starts with a control byte, see TransferKind: 0x00 for
// command streams and 0x40 for GDDRAM data.
//
// A Dev is not safe for concurrent use. Callers sharing one across goroutines
// must serialize access, for example with a sync.Mutex.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// "DM-OLED096-624": https://drive.google.com/file/d/0B5lkVYnewKTGaEVENlYwbDkxSGM/view
package ssd1306
