// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements a packed 1 bit per pixel image in the memory
// layout used by SSD1306 class OLED controllers.
//
// The image is split in horizontal pages 8 pixels high. Each byte holds one
// column of a page, bit 0 being the top row of the page. Byte (page, x) is at
// offset page*Stride + x, so the Pix slice can be streamed to a controller in
// horizontal addressing mode without any conversion.
package image1bit
