// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font8x8

// raw is drawn with bit 7 at the top of each column.
var raw = [NumGlyphs * Width]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // blank
	0x1e, 0x28, 0x48, 0x88, 0x48, 0x28, 0x1e, 0x00, // A
	0xfe, 0x92, 0x92, 0x92, 0x92, 0x92, 0xfe, 0x00, // B
	0x7e, 0x82, 0x82, 0x82, 0x82, 0x82, 0x82, 0x00, // C
	0xfe, 0x82, 0x82, 0x82, 0x82, 0x82, 0x7e, 0x00, // D
	0xfe, 0x92, 0x92, 0x92, 0x92, 0x92, 0x92, 0x00, // E
	0xfe, 0x90, 0x90, 0x90, 0x90, 0x80, 0x80, 0x00, // F
	0xfe, 0x82, 0x82, 0x82, 0x8a, 0x8a, 0xce, 0x00, // G
	0xfe, 0x10, 0x10, 0x10, 0x10, 0x10, 0xfe, 0x00, // H
	0x00, 0x00, 0x82, 0xfe, 0x82, 0x00, 0x00, 0x00, // I
	0x00, 0x0c, 0x02, 0x02, 0x02, 0x02, 0xfc, 0x00, // J
	0xfe, 0x10, 0x28, 0x44, 0x82, 0x00, 0x00, 0x00, // K
	0xfe, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x00, // L
	0xfe, 0x40, 0x20, 0x10, 0x20, 0x40, 0xfe, 0x00, // M
	0xfe, 0x40, 0x20, 0x10, 0x08, 0x04, 0xfe, 0x00, // N
	0x7c, 0x82, 0x82, 0x82, 0x82, 0x82, 0x7c, 0x00, // O
	0xfe, 0x88, 0x88, 0x88, 0x88, 0x88, 0xf8, 0x00, // P
	0x7c, 0x82, 0x82, 0x92, 0x8a, 0x86, 0x7e, 0x00, // Q
	0xfe, 0x88, 0x88, 0x88, 0x8c, 0x8a, 0xf2, 0x00, // R
	0x62, 0x92, 0x92, 0x92, 0x92, 0x92, 0x8c, 0x00, // S
	0x80, 0x80, 0x80, 0xfe, 0x80, 0x80, 0x80, 0x00, // T
	0xfc, 0x02, 0x02, 0x02, 0x02, 0x02, 0xfc, 0x00, // U
	0xf0, 0x08, 0x04, 0x02, 0x04, 0x08, 0xf0, 0x00, // V
	0xfe, 0x04, 0x08, 0x10, 0x08, 0x04, 0xfe, 0x00, // W
	0xc6, 0x28, 0x10, 0x10, 0x10, 0x28, 0xc6, 0x00, // X
	0xe0, 0x10, 0x08, 0x06, 0x08, 0x10, 0xe0, 0x00, // Y
	0x86, 0x8a, 0x92, 0xa2, 0xc2, 0x82, 0x00, 0x00, // Z
	0x7c, 0x8a, 0x92, 0xa2, 0x7c, 0x00, 0x00, 0x00, // 0
	0x00, 0x42, 0xfe, 0x02, 0x00, 0x00, 0x00, 0x00, // 1
	0x46, 0x8a, 0x92, 0x92, 0x62, 0x00, 0x00, 0x00, // 2
	0x44, 0x92, 0x92, 0x92, 0x6c, 0x00, 0x00, 0x00, // 3
	0x18, 0x28, 0x48, 0xfe, 0x08, 0x00, 0x00, 0x00, // 4
	0xf4, 0x92, 0x92, 0x92, 0x8c, 0x00, 0x00, 0x00, // 5
	0x3c, 0x52, 0x92, 0x92, 0x8c, 0x00, 0x00, 0x00, // 6
	0x80, 0x8e, 0x90, 0xa0, 0xc0, 0x00, 0x00, 0x00, // 7
	0x6c, 0x92, 0x92, 0x92, 0x6c, 0x00, 0x00, 0x00, // 8
	0x60, 0x92, 0x92, 0x94, 0x78, 0x00, 0x00, 0x00, // 9
}
