// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"sync"
)

// bufferPool stores reusable encoded frames.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return []byte(nil)
	},
}

type pngBufferPool sync.Pool

func (p *pngBufferPool) Get() *png.EncoderBuffer {
	buf, _ := (*sync.Pool)(p).Get().(*png.EncoderBuffer)
	return buf
}

func (p *pngBufferPool) Put(buf *png.EncoderBuffer) {
	(*sync.Pool)(p).Put(buf)
}

// Frames are mostly flat color.
var pngEncoder = png.Encoder{
	CompressionLevel: png.BestSpeed,
	BufferPool:       &pngBufferPool{},
}

var jpegOptions = jpeg.Options{Quality: 90}

func encode(img image.Image, f Format) ([]byte, error) {
	buf := bytes.NewBuffer(bufferPool.Get().([]byte)[:0])
	switch f {
	case PNG:
		if err := pngEncoder.Encode(buf, img); err != nil {
			return nil, err
		}
	case JPEG:
		if err := jpeg.Encode(buf, img, &jpegOptions); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("preview: unhandled image format %s", f)
	}
	return buf.Bytes(), nil
}

// current returns a copy of the current frame encoded as f. The copy should
// be returned to bufferPool.
func (s *Sink) current(f Format) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.encoded[f]
	if !ok {
		var err error
		if b, err = encode(s.frame, f); err != nil {
			return nil, err
		}
		s.encoded[f] = b
	}
	return append(bufferPool.Get().([]byte)[:0], b...), nil
}
