// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview streams what an OLED panel shows to web browsers.
//
// Each client gets the current frame on connect and a new one every time a
// frame is published. The protocol is "MJPEG"
// (https://en.wikipedia.org/wiki/Motion_JPEG), a multipart/x-mixed-replace
// response understood by browsers and by most video players. PNG is used by
// default since it suits pixel art; JPEG can be selected with Options.Format
// or the "format" URL parameter.
package preview

import (
	"image"
	"sync"

	"github.com/rackadev/devices/image1bit"
	"github.com/rackadev/devices/snapshot"
)

// Options for a Sink.
type Options struct {
	// W and H are the panel size in pixels.
	W, H int
	// Scale is passed to snapshot.Render. Defaults to 4.
	Scale int
	// Format is the image format sent to clients not asking for one.
	Format Format
}

// Sink holds the last published frame and the connected clients.
type Sink struct {
	scale         int
	defaultFormat Format

	mu      sync.Mutex
	frame   image.Image
	frames  int
	clients map[*client]struct{}
	encoded map[Format][]byte
}

// New returns a Sink showing a dark panel.
func New(opts *Options) *Sink {
	s := &Sink{
		scale:         opts.Scale,
		defaultFormat: opts.Format,
		clients:       map[*client]struct{}{},
		encoded:       map[Format][]byte{},
	}
	if s.scale <= 0 {
		s.scale = 4
	}
	blank := image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H))
	s.frame, _ = snapshot.Render(blank, &snapshot.Options{Scale: s.scale})
	return s
}

func (s *Sink) String() string {
	return "Preview"
}

// Halt implements conn.Resource and ends all running client requests
// asynchronously.
func (s *Sink) Halt() error {
	s.mu.Lock()
	for c := range s.clients {
		select {
		case c.terminate <- struct{}{}:
		default:
		}
	}
	s.mu.Unlock()
	return nil
}

// Publish renders img as seen on the glass and sends it to every client.
//
// A panel that is off is shown dark whatever its GDDRAM holds.
func (s *Sink) Publish(img *image1bit.VerticalLSB, on, inverted bool) error {
	if !on {
		img = image1bit.NewVerticalLSB(img.Bounds())
		inverted = false
	}
	frame, err := snapshot.Render(img, &snapshot.Options{Scale: s.scale, Inverted: inverted})
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame
	s.frames++
	for f, b := range s.encoded {
		//lint:ignore SA6002 b is a slice and thus pointer-like
		bufferPool.Put(b[:0])
		delete(s.encoded, f)
	}
	for c := range s.clients {
		select {
		case c.refresh <- struct{}{}:
		default:
		}
	}
	return nil
}

// Frame returns the last rendered frame.
func (s *Sink) Frame() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Frames returns the number of frames published.
func (s *Sink) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Clients returns the number of connected clients.
func (s *Sink) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
