// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"mime"
	"net/http"
	"net/textproto"
	"strconv"
)

type client struct {
	refresh   chan struct{}
	terminate chan struct{}
}

func (s *Sink) formatFromRequest(r *http.Request) (Format, error) {
	if v := r.URL.Query().Get("format"); v != "" {
		return ParseFormat(v)
	}
	return s.defaultFormat, nil
}

// ServeHTTP answers GET requests with a stream of frames. With "?single=1"
// only the current frame is sent, as a plain image.
func (s *Sink) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}
	f, err := s.formatFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if single, _ := strconv.ParseBool(r.URL.Query().Get("single")); single {
		s.serveSingle(w, f)
		return
	}

	pw := newPartWriter(w)
	w.Header().Set("Content-Type", mime.FormatMediaType("multipart/x-mixed-replace", map[string]string{"boundary": pw.boundary}))
	c := &client{
		refresh:   make(chan struct{}, 1),
		terminate: make(chan struct{}, 1),
	}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
	}()

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", f.mimeType())
	for {
		payload, err := s.current(f)
		if err != nil {
			return
		}
		err = pw.writeFrame(header, payload)
		//lint:ignore SA6002 payload is a slice and thus pointer-like
		bufferPool.Put(payload[:0])
		if err != nil {
			// There's no way to report an error inside an image stream.
			return
		}
		if fl, ok := w.(http.Flusher); ok {
			fl.Flush()
		}
		select {
		case <-c.refresh:
		case <-c.terminate:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func (s *Sink) serveSingle(w http.ResponseWriter, f Format) {
	payload, err := s.current(f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	//lint:ignore SA6002 payload is a slice and thus pointer-like
	defer bufferPool.Put(payload[:0])
	w.Header().Set("Content-Type", f.mimeType())
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(payload)
}

var _ http.Handler = &Sink{}
