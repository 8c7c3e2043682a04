// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/rackadev/devices/internal/log"
	"github.com/rackadev/devices/preview"
)

var listenFlag string

func init() {
	runCmd.Flags().StringVarP(&listenFlag, "listen", "l", "", "serve a live preview of the panel on this address, e.g. :8080")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "loop the demo animation",
	Long:  "run draws the border, a countdown, BLASTOFF, inversion flashes, a wipe and the banner until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listenFlag != "" {
			cfg.Listen = listenFlag
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runDemo(ctx)
	},
}

func runDemo(ctx context.Context) error {
	p, err := openPanel(cfg, nil)
	if err != nil {
		return err
	}
	var srv *http.Server
	if cfg.Listen != "" {
		if srv, err = servePreview(p, cfg.Listen); err != nil {
			p.close()
			return err
		}
	}
	d := newDemo(p, cfg.FrameDelay)
	if cfg.Snapshot != "" {
		d.titleFrame()
		if err := saveSnapshot(p, cfg.Snapshot, "HELLO SSD1306", 4); err != nil {
			log.Error("snapshot", err, "path", cfg.Snapshot)
		} else {
			log.Info("snapshot saved", "path", cfg.Snapshot)
		}
	}
	err = d.loop(ctx)
	// Halting the sink ends the streams so Shutdown doesn't wait on them.
	if err2 := p.close(); err2 != nil {
		log.Error("halt", err2)
	}
	if srv != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err2 := srv.Shutdown(sctx); err2 != nil {
			log.Error("preview shutdown", err2)
		}
		cancel()
	}
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted")
		return nil
	}
	return err
}

// servePreview attaches a preview sink to p and serves it on addr.
func servePreview(p *panel, addr string) (*http.Server, error) {
	b := p.Bounds()
	p.sink = preview.New(&preview.Options{W: b.Dx(), H: b.Dy()})
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	srv := &http.Server{Handler: p.sink, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("preview", err)
		}
	}()
	log.Info("preview", "url", "http://"+ln.Addr().String()+"/")
	return srv, nil
}
