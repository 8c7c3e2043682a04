// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/rackadev/devices/internal/log"
	"github.com/rackadev/devices/snapshot"
)

var (
	snapshotScale   int
	snapshotCaption string
)

func init() {
	snapshotCmd.Flags().IntVarP(&snapshotScale, "scale", "s", 4, "pixels per panel pixel")
	snapshotCmd.Flags().StringVar(&snapshotCaption, "caption", "", "text printed under the panel")
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <out.png>",
	Short: "save the title frame as a PNG",
	Long:  "snapshot renders the demo title frame on an emulated panel and saves what it received.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := *cfg
		c.Emulate = true
		p, err := openPanel(&c, io.Discard)
		if err != nil {
			return err
		}
		d := newDemo(p, c.FrameDelay)
		d.titleFrame()
		p.WriteBigString(0, 35, "BLASTOFF")
		if err := saveSnapshot(p, args[0], snapshotCaption, snapshotScale); err != nil {
			return err
		}
		log.Info("snapshot saved", "path", args[0])
		return nil
	},
}

// saveSnapshot flushes p and saves the frame as received by the controller.
// On hardware the local framebuffer is used instead.
func saveSnapshot(p *panel, path, caption string, scale int) error {
	if err := p.Flush(); err != nil {
		return errors.Wrap(err, 0)
	}
	img := p.Buffer()
	inverted := p.Inverted()
	if p.emu != nil {
		img = p.emu.Image()
		inverted = p.emu.Inverted()
	}
	opts := snapshot.Options{Scale: scale, Caption: caption, Inverted: inverted}
	if err := snapshot.SavePNG(path, img, &opts); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}
