// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rackadev/devices/internal/log"
)

var (
	textBig    bool
	textX      int
	textY      int
	textInvert bool
)

func init() {
	textCmd.Flags().BoolVarP(&textBig, "big", "b", false, "double size characters")
	textCmd.Flags().IntVarP(&textX, "x", "x", 0, "left column")
	textCmd.Flags().IntVarP(&textY, "y", "y", 0, "top row, rounded down to a page")
	textCmd.Flags().BoolVarP(&textInvert, "invert", "i", false, "dark text on a lit panel")
	rootCmd.AddCommand(textCmd)
}

var textCmd = &cobra.Command{
	Use:   "text <string>...",
	Short: "write a string",
	Long:  "text clears the panel, writes the arguments joined by spaces and flushes once. Letters are shown upper case.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPanel(cfg, nil)
		if err != nil {
			return err
		}
		err = writeText(p, strings.Join(args, " "), textX, textY, textBig, textInvert)
		if p.emu != nil {
			if err2 := p.emu.Halt(); err == nil {
				err = err2
			}
		}
		return err
	},
}

// writeText leaves the panel on so the text stays visible after exit.
func writeText(p *panel, s string, x, y int, big, invert bool) error {
	p.Clear()
	if big {
		p.WriteBigString(x, y, s)
	} else {
		p.WriteString(x, y, s)
	}
	log.Debug("text", "s", s, "x", x, "y", y, "big", big)
	if err := p.show(); err != nil {
		return err
	}
	if invert {
		return p.invert(true)
	}
	return nil
}
