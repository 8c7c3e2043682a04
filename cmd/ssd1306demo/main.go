// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ssd1306demo drives a SSD1306 OLED panel over I²C, or an emulated one in the
// terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/rackadev/devices/internal/config"
	"github.com/rackadev/devices/internal/log"
)

var (
	configFlag  string
	debugFlag   bool
	emulateFlag bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           filepath.Base(os.Args[0]),
	Short:         "ssd1306 OLED demo",
	Long:          "ssd1306demo draws text, lines and animations on a SSD1306 OLED panel.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(configFlag)
		if err != nil {
			return err
		}
		if emulateFlag {
			c.Emulate = true
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", defaultConfigPath(), "configuration file, created when missing")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "debug logging and error stacks")
	rootCmd.PersistentFlags().BoolVarP(&emulateFlag, "emulate", "e", false, "draw in the terminal instead of the I²C panel")
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ssd1306demo.yaml"
	}
	return filepath.Join(dir, "ssd1306demo", "config.yaml")
}

func loadConfig(path string) (*config.Config, error) {
	c, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if debugFlag {
		lvl = log.LevelDebug
	}
	log.SetLevel(lvl)
	log.Debug("config loaded", "path", path, "bus", c.Bus, "addr", fmt.Sprintf("%#x", c.Addr), "emulate", c.Emulate)
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var e *errors.Error
		if debugFlag && errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, e.ErrorStack())
		} else {
			fmt.Fprintf(os.Stderr, "ssd1306demo: %s.\n", err)
		}
		os.Exit(1)
	}
}
