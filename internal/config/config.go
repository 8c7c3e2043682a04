// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config holds the YAML configuration of the ssd1306demo binary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the demo configuration.
type Config struct {
	// Bus is the I²C bus name as understood by i2creg.Open. Empty selects the
	// first bus.
	Bus string `yaml:"bus"`
	// Addr is the 7 bit device address, usually 0x3C or 0x3D.
	Addr uint16 `yaml:"addr"`
	// Width and Height are the panel size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// ClockKHz is the bus clock. 0 leaves the bus speed untouched.
	ClockKHz int `yaml:"clock_khz"`
	// SDA and SCL are optional GPIO names configured for the I²C function.
	SDA string `yaml:"sda,omitempty"`
	SCL string `yaml:"scl,omitempty"`
	// Emulate draws to the terminal instead of talking to hardware.
	Emulate bool `yaml:"emulate"`
	// FrameDelay is the pause between demo steps.
	FrameDelay time.Duration `yaml:"frame_delay"`
	// Listen, if set, is the address serving the live preview of the panel.
	Listen string `yaml:"listen,omitempty"`
	// Snapshot, if set, is where "run" saves a PNG of its title frame.
	Snapshot string `yaml:"snapshot,omitempty"`
	// LogLevel is one of debug, info or error.
	LogLevel string `yaml:"log_level"`
}

const (
	defaultAddr       = 0x3C
	defaultWidth      = 128
	defaultHeight     = 64
	defaultClockKHz   = 400
	defaultFrameDelay = 500 * time.Millisecond
	defaultLogLevel   = "info"
)

// DefaultConfig returns the configuration of a 128x64 panel at 0x3C.
func DefaultConfig() *Config {
	return &Config{
		Addr:       defaultAddr,
		Width:      defaultWidth,
		Height:     defaultHeight,
		ClockKHz:   defaultClockKHz,
		FrameDelay: defaultFrameDelay,
		LogLevel:   defaultLogLevel,
	}
}

// Normalize fills zero values with defaults. ClockKHz is left as is since 0
// is meaningful.
func (c *Config) Normalize() {
	if c.Addr == 0 {
		c.Addr = defaultAddr
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.FrameDelay <= 0 {
		c.FrameDelay = defaultFrameDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Validate reports settings the driver would refuse.
func (c *Config) Validate() error {
	if c.Addr > 0x7F {
		return fmt.Errorf("config: invalid address %#x", c.Addr)
	}
	if c.Width < 8 || c.Width > 128 || c.Width%8 != 0 {
		return fmt.Errorf("config: invalid width %d", c.Width)
	}
	if c.Height < 8 || c.Height > 64 || c.Height%8 != 0 {
		return fmt.Errorf("config: invalid height %d", c.Height)
	}
	if c.ClockKHz < 0 {
		return fmt.Errorf("config: invalid clock %dkHz", c.ClockKHz)
	}
	return nil
}

// Load reads the configuration at path.
//
// A missing file is created with the default configuration, which is
// returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			return cfg, Save(path, cfg)
		}
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes cfg to path atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config: path is empty")
	}
	if cfg == nil {
		return errors.New("config: nil config")
	}
	cfg.Normalize()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".ssd1306demo-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to the package level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
