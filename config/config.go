// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the blade tool,
// read from a TOML file and then overridden by environment variables.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"cogentcore.org/blade/base/errors"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file used when none is given.
const DefaultFile = "blade.toml"

// Config is the configuration of the blade tool.
type Config struct {

	// AssetRoot is the directory that asset paths are relative to.
	AssetRoot string `toml:"asset_root" env:"BLADE_ASSET_ROOT"`

	// LogLevel is the minimum level of log messages: debug, info, warn or error.
	LogLevel string `toml:"log_level" env:"BLADE_LOG_LEVEL"`

	// AttribPrefix is prepended to mesh attribute names.
	AttribPrefix string `toml:"attrib_prefix" env:"BLADE_ATTRIB_PREFIX"`

	// ShareCache keeps loaded assets across scene reloads,
	// instead of starting a fresh session for every load.
	ShareCache bool `toml:"share_cache" env:"BLADE_SHARE_CACHE"`

	// WatchLag is how long the asset files must stay unchanged after a
	// change before watch mode reloads, in milliseconds. Every new change
	// restarts the wait.
	WatchLag int `toml:"watch_lag" env:"BLADE_WATCH_LAG"`
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.AssetRoot = "."
	c.LogLevel = "info"
	c.AttribPrefix = "a_"
	c.WatchLag = 100
}

// New returns a new Config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Load returns the configuration from the defaults, then the given
// TOML file, then the environment. A missing file is only an error if
// the filename is not [DefaultFile].
func Load(filename string) (*Config, error) {
	c := New()
	if filename == "" {
		filename = DefaultFile
	}
	err := c.Open(filename)
	if err != nil && !(filename == DefaultFile && errors.Is(err, fs.ErrNotExist)) {
		return nil, err
	}
	if err := c.ParseEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads the given TOML file into c. Unknown keys are an error.
func (c *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return c.ReadTOML(b)
}

// ReadTOML decodes the given TOML data into c. Unknown keys are an error.
func (c *Config) ReadTOML(b []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParseEnv overrides c with any of its variables set in the environment.
func (c *Config) ParseEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// TOML returns c encoded as TOML.
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
