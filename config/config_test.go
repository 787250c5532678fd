// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, s string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "blade.toml")
	require.NoError(t, os.WriteFile(fn, []byte(s), 0o644))
	return fn
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, ".", c.AssetRoot)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "a_", c.AttribPrefix)
	assert.False(t, c.ShareCache)
	assert.Equal(t, 100, c.WatchLag)
}

func TestLoadFileThenEnv(t *testing.T) {
	fn := writeFile(t, "asset_root = \"assets\"\nlog_level = \"debug\"\nshare_cache = true\n")
	t.Setenv("BLADE_LOG_LEVEL", "warn")
	t.Setenv("BLADE_WATCH_LAG", "250")

	c, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, "assets", c.AssetRoot)
	assert.Equal(t, "warn", c.LogLevel, "environment overrides the file")
	assert.True(t, c.ShareCache)
	assert.Equal(t, 250, c.WatchLag)
	assert.Equal(t, "a_", c.AttribPrefix, "defaults are kept")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "colour = \"red\"\n"))
	assert.Error(t, err, "unknown keys are an error")

	_, err = Load(writeFile(t, "share_cache = \"yes\"\n"))
	assert.Error(t, err)

	t.Setenv("BLADE_SHARE_CACHE", "maybe")
	_, err = Load(writeFile(t, ""))
	assert.Error(t, err)
}

func TestLoadDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), c)
}

func TestTOML(t *testing.T) {
	c := New()
	c.ShareCache = true
	b, err := c.TOML()
	require.NoError(t, err)

	d := &Config{}
	require.NoError(t, d.ReadTOML(b))
	assert.Equal(t, c, d)
}
