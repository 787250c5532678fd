// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/blade/base/errors"
	"cogentcore.org/blade/base/logx"
	"cogentcore.org/blade/config"
	"cogentcore.org/blade/gpu/headless"
	"cogentcore.org/blade/load"
	"cogentcore.org/blade/mesh/meshtest"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSceneJSON = `{
  "global": {"gravity": [0, 0, -9.8]},
  "nodes": [
    {"name": "root", "space": {"pos": [0, 0, 0], "rot": [0, 0, 0, 1], "scale": 1},
     "children": [
       {"name": "cam", "space": {"pos": [0, -5, 0], "rot": [0, 0, 0, 1], "scale": 1}, "children": [], "actions": []},
       {"name": "body", "space": {"pos": [0, 0, 0], "rot": [0, 0, 0, 1], "scale": 1}, "children": [], "actions": []}
     ], "actions": []}
  ],
  "materials": [],
  "entities": [{"mesh": "mesh/tri.k3mesh", "node": "body", "range": [0, 0], "armature": "", "material": "", "actions": []}],
  "cameras": [{"name": "main", "node": "cam", "angle": [0.8, 0.6], "range": [0.1, 100], "actions": []}],
  "lights": []
}`

func init() {
	logx.UseColor = false
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"scenes/main.json":   {Data: []byte(testSceneJSON)},
		"scenes/broken.yaml": {Data: []byte("nodes: [")},
		"mesh/tri.k3mesh":    {Data: meshtest.Triangle("tri").Bytes()},
		"mesh/bad.k3mesh":    {Data: []byte("mush")},
		"notes.txt":          {Data: []byte("not an asset")},
	}
}

func testContext(t *testing.T, fsys fstest.MapFS) (*load.Context, *headless.Device) {
	t.Helper()
	dv := headless.New()
	ctx, err := load.NewContext(fsys, dv)
	require.NoError(t, err)
	ctx.Logger = logger
	return ctx, dv
}

func TestGlobAssets(t *testing.T) {
	paths, err := globAssets(testAssets(), DefaultCheckPatterns)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"scenes/main.json", "scenes/broken.yaml", "mesh/tri.k3mesh", "mesh/bad.k3mesh"}, paths)

	paths, err = globAssets(testAssets(), []string{"mesh/*", "**/*.k3mesh"})
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	_, err = globAssets(testAssets(), []string{"mesh/[a"})
	assert.Error(t, err)
}

func TestIsScene(t *testing.T) {
	assert.True(t, isScene("a/b.json"))
	assert.True(t, isScene("b.YML"))
	assert.False(t, isScene("mesh/tri.k3mesh"))
	assert.False(t, isScene("mesh/tri.k3mesh.zst"))
}

func TestCheckAssets(t *testing.T) {
	ctx, _ := testContext(t, testAssets())
	var b bytes.Buffer
	nfail, err := checkAssets(&b, ctx, DefaultCheckPatterns)
	require.NoError(t, err)
	assert.Equal(t, 2, nfail)
	out := b.String()
	assert.Contains(t, out, "OK scenes/main.json")
	assert.Contains(t, out, "OK mesh/tri.k3mesh")
	assert.Contains(t, out, "FAIL scenes/broken.yaml")
	assert.Contains(t, out, "FAIL mesh/bad.k3mesh")
	assert.Contains(t, out, "4 checked, 2 failed")
}

func TestSummarize(t *testing.T) {
	ctx, dv := testContext(t, testAssets())
	sc, err := ctx.Open("scenes/main.json")
	require.NoError(t, err)
	var b bytes.Buffer
	summarize(&b, sc, dv)
	out := b.String()
	assert.Contains(t, out, "nodes: 3")
	assert.Contains(t, out, "camera: main (node /root/cam)")
	assert.Contains(t, out, "entity: mesh/tri.k3mesh at /root/body")
}

func TestReload(t *testing.T) {
	for _, share := range []bool{false, true} {
		ctx, dv := testContext(t, testAssets())
		var b bytes.Buffer
		rl := &reloader{path: "scenes/main.json", share: share, ctx: ctx, dv: dv, w: &b}
		require.NoError(t, rl.reload())
		first, _, err := ctx.RequestMesh("mesh/tri.k3mesh")
		require.NoError(t, err)
		require.NoError(t, rl.reload())
		second, _, err := ctx.RequestMesh("mesh/tri.k3mesh")
		require.NoError(t, err)
		if share {
			assert.Same(t, first, second)
		} else {
			assert.NotSame(t, first, second)
		}
		assert.Contains(t, b.String(), "OK scenes/main.json")
	}

	ctx, dv := testContext(t, testAssets())
	var b bytes.Buffer
	rl := &reloader{path: "scenes/broken.yaml", ctx: ctx, dv: dv, w: &b}
	assert.Error(t, rl.reload())
	assert.Contains(t, b.String(), "FAIL scenes/broken.yaml")
}

func TestIsReloadEvent(t *testing.T) {
	assert.True(t, isReloadEvent(fsnotify.Event{Name: "a", Op: fsnotify.Write}))
	assert.True(t, isReloadEvent(fsnotify.Event{Name: "a", Op: fsnotify.Remove}))
	assert.False(t, isReloadEvent(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}))
}

func TestWatchLoop(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "mesh"), 0o755))
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, watchDirs(watcher, dir))

	var logs bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(old)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n := 0
	reload := func() error {
		n++
		cancel()
		return errors.New("scene failed to load")
	}
	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "mesh", "tri.k3mesh"), meshtest.Triangle("tri").Bytes(), 0o644)
		os.WriteFile(filepath.Join(dir, "mesh", "tri.k3mesh"), meshtest.Triangle("tri").Bytes(), 0o644)
	}()
	require.NoError(t, watchLoop(ctx, watcher, 50*time.Millisecond, reload))
	assert.Equal(t, 1, n)
	assert.Contains(t, logs.String(), "scene failed to load")
}

func TestWatchLoopWaitsForQuiet(t *testing.T) {
	dir := t.TempDir()
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, watchDirs(watcher, dir))

	const lag = 80 * time.Millisecond
	var lastWrite atomic.Int64
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var sinceLast time.Duration
	n := 0
	reload := func() error {
		n++
		sinceLast = time.Since(time.Unix(0, lastWrite.Load()))
		cancel()
		return nil
	}
	go func() {
		for i := 0; i < 4; i++ {
			time.Sleep(30 * time.Millisecond)
			lastWrite.Store(time.Now().UnixNano())
			os.WriteFile(filepath.Join(dir, "scene.json"), []byte{byte(i)}, 0o644)
		}
	}()
	require.NoError(t, watchLoop(ctx, watcher, lag, reload))
	assert.Equal(t, 1, n)
	assert.GreaterOrEqual(t, sinceLast, lag)
}

func TestRunConfig(t *testing.T) {
	cfg = config.New()
	var b bytes.Buffer
	configCmd.SetOut(&b)
	require.NoError(t, runConfig(configCmd, nil))
	assert.Contains(t, b.String(), "asset_root")
}
