// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/blade/base/errors"
	"cogentcore.org/blade/base/logx"
	"cogentcore.org/blade/gpu/headless"
	"cogentcore.org/blade/load"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <scene>",
	Short: "Load a scene and reload it whenever an asset changes",
	Long: `watch loads the given scene and then reloads it whenever a file
under the asset root is written, created, removed or renamed. Reloads
use a fresh loading session unless share_cache is set, in which case
meshes and textures already loaded are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

// reloader reloads one scene in a loading session.
type reloader struct {
	path  string
	share bool
	ctx   *load.Context
	dv    *headless.Device
	w     io.Writer
}

// reload loads the scene again, writing the status to the output.
// The load error is returned for the caller to log.
func (rl *reloader) reload() error {
	if !rl.share {
		rl.ctx.Reset()
	}
	sc, err := rl.ctx.Open(rl.path)
	stamp := time.Now().Format(time.TimeOnly)
	if err != nil {
		fmt.Fprintln(rl.w, stamp, logx.ErrorColor("FAIL"), logx.CmdColor(rl.path))
		return err
	}
	fmt.Fprintln(rl.w, stamp, logx.SuccessColor("OK"), logx.CmdColor(rl.path))
	summarize(rl.w, sc, rl.dv)
	return nil
}

// isReloadEvent returns whether the given event should cause a reload.
func isReloadEvent(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// watchDirs adds root and all of its subdirectories to the watcher.
func watchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(p)
	})
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, dv, err := newContext()
	if err != nil {
		return err
	}
	rl := &reloader{path: args[0], share: cfg.ShareCache, ctx: ctx, dv: dv, w: cmd.OutOrStdout()}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("blade: %w", err)
	}
	defer func() { errors.Log(watcher.Close()) }()
	if err := watchDirs(watcher, cfg.AssetRoot); err != nil {
		return fmt.Errorf("blade: watching %s: %w", cfg.AssetRoot, err)
	}

	sctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	errors.Log(rl.reload())
	return watchLoop(sctx, watcher, time.Duration(cfg.WatchLag)*time.Millisecond, rl.reload)
}

// watchLoop calls reload once the watcher has been quiet for lag after
// a relevant event, logging any reload error, until the context is done.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, lag time.Duration, reload func() error) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isReloadEvent(ev) {
				continue
			}
			logger.Debug("asset changed", "path", ev.Name, "op", ev.Op)
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := watchDirs(watcher, ev.Name); err != nil {
						logger.Warn("could not watch new directory", "path", ev.Name, "err", err)
					}
				}
			}
			pending = time.After(lag)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher", "err", err)
		case <-pending:
			pending = nil
			errors.Log(reload())
		}
	}
}
