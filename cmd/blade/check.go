// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/fs"
	"path"

	"cogentcore.org/blade/base/logx"
	"cogentcore.org/blade/desc"
	"cogentcore.org/blade/load"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

// DefaultCheckPatterns are the asset patterns checked when none are given.
var DefaultCheckPatterns = []string{"**/*.{json,yaml,yml}", "**/*.{k3mesh,k3mesh.zst}"}

var checkCmd = &cobra.Command{
	Use:   "check [pattern...]",
	Short: "Load every scene and mesh asset matching the given patterns",
	Long: `check loads every scene description and mesh asset under the asset
root that matches one of the given doublestar patterns, and reports the
ones that fail. Files with a scene description extension are loaded as
scenes, everything else as meshes.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, _, err := newContext()
	if err != nil {
		return err
	}
	patterns := args
	if len(patterns) == 0 {
		patterns = DefaultCheckPatterns
	}
	nfail, err := checkAssets(cmd.OutOrStdout(), ctx, patterns)
	if err != nil {
		return err
	}
	if nfail > 0 {
		return fmt.Errorf("blade: %d asset(s) failed to load", nfail)
	}
	return nil
}

// globAssets returns the sorted unique asset paths in fsys
// matching any of the given patterns.
func globAssets(fsys fs.FS, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("blade: invalid pattern %q", pat)
		}
		matches, err := doublestar.Glob(fsys, pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("blade: %w", err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

// isScene returns whether the given asset path is a scene description.
func isScene(p string) bool {
	_, err := desc.ExtToFormat(path.Ext(p))
	return err == nil
}

// checkAssets loads every asset matching the given patterns in the
// context assets, writing one status line per asset to w, and
// returns the number of assets that failed to load.
func checkAssets(w io.Writer, ctx *load.Context, patterns []string) (int, error) {
	paths, err := globAssets(ctx.Assets, patterns)
	if err != nil {
		return 0, err
	}
	nfail := 0
	for _, p := range paths {
		if isScene(p) {
			_, err = ctx.Open(p)
		} else {
			_, _, err = ctx.RequestMesh(p)
		}
		if err != nil {
			nfail++
			fmt.Fprintln(w, logx.ErrorColor("FAIL"), logx.CmdColor(p), err)
			continue
		}
		fmt.Fprintln(w, logx.SuccessColor("OK"), logx.CmdColor(p))
	}
	fmt.Fprintf(w, "%d checked, %d failed\n", len(paths), nfail)
	return nfail, nil
}
