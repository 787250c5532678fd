// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/blade/base/logx"
	"cogentcore.org/blade/gpu/headless"
	"cogentcore.org/blade/scene"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <scene>",
	Short: "Load a scene and print a summary of it",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx, dv, err := newContext()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	sc, err := ctx.Open(args[0])
	if err != nil {
		fmt.Fprintln(w, logx.ErrorColor("FAIL"), logx.CmdColor(args[0]), err)
		return err
	}
	fmt.Fprintln(w, logx.SuccessColor("OK"), logx.CmdColor(args[0]))
	summarize(w, sc, dv)
	return nil
}

// summarize prints what the given scene contains
// and the resources it uses on the device.
func summarize(w io.Writer, sc *scene.Scene, dv *headless.Device) {
	fmt.Fprintf(w, "  nodes: %d\n", sc.World.Len())
	fmt.Fprintf(w, "  camera: %s (node %s)\n", sc.Camera.Name, sc.World.Path(sc.Camera.Node))
	for _, ent := range sc.Entities {
		fmt.Fprintf(w, "  entity: %s at %s, %d attribs, slice %d-%d, material %s\n",
			ent.Name, sc.World.Path(ent.Node), len(ent.Mesh.Attributes), ent.Slice.Start, ent.Slice.End, ent.Material.Name)
	}
	for _, lt := range sc.Lights {
		fmt.Fprintf(w, "  light: %s (%s)\n", lt.Name, lt.Kind)
	}
	fmt.Fprintf(w, "  materials: %d, textures: %d, buffers: %d\n", sc.Materials.Len(), len(dv.Textures), dv.LiveBuffers())
}
