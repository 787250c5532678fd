// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	_ "embed"

	"cogentcore.org/blade/gpu"
)

// ProgramName is the name of the program shared by all entities.
const ProgramName = "scene"

//go:embed shaders/scene.vert
var vertexSource string

//go:embed shaders/scene.frag
var fragmentSource string

// Program returns the program shared by all entities, linking it
// on first use. A link failure is not remembered.
func (ctx *Context) Program() (gpu.Program, error) {
	if ctx.program != nil {
		return ctx.program, nil
	}
	prog, err := ctx.Device.LinkProgram(ProgramName, vertexSource, fragmentSource)
	if err != nil {
		return nil, &AssetError{Kind: ErrProgram, Name: ProgramName, Err: err}
	}
	ctx.program = prog
	return prog, nil
}
