// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/mesh"
)

// Device is the graphics device that loaded resources live on.
type Device interface {
	gpu.Factory

	// LinkProgram links a shader program from vertex and fragment sources.
	LinkProgram(name, vertex, fragment string) (gpu.Program, error)

	// MakeBatch makes a batch drawing the given slice of the mesh.
	MakeBatch(prog gpu.Program, m *mesh.Mesh, sl mesh.Slice, ds gpu.DrawState) (gpu.Batch, error)
}
