// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj exports an editable [mesh.Mesh] as Wavefront OBJ text,
// one usemtl block per run of same-material faces.
package obj

import (
	"bufio"
	"fmt"
	"io"

	"cogentcore.org/probuild/mesh"
)

// Write writes the given mesh to w in Wavefront OBJ format. Texture
// coordinates and normals are emitted only when the mesh carries them.
func Write(w io.Writer, m *mesh.Mesh) error {
	if m == nil {
		return mesh.ErrNilMesh
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# probuild mesh: %d vertices, %d faces\n", m.NumVertices(), m.NumFaces())
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, t := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}

	ref := func(v int) string {
		i := v + 1 // obj indices are 1-based
		switch {
		case m.HasUVs() && m.HasNormals():
			return fmt.Sprintf("%d/%d/%d", i, i, i)
		case m.HasUVs():
			return fmt.Sprintf("%d/%d", i, i)
		case m.HasNormals():
			return fmt.Sprintf("%d//%d", i, i)
		}
		return fmt.Sprintf("%d", i)
	}

	material := ""
	for _, f := range m.Faces {
		if f.Material != material {
			material = f.Material
			fmt.Fprintf(bw, "usemtl %s\n", material)
		}
		for i := 0; i+2 < len(f.Indexes); i += 3 {
			fmt.Fprintf(bw, "f %s %s %s\n",
				ref(f.Indexes[i]), ref(f.Indexes[i+1]), ref(f.Indexes[i+2]))
		}
	}
	return bw.Flush()
}
