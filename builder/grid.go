// SPDX-License-Identifier: MIT
// Package: lvlmesh/builder
//
// grid.go — implementation of the Grid(cols, rows) constructor.
//
// Canonical model:
//   - 2D orthogonal quad grid in the z=0 plane, cols×rows faces.
//   - Vertex keys use the fixed pair scheme (c,r) in column/row order, so
//     coordinates stay explicit in the key itself.
//
// Contract:
//   - cols ≥ 1 and rows ≥ 1 (else ErrTooFewFaces).
//   - Adds (cols+1)·(rows+1) vertices in row-major order with keys
//     PairKey(c,r) and coordinates x=c, y=r, z=0.
//   - Adds cols·rows counterclockwise quad faces, row-major.
//
// Determinism:
//   - Stable vertex order: row-major (r asc, then c asc).
//   - Stable face order: row-major; auto face keys 0,1,2,… follow it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmesh/mesh"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a cols×rows quad grid mesh.
// Complexity: O(cols·rows).
func Grid(cols, rows int, opts ...mesh.Option) (*mesh.Mesh, error) {
	if cols < minGridDim || rows < minGridDim {
		return nil, fmt.Errorf("%s: cols=%d, rows=%d (each must be >= %d): %w",
			methodGrid, cols, rows, minGridDim, ErrTooFewFaces)
	}

	m := mesh.NewMesh(opts...)
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			key := mesh.PairKey(int64(c), int64(r))
			attrs := map[string]any{
				mesh.AttrX: float64(c),
				mesh.AttrY: float64(r),
				mesh.AttrZ: 0.0,
			}
			if _, err := m.AddVertex(mesh.WithKey(key), mesh.WithAttrs(attrs)); err != nil {
				return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, key, err)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cycle := []mesh.Key{
				mesh.PairKey(int64(c), int64(r)),
				mesh.PairKey(int64(c+1), int64(r)),
				mesh.PairKey(int64(c+1), int64(r+1)),
				mesh.PairKey(int64(c), int64(r+1)),
			}
			if _, err := m.AddFace(cycle); err != nil {
				return nil, fmt.Errorf("%s: AddFace(%d,%d): %w", methodGrid, c, r, err)
			}
		}
	}

	return m, nil
}
