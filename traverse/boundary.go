// boundary.go extracts the boundary loops of a mesh. A boundary halfedge
// is a direction (u,v) that borders no face; the loops chain these
// halfedges corner by corner, which keeps loops separate even when several
// of them touch the same vertex.

package traverse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// halfedge is one directed boundary edge during loop extraction.
type halfedge struct {
	u, v mesh.Key
}

// BoundaryLoops returns the boundary loops of m, each as a cyclic vertex
// list. Loops are pivoted to start at their smallest vertex and ordered by
// that vertex, so the result is deterministic. A closed mesh yields no
// loops. Vertices shared by several loops (touching corners) appear in
// each loop they belong to.
// Complexity: O(V + E).
func BoundaryLoops(m *mesh.Mesh) ([][]mesh.Key, error) {
	if m == nil {
		return nil, ErrMeshNil
	}

	pending := make(map[halfedge]bool)
	var seeds []halfedge
	for _, e := range m.Edges() {
		for _, he := range []halfedge{{e.U, e.V}, {e.V, e.U}} {
			_, hasFace, err := m.HalfedgeFace(he.u, he.v)
			if err != nil {
				return nil, err
			}
			if !hasFace {
				pending[he] = true
				seeds = append(seeds, he)
			}
		}
	}

	limit := m.StepLimit()
	var loops [][]mesh.Key
	for _, seed := range seeds {
		if !pending[seed] {
			continue
		}
		loop := make([]mesh.Key, 0, 8)
		cur := seed
		for steps := 0; ; steps++ {
			if steps > limit {
				return nil, fmt.Errorf("BoundaryLoops(%s): %w", seed.u, mesh.ErrCorruptTopology)
			}
			delete(pending, cur)
			loop = append(loop, cur.u)
			next, err := boundarySuccessor(m, cur)
			if err != nil {
				return nil, err
			}
			if next == seed {
				break
			}
			cur = next
		}
		loops = append(loops, pivotLoop(loop))
	}
	sortLoops(loops)

	return loops, nil
}

// boundarySuccessor finds the boundary halfedge following (u,v): it fans
// around v through the incident faces until the faceless direction out of
// v appears.
func boundarySuccessor(m *mesh.Mesh, he halfedge) (halfedge, error) {
	t := he.u
	for steps := 0; steps <= m.StepLimit(); steps++ {
		f, hasFace, err := m.HalfedgeFace(he.v, t)
		if err != nil {
			return halfedge{}, err
		}
		if !hasFace {
			return halfedge{he.v, t}, nil
		}
		t, err = m.FaceVertexBefore(f, he.v)
		if err != nil {
			return halfedge{}, err
		}
	}

	return halfedge{}, fmt.Errorf("BoundaryLoops(%s): %w", he.v, mesh.ErrCorruptTopology)
}

// pivotLoop rotates the loop so it starts at its smallest vertex.
func pivotLoop(loop []mesh.Key) []mesh.Key {
	if len(loop) == 0 {
		return loop
	}
	start := 0
	for i := 1; i < len(loop); i++ {
		if loop[i].Less(loop[start]) {
			start = i
		}
	}
	out := make([]mesh.Key, 0, len(loop))
	out = append(out, loop[start:]...)
	out = append(out, loop[:start]...)

	return out
}

// sortLoops orders loops by their leading (smallest) vertex, falling back
// to length for loops that share it.
func sortLoops(loops [][]mesh.Key) {
	sort.Slice(loops, func(i, j int) bool {
		if loops[i][0] != loops[j][0] {
			return loops[i][0].Less(loops[j][0])
		}
		return len(loops[i]) < len(loops[j])
	})
}
