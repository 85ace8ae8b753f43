// Package mesh: edge strips and edge loops.
//
// A strip advances across quadrilateral faces (opposite edge of each quad);
// a loop advances around vertex one-rings (the edge "straight through" each
// even-valence interior vertex). Both walks preserve direction, close on
// themselves when the mesh wraps around, and otherwise run boundary to
// boundary by walking once forward and once backward from the seed edge.
// Both carry the hard step cap: exceeding it is ErrCorruptTopology, never a
// truncated path.

package mesh

// EdgeStrip returns the edge strip through {u,v} and whether it is closed.
// The walk crosses each quad face to its opposite edge; it stops at a
// boundary halfedge or a non-quad face. For open strips the result runs
// from one end to the other with the seed edge in walked orientation.
// Returns ErrEdgeNotFound for an unknown seed edge.
// Complexity: O(strip length).
func (m *Mesh) EdgeStrip(u, v Key) ([]Edge, bool, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.edgeStripLocked(u, v)
}

func (m *Mesh) edgeStripLocked(u, v Key) ([]Edge, bool, error) {
	if !m.hasEdgeLocked(u, v) {
		return nil, false, ErrEdgeNotFound
	}
	forward, closed, err := m.stripWalkLocked(u, v)
	if err != nil {
		return nil, false, err
	}
	if closed {
		return forward, true, nil
	}
	backward, _, err := m.stripWalkLocked(v, u)
	if err != nil {
		return nil, false, err
	}

	return spliceWalks(backward, forward), false, nil
}

// stripWalkLocked walks one direction: repeatedly cross the quad on the
// face side of the current halfedge to its opposite edge.
func (m *Mesh) stripWalkLocked(u, v Key) ([]Edge, bool, error) {
	start := Edge{U: u, V: v}
	cur := start
	edges := make([]Edge, 0)
	for steps := 0; ; steps++ {
		if steps >= m.stepLimit {
			return nil, false, wrapKey("EdgeStrip", u, ErrCorruptTopology)
		}
		edges = append(edges, cur)
		f := m.halfedge[cur.U][cur.V]
		if f.IsZero() {
			return edges, false, nil
		}
		cycle := m.faces[f]
		if len(cycle) != 4 {
			return edges, false, nil
		}
		i := indexOf(cycle, cur.U)
		if i < 0 {
			return nil, false, wrapKey("EdgeStrip", cur.U, ErrCorruptTopology)
		}
		// Opposite edge of the quad, oriented so the next face lies ahead.
		next := Edge{U: cycle[(i+3)%4], V: cycle[(i+2)%4]}
		if next == start {
			return edges, true, nil
		}
		cur = next
	}
}

// EdgeLoop returns the edge loop through {u,v} and whether it is closed.
// The walk continues "straight" through every interior vertex of even
// valence (the neighbor opposite the entering edge in the ordered one-ring)
// and terminates at boundary or odd-valence vertices.
// Returns ErrEdgeNotFound for an unknown seed edge.
// Complexity: O(Σ valences along the loop).
func (m *Mesh) EdgeLoop(u, v Key) ([]Edge, bool, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	if !m.hasEdgeLocked(u, v) {
		return nil, false, ErrEdgeNotFound
	}
	forward, closed, err := m.loopWalkLocked(u, v)
	if err != nil {
		return nil, false, err
	}
	if closed {
		return forward, true, nil
	}
	backward, _, err := m.loopWalkLocked(v, u)
	if err != nil {
		return nil, false, err
	}

	return spliceWalks(backward, forward), false, nil
}

// loopWalkLocked walks one direction: at the head vertex, advance to the
// neighbor opposite the tail in the ordered one-ring.
func (m *Mesh) loopWalkLocked(u, v Key) ([]Edge, bool, error) {
	start := Edge{U: u, V: v}
	cur := start
	edges := make([]Edge, 0)
	for steps := 0; ; steps++ {
		if steps >= m.stepLimit {
			return nil, false, wrapKey("EdgeLoop", u, ErrCorruptTopology)
		}
		edges = append(edges, cur)
		onBoundary, err := m.vertexOnBoundaryLocked(cur.V)
		if err != nil {
			return nil, false, err
		}
		if onBoundary {
			return edges, false, nil
		}
		ring, err := m.orderedNeighborsLocked(cur.V)
		if err != nil {
			return nil, false, err
		}
		if len(ring)%2 != 0 {
			return edges, false, nil
		}
		i := indexOf(ring, cur.U)
		if i < 0 {
			return nil, false, wrapKey("EdgeLoop", cur.U, ErrCorruptTopology)
		}
		next := Edge{U: cur.V, V: ring[(i+len(ring)/2)%len(ring)]}
		if next == start {
			return edges, true, nil
		}
		cur = next
	}
}

// vertexOnBoundaryLocked mirrors IsVertexOnBoundary without locking.
func (m *Mesh) vertexOnBoundaryLocked(v Key) (bool, error) {
	row, ok := m.halfedge[v]
	if !ok {
		return false, wrapKey("EdgeLoop", v, ErrVertexNotFound)
	}
	for _, f := range row {
		if f.IsZero() {
			return true, nil
		}
	}

	return false, nil
}

// spliceWalks joins a backward walk (from the reversed seed) with the
// forward walk into one boundary-to-boundary path: the backward tail is
// flipped and reversed, then the forward edges follow.
func spliceWalks(backward, forward []Edge) []Edge {
	out := make([]Edge, 0, len(backward)-1+len(forward))
	for i := len(backward) - 1; i >= 1; i-- {
		out = append(out, backward[i].Reversed())
	}
	out = append(out, forward...)

	return out
}

// indexOf returns the position of k in keys, -1 when absent.
func indexOf(keys []Key, k Key) int {
	for i, u := range keys {
		if u == k {
			return i
		}
	}

	return -1
}
