// Package mesh: adjacency queries.
//
// Everything here is read-only over the halfedge map and face cycles:
// neighbor enumeration, the ordered one-ring walk, halfedge→face lookup,
// cycle navigation and boundary predicates. The ordered walk carries the
// hard step cap described in types.go.

package mesh

// Neighbors returns the distinct neighbors of v in sorted order.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg log deg).
func (m *Mesh) Neighbors(v Key) ([]Key, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.neighborsLocked(v)
}

func (m *Mesh) neighborsLocked(v Key) ([]Key, error) {
	row, ok := m.halfedge[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Key, 0, len(row))
	for n := range row {
		out = append(out, n)
	}
	SortKeys(out)

	return out, nil
}

// Degree returns the number of distinct neighbors of v.
// Complexity: O(1) beyond the existence check.
func (m *Mesh) Degree(v Key) (int, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	row, ok := m.halfedge[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// OrderedNeighbors returns the neighbors of v in cyclic order around it.
//
// The walk starts from a boundary-starting neighbor when v lies on the
// boundary (so an open fan is traversed end to end), or from the smallest
// neighbor otherwise, and repeatedly advances to the next vertex in the
// face on the far side of the current halfedge. If the walk has not closed
// or hit a boundary within the step cap, the adjacency is corrupt and
// ErrCorruptTopology is returned — never a truncated list.
// Complexity: O(deg).
func (m *Mesh) OrderedNeighbors(v Key) ([]Key, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.orderedNeighborsLocked(v)
}

func (m *Mesh) orderedNeighborsLocked(v Key) ([]Key, error) {
	nbrs, err := m.neighborsLocked(v)
	if err != nil {
		return nil, err
	}
	if len(nbrs) == 0 {
		return nil, nil
	}

	// Boundary-starting neighbor: halfedge (v, n) with no face means the
	// fan opens there; otherwise any (the smallest) neighbor seeds a full
	// cycle.
	start := nbrs[0]
	for _, n := range nbrs {
		if m.halfedge[v][n].IsZero() {
			start = n
			break
		}
	}

	ordered := make([]Key, 0, len(nbrs))
	ordered = append(ordered, start)
	seen := map[Key]struct{}{start: {}}
	for steps := 0; ; steps++ {
		if steps >= m.stepLimit {
			return nil, wrapKey("OrderedNeighbors", v, ErrCorruptTopology)
		}
		cur := ordered[len(ordered)-1]
		f := m.halfedge[cur][v]
		if f.IsZero() {
			break // hit the boundary on the closing side
		}
		next, err := m.faceVertexAfterLocked(f, v)
		if err != nil {
			return nil, err
		}
		if _, closed := seen[next]; closed {
			break
		}
		ordered = append(ordered, next)
		seen[next] = struct{}{}
	}

	return ordered, nil
}

// HalfedgeFace returns the face bordering the directed halfedge (u,v) and
// whether a face is present (false marks a boundary halfedge).
// Returns ErrVertexNotFound for an unknown u, ErrEdgeNotFound when (u,v)
// is not a halfedge of the mesh.
// Complexity: O(1).
func (m *Mesh) HalfedgeFace(u, v Key) (Key, bool, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.halfedgeFaceLocked(u, v)
}

func (m *Mesh) halfedgeFaceLocked(u, v Key) (Key, bool, error) {
	row, ok := m.halfedge[u]
	if !ok {
		return Key{}, false, wrapKey("HalfedgeFace", u, ErrVertexNotFound)
	}
	f, ok := row[v]
	if !ok {
		return Key{}, false, ErrEdgeNotFound
	}

	return f, !f.IsZero(), nil
}

// EdgeFaces returns the faces on both sides of the undirected edge {u,v}
// in sorted order (one entry for a boundary edge, two for an interior
// edge). Returns ErrEdgeNotFound for an unknown edge.
// Complexity: O(1).
func (m *Mesh) EdgeFaces(u, v Key) ([]Key, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if !m.hasEdgeLocked(u, v) {
		return nil, ErrEdgeNotFound
	}
	out := make([]Key, 0, 2)
	if f, ok := m.halfedge[u][v]; ok && !f.IsZero() {
		out = append(out, f)
	}
	if f, ok := m.halfedge[v][u]; ok && !f.IsZero() {
		out = append(out, f)
	}
	SortKeys(out)

	return out, nil
}

// FaceVertexAfter returns the vertex following v in the cycle of f,
// with wraparound. Returns ErrFaceNotFound / ErrVertexNotFound.
// Complexity: O(len(cycle)).
func (m *Mesh) FaceVertexAfter(f, v Key) (Key, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.faceVertexAfterLocked(f, v)
}

func (m *Mesh) faceVertexAfterLocked(f, v Key) (Key, error) {
	cycle, ok := m.faces[f]
	if !ok {
		return Key{}, ErrFaceNotFound
	}
	for i, u := range cycle {
		if u == v {
			return cycle[(i+1)%len(cycle)], nil
		}
	}

	return Key{}, wrapKey("FaceVertexAfter", v, ErrVertexNotFound)
}

// FaceVertexBefore returns the vertex preceding v in the cycle of f,
// with wraparound. Returns ErrFaceNotFound / ErrVertexNotFound.
// Complexity: O(len(cycle)).
func (m *Mesh) FaceVertexBefore(f, v Key) (Key, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.faceVertexBeforeLocked(f, v)
}

func (m *Mesh) faceVertexBeforeLocked(f, v Key) (Key, error) {
	cycle, ok := m.faces[f]
	if !ok {
		return Key{}, ErrFaceNotFound
	}
	n := len(cycle)
	for i, u := range cycle {
		if u == v {
			return cycle[(i+n-1)%n], nil
		}
	}

	return Key{}, wrapKey("FaceVertexBefore", v, ErrVertexNotFound)
}

// IsVertexOnBoundary reports whether any halfedge leaving v lacks a face.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg).
func (m *Mesh) IsVertexOnBoundary(v Key) (bool, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	row, ok := m.halfedge[v]
	if !ok {
		return false, ErrVertexNotFound
	}
	for _, f := range row {
		if f.IsZero() {
			return true, nil
		}
	}

	return false, nil
}

// IsEdgeOnBoundary reports whether either side of {u,v} lacks a face.
// Returns ErrEdgeNotFound for an unknown edge.
// Complexity: O(1).
func (m *Mesh) IsEdgeOnBoundary(u, v Key) (bool, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.isEdgeOnBoundaryLocked(u, v)
}

func (m *Mesh) isEdgeOnBoundaryLocked(u, v Key) (bool, error) {
	if !m.hasEdgeLocked(u, v) {
		return false, ErrEdgeNotFound
	}
	if f, ok := m.halfedge[u][v]; !ok || f.IsZero() {
		return true, nil
	}
	if f, ok := m.halfedge[v][u]; !ok || f.IsZero() {
		return true, nil
	}

	return false, nil
}

// IsFaceOnBoundary reports whether any edge of f is a boundary edge.
// Returns ErrFaceNotFound for an unknown face.
// Complexity: O(len(cycle)).
func (m *Mesh) IsFaceOnBoundary(f Key) (bool, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	cycle, ok := m.faces[f]
	if !ok {
		return false, ErrFaceNotFound
	}
	n := len(cycle)
	for i := 0; i < n; i++ {
		onBoundary, err := m.isEdgeOnBoundaryLocked(cycle[i], cycle[(i+1)%n])
		if err != nil {
			return false, err
		}
		if onBoundary {
			return true, nil
		}
	}

	return false, nil
}
