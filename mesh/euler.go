// Package mesh: refining Euler operators.
//
// SplitEdge, SplitFace, InsertVertex and SplitStrip mutate topology in
// place while keeping the halfedge invariants intact: every face cycle
// stays consistent with the halfedge map, deleted keys never linger, and
// vertices only appear through the allocator. Each public operation holds
// both locks for its whole duration, so intermediate states are never
// observable.

package mesh

// SplitEdge inserts a new vertex on the edge {u,v}, replacing it with two
// edges and updating both incident face cycles. Without WithAttrs the new
// vertex takes the coordinate midpoint of the endpoints.
// Returns the new vertex key, ErrEdgeNotFound for an unknown edge, and
// AddVertex errors for key clashes.
// Complexity: O(len of both incident cycles).
func (m *Mesh) SplitEdge(u, v Key, opts ...AddOption) (Key, error) {
	cfg := resolveAddConfig(opts)
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	return m.splitEdgeLocked(u, v, cfg)
}

func (m *Mesh) splitEdgeLocked(u, v Key, cfg addConfig) (Key, error) {
	if !m.hasEdgeLocked(u, v) {
		return Key{}, ErrEdgeNotFound
	}
	f1 := m.halfedge[u][v]
	f2 := m.halfedge[v][u]

	if cfg.attrs == nil {
		cu, err := m.vertexCoordinatesLocked(u)
		if err != nil {
			return Key{}, err
		}
		cv, err := m.vertexCoordinatesLocked(v)
		if err != nil {
			return Key{}, err
		}
		cfg.attrs = map[string]any{
			AttrX: (cu[0] + cv[0]) / 2,
			AttrY: (cu[1] + cv[1]) / 2,
			AttrZ: (cu[2] + cv[2]) / 2,
		}
	}
	w, err := m.addVertexLocked(cfg)
	if err != nil {
		return Key{}, err
	}

	// Rewire the halfedges: (u,v) becomes (u,w)+(w,v), the reverse
	// direction becomes (v,w)+(w,u); each half inherits its side's face.
	m.halfedge[u][w] = f1
	m.halfedge[w][v] = f1
	delete(m.halfedge[u], v)
	m.halfedge[v][w] = f2
	m.halfedge[w][u] = f2
	delete(m.halfedge[v], u)
	m.eAttr.drop(Edge{U: u, V: v}.Canonical())

	// Grow the incident cycles around the new vertex.
	if !f1.IsZero() {
		m.faces[f1] = insertAfter(m.faces[f1], u, w)
	}
	if !f2.IsZero() {
		m.faces[f2] = insertAfter(m.faces[f2], v, w)
	}

	return w, nil
}

// SplitFace divides face f into two faces along the chord u→v. Both
// vertices must lie on the cycle of f and must not be adjacent along it.
// The face key f is retired; two fresh face keys are returned.
// Returns ErrFaceNotFound, ErrInvalidSplit.
// Complexity: O(len(cycle)).
func (m *Mesh) SplitFace(f, u, v Key) (Key, Key, error) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	return m.splitFaceLocked(f, u, v)
}

func (m *Mesh) splitFaceLocked(f, u, v Key) (Key, Key, error) {
	cycle, ok := m.faces[f]
	if !ok {
		return Key{}, Key{}, ErrFaceNotFound
	}
	i := indexOf(cycle, u)
	j := indexOf(cycle, v)
	n := len(cycle)
	if i < 0 || j < 0 || i == j {
		return Key{}, Key{}, wrapKey("SplitFace", f, ErrInvalidSplit)
	}
	if (i+1)%n == j || (j+1)%n == i {
		// The chord already exists as a cycle edge.
		return Key{}, Key{}, wrapKey("SplitFace", f, ErrInvalidSplit)
	}

	half1 := sliceCycle(cycle, i, j)
	half2 := sliceCycle(cycle, j, i)
	// Pivot the second half so both halves lead with the chord's near
	// vertex u; the cycle is unchanged, only its starting point.
	half2 = append([]Key{u}, half2[:len(half2)-1]...)

	// Retire f without clearing its halfedges: every boundary halfedge of
	// f is immediately re-claimed by one of the two halves below, and the
	// chord gains faces on both sides.
	delete(m.faces, f)
	m.fAttr.drop(f)
	m.dropCellsReferencing(f)

	f1, err := m.addFaceLocked(half1, addConfig{})
	if err != nil {
		return Key{}, Key{}, err
	}
	f2, err := m.addFaceLocked(half2, addConfig{})
	if err != nil {
		return Key{}, Key{}, err
	}

	return f1, f2, nil
}

// InsertVertex replaces face f with a fan of triangles around a new
// vertex and returns the new vertex plus the new face keys. Without
// WithAttrs the vertex takes the centroid of the cycle's coordinates.
// Returns ErrFaceNotFound and AddVertex/AddFace errors.
// Complexity: O(len(cycle)).
func (m *Mesh) InsertVertex(f Key, opts ...AddOption) (Key, []Key, error) {
	cfg := resolveAddConfig(opts)
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	cycle, ok := m.faces[f]
	if !ok {
		return Key{}, nil, ErrFaceNotFound
	}
	if cfg.attrs == nil {
		var cx, cy, cz float64
		for _, v := range cycle {
			xyz, err := m.vertexCoordinatesLocked(v)
			if err != nil {
				return Key{}, nil, err
			}
			cx += xyz[0]
			cy += xyz[1]
			cz += xyz[2]
		}
		n := float64(len(cycle))
		cfg.attrs = map[string]any{AttrX: cx / n, AttrY: cy / n, AttrZ: cz / n}
	}
	w, err := m.addVertexLocked(cfg)
	if err != nil {
		return Key{}, nil, err
	}

	// Retire the n-gon; its boundary halfedges are re-claimed by the fan.
	delete(m.faces, f)
	m.fAttr.drop(f)
	m.dropCellsReferencing(f)

	n := len(cycle)
	newFaces := make([]Key, 0, n)
	for i := 0; i < n; i++ {
		a, b := cycle[i], cycle[(i+1)%n]
		nf, err := m.addFaceLocked([]Key{a, b, w}, addConfig{})
		if err != nil {
			return Key{}, nil, err
		}
		newFaces = append(newFaces, nf)
	}

	return w, newFaces, nil
}

// SplitStrip refines a quad mesh along the edge strip through {u,v}:
// every strip-crossing edge gains a midpoint vertex and every face the
// strip traverses is split in two between consecutive midpoints, so the
// quad structure of the refined region is preserved.
// Returns the midpoint vertices in strip order.
// Returns ErrEdgeNotFound for an unknown seed, ErrNotQuad when the strip
// runs into a face that is not a quadrilateral.
// Complexity: O(strip length × quad size).
func (m *Mesh) SplitStrip(u, v Key) ([]Key, error) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	strip, closed, err := m.edgeStripLocked(u, v)
	if err != nil {
		return nil, err
	}

	// Faces traversed by the strip, captured before any edge is split:
	// one per edge for a closed strip, one per consecutive pair otherwise.
	limit := len(strip)
	if !closed {
		limit--
	}
	ngons := make([]Key, 0, limit)
	for i := 0; i < limit; i++ {
		e := strip[i]
		f := m.halfedge[e.U][e.V]
		if f.IsZero() {
			return nil, wrapKey("SplitStrip", e.U, ErrCorruptTopology)
		}
		if len(m.faces[f]) != 4 {
			return nil, wrapKey("SplitStrip", f, ErrNotQuad)
		}
		ngons = append(ngons, f)
	}
	if !closed {
		// Both ends must terminate at the boundary, not at a non-quad:
		// the face past the last edge, and the face behind the first
		// (the walk stops in front of a non-quad, but splitting the
		// terminal edge would still grow that face's cycle).
		first, last := strip[0], strip[len(strip)-1]
		if f := m.halfedge[first.V][first.U]; !f.IsZero() {
			return nil, wrapKey("SplitStrip", f, ErrNotQuad)
		}
		if f := m.halfedge[last.U][last.V]; !f.IsZero() {
			return nil, wrapKey("SplitStrip", f, ErrNotQuad)
		}
	}

	// Midpoint every strip edge, then reconnect across each traversed
	// face between consecutive midpoints.
	splits := make([]Key, len(strip))
	for i, e := range strip {
		w, err := m.splitEdgeLocked(e.U, e.V, addConfig{})
		if err != nil {
			return nil, err
		}
		splits[i] = w
	}
	for i, f := range ngons {
		a := splits[i]
		b := splits[(i+1)%len(splits)]
		if _, _, err := m.splitFaceLocked(f, a, b); err != nil {
			return nil, err
		}
	}

	return splits, nil
}

// insertAfter returns cycle with w inserted right after anchor.
func insertAfter(cycle []Key, anchor, w Key) []Key {
	out := make([]Key, 0, len(cycle)+1)
	for _, v := range cycle {
		out = append(out, v)
		if v == anchor {
			out = append(out, w)
		}
	}

	return out
}

// sliceCycle returns the inclusive cycle segment from index i to index j,
// wrapping past the end.
func sliceCycle(cycle []Key, i, j int) []Key {
	n := len(cycle)
	out := make([]Key, 0, n)
	for k := i; ; k = (k + 1) % n {
		out = append(out, cycle[k])
		if k == j {
			break
		}
	}

	return out
}
