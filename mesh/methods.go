// Package mesh: core Euler builder operations and catalog queries.
//
// This file provides thread-safe operations for vertex, face and cell
// management on the Mesh type defined in types.go. Mutators acquire both
// locks (muElem then muAdj, always in that order) so that attribute layers
// and adjacency move together and intermediate states are never observable;
// adjacency invariants hold again before any lock is released.
//
// Adjacency is stored as a nested map halfedge[u][v] = face, allowing
// constant-time lookup of the face bordering a directed halfedge.

package mesh

// AddVertex inserts a new vertex and returns its key.
// With WithKey the caller's key is used (and, when integer, observed by the
// allocator); otherwise the next auto key is allocated. WithAttrs seeds
// attribute overrides.
// Returns ErrVertexExists if the key is already in use.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(opts ...AddOption) (Key, error) {
	cfg := resolveAddConfig(opts)
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	return m.addVertexLocked(cfg)
}

// addVertexLocked implements AddVertex with both locks held.
func (m *Mesh) addVertexLocked(cfg addConfig) (Key, error) {
	if !cfg.key.IsZero() {
		if _, exists := m.halfedge[cfg.key]; exists {
			return Key{}, ErrVertexExists
		}
	}
	key := allocate(&m.alloc.maxVertex, cfg.key)
	m.halfedge[key] = make(map[Key]Key)
	if cfg.attrs != nil {
		m.vAttr.setAll(key, cfg.attrs)
	}

	return key, nil
}

// AddFace inserts a face from an ordered vertex cycle and returns its key.
// Orientation matters: consecutive cycle entries (u,v), including the
// wraparound pair, become the directed halfedges carrying the face; absent
// reverse halfedges are created as boundary entries.
//
// The cycle is normalized first (consecutive duplicates collapsed,
// including wraparound). Returns ErrFaceTooFewVertices for cycles shorter
// than 3 after normalization, ErrFaceRepeatedVertex for cycles revisiting
// a vertex, ErrVertexNotFound for unknown cycle entries, and ErrFaceExists
// for a duplicate key. On error the face is not created.
// Complexity: O(len(cycle)).
func (m *Mesh) AddFace(cycle []Key, opts ...AddOption) (Key, error) {
	cfg := resolveAddConfig(opts)
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	return m.addFaceLocked(cycle, cfg)
}

// addFaceLocked implements AddFace with both locks held.
func (m *Mesh) addFaceLocked(cycle []Key, cfg addConfig) (Key, error) {
	cycle = normalizeCycle(cycle)
	if len(cycle) < 3 {
		return Key{}, ErrFaceTooFewVertices
	}
	seen := make(map[Key]struct{}, len(cycle))
	for _, v := range cycle {
		if _, dup := seen[v]; dup {
			return Key{}, ErrFaceRepeatedVertex
		}
		seen[v] = struct{}{}
		if _, ok := m.halfedge[v]; !ok {
			return Key{}, wrapKey("AddFace", v, ErrVertexNotFound)
		}
	}
	if !cfg.key.IsZero() {
		if _, exists := m.faces[cfg.key]; exists {
			return Key{}, ErrFaceExists
		}
	}
	f := allocate(&m.alloc.maxFace, cfg.key)

	n := len(cycle)
	for i := 0; i < n; i++ {
		u, v := cycle[i], cycle[(i+1)%n]
		m.halfedge[u][v] = f
		if _, ok := m.halfedge[v][u]; !ok {
			m.halfedge[v][u] = Key{}
		}
	}
	m.faces[f] = cycle
	if cfg.attrs != nil {
		m.fAttr.setAll(f, cfg.attrs)
	}

	return f, nil
}

// DeleteVertex removes a vertex, every face incident to it, and every edge
// left faceless by those deletions. Attribute overrides of the removed
// elements are dropped; untouched vertices survive.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(Σ incident face sizes).
func (m *Mesh) DeleteVertex(v Key) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	return m.deleteVertexLocked(v)
}

// deleteVertexLocked implements DeleteVertex with both locks held.
func (m *Mesh) deleteVertexLocked(v Key) error {
	if _, ok := m.halfedge[v]; !ok {
		return ErrVertexNotFound
	}
	// Delete incident faces one at a time; each deletion may remove edges
	// around v, so re-scan rather than iterate a stale snapshot.
	for {
		target, found := m.anyIncidentFace(v)
		if !found {
			break
		}
		if err := m.deleteFaceLocked(target); err != nil {
			return err
		}
	}
	// Residual faceless edges around v (none after face deletion in a
	// well-formed mesh, kept as a sweep for robustness).
	for n := range m.halfedge[v] {
		delete(m.halfedge[n], v)
		m.eAttr.drop(Edge{U: v, V: n}.Canonical())
	}
	delete(m.halfedge, v)
	m.vAttr.drop(v)

	return nil
}

// anyIncidentFace returns some face incident to v, if any.
func (m *Mesh) anyIncidentFace(v Key) (Key, bool) {
	for n, f := range m.halfedge[v] {
		if !f.IsZero() {
			return f, true
		}
		if rf, ok := m.halfedge[n][v]; ok && !rf.IsZero() {
			return rf, true
		}
	}

	return Key{}, false
}

// DeleteFace removes a face, clearing the face reference from every
// halfedge on its boundary (turning them into boundary halfedges) and
// removing edges whose both sides become faceless. Vertices survive.
// Cells referencing the face are deleted with it.
// Returns ErrFaceNotFound if the face does not exist.
// Complexity: O(len(cycle) + |cells|).
func (m *Mesh) DeleteFace(f Key) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	return m.deleteFaceLocked(f)
}

// deleteFaceLocked implements DeleteFace with both locks held.
func (m *Mesh) deleteFaceLocked(f Key) error {
	cycle, ok := m.faces[f]
	if !ok {
		return ErrFaceNotFound
	}
	n := len(cycle)
	for i := 0; i < n; i++ {
		u, v := cycle[i], cycle[(i+1)%n]
		if rev, found := m.halfedge[v][u]; found && rev.IsZero() {
			// Both sides faceless: the edge disappears entirely.
			delete(m.halfedge[u], v)
			delete(m.halfedge[v], u)
			m.eAttr.drop(Edge{U: u, V: v}.Canonical())
		} else {
			m.halfedge[u][v] = Key{}
		}
	}
	delete(m.faces, f)
	m.fAttr.drop(f)
	m.dropCellsReferencing(f)

	return nil
}

// dropCellsReferencing cascades face deletion one dimension up.
func (m *Mesh) dropCellsReferencing(f Key) {
	for c, faces := range m.cells {
		for _, cf := range faces {
			if cf == f {
				delete(m.cells, c)
				m.cAttr.drop(c)
				break
			}
		}
	}
}

// AddCell inserts a volumetric cell bounded by the given faces and returns
// its key. Faces must already exist; duplicates in the list are collapsed.
// Returns ErrFaceNotFound for unknown faces, ErrCellExists for a duplicate
// key.
// Complexity: O(len(faces) log len(faces)).
func (m *Mesh) AddCell(faces []Key, opts ...AddOption) (Key, error) {
	cfg := resolveAddConfig(opts)
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	seen := make(map[Key]struct{}, len(faces))
	bounds := make([]Key, 0, len(faces))
	for _, f := range faces {
		if _, ok := m.faces[f]; !ok {
			return Key{}, wrapKey("AddCell", f, ErrFaceNotFound)
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		bounds = append(bounds, f)
	}
	if !cfg.key.IsZero() {
		if _, exists := m.cells[cfg.key]; exists {
			return Key{}, ErrCellExists
		}
	}
	c := allocate(&m.alloc.maxCell, cfg.key)
	SortKeys(bounds)
	m.cells[c] = bounds
	if cfg.attrs != nil {
		m.cAttr.setAll(c, cfg.attrs)
	}

	return c, nil
}

// DeleteCell removes a cell and its attribute overrides; bounding faces
// survive. Returns ErrCellNotFound if the cell does not exist.
// Complexity: O(1).
func (m *Mesh) DeleteCell(c Key) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	if _, ok := m.cells[c]; !ok {
		return ErrCellNotFound
	}
	delete(m.cells, c)
	m.cAttr.drop(c)

	return nil
}

// HasVertex reports whether a vertex with the given key exists.
// Complexity: O(1).
func (m *Mesh) HasVertex(v Key) bool {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	_, ok := m.halfedge[v]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (m *Mesh) HasEdge(u, v Key) bool {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.hasEdgeLocked(u, v)
}

func (m *Mesh) hasEdgeLocked(u, v Key) bool {
	if _, ok := m.halfedge[u][v]; ok {
		return true
	}
	_, ok := m.halfedge[v][u]

	return ok
}

// HasFace reports whether a face with the given key exists.
// Complexity: O(1).
func (m *Mesh) HasFace(f Key) bool {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	_, ok := m.faces[f]

	return ok
}

// HasCell reports whether a cell with the given key exists.
// Complexity: O(1).
func (m *Mesh) HasCell(c Key) bool {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	_, ok := m.cells[c]

	return ok
}

// Vertices returns all vertex keys in sorted order.
// Complexity: O(V log V).
func (m *Mesh) Vertices() []Key {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	out := make([]Key, 0, len(m.halfedge))
	for v := range m.halfedge {
		out = append(out, v)
	}
	SortKeys(out)

	return out
}

// Edges returns every undirected edge in canonical sorted order.
// Complexity: O(E log E).
func (m *Mesh) Edges() []Edge {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.edgesLocked()
}

func (m *Mesh) edgesLocked() []Edge {
	seen := make(map[Edge]struct{})
	out := make([]Edge, 0)
	for u, row := range m.halfedge {
		for v := range row {
			e := Edge{U: u, V: v}.Canonical()
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	SortEdges(out)

	return out
}

// Faces returns all face keys in sorted order.
// Complexity: O(F log F).
func (m *Mesh) Faces() []Key {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	out := make([]Key, 0, len(m.faces))
	for f := range m.faces {
		out = append(out, f)
	}
	SortKeys(out)

	return out
}

// Cells returns all cell keys in sorted order.
// Complexity: O(C log C).
func (m *Mesh) Cells() []Key {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	out := make([]Key, 0, len(m.cells))
	for c := range m.cells {
		out = append(out, c)
	}
	SortKeys(out)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (m *Mesh) VertexCount() int {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return len(m.halfedge)
}

// EdgeCount returns the number of undirected edges. O(E).
func (m *Mesh) EdgeCount() int {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	count := 0
	for u, row := range m.halfedge {
		for v := range row {
			if _, ok := m.halfedge[v][u]; ok {
				// Reverse entry exists: count the pair from its smaller
				// endpoint only.
				if u.Less(v) {
					count++
				}
			} else {
				count++
			}
		}
	}

	return count
}

// FaceCount returns the number of faces. O(1).
func (m *Mesh) FaceCount() int {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return len(m.faces)
}

// CellCount returns the number of cells. O(1).
func (m *Mesh) CellCount() int {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return len(m.cells)
}

// FaceVertices returns a copy of the ordered vertex cycle of f.
// Complexity: O(len(cycle)).
func (m *Mesh) FaceVertices(f Key) ([]Key, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	cycle, ok := m.faces[f]
	if !ok {
		return nil, ErrFaceNotFound
	}
	out := make([]Key, len(cycle))
	copy(out, cycle)

	return out, nil
}

// CellFaces returns a copy of the sorted bounding face keys of c.
// Complexity: O(len(faces)).
func (m *Mesh) CellFaces(c Key) ([]Key, error) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	faces, ok := m.cells[c]
	if !ok {
		return nil, ErrCellNotFound
	}
	out := make([]Key, len(faces))
	copy(out, faces)

	return out, nil
}

// Clear resets the mesh to the empty state: catalogs, attribute overrides,
// structure attributes and the allocator. Default-attribute maps and the
// step limit survive a Clear.
func (m *Mesh) Clear() {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.Lock()
	defer m.muAdj.Unlock()

	m.attributes = make(map[string]any)
	m.alloc.reset()
	m.halfedge = make(map[Key]map[Key]Key)
	m.faces = make(map[Key][]Key)
	m.cells = make(map[Key][]Key)
	m.vAttr.overrides = make(map[Key]map[string]any)
	m.eAttr.overrides = make(map[Edge]map[string]any)
	m.fAttr.overrides = make(map[Key]map[string]any)
	m.cAttr.overrides = make(map[Key]map[string]any)
}

// normalizeCycle collapses consecutive duplicate vertices, including the
// wraparound pair, and returns a fresh slice.
func normalizeCycle(cycle []Key) []Key {
	out := make([]Key, 0, len(cycle))
	for _, v := range cycle {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	return out
}
