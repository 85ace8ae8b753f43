// Package mesh: public attribute access per element kind.
//
// These methods are thin wrappers binding the generic two-layer store
// (attrs.go) to the element catalogs: they validate existence, resolve the
// edge direction to the canonical undirected record, and delegate. Reads
// resolve override → default → nil; unknown attribute names are not an
// error, missing elements always are. Batch setters stop at the first
// missing element so a partially applied batch is never mistaken for a
// complete one.

package mesh

// Attribute returns a structure-wide attribute value.
func (m *Mesh) Attribute(name string) (any, bool) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	value, ok := m.attributes[name]

	return value, ok
}

// SetAttribute sets a structure-wide attribute.
func (m *Mesh) SetAttribute(name string, value any) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.attributes[name] = value
}

// UnsetAttribute removes a structure-wide attribute.
func (m *Mesh) UnsetAttribute(name string) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	delete(m.attributes, name)
}

// Attributes returns a copy of the structure-wide attribute map.
func (m *Mesh) Attributes() map[string]any {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	out := make(map[string]any, len(m.attributes))
	for name, value := range m.attributes {
		out[name] = value
	}

	return out
}

// UpdateAttributes merges attrs into the structure-wide attribute map.
func (m *Mesh) UpdateAttributes(attrs map[string]any) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	for name, value := range attrs {
		m.attributes[name] = value
	}
}

// --- vertices ---------------------------------------------------------------

// VertexAttribute resolves name for vertex v: override first, then the
// vertex default map, then nil. Unknown names are not an error; an unknown
// vertex is ErrVertexNotFound.
func (m *Mesh) VertexAttribute(v Key, name string) (any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.halfedge[v]; !ok {
		return nil, wrapKey("VertexAttribute", v, ErrVertexNotFound)
	}
	value, _ := m.vAttr.get(v, name)

	return value, nil
}

// SetVertexAttribute writes an override on vertex v.
func (m *Mesh) SetVertexAttribute(v Key, name string, value any) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.halfedge[v]; !ok {
		return wrapKey("SetVertexAttribute", v, ErrVertexNotFound)
	}
	m.vAttr.set(v, name, value)

	return nil
}

// UnsetVertexAttribute deletes only the override on v, restoring the
// default-map visibility of name.
func (m *Mesh) UnsetVertexAttribute(v Key, name string) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.halfedge[v]; !ok {
		return wrapKey("UnsetVertexAttribute", v, ErrVertexNotFound)
	}
	m.vAttr.unset(v, name)

	return nil
}

// VertexAttributeView returns a live view of v's attributes.
func (m *Mesh) VertexAttributeView(v Key) (*View, error) {
	m.muAdj.RLock()
	if _, ok := m.halfedge[v]; !ok {
		m.muAdj.RUnlock()
		return nil, wrapKey("VertexAttributeView", v, ErrVertexNotFound)
	}
	m.muAdj.RUnlock()

	return newView(&m.muElem, m.vAttr, v), nil
}

// SetVerticesAttribute writes the same override on many vertices, stopping
// at the first missing vertex.
func (m *Mesh) SetVerticesAttribute(vs []Key, name string, value any) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	for _, v := range vs {
		if _, ok := m.halfedge[v]; !ok {
			return wrapKey("SetVerticesAttribute", v, ErrVertexNotFound)
		}
		m.vAttr.set(v, name, value)
	}

	return nil
}

// UpdateDefaultVertexAttributes merges attrs into the vertex default map.
// Existing per-vertex overrides are never overwritten.
func (m *Mesh) UpdateDefaultVertexAttributes(attrs map[string]any) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.vAttr.updateDefaults(attrs)
}

// DefaultVertexAttributes returns a copy of the vertex default map.
func (m *Mesh) DefaultVertexAttributes() map[string]any {
	m.muElem.RLock()
	defer m.muElem.RUnlock()

	return m.vAttr.defaultsMap()
}

// VertexAttributeOverrides returns a copy of v's explicit override record,
// nil when the vertex carries none. Used by the serialization codec.
func (m *Mesh) VertexAttributeOverrides(v Key) (map[string]any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.halfedge[v]; !ok {
		return nil, wrapKey("VertexAttributeOverrides", v, ErrVertexNotFound)
	}

	return m.vAttr.overridesOf(v), nil
}

// --- edges ------------------------------------------------------------------

// EdgeAttribute resolves name for the undirected edge {u,v}; (u,v) and
// (v,u) address the same record.
func (m *Mesh) EdgeAttribute(u, v Key, name string) (any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if !m.hasEdgeLocked(u, v) {
		return nil, ErrEdgeNotFound
	}
	value, _ := m.eAttr.get(Edge{U: u, V: v}.Canonical(), name)

	return value, nil
}

// SetEdgeAttribute writes an override on the undirected edge {u,v}.
func (m *Mesh) SetEdgeAttribute(u, v Key, name string, value any) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if !m.hasEdgeLocked(u, v) {
		return ErrEdgeNotFound
	}
	m.eAttr.set(Edge{U: u, V: v}.Canonical(), name, value)

	return nil
}

// UnsetEdgeAttribute deletes only the override on {u,v}.
func (m *Mesh) UnsetEdgeAttribute(u, v Key, name string) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if !m.hasEdgeLocked(u, v) {
		return ErrEdgeNotFound
	}
	m.eAttr.unset(Edge{U: u, V: v}.Canonical(), name)

	return nil
}

// EdgeAttributeView returns a live view of the edge's attributes.
func (m *Mesh) EdgeAttributeView(u, v Key) (*View, error) {
	m.muAdj.RLock()
	if !m.hasEdgeLocked(u, v) {
		m.muAdj.RUnlock()
		return nil, ErrEdgeNotFound
	}
	m.muAdj.RUnlock()

	return newView(&m.muElem, m.eAttr, Edge{U: u, V: v}.Canonical()), nil
}

// SetEdgesAttribute writes the same override on many edges, stopping at
// the first missing edge.
func (m *Mesh) SetEdgesAttribute(edges []Edge, name string, value any) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	for _, e := range edges {
		if !m.hasEdgeLocked(e.U, e.V) {
			return ErrEdgeNotFound
		}
		m.eAttr.set(e.Canonical(), name, value)
	}

	return nil
}

// UpdateDefaultEdgeAttributes merges attrs into the edge default map.
func (m *Mesh) UpdateDefaultEdgeAttributes(attrs map[string]any) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.eAttr.updateDefaults(attrs)
}

// DefaultEdgeAttributes returns a copy of the edge default map.
func (m *Mesh) DefaultEdgeAttributes() map[string]any {
	m.muElem.RLock()
	defer m.muElem.RUnlock()

	return m.eAttr.defaultsMap()
}

// EdgeAttributeOverrides returns a copy of the edge's override record.
func (m *Mesh) EdgeAttributeOverrides(u, v Key) (map[string]any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if !m.hasEdgeLocked(u, v) {
		return nil, ErrEdgeNotFound
	}

	return m.eAttr.overridesOf(Edge{U: u, V: v}.Canonical()), nil
}

// --- faces ------------------------------------------------------------------

// FaceAttribute resolves name for face f.
func (m *Mesh) FaceAttribute(f Key, name string) (any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.faces[f]; !ok {
		return nil, wrapKey("FaceAttribute", f, ErrFaceNotFound)
	}
	value, _ := m.fAttr.get(f, name)

	return value, nil
}

// SetFaceAttribute writes an override on face f.
func (m *Mesh) SetFaceAttribute(f Key, name string, value any) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.faces[f]; !ok {
		return wrapKey("SetFaceAttribute", f, ErrFaceNotFound)
	}
	m.fAttr.set(f, name, value)

	return nil
}

// UnsetFaceAttribute deletes only the override on f.
func (m *Mesh) UnsetFaceAttribute(f Key, name string) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.faces[f]; !ok {
		return wrapKey("UnsetFaceAttribute", f, ErrFaceNotFound)
	}
	m.fAttr.unset(f, name)

	return nil
}

// FaceAttributeView returns a live view of f's attributes.
func (m *Mesh) FaceAttributeView(f Key) (*View, error) {
	m.muAdj.RLock()
	if _, ok := m.faces[f]; !ok {
		m.muAdj.RUnlock()
		return nil, wrapKey("FaceAttributeView", f, ErrFaceNotFound)
	}
	m.muAdj.RUnlock()

	return newView(&m.muElem, m.fAttr, f), nil
}

// SetFacesAttribute writes the same override on many faces, stopping at
// the first missing face.
func (m *Mesh) SetFacesAttribute(fs []Key, name string, value any) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	for _, f := range fs {
		if _, ok := m.faces[f]; !ok {
			return wrapKey("SetFacesAttribute", f, ErrFaceNotFound)
		}
		m.fAttr.set(f, name, value)
	}

	return nil
}

// UpdateDefaultFaceAttributes merges attrs into the face default map.
func (m *Mesh) UpdateDefaultFaceAttributes(attrs map[string]any) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.fAttr.updateDefaults(attrs)
}

// DefaultFaceAttributes returns a copy of the face default map.
func (m *Mesh) DefaultFaceAttributes() map[string]any {
	m.muElem.RLock()
	defer m.muElem.RUnlock()

	return m.fAttr.defaultsMap()
}

// FaceAttributeOverrides returns a copy of f's override record.
func (m *Mesh) FaceAttributeOverrides(f Key) (map[string]any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.faces[f]; !ok {
		return nil, wrapKey("FaceAttributeOverrides", f, ErrFaceNotFound)
	}

	return m.fAttr.overridesOf(f), nil
}

// --- cells ------------------------------------------------------------------

// CellAttribute resolves name for cell c.
func (m *Mesh) CellAttribute(c Key, name string) (any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.cells[c]; !ok {
		return nil, wrapKey("CellAttribute", c, ErrCellNotFound)
	}
	value, _ := m.cAttr.get(c, name)

	return value, nil
}

// SetCellAttribute writes an override on cell c.
func (m *Mesh) SetCellAttribute(c Key, name string, value any) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.cells[c]; !ok {
		return wrapKey("SetCellAttribute", c, ErrCellNotFound)
	}
	m.cAttr.set(c, name, value)

	return nil
}

// UnsetCellAttribute deletes only the override on c.
func (m *Mesh) UnsetCellAttribute(c Key, name string) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.cells[c]; !ok {
		return wrapKey("UnsetCellAttribute", c, ErrCellNotFound)
	}
	m.cAttr.unset(c, name)

	return nil
}

// CellAttributeView returns a live view of c's attributes.
func (m *Mesh) CellAttributeView(c Key) (*View, error) {
	m.muAdj.RLock()
	if _, ok := m.cells[c]; !ok {
		m.muAdj.RUnlock()
		return nil, wrapKey("CellAttributeView", c, ErrCellNotFound)
	}
	m.muAdj.RUnlock()

	return newView(&m.muElem, m.cAttr, c), nil
}

// UpdateDefaultCellAttributes merges attrs into the cell default map.
func (m *Mesh) UpdateDefaultCellAttributes(attrs map[string]any) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.cAttr.updateDefaults(attrs)
}

// DefaultCellAttributes returns a copy of the cell default map.
func (m *Mesh) DefaultCellAttributes() map[string]any {
	m.muElem.RLock()
	defer m.muElem.RUnlock()

	return m.cAttr.defaultsMap()
}

// CellAttributeOverrides returns a copy of c's override record.
func (m *Mesh) CellAttributeOverrides(c Key) (map[string]any, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.cells[c]; !ok {
		return nil, wrapKey("CellAttributeOverrides", c, ErrCellNotFound)
	}

	return m.cAttr.overridesOf(c), nil
}

// --- allocator state --------------------------------------------------------

// MaxVertexID reports the allocator's vertex counter.
func (m *Mesh) MaxVertexID() int64 {
	m.muElem.RLock()
	defer m.muElem.RUnlock()

	return m.alloc.maxVertex
}

// MaxFaceID reports the allocator's face counter.
func (m *Mesh) MaxFaceID() int64 {
	m.muElem.RLock()
	defer m.muElem.RUnlock()

	return m.alloc.maxFace
}

// MaxCellID reports the allocator's cell counter.
func (m *Mesh) MaxCellID() int64 {
	m.muElem.RLock()
	defer m.muElem.RUnlock()

	return m.alloc.maxCell
}

// RaiseMaxVertexID lifts the vertex counter to at least n; it never drops.
// Used when restoring serialized allocator state.
func (m *Mesh) RaiseMaxVertexID(n int64) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	if n > m.alloc.maxVertex {
		m.alloc.maxVertex = n
	}
}

// RaiseMaxFaceID lifts the face counter to at least n; it never drops.
func (m *Mesh) RaiseMaxFaceID(n int64) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	if n > m.alloc.maxFace {
		m.alloc.maxFace = n
	}
}

// RaiseMaxCellID lifts the cell counter to at least n; it never drops.
func (m *Mesh) RaiseMaxCellID(n int64) {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	if n > m.alloc.maxCell {
		m.alloc.maxCell = n
	}
}
