// Package mesh: the vertex-list / face-list boundary.
//
// File-format collaborators (OBJ/PLY/STL readers and writers) speak in
// positional indices, not keys. FromVerticesAndFaces and
// ToVerticesAndFaces translate between the two worlds; the index↔key
// remap is part of this boundary, not of the core.

package mesh

// FromVerticesAndFaces builds a mesh from a coordinate list and faces
// given as positional indices into it. Vertices receive auto integer keys
// in list order with x/y/z stored as ordinary attributes.
// Returns ErrVertexNotFound (wrapped with the offending index) when a face
// references an index outside the vertex list, plus AddFace's own errors.
// Complexity: O(V + Σ len(face)).
func FromVerticesAndFaces(vertices [][3]float64, faces [][]int, opts ...Option) (*Mesh, error) {
	m := NewMesh(opts...)
	keys := make([]Key, len(vertices))
	for i, xyz := range vertices {
		key, err := m.AddVertex(WithAttrs(map[string]any{
			AttrX: xyz[0], AttrY: xyz[1], AttrZ: xyz[2],
		}))
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	for _, face := range faces {
		cycle := make([]Key, len(face))
		for i, idx := range face {
			if idx < 0 || idx >= len(keys) {
				return nil, wrapKey("FromVerticesAndFaces", IntKey(int64(idx)), ErrVertexNotFound)
			}
			cycle[i] = keys[idx]
		}
		if _, err := m.AddFace(cycle); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ToVerticesAndFaces exports the mesh as a coordinate list plus faces of
// positional indices. Vertices appear in sorted key order; faces in sorted
// face-key order. The inverse of FromVerticesAndFaces up to the remap.
// Complexity: O(V log V + F log F + Σ len(cycle)).
func (m *Mesh) ToVerticesAndFaces() ([][3]float64, [][]int, error) {
	vkeys := m.Vertices()
	index := make(map[Key]int, len(vkeys))
	coords := make([][3]float64, len(vkeys))
	for i, v := range vkeys {
		index[v] = i
		xyz, err := m.VertexCoordinates(v)
		if err != nil {
			return nil, nil, err
		}
		coords[i] = xyz
	}
	fkeys := m.Faces()
	faces := make([][]int, len(fkeys))
	for i, f := range fkeys {
		cycle, err := m.FaceVertices(f)
		if err != nil {
			return nil, nil, err
		}
		face := make([]int, len(cycle))
		for j, v := range cycle {
			face[j] = index[v]
		}
		faces[i] = face
	}

	return coords, faces, nil
}

// VertexCoordinates reads the conventional x/y/z attributes of v as a
// coordinate triple. Absent or non-numeric attributes read as 0.
func (m *Mesh) VertexCoordinates(v Key) ([3]float64, error) {
	m.muElem.RLock()
	defer m.muElem.RUnlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()

	return m.vertexCoordinatesLocked(v)
}

func (m *Mesh) vertexCoordinatesLocked(v Key) ([3]float64, error) {
	if _, ok := m.halfedge[v]; !ok {
		return [3]float64{}, wrapKey("VertexCoordinates", v, ErrVertexNotFound)
	}
	var xyz [3]float64
	for i, name := range [...]string{AttrX, AttrY, AttrZ} {
		if value, ok := m.vAttr.get(v, name); ok {
			xyz[i] = toFloat(value)
		}
	}

	return xyz, nil
}

// SetVertexCoordinates writes the conventional x/y/z attributes of v.
func (m *Mesh) SetVertexCoordinates(v Key, xyz [3]float64) error {
	m.muElem.Lock()
	defer m.muElem.Unlock()
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	if _, ok := m.halfedge[v]; !ok {
		return wrapKey("SetVertexCoordinates", v, ErrVertexNotFound)
	}
	m.vAttr.set(v, AttrX, xyz[0])
	m.vAttr.set(v, AttrY, xyz[1])
	m.vAttr.set(v, AttrZ, xyz[2])

	return nil
}

// toFloat coerces the numeric types that reach attribute maps (including
// values decoded from JSON/CBOR) to float64; anything else reads as 0.
func toFloat(value any) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}
