package mesh

// Clone returns a deep copy of the mesh: every vertex, edge, face and cell
// together with its attribute overrides, plus structure attributes,
// defaults and allocator counters. Mutating the clone never touches the
// original.
// Complexity: O(V + E + F + C).
func (m *Mesh) Clone() (*Mesh, error) {
	return m.rebuildWith(nil)
}

// CloneEmpty returns a mesh with the same structure attributes, default
// attribute layers and step limit, but no elements. Useful as a scratch
// target that inherits the source's configuration.
// Complexity: O(D) over the default-attribute entries.
func (m *Mesh) CloneEmpty() *Mesh {
	out := NewMesh(WithStepLimit(m.stepLimit))
	out.UpdateAttributes(m.Attributes())
	out.UpdateDefaultVertexAttributes(m.DefaultVertexAttributes())
	out.UpdateDefaultEdgeAttributes(m.DefaultEdgeAttributes())
	out.UpdateDefaultFaceAttributes(m.DefaultFaceAttributes())
	out.UpdateDefaultCellAttributes(m.DefaultCellAttributes())

	return out
}
