// encode.go flattens a live mesh into the canonical Document.

package codec

import (
	"github.com/katalvlaran/lvlmesh/mesh"
)

// Encode captures m as a Document. The document is a snapshot: later
// mutations of m do not affect it. Encoding the same mesh twice yields
// equal documents.
// Complexity: O(V + E + F + C).
func Encode(m *mesh.Mesh) (*Document, error) {
	if m == nil {
		return nil, ErrMeshNil
	}

	doc := &Document{
		Attributes:              m.Attributes(),
		DefaultVertexAttributes: m.DefaultVertexAttributes(),
		DefaultEdgeAttributes:   m.DefaultEdgeAttributes(),
		DefaultFaceAttributes:   m.DefaultFaceAttributes(),
		DefaultCellAttributes:   m.DefaultCellAttributes(),
		Vertex:                  make(map[string]map[string]any, m.VertexCount()),
		Face:                    make(map[string][]string, m.FaceCount()),
		MaxVertexID:             m.MaxVertexID(),
		MaxFaceID:               m.MaxFaceID(),
		MaxCellID:               m.MaxCellID(),
	}

	for _, v := range m.Vertices() {
		attrs, err := m.VertexAttributeOverrides(v)
		if err != nil {
			return nil, err
		}
		doc.Vertex[v.Encode()] = attrs
	}

	for _, e := range m.Edges() {
		attrs, err := m.EdgeAttributeOverrides(e.U, e.V)
		if err != nil {
			return nil, err
		}
		if len(attrs) == 0 {
			continue
		}
		canonical := e.Canonical()
		if doc.Edge == nil {
			doc.Edge = make(map[string]map[string]map[string]any)
		}
		row, ok := doc.Edge[canonical.U.Encode()]
		if !ok {
			row = make(map[string]map[string]any)
			doc.Edge[canonical.U.Encode()] = row
		}
		row[canonical.V.Encode()] = attrs
	}

	for _, f := range m.Faces() {
		cycle, err := m.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		encoded := make([]string, len(cycle))
		for i, v := range cycle {
			encoded[i] = v.Encode()
		}
		doc.Face[f.Encode()] = encoded

		attrs, err := m.FaceAttributeOverrides(f)
		if err != nil {
			return nil, err
		}
		if len(attrs) > 0 {
			if doc.FaceData == nil {
				doc.FaceData = make(map[string]map[string]any)
			}
			doc.FaceData[f.Encode()] = attrs
		}
	}

	for _, c := range m.Cells() {
		faces, err := m.CellFaces(c)
		if err != nil {
			return nil, err
		}
		encoded := make([]string, len(faces))
		for i, f := range faces {
			encoded[i] = f.Encode()
		}
		if doc.Cell == nil {
			doc.Cell = make(map[string][]string)
		}
		doc.Cell[c.Encode()] = encoded

		attrs, err := m.CellAttributeOverrides(c)
		if err != nil {
			return nil, err
		}
		if len(attrs) > 0 {
			if doc.CellData == nil {
				doc.CellData = make(map[string]map[string]any)
			}
			doc.CellData[c.Encode()] = attrs
		}
	}

	return doc, nil
}
