// decode.go rebuilds a live mesh from a Document. Topology is derived
// entirely from the vertex and face sections; the halfedge map is
// reconstructed by replaying AddFace, never stored on the wire.

package codec

import (
	"fmt"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// Decode builds a mesh from doc. Missing sections are treated as empty.
// Malformed wire keys surface mesh.ErrBadKey; cycles or cells naming
// elements the document never declares surface ErrBadDocument; edge
// records for edges the faces do not induce surface ErrBadDocument.
// Elements are added in sorted key order, so decoding is deterministic.
// Complexity: O(V log V + E + F log F + C).
func Decode(doc *Document, opts ...mesh.Option) (*mesh.Mesh, error) {
	if doc == nil {
		return nil, ErrBadDocument
	}

	m := mesh.NewMesh(opts...)
	m.UpdateAttributes(doc.Attributes)
	m.UpdateDefaultVertexAttributes(doc.DefaultVertexAttributes)
	m.UpdateDefaultEdgeAttributes(doc.DefaultEdgeAttributes)
	m.UpdateDefaultFaceAttributes(doc.DefaultFaceAttributes)
	m.UpdateDefaultCellAttributes(doc.DefaultCellAttributes)

	vertices, err := decodeKeySet(keysOf(doc.Vertex))
	if err != nil {
		return nil, err
	}
	for _, v := range vertices {
		if _, err := m.AddVertex(mesh.WithKey(v), mesh.WithAttrs(doc.Vertex[v.Encode()])); err != nil {
			return nil, err
		}
	}

	faces, err := decodeKeySet(keysOf(doc.Face))
	if err != nil {
		return nil, err
	}
	for _, f := range faces {
		cycle, err := decodeCycle(doc.Face[f.Encode()])
		if err != nil {
			return nil, err
		}
		for _, v := range cycle {
			if !m.HasVertex(v) {
				return nil, fmt.Errorf("%w: face %s names undeclared vertex %s", ErrBadDocument, f, v)
			}
		}
		if _, err := m.AddFace(cycle, mesh.WithKey(f), mesh.WithAttrs(doc.FaceData[f.Encode()])); err != nil {
			return nil, err
		}
	}

	for uWire, row := range doc.Edge {
		u, err := mesh.DecodeKey(uWire)
		if err != nil {
			return nil, err
		}
		for vWire, attrs := range row {
			v, err := mesh.DecodeKey(vWire)
			if err != nil {
				return nil, err
			}
			if !m.HasEdge(u, v) {
				return nil, fmt.Errorf("%w: edge record {%s, %s} matches no edge", ErrBadDocument, u, v)
			}
			for name, value := range attrs {
				if err := m.SetEdgeAttribute(u, v, name, value); err != nil {
					return nil, err
				}
			}
		}
	}

	cells, err := decodeKeySet(keysOf(doc.Cell))
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		cellFaces, err := decodeCycle(doc.Cell[c.Encode()])
		if err != nil {
			return nil, err
		}
		for _, f := range cellFaces {
			if !m.HasFace(f) {
				return nil, fmt.Errorf("%w: cell %s names undeclared face %s", ErrBadDocument, c, f)
			}
		}
		if _, err := m.AddCell(cellFaces, mesh.WithKey(c), mesh.WithAttrs(doc.CellData[c.Encode()])); err != nil {
			return nil, err
		}
	}

	m.RaiseMaxVertexID(doc.MaxVertexID)
	m.RaiseMaxFaceID(doc.MaxFaceID)
	m.RaiseMaxCellID(doc.MaxCellID)

	return m, nil
}

// keysOf collects the wire keys of any map section.
func keysOf[V any](section map[string]V) []string {
	out := make([]string, 0, len(section))
	for k := range section {
		out = append(out, k)
	}

	return out
}

// decodeKeySet decodes wire keys and returns them sorted.
func decodeKeySet(wire []string) ([]mesh.Key, error) {
	out := make([]mesh.Key, 0, len(wire))
	for _, w := range wire {
		k, err := mesh.DecodeKey(w)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	mesh.SortKeys(out)

	return out, nil
}

// decodeCycle decodes an ordered wire-key list, preserving order.
func decodeCycle(wire []string) ([]mesh.Key, error) {
	out := make([]mesh.Key, len(wire))
	for i, w := range wire {
		k, err := mesh.DecodeKey(w)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}

	return out, nil
}
