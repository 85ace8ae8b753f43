// types.go declares the canonical Document and the codec's sentinel
// errors.

package codec

import "errors"

// Sentinel errors for document processing.
var (
	// ErrMeshNil is returned if a nil mesh pointer is passed to Encode.
	ErrMeshNil = errors.New("codec: mesh is nil")

	// ErrBadDocument is returned when a document is structurally
	// inconsistent: a face cycle or cell names an element the document
	// never declares, or an edge record references an edge the faces do
	// not induce.
	ErrBadDocument = errors.New("codec: malformed document")
)

// Document is the canonical serialized form of a mesh. Every element key
// appears in its wire encoding (mesh.Key.Encode): "i:<n>" for integers,
// "s:<text>" for strings, "p:<a>,<b>" for pairs. Map-valued sections make
// the document JSON-ready as-is; both encoding/json and CBOR Core
// Deterministic Encoding sort map keys, so the same mesh always yields the
// same bytes.
//
// The vertex section records every vertex even when it has no overrides
// (an empty map), so isolated vertices survive the round trip. The edge
// section nests the two endpoint keys instead of joining them with a
// separator, since string keys may contain any character.
type Document struct {
	Attributes map[string]any `json:"attributes,omitempty"`

	DefaultVertexAttributes map[string]any `json:"default_vertex_attributes,omitempty"`
	DefaultEdgeAttributes   map[string]any `json:"default_edge_attributes,omitempty"`
	DefaultFaceAttributes   map[string]any `json:"default_face_attributes,omitempty"`
	DefaultCellAttributes   map[string]any `json:"default_cell_attributes,omitempty"`

	// Vertex maps every vertex key to its attribute overrides.
	Vertex map[string]map[string]any `json:"vertex"`

	// Edge holds overrides of attributed edges, keyed u then v with
	// u <= v (canonical undirected order). Unattributed edges are not
	// recorded; topology is rebuilt from the face cycles alone.
	Edge map[string]map[string]map[string]any `json:"edge,omitempty"`

	// Face maps every face key to its vertex cycle.
	Face map[string][]string `json:"face"`

	// FaceData holds overrides of attributed faces.
	FaceData map[string]map[string]any `json:"face_data,omitempty"`

	// Cell maps every cell key to its sorted face keys.
	Cell map[string][]string `json:"cell,omitempty"`

	// CellData holds overrides of attributed cells.
	CellData map[string]map[string]any `json:"cell_data,omitempty"`

	MaxVertexID int64 `json:"max_vertex_id"`
	MaxFaceID   int64 `json:"max_face_id"`
	MaxCellID   int64 `json:"max_cell_id"`
}
