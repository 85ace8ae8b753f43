// json.go is the JSON wire format of the canonical Document.
// encoding/json sorts map keys, so output is deterministic.

package codec

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// MarshalJSON encodes m as canonical JSON bytes.
func MarshalJSON(m *mesh.Mesh) ([]byte, error) {
	doc, err := Encode(m)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("codec: json marshal: %w", err)
	}

	return data, nil
}

// MarshalJSONIndent encodes m as human-readable JSON bytes.
func MarshalJSONIndent(m *mesh.Mesh) ([]byte, error) {
	doc, err := Encode(m)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: json marshal: %w", err)
	}

	return data, nil
}

// UnmarshalJSON decodes canonical JSON bytes into a fresh mesh.
func UnmarshalJSON(data []byte, opts ...mesh.Option) (*mesh.Mesh, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return Decode(&doc, opts...)
}
