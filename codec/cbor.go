// cbor.go is the binary wire format of the canonical Document.

package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer encoding,
// no indefinite-length items. Same logical mesh always produces
// identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
// Unknown fields are silently ignored for forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Attribute values decode into any-typed targets. The CBOR
		// default map type for those is map[interface{}]interface{},
		// which is incompatible with the map[string]any attribute
		// layers and with encoding/json. Struct field decoding is
		// unaffected by this setting.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes m as deterministic CBOR bytes.
func MarshalCBOR(m *mesh.Mesh) ([]byte, error) {
	doc, err := Encode(m)
	if err != nil {
		return nil, err
	}
	data, err := encMode.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("codec: cbor marshal: %w", err)
	}

	return data, nil
}

// UnmarshalCBOR decodes CBOR bytes into a fresh mesh.
func UnmarshalCBOR(data []byte, opts ...mesh.Option) (*mesh.Mesh, error) {
	var doc Document
	if err := decMode.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return Decode(&doc, opts...)
}
