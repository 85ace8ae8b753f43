// Package codec serializes meshes to and from a canonical Document, with
// JSON and CBOR wire formats.
//
// What
//
//   - Encode(m) flattens a mesh into a Document: attribute layers,
//     per-element overrides, face cycles, cells and allocator counters.
//   - Decode(doc) rebuilds the mesh; the halfedge map is reconstructed by
//     replaying the face cycles, never stored on the wire.
//   - MarshalJSON / UnmarshalJSON — text wire format (encoding/json).
//   - MarshalCBOR / UnmarshalCBOR — binary wire format (fxamacker/cbor
//     with Core Deterministic Encoding, RFC 8949 §4.2).
//
// Determinism
//
//	Element keys serialize through their unambiguous wire encoding
//	("i:<n>", "s:<text>", "p:<a>,<b>"), sections are maps whose keys both
//	encoders sort, and Decode replays elements in sorted key order. The
//	same mesh therefore always yields the same bytes, and equal bytes
//	always yield equal meshes.
//
// Tolerance
//
//	Decode treats missing sections as empty, so documents from older
//	producers load cleanly. It rejects unparsable keys (mesh.ErrBadKey)
//	and cross-references to undeclared elements (ErrBadDocument).
//
// Usage
//
//	data, err := codec.MarshalJSON(m)
//	m2, err := codec.UnmarshalJSON(data)
//
//	blob, err := codec.MarshalCBOR(m)
//	m3, err := codec.UnmarshalCBOR(blob)
//
// Round trip: topology, attributes, defaults and counters all survive,
// including string and pair keys.
package codec
