// Package mesh: element keys.
//
// Keys identify vertices, faces and cells. A Key is a small closed tagged
// union — integer, string, or pair of integers — so callers may address
// elements by auto-generated counters, by human-readable names, or by grid
// coordinates, while the structure stays map-friendly (Key is comparable)
// and wire-friendly (every Key has an unambiguous string encoding).

package mesh

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// keyKind discriminates the Key union. The zero kind marks "no key":
// an absent face reference on a boundary halfedge, or a request for an
// auto-allocated key.
type keyKind uint8

const (
	keyNone keyKind = iota
	keyInt
	keyString
	keyPair
)

// Wire-encoding tags, one per kind. The tagged form keeps decoding
// unambiguous: the string key "42" encodes as "s:42", never clashing with
// the integer key 42 ("i:42").
const (
	keyTagInt    = "i:"
	keyTagString = "s:"
	keyTagPair   = "p:"
	pairSep      = ","
)

// Key identifies a vertex, face or cell. The zero Key means "no key".
// Keys are comparable (usable as map keys) and totally ordered: integers
// sort before strings, strings before pairs; each kind orders naturally.
type Key struct {
	kind keyKind
	num  int64
	str  string
	a, b int64
}

// IntKey returns an integer Key.
func IntKey(n int64) Key { return Key{kind: keyInt, num: n} }

// StringKey returns a string Key.
func StringKey(s string) Key { return Key{kind: keyString, str: s} }

// PairKey returns a Key made of two integers, handy for grid coordinates.
func PairKey(a, b int64) Key { return Key{kind: keyPair, a: a, b: b} }

// IsZero reports whether k is the zero "no key" value.
func (k Key) IsZero() bool { return k.kind == keyNone }

// Int returns the integer value of k and whether k is an integer Key.
func (k Key) Int() (int64, bool) { return k.num, k.kind == keyInt }

// Str returns the string value of k and whether k is a string Key.
func (k Key) Str() (string, bool) { return k.str, k.kind == keyString }

// Pair returns both components of k and whether k is a pair Key.
func (k Key) Pair() (int64, int64, bool) { return k.a, k.b, k.kind == keyPair }

// Less defines the total order used for deterministic iteration:
// kind first (int < string < pair), then the natural in-kind order.
func (k Key) Less(other Key) bool {
	if k.kind != other.kind {
		return k.kind < other.kind
	}
	switch k.kind {
	case keyInt:
		return k.num < other.num
	case keyString:
		return k.str < other.str
	case keyPair:
		if k.a != other.a {
			return k.a < other.a
		}
		return k.b < other.b
	default:
		return false
	}
}

// Encode renders k in its canonical wire form: "i:<n>", "s:<text>" or
// "p:<a>,<b>". DecodeKey inverts it exactly.
func (k Key) Encode() string {
	switch k.kind {
	case keyInt:
		return keyTagInt + strconv.FormatInt(k.num, 10)
	case keyString:
		return keyTagString + k.str
	case keyPair:
		return keyTagPair + strconv.FormatInt(k.a, 10) + pairSep + strconv.FormatInt(k.b, 10)
	default:
		return ""
	}
}

// String implements fmt.Stringer using the wire form.
func (k Key) String() string { return k.Encode() }

// DecodeKey parses the canonical wire form produced by Encode.
// Returns ErrBadKey for anything else, including non-canonical
// renderings of a valid key ("i:007", "i:+7"): a decoded key must
// re-encode to the exact input, or wire lookups keyed by Encode
// would silently miss it.
func DecodeKey(s string) (Key, error) {
	if len(s) < len(keyTagInt) {
		return Key{}, fmt.Errorf("decode key %q: %w", s, ErrBadKey)
	}
	tag, body := s[:2], s[2:]
	var k Key
	switch tag {
	case keyTagInt:
		n, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return Key{}, fmt.Errorf("decode key %q: %w", s, ErrBadKey)
		}
		k = IntKey(n)
	case keyTagString:
		// String bodies are carried verbatim; every one round-trips.
		return StringKey(body), nil
	case keyTagPair:
		parts := strings.SplitN(body, pairSep, 2)
		if len(parts) != 2 {
			return Key{}, fmt.Errorf("decode key %q: %w", s, ErrBadKey)
		}
		a, errA := strconv.ParseInt(parts[0], 10, 64)
		b, errB := strconv.ParseInt(parts[1], 10, 64)
		if errA != nil || errB != nil {
			return Key{}, fmt.Errorf("decode key %q: %w", s, ErrBadKey)
		}
		k = PairKey(a, b)
	default:
		return Key{}, fmt.Errorf("decode key %q: %w", s, ErrBadKey)
	}
	if k.Encode() != s {
		return Key{}, fmt.Errorf("decode key %q: %w", s, ErrBadKey)
	}

	return k, nil
}

// Edge is a pair of vertex keys. Directed query results (strips, loops,
// boundary walks) preserve the walked direction; attribute storage always
// normalizes through Canonical first.
type Edge struct {
	U, V Key
}

// Canonical returns the undirected form of e, with endpoints ordered so
// that (u,v) and (v,u) resolve to the same record.
func (e Edge) Canonical() Edge {
	if e.V.Less(e.U) {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Reversed returns e with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// SortKeys orders keys in place by Key.Less. All public queries return
// key slices sorted this way.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

// SortEdges orders edges in place by canonical endpoint order.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U.Less(edges[j].U)
		}
		return edges[i].V.Less(edges[j].V)
	})
}
