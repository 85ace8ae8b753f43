// types.go declares the Mesh type, its construction options, and the
// sentinel errors shared by the whole package.

package mesh

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core mesh operations.
var (
	// ErrMeshNil indicates a nil *Mesh operand.
	ErrMeshNil = errors.New("mesh: mesh is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrFaceNotFound indicates an operation referenced a non-existent face.
	ErrFaceNotFound = errors.New("mesh: face not found")

	// ErrCellNotFound indicates an operation referenced a non-existent cell.
	ErrCellNotFound = errors.New("mesh: cell not found")

	// ErrVertexExists indicates AddVertex was given a key already in use.
	ErrVertexExists = errors.New("mesh: vertex already exists")

	// ErrFaceExists indicates AddFace was given a key already in use.
	ErrFaceExists = errors.New("mesh: face already exists")

	// ErrCellExists indicates AddCell was given a key already in use.
	ErrCellExists = errors.New("mesh: cell already exists")

	// ErrFaceTooFewVertices indicates a face cycle with fewer than 3 distinct
	// vertices after collapsing consecutive duplicates.
	ErrFaceTooFewVertices = errors.New("mesh: face needs at least 3 vertices")

	// ErrFaceRepeatedVertex indicates a face cycle that revisits a vertex.
	ErrFaceRepeatedVertex = errors.New("mesh: face cycle repeats a vertex")

	// ErrCorruptTopology indicates an adjacency walk exceeded the hard step
	// cap. The partial walk is never returned: a truncated answer would
	// silently propagate wrong geometry to callers.
	ErrCorruptTopology = errors.New("mesh: corrupt topology, walk exceeded step cap")

	// ErrBadKey indicates a wire-encoded key that does not decode.
	ErrBadKey = errors.New("mesh: malformed key encoding")

	// ErrNotQuad indicates a strip traversal crossed a face that is not a
	// quadrilateral.
	ErrNotQuad = errors.New("mesh: face is not a quad")

	// ErrInvalidSplit indicates a face split whose endpoints are missing
	// from the cycle, equal, or already adjacent along it.
	ErrInvalidSplit = errors.New("mesh: invalid face split")
)

// defaultStepLimit caps adjacency walks (ordered one-ring, edge loops and
// strips, boundary loops). Exceeding it reports ErrCorruptTopology.
const defaultStepLimit = 1000

// Coordinate attribute names. The core has no privileged notion of
// position: x, y, z are ordinary vertex attributes that geometry helpers
// (VertexCoordinates, Weld, InsertVertex) agree to read.
const (
	AttrX = "x"
	AttrY = "y"
	AttrZ = "z"
)

// Option configures behavior of a Mesh before creation.
type Option func(m *Mesh)

// WithStepLimit overrides the hard cap on adjacency-walk steps.
// Values < 1 keep the default.
func WithStepLimit(n int) Option {
	return func(m *Mesh) {
		if n >= 1 {
			m.stepLimit = n
		}
	}
}

// WithAttributes seeds the structure-wide attribute map.
func WithAttributes(attrs map[string]any) Option {
	return func(m *Mesh) {
		for name, value := range attrs {
			m.attributes[name] = value
		}
	}
}

// WithDefaultVertexAttributes seeds the vertex default-attribute map.
func WithDefaultVertexAttributes(attrs map[string]any) Option {
	return func(m *Mesh) { m.vAttr.updateDefaults(attrs) }
}

// WithDefaultEdgeAttributes seeds the edge default-attribute map.
func WithDefaultEdgeAttributes(attrs map[string]any) Option {
	return func(m *Mesh) { m.eAttr.updateDefaults(attrs) }
}

// WithDefaultFaceAttributes seeds the face default-attribute map.
func WithDefaultFaceAttributes(attrs map[string]any) Option {
	return func(m *Mesh) { m.fAttr.updateDefaults(attrs) }
}

// WithDefaultCellAttributes seeds the cell default-attribute map.
func WithDefaultCellAttributes(attrs map[string]any) Option {
	return func(m *Mesh) { m.cAttr.updateDefaults(attrs) }
}

// AddOption configures a single AddVertex/AddFace/AddCell call.
type AddOption func(*addConfig)

// addConfig aggregates per-call knobs; zero value means "auto key, no attrs".
type addConfig struct {
	key   Key
	attrs map[string]any
}

// WithKey requests a specific element key instead of an auto-allocated one.
func WithKey(k Key) AddOption {
	return func(c *addConfig) { c.key = k }
}

// WithAttrs sets initial attribute overrides on the new element.
func WithAttrs(attrs map[string]any) AddOption {
	return func(c *addConfig) { c.attrs = attrs }
}

// resolveAddConfig applies options in order; last-wins semantics.
func resolveAddConfig(opts []AddOption) addConfig {
	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Mesh is the core in-memory halfedge data structure.
//
// Topology is held in two maps: halfedge[u][v] records the face bordered by
// the directed halfedge (u,v), or the zero Key when (u,v) is a boundary
// halfedge; faces[f] holds the ordered vertex cycle of f. A vertex exists
// iff it has a halfedge row, even an empty one. Cells (volumetric meshes)
// reference sets of faces one dimension up.
//
// muElem protects catalogs, attribute layers and the allocator;
// muAdj protects halfedge adjacency, face cycles and cells.
type Mesh struct {
	muElem sync.RWMutex // guards attributes, attr stores, allocator
	muAdj  sync.RWMutex // guards halfedge, faces, cells

	stepLimit int // adjacency-walk cap; defaultStepLimit unless overridden

	// Structure-wide attributes (name → value).
	attributes map[string]any

	// Storage
	alloc    allocator
	halfedge map[Key]map[Key]Key // u → v → face key (zero = boundary)
	faces    map[Key][]Key       // face → ordered vertex cycle
	cells    map[Key][]Key       // cell → sorted face keys

	// Layered attribute stores, one per element kind.
	vAttr *attrStore[Key]
	eAttr *attrStore[Edge]
	fAttr *attrStore[Key]
	cAttr *attrStore[Key]
}

// NewMesh creates an empty Mesh with the given options.
// Complexity: O(len(opts))
func NewMesh(opts ...Option) *Mesh {
	m := &Mesh{
		stepLimit:  defaultStepLimit,
		attributes: make(map[string]any),
		alloc:      newAllocator(),
		halfedge:   make(map[Key]map[Key]Key),
		faces:      make(map[Key][]Key),
		cells:      make(map[Key][]Key),
		vAttr:      newAttrStore[Key](),
		eAttr:      newAttrStore[Edge](),
		fAttr:      newAttrStore[Key](),
		cAttr:      newAttrStore[Key](),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// StepLimit reports the configured adjacency-walk cap.
func (m *Mesh) StepLimit() int { return m.stepLimit }

// wrapKey attaches the operation and offending key to a sentinel, keeping
// errors.Is branching intact.
func wrapKey(op string, k Key, sentinel error) error {
	return fmt.Errorf("%s(%s): %w", op, k, sentinel)
}
