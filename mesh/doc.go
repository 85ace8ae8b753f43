// Package mesh provides a thread-safe, attributed halfedge mesh with a
// minimal, composable API surface.
//
// The mesh M = (V,F) stores faces as ordered vertex cycles and keeps a
// halfedge map alongside them:
//
//   - halfedge[u][v] = face key, or the zero Key when the direction (u,v)
//     borders no face (a boundary halfedge)
//   - Every edge {u,v} appears as two directed entries, one per direction
//   - Faces own their cycles; halfedges are derived and kept in sync by
//     every mutator
//   - Optional cells group faces for volumetric structures
//   - Separate sync.RWMutex for element catalogs (muElem) and the halfedge
//     adjacency (muAdj); lock order is always muElem before muAdj
//
// Why use mesh.Mesh?
//
//   - Stable keys — deleting elements never renumbers the survivors;
//     auto-assigned integer keys come from monotone per-kind counters.
//   - Arbitrary keys — integers, strings and integer pairs all work as
//     vertex, face and cell identity (see Key).
//   - Deterministic iteration — Vertices(), Edges(), Faces(), Cells() and
//     every neighborhood query return sorted results.
//   - Layered attributes — per-kind defaults under element overrides, with
//     lazy materialization: an override is stored only when written.
//   - Euler operators — SplitEdge, SplitFace, InsertVertex and SplitStrip
//     mutate topology without invalidating unrelated keys.
//   - Clone support — CloneEmpty (configuration only), Clone (deep copy),
//     Weld and Join (fresh merged meshes).
//
// Configuration Options (Option):
//
//	– WithStepLimit(n int)
//	    Caps orbit walks (ordered neighborhoods, strips, loops). A walk
//	    that exceeds the cap reports ErrCorruptTopology instead of
//	    returning a truncated result.
//
//	– WithAttributes(attrs map[string]any)
//	    Seeds structure-level attributes.
//
//	– WithDefaultVertexAttributes / ...Edge... / ...Face... / ...Cell...
//	    Seeds the default layer of the corresponding attribute store.
//
// Element Options (AddOption):
//
//	– WithKey(k Key)   request an explicit key instead of an allocated one
//	– WithAttrs(m map[string]any)   initial attribute overrides
//
// Core Methods:
//
//	// Element lifecycle
//	AddVertex(opts ...AddOption) (Key, error)         // O(1)
//	AddFace(cycle []Key, opts ...AddOption) (Key, error) // O(len(cycle))
//	AddCell(faces []Key, opts ...AddOption) (Key, error) // O(len(faces))
//	DeleteVertex(v Key) error                         // O(deg(v) · faces)
//	DeleteFace(f Key) error                           // O(len(cycle))
//	DeleteCell(c Key) error                           // O(len(faces))
//
//	// Query
//	Neighbors(v Key) ([]Key, error)           // O(d log d), sorted
//	OrderedNeighbors(v Key) ([]Key, error)    // O(d), cyclic order
//	HalfedgeFace(u, v Key) (Key, bool, error) // O(1)
//	EdgeFaces(u, v Key) ([]Key, error)        // the 0..2 incident faces
//	FaceVertices(f Key) ([]Key, error)        // copy of the cycle
//	IsVertexOnBoundary / IsEdgeOnBoundary / IsFaceOnBoundary
//
//	// Orbits
//	EdgeStrip(u, v Key) ([]Edge, bool, error) // quad strip + closed flag
//	EdgeLoop(u, v Key) ([]Edge, bool, error)  // edge loop + closed flag
//
//	// Euler operators
//	SplitEdge(u, v Key, opts ...AddOption) (Key, error)
//	SplitFace(f, u, v Key) (Key, Key, error)
//	InsertVertex(f Key, opts ...AddOption) (Key, []Key, error)
//	SplitStrip(u, v Key) ([]Key, error)
//
//	// Geometry bridge
//	FromVerticesAndFaces(xyz [][3]float64, faces [][]int, opts ...Option)
//	ToVerticesAndFaces() ([][3]float64, [][]int, error)
//	VertexCoordinates / SetVertexCoordinates
//
//	// Merging
//	Weld(tolerance float64) (*Mesh, error)
//	Join(other *Mesh, tolerance float64) (*Mesh, error)
//
// Errors:
//
//	ErrVertexNotFound / ErrEdgeNotFound / ErrFaceNotFound / ErrCellNotFound
//	ErrVertexExists / ErrFaceExists / ErrCellExists
//	ErrFaceTooFewVertices  – cycle shorter than 3 after normalization
//	ErrFaceRepeatedVertex  – non-consecutive duplicate in a cycle
//	ErrCorruptTopology     – orbit walk exceeded the step limit
//	ErrBadKey              – unparsable encoded key
//	ErrNotQuad             – strip operation met a non-quad face
//	ErrInvalidSplit        – split endpoints equal or already adjacent
//
// Attribute reads fall through overrides to the per-kind defaults; reads of
// names absent from both layers return nil without error, so probing is
// cheap and total.
package mesh
