// Package builder provides deterministic mesh constructors for tests,
// examples and downstream fixtures.
//
// What
//
//   - Grid(cols, rows) — cols×rows quad grid in the z=0 plane, vertices
//     keyed by their (column,row) pair.
//   - Polyhedron(faces) — the platonic solid with the given face count:
//     tetrahedron (4), hexahedron (6), octahedron (8), dodecahedron (12)
//     or icosahedron (20), with canonical coordinates and outward-facing
//     counterclockwise cycles. The dodecahedron is derived as the dual of
//     the icosahedron rather than tabulated.
//
// Why
//
//   - Fixtures with known vertex, edge and face counts make topology tests
//     short and exact (a closed genus-0 solid always has V-E+F = 2).
//   - Grids are the natural substrate for strip and loop walks.
//
// Determinism
//
//	Constructors use fixed tables, row-major emission and sorted-key
//	iteration; the same call always produces an identical mesh.
//
// Usage
//
//	grid, err := builder.Grid(10, 10)       // 121 vertices, 100 faces
//	tet, err := builder.Polyhedron(4)       // V=4, E=6, F=4
//	dode, err := builder.Polyhedron(12)     // V=20, E=30, F=12
//
// Errors
//
//   - ErrTooFewFaces        for grid dimensions below 1.
//   - ErrUnknownPolyhedron  for face counts without a platonic solid.
//
// Constructors never panic; every bad parameter surfaces as a sentinel.
package builder
