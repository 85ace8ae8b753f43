// Package traverse provides global connectivity and surface-quality
// queries over a mesh.Mesh: breadth-first walks, connected components,
// manifold detection, boundary-loop extraction and the Euler
// characteristic.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the walk tree
//   - Connected reports whether the whole mesh is one component.
//   - Components returns every component, sorted for reproducibility.
//   - IsManifold verifies that each vertex's incident faces form a single
//     fan; isolated vertices and split fans fail the test.
//   - BoundaryLoops chains the faceless halfedge directions into loops,
//     corner by corner, so loops that touch at a shared vertex stay
//     separate.
//   - EulerCharacteristic returns V - E + F.
//
// Why
//
//   - Decide whether a mesh is watertight before downstream processing.
//   - Locate holes (boundary loops) for filling, trimming or inspection.
//   - Partition disconnected patches for per-component handling.
//
// Determinism
//
//	Because mesh.Neighbors and mesh.Edges return sorted results, visit
//	sequences, component order and loop order are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and halfedge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic walk with no options:
//	result, err := traverse.BFS(m, mesh.IntKey(0))
//
//	// With functional options:
//	result, err := traverse.BFS(
//	    m, mesh.IntKey(0),
//	    traverse.WithMaxDepth(3),
//	    traverse.WithFilterNeighbor(func(curr, nbr mesh.Key) bool { return true }),
//	    traverse.WithOnVisit(func(v mesh.Key, depth int) error { return nil }),
//	)
//
//	loops, err := traverse.BoundaryLoops(m) // each loop starts at its smallest vertex
//
// Errors
//
//   - ErrMeshNil              if the mesh pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an invalid Option (e.g. negative MaxDepth).
//   - mesh.ErrCorruptTopology if a boundary walk exceeds the step limit.
//   - Wrapped user-supplied hook errors from OnVisit.
package traverse
