// manifold.go decides whether a mesh is a manifold surface: every vertex's
// incident faces form a single fan (one orbit covers the whole
// neighborhood) and no vertex is isolated. Edges cannot over-crowd by
// construction, since each halfedge direction holds at most one face, so
// the vertex fan check is the whole test.

package traverse

import (
	"github.com/katalvlaran/lvlmesh/mesh"
)

// IsManifold reports whether the mesh is a manifold surface. A mesh with
// an isolated vertex, or a vertex whose incident faces split into more
// than one fan, is not manifold. The empty mesh counts as manifold.
// Complexity: O(V + E).
func IsManifold(m *mesh.Mesh) (bool, error) {
	if m == nil {
		return false, ErrMeshNil
	}
	for _, v := range m.Vertices() {
		neighbors, err := m.Neighbors(v)
		if err != nil {
			return false, err
		}
		if len(neighbors) == 0 {
			return false, nil
		}
		ordered, err := m.OrderedNeighbors(v)
		if err != nil {
			return false, err
		}
		// A second fan leaves neighbors the single orbit never reaches.
		if len(ordered) != len(neighbors) {
			return false, nil
		}
	}

	return true, nil
}

// EulerCharacteristic returns V - E + F. For a closed orientable surface
// this is 2 - 2g with g the genus; for a disk-like patch it is 1.
// Complexity: O(E), dominated by the edge count scan.
func EulerCharacteristic(m *mesh.Mesh) (int, error) {
	if m == nil {
		return 0, ErrMeshNil
	}

	return m.VertexCount() - m.EdgeCount() + m.FaceCount(), nil
}
