package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/builder"
	"github.com/katalvlaran/lvlmesh/mesh"
)

func TestPolyhedron(t *testing.T) {
	cases := []struct {
		faces    int
		vertices int
		edges    int
		cycleLen int
		valence  int
	}{
		{builder.FacesTetrahedron, 4, 6, 3, 3},
		{builder.FacesHexahedron, 8, 12, 4, 3},
		{builder.FacesOctahedron, 6, 12, 3, 4},
		{builder.FacesDodecahedron, 20, 30, 5, 3},
		{builder.FacesIcosahedron, 12, 30, 3, 5},
	}
	for _, tc := range cases {
		require := require.New(t)
		m, err := builder.Polyhedron(tc.faces)
		require.NoError(err, "faces=%d", tc.faces)

		require.Equal(tc.vertices, m.VertexCount(), "faces=%d", tc.faces)
		require.Equal(tc.edges, m.EdgeCount(), "faces=%d", tc.faces)
		require.Equal(tc.faces, m.FaceCount(), "faces=%d", tc.faces)

		// Closed genus-0 surface.
		require.Equal(2, m.VertexCount()-m.EdgeCount()+m.FaceCount(), "faces=%d", tc.faces)

		for _, f := range m.Faces() {
			cycle, err := m.FaceVertices(f)
			require.NoError(err)
			require.Len(cycle, tc.cycleLen, "faces=%d", tc.faces)
		}
		for _, v := range m.Vertices() {
			deg, err := m.Degree(v)
			require.NoError(err)
			require.Equal(tc.valence, deg, "faces=%d vertex=%s", tc.faces, v)
			onBoundary, err := m.IsVertexOnBoundary(v)
			require.NoError(err)
			require.False(onBoundary, "faces=%d vertex=%s", tc.faces, v)
		}
	}
}

// TestPolyhedron_DodecahedronRadius checks the dual derivation: the
// icosahedron's face centroids are all equidistant from the origin.
func TestPolyhedron_DodecahedronRadius(t *testing.T) {
	require := require.New(t)
	m, err := builder.Polyhedron(builder.FacesDodecahedron)
	require.NoError(err)

	var radius float64
	for i, v := range m.Vertices() {
		xyz, err := m.VertexCoordinates(v)
		require.NoError(err)
		r := math.Sqrt(xyz[0]*xyz[0] + xyz[1]*xyz[1] + xyz[2]*xyz[2])
		if i == 0 {
			radius = r
			continue
		}
		require.InDelta(radius, r, 1e-9)
	}
	require.Greater(radius, 0.0)
}

func TestPolyhedron_UnknownFaceCount(t *testing.T) {
	for _, faces := range []int{0, 3, 5, 7, 100} {
		_, err := builder.Polyhedron(faces)
		require.ErrorIs(t, err, builder.ErrUnknownPolyhedron, "faces=%d", faces)
	}
}

// Vertices of the table-based solids keep their list order as keys.
func TestPolyhedron_KeyOrder(t *testing.T) {
	require := require.New(t)
	m, err := builder.Polyhedron(builder.FacesTetrahedron)
	require.NoError(err)
	require.Equal([]mesh.Key{
		mesh.IntKey(0), mesh.IntKey(1), mesh.IntKey(2), mesh.IntKey(3),
	}, m.Vertices())

	xyz, err := m.VertexCoordinates(mesh.IntKey(0))
	require.NoError(err)
	require.Equal([3]float64{1, 1, 1}, xyz)
}
