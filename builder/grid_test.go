package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/builder"
	"github.com/katalvlaran/lvlmesh/mesh"
)

func TestGrid_Counts(t *testing.T) {
	require := require.New(t)
	m, err := builder.Grid(10, 10)
	require.NoError(err)
	require.Equal(121, m.VertexCount())
	require.Equal(220, m.EdgeCount())
	require.Equal(100, m.FaceCount())

	// Keys carry the grid position, coordinates mirror it.
	xyz, err := m.VertexCoordinates(mesh.PairKey(3, 2))
	require.NoError(err)
	require.Equal([3]float64{3, 2, 0}, xyz)
}

func TestGrid_SingleQuad(t *testing.T) {
	require := require.New(t)
	m, err := builder.Grid(1, 1)
	require.NoError(err)
	require.Equal(4, m.VertexCount())
	require.Equal(4, m.EdgeCount())
	require.Equal(1, m.FaceCount())

	cycle, err := m.FaceVertices(mesh.IntKey(0))
	require.NoError(err)
	require.Equal([]mesh.Key{
		mesh.PairKey(0, 0), mesh.PairKey(1, 0), mesh.PairKey(1, 1), mesh.PairKey(0, 1),
	}, cycle)

	for _, e := range m.Edges() {
		onBoundary, err := m.IsEdgeOnBoundary(e.U, e.V)
		require.NoError(err)
		require.True(onBoundary)
	}
}

func TestGrid_InteriorValence(t *testing.T) {
	require := require.New(t)
	m, err := builder.Grid(2, 2)
	require.NoError(err)

	deg, err := m.Degree(mesh.PairKey(1, 1))
	require.NoError(err)
	require.Equal(4, deg)
	onBoundary, err := m.IsVertexOnBoundary(mesh.PairKey(1, 1))
	require.NoError(err)
	require.False(onBoundary)
}

func TestGrid_TooSmall(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		_, err := builder.Grid(dims[0], dims[1])
		require.ErrorIs(t, err, builder.ErrTooFewFaces, "Grid(%d,%d)", dims[0], dims[1])
	}
}

func TestGrid_Deterministic(t *testing.T) {
	require := require.New(t)
	a, err := builder.Grid(3, 2)
	require.NoError(err)
	b, err := builder.Grid(3, 2)
	require.NoError(err)

	require.Equal(a.Vertices(), b.Vertices())
	require.Equal(a.Edges(), b.Edges())
	require.Equal(a.Faces(), b.Faces())
	for _, f := range a.Faces() {
		ac, err := a.FaceVertices(f)
		require.NoError(err)
		bc, err := b.FaceVertices(f)
		require.NoError(err)
		require.Equal(ac, bc)
	}
}
