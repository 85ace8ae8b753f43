package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/builder"
	"github.com/katalvlaran/lvlmesh/mesh"
)

// TestSplitEdge_Interior checks the rewiring on a shared edge.
func TestSplitEdge_Interior(t *testing.T) {
	require := require.New(t)
	m := mesh.NewMesh()
	var k [4]mesh.Key
	coords := [4][3]float64{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}
	for i := range k {
		k[i], _ = m.AddVertex()
		require.NoError(m.SetVertexCoordinates(k[i], coords[i]))
	}
	f1, err := m.AddFace([]mesh.Key{k[0], k[1], k[2]})
	require.NoError(err)
	f2, err := m.AddFace([]mesh.Key{k[0], k[2], k[3]})
	require.NoError(err)

	w, err := m.SplitEdge(k[0], k[2])
	require.NoError(err)

	// Old edge gone, both halves present.
	require.False(m.HasEdge(k[0], k[2]))
	require.True(m.HasEdge(k[0], w))
	require.True(m.HasEdge(w, k[2]))

	// Both incident cycles grew by one around w.
	c1, err := m.FaceVertices(f1)
	require.NoError(err)
	require.Equal([]mesh.Key{k[0], k[1], k[2], w}, c1)
	c2, err := m.FaceVertices(f2)
	require.NoError(err)
	require.Equal([]mesh.Key{k[0], w, k[2], k[3]}, c2)

	// Midpoint coordinates by default.
	xyz, err := m.VertexCoordinates(w)
	require.NoError(err)
	require.Equal([3]float64{1, 1, 0}, xyz)

	_, err = m.SplitEdge(k[0], k[2])
	require.ErrorIs(err, mesh.ErrEdgeNotFound)
}

// TestSplitEdge_Boundary checks splitting a rim edge of a single face.
func TestSplitEdge_Boundary(t *testing.T) {
	require := require.New(t)
	m, keys, f := triangle(t)

	w, err := m.SplitEdge(keys[0], keys[1])
	require.NoError(err)

	cycle, err := m.FaceVertices(f)
	require.NoError(err)
	require.Equal([]mesh.Key{keys[0], w, keys[1], keys[2]}, cycle)

	// The outside stays boundary on both halves.
	_, hasFace, err := m.HalfedgeFace(w, keys[0])
	require.NoError(err)
	require.False(hasFace)
	_, hasFace, err = m.HalfedgeFace(keys[1], w)
	require.NoError(err)
	require.False(hasFace)
}

// TestSplitFace checks the chord split and its rejections.
func TestSplitFace(t *testing.T) {
	require := require.New(t)
	m := mesh.NewMesh()
	var k [4]mesh.Key
	for i := range k {
		k[i], _ = m.AddVertex()
	}
	f, err := m.AddFace([]mesh.Key{k[0], k[1], k[2], k[3]})
	require.NoError(err)
	require.NoError(m.SetFaceAttribute(f, "material", "wood"))

	f1, f2, err := m.SplitFace(f, k[0], k[2])
	require.NoError(err)

	require.False(m.HasFace(f), "split retires the original key")
	c1, err := m.FaceVertices(f1)
	require.NoError(err)
	require.Equal([]mesh.Key{k[0], k[1], k[2]}, c1)
	c2, err := m.FaceVertices(f2)
	require.NoError(err)
	require.Equal([]mesh.Key{k[0], k[2], k[3]}, c2)

	// The chord is interior: faces on both sides.
	faces, err := m.EdgeFaces(k[0], k[2])
	require.NoError(err)
	require.Len(faces, 2)

	// Invalid chords.
	_, _, err = m.SplitFace(f1, k[0], k[1])
	require.ErrorIs(err, mesh.ErrInvalidSplit, "adjacent cycle vertices")
	_, _, err = m.SplitFace(f1, k[0], k[0])
	require.ErrorIs(err, mesh.ErrInvalidSplit)
	_, _, err = m.SplitFace(f1, k[0], k[3])
	require.ErrorIs(err, mesh.ErrInvalidSplit, "vertex off the cycle")
	_, _, err = m.SplitFace(mesh.IntKey(99), k[0], k[2])
	require.ErrorIs(err, mesh.ErrFaceNotFound)
}

// TestInsertVertex checks the triangle fan replacement.
func TestInsertVertex(t *testing.T) {
	require := require.New(t)
	quad, err := builder.Grid(1, 1)
	require.NoError(err)
	f := quad.Faces()[0]

	w, newFaces, err := quad.InsertVertex(f)
	require.NoError(err)

	require.False(quad.HasFace(f))
	require.Len(newFaces, 4, "one triangle per cycle edge")
	require.Equal(4, quad.FaceCount())
	deg, err := quad.Degree(w)
	require.NoError(err)
	require.Equal(4, deg)

	// Centroid of the unit quad.
	xyz, err := quad.VertexCoordinates(w)
	require.NoError(err)
	require.Equal([3]float64{0.5, 0.5, 0}, xyz)

	// Every new triangle contains w.
	for _, nf := range newFaces {
		cycle, err := quad.FaceVertices(nf)
		require.NoError(err)
		require.Len(cycle, 3)
		require.Contains(cycle, w)
	}

	// Insert/delete symmetry: removing w and its fan leaves the original
	// rim vertices with no faces.
	require.NoError(quad.DeleteVertex(w))
	require.Equal(0, quad.FaceCount())
	require.Equal(4, quad.VertexCount())
}

// TestSplitStrip_Grid checks the 10×10 refinement.
func TestSplitStrip_Grid(t *testing.T) {
	require := require.New(t)
	grid, err := builder.Grid(10, 10)
	require.NoError(err)
	require.Equal(121, grid.VertexCount())
	require.Equal(220, grid.EdgeCount())
	require.Equal(100, grid.FaceCount())

	// Split along the strip through a left-rim vertical edge: the strip
	// runs across all ten columns.
	splits, err := grid.SplitStrip(mesh.PairKey(0, 4), mesh.PairKey(0, 5))
	require.NoError(err)
	require.Len(splits, 11)

	require.Equal(110, grid.FaceCount())
	require.Equal(132, grid.VertexCount())
	require.Equal(241, grid.EdgeCount())

	// The refined mesh stays all-quad.
	for _, f := range grid.Faces() {
		cycle, err := grid.FaceVertices(f)
		require.NoError(err)
		require.Len(cycle, 4)
	}

	// Midpoints chain into an edge path.
	for i := 0; i < len(splits)-1; i++ {
		require.True(grid.HasEdge(splits[i], splits[i+1]))
	}
}

// TestSplitStrip_ClosedCylinder checks closed-strip refinement.
func TestSplitStrip_ClosedCylinder(t *testing.T) {
	require := require.New(t)
	cyl := quadCylinder(t, 1, 4)

	splits, err := cyl.SplitStrip(mesh.PairKey(0, 0), mesh.PairKey(1, 0))
	require.NoError(err)
	require.Len(splits, 4)
	require.Equal(8, cyl.FaceCount())
	for i := range splits {
		require.True(cyl.HasEdge(splits[i], splits[(i+1)%len(splits)]))
	}
}

// TestSplitStrip_RejectsNonQuad checks the quad precondition.
func TestSplitStrip_RejectsNonQuad(t *testing.T) {
	require := require.New(t)
	tet, err := builder.Polyhedron(4)
	require.NoError(err)

	_, err = tet.SplitStrip(mesh.IntKey(0), mesh.IntKey(1))
	require.ErrorIs(err, mesh.ErrNotQuad)
}

// TestSplitStrip_RejectsNonQuadAtEitherEnd checks that a strip ending at
// a non-quad is rejected from both seed orientations and leaves the mesh
// untouched.
func TestSplitStrip_RejectsNonQuadAtEitherEnd(t *testing.T) {
	require := require.New(t)
	m, err := builder.Grid(2, 1)
	require.NoError(err)

	// Glue a triangle onto the left rim edge; the strip through any
	// vertical edge now terminates at a non-quad on one end and at the
	// boundary on the other.
	tip, err := m.AddVertex()
	require.NoError(err)
	tri, err := m.AddFace([]mesh.Key{mesh.PairKey(0, 0), mesh.PairKey(0, 1), tip})
	require.NoError(err)

	for _, seed := range [][2]mesh.Key{
		{mesh.PairKey(1, 0), mesh.PairKey(1, 1)},
		{mesh.PairKey(1, 1), mesh.PairKey(1, 0)},
	} {
		_, err := m.SplitStrip(seed[0], seed[1])
		require.ErrorIs(err, mesh.ErrNotQuad, "seed %s→%s", seed[0], seed[1])
	}

	// No stray midpoints, no face changes.
	require.Equal(7, m.VertexCount())
	require.Equal(3, m.FaceCount())
	cycle, err := m.FaceVertices(tri)
	require.NoError(err)
	require.Len(cycle, 3, "the glued triangle keeps its cycle")
}
