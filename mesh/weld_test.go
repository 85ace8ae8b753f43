package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/builder"
	"github.com/katalvlaran/lvlmesh/mesh"
)

// twoPatchSeam builds two independent quads that touch along x=1 with
// duplicated seam vertices, the way two separately loaded patches would.
func twoPatchSeam(t *testing.T) (*mesh.Mesh, [8]mesh.Key) {
	t.Helper()
	m := mesh.NewMesh()
	coords := [8][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, // left quad
		{1, 0, 0}, {2, 0, 0}, {2, 1, 0}, {1, 1, 0}, // right quad, seam doubled
	}
	var k [8]mesh.Key
	for i, xyz := range coords {
		v, err := m.AddVertex()
		require.NoError(t, err)
		require.NoError(t, m.SetVertexCoordinates(v, xyz))
		k[i] = v
	}
	_, err := m.AddFace([]mesh.Key{k[0], k[1], k[2], k[3]})
	require.NoError(t, err)
	_, err = m.AddFace([]mesh.Key{k[4], k[5], k[6], k[7]})
	require.NoError(t, err)

	return m, k
}

func TestWeld_SeamMerge(t *testing.T) {
	require := require.New(t)
	m, k := twoPatchSeam(t)
	require.NoError(m.SetVertexAttribute(k[1], "pinned", true))

	welded, err := m.Weld(1e-9)
	require.NoError(err)

	// Seam duplicates collapse onto the smaller-keyed vertex.
	require.Equal(6, welded.VertexCount())
	require.Equal(7, welded.EdgeCount())
	require.Equal(2, welded.FaceCount())
	require.False(welded.HasVertex(k[4]))
	require.False(welded.HasVertex(k[7]))

	// The seam became an interior edge shared by both quads.
	faces, err := welded.EdgeFaces(k[1], k[2])
	require.NoError(err)
	require.Len(faces, 2)

	// Survivors keep their overrides.
	pinned, err := welded.VertexAttribute(k[1], "pinned")
	require.NoError(err)
	require.Equal(true, pinned)

	// The input is untouched.
	require.Equal(8, m.VertexCount())
	require.Equal(2, m.FaceCount())
}

func TestWeld_DropsCollapsedFaces(t *testing.T) {
	require := require.New(t)
	m := mesh.NewMesh()
	coords := [3][3]float64{{0, 0, 0}, {1, 0, 0}, {1e-12, 0, 0}}
	var k [3]mesh.Key
	for i, xyz := range coords {
		v, err := m.AddVertex()
		require.NoError(err)
		require.NoError(m.SetVertexCoordinates(v, xyz))
		k[i] = v
	}
	_, err := m.AddFace([]mesh.Key{k[0], k[1], k[2]})
	require.NoError(err)

	welded, err := m.Weld(1e-6)
	require.NoError(err)
	require.Equal(2, welded.VertexCount())
	require.Equal(0, welded.FaceCount())
	require.Equal(0, welded.EdgeCount())
}

func TestWeld_ZeroToleranceCopies(t *testing.T) {
	require := require.New(t)
	m, _ := twoPatchSeam(t)

	welded, err := m.Weld(0)
	require.NoError(err)
	require.Equal(m.Vertices(), welded.Vertices())
	require.Equal(m.Faces(), welded.Faces())
	require.Equal(m.Edges(), welded.Edges())
}

func TestJoin_DisjointUnion(t *testing.T) {
	require := require.New(t)
	grid, err := builder.Grid(1, 1)
	require.NoError(err)
	tri, _, _ := triangle(t)

	out, err := grid.Join(tri, 0)
	require.NoError(err)

	// Pair keys and int keys never clash, so everything keeps its key.
	require.Equal(7, out.VertexCount())
	require.Equal(7, out.EdgeCount())
	require.Equal(2, out.FaceCount())
	require.True(out.HasVertex(mesh.PairKey(0, 0)))
	require.True(out.HasVertex(mesh.IntKey(0)))

	// Inputs stay intact.
	require.Equal(4, grid.VertexCount())
	require.Equal(3, tri.VertexCount())
}

func TestJoin_RemapsClashingKeys(t *testing.T) {
	require := require.New(t)
	a, _, _ := triangle(t)
	b, _, bf := triangle(t)
	require.NoError(b.SetFaceAttribute(bf, "side", "b"))

	out, err := a.Join(b, 0)
	require.NoError(err)

	// b's vertices 0..2 clash with a's and land on fresh keys 3..5; its
	// face 0 clashes with a's face 0 and lands on face 1.
	require.Equal(6, out.VertexCount())
	require.Equal(2, out.FaceCount())
	for i := int64(0); i < 6; i++ {
		require.True(out.HasVertex(mesh.IntKey(i)))
	}
	cycle, err := out.FaceVertices(mesh.IntKey(1))
	require.NoError(err)
	require.Equal([]mesh.Key{mesh.IntKey(3), mesh.IntKey(4), mesh.IntKey(5)}, cycle)

	// Overrides follow the remapped face.
	side, err := out.FaceAttribute(mesh.IntKey(1), "side")
	require.NoError(err)
	require.Equal("b", side)
}

func TestJoin_NilOperand(t *testing.T) {
	m, _, _ := triangle(t)
	_, err := m.Join(nil, 0)
	require.ErrorIs(t, err, mesh.ErrMeshNil)
}

func TestJoin_WeldsSharedSeam(t *testing.T) {
	require := require.New(t)
	left, err := builder.Grid(1, 1)
	require.NoError(err)
	right, err := builder.Grid(1, 1)
	require.NoError(err)
	// Shift the second patch so its left edge lands on the first's right edge.
	for _, v := range right.Vertices() {
		xyz, err := right.VertexCoordinates(v)
		require.NoError(err)
		xyz[0]++
		require.NoError(right.SetVertexCoordinates(v, xyz))
	}

	out, err := left.Join(right, 1e-9)
	require.NoError(err)
	require.Equal(6, out.VertexCount())
	require.Equal(7, out.EdgeCount())
	require.Equal(2, out.FaceCount())

	// Exactly one interior edge, the welded seam.
	interior := 0
	for _, e := range out.Edges() {
		onBoundary, err := out.IsEdgeOnBoundary(e.U, e.V)
		require.NoError(err)
		if !onBoundary {
			interior++
		}
	}
	require.Equal(1, interior)
}

func TestClone(t *testing.T) {
	require := require.New(t)
	m, k, f := triangle(t)
	m.UpdateDefaultVertexAttributes(map[string]any{"w": 1.0})
	require.NoError(m.SetVertexAttribute(k[0], "w", 2.0))

	c, err := m.Clone()
	require.NoError(err)
	require.Equal(m.Vertices(), c.Vertices())
	require.Equal(m.Edges(), c.Edges())
	require.Equal(m.Faces(), c.Faces())

	// Layered reads survive the copy.
	w, err := c.VertexAttribute(k[0], "w")
	require.NoError(err)
	require.Equal(2.0, w)
	w, err = c.VertexAttribute(k[1], "w")
	require.NoError(err)
	require.Equal(1.0, w)

	// The copy is independent.
	require.NoError(c.DeleteFace(f))
	require.True(m.HasFace(f))
	require.False(c.HasFace(f))
}

func TestCloneEmpty(t *testing.T) {
	require := require.New(t)
	m, _, _ := triangle(t)
	m.SetAttribute("name", "patch")
	m.UpdateDefaultEdgeAttributes(map[string]any{"crease": 0.0})

	c := m.CloneEmpty()
	require.Equal(0, c.VertexCount())
	require.Equal(0, c.FaceCount())
	name, ok := c.Attribute("name")
	require.True(ok)
	require.Equal("patch", name)
	require.Equal(map[string]any{"crease": 0.0}, c.DefaultEdgeAttributes())

	// Fresh allocator: the first auto vertex key starts over.
	v, err := c.AddVertex()
	require.NoError(err)
	require.Equal(mesh.IntKey(0), v)
}
