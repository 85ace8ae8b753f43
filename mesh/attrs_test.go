package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// TestAttrs_DefaultsAndOverrides checks the two-layer read path.
func TestAttrs_DefaultsAndOverrides(t *testing.T) {
	require := require.New(t)
	m := mesh.NewMesh(mesh.WithDefaultVertexAttributes(map[string]any{"weight": 1.0}))
	v, err := m.AddVertex()
	require.NoError(err)

	// Default visible through the read path.
	got, err := m.VertexAttribute(v, "weight")
	require.NoError(err)
	require.Equal(1.0, got)

	// Override shadows the default.
	require.NoError(m.SetVertexAttribute(v, "weight", 3.5))
	got, err = m.VertexAttribute(v, "weight")
	require.NoError(err)
	require.Equal(3.5, got)

	// Unset restores default visibility.
	require.NoError(m.UnsetVertexAttribute(v, "weight"))
	got, err = m.VertexAttribute(v, "weight")
	require.NoError(err)
	require.Equal(1.0, got)

	// Unknown names read as nil without error; missing elements always err.
	got, err = m.VertexAttribute(v, "ghost")
	require.NoError(err)
	require.Nil(got)
	_, err = m.VertexAttribute(mesh.IntKey(99), "weight")
	require.ErrorIs(err, mesh.ErrVertexNotFound)
}

// TestAttrs_DefaultChangeReachesAll checks lazy default resolution: a
// later default update is visible on elements created before it.
func TestAttrs_DefaultChangeReachesAll(t *testing.T) {
	require := require.New(t)
	m := mesh.NewMesh()
	v, _ := m.AddVertex()
	w, _ := m.AddVertex()
	require.NoError(m.SetVertexAttribute(w, "color", "red"))

	m.UpdateDefaultVertexAttributes(map[string]any{"color": "gray"})

	got, err := m.VertexAttribute(v, "color")
	require.NoError(err)
	require.Equal("gray", got, "plain vertex sees the new default")
	got, err = m.VertexAttribute(w, "color")
	require.NoError(err)
	require.Equal("red", got, "override keeps shadowing")
}

// TestAttrs_EdgeCanonicalization checks both directions hit one record.
func TestAttrs_EdgeCanonicalization(t *testing.T) {
	require := require.New(t)
	m, keys, _ := triangle(t)
	u, v := keys[0], keys[1]

	require.NoError(m.SetEdgeAttribute(u, v, "crease", true))
	got, err := m.EdgeAttribute(v, u, "crease")
	require.NoError(err)
	require.Equal(true, got)

	require.ErrorIs(m.SetEdgeAttribute(u, mesh.IntKey(42), "crease", true), mesh.ErrEdgeNotFound)
}

// TestAttrs_Views checks the live view binding.
func TestAttrs_Views(t *testing.T) {
	require := require.New(t)
	m, keys, f := triangle(t)

	view, err := m.VertexAttributeView(keys[0])
	require.NoError(err)
	view.Set("pinned", true)
	got, err := m.VertexAttribute(keys[0], "pinned")
	require.NoError(err)
	require.Equal(true, got, "view writes hit the mesh")

	require.NoError(m.SetVertexAttribute(keys[0], "mass", 2.0))
	val, ok := view.Get("mass")
	require.True(ok)
	require.Equal(2.0, val, "mesh writes visible through the view")

	require.Equal([]string{"mass", "pinned"}, view.Names())
	require.Equal(2, view.Len())

	_, err = m.FaceAttributeView(mesh.IntKey(5))
	require.ErrorIs(err, mesh.ErrFaceNotFound)
	fview, err := m.FaceAttributeView(f)
	require.NoError(err)
	fview.Set("material", "steel")
	got, err = m.FaceAttribute(f, "material")
	require.NoError(err)
	require.Equal("steel", got)
}

// TestAttrs_NamesInterleaved checks that default and override names
// merge into one sorted list when neither set dominates the other.
func TestAttrs_NamesInterleaved(t *testing.T) {
	require := require.New(t)
	m, keys, _ := triangle(t)

	m.UpdateDefaultVertexAttributes(map[string]any{"b": 0, "d": 0})
	require.NoError(m.SetVertexAttribute(keys[0], "a", 1))
	require.NoError(m.SetVertexAttribute(keys[0], "c", 1))
	require.NoError(m.SetVertexAttribute(keys[0], "e", 1))
	// Overriding a default must not duplicate its name.
	require.NoError(m.SetVertexAttribute(keys[0], "d", 2))

	view, err := m.VertexAttributeView(keys[0])
	require.NoError(err)
	require.Equal([]string{"a", "b", "c", "d", "e"}, view.Names())
}

// TestAttrs_BatchStopsAtFirstMissing checks batch setter semantics.
func TestAttrs_BatchStopsAtFirstMissing(t *testing.T) {
	require := require.New(t)
	m, keys, _ := triangle(t)

	err := m.SetVerticesAttribute([]mesh.Key{keys[0], mesh.IntKey(42), keys[2]}, "tag", 1)
	require.ErrorIs(err, mesh.ErrVertexNotFound)

	// The batch stops at the missing element: earlier writes applied,
	// later ones not.
	got, err := m.VertexAttribute(keys[0], "tag")
	require.NoError(err)
	require.Equal(1, got)
	got, err = m.VertexAttribute(keys[2], "tag")
	require.NoError(err)
	require.Nil(got)
}

// TestAttrs_DroppedWithElement checks attribute cleanup on deletion.
func TestAttrs_DroppedWithElement(t *testing.T) {
	require := require.New(t)
	m, keys, f := triangle(t)
	require.NoError(m.SetEdgeAttribute(keys[0], keys[1], "crease", true))
	require.NoError(m.SetFaceAttribute(f, "material", "wood"))

	require.NoError(m.DeleteFace(f))

	// Rebuild the same face under the same key: old overrides must not
	// resurface.
	_, err := m.AddFace(keys, mesh.WithKey(f))
	require.NoError(err)
	got, err := m.FaceAttribute(f, "material")
	require.NoError(err)
	require.Nil(got)
	got, err = m.EdgeAttribute(keys[0], keys[1], "crease")
	require.NoError(err)
	require.Nil(got)
}

// TestAttrs_MeshLevel checks structure attributes.
func TestAttrs_MeshLevel(t *testing.T) {
	require := require.New(t)
	m := mesh.NewMesh(mesh.WithAttributes(map[string]any{"name": "patch"}))

	got, ok := m.Attribute("name")
	require.True(ok)
	require.Equal("patch", got)

	m.SetAttribute("rev", 3)
	m.UnsetAttribute("name")
	_, ok = m.Attribute("name")
	require.False(ok)
	require.Equal(map[string]any{"rev": 3}, m.Attributes())
}
