package traverse_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlmesh/builder"
	"github.com/katalvlaran/lvlmesh/mesh"
	"github.com/katalvlaran/lvlmesh/traverse"
)

// pinwheel builds three triangles glued only at a shared center vertex,
// the classic non-manifold vertex configuration.
func pinwheel(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	for i := 0; i < 7; i++ {
		if _, err := m.AddVertex(); err != nil {
			t.Fatal(err)
		}
	}
	cycles := [][]mesh.Key{
		{mesh.IntKey(0), mesh.IntKey(1), mesh.IntKey(2)},
		{mesh.IntKey(0), mesh.IntKey(3), mesh.IntKey(4)},
		{mesh.IntKey(0), mesh.IntKey(5), mesh.IntKey(6)},
	}
	for _, cycle := range cycles {
		if _, err := m.AddFace(cycle); err != nil {
			t.Fatal(err)
		}
	}

	return m
}

func TestIsManifold(t *testing.T) {
	// Closed surface.
	tet, err := builder.Polyhedron(4)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := traverse.IsManifold(tet); err != nil || !ok {
		t.Errorf("tetrahedron: IsManifold = %v, %v; want true", ok, err)
	}

	// Disk-like patch: boundary vertices still have a single fan.
	grid, err := builder.Grid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := traverse.IsManifold(grid); err != nil || !ok {
		t.Errorf("grid: IsManifold = %v, %v; want true", ok, err)
	}

	// An isolated vertex breaks the surface property.
	if _, err := grid.AddVertex(); err != nil {
		t.Fatal(err)
	}
	if ok, err := traverse.IsManifold(grid); err != nil || ok {
		t.Errorf("grid+isolated: IsManifold = %v, %v; want false", ok, err)
	}

	// A vertex with two fans is non-manifold even without isolated vertices.
	if ok, err := traverse.IsManifold(pinwheel(t)); err != nil || ok {
		t.Errorf("pinwheel: IsManifold = %v, %v; want false", ok, err)
	}

	// Empty mesh and nil mesh.
	if ok, err := traverse.IsManifold(mesh.NewMesh()); err != nil || !ok {
		t.Errorf("empty: IsManifold = %v, %v; want true", ok, err)
	}
	if _, err := traverse.IsManifold(nil); !errors.Is(err, traverse.ErrMeshNil) {
		t.Errorf("nil: want ErrMeshNil, got %v", err)
	}
}

func TestEulerCharacteristic(t *testing.T) {
	// Closed genus-0 surfaces all give 2.
	for _, faces := range []int{4, 6, 8, 12, 20} {
		p, err := builder.Polyhedron(faces)
		if err != nil {
			t.Fatal(err)
		}
		chi, err := traverse.EulerCharacteristic(p)
		if err != nil {
			t.Fatal(err)
		}
		if chi != 2 {
			t.Errorf("polyhedron(%d): χ = %d; want 2", faces, chi)
		}
	}

	// A disk-like patch gives 1.
	grid, err := builder.Grid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	chi, err := traverse.EulerCharacteristic(grid)
	if err != nil {
		t.Fatal(err)
	}
	if chi != 1 {
		t.Errorf("grid: χ = %d; want 1", chi)
	}

	if _, err := traverse.EulerCharacteristic(nil); !errors.Is(err, traverse.ErrMeshNil) {
		t.Errorf("nil: want ErrMeshNil, got %v", err)
	}
}
