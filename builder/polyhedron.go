// SPDX-License-Identifier: MIT
// Package: lvlmesh/builder
//
// polyhedron.go — implementation of the Polyhedron(faces) constructor.
//
// Canonical model:
//   - The five platonic solids, selected by face count: tetrahedron (4),
//     hexahedron (6), octahedron (8), dodecahedron (12), icosahedron (20).
//   - Tetrahedron, hexahedron, octahedron and icosahedron use fixed
//     canonical coordinates and face tables.
//   - The dodecahedron is derived as the dual of the icosahedron: face
//     centroids become vertices, and the ordered fan of faces around each
//     icosahedron vertex becomes a pentagon.
//
// Contract:
//   - Faces are counterclockwise when seen from outside.
//   - Vertex keys are 0..V-1, face keys 0..F-1, in table order.
//   - Any other face count returns ErrUnknownPolyhedron.
//
// Determinism:
//   - Fixed tables and sorted-key iteration in the dual derivation make
//     every call byte-for-byte reproducible.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmesh/mesh"
)

const methodPolyhedron = "Polyhedron"

// Supported face counts.
const (
	FacesTetrahedron  = 4
	FacesHexahedron   = 6
	FacesOctahedron   = 8
	FacesDodecahedron = 12
	FacesIcosahedron  = 20
)

// phi is the golden ratio, the backbone of the icosahedral coordinates.
var phi = (1 + math.Sqrt(5)) / 2

var tetrahedronVertices = [][3]float64{
	{1, 1, 1},
	{1, -1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
}

var tetrahedronFaces = [][]int{
	{0, 1, 2},
	{0, 3, 1},
	{0, 2, 3},
	{1, 3, 2},
}

var hexahedronVertices = [][3]float64{
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

var hexahedronFaces = [][]int{
	{0, 3, 2, 1},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

var octahedronVertices = [][3]float64{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

var octahedronFaces = [][]int{
	{0, 2, 4},
	{2, 1, 4},
	{1, 3, 4},
	{3, 0, 4},
	{2, 0, 5},
	{1, 2, 5},
	{3, 1, 5},
	{0, 3, 5},
}

var icosahedronVertices = [][3]float64{
	{-1, phi, 0},
	{1, phi, 0},
	{-1, -phi, 0},
	{1, -phi, 0},
	{0, -1, phi},
	{0, 1, phi},
	{0, -1, -phi},
	{0, 1, -phi},
	{phi, 0, -1},
	{phi, 0, 1},
	{-phi, 0, -1},
	{-phi, 0, 1},
}

var icosahedronFaces = [][]int{
	{0, 11, 5},
	{0, 5, 1},
	{0, 1, 7},
	{0, 7, 10},
	{0, 10, 11},
	{1, 5, 9},
	{5, 11, 4},
	{11, 10, 2},
	{10, 7, 6},
	{7, 1, 8},
	{3, 9, 4},
	{3, 4, 2},
	{3, 2, 6},
	{3, 6, 8},
	{3, 8, 9},
	{4, 9, 5},
	{2, 4, 11},
	{6, 2, 10},
	{8, 6, 7},
	{9, 8, 1},
}

// Polyhedron builds the platonic solid with the given face count.
// Complexity: O(V + F); the dodecahedron additionally walks the
// icosahedron once for the dual derivation.
func Polyhedron(faces int, opts ...mesh.Option) (*mesh.Mesh, error) {
	switch faces {
	case FacesTetrahedron:
		return mesh.FromVerticesAndFaces(tetrahedronVertices, tetrahedronFaces, opts...)
	case FacesHexahedron:
		return mesh.FromVerticesAndFaces(hexahedronVertices, hexahedronFaces, opts...)
	case FacesOctahedron:
		return mesh.FromVerticesAndFaces(octahedronVertices, octahedronFaces, opts...)
	case FacesIcosahedron:
		return mesh.FromVerticesAndFaces(icosahedronVertices, icosahedronFaces, opts...)
	case FacesDodecahedron:
		return dodecahedron(opts...)
	default:
		return nil, fmt.Errorf("%s: %d faces: %w", methodPolyhedron, faces, ErrUnknownPolyhedron)
	}
}

// dodecahedron derives the 12-face solid as the dual of the icosahedron.
func dodecahedron(opts ...mesh.Option) (*mesh.Mesh, error) {
	ico, err := mesh.FromVerticesAndFaces(icosahedronVertices, icosahedronFaces)
	if err != nil {
		return nil, fmt.Errorf("%s: icosahedron: %w", methodPolyhedron, err)
	}

	// Dual vertices: icosahedron face centroids, indexed by face order.
	faceIndex := make(map[mesh.Key]int)
	var vertices [][3]float64
	for i, f := range ico.Faces() {
		cycle, err := ico.FaceVertices(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPolyhedron, err)
		}
		var centroid [3]float64
		for _, v := range cycle {
			xyz, err := ico.VertexCoordinates(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodPolyhedron, err)
			}
			centroid[0] += xyz[0]
			centroid[1] += xyz[1]
			centroid[2] += xyz[2]
		}
		n := float64(len(cycle))
		faceIndex[f] = i
		vertices = append(vertices, [3]float64{centroid[0] / n, centroid[1] / n, centroid[2] / n})
	}

	// Dual faces: the ordered fan of faces around each icosahedron vertex.
	var faces [][]int
	for _, v := range ico.Vertices() {
		ring, err := ico.OrderedNeighbors(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPolyhedron, err)
		}
		pentagon := make([]int, 0, len(ring))
		for _, nbr := range ring {
			f, _, err := ico.HalfedgeFace(v, nbr)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodPolyhedron, err)
			}
			pentagon = append(pentagon, faceIndex[f])
		}
		faces = append(faces, pentagon)
	}

	return mesh.FromVerticesAndFaces(vertices, faces, opts...)
}
