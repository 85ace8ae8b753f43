// weld.go stitches separately authored patches into one structure by
// merging vertices whose coordinates coincide within a tolerance. Weld and
// Join are non-mutating: they build and return a fresh mesh, leaving their
// inputs untouched. Coincidence search runs on a 3-D R-tree rather than a
// quadratic scan, so welding stays near O(V log V).

package mesh

import (
	"errors"
	"math"

	"github.com/dhconnelly/rtreego"
)

// rtree branching factors for the weld index.
const (
	weldTreeMin = 2
	weldTreeMax = 8
)

// weldEntry is one representative vertex inside the R-tree.
type weldEntry struct {
	key    Key
	point  rtreego.Point
	extent float64
}

// Bounds implements rtreego.Spatial: a tolerance-sized box around the point.
func (e *weldEntry) Bounds() rtreego.Rect {
	return e.point.ToRect(e.extent)
}

// Weld merges vertices that coincide within tolerance and returns the
// welded mesh. The first vertex (in sorted key order) of each coincident
// cluster survives and keeps its key and attribute overrides; face cycles
// and halfedges are remapped onto the survivors, and faces whose cycles
// collapse below 3 distinct vertices are dropped. Defaults, structure
// attributes and allocator counters carry over.
// Complexity: O(V log V + F).
func (m *Mesh) Weld(tolerance float64) (*Mesh, error) {
	reps := m.weldRepresentatives(tolerance)

	return m.rebuildWith(reps)
}

// Join returns the disjoint union of m and other, welded with the given
// tolerance (tolerance <= 0 skips the weld). Keys of other that clash
// with keys of m are remapped to fresh allocator keys.
// Returns ErrMeshNil for a nil operand.
// Complexity: O((V+F) log (V+F)).
func (m *Mesh) Join(other *Mesh, tolerance float64) (*Mesh, error) {
	if other == nil {
		return nil, ErrMeshNil
	}
	out, err := m.rebuildWith(nil)
	if err != nil {
		return nil, err
	}
	out.UpdateAttributes(other.Attributes())
	out.UpdateDefaultVertexAttributes(other.DefaultVertexAttributes())
	out.UpdateDefaultEdgeAttributes(other.DefaultEdgeAttributes())
	out.UpdateDefaultFaceAttributes(other.DefaultFaceAttributes())
	out.UpdateDefaultCellAttributes(other.DefaultCellAttributes())

	// Import other's vertices, remapping clashing keys to fresh ones.
	remap := make(map[Key]Key)
	for _, v := range other.Vertices() {
		attrs, err := other.VertexAttributeOverrides(v)
		if err != nil {
			return nil, err
		}
		opts := []AddOption{WithAttrs(attrs)}
		if !out.HasVertex(v) {
			opts = append(opts, WithKey(v))
		}
		nv, err := out.AddVertex(opts...)
		if err != nil {
			return nil, err
		}
		remap[v] = nv
	}
	// Import other's faces under the vertex remap.
	faceRemap := make(map[Key]Key)
	for _, f := range other.Faces() {
		cycle, err := other.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		mapped := make([]Key, len(cycle))
		for i, v := range cycle {
			mapped[i] = remap[v]
		}
		attrs, err := other.FaceAttributeOverrides(f)
		if err != nil {
			return nil, err
		}
		opts := []AddOption{WithAttrs(attrs)}
		if !out.HasFace(f) {
			opts = append(opts, WithKey(f))
		}
		nf, err := out.AddFace(mapped, opts...)
		if err != nil {
			return nil, err
		}
		faceRemap[f] = nf
	}
	// Edge overrides follow the vertex remap.
	for _, e := range other.Edges() {
		attrs, err := other.EdgeAttributeOverrides(e.U, e.V)
		if err != nil {
			return nil, err
		}
		for name, value := range attrs {
			if err := out.SetEdgeAttribute(remap[e.U], remap[e.V], name, value); err != nil {
				return nil, err
			}
		}
	}
	// Cells follow the face remap.
	for _, c := range other.Cells() {
		faces, err := other.CellFaces(c)
		if err != nil {
			return nil, err
		}
		mapped := make([]Key, len(faces))
		for i, f := range faces {
			mapped[i] = faceRemap[f]
		}
		attrs, err := other.CellAttributeOverrides(c)
		if err != nil {
			return nil, err
		}
		opts := []AddOption{WithAttrs(attrs)}
		if !out.HasCell(c) {
			opts = append(opts, WithKey(c))
		}
		if _, err := out.AddCell(mapped, opts...); err != nil {
			return nil, err
		}
	}

	if tolerance <= 0 {
		return out, nil
	}

	return out.Weld(tolerance)
}

// weldRepresentatives clusters vertices by coordinate proximity and maps
// every vertex to its cluster representative (itself when it survives).
func (m *Mesh) weldRepresentatives(tolerance float64) map[Key]Key {
	reps := make(map[Key]Key)
	if tolerance <= 0 {
		return reps
	}
	tree := rtreego.NewTree(3, weldTreeMin, weldTreeMax)
	half := tolerance / 2
	for _, v := range m.Vertices() {
		xyz, err := m.VertexCoordinates(v)
		if err != nil {
			continue
		}
		point := rtreego.Point{xyz[0], xyz[1], xyz[2]}
		matched := false
		for _, hit := range tree.SearchIntersect(point.ToRect(half)) {
			entry := hit.(*weldEntry)
			if euclidean(point, entry.point) <= tolerance {
				reps[v] = entry.key
				matched = true
				break
			}
		}
		if !matched {
			reps[v] = v
			tree.Insert(&weldEntry{key: v, point: point, extent: half})
		}
	}

	return reps
}

// rebuildWith copies the mesh, remapping vertices through reps (identity
// when reps is nil or lacks an entry) and dropping collapsed faces.
func (m *Mesh) rebuildWith(reps map[Key]Key) (*Mesh, error) {
	resolve := func(v Key) Key {
		if reps != nil {
			if r, ok := reps[v]; ok {
				return r
			}
		}
		return v
	}

	out := NewMesh(WithStepLimit(m.stepLimit))
	out.UpdateAttributes(m.Attributes())
	out.UpdateDefaultVertexAttributes(m.DefaultVertexAttributes())
	out.UpdateDefaultEdgeAttributes(m.DefaultEdgeAttributes())
	out.UpdateDefaultFaceAttributes(m.DefaultFaceAttributes())
	out.UpdateDefaultCellAttributes(m.DefaultCellAttributes())

	for _, v := range m.Vertices() {
		if resolve(v) != v {
			continue // merged into its representative
		}
		attrs, err := m.VertexAttributeOverrides(v)
		if err != nil {
			return nil, err
		}
		if _, err := out.AddVertex(WithKey(v), WithAttrs(attrs)); err != nil {
			return nil, err
		}
	}
	faceKept := make(map[Key]bool)
	for _, f := range m.Faces() {
		cycle, err := m.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		mapped := make([]Key, len(cycle))
		for i, v := range cycle {
			mapped[i] = resolve(v)
		}
		attrs, err := m.FaceAttributeOverrides(f)
		if err != nil {
			return nil, err
		}
		if _, err := out.AddFace(mapped, WithKey(f), WithAttrs(attrs)); err != nil {
			if isDegenerateFaceErr(err) {
				continue // cycle collapsed under the weld
			}
			return nil, err
		}
		faceKept[f] = true
	}
	for _, e := range m.Edges() {
		attrs, err := m.EdgeAttributeOverrides(e.U, e.V)
		if err != nil {
			return nil, err
		}
		ru, rv := resolve(e.U), resolve(e.V)
		if !out.HasEdge(ru, rv) {
			continue
		}
		for name, value := range attrs {
			if err := out.SetEdgeAttribute(ru, rv, name, value); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range m.Cells() {
		faces, err := m.CellFaces(c)
		if err != nil {
			return nil, err
		}
		complete := true
		for _, f := range faces {
			if !faceKept[f] {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		attrs, err := m.CellAttributeOverrides(c)
		if err != nil {
			return nil, err
		}
		if _, err := out.AddCell(faces, WithKey(c), WithAttrs(attrs)); err != nil {
			return nil, err
		}
	}

	out.RaiseMaxVertexID(m.MaxVertexID())
	out.RaiseMaxFaceID(m.MaxFaceID())
	out.RaiseMaxCellID(m.MaxCellID())

	return out, nil
}

// isDegenerateFaceErr reports whether adding a remapped face failed only
// because welding collapsed its cycle.
func isDegenerateFaceErr(err error) bool {
	return errors.Is(err, ErrFaceTooFewVertices) || errors.Is(err, ErrFaceRepeatedVertex)
}

// euclidean returns the distance between two 3-D points.
func euclidean(a, b rtreego.Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
