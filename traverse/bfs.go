// bfs.go walks the vertex adjacency breadth-first and derives the
// connectivity queries (Connected, Components) from it. Neighbor
// enumeration is sorted, so visit order, component order and component
// membership are all deterministic.

package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// queueItem pairs a vertex key with its depth and its parent's key.
type queueItem struct {
	v      mesh.Key
	depth  int
	parent mesh.Key // zero for root
}

// walker encapsulates mutable walk state.
type walker struct {
	mesh    *mesh.Mesh
	opts    Options
	queue   []queueItem
	visited map[mesh.Key]bool
	res     *Result
}

// BFS runs a breadth-first walk on m starting from start, applying any
// number of functional Options. Returns ErrMeshNil or
// ErrStartVertexNotFound for invalid input, ErrOptionViolation for bad
// options, or any user-supplied hook error.
// Complexity: O(V + E) over the reached component.
func BFS(m *mesh.Mesh, start mesh.Key, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.HasVertex(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	n := m.VertexCount()
	w := &walker{
		mesh:    m,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[mesh.Key]bool, n),
		res: &Result{
			Order:  make([]mesh.Key, 0, n),
			Depth:  make(map[mesh.Key]int, n),
			Parent: make(map[mesh.Key]mesh.Key, n),
		},
	}

	w.enqueue(start, 0, mesh.Key{})

	return w.res, w.loop()
}

// Connected reports whether every vertex is reachable from every other.
// The empty mesh counts as connected.
// Complexity: O(V + E).
func Connected(m *mesh.Mesh) (bool, error) {
	if m == nil {
		return false, ErrMeshNil
	}
	vertices := m.Vertices()
	if len(vertices) == 0 {
		return true, nil
	}
	res, err := BFS(m, vertices[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vertices), nil
}

// Components returns the connected components of the vertex adjacency.
// Components are ordered by their smallest vertex, and each component's
// vertices are sorted.
// Complexity: O(V log V + E).
func Components(m *mesh.Mesh) ([][]mesh.Key, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	seen := make(map[mesh.Key]bool)
	var components [][]mesh.Key
	for _, v := range m.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(m, v)
		if err != nil {
			return nil, err
		}
		component := make([]mesh.Key, len(res.Order))
		copy(component, res.Order)
		mesh.SortKeys(component)
		for _, u := range component {
			seen[u] = true
		}
		components = append(components, component)
	}

	return components, nil
}

// enqueue marks v visited at depth d, records its parent, and adds it to
// the queue.
func (w *walker) enqueue(v mesh.Key, d int, parent mesh.Key) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if !parent.IsZero() {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d, parent: parent})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %s: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors in sorted order, applies filtering
// and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.mesh.Neighbors(item.v)
	if err != nil {
		return err
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}
