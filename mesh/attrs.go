// Package mesh: the layered attribute store.
//
// Every element kind (vertex, edge, face, cell) carries the same two-layer
// lookup: a per-element override map over a structure-wide default map.
// Reads fall through override → default → nil; writes and deletes only ever
// touch the override layer, so changing a default never clobbers an explicit
// per-element value and unsetting an override restores default visibility.
//
// The logic is written once, generically over the element key type, and
// instantiated four times — never duplicated per kind. Defaults live in a
// red-black tree keyed by attribute name so views iterate names in sorted
// order without re-sorting on every call.

package mesh

import (
	"sort"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// attrStore is one element kind's attribute layers. Methods assume the
// caller holds the mesh element lock; the store itself is not synchronized.
type attrStore[K comparable] struct {
	defaults  *redblacktree.Tree   // attribute name → default value, sorted
	overrides map[K]map[string]any // element → explicit overrides
}

func newAttrStore[K comparable]() *attrStore[K] {
	return &attrStore[K]{
		defaults:  redblacktree.NewWithStringComparator(),
		overrides: make(map[K]map[string]any),
	}
}

// get resolves name for el: override first, then the kind default.
func (s *attrStore[K]) get(el K, name string) (any, bool) {
	if ov, ok := s.overrides[el]; ok {
		if value, ok := ov[name]; ok {
			return value, true
		}
	}
	if value, found := s.defaults.Get(name); found {
		return value, true
	}

	return nil, false
}

// set writes an override for el; the default layer is never written here.
func (s *attrStore[K]) set(el K, name string, value any) {
	ov, ok := s.overrides[el]
	if !ok {
		ov = make(map[string]any)
		s.overrides[el] = ov
	}
	ov[name] = value
}

// setAll writes a batch of overrides for el.
func (s *attrStore[K]) setAll(el K, attrs map[string]any) {
	for name, value := range attrs {
		s.set(el, name, value)
	}
}

// unset deletes only the override, restoring default-map visibility.
// Empty override records are dropped to keep serialization minimal.
func (s *attrStore[K]) unset(el K, name string) {
	if ov, ok := s.overrides[el]; ok {
		delete(ov, name)
		if len(ov) == 0 {
			delete(s.overrides, el)
		}
	}
}

// drop removes the whole override record of a deleted element.
func (s *attrStore[K]) drop(el K) {
	delete(s.overrides, el)
}

// names returns the union of default names and el's override names,
// sorted; overrides add to, never shadow out of, the default set.
// The tree already iterates defaults in order, so only the handful of
// override-only names need sorting before the merge.
func (s *attrStore[K]) names(el K) []string {
	extra := make([]string, 0, len(s.overrides[el]))
	for name := range s.overrides[el] {
		if _, found := s.defaults.Get(name); !found {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	out := make([]string, 0, s.defaults.Size()+len(extra))
	it := s.defaults.Iterator()
	for it.Next() {
		name := it.Key().(string)
		for len(extra) > 0 && extra[0] < name {
			out = append(out, extra[0])
			extra = extra[1:]
		}
		out = append(out, name)
	}
	out = append(out, extra...)

	return out
}

// updateDefaults merges attrs into the default layer. Existing per-element
// overrides are untouched.
func (s *attrStore[K]) updateDefaults(attrs map[string]any) {
	for name, value := range attrs {
		s.defaults.Put(name, value)
	}
}

// defaultsMap returns a copy of the default layer.
func (s *attrStore[K]) defaultsMap() map[string]any {
	out := make(map[string]any, s.defaults.Size())
	it := s.defaults.Iterator()
	for it.Next() {
		out[it.Key().(string)] = it.Value()
	}

	return out
}

// overridesOf returns a copy of el's override record (nil if none).
func (s *attrStore[K]) overridesOf(el K) map[string]any {
	ov, ok := s.overrides[el]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(ov))
	for name, value := range ov {
		out[name] = value
	}

	return out
}

// elements returns every element carrying an override record, unsorted.
func (s *attrStore[K]) elements() []K {
	out := make([]K, 0, len(s.overrides))
	for el := range s.overrides {
		out = append(out, el)
	}

	return out
}

// clone deep-copies both layers.
func (s *attrStore[K]) clone() *attrStore[K] {
	out := newAttrStore[K]()
	it := s.defaults.Iterator()
	for it.Next() {
		out.defaults.Put(it.Key(), it.Value())
	}
	for el, ov := range s.overrides {
		cp := make(map[string]any, len(ov))
		for name, value := range ov {
			cp[name] = value
		}
		out.overrides[el] = cp
	}

	return out
}

// View is a live read/write window onto one element's attributes.
// Reads see the union of the default layer and the element's overrides
// (override wins); Set and Unset only ever touch the override layer.
// The view stays bound to its element: it reflects later mutations made
// through the mesh, and writes through a view of a deleted element are a
// precondition violation, not detected here.
type View struct {
	mu      *sync.RWMutex
	getFn   func(name string) (any, bool)
	setFn   func(name string, value any)
	unsetFn func(name string)
	namesFn func() []string
}

// newView binds a store and element into a View guarded by the mesh
// element lock.
func newView[K comparable](mu *sync.RWMutex, s *attrStore[K], el K) *View {
	return &View{
		mu:      mu,
		getFn:   func(name string) (any, bool) { return s.get(el, name) },
		setFn:   func(name string, value any) { s.set(el, name, value) },
		unsetFn: func(name string) { s.unset(el, name) },
		namesFn: func() []string { return s.names(el) },
	}
}

// Get resolves name through the override and default layers.
func (v *View) Get(name string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.getFn(name)
}

// Set writes an override; the structure-wide default is never modified.
func (v *View) Set(name string, value any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setFn(name, value)
}

// Unset deletes only the override, restoring the default (if any).
func (v *View) Unset(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unsetFn(name)
}

// Names returns the visible attribute names in sorted order.
func (v *View) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.namesFn()
}

// Len reports the number of visible attribute names.
func (v *View) Len() int {
	return len(v.Names())
}
