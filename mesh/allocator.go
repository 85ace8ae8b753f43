// Package mesh: key allocation.
//
// The allocator owns one monotonically non-decreasing "largest integer key
// seen" counter per element kind. Auto-generated keys are max+1; caller
// supplied keys pass through unchanged, only raising the counter when they
// are integers above it. Duplicate detection is the builder's job, not the
// allocator's.

package mesh

// allocCounterStart makes the first auto key IntKey(0).
const allocCounterStart = -1

// allocator tracks the running maximum integer key per element kind.
type allocator struct {
	maxVertex int64
	maxFace   int64
	maxCell   int64
}

func newAllocator() allocator {
	return allocator{
		maxVertex: allocCounterStart,
		maxFace:   allocCounterStart,
		maxCell:   allocCounterStart,
	}
}

// reset returns every counter to its initial state.
func (a *allocator) reset() {
	*a = newAllocator()
}

// allocate returns requested unchanged when it is non-zero, observing it
// into the counter; a zero request yields the next auto integer key.
// Complexity: O(1)
func allocate(counter *int64, requested Key) Key {
	if requested.IsZero() {
		*counter++
		return IntKey(*counter)
	}
	observe(counter, requested)
	return requested
}

// observe raises the counter to cover an integer-valued key, keeping the
// invariant counter ≥ every integer key currently in use.
func observe(counter *int64, k Key) {
	if n, ok := k.Int(); ok && n > *counter {
		*counter = n
	}
}
