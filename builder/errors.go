// SPDX-License-Identifier: MIT
// Package: lvlmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using `%w`.
//   - Constructors MUST NOT panic at runtime; every bad parameter surfaces
//     as a sentinel.

package builder

import "errors"

// ErrTooFewFaces indicates that a grid dimension is smaller than the
// allowed minimum for the requested constructor.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewFaces) { /* report invalid size */ }.
var ErrTooFewFaces = errors.New("builder: parameter too small")

// ErrUnknownPolyhedron indicates Polyhedron was asked for a face count with
// no platonic solid behind it (valid counts: 4, 6, 8, 12, 20).
// Usage: if errors.Is(err, ErrUnknownPolyhedron) { /* fix face count */ }.
var ErrUnknownPolyhedron = errors.New("builder: unknown polyhedron")
