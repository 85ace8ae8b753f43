// Package lvlmesh is an in-memory playground for building, editing and
// analyzing attributed halfedge meshes — from raw vertex/face soup to quad
// grid refinement and polyhedral topology checks.
//
// 🚀 What is lvlmesh?
//
//	A modern, thread-safe library that brings together:
//		• Core primitives: vertices, undirected edges and oriented faces with
//		  stable, arbitrary keys, mutated safely under locks
//		• Layered attributes: per-element overrides over structure-wide
//		  defaults, with live read/write views
//		• Euler operators: add/delete vertex and face, vertex insertion,
//		  edge/face/strip splits, tolerance-based welding and joining
//		• Traversals: ordered one-ring walks, edge loops, edge strips,
//		  boundary loops, connectivity and manifoldness checks
//		• Codec: a canonical, key-stable document form with JSON and CBOR
//		  encodings that round-trips the whole structure
//
// ✨ Why choose lvlmesh?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, adjacency invariants after every call
//   - Deterministic – every query returns results in sorted key order
//   - Extensible – coordinates are just attributes; nothing is privileged
//
// Under the hood, everything is organized under four subpackages:
//
//	mesh/     — the halfedge structure: topology, attributes, Euler operators
//	traverse/ — connectivity, manifoldness and boundary-loop queries
//	codec/    — canonical document form, JSON and CBOR round-tripping
//	builder/  — deterministic generators (quad grids, platonic solids)
//
// Quick ASCII example:
//
//	    A───B
//	    │ f │
//	    C───D
//
//	represents a single quad face f with four vertices and four
//	boundary edges; each directed halfedge (A→B, B→D, …) records the
//	face on its side, or nothing when it borders the outside.
//
//	go get github.com/katalvlaran/lvlmesh
package lvlmesh
