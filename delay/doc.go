// Package delay defines the delay calculator contract consumed by the
// analysis visitors, and a fixed-delay implementation for tests and
// annotated netlists.
//
// What:
//
//   - Calculator: per-edge maximum and minimum propagation delays, plus
//     the setup/hold times of sequential primitives (meaningful on
//     clock-capture edges into SINKs, zero elsewhere).
//   - Fixed: a Calculator backed by preallocated per-edge tables with a
//     builder-style setter surface and a Uniform constructor.
//
// Why:
//
//	The engine never estimates delays itself; it folds whatever the
//	calculator yields. Keeping the contract this small makes wire-load
//	models, corner tables, or unit-delay stubs interchangeable without
//	touching the traversal code.
//
// Complexity: all Fixed look-ups are O(1) array reads.
package delay
