// Package core defines the strongly-typed identifiers, the NaN-aware Time
// scalar, and the index-keyed containers shared by every chronopath
// subpackage.
//
// What:
//
//   - NodeID, EdgeID, LevelID: int32-backed indices into the timing graph.
//     The zero-cost typing prevents a node index from being used where an
//     edge index is expected.
//   - DomainID: a byte-backed clock domain identifier (at most MaxDomains
//     domains per constraint set).
//   - Time: a float32 wrapper where NaN means "no value". Arithmetic
//     propagates NaN; ordered comparisons involving NaN are always false,
//     which the tag folding rules exploit directly.
//   - NodeMap / EdgeMap / LevelMap: thin generic slices keyed by the typed
//     indices, preallocated to graph size so hot loops never allocate.
//
// Why:
//
//	A timing graph is a dense, immutable DAG; index arrays beat pointer
//	graphs for cache locality and make cyclic ownership impossible. NaN as
//	the "unspecified" sentinel lets look-ups, folds and propagation share a
//	single silent invalid value instead of (value, ok) pairs everywhere.
//
// Complexity:
//
//   - All identifier and Time operations: O(1), allocation-free.
//   - Map construction: O(n) for n graph elements.
//
// Errors:
//
//   - ErrDomainOverflow — more than MaxDomains clock domains requested.
package core
