// Package tags implements the timing tag stores: compact per-node (and
// per-edge) collections of tagged times keyed by (kind, launch domain,
// capture domain).
//
// What:
//
//   - Tag: one (time, launch, capture, origin, kind) record. Arrival tags
//     carry the launch domain, required tags the capture pair, clock tags
//     whichever side of the sequential they model, slack tags both.
//   - Table: the per-element collection. At most one tag exists per
//     (kind, launch, capture) key; concurrent candidates fold via the
//     min/max rules instead of appending:
//     MaxArr/MinArr replace time and origin when the candidate wins,
//     MinReq/MaxReq replace the time only (origin stays as set by the
//     arrival pass), MinSlack keeps the worst (smallest) slack.
//   - Store: a dense array of Tables preallocated to the graph size, so
//     the traversal hot loops never allocate.
//
// Why:
//
//	A typical node carries only a handful of tags, so each Table is a
//	short linear-probed vector — cheaper than any hash map at this size
//	and trivially cache-resident. Folding exploits the Time comparison
//	rules: an invalid (NaN) candidate can never displace a valid value,
//	and ties keep the first writer, which makes folds associative,
//	commutative, and float-stable — the property that lets the parallel
//	walker produce bit-identical results.
//
// Complexity: Add and all folds O(k) for k tags in the table (k is a
// small constant in practice); Reset O(1) (retains capacity).
package tags
