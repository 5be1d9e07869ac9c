// Package walker implements the traversal schedules that drive an
// analysis visitor over a levelized timing graph. A walker owns the
// order of visits, never the semantics: any visitor runs unchanged under
// any walker.
//
// What:
//
//   - Walker: the six-phase schedule contract — reset, arrival
//     pre-traversal, forward levelized arrival traversal, required
//     pre-traversal, backward levelized required traversal, slack sweep —
//     plus per-phase wall-clock profiling.
//   - Serial: processes each level's node block in ascending ID order on
//     the calling goroutine.
//   - Parallel: fans each level's node block out across a bounded worker
//     pool and joins at the level boundary. Because a visitor writes only
//     tags of the element under visit and reads only across in-edges
//     (arrival) or out-edges (required), nodes within one level are
//     independent; the level barrier is the only synchronisation point,
//     and results are bit-identical to Serial's.
//
// Why:
//
//	Levelized scheduling turns both analysis directions into flat loops:
//	arrival at level L reads only levels < L, required at level L reads
//	only levels > L. The pre-traversals cover the boundary conditions —
//	level-0 nodes, clock sources and input-constrained nodes forward;
//	capture endpoints backward.
//
// Complexity: every phase is O(V + E) visitor hooks; Parallel adds one
// goroutine join per level.
//
// Profiling: ProfilingData(key) reports seconds spent in a phase, keyed
// "reset", "arrival_pre_traversal", "arrival_traversal",
// "required_pre_traversal", "required_traversal", "update_slack";
// unknown keys yield NaN.
package walker
