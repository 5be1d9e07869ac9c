// Package analyzer provides the public entry points of the engine: the
// FullSetup, FullHold and FullSetupHold timing analyzers.
//
// What:
//
//	An analyzer owns a visitor (the equations) and a walker (the
//	schedule) and borrows the graph, constraints and delay calculator
//	immutably. UpdateTiming runs the canonical pass sequence:
//
//	  reset → arrival pre-traversal → arrival traversal
//	        → required pre-traversal → required traversal → slack
//
//	and the query surface (SetupTags, HoldSlacks, …) reads the resulting
//	tag tables until the next UpdateTiming.
//
// Why "full": every UpdateTiming reanalyzes the whole graph; there is no
// incremental or event-driven mode.
//
// State machine: an analyzer starts unanalyzed — every query returns
// ErrNotAnalyzed until the first completed UpdateTiming. Mutating the
// graph afterwards invalidates its levelization; the next UpdateTiming
// reports ErrNotLevelized until the caller re-levelizes.
//
// Construction runs the one-shot graph/constraint cross-validation:
// the graph must be levelized and structurally valid, clock-domain
// source nodes and constant generators must be SOURCE nodes, input
// constraints must land on SOURCEs and output constraints on SINKs.
// An unlevelized graph is rejected with graph.ErrNotLevelized; other
// failures surface as graph.ErrInvalidGraph or
// constraints.ErrInvalidConstraints with context.
//
// Errors:
//
//   - ErrNotAnalyzed — query before the first UpdateTiming.
//   - graph.ErrNotLevelized — construction on an unlevelized graph, or
//     UpdateTiming after a graph mutation.
package analyzer
