// Package graph implements the TimingGraph: a directed acyclic circuit
// representation whose nodes are pins and endpoints (SOURCE, SINK, IPIN,
// OPIN, CPIN) and whose edges are nets and primitive connections, plus a
// levelizer, a structural validator, and fan-in/fan-out utilities.
//
// What:
//
//   - TimingGraph: incremental builder (AddNode, AddEdge, SetEdgeDisabled)
//     and the read contract used by every analysis pass: Nodes, Edges,
//     Levels, LevelNodes, NodeType, NodeInEdges, NodeOutEdges, EdgeSrcNode,
//     EdgeSinkNode, EdgeDisabled, EdgeType.
//   - Levelize: partitions nodes by longest in-edge depth. Level 0 holds
//     every node with no enabled in-edge; level k holds nodes whose deepest
//     predecessor sits at level k−1. Levelization is the scheduling unit
//     for the walkers: nodes within one level never depend on each other.
//   - Validate: one-shot structural check (acyclicity, strictly level-
//     increasing enabled edges, no dangling SINKs).
//   - Utilities: transitive fan-in/fan-out cones and level/fan-in/fan-out
//     histograms for graph diagnostics.
//
// Why:
//
//	Static timing analysis walks the circuit level-synchronously, forward
//	for arrival times and backward for required times. Pre-levelizing once
//	turns both walks into flat loops over contiguous node blocks, and makes
//	the parallel walker trivially safe (the level barrier is the only
//	synchronisation point).
//
// Complexity:
//
//   - AddNode / AddEdge / accessors: O(1) amortized.
//   - Levelize: O(V + E) Kahn-style wave propagation.
//   - Validate: O(V + E).
//   - TransitiveFanin / TransitiveFanout: O(V + E) bounded by depth.
//
// Errors:
//
//   - ErrNodeNotFound / ErrEdgeNotFound — identifier outside the graph.
//   - ErrCycleDetected — levelization found a cycle.
//   - ErrNotLevelized — a level-dependent query before Levelize.
//   - ErrInvalidGraph — structural validation failure (wrapped with the
//     offending node/edge context).
package graph
