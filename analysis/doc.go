// Package analysis implements the STA equation sets as visitors: the
// objects a graph walker drives over a levelized timing graph to compute
// arrival times, required times and slacks per clock-domain pair.
//
// What:
//
//   - Visitor: the seven-hook contract the walkers call (reset, arrival
//     pre-traverse/traverse, required pre-traverse/traverse, slack).
//   - Setup: the max-path analysis. Arrival tags fold by maximum, required
//     tags by minimum; capture paths are shortened by the primitive setup
//     time; the setup target is tightened by the clock uncertainty.
//   - Hold: the min-path mirror. Arrival folds by minimum, required by
//     maximum; capture paths are lengthened by the hold time; the hold
//     target is widened by the clock uncertainty.
//   - SetupHold: a composite delegating each hook to Setup then Hold, so
//     one pass over a node's neighborhood serves both analyses while its
//     tag tables are hot in cache.
//
// How a pass fits together (forward direction):
//
//  1. Arrival pre-traverse seeds clock sources (CLOCK_LAUNCH +
//     CLOCK_CAPTURE at the domain's source latency) and input-constrained
//     nodes (DATA_ARRIVAL at latency + offset). Constant generators seed
//     nothing: constants drive no timing paths.
//  2. Arrival traverse folds predecessor tags across each enabled in-edge:
//     clock-launch edges convert CLOCK_LAUNCH into DATA_ARRIVAL (the
//     register departure), clock-capture edges carry CLOCK_CAPTURE with
//     the setup/hold adjustment, nets and combinational edges carry every
//     kind onward.
//  3. Required pre-traverse, at each SINK with data arrivals, pairs every
//     launch domain against every analyzable capture domain and seeds
//     DATA_REQUIRED from the capture clock arrival plus the (uncertainty-
//     adjusted) target, minus any output offset. Virtual clocks and
//     primary outputs fall back to the domain's source latency.
//  4. Required traverse folds required times backward along data paths,
//     restricted to launch domains that actually arrive at the node.
//  5. Slack traverse computes, per enabled edge, the margin between the
//     source arrival plus edge delay and the sink requirement, folded to
//     the worst (smallest) value per domain pair.
//
// Why visitors:
//
//	The walker owns the schedule, the visitor owns the semantics; swapping
//	either side never touches the other. All visitor writes target only
//	the node (or edge) under visit, which is what lets the parallel walker
//	run a whole level concurrently without locks.
//
// Complexity: every hook is O(degree × tags) for the visited element;
// tag tables are preallocated at construction, so traversals allocate
// only when a node's tag set first grows.
package analysis
