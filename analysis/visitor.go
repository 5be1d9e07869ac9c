package analysis

import (
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
)

// Visitor is the contract between a graph walker and an analysis. Each
// hook reads tags only at the visited element's in- or out-neighbors and
// writes tags only at the visited element itself; that locality is what
// makes same-level visits independent.
type Visitor interface {
	// DoResetNode drops every tag of node n.
	DoResetNode(n core.NodeID)

	// DoResetEdge drops every slack tag of edge e.
	DoResetEdge(e core.EdgeID)

	// DoArrivalPreTraverseNode seeds arrival-side tags at a source-like
	// node (clock source, input-constrained node).
	DoArrivalPreTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, n core.NodeID)

	// DoRequiredPreTraverseNode seeds required-side tags at a capture
	// endpoint.
	DoRequiredPreTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, n core.NodeID)

	// DoArrivalTraverseNode folds predecessor tags into n across its
	// enabled in-edges.
	DoArrivalTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, n core.NodeID)

	// DoRequiredTraverseNode folds successor required tags into n across
	// its enabled out-edges.
	DoRequiredTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, n core.NodeID)

	// DoSlackTraverseEdge computes the slack tags of edge e.
	DoSlackTraverseEdge(tg *graph.TimingGraph, dc delay.Calculator, e core.EdgeID)
}
