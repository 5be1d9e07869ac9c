package analysis

import (
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// SetupHold runs the setup and hold analyses in a single traversal: each
// hook delegates to the setup visitor, then the hold visitor. One pass
// over a node's neighborhood serves both while its tag tables are hot in
// cache.
type SetupHold struct {
	setup *Setup
	hold  *Hold
}

// NewSetupHold returns a combined visitor with storage preallocated for
// numNodes nodes and numEdges edges.
func NewSetupHold(numNodes, numEdges int) *SetupHold {
	return &SetupHold{
		setup: NewSetup(numNodes, numEdges),
		hold:  NewHold(numNodes, numEdges),
	}
}

// DoResetNode implements Visitor.
func (sh *SetupHold) DoResetNode(n core.NodeID) {
	sh.setup.DoResetNode(n)
	sh.hold.DoResetNode(n)
}

// DoResetEdge implements Visitor.
func (sh *SetupHold) DoResetEdge(e core.EdgeID) {
	sh.setup.DoResetEdge(e)
	sh.hold.DoResetEdge(e)
}

// DoArrivalPreTraverseNode implements Visitor.
func (sh *SetupHold) DoArrivalPreTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, n core.NodeID) {
	sh.setup.DoArrivalPreTraverseNode(tg, tc, n)
	sh.hold.DoArrivalPreTraverseNode(tg, tc, n)
}

// DoRequiredPreTraverseNode implements Visitor.
func (sh *SetupHold) DoRequiredPreTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, n core.NodeID) {
	sh.setup.DoRequiredPreTraverseNode(tg, tc, n)
	sh.hold.DoRequiredPreTraverseNode(tg, tc, n)
}

// DoArrivalTraverseNode implements Visitor.
func (sh *SetupHold) DoArrivalTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, n core.NodeID) {
	sh.setup.DoArrivalTraverseNode(tg, tc, dc, n)
	sh.hold.DoArrivalTraverseNode(tg, tc, dc, n)
}

// DoRequiredTraverseNode implements Visitor.
func (sh *SetupHold) DoRequiredTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, n core.NodeID) {
	sh.setup.DoRequiredTraverseNode(tg, tc, dc, n)
	sh.hold.DoRequiredTraverseNode(tg, tc, dc, n)
}

// DoSlackTraverseEdge implements Visitor.
func (sh *SetupHold) DoSlackTraverseEdge(tg *graph.TimingGraph, dc delay.Calculator, e core.EdgeID) {
	sh.setup.DoSlackTraverseEdge(tg, dc, e)
	sh.hold.DoSlackTraverseEdge(tg, dc, e)
}

// SetupTags returns all setup tags of node n.
func (sh *SetupHold) SetupTags(n core.NodeID) []tags.Tag { return sh.setup.Tags(n) }

// SetupTagsOfKind returns the setup tags of node n restricted to kind k.
func (sh *SetupHold) SetupTagsOfKind(n core.NodeID, k tags.Kind) []tags.Tag {
	return sh.setup.TagsOfKind(n, k)
}

// SetupSlacks returns the setup slack tags of edge e.
func (sh *SetupHold) SetupSlacks(e core.EdgeID) []tags.Tag { return sh.setup.Slacks(e) }

// HoldTags returns all hold tags of node n.
func (sh *SetupHold) HoldTags(n core.NodeID) []tags.Tag { return sh.hold.Tags(n) }

// HoldTagsOfKind returns the hold tags of node n restricted to kind k.
func (sh *SetupHold) HoldTagsOfKind(n core.NodeID, k tags.Kind) []tags.Tag {
	return sh.hold.TagsOfKind(n, k)
}

// HoldSlacks returns the hold slack tags of edge e.
func (sh *SetupHold) HoldSlacks(e core.EdgeID) []tags.Tag { return sh.hold.Slacks(e) }
