package analysis

import (
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// Hold is the min-path analysis visitor: the earliest arrival against
// the latest requirement decides whether data stays stable past the
// capture edge.
type Hold struct {
	common
}

// NewHold returns a Hold visitor with tag storage preallocated for
// numNodes nodes and numEdges edges.
func NewHold(numNodes, numEdges int) *Hold {
	h := &Hold{}
	h.common = newCommon(holdOps{}, numNodes, numEdges)

	return h
}

// holdOps orients the shared skeleton for the min-path analysis: every
// fold and corner of setupOps mirrored.
type holdOps struct{}

// edgeDelay is the best-case corner; a capture edge is lengthened by the
// primitive's hold time, since data must stay stable that long after
// the clock edge.
func (holdOps) edgeDelay(dc delay.Calculator, tg *graph.TimingGraph, e core.EdgeID) core.Time {
	d := dc.MinEdgeDelay(tg, e)
	if tg.EdgeType(e) == graph.PrimitiveClockCapture {
		d = d.Add(dc.HoldTime(tg, e))
	}

	return d
}

// clockConstraint widens the hold target by the clock uncertainty;
// invalid when the pair has no hold target.
func (holdOps) clockConstraint(tc *constraints.TimingConstraints, launch, capture core.DomainID) core.Time {
	target := tc.HoldConstraint(launch, capture)
	if !target.Valid() {
		return target
	}

	return target.Add(tc.HoldClockUncertainty(launch, capture))
}

// foldArr keeps the earliest arrival.
func (holdOps) foldArr(tb *tags.Table, tag tags.Tag) { tb.MinArr(tag) }

// foldReq keeps the latest requirement.
func (holdOps) foldReq(tb *tags.Table, tag tags.Tag) { tb.MaxReq(tag) }

// captureFold picks the earliest capture clock arrival.
func (holdOps) captureFold(acc, cand core.Time) core.Time { return core.MinTime(acc, cand) }

// slack is arrival minus requirement: positive means the data held long
// enough.
func (holdOps) slack(arr, req core.Time) core.Time { return arr.Sub(req) }
