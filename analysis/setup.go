package analysis

import (
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// Setup is the max-path analysis visitor: the latest arrival against the
// earliest requirement decides whether data settles before the capture
// edge.
type Setup struct {
	common
}

// NewSetup returns a Setup visitor with tag storage preallocated for
// numNodes nodes and numEdges edges.
func NewSetup(numNodes, numEdges int) *Setup {
	s := &Setup{}
	s.common = newCommon(setupOps{}, numNodes, numEdges)

	return s
}

// setupOps orients the shared skeleton for the max-path analysis.
type setupOps struct{}

// edgeDelay is the worst-case corner; a capture edge is shortened by the
// primitive's setup time, since data must settle that long before the
// clock edge.
func (setupOps) edgeDelay(dc delay.Calculator, tg *graph.TimingGraph, e core.EdgeID) core.Time {
	d := dc.MaxEdgeDelay(tg, e)
	if tg.EdgeType(e) == graph.PrimitiveClockCapture {
		d = d.Sub(dc.SetupTime(tg, e))
	}

	return d
}

// clockConstraint tightens the setup target by the clock uncertainty;
// invalid when the pair has no setup target.
func (setupOps) clockConstraint(tc *constraints.TimingConstraints, launch, capture core.DomainID) core.Time {
	target := tc.SetupConstraint(launch, capture)
	if !target.Valid() {
		return target
	}

	return target.Sub(tc.SetupClockUncertainty(launch, capture))
}

// foldArr keeps the latest arrival.
func (setupOps) foldArr(tb *tags.Table, tag tags.Tag) { tb.MaxArr(tag) }

// foldReq keeps the earliest requirement.
func (setupOps) foldReq(tb *tags.Table, tag tags.Tag) { tb.MinReq(tag) }

// captureFold picks the latest capture clock arrival.
func (setupOps) captureFold(acc, cand core.Time) core.Time { return core.MaxTime(acc, cand) }

// slack is requirement minus arrival: positive means margin.
func (setupOps) slack(arr, req core.Time) core.Time { return req.Sub(arr) }
