package analyzer

import (
	"github.com/tzerio/chronopath/analysis"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/walker"
)

// runner chains the five traversal phases behind every analyzer facade.
type runner struct {
	walker walker.Walker
}

// update executes reset → arrival pre → arrival → required pre →
// required → slack over the visitor.
func (r runner) update(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, v analysis.Visitor) error {
	// A mutation since Levelize leaves no valid schedule to walk.
	if !tg.Levelized() {
		return graph.ErrNotLevelized
	}

	r.walker.DoReset(tg, v)

	r.walker.DoArrivalPreTraversal(tg, tc, v)
	r.walker.DoArrivalTraversal(tg, tc, dc, v)

	r.walker.DoRequiredPreTraversal(tg, tc, v)
	r.walker.DoRequiredTraversal(tg, tc, dc, v)

	r.walker.DoUpdateSlack(tg, dc, v)

	return nil
}
