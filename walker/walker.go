package walker

import (
	"github.com/tzerio/chronopath/analysis"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
)

// Phase keys reported by ProfilingData.
const (
	PhaseReset               = "reset"
	PhaseArrivalPreTraversal = "arrival_pre_traversal"
	PhaseArrivalTraversal    = "arrival_traversal"
	PhaseRequiredPre         = "required_pre_traversal"
	PhaseRequiredTraversal   = "required_traversal"
	PhaseUpdateSlack         = "update_slack"
)

// Walker schedules visitor hooks over a levelized timing graph. The
// graph must be levelized before any traversal method is called.
type Walker interface {
	// DoReset visits every node and edge once with the reset hooks.
	DoReset(tg *graph.TimingGraph, v analysis.Visitor)

	// DoArrivalPreTraversal visits the arrival boundary: level-0 nodes,
	// clock sources and input-constrained nodes.
	DoArrivalPreTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, v analysis.Visitor)

	// DoArrivalTraversal visits levels 1…L in order, each node once.
	DoArrivalTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, v analysis.Visitor)

	// DoRequiredPreTraversal visits the capture endpoints (SINK nodes).
	DoRequiredPreTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, v analysis.Visitor)

	// DoRequiredTraversal visits levels L−1…0 in reverse order, each node
	// once.
	DoRequiredTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, v analysis.Visitor)

	// DoUpdateSlack visits every edge once with the slack hook.
	DoUpdateSlack(tg *graph.TimingGraph, dc delay.Calculator, v analysis.Visitor)

	// ProfilingData returns the seconds spent in the given phase during
	// the most recent traversal, NaN for unknown or not-yet-run phases.
	ProfilingData(key string) float64
}
