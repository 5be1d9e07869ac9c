package walker

import (
	"math"
	"sort"
	"time"

	"github.com/tzerio/chronopath/analysis"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
)

// Serial is the single-threaded walker: each level's node block is
// processed in ascending ID order on the calling goroutine.
type Serial struct {
	prof map[string]float64
}

// NewSerial returns a Serial walker.
func NewSerial() *Serial {
	return &Serial{prof: make(map[string]float64)}
}

// DoReset implements Walker.
func (w *Serial) DoReset(tg *graph.TimingGraph, v analysis.Visitor) {
	defer w.timePhase(PhaseReset)()
	for i := 0; i < tg.NumNodes(); i++ {
		v.DoResetNode(core.NodeID(i))
	}
	for i := 0; i < tg.NumEdges(); i++ {
		v.DoResetEdge(core.EdgeID(i))
	}
}

// DoArrivalPreTraversal implements Walker.
func (w *Serial) DoArrivalPreTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, v analysis.Visitor) {
	defer w.timePhase(PhaseArrivalPreTraversal)()
	for _, n := range arrivalBoundary(tg, tc) {
		v.DoArrivalPreTraverseNode(tg, tc, n)
	}
}

// DoArrivalTraversal implements Walker.
func (w *Serial) DoArrivalTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, v analysis.Visitor) {
	defer w.timePhase(PhaseArrivalTraversal)()
	// Level 0 has no in-edges; the forward walk starts one above it.
	for l := 1; l < tg.NumLevels(); l++ {
		for _, n := range tg.LevelNodes(core.LevelID(l)) {
			v.DoArrivalTraverseNode(tg, tc, dc, n)
		}
	}
}

// DoRequiredPreTraversal implements Walker.
func (w *Serial) DoRequiredPreTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, v analysis.Visitor) {
	defer w.timePhase(PhaseRequiredPre)()
	for _, n := range captureBoundary(tg) {
		v.DoRequiredPreTraverseNode(tg, tc, n)
	}
}

// DoRequiredTraversal implements Walker.
func (w *Serial) DoRequiredTraversal(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, v analysis.Visitor) {
	defer w.timePhase(PhaseRequiredTraversal)()
	// The deepest level has no out-edges; the backward walk starts one
	// below it.
	for l := tg.NumLevels() - 2; l >= 0; l-- {
		for _, n := range tg.LevelNodes(core.LevelID(l)) {
			v.DoRequiredTraverseNode(tg, tc, dc, n)
		}
	}
}

// DoUpdateSlack implements Walker.
func (w *Serial) DoUpdateSlack(tg *graph.TimingGraph, dc delay.Calculator, v analysis.Visitor) {
	defer w.timePhase(PhaseUpdateSlack)()
	for i := 0; i < tg.NumEdges(); i++ {
		v.DoSlackTraverseEdge(tg, dc, core.EdgeID(i))
	}
}

// ProfilingData implements Walker.
func (w *Serial) ProfilingData(key string) float64 {
	if v, ok := w.prof[key]; ok {
		return v
	}

	return math.NaN()
}

// timePhase records the wall-clock duration of a phase on completion.
func (w *Serial) timePhase(key string) func() {
	start := time.Now()

	return func() { w.prof[key] = time.Since(start).Seconds() }
}

// arrivalBoundary collects the arrival pre-traversal node set: level-0
// nodes plus every clock source and input-constrained node, deduplicated
// and in ascending ID order.
func arrivalBoundary(tg *graph.TimingGraph, tc *constraints.TimingConstraints) []core.NodeID {
	seen := core.NewNodeMap[bool](tg.NumNodes())
	var boundary []core.NodeID
	add := func(n core.NodeID) {
		if !seen.Get(n) {
			seen.Set(n, true)
			boundary = append(boundary, n)
		}
	}
	for _, n := range tg.PrimaryInputs() {
		add(n)
	}
	for _, n := range tc.ClockSourceNodes() {
		add(n)
	}
	for _, n := range tc.InputConstrainedNodes() {
		add(n)
	}
	sort.Slice(boundary, func(i, j int) bool { return boundary[i] < boundary[j] })

	return boundary
}

// captureBoundary collects the required pre-traversal node set: every
// SINK node, in ascending ID order.
func captureBoundary(tg *graph.TimingGraph) []core.NodeID {
	var boundary []core.NodeID
	for i := 0; i < tg.NumNodes(); i++ {
		n := core.NodeID(i)
		if tg.NodeType(n) == graph.Sink {
			boundary = append(boundary, n)
		}
	}

	return boundary
}
