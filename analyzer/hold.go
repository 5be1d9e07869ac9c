package analyzer

import (
	"github.com/tzerio/chronopath/analysis"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// FullHold is the full (non-incremental) hold timing analyzer.
type FullHold struct {
	tg *graph.TimingGraph
	tc *constraints.TimingConstraints
	dc delay.Calculator

	visitor  *analysis.Hold
	run      runner
	analyzed bool
}

// NewFullHold validates the graph against the constraints and returns a
// hold analyzer borrowing all three collaborators immutably.
func NewFullHold(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, options ...Option) (*FullHold, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if err := validateGraphConstraints(tg, tc); err != nil {
		return nil, err
	}

	return &FullHold{
		tg:      tg,
		tc:      tc,
		dc:      dc,
		visitor: analysis.NewHold(tg.NumNodes(), tg.NumEdges()),
		run:     runner{walker: opts.walker},
	}, nil
}

// UpdateTiming runs the canonical pass sequence; tags and slacks are
// readable afterwards until the next call.
func (a *FullHold) UpdateTiming() error {
	if err := a.run.update(a.tg, a.tc, a.dc, a.visitor); err != nil {
		return err
	}
	a.analyzed = true

	return nil
}

// HoldTags returns all hold tags of node n.
func (a *FullHold) HoldTags(n core.NodeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.Tags(n), nil
}

// HoldTagsOfKind returns the hold tags of node n restricted to kind k.
func (a *FullHold) HoldTagsOfKind(n core.NodeID, k tags.Kind) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.TagsOfKind(n, k), nil
}

// HoldSlacks returns the hold slack tags of edge e.
func (a *FullHold) HoldSlacks(e core.EdgeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.Slacks(e), nil
}

// ProfilingData returns the wall-clock seconds of the given traversal
// phase from the most recent UpdateTiming.
func (a *FullHold) ProfilingData(key string) float64 {
	return a.run.walker.ProfilingData(key)
}
