package analyzer

import (
	"github.com/tzerio/chronopath/analysis"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// FullSetupHold is the full (non-incremental) combined setup and hold
// analyzer: one traversal serves both analyses.
type FullSetupHold struct {
	tg *graph.TimingGraph
	tc *constraints.TimingConstraints
	dc delay.Calculator

	visitor  *analysis.SetupHold
	run      runner
	analyzed bool
}

// NewFullSetupHold validates the graph against the constraints and
// returns a combined analyzer borrowing all three collaborators
// immutably.
func NewFullSetupHold(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, options ...Option) (*FullSetupHold, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if err := validateGraphConstraints(tg, tc); err != nil {
		return nil, err
	}

	return &FullSetupHold{
		tg:      tg,
		tc:      tc,
		dc:      dc,
		visitor: analysis.NewSetupHold(tg.NumNodes(), tg.NumEdges()),
		run:     runner{walker: opts.walker},
	}, nil
}

// UpdateTiming runs the canonical pass sequence; tags and slacks of both
// analyses are readable afterwards until the next call.
func (a *FullSetupHold) UpdateTiming() error {
	if err := a.run.update(a.tg, a.tc, a.dc, a.visitor); err != nil {
		return err
	}
	a.analyzed = true

	return nil
}

// SetupTags returns all setup tags of node n.
func (a *FullSetupHold) SetupTags(n core.NodeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.SetupTags(n), nil
}

// SetupTagsOfKind returns the setup tags of node n restricted to kind k.
func (a *FullSetupHold) SetupTagsOfKind(n core.NodeID, k tags.Kind) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.SetupTagsOfKind(n, k), nil
}

// SetupSlacks returns the setup slack tags of edge e.
func (a *FullSetupHold) SetupSlacks(e core.EdgeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.SetupSlacks(e), nil
}

// HoldTags returns all hold tags of node n.
func (a *FullSetupHold) HoldTags(n core.NodeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.HoldTags(n), nil
}

// HoldTagsOfKind returns the hold tags of node n restricted to kind k.
func (a *FullSetupHold) HoldTagsOfKind(n core.NodeID, k tags.Kind) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.HoldTagsOfKind(n, k), nil
}

// HoldSlacks returns the hold slack tags of edge e.
func (a *FullSetupHold) HoldSlacks(e core.EdgeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.HoldSlacks(e), nil
}

// ProfilingData returns the wall-clock seconds of the given traversal
// phase from the most recent UpdateTiming.
func (a *FullSetupHold) ProfilingData(key string) float64 {
	return a.run.walker.ProfilingData(key)
}
