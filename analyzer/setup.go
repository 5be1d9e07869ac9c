package analyzer

import (
	"github.com/tzerio/chronopath/analysis"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// FullSetup is the full (non-incremental) setup timing analyzer: every
// UpdateTiming reanalyzes the whole graph.
type FullSetup struct {
	tg *graph.TimingGraph
	tc *constraints.TimingConstraints
	dc delay.Calculator

	visitor  *analysis.Setup
	run      runner
	analyzed bool
}

// NewFullSetup validates the graph against the constraints and returns a
// setup analyzer borrowing all three collaborators immutably.
func NewFullSetup(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, options ...Option) (*FullSetup, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if err := validateGraphConstraints(tg, tc); err != nil {
		return nil, err
	}

	return &FullSetup{
		tg:      tg,
		tc:      tc,
		dc:      dc,
		visitor: analysis.NewSetup(tg.NumNodes(), tg.NumEdges()),
		run:     runner{walker: opts.walker},
	}, nil
}

// UpdateTiming runs the canonical pass sequence; tags and slacks are
// readable afterwards until the next call. Returns
// graph.ErrNotLevelized if the graph was mutated since levelization.
func (a *FullSetup) UpdateTiming() error {
	if err := a.run.update(a.tg, a.tc, a.dc, a.visitor); err != nil {
		return err
	}
	a.analyzed = true

	return nil
}

// SetupTags returns all setup tags of node n.
func (a *FullSetup) SetupTags(n core.NodeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.Tags(n), nil
}

// SetupTagsOfKind returns the setup tags of node n restricted to kind k.
func (a *FullSetup) SetupTagsOfKind(n core.NodeID, k tags.Kind) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.TagsOfKind(n, k), nil
}

// SetupSlacks returns the setup slack tags of edge e.
func (a *FullSetup) SetupSlacks(e core.EdgeID) ([]tags.Tag, error) {
	if !a.analyzed {
		return nil, ErrNotAnalyzed
	}

	return a.visitor.Slacks(e), nil
}

// ProfilingData returns the wall-clock seconds of the given traversal
// phase from the most recent UpdateTiming.
func (a *FullSetup) ProfilingData(key string) float64 {
	return a.run.walker.ProfilingData(key)
}
