package delay

import (
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/graph"
)

// Calculator yields the per-edge delays folded by the analysis visitors.
// Implementations must be pure look-ups: the walkers call them from
// multiple goroutines.
type Calculator interface {
	// MaxEdgeDelay returns the largest propagation delay of edge e.
	MaxEdgeDelay(tg *graph.TimingGraph, e core.EdgeID) core.Time

	// MinEdgeDelay returns the smallest propagation delay of edge e.
	MinEdgeDelay(tg *graph.TimingGraph, e core.EdgeID) core.Time

	// SetupTime returns the setup requirement of the sequential primitive
	// behind e; meaningful on clock-capture edges, zero elsewhere.
	SetupTime(tg *graph.TimingGraph, e core.EdgeID) core.Time

	// HoldTime returns the hold requirement of the sequential primitive
	// behind e; meaningful on clock-capture edges, zero elsewhere.
	HoldTime(tg *graph.TimingGraph, e core.EdgeID) core.Time
}

// Fixed is a Calculator backed by per-edge tables. The zero delay for
// every edge makes a freshly constructed Fixed a unit-free "ideal wire"
// model; override per edge as needed.
type Fixed struct {
	maxDelay core.EdgeMap[core.Time]
	minDelay core.EdgeMap[core.Time]
	setup    core.EdgeMap[core.Time]
	hold     core.EdgeMap[core.Time]
}

// NewFixed returns a Fixed for numEdges edges with all delays and
// setup/hold times zero.
func NewFixed(numEdges int) *Fixed {
	return &Fixed{
		maxDelay: core.NewEdgeMap[core.Time](numEdges),
		minDelay: core.NewEdgeMap[core.Time](numEdges),
		setup:    core.NewEdgeMap[core.Time](numEdges),
		hold:     core.NewEdgeMap[core.Time](numEdges),
	}
}

// Uniform returns a Fixed where every edge carries delay d for both the
// maximum and minimum corner.
func Uniform(numEdges int, d core.Time) *Fixed {
	f := NewFixed(numEdges)
	for i := 0; i < numEdges; i++ {
		f.maxDelay.Set(core.EdgeID(i), d)
		f.minDelay.Set(core.EdgeID(i), d)
	}

	return f
}

// SetEdgeDelay sets both the maximum and minimum delay of e to d.
func (f *Fixed) SetEdgeDelay(e core.EdgeID, d core.Time) *Fixed {
	f.maxDelay.Set(e, d)
	f.minDelay.Set(e, d)

	return f
}

// SetMaxEdgeDelay sets the maximum delay of e.
func (f *Fixed) SetMaxEdgeDelay(e core.EdgeID, d core.Time) *Fixed {
	f.maxDelay.Set(e, d)

	return f
}

// SetMinEdgeDelay sets the minimum delay of e.
func (f *Fixed) SetMinEdgeDelay(e core.EdgeID, d core.Time) *Fixed {
	f.minDelay.Set(e, d)

	return f
}

// SetSetupTime sets the setup time of e.
func (f *Fixed) SetSetupTime(e core.EdgeID, d core.Time) *Fixed {
	f.setup.Set(e, d)

	return f
}

// SetHoldTime sets the hold time of e.
func (f *Fixed) SetHoldTime(e core.EdgeID, d core.Time) *Fixed {
	f.hold.Set(e, d)

	return f
}

// MaxEdgeDelay implements Calculator.
func (f *Fixed) MaxEdgeDelay(_ *graph.TimingGraph, e core.EdgeID) core.Time {
	return f.maxDelay.Get(e)
}

// MinEdgeDelay implements Calculator.
func (f *Fixed) MinEdgeDelay(_ *graph.TimingGraph, e core.EdgeID) core.Time {
	return f.minDelay.Get(e)
}

// SetupTime implements Calculator.
func (f *Fixed) SetupTime(_ *graph.TimingGraph, e core.EdgeID) core.Time {
	return f.setup.Get(e)
}

// HoldTime implements Calculator.
func (f *Fixed) HoldTime(_ *graph.TimingGraph, e core.EdgeID) core.Time {
	return f.hold.Get(e)
}
