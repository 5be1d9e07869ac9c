package delay_test

import (
	"testing"

	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
)

// TestFixed_Defaults verifies the zero-delay "ideal wire" baseline.
func TestFixed_Defaults(t *testing.T) {
	f := delay.NewFixed(3)
	e := core.EdgeID(1)
	var tg *graph.TimingGraph // Fixed never dereferences the graph
	if got := f.MaxEdgeDelay(tg, e); got != core.Time(0) {
		t.Errorf("default max delay = %v; want 0", got)
	}
	if got := f.SetupTime(tg, e); got != core.Time(0) {
		t.Errorf("default setup time = %v; want 0", got)
	}
}

// TestFixed_Setters verifies the builder surface and corner separation.
func TestFixed_Setters(t *testing.T) {
	f := delay.NewFixed(2)
	e := core.EdgeID(0)
	f.SetMaxEdgeDelay(e, 0.9).SetMinEdgeDelay(e, 0.4)
	f.SetSetupTime(e, 0.1).SetHoldTime(e, 0.05)

	if got := f.MaxEdgeDelay(nil, e); got != core.Time(0.9) {
		t.Errorf("max = %v; want 0.9", got)
	}
	if got := f.MinEdgeDelay(nil, e); got != core.Time(0.4) {
		t.Errorf("min = %v; want 0.4", got)
	}
	if got := f.SetupTime(nil, e); got != core.Time(0.1) {
		t.Errorf("setup = %v; want 0.1", got)
	}
	if got := f.HoldTime(nil, e); got != core.Time(0.05) {
		t.Errorf("hold = %v; want 0.05", got)
	}

	// SetEdgeDelay writes both corners.
	f.SetEdgeDelay(core.EdgeID(1), 0.25)
	if f.MaxEdgeDelay(nil, 1) != f.MinEdgeDelay(nil, 1) {
		t.Error("SetEdgeDelay must set both corners")
	}
}

// TestUniform verifies the uniform constructor.
func TestUniform(t *testing.T) {
	f := delay.Uniform(4, 0.125)
	for i := 0; i < 4; i++ {
		e := core.EdgeID(i)
		if f.MaxEdgeDelay(nil, e) != core.Time(0.125) || f.MinEdgeDelay(nil, e) != core.Time(0.125) {
			t.Fatalf("edge %v: want uniform 0.125", e)
		}
	}
}
