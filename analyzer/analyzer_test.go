package analyzer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tzerio/chronopath/analyzer"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/walker"
)

// TestQueriesBeforeUpdateTiming: every query on a fresh analyzer fails
// with ErrNotAnalyzed.
func TestQueriesBeforeUpdateTiming(t *testing.T) {
	f := buildRegToReg(t, regToRegParams{dataDelay: 0.5, setupTarget: 2.0})

	a, err := analyzer.NewFullSetupHold(f.tg, f.tc, f.dc)
	require.NoError(t, err)

	_, err = a.SetupTags(f.d)
	require.ErrorIs(t, err, analyzer.ErrNotAnalyzed)
	_, err = a.HoldSlacks(f.eData)
	require.ErrorIs(t, err, analyzer.ErrNotAnalyzed)

	require.NoError(t, a.UpdateTiming())
	_, err = a.SetupTags(f.d)
	require.NoError(t, err)
}

// TestMutationInvalidatesAnalyzer: a graph mutation after construction
// surfaces as ErrNotLevelized on the next UpdateTiming.
func TestMutationInvalidatesAnalyzer(t *testing.T) {
	f := buildRegToReg(t, regToRegParams{dataDelay: 0.5, setupTarget: 2.0})
	a, err := analyzer.NewFullSetup(f.tg, f.tc, f.dc)
	require.NoError(t, err)

	require.NoError(t, f.tg.SetEdgeDisabled(f.eData, true))
	require.ErrorIs(t, a.UpdateTiming(), graph.ErrNotLevelized)

	require.NoError(t, f.tg.Levelize())
	require.NoError(t, a.UpdateTiming())
}

// TestConstructionValidation covers the graph/constraint cross-checks.
func TestConstructionValidation(t *testing.T) {
	f := buildRegToReg(t, regToRegParams{dataDelay: 0.5, setupTarget: 2.0})

	// Clock source on a CPIN node is rejected.
	bad := constraints.New()
	clk, err := bad.CreateClockDomain("clk")
	require.NoError(t, err)
	require.NoError(t, bad.SetClockDomainSourceNode(clk, f.c0))
	_, err = analyzer.NewFullSetup(f.tg, bad, f.dc)
	require.ErrorIs(t, err, constraints.ErrInvalidConstraints)

	// Input constraint on a SINK is rejected.
	bad2 := constraints.New()
	clk2, err := bad2.CreateClockDomain("clk")
	require.NoError(t, err)
	require.NoError(t, bad2.SetInputConstraint(f.d, clk2, 0.1))
	_, err = analyzer.NewFullSetup(f.tg, bad2, f.dc)
	require.ErrorIs(t, err, constraints.ErrInvalidConstraints)

	// Constraints referencing a node outside the graph are rejected.
	bad3 := constraints.New()
	clk3, err := bad3.CreateClockDomain("clk")
	require.NoError(t, err)
	require.NoError(t, bad3.SetClockDomainSourceNode(clk3, core.NodeID(99)))
	_, err = analyzer.NewFullSetup(f.tg, bad3, f.dc)
	require.ErrorIs(t, err, constraints.ErrInvalidConstraints)

	// An unlevelized graph is rejected at construction.
	tg := graph.New()
	tg.AddNode(graph.Source)
	_, err = analyzer.NewFullSetup(tg, constraints.New(), delay.NewFixed(0))
	require.ErrorIs(t, err, graph.ErrNotLevelized)
}

// TestProfilingData: every phase reports a finite duration after a run;
// unknown keys read NaN.
func TestProfilingData(t *testing.T) {
	f := buildRegToReg(t, regToRegParams{dataDelay: 0.5, setupTarget: 2.0})
	a, err := analyzer.NewFullSetup(f.tg, f.tc, f.dc)
	require.NoError(t, err)

	require.True(t, math.IsNaN(a.ProfilingData(walker.PhaseReset)), "no data before the first run")
	require.NoError(t, a.UpdateTiming())

	for _, key := range []string{
		walker.PhaseReset,
		walker.PhaseArrivalPreTraversal,
		walker.PhaseArrivalTraversal,
		walker.PhaseRequiredPre,
		walker.PhaseRequiredTraversal,
		walker.PhaseUpdateSlack,
	} {
		v := a.ProfilingData(key)
		require.False(t, math.IsNaN(v), "phase %q must report a duration", key)
		require.GreaterOrEqual(t, v, 0.0)
	}
	require.True(t, math.IsNaN(a.ProfilingData("no_such_phase")))
}

// TestExplicitWalkerOption: a caller-supplied walker is honored.
func TestExplicitWalkerOption(t *testing.T) {
	f := buildRegToReg(t, regToRegParams{dataDelay: 0.5, setupTarget: 2.0})
	w := walker.NewParallel(walker.WithWorkers(2))
	a, err := analyzer.NewFullSetup(f.tg, f.tc, f.dc, analyzer.WithWalker(w))
	require.NoError(t, err)
	require.NoError(t, a.UpdateTiming())
	require.False(t, math.IsNaN(w.ProfilingData(walker.PhaseArrivalTraversal)))
}
