package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
)

// regToReg is the canonical single register-to-register fixture:
//
//	s0 (clock source) ──net──► c0 ──launch──► q ──net (data)──► d
//	        └──────────net───► c1 ──capture──────────────────────┘
type regToReg struct {
	tg *graph.TimingGraph
	tc *constraints.TimingConstraints
	dc *delay.Fixed

	clk core.DomainID

	s0, c0, c1, q, d core.NodeID

	eClk0, eClk1, eLaunch, eData, eCapture core.EdgeID
}

// regToRegParams parameterizes the fixture with the literal values of a
// scenario.
type regToRegParams struct {
	dataDelay   core.Time
	setupTime   core.Time
	holdTime    core.Time
	setupTarget core.Time
	holdTarget  core.Time
	withHold    bool
}

// buildRegToReg constructs the fixture, levelized and ready to analyze.
func buildRegToReg(t *testing.T, p regToRegParams) *regToReg {
	t.Helper()
	f := &regToReg{tg: graph.New(), tc: constraints.New()}

	f.s0 = f.tg.AddNode(graph.Source)
	f.c0 = f.tg.AddNode(graph.CPin)
	f.c1 = f.tg.AddNode(graph.CPin)
	f.q = f.tg.AddNode(graph.Source)
	f.d = f.tg.AddNode(graph.Sink)

	f.eClk0 = addEdge(t, f.tg, graph.Net, f.s0, f.c0)
	f.eClk1 = addEdge(t, f.tg, graph.Net, f.s0, f.c1)
	f.eLaunch = addEdge(t, f.tg, graph.PrimitiveClockLaunch, f.c0, f.q)
	f.eData = addEdge(t, f.tg, graph.Net, f.q, f.d)
	f.eCapture = addEdge(t, f.tg, graph.PrimitiveClockCapture, f.c1, f.d)
	require.NoError(t, f.tg.Levelize())

	var err error
	f.clk, err = f.tc.CreateClockDomain("clk")
	require.NoError(t, err)
	require.NoError(t, f.tc.SetClockDomainSourceNode(f.clk, f.s0))
	require.NoError(t, f.tc.SetSetupConstraint(f.clk, f.clk, p.setupTarget))
	if p.withHold {
		require.NoError(t, f.tc.SetHoldConstraint(f.clk, f.clk, p.holdTarget))
	}

	f.dc = delay.NewFixed(f.tg.NumEdges())
	f.dc.SetEdgeDelay(f.eData, p.dataDelay)
	f.dc.SetSetupTime(f.eCapture, p.setupTime)
	f.dc.SetHoldTime(f.eCapture, p.holdTime)

	return f
}

// twoClock is the two-domain crossing fixture of the second scenario:
// an a-launched register captured by a b-clocked register.
type twoClock struct {
	tg *graph.TimingGraph
	tc *constraints.TimingConstraints
	dc *delay.Fixed

	a, b core.DomainID

	sa, sb, ca, cb, qa, db core.NodeID

	eData core.EdgeID
}

// buildTwoClock constructs the crossing with the given combinational
// delay and (setup, hold) targets for the (a, b) pair.
func buildTwoClock(t *testing.T, dataDelay, setupTarget, holdTarget core.Time) *twoClock {
	t.Helper()
	f := &twoClock{tg: graph.New(), tc: constraints.New()}

	f.sa = f.tg.AddNode(graph.Source)
	f.sb = f.tg.AddNode(graph.Source)
	f.ca = f.tg.AddNode(graph.CPin)
	f.cb = f.tg.AddNode(graph.CPin)
	f.qa = f.tg.AddNode(graph.Source)
	f.db = f.tg.AddNode(graph.Sink)

	addEdge(t, f.tg, graph.Net, f.sa, f.ca)
	addEdge(t, f.tg, graph.Net, f.sb, f.cb)
	addEdge(t, f.tg, graph.PrimitiveClockLaunch, f.ca, f.qa)
	f.eData = addEdge(t, f.tg, graph.Net, f.qa, f.db)
	addEdge(t, f.tg, graph.PrimitiveClockCapture, f.cb, f.db)
	require.NoError(t, f.tg.Levelize())

	var err error
	f.a, err = f.tc.CreateClockDomain("a")
	require.NoError(t, err)
	f.b, err = f.tc.CreateClockDomain("b")
	require.NoError(t, err)
	require.NoError(t, f.tc.SetClockDomainSourceNode(f.a, f.sa))
	require.NoError(t, f.tc.SetClockDomainSourceNode(f.b, f.sb))
	require.NoError(t, f.tc.SetSetupConstraint(f.a, f.b, setupTarget))
	require.NoError(t, f.tc.SetHoldConstraint(f.a, f.b, holdTarget))

	f.dc = delay.NewFixed(f.tg.NumEdges())
	f.dc.SetEdgeDelay(f.eData, dataDelay)

	return f
}

// inputPath is the primary-input fixture: a constrained input driving a
// capture endpoint through one net.
type inputPath struct {
	tg *graph.TimingGraph
	tc *constraints.TimingConstraints
	dc *delay.Fixed

	clk core.DomainID

	in, sink core.NodeID
	eData    core.EdgeID
}

// buildInputPath constructs the fixture with a virtual clock: offset at
// the input, netDelay to the sink, and a (clk, clk) setup target.
func buildInputPath(t *testing.T, offset, netDelay, setupTarget, latency core.Time) *inputPath {
	t.Helper()
	f := &inputPath{tg: graph.New(), tc: constraints.New()}

	f.in = f.tg.AddNode(graph.Source)
	f.sink = f.tg.AddNode(graph.Sink)
	f.eData = addEdge(t, f.tg, graph.Net, f.in, f.sink)
	require.NoError(t, f.tg.Levelize())

	var err error
	f.clk, err = f.tc.CreateClockDomain("clk")
	require.NoError(t, err)
	require.NoError(t, f.tc.SetInputConstraint(f.in, f.clk, offset))
	require.NoError(t, f.tc.SetSetupConstraint(f.clk, f.clk, setupTarget))
	require.NoError(t, f.tc.SetSourceLatency(f.clk, latency))

	f.dc = delay.NewFixed(f.tg.NumEdges())
	f.dc.SetEdgeDelay(f.eData, netDelay)

	return f
}

// addEdge adds an edge or fails the test.
func addEdge(t *testing.T, tg *graph.TimingGraph, kind graph.EdgeType, src, sink core.NodeID) core.EdgeID {
	t.Helper()
	e, err := tg.AddEdge(kind, src, sink)
	require.NoError(t, err)

	return e
}
