package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tzerio/chronopath/analyzer"
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// mesh is a richer two-domain circuit used by the invariant tests: an
// a-clocked register fanning out to two b-clocked registers, a
// constrained primary input converging on one of them, and a
// constrained primary output.
type mesh struct {
	tg *graph.TimingGraph
	tc *constraints.TimingConstraints
	dc *delay.Fixed

	a, b core.DomainID
}

func buildMesh(t *testing.T) *mesh {
	t.Helper()
	m := &mesh{tg: graph.New(), tc: constraints.New()}

	sa := m.tg.AddNode(graph.Source)
	sb := m.tg.AddNode(graph.Source)
	ca := m.tg.AddNode(graph.CPin)
	cb2 := m.tg.AddNode(graph.CPin)
	cb3 := m.tg.AddNode(graph.CPin)
	q1 := m.tg.AddNode(graph.Source)
	in := m.tg.AddNode(graph.Source)
	mid := m.tg.AddNode(graph.OPin)
	d2 := m.tg.AddNode(graph.Sink)
	d3 := m.tg.AddNode(graph.Sink)
	po := m.tg.AddNode(graph.Sink)

	type edgeSpec struct {
		kind     graph.EdgeType
		src, snk core.NodeID
		max, min core.Time
	}
	edges := []edgeSpec{
		{graph.Net, sa, ca, 0.05, 0.04},
		{graph.Net, sb, cb2, 0.06, 0.05},
		{graph.Net, sb, cb3, 0.07, 0.06},
		{graph.PrimitiveClockLaunch, ca, q1, 0.1, 0.08},
		{graph.Net, q1, mid, 0.2, 0.15},
		{graph.PrimitiveCombinational, mid, d2, 0.5, 0.4},
		{graph.Net, q1, d3, 0.3, 0.25},
		{graph.Net, in, d2, 0.2, 0.2},
		{graph.Net, q1, po, 0.4, 0.35},
		{graph.PrimitiveClockCapture, cb2, d2, 0.02, 0.02},
		{graph.PrimitiveClockCapture, cb3, d3, 0.03, 0.03},
	}
	ids := make([]core.EdgeID, len(edges))
	for i, e := range edges {
		id, err := m.tg.AddEdge(e.kind, e.src, e.snk)
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, m.tg.Levelize())

	var err error
	m.a, err = m.tc.CreateClockDomain("a")
	require.NoError(t, err)
	m.b, err = m.tc.CreateClockDomain("b")
	require.NoError(t, err)
	require.NoError(t, m.tc.SetClockDomainSourceNode(m.a, sa))
	require.NoError(t, m.tc.SetClockDomainSourceNode(m.b, sb))
	require.NoError(t, m.tc.SetSetupConstraint(m.a, m.b, 1.0))
	require.NoError(t, m.tc.SetHoldConstraint(m.a, m.b, 0.0))
	require.NoError(t, m.tc.SetSetupClockUncertainty(m.a, m.b, 0.02))
	require.NoError(t, m.tc.SetSourceLatency(m.a, 0.01))
	require.NoError(t, m.tc.SetInputConstraint(in, m.a, 0.15))
	require.NoError(t, m.tc.SetOutputConstraint(po, m.b, 0.05))

	m.dc = delay.NewFixed(m.tg.NumEdges())
	for i, e := range edges {
		m.dc.SetMaxEdgeDelay(ids[i], e.max)
		m.dc.SetMinEdgeDelay(ids[i], e.min)
	}
	m.dc.SetSetupTime(ids[9], 0.04).SetHoldTime(ids[9], 0.02)
	m.dc.SetSetupTime(ids[10], 0.04).SetHoldTime(ids[10], 0.02)

	return m
}

// collectTags snapshots every node's tags and every edge's slacks.
func collectTags(t *testing.T, a *analyzer.FullSetupHold, tg *graph.TimingGraph) (nodes [][]tags.Tag, edges [][]tags.Tag) {
	t.Helper()
	for _, n := range tg.Nodes() {
		setup, err := a.SetupTags(n)
		require.NoError(t, err)
		hold, err := a.HoldTags(n)
		require.NoError(t, err)
		nodes = append(nodes, append(append([]tags.Tag{}, setup...), hold...))
	}
	for _, e := range tg.Edges() {
		setup, err := a.SetupSlacks(e)
		require.NoError(t, err)
		hold, err := a.HoldSlacks(e)
		require.NoError(t, err)
		edges = append(edges, append(append([]tags.Tag{}, setup...), hold...))
	}

	return nodes, edges
}

// TestTagKeyUniqueness: after analysis every (kind, launch, capture)
// triple appears at most once per node.
func TestTagKeyUniqueness(t *testing.T) {
	m := buildMesh(t)
	a, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc)
	require.NoError(t, err)
	require.NoError(t, a.UpdateTiming())

	for _, n := range m.tg.Nodes() {
		for _, query := range []func(core.NodeID) ([]tags.Tag, error){a.SetupTags, a.HoldTags} {
			ts, errQ := query(n)
			require.NoError(t, errQ)
			type key struct {
				k    tags.Kind
				l, c core.DomainID
			}
			seen := make(map[key]bool)
			for _, tag := range ts {
				k := key{tag.Kind, tag.LaunchDomain, tag.CaptureDomain}
				require.False(t, seen[k], "node %v: duplicate tag key %+v", n, k)
				seen[k] = true
			}
		}
	}
}

// TestWalkerEquivalence: serial and parallel walkers produce identical
// tag tables — same tag sets, bit-exact times, same origins.
func TestWalkerEquivalence(t *testing.T) {
	m := buildMesh(t)
	serial, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc)
	require.NoError(t, err)
	require.NoError(t, serial.UpdateTiming())

	parallel, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc, analyzer.WithParallel(4))
	require.NoError(t, err)
	require.NoError(t, parallel.UpdateTiming())

	sn, se := collectTags(t, serial, m.tg)
	pn, pe := collectTags(t, parallel, m.tg)
	require.Equal(t, sn, pn, "node tags must be bit-identical across walkers")
	require.Equal(t, se, pe, "edge slacks must be bit-identical across walkers")
}

// TestResetIdempotence: two consecutive UpdateTiming calls yield
// identical results.
func TestResetIdempotence(t *testing.T) {
	m := buildMesh(t)
	a, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc)
	require.NoError(t, err)

	require.NoError(t, a.UpdateTiming())
	n1, e1 := collectTags(t, a, m.tg)
	require.NoError(t, a.UpdateTiming())
	n2, e2 := collectTags(t, a, m.tg)

	require.Equal(t, n1, n2)
	require.Equal(t, e1, e2)
}

// TestArrivalMonotonicity: along every enabled data edge the setup
// arrival never shrinks and the hold arrival never grows.
func TestArrivalMonotonicity(t *testing.T) {
	m := buildMesh(t)
	a, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc)
	require.NoError(t, err)
	require.NoError(t, a.UpdateTiming())

	for _, e := range m.tg.Edges() {
		if m.tg.EdgeDisabled(e) || m.tg.EdgeType(e) != graph.Net && m.tg.EdgeType(e) != graph.PrimitiveCombinational {
			continue
		}
		src, snk := m.tg.EdgeSrcNode(e), m.tg.EdgeSinkNode(e)

		srcArr, errQ := a.SetupTagsOfKind(src, tags.DataArrival)
		require.NoError(t, errQ)
		snkArr, errQ := a.SetupTagsOfKind(snk, tags.DataArrival)
		require.NoError(t, errQ)
		for _, sTag := range srcArr {
			for _, kTag := range snkArr {
				if sTag.LaunchDomain != kTag.LaunchDomain {
					continue
				}
				lower := sTag.Time.Add(m.dc.MaxEdgeDelay(m.tg, e))
				require.False(t, lower.Gt(kTag.Time),
					"edge %v: setup arrival %v < source %v + delay", e, kTag.Time, sTag.Time)
			}
		}

		srcMin, errQ := a.HoldTagsOfKind(src, tags.DataArrival)
		require.NoError(t, errQ)
		snkMin, errQ := a.HoldTagsOfKind(snk, tags.DataArrival)
		require.NoError(t, errQ)
		for _, sTag := range srcMin {
			for _, kTag := range snkMin {
				if sTag.LaunchDomain != kTag.LaunchDomain {
					continue
				}
				upper := sTag.Time.Add(m.dc.MinEdgeDelay(m.tg, e))
				require.False(t, kTag.Time.Gt(upper),
					"edge %v: hold arrival %v > source %v + delay", e, kTag.Time, sTag.Time)
			}
		}
	}
}

// TestSlackFormula: every setup slack equals requirement at the sink
// minus arrival at the source minus the effective edge delay.
func TestSlackFormula(t *testing.T) {
	m := buildMesh(t)
	a, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc)
	require.NoError(t, err)
	require.NoError(t, a.UpdateTiming())

	for _, e := range m.tg.Edges() {
		if m.tg.EdgeType(e) != graph.Net && m.tg.EdgeType(e) != graph.PrimitiveCombinational {
			continue
		}
		src, snk := m.tg.EdgeSrcNode(e), m.tg.EdgeSinkNode(e)
		slacks, errQ := a.SetupSlacks(e)
		require.NoError(t, errQ)
		for _, sl := range slacks {
			reqs, errR := a.SetupTagsOfKind(snk, tags.DataRequired)
			require.NoError(t, errR)
			arrs, errA := a.SetupTagsOfKind(src, tags.DataArrival)
			require.NoError(t, errA)

			// Worst matching combination must reproduce the folded slack.
			worst := core.InvalidTime()
			for _, r := range reqs {
				if r.LaunchDomain != sl.LaunchDomain || r.CaptureDomain != sl.CaptureDomain {
					continue
				}
				for _, ar := range arrs {
					if ar.LaunchDomain != sl.LaunchDomain {
						continue
					}
					cand := r.Time.Sub(ar.Time.Add(m.dc.MaxEdgeDelay(m.tg, e)))
					worst = core.MinTime(worst, cand)
				}
			}
			require.Equal(t, worst, sl.Time, "edge %v slack mismatch", e)
		}
	}
}

// TestDisabledEdgeIsolation: disabling an edge changes no tag outside
// its transitive fanout.
func TestDisabledEdgeIsolation(t *testing.T) {
	m := buildMesh(t)
	base, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc)
	require.NoError(t, err)
	require.NoError(t, base.UpdateTiming())

	// Arrival tags at the a-domain clock pin are independent of the
	// input-to-d2 net; disable it and compare.
	var inEdge core.EdgeID
	for _, e := range m.tg.Edges() {
		src := m.tg.EdgeSrcNode(e)
		if m.tc.InputConstraint(src, m.a).Valid() {
			inEdge = e
		}
	}
	before, err := base.SetupTags(core.NodeID(2)) // ca, clock network only
	require.NoError(t, err)
	beforeCopy := append([]tags.Tag{}, before...)

	require.NoError(t, m.tg.SetEdgeDisabled(inEdge, true))
	require.NoError(t, m.tg.Levelize())
	re, err := analyzer.NewFullSetupHold(m.tg, m.tc, m.dc)
	require.NoError(t, err)
	require.NoError(t, re.UpdateTiming())

	after, err := re.SetupTags(core.NodeID(2))
	require.NoError(t, err)
	require.Equal(t, beforeCopy, after, "clock pin tags must not depend on the disabled data edge")
}
