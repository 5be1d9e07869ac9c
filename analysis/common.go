package analysis

import (
	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/delay"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// analysisOps parameterizes the shared traversal skeleton with the
// direction-specific pieces of an analysis: which corner of the delay
// model applies, how the clock-to-clock target combines with the
// uncertainty, and which way each tag kind folds.
type analysisOps interface {
	// edgeDelay returns the effective propagation delay of e, including
	// the setup/hold adjustment on clock-capture edges.
	edgeDelay(dc delay.Calculator, tg *graph.TimingGraph, e core.EdgeID) core.Time

	// clockConstraint returns the uncertainty-adjusted target for the
	// (launch, capture) pair, invalid when the pair carries no target for
	// this analysis.
	clockConstraint(tc *constraints.TimingConstraints, launch, capture core.DomainID) core.Time

	// foldArr folds an arrival-side candidate into tb.
	foldArr(tb *tags.Table, tag tags.Tag)

	// foldReq folds a required-side candidate into tb.
	foldReq(tb *tags.Table, tag tags.Tag)

	// captureFold picks the governing capture clock arrival out of acc
	// and cand (latest for setup, earliest for hold).
	captureFold(acc, cand core.Time) core.Time

	// slack returns the margin between an arrival and a requirement.
	slack(arr, req core.Time) core.Time
}

// common is the traversal skeleton shared by the setup and hold
// analyses; ops supplies the min/max orientation.
type common struct {
	ops        analysisOps
	nodeTags   *tags.Store
	edgeSlacks *tags.Store
}

// newCommon preallocates tag storage for numNodes nodes and numEdges
// edges.
func newCommon(ops analysisOps, numNodes, numEdges int) common {
	return common{
		ops:        ops,
		nodeTags:   tags.NewStore(numNodes),
		edgeSlacks: tags.NewStore(numEdges),
	}
}

// DoResetNode drops every tag of node n.
func (c *common) DoResetNode(n core.NodeID) {
	c.nodeTags.At(int(n)).Reset()
}

// DoResetEdge drops every slack tag of edge e.
func (c *common) DoResetEdge(e core.EdgeID) {
	c.edgeSlacks.At(int(e)).Reset()
}

// DoArrivalPreTraverseNode seeds arrival-side tags at a source-like node.
func (c *common) DoArrivalPreTraverseNode(_ *graph.TimingGraph, tc *constraints.TimingConstraints, n core.NodeID) {
	tb := c.nodeTags.At(int(n))

	// 1. A clock source seeds both sides of its domain: the launch chain
	//    that will become register departures, and the capture chain that
	//    will time capture endpoints.
	if tc.NodeIsClockSource(n) {
		d := tc.NodeClockDomain(n)
		latency := tc.SourceLatency(d)
		tb.Add(tags.NewTag(tags.ClockLaunch, d, core.InvalidDomain(), latency, n))
		tb.Add(tags.NewTag(tags.ClockCapture, core.InvalidDomain(), d, latency, n))

		return
	}

	// 2. Constants drive no timing paths: no data arrival is seeded.
	if tc.NodeIsConstantGenerator(n) {
		return
	}

	// 3. An input constraint launches data at latency + offset.
	for _, io := range tc.InputConstraints(n) {
		t := tc.SourceLatency(io.Domain).Add(io.Offset)
		c.ops.foldArr(tb, tags.NewTag(tags.DataArrival, io.Domain, core.InvalidDomain(), t, n))
	}
}

// DoArrivalTraverseNode folds predecessor tags into n across every
// enabled in-edge.
func (c *common) DoArrivalTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, dc delay.Calculator, n core.NodeID) {
	tb := c.nodeTags.At(int(n))
	constGen := tc.NodeIsConstantGenerator(n)

	for _, e := range tg.NodeInEdges(n) {
		if tg.EdgeDisabled(e) {
			continue
		}
		src := c.nodeTags.At(int(tg.EdgeSrcNode(e)))
		d := c.ops.edgeDelay(dc, tg, e)

		switch tg.EdgeType(e) {
		case graph.PrimitiveClockLaunch:
			// 1. A register departure: the launching clock edge becomes the
			//    data arrival at the sequential output.
			if constGen {
				continue
			}
			for _, t := range src.All() {
				if t.Kind != tags.ClockLaunch {
					continue
				}
				c.ops.foldArr(tb, tags.NewTag(
					tags.DataArrival, t.LaunchDomain, core.InvalidDomain(), t.Time.Add(d), t.Origin))
			}

		case graph.PrimitiveClockCapture:
			// 2. The capture chain reaches the sequential input; edgeDelay
			//    already folds in the setup/hold adjustment.
			for _, t := range src.All() {
				if t.Kind != tags.ClockCapture {
					continue
				}
				c.ops.foldArr(tb, t.WithTime(t.Time.Add(d)))
			}

		default:
			// 3. Nets and combinational edges carry every kind onward —
			//    data arrivals and clock tags transiting the clock network.
			for _, t := range src.All() {
				switch t.Kind {
				case tags.DataArrival:
					if constGen {
						continue
					}
					c.ops.foldArr(tb, t.WithTime(t.Time.Add(d)))
				case tags.ClockLaunch, tags.ClockCapture:
					c.ops.foldArr(tb, t.WithTime(t.Time.Add(d)))
				}
			}
		}
	}
}

// DoRequiredPreTraverseNode seeds DATA_REQUIRED tags at a capture
// endpoint: every data arrival's launch domain is paired against every
// capture domain the constraints say to analyze.
func (c *common) DoRequiredPreTraverseNode(tg *graph.TimingGraph, tc *constraints.TimingConstraints, n core.NodeID) {
	// 1. Only SINKs are valid capture endpoints.
	if tg.NodeType(n) != graph.Sink {
		return
	}
	tb := c.nodeTags.At(int(n))

	// 2. Snapshot the arrivals; the loop below appends to the same table.
	arrivals := tb.OfKind(tags.DataArrival)
	for _, a := range arrivals {
		launch := a.LaunchDomain
		for _, capture := range tc.ClockDomains() {
			if !tc.ShouldAnalyze(launch, capture) {
				continue
			}
			// 3. The uncertainty-adjusted target; a pair constrained only
			//    for the other analysis yields an invalid target here.
			target := c.ops.clockConstraint(tc, launch, capture)
			if !target.Valid() {
				continue
			}
			// 4. A primary-output offset consumes part of the budget.
			if off := tc.OutputConstraint(n, capture); off.Valid() {
				target = target.Sub(off)
			}
			// 5. The governing capture clock arrival at this endpoint;
			//    virtual clocks and primary outputs reference the domain's
			//    source latency directly.
			capTime := c.captureClockTime(tb, capture)
			if !capTime.Valid() {
				if !tc.IsVirtualClock(capture) && !tc.OutputConstraint(n, capture).Valid() {
					continue
				}
				capTime = tc.SourceLatency(capture)
				tb.Add(tags.NewTag(tags.ClockCapture, core.InvalidDomain(), capture, capTime, n))
			}
			c.ops.foldReq(tb, tags.NewTag(tags.DataRequired, launch, capture, capTime.Add(target), n))
		}
	}
}

// DoRequiredTraverseNode folds successor required times backward into n
// along data paths: only launch domains that actually arrive at n
// propagate, which keeps required times off the clock network.
func (c *common) DoRequiredTraverseNode(tg *graph.TimingGraph, _ *constraints.TimingConstraints, dc delay.Calculator, n core.NodeID) {
	tb := c.nodeTags.At(int(n))

	for _, e := range tg.NodeOutEdges(n) {
		if tg.EdgeDisabled(e) {
			continue
		}
		sink := c.nodeTags.At(int(tg.EdgeSinkNode(e)))
		d := c.ops.edgeDelay(dc, tg, e)

		for _, t := range sink.All() {
			if t.Kind != tags.DataRequired {
				continue
			}
			if !hasArrival(tb, t.LaunchDomain) {
				continue
			}
			c.ops.foldReq(tb, tags.NewTag(
				tags.DataRequired, t.LaunchDomain, t.CaptureDomain, t.Time.Sub(d), t.Origin))
		}
	}
}

// DoSlackTraverseEdge folds the slack of edge e: for every (arrival at
// the source, requirement at the sink) pair sharing domains, the margin
// after crossing the edge, kept at its worst value per domain pair.
func (c *common) DoSlackTraverseEdge(tg *graph.TimingGraph, dc delay.Calculator, e core.EdgeID) {
	if tg.EdgeDisabled(e) {
		return
	}
	slackTb := c.edgeSlacks.At(int(e))
	src := c.nodeTags.At(int(tg.EdgeSrcNode(e)))
	sink := c.nodeTags.At(int(tg.EdgeSinkNode(e)))
	d := c.ops.edgeDelay(dc, tg, e)
	kind := tg.EdgeType(e)

	for _, r := range sink.All() {
		if r.Kind != tags.DataRequired {
			continue
		}
		for _, a := range src.All() {
			if !slackPairs(kind, a, r) {
				continue
			}
			s := c.ops.slack(a.Time.Add(d), r.Time)
			slackTb.MinSlack(tags.NewTag(tags.Slack, r.LaunchDomain, r.CaptureDomain, s, a.Origin))
		}
	}
}

// Tags returns all tags of node n.
func (c *common) Tags(n core.NodeID) []tags.Tag {
	return c.nodeTags.At(int(n)).All()
}

// TagsOfKind returns the tags of node n restricted to kind k.
func (c *common) TagsOfKind(n core.NodeID, k tags.Kind) []tags.Tag {
	return c.nodeTags.At(int(n)).OfKind(k)
}

// Slacks returns the slack tags of edge e.
func (c *common) Slacks(e core.EdgeID) []tags.Tag {
	return c.edgeSlacks.At(int(e)).All()
}

// captureClockTime folds the governing CLOCK_CAPTURE arrival for domain
// capture out of tb; invalid when none arrived.
func (c *common) captureClockTime(tb *tags.Table, capture core.DomainID) core.Time {
	acc := core.InvalidTime()
	for _, t := range tb.All() {
		if t.Kind == tags.ClockCapture && t.CaptureDomain == capture {
			acc = c.ops.captureFold(acc, t.Time)
		}
	}

	return acc
}

// hasArrival reports whether tb holds a DATA_ARRIVAL launched by launch.
func hasArrival(tb *tags.Table, launch core.DomainID) bool {
	for _, t := range tb.All() {
		if t.Kind == tags.DataArrival && t.LaunchDomain == launch {
			return true
		}
	}

	return false
}

// slackPairs reports whether arrival tag a times requirement r across an
// edge of the given type: clock-capture edges pair the capture chain,
// clock-launch edges the launch chain, data edges the data arrival.
func slackPairs(kind graph.EdgeType, a, r tags.Tag) bool {
	switch kind {
	case graph.PrimitiveClockCapture:
		return a.Kind == tags.ClockCapture && a.CaptureDomain == r.CaptureDomain
	case graph.PrimitiveClockLaunch:
		return a.Kind == tags.ClockLaunch && a.LaunchDomain == r.LaunchDomain
	default:
		return a.Kind == tags.DataArrival && a.LaunchDomain == r.LaunchDomain
	}
}
