package echo

import (
	"fmt"
	"io"
	"sort"

	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/graph"
	"github.com/tzerio/chronopath/tags"
)

// SetupAnalyzer is the setup-side query surface an analyzer must expose
// to be echoed.
type SetupAnalyzer interface {
	SetupTagsOfKind(n core.NodeID, k tags.Kind) ([]tags.Tag, error)
	SetupSlacks(e core.EdgeID) ([]tags.Tag, error)
}

// HoldAnalyzer is the hold-side query surface an analyzer must expose to
// be echoed.
type HoldAnalyzer interface {
	HoldTagsOfKind(n core.NodeID, k tags.Kind) ([]tags.Tag, error)
	HoldSlacks(e core.EdgeID) ([]tags.Tag, error)
}

// Write emits all three sections: graph, constraints, analysis result.
func Write(w io.Writer, tg *graph.TimingGraph, tc *constraints.TimingConstraints, a interface{}) error {
	if err := WriteTimingGraph(w, tg); err != nil {
		return err
	}
	if err := WriteTimingConstraints(w, tc); err != nil {
		return err
	}

	return WriteAnalysisResult(w, tg, a)
}

// WriteTimingGraph emits the timing_graph section: every node in
// ascending order with its sorted edge lists, then every edge.
func WriteTimingGraph(w io.Writer, tg *graph.TimingGraph) error {
	if _, err := fmt.Fprintf(w, "timing_graph:\n"); err != nil {
		return err
	}
	for _, n := range tg.Nodes() {
		fmt.Fprintf(w, " node: %d\n", int(n))
		fmt.Fprintf(w, "  type: %v\n", tg.NodeType(n))
		fmt.Fprintf(w, "  in_edges:%s\n", edgeList(tg.NodeInEdges(n)))
		fmt.Fprintf(w, "  out_edges:%s\n", edgeList(tg.NodeOutEdges(n)))
	}
	for _, e := range tg.Edges() {
		fmt.Fprintf(w, " edge: %d\n", int(e))
		fmt.Fprintf(w, "  src_node: %d\n", int(tg.EdgeSrcNode(e)))
		fmt.Fprintf(w, "  sink_node: %d\n", int(tg.EdgeSinkNode(e)))
		fmt.Fprintf(w, "  disabled: %t\n", tg.EdgeDisabled(e))
	}
	_, err := fmt.Fprintf(w, "\n")

	return err
}

// WriteTimingConstraints emits the timing_constraints section in the
// canonical line order.
func WriteTimingConstraints(w io.Writer, tc *constraints.TimingConstraints) error {
	if _, err := fmt.Fprintf(w, "timing_constraints:\n"); err != nil {
		return err
	}
	for _, d := range tc.ClockDomains() {
		fmt.Fprintf(w, " type: CLOCK domain: %d name: %q\n", int(d), tc.ClockDomainName(d))
	}
	for _, d := range tc.ClockDomains() {
		if src := tc.ClockDomainSourceNode(d); src.Valid() {
			fmt.Fprintf(w, " type: CLOCK_SOURCE node: %d domain: %d\n", int(src), int(d))
		}
	}
	for _, n := range tc.ConstantGenerators() {
		fmt.Fprintf(w, " type: CONSTANT_GENERATOR node: %d\n", int(n))
	}
	for _, ic := range tc.AllInputConstraints() {
		if ic.Offset.Valid() {
			fmt.Fprintf(w, " type: INPUT_CONSTRAINT node: %d domain: %d constraint: %v\n",
				int(ic.Node), int(ic.Domain), ic.Offset)
		}
	}
	for _, oc := range tc.AllOutputConstraints() {
		if oc.Offset.Valid() {
			fmt.Fprintf(w, " type: OUTPUT_CONSTRAINT node: %d domain: %d constraint: %v\n",
				int(oc.Node), int(oc.Domain), oc.Offset)
		}
	}
	for _, cc := range tc.SetupConstraints() {
		if cc.Value.Valid() {
			fmt.Fprintf(w, " type: SETUP_CONSTRAINT launch_domain: %d capture_domain: %d constraint: %v\n",
				int(cc.Pair.Launch), int(cc.Pair.Capture), cc.Value)
		}
	}
	for _, cc := range tc.HoldConstraints() {
		if cc.Value.Valid() {
			fmt.Fprintf(w, " type: HOLD_CONSTRAINT launch_domain: %d capture_domain: %d constraint: %v\n",
				int(cc.Pair.Launch), int(cc.Pair.Capture), cc.Value)
		}
	}
	_, err := fmt.Fprintf(w, "\n")

	return err
}

// WriteAnalysisResult emits the analysis_result section for whichever of
// the setup/hold surfaces a supports.
func WriteAnalysisResult(w io.Writer, tg *graph.TimingGraph, a interface{}) error {
	if _, err := fmt.Fprintf(w, "analysis_result:\n"); err != nil {
		return err
	}
	if sa, ok := a.(SetupAnalyzer); ok {
		if err := writeAnalysis(w, tg, "SETUP",
			sa.SetupTagsOfKind, sa.SetupSlacks); err != nil {
			return err
		}
	}
	if ha, ok := a.(HoldAnalyzer); ok {
		if err := writeAnalysis(w, tg, "HOLD",
			ha.HoldTagsOfKind, ha.HoldSlacks); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n")

	return err
}

// kindLabels pairs each echoed tag kind with its line label.
var kindLabels = []struct {
	kind  tags.Kind
	label string
}{
	{tags.DataArrival, "DATA_ARRIVAL"},
	{tags.DataRequired, "DATA_REQUIRED"},
	{tags.ClockLaunch, "LAUNCH_CLOCK"},
	{tags.ClockCapture, "CAPTURE_CLOCK"},
}

// writeAnalysis emits one analysis' tag lines: per kind across all
// nodes, then the slacks across all edges.
func writeAnalysis(w io.Writer, tg *graph.TimingGraph,
	prefix string,
	nodeTags func(core.NodeID, tags.Kind) ([]tags.Tag, error),
	edgeSlacks func(core.EdgeID) ([]tags.Tag, error)) error {
	for _, kl := range kindLabels {
		for _, n := range tg.Nodes() {
			ts, err := nodeTags(n, kl.kind)
			if err != nil {
				return err
			}
			for _, t := range ts {
				if !t.Time.Valid() {
					continue
				}
				fmt.Fprintf(w, " type: %s_%s node: %d launch_domain: %s capture_domain: %s time: %v\n",
					prefix, kl.label, int(n), fmtDomain(t.LaunchDomain), fmtDomain(t.CaptureDomain), t.Time)
			}
		}
	}
	for _, e := range tg.Edges() {
		ts, err := edgeSlacks(e)
		if err != nil {
			return err
		}
		for _, t := range ts {
			if !t.Time.Valid() {
				continue
			}
			fmt.Fprintf(w, " type: %s_SLACK edge: %d launch_domain: %s capture_domain: %s slack: %v\n",
				prefix, int(e), fmtDomain(t.LaunchDomain), fmtDomain(t.CaptureDomain), t.Time)
		}
	}

	return nil
}

// fmtDomain renders a domain as its decimal index, -1 when invalid.
func fmtDomain(d core.DomainID) string {
	if !d.Valid() {
		return "-1"
	}

	return fmt.Sprintf("%d", uint8(d))
}

// edgeList renders edge ids ascending, each preceded by one space, so
// an empty list contributes nothing after the field name.
func edgeList(ids []core.EdgeID) string {
	sorted := make([]core.EdgeID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := ""
	for _, e := range sorted {
		out += fmt.Sprintf(" %d", int(e))
	}

	return out
}
