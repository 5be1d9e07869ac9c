package graph

import (
	"github.com/pkg/errors"

	"github.com/tzerio/chronopath/core"
)

// Validate performs the one-shot structural checks required before
// analysis:
//
//  1. the graph must be levelized (which already proves acyclicity),
//  2. every enabled edge must go strictly level-upward, and
//  3. every SINK must have at least one in-edge (a capture endpoint with
//     no arrival source can never be constrained).
//
// Failures are reported as ErrInvalidGraph wrapped with the offending
// node or edge; an unlevelized graph reports ErrNotLevelized.
func (tg *TimingGraph) Validate() error {
	// 1. Acyclicity and level assignment come from Levelize.
	if !tg.levelized {
		return ErrNotLevelized
	}

	// 2. Enabled edges must respect the level order.
	for i := range tg.edges {
		e := core.EdgeID(i)
		if tg.edges[e].disabled {
			continue
		}
		srcLevel := tg.nodeLevels.Get(tg.edges[e].src)
		sinkLevel := tg.nodeLevels.Get(tg.edges[e].sink)
		if srcLevel >= sinkLevel {
			return errors.Wrapf(ErrInvalidGraph,
				"edge %v from %v (level %v) to %v (level %v) is not level-increasing",
				e, tg.edges[e].src, srcLevel, tg.edges[e].sink, sinkLevel)
		}
	}

	// 3. SINKs must be reachable by some arrival.
	for i := range tg.nodeTypes {
		n := core.NodeID(i)
		if tg.nodeTypes[n] == Sink && len(tg.nodeIn[n]) == 0 {
			return errors.Wrapf(ErrInvalidGraph,
				"sink node %v has no in-edges", n)
		}
	}

	return nil
}
