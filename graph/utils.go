package graph

import (
	"math"
	"sort"

	"github.com/tzerio/chronopath/core"
)

// NoDepthLimit disables the depth bound of the transitive cone walks.
const NoDepthLimit = math.MaxInt

// TransitiveFanout returns every node reachable from n through enabled
// edges within maxDepth hops, excluding n itself, in ascending ID order.
func (tg *TimingGraph) TransitiveFanout(n core.NodeID, maxDepth int) ([]core.NodeID, error) {
	return tg.cone(n, maxDepth, tg.nodeOut, func(e core.EdgeID) core.NodeID { return tg.edges[e].sink })
}

// TransitiveFanin returns every node that reaches n through enabled
// edges within maxDepth hops, excluding n itself, in ascending ID order.
func (tg *TimingGraph) TransitiveFanin(n core.NodeID, maxDepth int) ([]core.NodeID, error) {
	return tg.cone(n, maxDepth, tg.nodeIn, func(e core.EdgeID) core.NodeID { return tg.edges[e].src })
}

// cone is the shared BFS for TransitiveFanin/TransitiveFanout.
func (tg *TimingGraph) cone(start core.NodeID, maxDepth int, adj [][]core.EdgeID, step func(core.EdgeID) core.NodeID) ([]core.NodeID, error) {
	// 1. Validate the start node.
	if !tg.hasNode(start) {
		return nil, ErrNodeNotFound
	}
	// 2. Breadth-first walk, bounded by maxDepth hops.
	seen := core.NewNodeMap[bool](tg.NumNodes())
	seen.Set(start, true)
	frontier := []core.NodeID{start}
	var cone []core.NodeID
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []core.NodeID
		for _, n := range frontier {
			for _, e := range adj[n] {
				if tg.edges[e].disabled {
					continue
				}
				m := step(e)
				if seen.Get(m) {
					continue
				}
				seen.Set(m, true)
				cone = append(cone, m)
				next = append(next, m)
			}
		}
		frontier = next
	}
	// 3. Deterministic ordering for callers that diff or print the cone.
	sort.Slice(cone, func(i, j int) bool { return cone[i] < cone[j] })

	return cone, nil
}

// LevelHistogram returns the node count per level, indexed by LevelID.
// Returns ErrNotLevelized before a successful Levelize.
func (tg *TimingGraph) LevelHistogram() ([]int, error) {
	if !tg.levelized {
		return nil, ErrNotLevelized
	}
	hist := make([]int, len(tg.levelNodes))
	for i, nodes := range tg.levelNodes {
		hist[i] = len(nodes)
	}

	return hist, nil
}

// FaninHistogram returns hist[k] = number of nodes with k enabled
// in-edges.
func (tg *TimingGraph) FaninHistogram() []int {
	return tg.degreeHistogram(tg.nodeIn)
}

// FanoutHistogram returns hist[k] = number of nodes with k enabled
// out-edges.
func (tg *TimingGraph) FanoutHistogram() []int {
	return tg.degreeHistogram(tg.nodeOut)
}

// degreeHistogram buckets nodes by enabled degree in adj.
func (tg *TimingGraph) degreeHistogram(adj [][]core.EdgeID) []int {
	var hist []int
	for i := range tg.nodeTypes {
		d := tg.countEnabled(adj[core.NodeID(i)])
		for len(hist) <= d {
			hist = append(hist, 0)
		}
		hist[d]++
	}

	return hist
}
