package graph

import (
	"sort"

	"github.com/tzerio/chronopath/core"
)

// Levelize partitions the nodes into levels by longest enabled in-edge
// depth: level 0 holds every node with no enabled in-edge; a node's level
// is one past its deepest enabled predecessor. Disabled edges contribute
// nothing. Returns ErrCycleDetected if the enabled subgraph is cyclic, in
// which case the graph remains unlevelized.
func (tg *TimingGraph) Levelize() error {
	numNodes := tg.NumNodes()

	// 1. Count enabled in-edges per node; zero-indegree nodes seed level 0.
	indeg := core.NewNodeMap[int](numNodes)
	levels := core.NewNodeMap[core.LevelID](numNodes)
	var wave []core.NodeID
	for i := 0; i < numNodes; i++ {
		n := core.NodeID(i)
		levels.Set(n, core.InvalidLevel())
		d := tg.countEnabled(tg.nodeIn[n])
		indeg.Set(n, d)
		if d == 0 {
			// Scanning in ascending ID order keeps each wave ID-sorted.
			wave = append(wave, n)
		}
	}

	// 2. Kahn-style wave propagation: a node becomes ready only once all
	//    enabled predecessors are placed, so its wave index equals its
	//    longest-path depth.
	var levelNodes [][]core.NodeID
	processed := 0
	for level := core.LevelID(0); len(wave) > 0; level++ {
		levelNodes = append(levelNodes, wave)
		var next []core.NodeID
		for _, n := range wave {
			levels.Set(n, level)
			processed++
			for _, e := range tg.nodeOut[n] {
				if tg.edges[e].disabled {
					continue
				}
				sink := tg.edges[e].sink
				*indeg.At(sink)--
				if indeg.Get(sink) == 0 {
					next = append(next, sink)
				}
			}
		}
		// Each level block is kept in ascending ID order; the serial walker
		// relies on it.
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		wave = next
	}

	// 3. Unplaced nodes mean a cycle in the enabled subgraph.
	if processed != numNodes {
		return ErrCycleDetected
	}

	tg.nodeLevels = levels
	tg.levelNodes = levelNodes
	tg.levelized = true

	return nil
}