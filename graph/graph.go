package graph

import (
	"github.com/tzerio/chronopath/core"
)

// edge is the internal edge record.
type edge struct {
	src      core.NodeID
	sink     core.NodeID
	kind     EdgeType
	disabled bool
}

// TimingGraph is a directed acyclic circuit representation. Build it with
// AddNode/AddEdge, call Levelize once, then treat it as read-only: every
// accessor of the read contract is safe for concurrent readers.
type TimingGraph struct {
	nodeTypes []NodeType
	nodeIn    [][]core.EdgeID
	nodeOut   [][]core.EdgeID
	edges     []edge

	// Levelization results; valid only while levelized is true.
	levelized  bool
	nodeLevels core.NodeMap[core.LevelID]
	levelNodes [][]core.NodeID
}

// New returns an empty TimingGraph.
func New() *TimingGraph {
	return &TimingGraph{}
}

// AddNode appends a node of the given type and returns its identifier.
// Adding a node invalidates any previous levelization.
func (tg *TimingGraph) AddNode(t NodeType) core.NodeID {
	id := core.NodeID(len(tg.nodeTypes))
	tg.nodeTypes = append(tg.nodeTypes, t)
	tg.nodeIn = append(tg.nodeIn, nil)
	tg.nodeOut = append(tg.nodeOut, nil)
	tg.levelized = false

	return id
}

// AddEdge appends an enabled edge of the given type from src to sink and
// returns its identifier. Adding an edge invalidates any previous
// levelization. Returns ErrNodeNotFound if either endpoint is unknown.
func (tg *TimingGraph) AddEdge(t EdgeType, src, sink core.NodeID) (core.EdgeID, error) {
	// 1. Both endpoints must already exist.
	if !tg.hasNode(src) {
		return core.InvalidEdge(), ErrNodeNotFound
	}
	if !tg.hasNode(sink) {
		return core.InvalidEdge(), ErrNodeNotFound
	}
	// 2. Record the edge and its adjacency entries.
	id := core.EdgeID(len(tg.edges))
	tg.edges = append(tg.edges, edge{src: src, sink: sink, kind: t})
	tg.nodeOut[src] = append(tg.nodeOut[src], id)
	tg.nodeIn[sink] = append(tg.nodeIn[sink], id)
	tg.levelized = false

	return id, nil
}

// SetEdgeDisabled marks an edge as ignored by all propagation (true) or
// re-enables it (false). Changing the flag invalidates levelization,
// since level 0 is defined by enabled in-edges.
func (tg *TimingGraph) SetEdgeDisabled(id core.EdgeID, disabled bool) error {
	if !tg.hasEdge(id) {
		return ErrEdgeNotFound
	}
	tg.edges[id].disabled = disabled
	tg.levelized = false

	return nil
}

// NumNodes returns the node count.
func (tg *TimingGraph) NumNodes() int { return len(tg.nodeTypes) }

// NumEdges returns the edge count.
func (tg *TimingGraph) NumEdges() int { return len(tg.edges) }

// NumLevels returns the level count, or 0 if the graph is not levelized.
func (tg *TimingGraph) NumLevels() int { return len(tg.levelNodes) }

// Levelized reports whether a successful Levelize call is still valid.
func (tg *TimingGraph) Levelized() bool { return tg.levelized }

// Nodes returns all node identifiers in ascending order.
func (tg *TimingGraph) Nodes() []core.NodeID {
	ids := make([]core.NodeID, tg.NumNodes())
	for i := range ids {
		ids[i] = core.NodeID(i)
	}

	return ids
}

// Edges returns all edge identifiers in ascending order.
func (tg *TimingGraph) Edges() []core.EdgeID {
	ids := make([]core.EdgeID, tg.NumEdges())
	for i := range ids {
		ids[i] = core.EdgeID(i)
	}

	return ids
}

// Levels returns all level identifiers in ascending order, or nil if the
// graph is not levelized.
func (tg *TimingGraph) Levels() []core.LevelID {
	if !tg.levelized {
		return nil
	}
	ids := make([]core.LevelID, len(tg.levelNodes))
	for i := range ids {
		ids[i] = core.LevelID(i)
	}

	return ids
}

// LevelNodes returns the contiguous block of node identifiers at level l
// in ascending ID order. The returned slice is owned by the graph and
// must not be mutated.
func (tg *TimingGraph) LevelNodes(l core.LevelID) []core.NodeID {
	if !tg.levelized || int(l) >= len(tg.levelNodes) {
		return nil
	}

	return tg.levelNodes[l]
}

// NodeLevel returns the level assigned to n, or the invalid sentinel if
// the graph is not levelized.
func (tg *TimingGraph) NodeLevel(n core.NodeID) core.LevelID {
	if !tg.levelized {
		return core.InvalidLevel()
	}

	return tg.nodeLevels.Get(n)
}

// NodeType returns the type of node n.
func (tg *TimingGraph) NodeType(n core.NodeID) NodeType { return tg.nodeTypes[n] }

// NodeInEdges returns the edges terminating at n. The slice is owned by
// the graph and must not be mutated.
func (tg *TimingGraph) NodeInEdges(n core.NodeID) []core.EdgeID { return tg.nodeIn[n] }

// NodeOutEdges returns the edges originating at n. The slice is owned by
// the graph and must not be mutated.
func (tg *TimingGraph) NodeOutEdges(n core.NodeID) []core.EdgeID { return tg.nodeOut[n] }

// EdgeSrcNode returns the source node of edge e.
func (tg *TimingGraph) EdgeSrcNode(e core.EdgeID) core.NodeID { return tg.edges[e].src }

// EdgeSinkNode returns the sink node of edge e.
func (tg *TimingGraph) EdgeSinkNode(e core.EdgeID) core.NodeID { return tg.edges[e].sink }

// EdgeDisabled reports whether edge e is excluded from all propagation.
func (tg *TimingGraph) EdgeDisabled(e core.EdgeID) bool { return tg.edges[e].disabled }

// EdgeType returns the type of edge e.
func (tg *TimingGraph) EdgeType(e core.EdgeID) EdgeType { return tg.edges[e].kind }

// PrimaryInputs returns the level-0 nodes (no enabled in-edges), or nil
// if the graph is not levelized.
func (tg *TimingGraph) PrimaryInputs() []core.NodeID {
	return tg.LevelNodes(core.LevelID(0))
}

// LogicalOutputs returns all nodes with no enabled out-edges, in
// ascending ID order.
func (tg *TimingGraph) LogicalOutputs() []core.NodeID {
	var outs []core.NodeID
	for i := range tg.nodeTypes {
		n := core.NodeID(i)
		if tg.countEnabled(tg.nodeOut[n]) == 0 {
			outs = append(outs, n)
		}
	}

	return outs
}

// hasNode reports whether id indexes an existing node.
func (tg *TimingGraph) hasNode(id core.NodeID) bool {
	return id.Valid() && int(id) < len(tg.nodeTypes)
}

// hasEdge reports whether id indexes an existing edge.
func (tg *TimingGraph) hasEdge(id core.EdgeID) bool {
	return id.Valid() && int(id) < len(tg.edges)
}

// countEnabled counts the non-disabled edges in ids.
func (tg *TimingGraph) countEnabled(ids []core.EdgeID) int {
	cnt := 0
	for _, e := range ids {
		if !tg.edges[e].disabled {
			cnt++
		}
	}

	return cnt
}
