package constraints

import (
	"sort"

	"github.com/tzerio/chronopath/core"
)

// ClockSourceNodes returns the source nodes of all non-virtual domains in
// ascending domain order.
func (tc *TimingConstraints) ClockSourceNodes() []core.NodeID {
	var nodes []core.NodeID
	for _, src := range tc.domainSources {
		if src.Valid() {
			nodes = append(nodes, src)
		}
	}

	return nodes
}

// ConstantGenerators returns all constant generator nodes in ascending
// ID order.
func (tc *TimingConstraints) ConstantGenerators() []core.NodeID {
	nodes := make([]core.NodeID, 0, len(tc.constGen))
	for n := range tc.constGen {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return nodes
}

// InputConstrainedNodes returns all nodes carrying at least one input
// constraint, in ascending ID order.
func (tc *TimingConstraints) InputConstrainedNodes() []core.NodeID {
	return sortedKeys(tc.inputs)
}

// OutputConstrainedNodes returns all nodes carrying at least one output
// constraint, in ascending ID order.
func (tc *TimingConstraints) OutputConstrainedNodes() []core.NodeID {
	return sortedKeys(tc.outputs)
}

// AllInputConstraints returns every input constraint ordered by (node,
// domain); the echo writer relies on this order.
func (tc *TimingConstraints) AllInputConstraints() []NodeIOConstraint {
	return flattenIO(tc.inputs)
}

// AllOutputConstraints returns every output constraint ordered by (node,
// domain).
func (tc *TimingConstraints) AllOutputConstraints() []NodeIOConstraint {
	return flattenIO(tc.outputs)
}

// SetupConstraints returns every setup target ordered by (launch,
// capture).
func (tc *TimingConstraints) SetupConstraints() []ClockConstraint {
	return flattenPairs(tc.setup)
}

// HoldConstraints returns every hold target ordered by (launch, capture).
func (tc *TimingConstraints) HoldConstraints() []ClockConstraint {
	return flattenPairs(tc.hold)
}

// sortedKeys returns the node keys of m in ascending order.
func sortedKeys(m map[core.NodeID][]IOConstraint) []core.NodeID {
	nodes := make([]core.NodeID, 0, len(m))
	for n := range m {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return nodes
}

// flattenIO orders a per-node constraint table by (node, domain).
func flattenIO(m map[core.NodeID][]IOConstraint) []NodeIOConstraint {
	var all []NodeIOConstraint
	for _, n := range sortedKeys(m) {
		for _, io := range m[n] {
			all = append(all, NodeIOConstraint{Node: n, Domain: io.Domain, Offset: io.Offset})
		}
	}

	return all
}

// flattenPairs orders a domain-pair table by (launch, capture).
func flattenPairs(m map[DomainPair]core.Time) []ClockConstraint {
	all := make([]ClockConstraint, 0, len(m))
	for pair, v := range m {
		all = append(all, ClockConstraint{Pair: pair, Value: v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Pair.Launch != all[j].Pair.Launch {
			return all[i].Pair.Launch < all[j].Pair.Launch
		}

		return all[i].Pair.Capture < all[j].Pair.Capture
	})

	return all
}
