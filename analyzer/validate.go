package analyzer

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tzerio/chronopath/constraints"
	"github.com/tzerio/chronopath/core"
	"github.com/tzerio/chronopath/graph"
)

// validateGraphConstraints is the one-shot cross-check run at analyzer
// construction: the graph must be structurally valid, and every node the
// constraints reference must exist and carry the right type.
func validateGraphConstraints(tg *graph.TimingGraph, tc *constraints.TimingConstraints) error {
	// 1. Structural graph checks (levelized, acyclic, level-consistent).
	if err := tg.Validate(); err != nil {
		return err
	}

	// 2. Clock domain source nodes must be SOURCEs.
	for _, d := range tc.ClockDomains() {
		src := tc.ClockDomainSourceNode(d)
		if !src.Valid() {
			continue // virtual clock
		}
		if err := wantType(tg, src, graph.Source, "clock domain %q source", tc.ClockDomainName(d)); err != nil {
			return err
		}
	}

	// 3. Constant generators must be SOURCEs.
	for _, n := range tc.ConstantGenerators() {
		if err := wantType(tg, n, graph.Source, "constant generator"); err != nil {
			return err
		}
	}

	// 4. Input constraints land on SOURCEs, output constraints on SINKs.
	for _, ic := range tc.AllInputConstraints() {
		if err := wantType(tg, ic.Node, graph.Source, "input constraint (domain %v)", ic.Domain); err != nil {
			return err
		}
	}
	for _, oc := range tc.AllOutputConstraints() {
		if err := wantType(tg, oc.Node, graph.Sink, "output constraint (domain %v)", oc.Domain); err != nil {
			return err
		}
	}

	return nil
}

// wantType checks that n exists in tg and has type want, wrapping
// failures as ErrInvalidConstraints with the referencing context.
func wantType(tg *graph.TimingGraph, n core.NodeID, want graph.NodeType, what string, args ...interface{}) error {
	ctx := fmt.Sprintf(what, args...)
	if !n.Valid() || int(n) >= tg.NumNodes() {
		return errors.Wrapf(constraints.ErrInvalidConstraints,
			"%s references unknown node %v", ctx, n)
	}
	if tg.NodeType(n) != want {
		return errors.Wrapf(constraints.ErrInvalidConstraints,
			"%s references node %v of type %v, want %v", ctx, n, tg.NodeType(n), want)
	}

	return nil
}
