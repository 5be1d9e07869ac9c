package constraints

import (
	"errors"

	"github.com/tzerio/chronopath/core"
)

// Sentinel errors for constraint installation and validation.
var (
	// ErrUnknownDomain indicates a constraint referenced a clock domain
	// that was never created.
	ErrUnknownDomain = errors.New("constraints: unknown clock domain")

	// ErrDuplicateConstraint indicates a second setup/hold target or
	// uncertainty was installed for the same (launch, capture) pair.
	ErrDuplicateConstraint = errors.New("constraints: duplicate constraint")

	// ErrInvalidConstraints is the sentinel wrapped by graph/constraint
	// cross-validation failures.
	ErrInvalidConstraints = errors.New("constraints: invalid timing constraints")
)

// DomainPair keys a clock-to-clock constraint by launch and capture
// domains.
type DomainPair struct {
	Launch  core.DomainID
	Capture core.DomainID
}

// IOConstraint is one input or output offset of a node against a domain.
type IOConstraint struct {
	Domain core.DomainID
	Offset core.Time
}

// NodeIOConstraint is an IOConstraint together with its node, as reported
// by the whole-set iteration used by echo writers.
type NodeIOConstraint struct {
	Node   core.NodeID
	Domain core.DomainID
	Offset core.Time
}

// ClockConstraint is one setup or hold target for a domain pair, as
// reported by the whole-set iteration used by echo writers.
type ClockConstraint struct {
	Pair  DomainPair
	Value core.Time
}
