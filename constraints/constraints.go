package constraints

import (
	"sort"

	"github.com/tzerio/chronopath/core"
)

// TimingConstraints stores every timing assertion of a design. Build it
// with the Set* methods, then hand it to an analyzer; the read surface is
// safe for concurrent readers once building is done.
type TimingConstraints struct {
	domainNames   []string      // by DomainID
	domainSources []core.NodeID // by DomainID; invalid sentinel = virtual clock

	setup    map[DomainPair]core.Time
	hold     map[DomainPair]core.Time
	setupUnc map[DomainPair]core.Time
	holdUnc  map[DomainPair]core.Time

	inputs  map[core.NodeID][]IOConstraint
	outputs map[core.NodeID][]IOConstraint

	latencies map[core.DomainID]core.Time
	constGen  map[core.NodeID]struct{}
}

// New returns an empty TimingConstraints set.
func New() *TimingConstraints {
	return &TimingConstraints{
		setup:     make(map[DomainPair]core.Time),
		hold:      make(map[DomainPair]core.Time),
		setupUnc:  make(map[DomainPair]core.Time),
		holdUnc:   make(map[DomainPair]core.Time),
		inputs:    make(map[core.NodeID][]IOConstraint),
		outputs:   make(map[core.NodeID][]IOConstraint),
		latencies: make(map[core.DomainID]core.Time),
		constGen:  make(map[core.NodeID]struct{}),
	}
}

/*
 * Builder surface
 */

// CreateClockDomain returns the domain named name, creating it if needed.
// Creation beyond core.MaxDomains returns core.ErrDomainOverflow.
func (tc *TimingConstraints) CreateClockDomain(name string) (core.DomainID, error) {
	// 1. Idempotent by name.
	if id := tc.FindClockDomain(name); id.Valid() {
		return id, nil
	}
	// 2. DomainID must stay below the invalid sentinel.
	if len(tc.domainNames) >= core.MaxDomains {
		return core.InvalidDomain(), core.ErrDomainOverflow
	}
	id := core.DomainID(len(tc.domainNames))
	tc.domainNames = append(tc.domainNames, name)
	tc.domainSources = append(tc.domainSources, core.InvalidNode())

	return id, nil
}

// SetClockDomainSourceNode binds domain d to the node whose transitions
// define it. A domain with no source node remains a virtual clock.
func (tc *TimingConstraints) SetClockDomainSourceNode(d core.DomainID, n core.NodeID) error {
	if !tc.hasDomain(d) {
		return ErrUnknownDomain
	}
	tc.domainSources[d] = n

	return nil
}

// SetConstantGenerator marks node n as a constant generator; constant
// generators launch no timing paths.
func (tc *TimingConstraints) SetConstantGenerator(n core.NodeID) {
	tc.constGen[n] = struct{}{}
}

// SetSetupConstraint installs the setup target for the (launch, capture)
// pair. Installing the same pair twice returns ErrDuplicateConstraint.
func (tc *TimingConstraints) SetSetupConstraint(launch, capture core.DomainID, value core.Time) error {
	return tc.setPair(tc.setup, launch, capture, value)
}

// SetHoldConstraint installs the hold target for the (launch, capture)
// pair. Installing the same pair twice returns ErrDuplicateConstraint.
func (tc *TimingConstraints) SetHoldConstraint(launch, capture core.DomainID, value core.Time) error {
	return tc.setPair(tc.hold, launch, capture, value)
}

// SetSetupClockUncertainty installs the setup clock uncertainty for the
// (launch, capture) pair; duplicates return ErrDuplicateConstraint.
func (tc *TimingConstraints) SetSetupClockUncertainty(launch, capture core.DomainID, value core.Time) error {
	return tc.setPair(tc.setupUnc, launch, capture, value)
}

// SetHoldClockUncertainty installs the hold clock uncertainty for the
// (launch, capture) pair; duplicates return ErrDuplicateConstraint.
func (tc *TimingConstraints) SetHoldClockUncertainty(launch, capture core.DomainID, value core.Time) error {
	return tc.setPair(tc.holdUnc, launch, capture, value)
}

// setPair validates the domains and rejects duplicate pair keys.
func (tc *TimingConstraints) setPair(m map[DomainPair]core.Time, launch, capture core.DomainID, value core.Time) error {
	if !tc.hasDomain(launch) || !tc.hasDomain(capture) {
		return ErrUnknownDomain
	}
	key := DomainPair{Launch: launch, Capture: capture}
	if _, ok := m[key]; ok {
		return ErrDuplicateConstraint
	}
	m[key] = value

	return nil
}

// SetInputConstraint installs (or updates) the input offset of node n
// against domain d.
func (tc *TimingConstraints) SetInputConstraint(n core.NodeID, d core.DomainID, offset core.Time) error {
	return tc.setIO(tc.inputs, n, d, offset)
}

// SetOutputConstraint installs (or updates) the output offset of node n
// against domain d.
func (tc *TimingConstraints) SetOutputConstraint(n core.NodeID, d core.DomainID, offset core.Time) error {
	return tc.setIO(tc.outputs, n, d, offset)
}

// setIO validates the domain and updates-in-place on repeat.
func (tc *TimingConstraints) setIO(m map[core.NodeID][]IOConstraint, n core.NodeID, d core.DomainID, offset core.Time) error {
	if !tc.hasDomain(d) {
		return ErrUnknownDomain
	}
	for i := range m[n] {
		if m[n][i].Domain == d {
			m[n][i].Offset = offset

			return nil
		}
	}
	m[n] = append(m[n], IOConstraint{Domain: d, Offset: offset})
	// Keep per-node constraints in domain order for deterministic walks.
	sort.Slice(m[n], func(i, j int) bool { return m[n][i].Domain < m[n][j].Domain })

	return nil
}

// SetSourceLatency installs the source latency of domain d (the delay
// from the ideal clock edge to the domain's source).
func (tc *TimingConstraints) SetSourceLatency(d core.DomainID, latency core.Time) error {
	if !tc.hasDomain(d) {
		return ErrUnknownDomain
	}
	tc.latencies[d] = latency

	return nil
}

/*
 * Read surface
 */

// ClockDomains returns all domain identifiers in ascending order.
func (tc *TimingConstraints) ClockDomains() []core.DomainID {
	ids := make([]core.DomainID, len(tc.domainNames))
	for i := range ids {
		ids[i] = core.DomainID(i)
	}

	return ids
}

// ClockDomainName returns the name of domain d, "" if unknown.
func (tc *TimingConstraints) ClockDomainName(d core.DomainID) string {
	if !tc.hasDomain(d) {
		return ""
	}

	return tc.domainNames[d]
}

// ClockDomainSourceNode returns the source node of domain d, or the
// invalid sentinel for virtual clocks and unknown domains.
func (tc *TimingConstraints) ClockDomainSourceNode(d core.DomainID) core.NodeID {
	if !tc.hasDomain(d) {
		return core.InvalidNode()
	}

	return tc.domainSources[d]
}

// IsVirtualClock reports whether domain d has no source node.
func (tc *TimingConstraints) IsVirtualClock(d core.DomainID) bool {
	return !tc.ClockDomainSourceNode(d).Valid()
}

// FindClockDomain returns the domain named name, or the invalid sentinel.
func (tc *TimingConstraints) FindClockDomain(name string) core.DomainID {
	// Linear search; we never expect a large number of domains.
	for i, n := range tc.domainNames {
		if n == name {
			return core.DomainID(i)
		}
	}

	return core.InvalidDomain()
}

// NodeClockDomain returns the domain associated with node n: the domain
// it sources, or the domain of its input/output constraint. Returns the
// invalid sentinel when none applies.
func (tc *TimingConstraints) NodeClockDomain(n core.NodeID) core.DomainID {
	// 1. Is it a clock source?
	if d := tc.findNodeSourceDomain(n); d.Valid() {
		return d
	}
	// 2. Does it carry an input constraint?
	if ios := tc.inputs[n]; len(ios) > 0 {
		return ios[0].Domain
	}
	// 3. Does it carry an output constraint?
	if ios := tc.outputs[n]; len(ios) > 0 {
		return ios[0].Domain
	}

	return core.InvalidDomain()
}

// NodeIsClockSource reports whether n sources some clock domain.
func (tc *TimingConstraints) NodeIsClockSource(n core.NodeID) bool {
	return tc.findNodeSourceDomain(n).Valid()
}

// NodeIsConstantGenerator reports whether n is a constant generator.
func (tc *TimingConstraints) NodeIsConstantGenerator(n core.NodeID) bool {
	_, ok := tc.constGen[n]

	return ok
}

// findNodeSourceDomain finds the domain sourced by n, if any.
func (tc *TimingConstraints) findNodeSourceDomain(n core.NodeID) core.DomainID {
	for i, src := range tc.domainSources {
		if src == n && n.Valid() {
			return core.DomainID(i)
		}
	}

	return core.InvalidDomain()
}

// SetupConstraint returns the setup target for (launch, capture), or an
// invalid Time when unspecified.
func (tc *TimingConstraints) SetupConstraint(launch, capture core.DomainID) core.Time {
	return tc.pair(tc.setup, launch, capture, core.InvalidTime())
}

// HoldConstraint returns the hold target for (launch, capture), or an
// invalid Time when unspecified.
func (tc *TimingConstraints) HoldConstraint(launch, capture core.DomainID) core.Time {
	return tc.pair(tc.hold, launch, capture, core.InvalidTime())
}

// SetupClockUncertainty returns the setup uncertainty for (launch,
// capture); 0 when unspecified.
func (tc *TimingConstraints) SetupClockUncertainty(launch, capture core.DomainID) core.Time {
	return tc.pair(tc.setupUnc, launch, capture, core.Time(0))
}

// HoldClockUncertainty returns the hold uncertainty for (launch,
// capture); 0 when unspecified.
func (tc *TimingConstraints) HoldClockUncertainty(launch, capture core.DomainID) core.Time {
	return tc.pair(tc.holdUnc, launch, capture, core.Time(0))
}

// pair looks up a domain-pair table with a fallback for missing keys.
func (tc *TimingConstraints) pair(m map[DomainPair]core.Time, launch, capture core.DomainID, missing core.Time) core.Time {
	if v, ok := m[DomainPair{Launch: launch, Capture: capture}]; ok {
		return v
	}

	return missing
}

// InputConstraint returns the input offset of node n against domain d, or
// an invalid Time when unspecified.
func (tc *TimingConstraints) InputConstraint(n core.NodeID, d core.DomainID) core.Time {
	return ioLookup(tc.inputs, n, d)
}

// OutputConstraint returns the output offset of node n against domain d,
// or an invalid Time when unspecified.
func (tc *TimingConstraints) OutputConstraint(n core.NodeID, d core.DomainID) core.Time {
	return ioLookup(tc.outputs, n, d)
}

// ioLookup scans the per-node constraint list for domain d.
func ioLookup(m map[core.NodeID][]IOConstraint, n core.NodeID, d core.DomainID) core.Time {
	for _, io := range m[n] {
		if io.Domain == d {
			return io.Offset
		}
	}

	return core.InvalidTime()
}

// InputConstraints returns all input constraints of node n in domain
// order. The slice is owned by the store and must not be mutated.
func (tc *TimingConstraints) InputConstraints(n core.NodeID) []IOConstraint {
	return tc.inputs[n]
}

// OutputConstraints returns all output constraints of node n in domain
// order. The slice is owned by the store and must not be mutated.
func (tc *TimingConstraints) OutputConstraints(n core.NodeID) []IOConstraint {
	return tc.outputs[n]
}

// SourceLatency returns the source latency of domain d; 0 when
// unspecified.
func (tc *TimingConstraints) SourceLatency(d core.DomainID) core.Time {
	if v, ok := tc.latencies[d]; ok {
		return v
	}

	return core.Time(0)
}

// ShouldAnalyze reports whether paths launched by launch and captured by
// capture are constrained at all (a setup or hold target exists).
func (tc *TimingConstraints) ShouldAnalyze(launch, capture core.DomainID) bool {
	key := DomainPair{Launch: launch, Capture: capture}
	_, setup := tc.setup[key]
	_, hold := tc.hold[key]

	return setup || hold
}

// hasDomain reports whether d indexes a created domain.
func (tc *TimingConstraints) hasDomain(d core.DomainID) bool {
	return d.Valid() && int(d) < len(tc.domainNames)
}
