// Package constraints implements the TimingConstraints store: clock
// domains, clock-to-clock setup/hold targets and uncertainties, per-node
// input/output offsets, per-domain source latencies, and constant
// generators.
//
// What:
//
//   - Builder surface: CreateClockDomain (idempotent by name),
//     SetClockDomainSourceNode, SetSetupConstraint / SetHoldConstraint,
//     SetSetupClockUncertainty / SetHoldClockUncertainty,
//     SetInputConstraint / SetOutputConstraint, SetSourceLatency,
//     SetConstantGenerator.
//   - Read surface: pure look-ups used by the analysis visitors. An
//     unspecified setup/hold target or I/O offset reads as an invalid
//     (NaN) Time; an unspecified uncertainty or source latency reads as 0.
//   - ShouldAnalyze(launch, capture) gates domain-pair analysis: true iff
//     a setup or hold target exists for the pair.
//
// Why:
//
//	The visitors interrogate constraints in tight pre-traversal loops; the
//	NaN-for-missing convention lets them fold look-up results directly into
//	tag tables without option types, since an invalid Time can never win a
//	min/max fold.
//
// A clock domain with no source node is a virtual clock: it launches only
// through input constraints, and at a capture endpoint with no clock
// arrival of its own it captures at SourceLatency, with or without an
// output constraint there.
//
// Complexity: all look-ups O(1) on small hash maps except the per-node
// domain search (linear in the domain count, used only by
// pre-traversals). CreateClockDomain is linear in the domain count (the
// by-name search), the I/O setters are linear in the node's constraint
// count; the other setters are O(1).
//
// Errors:
//
//   - core.ErrDomainOverflow — more than core.MaxDomains domains.
//   - ErrUnknownDomain — an I/O constraint or target references a domain
//     that was never created.
//   - ErrDuplicateConstraint — a second setup/hold target or uncertainty
//     for the same (launch, capture) pair.
//   - ErrInvalidConstraints — sentinel wrapped by cross-validation
//     failures at analyzer construction.
package constraints
