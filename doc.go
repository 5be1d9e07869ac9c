// Package chronopath is an in-memory static timing analysis (STA) engine
// for synchronous digital circuits — from strongly-typed graph primitives
// to full multi-clock setup/hold analyzers.
//
// 🚀 What is chronopath?
//
//	A focused, index-array based library that brings together:
//		• Core primitives: typed node/edge/level/domain identifiers and a
//		  NaN-aware Time scalar
//		• TimingGraph: a pre-levelized DAG of circuit pins and nets
//		• TimingConstraints: clock domains, I/O offsets, setup/hold targets,
//		  uncertainties and source latencies
//		• Tag stores: compact per-node/per-edge collections of tagged
//		  arrival, required and slack times
//		• Analysis visitors: setup (max-path), hold (min-path) and combined
//		  setup/hold equation sets
//		• Graph walkers: serial and level-parallel traversal schedules with
//		  per-phase profiling
//		• Analyzer facades: one-call UpdateTiming over the canonical
//		  reset → arrival → required → slack pass sequence
//		• Echo writer: deterministic plain-text dumps for golden-file tests
//
// ✨ Why choose chronopath?
//
//   - Deterministic – serial and parallel walkers produce bit-identical tags
//   - Pointer-free – index-keyed arrays throughout, no cyclic ownership
//   - Multi-clock – per-tag launch/capture domains, virtual clocks,
//     cross-domain constraints
//   - Pure Go – no cgo, no global state
//
// Under the hood, everything is organized into small subpackages:
//
//	core/        — NodeID, EdgeID, LevelID, DomainID, Time & index maps
//	graph/       — TimingGraph builder, levelizer, validator & utilities
//	constraints/ — TimingConstraints store and builder
//	tags/        — timing tag tables with min/max folding rules
//	delay/       — delay calculator contract and fixed-delay implementation
//	analysis/    — setup, hold and combined visitors (the STA equations)
//	walker/      — serial and parallel levelized traversal schedules
//	analyzer/    — FullSetup / FullHold / FullSetupHold facades
//	echo/        — line-oriented result dumps for golden-file comparison
//
// Quick ASCII example (a register-to-register path):
//
//	clk ──► CPIN ──launch──► Q ──0.5ns──► D ◄──capture── CPIN ◄── clk
//
// Analysis answers: how late can the transition reach D (arrival), when
// must it be there (required), and what margin remains (slack).
package chronopath
