// Package echo writes deterministic, line-oriented dumps of a timing
// graph, its constraints, and an analysis result — the format used by
// golden-file tests.
//
// The output is a total function of its inputs: nodes, edges, domains
// and constraints are emitted in ascending identifier order, invalid
// domains print as -1, and tags with invalid (NaN) times are omitted
// entirely. Running an analysis twice and echoing twice therefore
// produces byte-identical files.
//
// Sections:
//
//	timing_graph:        every node (type, sorted in/out edges) and edge
//	timing_constraints:  CLOCK, CLOCK_SOURCE, CONSTANT_GENERATOR,
//	                     INPUT_CONSTRAINT, OUTPUT_CONSTRAINT,
//	                     SETUP_CONSTRAINT, HOLD_CONSTRAINT lines
//	analysis_result:     per-kind tag lines ({SETUP,HOLD}_{DATA_ARRIVAL,
//	                     DATA_REQUIRED, LAUNCH_CLOCK, CAPTURE_CLOCK,
//	                     SLACK}) for whichever analyses the analyzer
//	                     supports
package echo
