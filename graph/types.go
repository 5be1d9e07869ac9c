package graph

import "errors"

// NodeType classifies a timing graph node.
type NodeType uint8

const (
	// Source is a register output or primary-input endpoint; a Source may
	// additionally act as a clock source when the constraints say so.
	Source NodeType = iota

	// Sink is a register data input or primary-output endpoint; the only
	// valid capture endpoint.
	Sink

	// IPin is an intermediate primitive input pin.
	IPin

	// OPin is an intermediate primitive output pin.
	OPin

	// CPin is the clock pin of a sequential primitive.
	CPin
)

// String renders the node type in the canonical upper-case echo form.
func (t NodeType) String() string {
	switch t {
	case Source:
		return "SOURCE"
	case Sink:
		return "SINK"
	case IPin:
		return "IPIN"
	case OPin:
		return "OPIN"
	case CPin:
		return "CPIN"
	default:
		return "UNKNOWN"
	}
}

// EdgeType classifies a timing graph edge.
type EdgeType uint8

const (
	// PrimitiveCombinational is a combinational path through a primitive.
	PrimitiveCombinational EdgeType = iota

	// PrimitiveClockLaunch connects a sequential primitive's clock pin to
	// its data output (the clock-to-q path).
	PrimitiveClockLaunch

	// PrimitiveClockCapture connects a sequential primitive's clock pin to
	// its data input (the capture path, where setup/hold times apply).
	PrimitiveClockCapture

	// Net is a wire between primitives.
	Net
)

// String renders the edge type in the canonical upper-case echo form.
func (t EdgeType) String() string {
	switch t {
	case PrimitiveCombinational:
		return "PRIMITIVE_COMBINATIONAL"
	case PrimitiveClockLaunch:
		return "PRIMITIVE_CLOCK_LAUNCH"
	case PrimitiveClockCapture:
		return "PRIMITIVE_CLOCK_CAPTURE"
	case Net:
		return "NET"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors for graph construction and validation.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrCycleDetected indicates levelization discovered a cycle.
	ErrCycleDetected = errors.New("graph: cycle detected")

	// ErrNotLevelized indicates a level-dependent query or validation was
	// attempted before a successful Levelize call.
	ErrNotLevelized = errors.New("graph: graph not levelized")

	// ErrInvalidGraph indicates a structural validation failure.
	ErrInvalidGraph = errors.New("graph: invalid timing graph")
)
