package tags

import (
	"fmt"

	"github.com/tzerio/chronopath/core"
)

// Kind classifies what a tag's time means.
type Kind uint8

const (
	// DataArrival is the propagated arrival time of a data transition,
	// keyed by the launching domain.
	DataArrival Kind = iota

	// DataRequired is the time a data transition must satisfy at a node,
	// keyed by the (launch, capture) domain pair.
	DataRequired

	// ClockLaunch is the arrival of the launching clock edge through the
	// clock network.
	ClockLaunch

	// ClockCapture is the arrival of the capturing clock edge through the
	// clock network.
	ClockCapture

	// Slack marks per-edge slack tags; no arrival/required tag carries it.
	Slack
)

// String renders the kind in upper case. The echo writer prints the two
// clock kinds under its own labels (LAUNCH_CLOCK, CAPTURE_CLOCK).
func (k Kind) String() string {
	switch k {
	case DataArrival:
		return "DATA_ARRIVAL"
	case DataRequired:
		return "DATA_REQUIRED"
	case ClockLaunch:
		return "CLOCK_LAUNCH"
	case ClockCapture:
		return "CLOCK_CAPTURE"
	case Slack:
		return "SLACK"
	default:
		return "UNKNOWN"
	}
}

// Tag is a single tagged time. Identity within a Table is the
// (Kind, LaunchDomain, CaptureDomain) triple; Origin is a traceback
// pointer only and never part of the key.
type Tag struct {
	Time          core.Time
	LaunchDomain  core.DomainID
	CaptureDomain core.DomainID
	Origin        core.NodeID
	Kind          Kind
}

// NewTag builds a tag. Use core.InvalidDomain() for the side a kind does
// not carry (e.g. the capture side of a DataArrival).
func NewTag(kind Kind, launch, capture core.DomainID, time core.Time, origin core.NodeID) Tag {
	return Tag{
		Time:          time,
		LaunchDomain:  launch,
		CaptureDomain: capture,
		Origin:        origin,
		Kind:          kind,
	}
}

// WithTime returns a copy of t carrying the given time.
func (t Tag) WithTime(time core.Time) Tag {
	t.Time = time

	return t
}

// matches reports key equality (kind and both domains).
func (t Tag) matches(kind Kind, launch, capture core.DomainID) bool {
	return t.Kind == kind && t.LaunchDomain == launch && t.CaptureDomain == capture
}

// String renders the tag for diagnostics.
func (t Tag) String() string {
	return fmt.Sprintf("%s{%s→%s t=%s origin=%s}",
		t.Kind, t.LaunchDomain, t.CaptureDomain, t.Time, t.Origin)
}
