package core

import (
	"math"
	"strconv"
)

// Time is a timing value in seconds (or any consistent unit). The zero
// value is a valid time of 0; NaN marks "no value" and is produced by
// InvalidTime. All arithmetic propagates NaN; Gt and Lt return false
// whenever either operand is invalid, so a NaN candidate can never
// displace a valid folded value.
type Time float32

// InvalidTime returns the NaN sentinel meaning "no value".
func InvalidTime() Time { return Time(math.NaN()) }

// Valid reports whether t holds an actual value (false iff NaN).
func (t Time) Valid() bool { return !math.IsNaN(float64(t)) }

// Value returns the underlying float32.
func (t Time) Value() float32 { return float32(t) }

// Add returns t + o, NaN if either operand is invalid.
func (t Time) Add(o Time) Time { return t + o }

// Sub returns t − o, NaN if either operand is invalid.
func (t Time) Sub(o Time) Time { return t - o }

// Neg returns −t, NaN if t is invalid.
func (t Time) Neg() Time { return -t }

// Gt reports t > o; false if either operand is invalid.
func (t Time) Gt(o Time) bool { return t > o }

// Lt reports t < o; false if either operand is invalid.
func (t Time) Lt(o Time) bool { return t < o }

// String renders the value in shortest-round-trip form; NaN prints as "NaN".
func (t Time) String() string {
	return strconv.FormatFloat(float64(t), 'g', -1, 32)
}

// MaxTime returns the larger of a and b, ignoring invalid operands.
// If both are invalid the result is invalid.
func MaxTime(a, b Time) Time {
	// 1. An invalid accumulator is always replaced by the candidate.
	if !a.Valid() {
		return b
	}
	// 2. Only a strictly larger valid candidate wins (ties keep a).
	if b.Gt(a) {
		return b
	}

	return a
}

// MinTime returns the smaller of a and b, ignoring invalid operands.
// If both are invalid the result is invalid.
func MinTime(a, b Time) Time {
	if !a.Valid() {
		return b
	}
	if b.Lt(a) {
		return b
	}

	return a
}
