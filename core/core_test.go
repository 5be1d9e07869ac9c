package core_test

import (
	"math"
	"testing"

	"github.com/tzerio/chronopath/core"
)

// TestTime_Validity verifies the NaN-as-invalid convention.
func TestTime_Validity(t *testing.T) {
	if !core.Time(0).Valid() {
		t.Error("zero time must be valid")
	}
	if !core.Time(-1.5).Valid() {
		t.Error("negative time must be valid")
	}
	if core.InvalidTime().Valid() {
		t.Error("InvalidTime must be invalid")
	}
}

// TestTime_ArithmeticPropagatesNaN verifies that +, − and unary − keep
// the invalid sentinel invalid.
func TestTime_ArithmeticPropagatesNaN(t *testing.T) {
	inv := core.InvalidTime()
	if inv.Add(core.Time(1)).Valid() {
		t.Error("invalid + valid must stay invalid")
	}
	if core.Time(1).Sub(inv).Valid() {
		t.Error("valid − invalid must stay invalid")
	}
	if inv.Neg().Valid() {
		t.Error("−invalid must stay invalid")
	}
	if got := core.Time(1.5).Add(core.Time(0.5)); got != core.Time(2) {
		t.Errorf("1.5 + 0.5 = %v; want 2", got)
	}
}

// TestTime_ComparisonsWithInvalid verifies that Gt/Lt are false whenever
// either operand is invalid; the folding rules rely on it.
func TestTime_ComparisonsWithInvalid(t *testing.T) {
	inv := core.InvalidTime()
	one := core.Time(1)
	if inv.Gt(one) || inv.Lt(one) {
		t.Error("invalid operand must compare false")
	}
	if one.Gt(inv) || one.Lt(inv) {
		t.Error("invalid operand must compare false")
	}
	if !core.Time(2).Gt(one) {
		t.Error("2 > 1 must hold")
	}
	if one.Gt(one) {
		t.Error("Gt must be strict")
	}
}

// TestMaxMinTime verifies the fold helpers ignore invalid operands and
// keep the accumulator on ties.
func TestMaxMinTime(t *testing.T) {
	inv := core.InvalidTime()
	if got := core.MaxTime(inv, core.Time(3)); got != core.Time(3) {
		t.Errorf("MaxTime(NaN, 3) = %v; want 3", got)
	}
	if got := core.MaxTime(core.Time(3), inv); got != core.Time(3) {
		t.Errorf("MaxTime(3, NaN) = %v; want 3", got)
	}
	if got := core.MaxTime(core.Time(1), core.Time(2)); got != core.Time(2) {
		t.Errorf("MaxTime(1, 2) = %v; want 2", got)
	}
	if got := core.MinTime(core.Time(1), core.Time(2)); got != core.Time(1) {
		t.Errorf("MinTime(1, 2) = %v; want 1", got)
	}
	if core.MaxTime(inv, inv).Valid() {
		t.Error("MaxTime(NaN, NaN) must stay invalid")
	}
	if math.IsNaN(float64(core.MinTime(inv, core.Time(0)))) {
		t.Error("MinTime(NaN, 0) must pick 0")
	}
}

// TestIDs_Validity covers the invalid sentinels of every identifier.
func TestIDs_Validity(t *testing.T) {
	if core.InvalidNode().Valid() || core.InvalidEdge().Valid() ||
		core.InvalidLevel().Valid() || core.InvalidDomain().Valid() {
		t.Error("invalid sentinels must not be Valid")
	}
	if !core.NodeID(0).Valid() || !core.DomainID(0).Valid() {
		t.Error("zero identifiers must be Valid")
	}
	if core.DomainID(core.MaxDomains).Valid() {
		t.Error("MaxDomains is the invalid domain sentinel")
	}
}

// TestIDs_String pins the rendered forms used in diagnostics.
func TestIDs_String(t *testing.T) {
	if got := core.NodeID(7).String(); got != "n7" {
		t.Errorf("NodeID(7) = %q; want n7", got)
	}
	if got := core.InvalidDomain().String(); got != "d-1" {
		t.Errorf("InvalidDomain = %q; want d-1", got)
	}
}

// TestNodeMap covers the generic index-keyed container.
func TestNodeMap(t *testing.T) {
	m := core.NewNodeMap[int](3)
	if m.Len() != 3 {
		t.Fatalf("Len = %d; want 3", m.Len())
	}
	m.Set(core.NodeID(1), 42)
	if got := m.Get(core.NodeID(1)); got != 42 {
		t.Errorf("Get(1) = %d; want 42", got)
	}
	*m.At(core.NodeID(2))++
	if got := m.Get(core.NodeID(2)); got != 1 {
		t.Errorf("At(2) increment = %d; want 1", got)
	}
}
