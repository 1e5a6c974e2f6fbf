package mol

import (
	"testing"

	"github.com/skovanen/molgraph/pkg/errors"
)

func TestBondKindCodes(t *testing.T) {
	want := map[BondKind]int{Single: 1, Double: 2, Triple: 3, Aromatic: 5}
	for kind, code := range want {
		if got := kind.Code(); got != code {
			t.Errorf("%s.Code() = %d, want %d", kind, got, code)
		}
		back, err := BondKindFromCode(code)
		if err != nil || back != kind {
			t.Errorf("BondKindFromCode(%d) = %v, %v, want %s", code, back, err, kind)
		}
	}
}

func TestBondKindFromCodeInvalid(t *testing.T) {
	for _, code := range []int{0, 4, 6, -1} {
		_, err := BondKindFromCode(code)
		if !errors.Is(err, errors.ErrCodeStructureBond) {
			t.Errorf("BondKindFromCode(%d) error = %v, want STRUCTURE_BOND_ORDER", code, err)
		}
	}
}

func TestBondEquivalent(t *testing.T) {
	s1 := NewBond(Single)
	s2 := NewBond(Single)
	d := NewBond(Double)

	if !s1.Equivalent(s2) {
		t.Error("equal bonds not equivalent")
	}
	if s1.Equivalent(d) {
		t.Error("single equivalent to double")
	}
	if s1.Equivalent(nil) {
		t.Error("bond equivalent to nil")
	}
}

func TestBondCopy(t *testing.T) {
	b := NewBond(Triple)
	c := b.Copy()
	if c == b {
		t.Fatal("Copy returned the same pointer")
	}
	if !b.Equivalent(c) {
		t.Error("copy kind differs")
	}
}

func TestBondPredicates(t *testing.T) {
	if b := NewBond(Single); !b.IsSingle() || b.IsDouble() || b.IsTriple() {
		t.Error("single predicates wrong")
	}
	if b := NewBond(Double); !b.IsDouble() || b.IsSingle() {
		t.Error("double predicates wrong")
	}
	if b := NewBond(Triple); !b.IsTriple() || b.IsDouble() {
		t.Error("triple predicates wrong")
	}
	// The aromatic kind deliberately has no predicate of its own; it must
	// not satisfy any of the integer-order ones.
	if b := NewBond(Aromatic); b.IsSingle() || b.IsDouble() || b.IsTriple() {
		t.Error("aromatic bond satisfied an order predicate")
	}
}

func TestBondKindString(t *testing.T) {
	if Aromatic.String() != "aromatic" || Single.String() != "single" {
		t.Error("kind names wrong")
	}
	if BondKind(9).String() != "invalid" {
		t.Error("unknown kind should stringify as invalid")
	}
}
