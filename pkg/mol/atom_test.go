package mol

import (
	"testing"

	"github.com/skovanen/molgraph/pkg/element"
	"github.com/skovanen/molgraph/pkg/errors"
)

func mustAtom(t *testing.T, symbol string) *Atom {
	t.Helper()
	a, err := NewAtomSymbol(symbol)
	if err != nil {
		t.Fatalf("NewAtomSymbol(%s): %v", symbol, err)
	}
	return a
}

func TestNewAtomDefaults(t *testing.T) {
	a := mustAtom(t, "C")
	if a.Element.Number != 6 {
		t.Errorf("element number = %d, want 6", a.Element.Number)
	}
	if a.RadicalElectrons != 0 || a.SpinMultiplicity != 1 || a.ImplicitHydrogens != 0 || a.Charge != 0 {
		t.Errorf("defaults wrong: %+v", a)
	}
}

func TestNewAtomSymbolUnknown(t *testing.T) {
	_, err := NewAtomSymbol("Qq")
	if !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("error = %v, want ELEMENT_NOT_FOUND", err)
	}
}

func TestAtomEquivalent(t *testing.T) {
	c1 := mustAtom(t, "C")
	c2 := mustAtom(t, "C")
	n := mustAtom(t, "N")

	if !c1.Equivalent(c2) {
		t.Error("identical carbons not equivalent")
	}
	if c1.Equivalent(n) {
		t.Error("carbon equivalent to nitrogen")
	}
	if c1.Equivalent(nil) {
		t.Error("atom equivalent to nil")
	}

	// The label never participates in equivalence.
	c2.Label = "alpha"
	if !c1.Equivalent(c2) {
		t.Error("label change broke equivalence")
	}

	// Every other field does.
	fields := []func(*Atom){
		func(a *Atom) { a.RadicalElectrons = 1 },
		func(a *Atom) { a.SpinMultiplicity = 2 },
		func(a *Atom) { a.ImplicitHydrogens = 3 },
		func(a *Atom) { a.Charge = -1 },
	}
	for i, mutate := range fields {
		other := mustAtom(t, "C")
		mutate(other)
		if c1.Equivalent(other) {
			t.Errorf("field mutation %d did not break equivalence", i)
		}
	}
}

func TestAtomCopy(t *testing.T) {
	a := mustAtom(t, "O")
	a.Charge = -1
	a.ImplicitHydrogens = 1
	a.Label = "hydroxyl"

	c := a.Copy()
	if c == a {
		t.Fatal("Copy returned the same pointer")
	}
	if !a.Equivalent(c) || c.Label != a.Label {
		t.Errorf("copy fields differ: %+v vs %+v", a, c)
	}

	c.Charge = 2
	if a.Charge != -1 {
		t.Error("mutating the copy changed the original")
	}
}

func TestAtomPredicates(t *testing.T) {
	h := mustAtom(t, "H")
	c := mustAtom(t, "C")
	o := mustAtom(t, "O")

	if !h.IsHydrogen() || h.IsNonHydrogen() || h.IsCarbon() || h.IsOxygen() {
		t.Error("hydrogen predicates wrong")
	}
	if !c.IsCarbon() || !c.IsNonHydrogen() || c.IsHydrogen() {
		t.Error("carbon predicates wrong")
	}
	if !o.IsOxygen() || !o.IsNonHydrogen() {
		t.Error("oxygen predicates wrong")
	}
}

func TestAtomString(t *testing.T) {
	a := NewAtom(element.MustBySymbol("O"))
	a.Charge = -1
	if got := a.String(); got != "O-" {
		t.Errorf("String() = %q, want O-", got)
	}

	b := NewAtom(element.MustBySymbol("C"))
	b.RadicalElectrons = 2
	b.Charge = 1
	if got := b.String(); got != "C..+" {
		t.Errorf("String() = %q, want C..+", got)
	}
}
