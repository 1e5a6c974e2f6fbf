package mol

import (
	"fmt"

	"github.com/skovanen/molgraph/pkg/element"
)

// Atom is a vertex payload describing one atom.
//
// Two atoms added to a graph are always distinct vertices even when their
// fields are equal; [Atom.Equivalent] expresses chemical equivalence and is
// used only during isomorphism matching.
type Atom struct {
	// Element is the resolved periodic-table entry.
	Element element.Element

	// RadicalElectrons is the number of unpaired electrons.
	RadicalElectrons int

	// SpinMultiplicity is 2S+1 for total electron spin S. Values are only
	// ever produced through the fixed spin-code decode table on import;
	// arbitrary combinations with RadicalElectrons are not validated.
	SpinMultiplicity int

	// ImplicitHydrogens counts hydrogen neighbors compressed onto this atom.
	ImplicitHydrogens int

	// Charge is the integer formal charge.
	Charge int

	// Label is a free-text tag. It is carried through copies but excluded
	// from equivalence.
	Label string
}

// NewAtom creates a closed-shell atom of the given element with no charge and
// no implicit hydrogens.
func NewAtom(el element.Element) *Atom {
	return &Atom{Element: el, SpinMultiplicity: 1}
}

// NewAtomSymbol creates an atom by resolving symbol against the element
// registry. Returns ELEMENT_NOT_FOUND if the symbol is unknown.
func NewAtomSymbol(symbol string) (*Atom, error) {
	el, err := element.BySymbol(symbol)
	if err != nil {
		return nil, err
	}
	return NewAtom(el), nil
}

// Equivalent reports whether other is chemically indistinguishable from a:
// same element, radical electrons, spin multiplicity, implicit hydrogens, and
// formal charge. The label is ignored.
func (a *Atom) Equivalent(other *Atom) bool {
	if other == nil {
		return false
	}
	return a.Element.Number == other.Element.Number &&
		a.RadicalElectrons == other.RadicalElectrons &&
		a.SpinMultiplicity == other.SpinMultiplicity &&
		a.ImplicitHydrogens == other.ImplicitHydrogens &&
		a.Charge == other.Charge
}

// Copy returns a new, independently-identified atom with identical fields.
func (a *Atom) Copy() *Atom {
	c := *a
	return &c
}

// IsHydrogen reports whether the atom is hydrogen.
func (a *Atom) IsHydrogen() bool { return a.Element.Number == 1 }

// IsNonHydrogen reports whether the atom is heavier than hydrogen.
func (a *Atom) IsNonHydrogen() bool { return a.Element.Number > 1 }

// IsCarbon reports whether the atom is carbon.
func (a *Atom) IsCarbon() bool { return a.Element.Number == 6 }

// IsOxygen reports whether the atom is oxygen.
func (a *Atom) IsOxygen() bool { return a.Element.Number == 8 }

// String returns a compact human-readable description, e.g. "O-" or "C..".
// Radical electrons render as dots, charge as +/- runs.
func (a *Atom) String() string {
	s := a.Element.Symbol
	for i := 0; i < a.RadicalElectrons; i++ {
		s += "."
	}
	for i := 0; i < a.Charge; i++ {
		s += "+"
	}
	for i := 0; i < -a.Charge; i++ {
		s += "-"
	}
	return s
}

// compareAtoms is the canonical-sort tiebreak for atoms with equal
// connectivity values: heavier elements first, then more implicit hydrogens,
// then by charge, radical electrons, and label.
func compareAtoms(a, b *Atom) int {
	switch {
	case a.Element.Number != b.Element.Number:
		return b.Element.Number - a.Element.Number
	case a.ImplicitHydrogens != b.ImplicitHydrogens:
		return b.ImplicitHydrogens - a.ImplicitHydrogens
	case a.Charge != b.Charge:
		return a.Charge - b.Charge
	case a.RadicalElectrons != b.RadicalElectrons:
		return a.RadicalElectrons - b.RadicalElectrons
	default:
		switch {
		case a.Label < b.Label:
			return -1
		case a.Label > b.Label:
			return 1
		}
		return 0
	}
}

var _ fmt.Stringer = (*Atom)(nil)
