package mol

import (
	"github.com/skovanen/molgraph/pkg/errors"
)

// BondKind is the tagged bond variant. It is an enumeration, not an order
// magnitude: the aromatic kind has no meaningful arithmetic relation to the
// others, so arithmetic on BondKind values is never valid. Wire codes are
// exposed separately through [BondKind.Code].
type BondKind int

const (
	// Single is a single covalent bond.
	Single BondKind = iota + 1
	// Double is a double covalent bond.
	Double
	// Triple is a triple covalent bond.
	Triple
	// Aromatic is a delocalized aromatic bond.
	Aromatic
)

// bondCodes maps each kind to the fixed interchange code used by the foreign
// model and the text formats: 1, 2, 3, and 5 for aromatic.
var bondCodes = map[BondKind]int{
	Single:   1,
	Double:   2,
	Triple:   3,
	Aromatic: 5,
}

// Code returns the interchange code for the kind (1, 2, 3, or 5).
func (k BondKind) Code() int { return bondCodes[k] }

// String returns the lowercase kind name, or "invalid" for unknown values.
func (k BondKind) String() string {
	switch k {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	}
	return "invalid"
}

// BondKindFromCode decodes an interchange code into a kind.
// Codes outside {1, 2, 3, 5} are a STRUCTURE_BOND_ORDER error.
func BondKindFromCode(code int) (BondKind, error) {
	switch code {
	case 1:
		return Single, nil
	case 2:
		return Double, nil
	case 3:
		return Triple, nil
	case 5:
		return Aromatic, nil
	}
	return 0, errors.New(errors.ErrCodeStructureBond, "unrecognized bond order code: %d", code)
}

// Bond is an edge payload describing one chemical bond.
type Bond struct {
	Kind BondKind
}

// NewBond creates a bond of the given kind.
func NewBond(kind BondKind) *Bond {
	return &Bond{Kind: kind}
}

// Equivalent reports whether other is indistinguishable from b.
func (b *Bond) Equivalent(other *Bond) bool {
	return other != nil && b.Kind == other.Kind
}

// Copy returns a new bond with the same kind.
func (b *Bond) Copy() *Bond {
	c := *b
	return &c
}

// IsSingle reports whether the bond is a single bond.
func (b *Bond) IsSingle() bool { return b.Kind == Single }

// IsDouble reports whether the bond is a double bond.
func (b *Bond) IsDouble() bool { return b.Kind == Double }

// IsTriple reports whether the bond is a triple bond.
func (b *Bond) IsTriple() bool { return b.Kind == Triple }

// String returns the kind name.
func (b *Bond) String() string { return b.Kind.String() }
