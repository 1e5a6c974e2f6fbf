package babel

import (
	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/mol"
)

// Bond order codes on the model boundary.
const (
	OrderSingle   = 1
	OrderDouble   = 2
	OrderTriple   = 3
	OrderAromatic = 5
)

// Atom is one atom of a [Mol]: atomic number, formal charge, spin code, and
// an aromaticity flag used by the notations.
type Atom struct {
	Num      int
	Charge   int
	Spin     int
	Aromatic bool
}

func (a *Atom) AtomicNumber() int { return a.Num }
func (a *Atom) FormalCharge() int { return a.Charge }
func (a *Atom) SpinCode() int     { return a.Spin }

// bond is a classified bond handed across the model boundary.
type bond struct{ code int }

func (b bond) IsSingle() bool   { return b.code == OrderSingle }
func (b bond) IsDouble() bool   { return b.code == OrderDouble }
func (b bond) IsTriple() bool   { return b.code == OrderTriple }
func (b bond) IsAromatic() bool { return b.code == OrderAromatic }

// Mol is a molecule with explicit atoms and symmetric bonds, addressed by
// 1-based indices. The zero value is not usable; call [New].
type Mol struct {
	atoms []*Atom
	bonds map[[2]int]int // i < j, 1-based
}

// New creates an empty molecule.
func New() *Mol {
	return &Mol{bonds: map[[2]int]int{}}
}

// NumAtoms returns the number of atoms.
func (m *Mol) NumAtoms() int { return len(m.atoms) }

// NumBonds returns the number of bonds.
func (m *Mol) NumBonds() int { return len(m.bonds) }

// NewAtom appends an atom with the given atomic number and formal charge and
// returns its 1-based index.
func (m *Mol) NewAtom(atomicNumber, formalCharge int) {
	m.atoms = append(m.atoms, &Atom{Num: atomicNumber, Charge: formalCharge})
}

// AtomAt returns the mutable atom at 1-based index i, or nil if out of range.
func (m *Mol) AtomAt(i int) *Atom {
	if i < 1 || i > len(m.atoms) {
		return nil
	}
	return m.atoms[i-1]
}

// Atom returns the atom at 1-based index i.
func (m *Mol) Atom(i int) (mol.ForeignAtom, error) {
	a := m.AtomAt(i)
	if a == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "atom index %d out of range [1, %d]", i, len(m.atoms))
	}
	return a, nil
}

func bondKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// AddBond connects the atoms at 1-based indices i and j with the given order
// code. An existing bond between the pair is replaced.
func (m *Mol) AddBond(i, j, orderCode int) error {
	if m.AtomAt(i) == nil || m.AtomAt(j) == nil {
		return errors.New(errors.ErrCodeInvalidInput, "bond %d-%d references a missing atom", i, j)
	}
	if i == j {
		return errors.New(errors.ErrCodeInvalidInput, "bond %d-%d is a self loop", i, j)
	}
	switch orderCode {
	case OrderSingle, OrderDouble, OrderTriple, OrderAromatic:
	default:
		return errors.New(errors.ErrCodeStructureBond, "unrecognized bond order code: %d", orderCode)
	}
	m.bonds[bondKey(i, j)] = orderCode
	return nil
}

// Bond returns the bond between the atoms at 1-based indices i and j, and
// whether one exists.
func (m *Mol) Bond(i, j int) (mol.ForeignBond, bool) {
	code, ok := m.bonds[bondKey(i, j)]
	if !ok {
		return nil, false
	}
	return bond{code: code}, true
}

// BondOrder returns the raw order code between i and j, or 0 when unbonded.
func (m *Mol) BondOrder(i, j int) int { return m.bonds[bondKey(i, j)] }

// EachBond calls fn once per bond with i < j, in unspecified order.
func (m *Mol) EachBond(fn func(i, j, orderCode int)) {
	for k, code := range m.bonds {
		fn(k[0], k[1], code)
	}
}

// Neighbors returns the 1-based indices bonded to i, in ascending order.
func (m *Mol) Neighbors(i int) []int {
	var out []int
	for j := 1; j <= len(m.atoms); j++ {
		if j != i && m.BondOrder(i, j) != 0 {
			out = append(out, j)
		}
	}
	return out
}
