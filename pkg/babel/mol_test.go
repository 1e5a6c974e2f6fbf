package babel

import (
	"testing"

	"github.com/skovanen/molgraph/pkg/errors"
)

func TestMolBasics(t *testing.T) {
	m := New()
	m.NewAtom(6, 0)
	m.NewAtom(8, -1)

	if m.NumAtoms() != 2 {
		t.Fatalf("NumAtoms = %d, want 2", m.NumAtoms())
	}

	a, err := m.Atom(2)
	if err != nil {
		t.Fatalf("Atom(2): %v", err)
	}
	if a.AtomicNumber() != 8 || a.FormalCharge() != -1 {
		t.Errorf("atom 2 = (%d, %d), want (8, -1)", a.AtomicNumber(), a.FormalCharge())
	}

	if _, err := m.Atom(0); err == nil {
		t.Error("Atom(0) should fail")
	}
	if _, err := m.Atom(3); err == nil {
		t.Error("Atom(3) should fail")
	}
}

func TestMolBonds(t *testing.T) {
	m := New()
	m.NewAtom(6, 0)
	m.NewAtom(6, 0)

	if err := m.AddBond(1, 2, OrderDouble); err != nil {
		t.Fatalf("AddBond: %v", err)
	}

	// Symmetric lookup.
	b12, ok12 := m.Bond(1, 2)
	b21, ok21 := m.Bond(2, 1)
	if !ok12 || !ok21 {
		t.Fatal("bond not visible from both directions")
	}
	if !b12.IsDouble() || !b21.IsDouble() {
		t.Error("bond order lost")
	}
	if _, ok := m.Bond(1, 1); ok {
		t.Error("phantom self bond")
	}

	if err := m.AddBond(1, 1, OrderSingle); err == nil {
		t.Error("self loop accepted")
	}
	if err := m.AddBond(1, 9, OrderSingle); err == nil {
		t.Error("bond to missing atom accepted")
	}
	if err := m.AddBond(1, 2, 4); !errors.Is(err, errors.ErrCodeStructureBond) {
		t.Errorf("bad order error = %v, want STRUCTURE_BOND_ORDER", err)
	}
}

func TestAddHydrogens(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Mol
		wantH int
	}{
		{
			name: "methane carbon",
			build: func() *Mol {
				m := New()
				m.NewAtom(6, 0)
				return m
			},
			wantH: 4,
		},
		{
			name: "ethanol heavy skeleton",
			build: func() *Mol {
				m := New()
				m.NewAtom(6, 0)
				m.NewAtom(6, 0)
				m.NewAtom(8, 0)
				_ = m.AddBond(1, 2, OrderSingle)
				_ = m.AddBond(2, 3, OrderSingle)
				return m
			},
			wantH: 6,
		},
		{
			name: "ammonium cation",
			build: func() *Mol {
				m := New()
				m.NewAtom(7, 1)
				return m
			},
			wantH: 4,
		},
		{
			name: "hydroxide anion",
			build: func() *Mol {
				m := New()
				m.NewAtom(8, -1)
				return m
			},
			wantH: 1,
		},
		{
			name: "methyl radical leaves a slot open",
			build: func() *Mol {
				m := New()
				m.NewAtom(6, 0)
				m.AtomAt(1).Spin = 2
				return m
			},
			wantH: 3,
		},
		{
			name: "carbene leaves two slots open",
			build: func() *Mol {
				m := New()
				m.NewAtom(6, 0)
				m.AtomAt(1).Spin = 3
				return m
			},
			wantH: 2,
		},
		{
			name: "sodium gets nothing",
			build: func() *Mol {
				m := New()
				m.NewAtom(11, 0)
				return m
			},
			wantH: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.build()
			before := m.NumAtoms()
			if err := m.AddHydrogens(); err != nil {
				t.Fatalf("AddHydrogens: %v", err)
			}
			added := m.NumAtoms() - before
			if added != tt.wantH {
				t.Errorf("added %d hydrogens, want %d", added, tt.wantH)
			}
			// Every new atom is a hydrogen with exactly one single bond.
			for i := before + 1; i <= m.NumAtoms(); i++ {
				if m.AtomAt(i).Num != 1 {
					t.Errorf("atom %d is element %d, want hydrogen", i, m.AtomAt(i).Num)
				}
				if nbs := m.Neighbors(i); len(nbs) != 1 {
					t.Errorf("hydrogen %d has %d bonds, want 1", i, len(nbs))
				}
			}
		})
	}
}

func TestAddHydrogensAromaticRing(t *testing.T) {
	// Benzene skeleton: six aromatic carbons in a ring each get one hydrogen.
	m := New()
	for i := 0; i < 6; i++ {
		m.NewAtom(6, 0)
		m.AtomAt(i + 1).Aromatic = true
	}
	for i := 1; i <= 6; i++ {
		j := i%6 + 1
		if err := m.AddBond(i, j, OrderAromatic); err != nil {
			t.Fatalf("AddBond: %v", err)
		}
	}

	if err := m.AddHydrogens(); err != nil {
		t.Fatalf("AddHydrogens: %v", err)
	}
	if m.NumAtoms() != 12 {
		t.Errorf("benzene atoms = %d, want 12", m.NumAtoms())
	}
}

func TestAddHydrogensIdempotent(t *testing.T) {
	m := New()
	m.NewAtom(6, 0)
	if err := m.AddHydrogens(); err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := m.AddHydrogens(); err != nil {
		t.Fatalf("second: %v", err)
	}
	if m.NumAtoms() != 5 {
		t.Errorf("atoms after repeated fill = %d, want 5", m.NumAtoms())
	}
}

func TestAssignSpinMultiplicity(t *testing.T) {
	m := New()
	// Methyl radical: carbon with three hydrogens.
	m.NewAtom(6, 0)
	for i := 0; i < 3; i++ {
		m.NewAtom(1, 0)
		_ = m.AddBond(1, m.NumAtoms(), OrderSingle)
	}
	// Methane carbon for the closed-shell case.
	m.NewAtom(6, 0)
	c2 := m.NumAtoms()
	for i := 0; i < 4; i++ {
		m.NewAtom(1, 0)
		_ = m.AddBond(c2, m.NumAtoms(), OrderSingle)
	}
	// Carbene carbon with only two hydrogens.
	m.NewAtom(6, 0)
	c3 := m.NumAtoms()
	for i := 0; i < 2; i++ {
		m.NewAtom(1, 0)
		_ = m.AddBond(c3, m.NumAtoms(), OrderSingle)
	}

	if err := m.AssignSpinMultiplicity(); err != nil {
		t.Fatalf("AssignSpinMultiplicity: %v", err)
	}

	if got := m.AtomAt(1).Spin; got != 2 {
		t.Errorf("radical carbon spin = %d, want 2", got)
	}
	if got := m.AtomAt(c2).Spin; got != 0 {
		t.Errorf("saturated carbon spin = %d, want 0", got)
	}
	if got := m.AtomAt(c3).Spin; got != 3 {
		t.Errorf("carbene carbon spin = %d, want 3", got)
	}
}
