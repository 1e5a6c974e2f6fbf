package babel

// defaultValence is the neutral-atom default valence used to fill missing
// hydrogens. Elements absent from the table (metals, noble gases) never
// receive implicit hydrogens.
var defaultValence = map[int]int{
	1:  1, // H
	5:  3, // B
	6:  4, // C
	7:  3, // N
	8:  2, // O
	9:  1, // F
	14: 4, // Si
	15: 3, // P
	16: 2, // S
	17: 1, // Cl
	35: 1, // Br
	53: 1, // I
}

// spinElectrons maps a spin code to the number of valence slots the radical
// state occupies instead of hydrogens.
var spinElectrons = map[int]int{0: 0, 1: 2, 2: 1, 3: 2}

// valenceSlots returns the total bonding capacity of the atom at 1-based
// index i, adjusted for formal charge, or 0 for elements with no default
// valence.
func (m *Mol) valenceSlots(i int) int {
	a := m.atoms[i-1]
	v, ok := defaultValence[a.Num]
	if !ok {
		return 0
	}
	v += a.Charge
	if v < 0 {
		return 0
	}
	return v
}

// occupiedSlots2 returns twice the bond-order sum at i, counting an aromatic
// bond as one and a half. Doubling keeps the arithmetic integral.
func (m *Mol) occupiedSlots2(i int) int {
	sum2 := 0
	for _, j := range m.Neighbors(i) {
		switch m.BondOrder(i, j) {
		case OrderSingle:
			sum2 += 2
		case OrderDouble:
			sum2 += 4
		case OrderTriple:
			sum2 += 6
		case OrderAromatic:
			sum2 += 3
		}
	}
	return sum2
}

// AddHydrogens fills every atom to its charge-adjusted default valence with
// explicit hydrogen atoms, leaving room for radical electrons declared via
// spin codes. Atoms already at or over capacity are left alone.
func (m *Mol) AddHydrogens() error {
	// The atom list grows while hydrogens are appended; plan against the
	// original length first.
	n := len(m.atoms)
	counts := make([]int, n)
	for i := 1; i <= n; i++ {
		missing := m.valenceSlots(i) - m.occupiedSlots2(i)/2 - spinElectrons[m.atoms[i-1].Spin]
		if missing > 0 {
			counts[i-1] = missing
		}
	}

	for i := 1; i <= n; i++ {
		for k := 0; k < counts[i-1]; k++ {
			m.NewAtom(1, 0)
			if err := m.AddBond(i, m.NumAtoms(), OrderSingle); err != nil {
				return err
			}
		}
	}
	return nil
}

// AssignSpinMultiplicity derives a spin code for every atom from its unfilled
// valence: one open slot is a doublet, two a triplet, anything else closed
// shell. Singlet carbenes cannot be recovered this way; they re-enter as
// triplets.
func (m *Mol) AssignSpinMultiplicity() error {
	for i := 1; i <= len(m.atoms); i++ {
		switch m.valenceSlots(i) - m.occupiedSlots2(i)/2 {
		case 1:
			m.atoms[i-1].Spin = 2
		case 2:
			m.atoms[i-1].Spin = 3
		default:
			m.atoms[i-1].Spin = 0
		}
	}
	return nil
}
