package mol

// ForeignAtom exposes one atom of a foreign molecular model.
type ForeignAtom interface {
	// AtomicNumber returns the proton count.
	AtomicNumber() int

	// FormalCharge returns the integer formal charge.
	FormalCharge() int

	// SpinCode returns the foreign spin-multiplicity code. Recognized codes
	// are 0 through 3; anything else is rejected during import.
	SpinCode() int
}

// ForeignBond exposes the classification predicates of a foreign bond.
// Classification on import follows the priority single, double, triple,
// aromatic; a bond matching none of the predicates is a structural error.
type ForeignBond interface {
	IsSingle() bool
	IsDouble() bool
	IsTriple() bool
	IsAromatic() bool
}

// ForeignMol is the interchange boundary to an external molecular model.
// Atom indices are 1-based, matching the foreign convention.
//
// Calls across this boundary are blocking and are never retried: a malformed
// structure fails immediately rather than being silently patched.
type ForeignMol interface {
	// AddHydrogens asks the model to add any hydrogens missing from its
	// valence model.
	AddHydrogens() error

	// NumAtoms returns the number of atoms.
	NumAtoms() int

	// Atom returns the atom at 1-based index i.
	Atom(i int) (ForeignAtom, error)

	// Bond returns the bond between the atoms at 1-based indices i and j,
	// and whether one exists.
	Bond(i, j int) (ForeignBond, bool)

	// NewAtom appends an atom with the given atomic number and formal
	// charge.
	NewAtom(atomicNumber, formalCharge int)

	// AddBond connects the atoms at 1-based indices i and j with the given
	// interchange order code (1, 2, 3, or 5).
	AddBond(i, j, orderCode int) error

	// AssignSpinMultiplicity derives spin codes from the final bonding
	// pattern. Export relies on this instead of re-encoding stored spin
	// state.
	AssignSpinMultiplicity() error
}
