package mol

import (
	"github.com/skovanen/molgraph/pkg/element"
	"github.com/skovanen/molgraph/pkg/errors"
)

// Molecule is an ordered sequence of resonance forms considered equivalent
// representations of the same molecular configuration. The order is assumed
// to be decreasing stability as supplied by the caller.
//
// After any import the list holds exactly one form; before the first import
// it may be empty.
type Molecule struct {
	ResonanceForms []*ChemGraph
}

// NewMolecule creates a molecule with no resonance forms.
func NewMolecule() *Molecule {
	return &Molecule{}
}

// decodeSpin is the fixed spin-code decode table. It is the only producer of
// radical-electron / spin-multiplicity pairs in this package.
func decodeSpin(code int) (radicalElectrons, spinMultiplicity int, err error) {
	switch code {
	case 0:
		return 0, 1, nil
	case 1:
		return 2, 1, nil
	case 2:
		return 1, 2, nil
	case 3:
		return 2, 3, nil
	}
	return 0, 0, errors.New(errors.ErrCodeStructureSpin, "unrecognized spin multiplicity code: %d", code)
}

// classifyBond maps a foreign bond onto a kind by predicate priority.
// A bond matching no predicate is a structural error, never a silent
// zero-order placeholder.
func classifyBond(fb ForeignBond) (BondKind, error) {
	switch {
	case fb.IsSingle():
		return Single, nil
	case fb.IsDouble():
		return Double, nil
	case fb.IsTriple():
		return Triple, nil
	case fb.IsAromatic():
		return Aromatic, nil
	}
	return 0, errors.New(errors.ErrCodeStructureBond, "foreign bond matches no recognized order")
}

// FromForeign replaces the molecule's resonance forms with the single graph
// built from src. The construction is deterministic:
//
//  1. Missing hydrogens are added by the foreign model.
//  2. Atoms are created in the foreign index order (element by atomic number,
//     spin decoded through the fixed table, formal charge copied, implicit
//     hydrogens zero), so that bond lookups by index line up.
//  3. Every unordered index pair is queried for a bond; found bonds are
//     classified and stored symmetrically.
//  4. Hydrogens are compressed before the molecule is updated.
//
// On any failure the molecule is left unchanged.
func (m *Molecule) FromForeign(src ForeignMol) error {
	if err := src.AddHydrogens(); err != nil {
		return errors.Wrap(errors.ErrCodeConversionParse, err, "add hydrogens")
	}

	cg := NewChemGraph()
	n := src.NumAtoms()
	ids := make([]AtomID, n)

	for i := 0; i < n; i++ {
		fa, err := src.Atom(i + 1)
		if err != nil {
			return errors.Wrap(errors.ErrCodeConversionParse, err, "foreign atom %d", i+1)
		}

		el, err := element.ByNumber(fa.AtomicNumber())
		if err != nil {
			return err
		}
		rad, spin, err := decodeSpin(fa.SpinCode())
		if err != nil {
			return err
		}

		a := NewAtom(el)
		a.RadicalElectrons = rad
		a.SpinMultiplicity = spin
		a.Charge = fa.FormalCharge()
		ids[i] = cg.AddAtom(a)

		for j := 0; j < i; j++ {
			fb, ok := src.Bond(i+1, j+1)
			if !ok {
				continue
			}
			kind, err := classifyBond(fb)
			if err != nil {
				return err
			}
			if err := cg.AddBond(ids[i], ids[j], NewBond(kind)); err != nil {
				return err
			}
		}
	}

	if err := cg.MakeHydrogensImplicit(); err != nil {
		return err
	}

	m.ResonanceForms = []*ChemGraph{cg}
	return nil
}

// ToForeign populates dst from the most stable resonance form. The remaining
// forms are not exported.
//
// The form is forced to explicit hydrogens and canonically sorted for the
// duration of the export; the sort order is permanent, while the original
// hydrogen representation is restored before returning. Radical and spin
// fields are not re-encoded: dst derives spin multiplicity from the final
// bonding pattern, an intentional asymmetry with import.
func (m *Molecule) ToForeign(dst ForeignMol) error {
	if len(m.ResonanceForms) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "molecule has no resonance forms")
	}
	cg := m.ResonanceForms[0]

	wasImplicit := cg.HasImplicitHydrogens()
	cg.MakeHydrogensExplicit()
	cg.SortAtoms()

	for _, id := range cg.AtomIDs() {
		a, _ := cg.Atom(id)
		dst.NewAtom(a.Element.Number, a.Charge)
	}

	var bondErr error
	cg.EachBond(func(a1, a2 AtomID, b *Bond) {
		if bondErr != nil {
			return
		}
		// EachBond yields each symmetric pair once with a1 < a2; after the
		// sort, IDs are the canonical 0-based indices.
		if err := dst.AddBond(int(a1)+1, int(a2)+1, b.Kind.Code()); err != nil {
			bondErr = errors.Wrap(errors.ErrCodeConversionSerialize, err, "foreign bond %d-%d", a1+1, a2+1)
		}
	})
	if bondErr != nil {
		return bondErr
	}

	if err := dst.AssignSpinMultiplicity(); err != nil {
		return errors.Wrap(errors.ErrCodeConversionSerialize, err, "assign spin multiplicity")
	}

	if wasImplicit {
		if err := cg.MakeHydrogensImplicit(); err != nil {
			return err
		}
	}
	return nil
}

// IsIsomorphic reports whether any resonance form of m is isomorphic to any
// resonance form of other. It accepts a *Molecule or a *ChemGraph; any other
// type compares as false rather than raising an error. The search
// short-circuits on the first match.
func (m *Molecule) IsIsomorphic(other any) bool {
	switch o := other.(type) {
	case *Molecule:
		if o == nil {
			return false
		}
		for _, g1 := range m.ResonanceForms {
			for _, g2 := range o.ResonanceForms {
				if g1.IsIsomorphic(g2) {
					return true
				}
			}
		}
	case *ChemGraph:
		for _, g1 := range m.ResonanceForms {
			if g1.IsIsomorphic(o) {
				return true
			}
		}
	}
	return false
}

// Formula returns the molecular formula of the most stable resonance form,
// or the empty string for a molecule with no forms.
func (m *Molecule) Formula() string {
	if len(m.ResonanceForms) == 0 {
		return ""
	}
	return m.ResonanceForms[0].Formula()
}
