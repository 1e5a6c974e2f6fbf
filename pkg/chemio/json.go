package chemio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/mol"
)

var kindToString = map[mol.BondKind]string{
	mol.Single:   "single",
	mol.Double:   "double",
	mol.Triple:   "triple",
	mol.Aromatic: "aromatic",
}

var kindFromString = map[string]mol.BondKind{
	"single":   mol.Single,
	"double":   mol.Double,
	"triple":   mol.Triple,
	"aromatic": mol.Aromatic,
}

type jsonMolecule struct {
	Forms []jsonForm `json:"forms"`
}

type jsonForm struct {
	ImplicitHydrogens bool       `json:"implicit_hydrogens"`
	Atoms             []jsonAtom `json:"atoms"`
	Bonds             []jsonBond `json:"bonds"`
}

type jsonAtom struct {
	Element   string `json:"element"`
	Charge    int    `json:"charge,omitempty"`
	Hydrogens int    `json:"hydrogens,omitempty"`
	Radicals  int    `json:"radicals,omitempty"`
	Spin      int    `json:"spin,omitempty"`
	Label     string `json:"label,omitempty"`
}

type jsonBond struct {
	A1   int    `json:"a1"`
	A2   int    `json:"a2"`
	Kind string `json:"kind"`
}

// WriteJSON encodes a molecule with all its resonance forms as JSON. Atom
// references in the bond list are positions in the form's atom array, so the
// output is independent of internal graph identifiers and can be re-imported
// with [ReadJSON] for round-trip processing.
func WriteJSON(m *mol.Molecule, w io.Writer) error {
	out := jsonMolecule{Forms: make([]jsonForm, len(m.ResonanceForms))}

	for fi, cg := range m.ResonanceForms {
		form := jsonForm{
			ImplicitHydrogens: cg.HasImplicitHydrogens(),
			Atoms:             make([]jsonAtom, 0, cg.AtomCount()),
			Bonds:             make([]jsonBond, 0, cg.BondCount()),
		}

		pos := make(map[mol.AtomID]int, cg.AtomCount())
		for i, id := range cg.AtomIDs() {
			a, err := cg.Atom(id)
			if err != nil {
				return errors.Wrap(errors.ErrCodeConversionSerialize, err, "form %d atom %d", fi, id)
			}
			pos[id] = i
			form.Atoms = append(form.Atoms, jsonAtom{
				Element:   a.Element.Symbol,
				Charge:    a.Charge,
				Hydrogens: a.ImplicitHydrogens,
				Radicals:  a.RadicalElectrons,
				Spin:      a.SpinMultiplicity,
				Label:     a.Label,
			})
		}

		cg.EachBond(func(a1, a2 mol.AtomID, b *mol.Bond) {
			form.Bonds = append(form.Bonds, jsonBond{
				A1:   pos[a1],
				A2:   pos[a2],
				Kind: kindToString[b.Kind],
			})
		})
		out.Forms[fi] = form
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeConversionSerialize, err, "encode json")
	}
	return nil
}

// ReadJSON decodes a molecule from its JSON form. Bond references must be in
// range and bond kinds one of single, double, triple, aromatic; elements are
// resolved through the registry and unknown symbols fail.
func ReadJSON(r io.Reader) (*mol.Molecule, error) {
	var data jsonMolecule
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConversionParse, err, "decode json")
	}

	m := mol.NewMolecule()
	for fi, form := range data.Forms {
		cg := mol.NewChemGraph()
		ids := make([]mol.AtomID, len(form.Atoms))
		for i, a := range form.Atoms {
			atom, err := mol.NewAtomSymbol(a.Element)
			if err != nil {
				return nil, err
			}
			atom.Charge = a.Charge
			atom.ImplicitHydrogens = a.Hydrogens
			atom.RadicalElectrons = a.Radicals
			if a.Spin != 0 {
				atom.SpinMultiplicity = a.Spin
			}
			atom.Label = a.Label
			ids[i] = cg.AddAtom(atom)
		}

		for _, b := range form.Bonds {
			if b.A1 < 0 || b.A1 >= len(ids) || b.A2 < 0 || b.A2 >= len(ids) {
				return nil, errors.New(errors.ErrCodeConversionParse,
					"form %d bond %d-%d references a missing atom", fi, b.A1, b.A2)
			}
			kind, ok := kindFromString[b.Kind]
			if !ok {
				return nil, errors.New(errors.ErrCodeConversionParse,
					"form %d has unrecognized bond kind %q", fi, b.Kind)
			}
			if err := cg.AddBond(ids[b.A1], ids[b.A2], mol.NewBond(kind)); err != nil {
				return nil, errors.Wrap(errors.ErrCodeConversionParse, err, "form %d bond %d-%d", fi, b.A1, b.A2)
			}
		}

		cg.SetImplicitHydrogens(form.ImplicitHydrogens)
		m.ResonanceForms = append(m.ResonanceForms, cg)
	}
	return m, nil
}

// ExportJSON writes a molecule to a JSON file at path.
func ExportJSON(m *mol.Molecule, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(m, f)
}

// ImportJSON reads a JSON file at path and returns the decoded molecule.
func ImportJSON(path string) (*mol.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
