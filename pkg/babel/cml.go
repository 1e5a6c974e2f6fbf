package babel

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/skovanen/molgraph/pkg/element"
	"github.com/skovanen/molgraph/pkg/errors"
)

// cmlMolecule mirrors the subset of CML this package reads and writes:
// a molecule element holding an atomArray and a bondArray.
type cmlMolecule struct {
	XMLName xml.Name  `xml:"molecule"`
	ID      string    `xml:"id,attr,omitempty"`
	Atoms   []cmlAtom `xml:"atomArray>atom"`
	Bonds   []cmlBond `xml:"bondArray>bond"`
}

type cmlAtom struct {
	ID           string `xml:"id,attr"`
	ElementType  string `xml:"elementType,attr"`
	FormalCharge int    `xml:"formalCharge,attr,omitempty"`
	SpinCode     int    `xml:"spinMultiplicity,attr,omitempty"`
}

type cmlBond struct {
	AtomRefs2 string `xml:"atomRefs2,attr"`
	Order     string `xml:"order,attr"`
}

// cmlOrders maps CML bond order attributes to order codes. "A" is the CML
// aromatic marker; "1.5" appears in the wild with the same meaning.
var cmlOrders = map[string]int{
	"1": OrderSingle, "S": OrderSingle,
	"2": OrderDouble, "D": OrderDouble,
	"3": OrderTriple, "T": OrderTriple,
	"A": OrderAromatic, "1.5": OrderAromatic,
}

// ParseCML reads a single CML molecule document.
func ParseCML(r io.Reader) (*Mol, error) {
	var doc cmlMolecule
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConversionParse, err, "decode cml")
	}

	m := New()
	index := make(map[string]int, len(doc.Atoms))
	for _, a := range doc.Atoms {
		if a.ID == "" {
			return nil, errors.New(errors.ErrCodeConversionParse, "cml atom without id")
		}
		if _, dup := index[a.ID]; dup {
			return nil, errors.New(errors.ErrCodeConversionParse, "duplicate cml atom id %q", a.ID)
		}
		el, err := element.BySymbol(a.ElementType)
		if err != nil {
			return nil, err
		}
		m.NewAtom(el.Number, a.FormalCharge)
		index[a.ID] = m.NumAtoms()
		m.AtomAt(m.NumAtoms()).Spin = a.SpinCode
	}

	for _, b := range doc.Bonds {
		refs := strings.Fields(b.AtomRefs2)
		if len(refs) != 2 {
			return nil, errors.New(errors.ErrCodeConversionParse, "cml bond atomRefs2 %q is not a pair", b.AtomRefs2)
		}
		i, ok1 := index[refs[0]]
		j, ok2 := index[refs[1]]
		if !ok1 || !ok2 {
			return nil, errors.New(errors.ErrCodeConversionParse, "cml bond references unknown atom in %q", b.AtomRefs2)
		}
		code, ok := cmlOrders[b.Order]
		if !ok {
			return nil, errors.New(errors.ErrCodeConversionParse, "unrecognized cml bond order %q", b.Order)
		}
		if err := m.AddBond(i, j, code); err != nil {
			return nil, err
		}
		if code == OrderAromatic {
			m.AtomAt(i).Aromatic = true
			m.AtomAt(j).Aromatic = true
		}
	}
	return m, nil
}

// WriteCML serializes the molecule as an indented CML document.
func WriteCML(m *Mol, w io.Writer) error {
	doc := cmlMolecule{ID: "m1"}
	for i := 1; i <= m.NumAtoms(); i++ {
		a := m.AtomAt(i)
		el, err := element.ByNumber(a.Num)
		if err != nil {
			return errors.Wrap(errors.ErrCodeConversionSerialize, err, "atom %d", i)
		}
		doc.Atoms = append(doc.Atoms, cmlAtom{
			ID:           fmt.Sprintf("a%d", i),
			ElementType:  el.Symbol,
			FormalCharge: a.Charge,
			SpinCode:     a.Spin,
		})
	}

	m.EachBond(func(i, j, code int) {
		order := "1"
		switch code {
		case OrderDouble:
			order = "2"
		case OrderTriple:
			order = "3"
		case OrderAromatic:
			order = "A"
		}
		doc.Bonds = append(doc.Bonds, cmlBond{
			AtomRefs2: fmt.Sprintf("a%d a%d", i, j),
			Order:     order,
		})
	})
	// EachBond iterates a map; sort for reproducible documents.
	sort.Slice(doc.Bonds, func(a, b int) bool {
		return doc.Bonds[a].AtomRefs2 < doc.Bonds[b].AtomRefs2
	})

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeConversionSerialize, err, "encode cml")
	}
	return enc.Close()
}
