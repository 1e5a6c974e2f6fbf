package babel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/skovanen/molgraph/pkg/element"
	"github.com/skovanen/molgraph/pkg/errors"
)

// descriptorPrefix versions the layered descriptor notation.
const descriptorPrefix = "MG=1"

// Layered linear descriptor. A molecule is one line of slash-separated
// layers:
//
//	MG=1/<formula>/a<symbols>/c<bonds>[/q<charges>][/s<spins>]
//
// The a layer lists element symbols in atom-index order, comma separated.
// The c layer lists bonds as index pairs joined by an order character
// (- = # ~, with ~ aromatic), comma separated, omitted when there are no
// bonds. The q and s layers carry index:value pairs for nonzero formal
// charges and spin codes. Indices are 1-based. The formula layer is
// informational and not parsed back.

// WriteDescriptor serializes the molecule as a descriptor line.
func WriteDescriptor(m *Mol) (string, error) {
	if m.NumAtoms() == 0 {
		return "", errors.New(errors.ErrCodeConversionSerialize, "no atoms to write")
	}

	var layers []string
	layers = append(layers, descriptorPrefix, descriptorFormula(m))

	syms := make([]string, 0, m.NumAtoms())
	for i := 1; i <= m.NumAtoms(); i++ {
		el, err := element.ByNumber(m.AtomAt(i).Num)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeConversionSerialize, err, "atom %d", i)
		}
		syms = append(syms, el.Symbol)
	}
	layers = append(layers, "a"+strings.Join(syms, ","))

	var bonds []string
	m.EachBond(func(i, j, code int) {
		sep := map[int]string{OrderSingle: "-", OrderDouble: "=", OrderTriple: "#", OrderAromatic: "~"}[code]
		bonds = append(bonds, fmt.Sprintf("%d%s%d", i, sep, j))
	})
	if len(bonds) > 0 {
		sort.Strings(bonds)
		layers = append(layers, "c"+strings.Join(bonds, ","))
	}

	var charges, spins []string
	for i := 1; i <= m.NumAtoms(); i++ {
		a := m.AtomAt(i)
		if a.Charge != 0 {
			charges = append(charges, fmt.Sprintf("%d:%+d", i, a.Charge))
		}
		if a.Spin != 0 {
			spins = append(spins, fmt.Sprintf("%d:%d", i, a.Spin))
		}
	}
	if len(charges) > 0 {
		layers = append(layers, "q"+strings.Join(charges, ","))
	}
	if len(spins) > 0 {
		layers = append(layers, "s"+strings.Join(spins, ","))
	}

	return strings.Join(layers, "/"), nil
}

// ParseDescriptor reads a descriptor line back into a molecule.
func ParseDescriptor(s string) (*Mol, error) {
	s = strings.TrimSpace(s)
	layers := strings.Split(s, "/")
	if len(layers) < 3 || layers[0] != descriptorPrefix {
		return nil, errors.New(errors.ErrCodeConversionParse, "not a %s descriptor: %q", descriptorPrefix, s)
	}

	m := New()
	seenAtoms := false
	for _, layer := range layers[2:] {
		if layer == "" {
			return nil, errors.New(errors.ErrCodeConversionParse, "empty descriptor layer in %q", s)
		}
		tag, body := layer[0], layer[1:]
		switch tag {
		case 'a':
			for _, sym := range strings.Split(body, ",") {
				el, err := element.BySymbol(sym)
				if err != nil {
					return nil, err
				}
				m.NewAtom(el.Number, 0)
			}
			seenAtoms = true
		case 'c':
			if !seenAtoms {
				return nil, errors.New(errors.ErrCodeConversionParse, "c layer before a layer in %q", s)
			}
			if err := parseDescriptorBonds(m, body); err != nil {
				return nil, err
			}
		case 'q':
			if err := parseDescriptorPairs(body, func(i, v int) error {
				a := m.AtomAt(i)
				if a == nil {
					return errors.New(errors.ErrCodeConversionParse, "q layer index %d out of range", i)
				}
				a.Charge = v
				return nil
			}); err != nil {
				return nil, err
			}
		case 's':
			if err := parseDescriptorPairs(body, func(i, v int) error {
				a := m.AtomAt(i)
				if a == nil {
					return errors.New(errors.ErrCodeConversionParse, "s layer index %d out of range", i)
				}
				a.Spin = v
				return nil
			}); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New(errors.ErrCodeConversionParse, "unrecognized descriptor layer %q", layer)
		}
	}
	if !seenAtoms {
		return nil, errors.New(errors.ErrCodeConversionParse, "descriptor %q has no atom layer", s)
	}
	return m, nil
}

func parseDescriptorBonds(m *Mol, body string) error {
	for _, tok := range strings.Split(body, ",") {
		if tok == "" {
			return errors.New(errors.ErrCodeConversionParse, "empty bond token")
		}
		// Skip position 0 so the order character always has an index before it.
		sep := strings.IndexAny(tok[1:], "-=#~")
		if sep < 0 {
			return errors.New(errors.ErrCodeConversionParse, "bad bond token %q", tok)
		}
		sep++
		i, err1 := strconv.Atoi(tok[:sep])
		j, err2 := strconv.Atoi(tok[sep+1:])
		if err1 != nil || err2 != nil {
			return errors.New(errors.ErrCodeConversionParse, "bad bond token %q", tok)
		}
		code := map[byte]int{'-': OrderSingle, '=': OrderDouble, '#': OrderTriple, '~': OrderAromatic}[tok[sep]]
		if err := m.AddBond(i, j, code); err != nil {
			return err
		}
		if code == OrderAromatic {
			m.AtomAt(i).Aromatic = true
			m.AtomAt(j).Aromatic = true
		}
	}
	return nil
}

func parseDescriptorPairs(body string, set func(i, v int) error) error {
	for _, tok := range strings.Split(body, ",") {
		idx, val, ok := strings.Cut(tok, ":")
		if !ok {
			return errors.New(errors.ErrCodeConversionParse, "bad index:value token %q", tok)
		}
		i, err1 := strconv.Atoi(idx)
		v, err2 := strconv.Atoi(val)
		if err1 != nil || err2 != nil {
			return errors.New(errors.ErrCodeConversionParse, "bad index:value token %q", tok)
		}
		if err := set(i, v); err != nil {
			return err
		}
	}
	return nil
}

// descriptorFormula computes the Hill-order formula of the explicit atoms.
func descriptorFormula(m *Mol) string {
	counts := map[string]int{}
	for i := 1; i <= m.NumAtoms(); i++ {
		if el, err := element.ByNumber(m.AtomAt(i).Num); err == nil {
			counts[el.Symbol]++
		}
	}

	symbols := make([]string, 0, len(counts))
	for s := range counts {
		if s != "C" && s != "H" {
			symbols = append(symbols, s)
		}
	}
	sort.Strings(symbols)
	if counts["H"] > 0 {
		symbols = append([]string{"H"}, symbols...)
	}
	if counts["C"] > 0 {
		symbols = append([]string{"C"}, symbols...)
	}

	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if counts[s] > 1 {
			b.WriteString(strconv.Itoa(counts[s]))
		}
	}
	return b.String()
}
