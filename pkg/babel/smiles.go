package babel

import (
	"strconv"
	"strings"

	"github.com/skovanen/molgraph/pkg/element"
	"github.com/skovanen/molgraph/pkg/errors"
)

// organicSubset lists the atoms SMILES may write without brackets, keyed by
// symbol. Two-letter symbols must be matched before one-letter ones.
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
	"F": true, "Cl": true, "Br": true, "I": true,
}

// aromaticSubset maps lowercase aromatic atom tokens to their symbols.
var aromaticSubset = map[byte]string{
	'b': "B", 'c': "C", 'n': "N", 'o': "O", 'p': "P", 's': "S",
}

// smilesParser walks a SMILES string left to right, tracking the previous
// atom, open branches, and pending ring-closure digits.
type smilesParser struct {
	src string
	pos int

	// prev is the 1-based index of the previous chain atom, 0 at the start;
	// stack holds branch return points and rings the open ring halves.
	mol   *Mol
	prev  int
	stack []int
	rings map[int]ring

	// pendBond holds an explicit bond symbol awaiting its right-hand atom.
	pendBond int
	hasPend  bool
}

type ring struct {
	atom int
	code int // 0 when the opening half carried no bond symbol
}

func (p *smilesParser) fail(format string, args ...any) error {
	err := errors.New(errors.ErrCodeConversionParse, format, args...)
	return errors.Wrap(errors.ErrCodeConversionParse, err, "smiles %q at offset %d", p.src, p.pos)
}

// ParseSMILES reads a subset of SMILES line notation: organic-subset atoms,
// aromatic lowercase atoms, bracket atoms with charge and hydrogen count,
// bond symbols - = # :, branches, and ring closures (single digit or %nn).
// Isotopes, stereochemistry, and disconnected structures are not supported.
func ParseSMILES(s string) (*Mol, error) {
	p := &smilesParser{
		src:   strings.TrimSpace(s),
		mol:   New(),
		rings: map[int]ring{},
	}
	if p.src == "" {
		return nil, p.fail("empty input")
	}
	for p.pos < len(p.src) {
		if err := p.step(); err != nil {
			return nil, err
		}
	}
	if len(p.stack) != 0 {
		return nil, p.fail("unclosed branch")
	}
	if len(p.rings) != 0 {
		return nil, p.fail("unclosed ring bond")
	}
	return p.mol, nil
}

func (p *smilesParser) step() error {
	c := p.src[p.pos]
	switch {
	case c == '(':
		if p.prev == 0 {
			return p.fail("branch before any atom")
		}
		p.stack = append(p.stack, p.prev)
		p.pos++
	case c == ')':
		if len(p.stack) == 0 {
			return p.fail("unbalanced ')'")
		}
		p.prev = p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		p.pos++
	case c == '-' || c == '=' || c == '#' || c == ':':
		if p.hasPend {
			return p.fail("two bond symbols in a row")
		}
		p.pendBond = map[byte]int{'-': OrderSingle, '=': OrderDouble, '#': OrderTriple, ':': OrderAromatic}[c]
		p.hasPend = true
		p.pos++
	case c >= '0' && c <= '9':
		p.pos++
		return p.closeRing(int(c - '0'))
	case c == '%':
		if p.pos+2 >= len(p.src) {
			return p.fail("truncated %%nn ring number")
		}
		n, err := strconv.Atoi(p.src[p.pos+1 : p.pos+3])
		if err != nil {
			return p.fail("bad %%nn ring number")
		}
		p.pos += 3
		return p.closeRing(n)
	case c == '[':
		return p.bracketAtom()
	default:
		return p.organicAtom()
	}
	return nil
}

// closeRing pairs a ring number with its earlier opening, or records a new
// opening half.
func (p *smilesParser) closeRing(n int) error {
	if p.prev == 0 {
		return p.fail("ring number before any atom")
	}
	open, ok := p.rings[n]
	if !ok {
		code := 0
		if p.hasPend {
			code = p.pendBond
			p.hasPend = false
		}
		p.rings[n] = ring{atom: p.prev, code: code}
		return nil
	}
	delete(p.rings, n)

	code := open.code
	if p.hasPend {
		code = p.pendBond
		p.hasPend = false
	}
	if code == 0 {
		code = p.defaultOrder(open.atom, p.prev)
	}
	return p.mol.AddBond(open.atom, p.prev, code)
}

// defaultOrder picks the bond order used when no symbol was written: aromatic
// between two aromatic atoms, single otherwise.
func (p *smilesParser) defaultOrder(i, j int) int {
	if p.mol.AtomAt(i).Aromatic && p.mol.AtomAt(j).Aromatic {
		return OrderAromatic
	}
	return OrderSingle
}

// attach adds the freshly created atom (the current last index) to the chain.
func (p *smilesParser) attach() error {
	idx := p.mol.NumAtoms()
	if p.prev != 0 {
		code := p.defaultOrder(p.prev, idx)
		if p.hasPend {
			code = p.pendBond
			p.hasPend = false
		}
		if err := p.mol.AddBond(p.prev, idx, code); err != nil {
			return err
		}
	} else if p.hasPend {
		return p.fail("bond symbol before any atom")
	}
	p.prev = idx
	return nil
}

func (p *smilesParser) organicAtom() error {
	c := p.src[p.pos]

	if sym, ok := aromaticSubset[c]; ok {
		p.pos++
		el, err := element.BySymbol(sym)
		if err != nil {
			return err
		}
		p.mol.NewAtom(el.Number, 0)
		p.mol.AtomAt(p.mol.NumAtoms()).Aromatic = true
		return p.attach()
	}

	// Two-letter organic symbols first (Cl, Br).
	sym := ""
	if p.pos+1 < len(p.src) && organicSubset[p.src[p.pos:p.pos+2]] {
		sym = p.src[p.pos : p.pos+2]
	} else if organicSubset[string(c)] {
		sym = string(c)
	} else {
		return p.fail("unexpected character %q", string(c))
	}
	p.pos += len(sym)

	el, err := element.BySymbol(sym)
	if err != nil {
		return err
	}
	p.mol.NewAtom(el.Number, 0)
	return p.attach()
}

// bracketAtom parses [<symbol><Hn><charge>], e.g. [NH4+], [O-], [nH].
func (p *smilesParser) bracketAtom() error {
	end := strings.IndexByte(p.src[p.pos:], ']')
	if end < 0 {
		return p.fail("unterminated bracket atom")
	}
	body := p.src[p.pos+1 : p.pos+end]
	p.pos += end + 1
	if body == "" {
		return p.fail("empty bracket atom")
	}

	aromatic := false
	i := 0
	var sym string
	if s, ok := aromaticSubset[body[0]]; ok {
		sym, aromatic = s, true
		i = 1
	} else {
		if body[0] < 'A' || body[0] > 'Z' {
			return p.fail("bracket atom %q has no element symbol", body)
		}
		i = 1
		for i < len(body) && body[i] >= 'a' && body[i] <= 'z' && body[i] != 'h' {
			i++
		}
		sym = body[:i]
	}

	hcount := 0
	if i < len(body) && (body[i] == 'H' || (aromatic && body[i] == 'h')) {
		i++
		hcount = 1
		start := i
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			i++
		}
		if i > start {
			n, err := strconv.Atoi(body[start:i])
			if err != nil {
				return p.fail("bad hydrogen count in %q", body)
			}
			hcount = n
		}
	}

	charge := 0
	for i < len(body) {
		sign := 0
		switch body[i] {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return p.fail("unexpected %q in bracket atom %q", string(body[i]), body)
		}
		i++
		start := i
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			i++
		}
		if i > start {
			n, err := strconv.Atoi(body[start:i])
			if err != nil {
				return p.fail("bad charge in %q", body)
			}
			charge += sign * n
		} else {
			charge += sign
		}
	}

	el, err := element.BySymbol(sym)
	if err != nil {
		return err
	}
	p.mol.NewAtom(el.Number, charge)
	idx := p.mol.NumAtoms()
	p.mol.AtomAt(idx).Aromatic = aromatic
	if err := p.attach(); err != nil {
		return err
	}
	// Bracket hydrogens become explicit leaf atoms; the chain head stays on
	// the bracket atom itself.
	for k := 0; k < hcount; k++ {
		p.mol.NewAtom(1, 0)
		if err := p.mol.AddBond(idx, p.mol.NumAtoms(), OrderSingle); err != nil {
			return err
		}
	}
	return nil
}

// WriteSMILES serializes the molecule as SMILES. Every atom is written,
// hydrogens included, so the output reflects the model verbatim; charged or
// out-of-subset atoms use bracket form. Disconnected structures fail.
func WriteSMILES(m *Mol) (string, error) {
	if m.NumAtoms() == 0 {
		return "", errors.New(errors.ErrCodeConversionSerialize, "no atoms to write")
	}

	// Ring-closure digits: one per bond revisited during the walk.
	visited := make([]bool, m.NumAtoms()+1)
	closures := map[[2]int]int{}
	nextRing := 1

	var b strings.Builder
	var walk func(at, from int) error
	walk = func(at, from int) error {
		visited[at] = true
		if err := writeSMILESAtom(&b, m, at); err != nil {
			return err
		}

		nbs := m.Neighbors(at)
		// Ring-closure digits, in neighbor order. The bond symbol is
		// repeated at both endpoints, which SMILES permits.
		for _, nb := range nbs {
			if n, ok := closures[bondKey(at, nb)]; ok {
				writeSMILESBond(&b, m, at, nb)
				b.WriteString(ringToken(n))
			}
		}

		for _, nb := range nbs {
			if nb == from || visited[nb] {
				continue
			}
			b.WriteByte('(')
			writeSMILESBond(&b, m, at, nb)
			if err := walk(nb, at); err != nil {
				return err
			}
			b.WriteByte(')')
		}
		return nil
	}

	// Pre-pass: find bonds that will not be tree edges of the depth-first
	// walk and assign them ring numbers.
	tree := map[[2]int]bool{}
	seen := make([]bool, m.NumAtoms()+1)
	var mark func(at, from int)
	mark = func(at, from int) {
		seen[at] = true
		for _, nb := range m.Neighbors(at) {
			if nb == from {
				continue
			}
			if seen[nb] {
				key := bondKey(at, nb)
				if !tree[key] {
					if _, ok := closures[key]; !ok {
						closures[key] = nextRing
						nextRing++
					}
				}
				continue
			}
			tree[bondKey(at, nb)] = true
			mark(nb, at)
		}
	}
	mark(1, 0)
	for i := 1; i <= m.NumAtoms(); i++ {
		if !seen[i] {
			return "", errors.New(errors.ErrCodeConversionSerialize, "disconnected structure")
		}
	}

	if err := walk(1, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func ringToken(n int) string {
	if n < 10 {
		return strconv.Itoa(n)
	}
	return "%" + strconv.Itoa(n)
}

func writeSMILESBond(b *strings.Builder, m *Mol, i, j int) {
	switch m.BondOrder(i, j) {
	case OrderDouble:
		b.WriteByte('=')
	case OrderTriple:
		b.WriteByte('#')
	case OrderAromatic:
		if !m.AtomAt(i).Aromatic || !m.AtomAt(j).Aromatic {
			b.WriteByte(':')
		}
	}
}

func writeSMILESAtom(b *strings.Builder, m *Mol, i int) error {
	a := m.AtomAt(i)
	el, err := element.ByNumber(a.Num)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConversionSerialize, err, "atom %d", i)
	}
	sym := el.Symbol
	if a.Aromatic {
		sym = strings.ToLower(sym)
	}

	if a.Charge == 0 && organicSubset[el.Symbol] {
		b.WriteString(sym)
		return nil
	}

	b.WriteByte('[')
	b.WriteString(sym)
	switch {
	case a.Charge == 1:
		b.WriteByte('+')
	case a.Charge == -1:
		b.WriteByte('-')
	case a.Charge > 1:
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(a.Charge))
	case a.Charge < -1:
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(-a.Charge))
	}
	b.WriteByte(']')
	return nil
}
