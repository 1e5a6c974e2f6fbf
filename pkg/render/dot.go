package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/skovanen/molgraph/pkg/mol"
)

// Options configures structure diagram rendering.
type Options struct {
	// Detailed includes radical and spin state in atom labels.
	// When false, only the symbol, implicit hydrogens, and charge are shown.
	Detailed bool

	// CarbonLabels forces symbol labels on carbon atoms. The default leaves
	// plain carbons as small unlabeled junction dots, skeletal-formula style.
	CarbonLabels bool
}

// cpkColors maps element symbols to the fill colors of the usual CPK
// convention. Elements not listed render light pink.
var cpkColors = map[string]string{
	"H":  "#ffffff",
	"C":  "#909090",
	"N":  "#3050f8",
	"O":  "#ff0d0d",
	"F":  "#90e050",
	"Cl": "#1ff01f",
	"Br": "#a62929",
	"I":  "#940094",
	"P":  "#ff8000",
	"S":  "#ffff30",
	"B":  "#ffb5b5",
}

const defaultColor = "#ffc0cb"

// ToDOT converts a molecular graph to Graphviz DOT source for structure
// diagram rendering. The result can be rendered with [RenderSVG] or
// [RenderPNG], or processed by external Graphviz tools.
func ToDOT(g *mol.ChemGraph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph M {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14, fixedsize=true, width=0.45];\n")
	buf.WriteString("\n")

	for _, id := range g.AtomIDs() {
		a, err := g.Atom(id)
		if err != nil {
			continue
		}
		attrs := atomAttrs(a, opts)
		fmt.Fprintf(&buf, "  a%d [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	g.EachBond(func(a1, a2 mol.AtomID, b *mol.Bond) {
		attrs := bondAttrs(b)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  a%d -- a%d;\n", a1, a2)
			return
		}
		fmt.Fprintf(&buf, "  a%d -- a%d [%s];\n", a1, a2, strings.Join(attrs, ", "))
	})

	buf.WriteString("}\n")
	return buf.String()
}

func atomAttrs(a *mol.Atom, opts Options) []string {
	label := atomLabel(a, opts)
	attrs := []string{fmt.Sprintf("label=%q", label)}

	color, ok := cpkColors[a.Element.Symbol]
	if !ok {
		color = defaultColor
	}
	attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color))
	if a.Element.Symbol == "N" || a.Element.Symbol == "O" || a.Element.Symbol == "I" || a.Element.Symbol == "Br" {
		attrs = append(attrs, "fontcolor=white")
	}

	if label == "" {
		attrs = append(attrs, "shape=point", "width=0.08")
	}
	return attrs
}

func atomLabel(a *mol.Atom, opts Options) string {
	plainCarbon := a.IsCarbon() && a.Charge == 0 && a.RadicalElectrons == 0 && a.ImplicitHydrogens == 0
	if plainCarbon && !opts.CarbonLabels && !opts.Detailed {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.Element.Symbol)
	if a.ImplicitHydrogens == 1 {
		b.WriteString("H")
	} else if a.ImplicitHydrogens > 1 {
		b.WriteString("H" + strconv.Itoa(a.ImplicitHydrogens))
	}
	switch {
	case a.Charge == 1:
		b.WriteString("+")
	case a.Charge == -1:
		b.WriteString("-")
	case a.Charge > 1:
		b.WriteString("+" + strconv.Itoa(a.Charge))
	case a.Charge < -1:
		b.WriteString(strconv.Itoa(a.Charge))
	}
	if opts.Detailed && a.RadicalElectrons > 0 {
		fmt.Fprintf(&b, "\nrad %d, mult %d", a.RadicalElectrons, a.SpinMultiplicity)
	}
	return b.String()
}

func bondAttrs(b *mol.Bond) []string {
	switch b.Kind {
	case mol.Double:
		// Parallel lines via a color list.
		return []string{`color="black:black"`}
	case mol.Triple:
		return []string{`color="black:black:black"`}
	case mol.Aromatic:
		return []string{"style=dashed"}
	}
	return nil
}
