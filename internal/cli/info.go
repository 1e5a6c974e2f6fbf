package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skovanen/molgraph/pkg/chemio"
	"github.com/skovanen/molgraph/pkg/mol"
)

// infoCommand creates the info command for printing molecule composition.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print formula and composition of a molecule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := chemio.ReadFile(args[0])
			if err != nil {
				return err
			}
			printMoleculeInfo(args[0], m)
			return nil
		},
	}
}

// printMoleculeInfo prints the composition summary for a molecule.
func printMoleculeInfo(path string, m *mol.Molecule) {
	atoms, bonds := moleculeSize(m)

	fmt.Println(StyleTitle.Render(path))
	printKeyValue("Formula", m.Formula())
	printKeyValue("Atoms", fmt.Sprintf("%d", atoms))
	printKeyValue("Bonds", fmt.Sprintf("%d", bonds))
	printKeyValue("Forms", fmt.Sprintf("%d", len(m.ResonanceForms)))

	if len(m.ResonanceForms) == 0 {
		return
	}
	g := m.ResonanceForms[0]

	charge := 0
	radicals := 0
	elements := map[string]int{}
	for _, id := range g.AtomIDs() {
		a, err := g.Atom(id)
		if err != nil {
			continue
		}
		charge += a.Charge
		radicals += a.RadicalElectrons
		elements[a.Element.Symbol]++
		elements["H"] += a.ImplicitHydrogens
	}
	if elements["H"] == 0 {
		delete(elements, "H")
	}

	printKeyValue("Charge", fmt.Sprintf("%+d", charge))
	if radicals > 0 {
		printKeyValue("Radicals", fmt.Sprintf("%d", radicals))
	}
	printKeyValue("Elements", formatElements(elements))
}

// formatElements renders an element histogram as "C×2 H×6 O×1" in sorted order.
func formatElements(counts map[string]int) string {
	symbols := make([]string, 0, len(counts))
	for sym := range counts {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	parts := make([]string, len(symbols))
	for i, sym := range symbols {
		parts[i] = fmt.Sprintf("%s×%d", sym, counts[sym])
	}
	return strings.Join(parts, " ")
}

// moleculeSize returns atom and bond counts of the most stable form.
func moleculeSize(m *mol.Molecule) (atoms, bonds int) {
	if len(m.ResonanceForms) == 0 {
		return 0, 0
	}
	return m.ResonanceForms[0].AtomCount(), m.ResonanceForms[0].BondCount()
}
