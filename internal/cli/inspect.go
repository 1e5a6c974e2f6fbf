package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/skovanen/molgraph/pkg/chemio"
	"github.com/skovanen/molgraph/pkg/mol"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command, an interactive atom browser.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Browse atoms and bonds interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := chemio.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(m.ResonanceForms) == 0 {
				return fmt.Errorf("%s: molecule has no resonance forms", args[0])
			}
			model := NewAtomListModel(args[0], m)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// =============================================================================
// AtomListModel - Interactive atom browser
// =============================================================================

// atomRow is one displayable atom with its precomputed neighbor summary.
type atomRow struct {
	ID        mol.AtomID
	Atom      *mol.Atom
	Neighbors []string // "single C2", "double O3", ...
	InCycle   bool
}

// AtomListModel is the bubbletea model for browsing a molecule's atoms.
type AtomListModel struct {
	Title  string
	Rows   []atomRow
	Cursor int
	Height int
	Offset int
}

// NewAtomListModel builds the browser model from the most stable form.
func NewAtomListModel(title string, m *mol.Molecule) AtomListModel {
	g := m.ResonanceForms[0]
	ids := g.AtomIDs()

	// Stable display positions for neighbor references.
	pos := make(map[mol.AtomID]int, len(ids))
	for i, id := range ids {
		pos[id] = i + 1
	}

	rows := make([]atomRow, 0, len(ids))
	for _, id := range ids {
		a, err := g.Atom(id)
		if err != nil {
			continue
		}
		row := atomRow{ID: id, Atom: a}
		if neighbors, err := g.Neighbors(id); err == nil {
			for _, n := range neighbors {
				na, err := g.Atom(n)
				if err != nil {
					continue
				}
				if b, err := g.Bond(id, n); err == nil {
					row.Neighbors = append(row.Neighbors,
						fmt.Sprintf("%s %s%d", b.Kind, na.Element.Symbol, pos[n]))
				}
			}
		}
		if inCycle, err := g.IsAtomInCycle(id); err == nil {
			row.InCycle = inCycle
		}
		rows = append(rows, row)
	}

	return AtomListModel{
		Title:  fmt.Sprintf("%s  %s", title, m.Formula()),
		Rows:   rows,
		Height: 15,
	}
}

func (m AtomListModel) Init() tea.Cmd {
	return nil
}

func (m AtomListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m AtomListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		line := m.rowLine(i)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailLine())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// rowLine formats one atom list entry.
func (m AtomListModel) rowLine(i int) string {
	row := m.Rows[i]
	cursor := "  "
	if i == m.Cursor {
		cursor = "▸ "
	}

	label := atomSummary(row.Atom)
	marks := ""
	if row.InCycle {
		marks = listDimStyle.Render(" ○")
	}
	return fmt.Sprintf("%s%-3d %-10s%s", cursor, i+1, label, marks)
}

// detailLine formats the neighbor panel for the cursor atom.
func (m AtomListModel) detailLine() string {
	if len(m.Rows) == 0 {
		return ""
	}
	row := m.Rows[m.Cursor]
	a := row.Atom

	parts := []string{
		fmt.Sprintf("Z=%d", a.Element.Number),
		fmt.Sprintf("%.3f g/mol", a.Element.Mass),
	}
	if a.RadicalElectrons > 0 {
		parts = append(parts, fmt.Sprintf("%d unpaired", a.RadicalElectrons))
	}
	if a.SpinMultiplicity > 1 {
		parts = append(parts, fmt.Sprintf("multiplicity %d", a.SpinMultiplicity))
	}
	if a.Label != "" {
		parts = append(parts, fmt.Sprintf("%q", a.Label))
	}
	if len(row.Neighbors) > 0 {
		parts = append(parts, "bonds: "+strings.Join(row.Neighbors, ", "))
	}
	return "  " + StyleDim.Render(strings.Join(parts, " · "))
}

// atomSummary formats an atom as "O-", "NH4+", "CH3" depending on its state.
func atomSummary(a *mol.Atom) string {
	s := a.Element.Symbol
	if a.ImplicitHydrogens == 1 {
		s += "H"
	} else if a.ImplicitHydrogens > 1 {
		s += fmt.Sprintf("H%d", a.ImplicitHydrogens)
	}
	switch {
	case a.Charge > 1:
		s += fmt.Sprintf("+%d", a.Charge)
	case a.Charge == 1:
		s += "+"
	case a.Charge == -1:
		s += "-"
	case a.Charge < -1:
		s += fmt.Sprintf("%d", a.Charge)
	}
	return s
}
