package mol

import (
	"sort"
	"strconv"
	"strings"

	"github.com/skovanen/molgraph/pkg/element"
	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/graph"
)

// AtomID addresses an atom inside a ChemGraph. IDs are stable across
// mutations but are renumbered by [ChemGraph.SortAtoms].
type AtomID = graph.VertexID

// hydrogen is resolved once; the registry always contains element 1.
var hydrogen = element.MustBySymbol("H")

// ChemGraph is a molecular structure: atoms as vertices, bonds as symmetric
// edges, plus a flag stating whether hydrogen atoms are stored as vertices
// (explicit) or as counters on their heavy neighbors (implicit).
type ChemGraph struct {
	g        *graph.Graph[*Atom, *Bond]
	implicit bool
}

// NewChemGraph creates an empty graph in explicit-hydrogen representation.
func NewChemGraph() *ChemGraph {
	return &ChemGraph{g: graph.New[*Atom, *Bond]()}
}

// HasImplicitHydrogens reports whether hydrogens are currently compressed.
func (c *ChemGraph) HasImplicitHydrogens() bool { return c.implicit }

// SetImplicitHydrogens overrides the representation flag without transforming
// the structure. Deserializers use this to restore a stored graph; everything
// else should go through the MakeHydrogens transforms.
func (c *ChemGraph) SetImplicitHydrogens(implicit bool) { c.implicit = implicit }

// AtomCount returns the number of atom vertices.
func (c *ChemGraph) AtomCount() int { return c.g.Order() }

// BondCount returns the number of bonds.
func (c *ChemGraph) BondCount() int { return c.g.Size() }

// AddAtom adds an atom with no bonds and returns its ID.
func (c *ChemGraph) AddAtom(a *Atom) AtomID { return c.g.AddVertex(a) }

// RemoveAtom removes an atom and all bonds involving it in one operation.
func (c *ChemGraph) RemoveAtom(id AtomID) error { return c.g.RemoveVertex(id) }

// Atom returns the atom stored at id.
func (c *ChemGraph) Atom(id AtomID) (*Atom, error) { return c.g.Vertex(id) }

// HasAtom reports whether id refers to an atom in the graph.
func (c *ChemGraph) HasAtom(id AtomID) bool { return c.g.HasVertex(id) }

// AtomIDs returns the IDs of all atoms in their current order.
func (c *ChemGraph) AtomIDs() []AtomID { return c.g.VertexIDs() }

// AddBond connects two atoms. The bond is stored symmetrically under both
// (a1,a2) and (a2,a1).
func (c *ChemGraph) AddBond(a1, a2 AtomID, b *Bond) error { return c.g.AddEdge(a1, a2, b) }

// RemoveBond removes the bond between two atoms, leaving the atoms in place.
func (c *ChemGraph) RemoveBond(a1, a2 AtomID) error { return c.g.RemoveEdge(a1, a2) }

// Bond returns the bond connecting two atoms.
func (c *ChemGraph) Bond(a1, a2 AtomID) (*Bond, error) { return c.g.Edge(a1, a2) }

// HasBond reports whether two atoms are connected.
func (c *ChemGraph) HasBond(a1, a2 AtomID) bool { return c.g.HasEdge(a1, a2) }

// Neighbors returns the atoms bonded to id, in deterministic order.
func (c *ChemGraph) Neighbors(id AtomID) ([]AtomID, error) { return c.g.Neighbors(id) }

// Degree returns the number of bonds involving id.
func (c *ChemGraph) Degree(id AtomID) (int, error) { return c.g.Degree(id) }

// EachBond calls fn once per bond with a1 < a2.
func (c *ChemGraph) EachBond(fn func(a1, a2 AtomID, b *Bond)) { c.g.EachEdge(fn) }

// MakeHydrogensImplicit converts explicitly stored hydrogen atoms into
// counters on their heavy-atom neighbors and removes them from the graph.
//
// If every atom is a hydrogen (e.g. the H2 molecule), the transform is a
// no-op: the only atoms present are never stripped. A hydrogen vertex whose
// degree is not exactly one violates the structural assumptions of the
// compression and fails with STRUCTURE_HYDROGEN_DEGREE before anything is
// mutated.
func (c *ChemGraph) MakeHydrogensImplicit() error {
	ids := c.AtomIDs()

	allHydrogen := true
	for _, id := range ids {
		a, _ := c.Atom(id)
		if a.IsNonHydrogen() {
			allHydrogen = false
			break
		}
	}
	if allHydrogen && len(ids) > 0 {
		return nil
	}

	// Phase one: plan. Validate degrees, find each hydrogen's neighbor, and
	// record the counter increments without touching the vertex set.
	type plan struct {
		hydrogen AtomID
		neighbor *Atom
	}
	var plans []plan
	for _, id := range ids {
		a, _ := c.Atom(id)
		if !a.IsHydrogen() {
			continue
		}
		deg, _ := c.Degree(id)
		if deg != 1 {
			return errors.New(errors.ErrCodeStructureHydrogen,
				"hydrogen atom %s has %d bonds, expected exactly 1", a, deg)
		}
		nbs, _ := c.Neighbors(id)
		nb, _ := c.Atom(nbs[0])
		plans = append(plans, plan{hydrogen: id, neighbor: nb})
	}

	// Phase two: apply. Removing the vertex also removes its bond.
	for _, p := range plans {
		p.neighbor.ImplicitHydrogens++
		_ = c.RemoveAtom(p.hydrogen)
	}

	c.implicit = true
	return nil
}

// MakeHydrogensExplicit converts implicit hydrogen counters back into
// hydrogen vertices, each connected to its heavy atom by one single bond.
// Planning spans all atoms before any vertex is added, so the scan never
// iterates a growing collection.
func (c *ChemGraph) MakeHydrogensExplicit() {
	var heavy []AtomID
	for _, id := range c.AtomIDs() {
		a, _ := c.Atom(id)
		for a.ImplicitHydrogens > 0 {
			heavy = append(heavy, id)
			a.ImplicitHydrogens--
		}
	}

	for _, id := range heavy {
		h := c.AddAtom(NewAtom(hydrogen))
		_ = c.AddBond(h, id, NewBond(Single))
	}

	c.implicit = false
}

// SortAtoms orders the atoms canonically, so serialized output is
// reproducible for a given structure. Atom IDs held before the call are
// invalid afterwards; after sorting, IDs run 0..AtomCount-1 in canonical
// order.
func (c *ChemGraph) SortAtoms() {
	c.g.Sort(compareAtoms)
}

// Copy returns a copy of the graph. A deep copy has independently-identified
// atoms and bonds; a shallow copy shares them with the receiver, so mutating
// an atom through one graph is visible through the other. Both carry the
// receiver's representation flag.
func (c *ChemGraph) Copy(deep bool) *ChemGraph {
	out := &ChemGraph{implicit: c.implicit}
	if deep {
		out.g = c.g.Clone((*Atom).Copy, (*Bond).Copy)
	} else {
		out.g = c.g.Clone(nil, nil)
	}
	return out
}

// IsAtomInCycle reports whether the atom lies on one or more cycles.
func (c *ChemGraph) IsAtomInCycle(id AtomID) (bool, error) {
	return c.g.VertexInCycle(id)
}

// IsBondInCycle reports whether the bond between two atoms lies on a cycle.
func (c *ChemGraph) IsBondInCycle(a1, a2 AtomID) (bool, error) {
	return c.g.EdgeInCycle(a1, a2)
}

// IsIsomorphic reports whether the receiver and other are isomorphic,
// matching atoms with [Atom.Equivalent] and bonds with [Bond.Equivalent].
// Both graphs should be in the same hydrogen representation for the result
// to be chemically meaningful.
func (c *ChemGraph) IsIsomorphic(other *ChemGraph) bool {
	if other == nil {
		return false
	}
	return graph.Isomorphic(c.g, other.g, (*Atom).Equivalent, (*Bond).Equivalent)
}

// Formula returns the molecular formula in Hill order: carbon first, then
// hydrogen, then the remaining elements alphabetically. Implicit hydrogens
// are counted.
func (c *ChemGraph) Formula() string {
	counts := make(map[string]int)
	for _, id := range c.AtomIDs() {
		a, _ := c.Atom(id)
		counts[a.Element.Symbol]++
		counts["H"] += a.ImplicitHydrogens
	}
	if counts["H"] == 0 {
		delete(counts, "H")
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
