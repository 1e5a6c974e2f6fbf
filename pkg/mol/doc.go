// Package mol models molecular structure as an attributed graph.
//
// # Types
//
// [Atom] and [Bond] are the chemistry-typed payloads stored in a [ChemGraph],
// which specializes the generic container from pkg/graph and adds the
// implicit/explicit hydrogen transform. A [Molecule] holds an ordered list of
// ChemGraph resonance forms (sorted by decreasing stability as supplied by
// the caller; this package never computes or verifies that ordering) and the
// adapter to and from a foreign molecular model.
//
// # Hydrogen compression
//
// A ChemGraph stores hydrogens either as vertices of their own (explicit) or
// as integer counters on their heavy-atom neighbors (implicit). The two
// transforms [ChemGraph.MakeHydrogensImplicit] and
// [ChemGraph.MakeHydrogensExplicit] toggle between the representations in
// place. Both run in two phases, planning every change before mutating the
// vertex set, so the collection is never modified while being scanned.
//
// # Foreign model boundary
//
// Import and export go through the [ForeignMol] interface rather than a
// concrete external library, keeping the adapter testable in isolation.
// pkg/babel provides the production implementation together with its text
// formats.
//
// None of the types in this package are safe for concurrent use; every
// Molecule exclusively owns its resonance forms and every ChemGraph owns its
// vertex and edge collections, except where a shallow copy deliberately
// aliases them.
package mol
