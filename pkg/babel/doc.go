// Package babel provides an in-memory molecular model with hydrogen and
// spin bookkeeping, plus readers and writers for three text notations:
// SMILES line notation, CML markup, and a layered linear descriptor.
//
// [Mol] implements the foreign-model boundary of package mol, so a molecule
// parsed from any of the notations can be imported with
// [github.com/skovanen/molgraph/pkg/mol.Molecule.FromForeign] and exported
// back through [Mol] for serialization.
package babel
