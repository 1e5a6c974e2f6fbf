// Package pkg provides the core libraries for molgraph molecular structure
// conversion.
//
// # Overview
//
// Molgraph models molecules as undirected graphs of atoms and bonds and
// translates them between chemical notations. The pkg directory is organized
// into four main areas:
//
//  1. Domain model - elements, atoms, bonds, molecular graphs ([element], [mol])
//  2. Notations - foreign-model decoding and encoding ([babel], [chemio])
//  3. Output - structure diagram rendering ([render])
//  4. Infrastructure - caching, pipeline orchestration, hooks ([cache],
//     [pipeline], [observability])
//
// # Architecture
//
// The typical data flow through molgraph:
//
//	SMILES/CML/descriptor input
//	         ↓
//	    [babel] package (parse into the foreign model, add hydrogens)
//	         ↓
//	    [mol] package (import, compress hydrogens, resonance forms)
//	         ↓
//	    [chemio]/[render] packages (serialize or draw)
//	         ↓
//	    SMILES/CML/descriptor/JSON or DOT/SVG/PNG output
//
// # Quick Start
//
// Read a molecule and draw it:
//
//	m, err := chemio.ReadFile("ethanol.smi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dot := render.ToDOT(m.ResonanceForms[0], render.Options{})
//	svg, err := render.RenderSVG(dot)
//
// Or run the complete cached pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "ethanol.smi",
//	    Formats: []string{"svg"},
//	})
//
// # Main Packages
//
// [element] - Periodic table registry keyed by symbol and atomic number.
//
// [mol] - Molecule, ChemGraph, Atom, and Bond types; implicit/explicit
// hydrogen transforms; the ForeignMol adapter boundary; resonance-form
// equivalence.
//
// [graph] - Generic undirected graph arena with stable vertex identities,
// cycle detection, and isomorphism search.
//
// [babel] - The native foreign model: valence-based hydrogen addition, spin
// assignment, and parsers/writers for SMILES, CML, and layered descriptors.
//
// [chemio] - Format registry with extension detection and a JSON interchange
// codec that round-trips every resonance form.
//
// [render] - DOT generation and in-process Graphviz SVG/PNG rendering.
//
// [cache] - Content-addressed result cache (file, memory, null backends).
//
// [pipeline] - Convert → render orchestration shared by all entry points.
//
// [observability] - Hook interfaces for conversion, rendering, and cache
// events.
//
// [errors] - Structured error codes shared across the module.
//
// [buildinfo] - ldflags-injected version information.
//
// [element]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/element
// [mol]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/mol
// [graph]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/graph
// [babel]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/babel
// [chemio]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/chemio
// [render]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/render
// [cache]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/skovanen/molgraph/pkg/buildinfo
package pkg
