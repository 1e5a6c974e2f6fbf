// Package render draws molecular graphs as 2D structure diagrams.
//
// # Overview
//
// A [mol.ChemGraph] is converted to Graphviz DOT source with [ToDOT], then
// rendered in process with [RenderSVG] or [RenderPNG]:
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(dot)
//
// [WriteFile] dispatches on the output extension (.dot, .svg, .png) so CLI
// callers can pass a bare path.
//
// # Layout
//
// Molecules are undirected graphs, so the DOT output uses neato's
// force-directed layout rather than ranked layering. Atoms are colored by
// element following the usual CPK convention; double and triple bonds are
// drawn as parallel lines and aromatic bonds dashed.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external Graphviz installation is required.
//
// [mol.ChemGraph]: github.com/skovanen/molgraph/pkg/mol.ChemGraph
package render
