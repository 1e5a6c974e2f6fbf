// Package pipeline provides the core conversion pipeline for molgraph.
//
// This package implements the complete decode → convert → render pipeline
// used by the CLI. Centralizing it keeps caching and validation behavior
// identical across every entry point.
//
// # Architecture
//
// The pipeline consists of two cacheable stages:
//
//  1. Convert: Decode the input notation into a molecule with compressed
//     hydrogens (the decode and the foreign-model import run as one unit).
//  2. Render: Draw the most stable resonance form in the requested output
//     formats (dot, svg, png).
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "ethanol.smi",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/skovanen/molgraph/pkg/cache"
	"github.com/skovanen/molgraph/pkg/chemio"
	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/render"
)

// Default values shared by every pipeline entry point.
const (
	// DefaultFormat is used when neither Format nor a detectable input path
	// is given.
	DefaultFormat = chemio.FormatSMILES
)

// renderFormats are the accepted render output formats.
var renderFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// Options controls a pipeline run.
type Options struct {
	// Input is a path to a molecule file. Exactly one of Input and Source
	// must be set.
	Input string

	// Source is inline molecule text in the given Format.
	Source string

	// Format names the input notation. When empty it is detected from the
	// Input extension, or defaults to SMILES for inline Source.
	Format string

	// Formats lists the render outputs to produce (dot, svg, png).
	// Empty means skip the render stage.
	Formats []string

	// Detailed and CarbonLabels are forwarded to the renderer.
	Detailed     bool
	CarbonLabels bool

	// Refresh bypasses the cache for this run and overwrites stored entries.
	Refresh bool

	// Logger receives stage progress. Set by the Runner when nil.
	Logger *log.Logger

	// resolved input format, filled by ValidateAndSetDefaults.
	format chemio.Format
	// resolved source text, filled by ValidateAndSetDefaults.
	source string
}

// ValidateAndSetDefaults checks the options and resolves the input format
// and source text. It reads Input from disk, so a missing file fails here
// rather than mid-pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if (o.Input == "") == (o.Source == "") {
		return errors.New(errors.ErrCodeInvalidInput, "exactly one of Input and Source must be set")
	}

	for _, f := range o.Formats {
		if !renderFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unknown render format %q (supported: dot, svg, png)", f)
		}
	}

	switch {
	case o.Format != "":
		f, err := chemio.ParseFormat(o.Format)
		if err != nil {
			return err
		}
		o.format = f
	case o.Input != "":
		f, err := chemio.DetectFormat(o.Input)
		if err != nil {
			return err
		}
		o.format = f
	default:
		o.format = DefaultFormat
	}

	if o.Input != "" {
		data, err := os.ReadFile(o.Input)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", o.Input)
		}
		o.source = string(data)
	} else {
		o.source = o.Source
	}
	if strings.TrimSpace(o.source) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "empty molecule input")
	}
	return nil
}

// RenderOptions returns the render options derived from the pipeline options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{Detailed: o.Detailed, CarbonLabels: o.CarbonLabels}
}

// renderKeyOpts returns the cache key options for one render format.
func (o *Options) renderKeyOpts(format string) cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:       format,
		Detailed:     o.Detailed,
		CarbonLabels: o.CarbonLabels,
	}
}
