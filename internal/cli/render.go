package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skovanen/molgraph/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string   // output file path (or base path for multiple formats)
	formats      []string // output formats: "dot", "svg", "png"
	detailed     bool     // annotate atoms with radical and spin values
	carbonLabels bool     // label plain carbons with their symbol
	refresh      bool     // bypass the result cache
	noCache      bool     // disable caching entirely
}

// renderCommand creates the render command for drawing structure diagrams.
//
// Default settings come from the user config: format svg, skeletal carbon
// style (plain carbons drawn as points).
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		detailed:     c.Config.Detailed,
		carbonLabels: c.Config.CarbonLabels,
	}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw a molecule as a structure diagram",
		Long: `Draw a molecule as a 2D structure diagram.

The most stable resonance form is drawn. Plain carbons are shown as points
in the skeletal style; use --carbon-labels to label every atom.

Examples:
  molgraph render ethanol.smi
  molgraph render benzene.cml -o benzene.png
  molgraph render caffeine.smi -f svg,png --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, c.Config.RenderFormats)
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", opts.detailed, "annotate atoms with radical and spin values")
	cmd.Flags().BoolVar(&opts.carbonLabels, "carbon-labels", opts.carbonLabels, "label plain carbons instead of drawing points")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	// A single format honours -o exactly; multiple formats need a base path.
	if len(opts.formats) > 1 && opts.output != "" && hasRenderExt(opts.output) {
		return fmt.Errorf("multiple formats requested; --output must be a base path, not %s", opts.output)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Input:        input,
		Format:       c.inputFormat(""),
		Formats:      opts.formats,
		Detailed:     opts.detailed,
		CarbonLabels: opts.carbonLabels,
		Refresh:      opts.refresh,
		Logger:       c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	printSuccess("Rendered %s", result.Formula)
	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	printStats(result.Stats.AtomCount, result.Stats.BondCount, result.CacheInfo.RenderHit)
	return nil
}

// renderExts is the set of extensions the render command produces.
var renderExts = map[string]bool{".dot": true, ".svg": true, ".png": true}

// hasRenderExt reports whether path ends in a render output extension.
func hasRenderExt(path string) bool {
	return renderExts[strings.ToLower(filepath.Ext(path))]
}

// outputPath derives the output file path for one render format.
// With an explicit single-format output it is used as-is; otherwise the path
// is the base (output or input without extension) plus the format extension.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if hasRenderExt(base) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + "." + format
}
