package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skovanen/molgraph/pkg/chemio"
	"github.com/skovanen/molgraph/pkg/pipeline"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output  string // output file path (stdout if empty)
	from    string // input format (detected from extension if empty)
	to      string // output format (detected from output extension if empty)
	refresh bool   // bypass the result cache
	noCache bool   // disable caching entirely
}

// convertCommand creates the convert command for translating between notations.
//
// The input format is taken from --from, the file extension, or the config
// default; the output format from --to or the output file extension. With no
// output file the result is written to stdout as SMILES.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a molecule file between notations",
		Long: `Convert a molecule file between chemical notations.

Supported formats: smiles, cml, descriptor, json.

Examples:
  molgraph convert ethanol.smi -o ethanol.cml
  molgraph convert benzene.cml --to descriptor
  molgraph convert caffeine.smi -o caffeine.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.from, "from", "f", "", "input format: smiles, cml, descriptor, json")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "output format: smiles, cml, descriptor, json")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runConvert(cmd *cobra.Command, input string, opts *convertOpts) error {
	target, err := c.targetFormat(opts.to, opts.output)
	if err != nil {
		return err
	}
	if opts.to != "" && opts.output != "" {
		if byExt, err := chemio.DetectFormat(opts.output); err == nil && byExt != target {
			printWarning("writing %s to a file with a %s extension", target, byExt)
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	m, cached, err := runner.ConvertWithCacheInfo(cmd.Context(), pipeline.Options{
		Input:   input,
		Format:  c.inputFormat(opts.from),
		Refresh: opts.refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		return err
	}
	atoms, bonds := moleculeSize(m)
	prog.done(fmt.Sprintf("Converted %s (%d atoms, %d bonds)", m.Formula(), atoms, bonds))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := chemio.Write(m, target, out); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Converted %s", input)
		printFile(opts.output)
		printStats(atoms, bonds, cached)
	}
	return nil
}

// inputFormat resolves the input format flag against the config default.
// An empty result lets the pipeline detect the format from the extension.
func (c *CLI) inputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return c.Config.Format
}

// targetFormat resolves the output format from the --to flag or the output
// file extension, defaulting to SMILES.
func (c *CLI) targetFormat(to, output string) (chemio.Format, error) {
	if to != "" {
		return chemio.ParseFormat(to)
	}
	if output != "" {
		return chemio.DetectFormat(output)
	}
	return chemio.FormatSMILES, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
