package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/mol"
)

// WriteFile renders the graph and writes it to path, picking the output
// format from the extension: .dot for raw DOT source, .svg, or .png.
func WriteFile(g *mol.ChemGraph, path string, opts Options) error {
	dot := ToDOT(g, opts)

	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot":
		data = []byte(dot)
	case ".svg":
		svg, err := RenderSVG(dot)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		data = svg
	case ".png":
		png, err := RenderPNG(dot)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render png")
		}
		data = png
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported render extension %q (use .dot, .svg, or .png)", filepath.Ext(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
