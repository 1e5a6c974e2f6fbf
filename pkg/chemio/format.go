package chemio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/skovanen/molgraph/pkg/babel"
	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/mol"
)

// Format identifies a supported molecule file format.
type Format string

const (
	FormatSMILES     Format = "smiles"
	FormatCML        Format = "cml"
	FormatDescriptor Format = "descriptor"
	FormatJSON       Format = "json"
)

// Formats returns the supported formats in a fixed order.
func Formats() []Format {
	return []Format{FormatSMILES, FormatCML, FormatDescriptor, FormatJSON}
}

// extensions maps lowercased file extensions to formats.
var extensions = map[string]Format{
	".smi":    FormatSMILES,
	".smiles": FormatSMILES,
	".cml":    FormatCML,
	".mgd":    FormatDescriptor,
	".json":   FormatJSON,
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (supported: smiles, cml, descriptor, json)", name)
}

// DetectFormat maps a path's extension to a format.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect format from %q (supported extensions: .smi, .smiles, .cml, .mgd, .json)", path)
}

// Read decodes a molecule from r in the given format. Chemistry notations are
// parsed into the babel model and imported, which compresses hydrogens.
func Read(f Format, r io.Reader) (*mol.Molecule, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatSMILES, FormatDescriptor:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConversionParse, err, "read input")
		}
		var fm *babel.Mol
		if f == FormatSMILES {
			fm, err = babel.ParseSMILES(string(data))
		} else {
			fm, err = babel.ParseDescriptor(string(data))
		}
		if err != nil {
			return nil, err
		}
		return importForeign(fm)
	case FormatCML:
		fm, err := babel.ParseCML(r)
		if err != nil {
			return nil, err
		}
		return importForeign(fm)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
}

// Write encodes a molecule to w in the given format. Chemistry notations
// export through the babel model, which canonically sorts the most stable
// form as a side effect.
func Write(m *mol.Molecule, f Format, w io.Writer) error {
	switch f {
	case FormatJSON:
		return WriteJSON(m, w)
	case FormatCML:
		fm, err := exportForeign(m)
		if err != nil {
			return err
		}
		return babel.WriteCML(fm, w)
	case FormatSMILES, FormatDescriptor:
		fm, err := exportForeign(m)
		if err != nil {
			return err
		}
		var line string
		if f == FormatSMILES {
			line, err = babel.WriteSMILES(fm)
		} else {
			line, err = babel.WriteDescriptor(fm)
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errors.Wrap(errors.ErrCodeConversionSerialize, err, "write output")
		}
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
}

// ReadFile reads a molecule from path, detecting the format by extension.
func ReadFile(path string) (*mol.Molecule, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer fh.Close()
	return Read(f, fh)
}

// WriteFile writes a molecule to path, detecting the format by extension.
func WriteFile(m *mol.Molecule, path string) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer fh.Close()
	return Write(m, f, fh)
}

func importForeign(fm *babel.Mol) (*mol.Molecule, error) {
	m := mol.NewMolecule()
	if err := m.FromForeign(fm); err != nil {
		return nil, err
	}
	return m, nil
}

func exportForeign(m *mol.Molecule) (*babel.Mol, error) {
	fm := babel.New()
	if err := m.ToForeign(fm); err != nil {
		return nil, err
	}
	return fm, nil
}
