package chemio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skovanen/molgraph/pkg/errors"
	"github.com/skovanen/molgraph/pkg/mol"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"smiles", FormatSMILES},
		{"SMILES", FormatSMILES},
		{" cml ", FormatCML},
		{"descriptor", FormatDescriptor},
		{"json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("sdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(sdf) error = %v, want INVALID_FORMAT", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"ethanol.smi", FormatSMILES},
		{"ethanol.SMILES", FormatSMILES},
		{"benzene.cml", FormatCML},
		{"caffeine.mgd", FormatDescriptor},
		{"out/mol.json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		if err != nil {
			t.Errorf("DetectFormat(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := DetectFormat("molecule.xyz"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("DetectFormat(.xyz) error = %v, want INVALID_FORMAT", err)
	}
	if _, err := DetectFormat("noextension"); err == nil {
		t.Error("DetectFormat without extension should fail")
	}
}

func TestReadSMILES(t *testing.T) {
	m, err := Read(FormatSMILES, strings.NewReader("CCO\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := m.Formula(); got != "C2H6O" {
		t.Errorf("formula = %q, want C2H6O", got)
	}
	if !m.ResonanceForms[0].HasImplicitHydrogens() {
		t.Error("imported molecule not compressed")
	}
}

func TestReadWriteAllFormats(t *testing.T) {
	seed, err := Read(FormatSMILES, strings.NewReader("CC(=O)O"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	want := seed.Formula()

	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(seed, f, &buf); err != nil {
				t.Fatalf("Write: %v", err)
			}
			back, err := Read(f, &buf)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got := back.Formula(); got != want {
				t.Errorf("round trip formula = %q, want %q", got, want)
			}
			if !seed.IsIsomorphic(back) {
				t.Error("round-tripped molecule not isomorphic to the original")
			}
		})
	}
}

func TestJSONPreservesAtomState(t *testing.T) {
	m := mol.NewMolecule()
	cg := mol.NewChemGraph()

	a, err := mol.NewAtomSymbol("N")
	if err != nil {
		t.Fatalf("NewAtomSymbol: %v", err)
	}
	a.Charge = 1
	a.ImplicitHydrogens = 4
	a.Label = "ammonium"
	cg.AddAtom(a)

	b, err := mol.NewAtomSymbol("O")
	if err != nil {
		t.Fatalf("NewAtomSymbol: %v", err)
	}
	b.RadicalElectrons = 1
	b.SpinMultiplicity = 2
	cg.AddAtom(b)

	cg.SetImplicitHydrogens(true)
	m.ResonanceForms = []*mol.ChemGraph{cg}

	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	form := back.ResonanceForms[0]
	if !form.HasImplicitHydrogens() {
		t.Error("representation flag lost")
	}
	for _, id := range form.AtomIDs() {
		got, _ := form.Atom(id)
		switch got.Element.Symbol {
		case "N":
			if got.Charge != 1 || got.ImplicitHydrogens != 4 || got.Label != "ammonium" {
				t.Errorf("nitrogen state lost: %+v", got)
			}
		case "O":
			if got.RadicalElectrons != 1 || got.SpinMultiplicity != 2 {
				t.Errorf("oxygen spin state lost: %+v", got)
			}
		}
	}
}

func TestJSONMultipleForms(t *testing.T) {
	seed, err := Read(FormatSMILES, strings.NewReader("CCO"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	second, err := Read(FormatSMILES, strings.NewReader("C"))
	if err != nil {
		t.Fatalf("seed 2: %v", err)
	}
	seed.ResonanceForms = append(seed.ResonanceForms, second.ResonanceForms[0])

	var buf bytes.Buffer
	if err := WriteJSON(seed, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(back.ResonanceForms) != 2 {
		t.Fatalf("forms = %d, want 2", len(back.ResonanceForms))
	}
	if !seed.IsIsomorphic(back) {
		t.Error("multi-form molecule lost under json round trip")
	}
}

func TestReadJSONErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"forms": [`,
		"bad element":   `{"forms":[{"atoms":[{"element":"Zz"}],"bonds":[]}]}`,
		"bad bond ref":  `{"forms":[{"atoms":[{"element":"C"}],"bonds":[{"a1":0,"a2":5,"kind":"single"}]}]}`,
		"bad bond kind": `{"forms":[{"atoms":[{"element":"C"},{"element":"C"}],"bonds":[{"a1":0,"a2":1,"kind":"quadruple"}]}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(doc)); err == nil {
				t.Error("ReadJSON succeeded, want error")
			}
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "ethanol.smi")
	if err := os.WriteFile(src, []byte("CCO\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := ReadFile(src)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	dst := filepath.Join(dir, "ethanol.json")
	if err := WriteFile(m, dst); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	back, err := ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile json: %v", err)
	}
	if got := back.Formula(); got != "C2H6O" {
		t.Errorf("formula = %q, want C2H6O", got)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.smi")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "bad.xyz")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad extension error = %v, want INVALID_FORMAT", err)
	}
}
