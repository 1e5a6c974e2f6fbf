package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/skovanen/molgraph/pkg/chemio"
)

// testCLI builds a CLI with a discarded logger and default config, so tests
// never depend on the user's molgraph.toml.
func testCLI() *CLI {
	return &CLI{
		Logger: newLogger(io.Discard, LogInfo),
		Config: &Config{RenderFormats: "svg"},
	}
}

func TestTargetFormat(t *testing.T) {
	c := testCLI()

	tests := []struct {
		to      string
		output  string
		want    chemio.Format
		wantErr bool
	}{
		{"", "", chemio.FormatSMILES, false},
		{"cml", "", chemio.FormatCML, false},
		{"", "out.json", chemio.FormatJSON, false},
		{"descriptor", "out.json", chemio.FormatDescriptor, false}, // --to wins
		{"mol2", "", "", true},
		{"", "out.xyz", "", true},
	}

	for _, tt := range tests {
		got, err := c.targetFormat(tt.to, tt.output)
		if (err != nil) != tt.wantErr {
			t.Errorf("targetFormat(%q, %q) error = %v, wantErr %v", tt.to, tt.output, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("targetFormat(%q, %q) = %q, want %q", tt.to, tt.output, got, tt.want)
		}
	}
}

func TestInputFormat(t *testing.T) {
	c := testCLI()
	c.Config.Format = "cml"

	if got := c.inputFormat("smiles"); got != "smiles" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := c.inputFormat(""); got != "cml" {
		t.Errorf("config should fill empty flag, got %q", got)
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ethanol.smi")
	out := filepath.Join(dir, "ethanol.json")
	if err := os.WriteFile(in, []byte("CCO\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := testCLI().convertCommand()
	cmd.SetArgs([]string{in, "-o", out, "--no-cache"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("convert: %v", err)
	}

	m, err := chemio.ReadFile(out)
	if err != nil {
		t.Fatalf("read converted output: %v", err)
	}
	if m.Formula() != "C2H6O" {
		t.Errorf("Formula = %q, want C2H6O", m.Formula())
	}
	if atoms, bonds := moleculeSize(m); atoms != 3 || bonds != 2 {
		t.Errorf("size = %d atoms, %d bonds; want 3, 2", atoms, bonds)
	}
}

func TestConvertCommandRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "benzene.smi")
	mid := filepath.Join(dir, "benzene.cml")
	back := filepath.Join(dir, "back.smi")
	if err := os.WriteFile(in, []byte("c1ccccc1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := testCLI().convertCommand()
	cmd.SetArgs([]string{in, "-o", mid, "--no-cache"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("smiles to cml: %v", err)
	}

	cmd = testCLI().convertCommand()
	cmd.SetArgs([]string{mid, "-o", back, "--no-cache"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cml to smiles: %v", err)
	}

	m1, err := chemio.ReadFile(in)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := chemio.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	if !m1.IsIsomorphic(m2) {
		t.Error("round-tripped benzene should be isomorphic to the original")
	}
}

func TestConvertCommandErrors(t *testing.T) {
	cmd := testCLI().convertCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.smi"), "--no-cache"})
	if err := cmd.Execute(); err == nil {
		t.Error("missing input should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.smi")
	if err := os.WriteFile(bad, []byte("C(C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd = testCLI().convertCommand()
	cmd.SetArgs([]string{bad, "--no-cache"})
	if err := cmd.Execute(); err == nil {
		t.Error("malformed SMILES should fail")
	}
}
