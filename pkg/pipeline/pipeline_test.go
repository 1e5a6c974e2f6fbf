package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skovanen/molgraph/pkg/cache"
	"github.com/skovanen/molgraph/pkg/errors"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"inline source", Options{Source: "CCO", Format: "smiles"}, false},
		{"render formats", Options{Source: "CCO", Format: "smiles", Formats: []string{"dot", "svg", "png"}}, false},
		{"neither input nor source", Options{}, true},
		{"both input and source", Options{Input: "a.smi", Source: "CCO"}, true},
		{"unknown render format", Options{Source: "CCO", Format: "smiles", Formats: []string{"pdf"}}, true},
		{"unknown input format", Options{Source: "CCO", Format: "mol2"}, true},
		{"blank source", Options{Source: "   \n", Format: "smiles"}, true},
	}

	for _, tt := range tests {
		err := tt.opts.ValidateAndSetDefaults()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateResolvesFormat(t *testing.T) {
	opts := Options{Source: "CCO", Format: "smiles"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if opts.format != "smiles" {
		t.Errorf("format = %q, want smiles", opts.format)
	}
	if opts.source != "CCO" {
		t.Errorf("source = %q, want CCO", opts.source)
	}
}

func TestOptionsValidateReadsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ethanol.smi")
	if err := os.WriteFile(path, []byte("CCO\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := Options{Input: path}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if opts.format != "smiles" {
		t.Errorf("format = %q, want smiles (detected from extension)", opts.format)
	}
	if strings.TrimSpace(opts.source) != "CCO" {
		t.Errorf("source = %q, want CCO", opts.source)
	}

	opts = Options{Input: filepath.Join(t.TempDir(), "missing.smi")}
	err := opts.ValidateAndSetDefaults()
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing input: error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil {
		t.Error("Cache should default to NullCache")
	}
	if r.Keyer == nil {
		t.Error("Keyer should default to DefaultKeyer")
	}
	if r.Logger == nil {
		t.Error("Logger should default to log.Default()")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Source:  "CCO",
		Format:  "smiles",
		Formats: []string{"dot"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Formula != "C2H6O" {
		t.Errorf("Formula = %q, want C2H6O", result.Formula)
	}
	if result.Stats.AtomCount != 3 {
		t.Errorf("AtomCount = %d, want 3 (compressed hydrogens)", result.Stats.AtomCount)
	}
	if result.Stats.BondCount != 2 {
		t.Errorf("BondCount = %d, want 2", result.Stats.BondCount)
	}
	if result.ContentHash == "" {
		t.Error("ContentHash should be set")
	}

	dot := string(result.Artifacts["dot"])
	if !strings.HasPrefix(dot, "graph M {") {
		t.Errorf("dot artifact missing graph header:\n%s", dot)
	}
	if !strings.Contains(dot, "OH") {
		t.Errorf("dot artifact missing hydroxyl label:\n%s", dot)
	}

	if result.CacheInfo.ConvertHit || result.CacheInfo.RenderHit {
		t.Error("first run with NullCache should not report cache hits")
	}
}

func TestRunnerExecuteConvertOnly(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{Source: "c1ccccc1", Format: "smiles"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Formula != "C6H6" {
		t.Errorf("Formula = %q, want C6H6", result.Formula)
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("no render formats requested, got %d artifacts", len(result.Artifacts))
	}
}

func TestRunnerExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{}); err == nil {
		t.Error("empty options should fail")
	}
	if _, err := r.Execute(context.Background(), Options{Source: "C(C", Format: "smiles"}); err == nil {
		t.Error("malformed input should fail")
	}
}

func TestRunnerConvertCaching(t *testing.T) {
	mem := cache.NewMemoryCache()
	r := NewRunner(mem, nil, nil)
	defer r.Close()

	opts := Options{Source: "CCO", Format: "smiles"}

	m, hit, err := r.ConvertWithCacheInfo(context.Background(), opts)
	if err != nil {
		t.Fatalf("first convert: %v", err)
	}
	if hit {
		t.Error("first convert should miss")
	}

	m2, hit, err := r.ConvertWithCacheInfo(context.Background(), opts)
	if err != nil {
		t.Fatalf("second convert: %v", err)
	}
	if !hit {
		t.Error("second convert should hit")
	}
	if !m.IsIsomorphic(m2) {
		t.Error("cached molecule should match the original")
	}

	// Refresh bypasses the cache
	opts.Refresh = true
	if _, hit, err = r.ConvertWithCacheInfo(context.Background(), opts); err != nil {
		t.Fatalf("refresh convert: %v", err)
	} else if hit {
		t.Error("refresh should not report a cache hit")
	}
}

func TestRunnerRenderCaching(t *testing.T) {
	mem := cache.NewMemoryCache()
	r := NewRunner(mem, nil, nil)
	defer r.Close()

	opts := Options{Source: "CCO", Format: "smiles", Formats: []string{"dot"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	m, err := r.Convert(context.Background(), opts)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	first, hit, err := r.RenderWithCacheInfo(context.Background(), m, opts)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	if hit {
		t.Error("first render should miss")
	}

	second, hit, err := r.RenderWithCacheInfo(context.Background(), m, opts)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !hit {
		t.Error("second render should hit")
	}
	if string(first["dot"]) != string(second["dot"]) {
		t.Error("cached artifact should match the original")
	}
}

func TestRunnerRenderOptionsSeparateCacheEntries(t *testing.T) {
	mem := cache.NewMemoryCache()
	r := NewRunner(mem, nil, nil)
	defer r.Close()

	opts := Options{Source: "CCO", Format: "smiles", Formats: []string{"dot"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	m, err := r.Convert(context.Background(), opts)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, _, err := r.RenderWithCacheInfo(context.Background(), m, opts); err != nil {
		t.Fatalf("render: %v", err)
	}

	// Same molecule with different render options must not hit the plain entry.
	labeled := opts
	labeled.CarbonLabels = true
	_, hit, err := r.RenderWithCacheInfo(context.Background(), m, labeled)
	if err != nil {
		t.Fatalf("labeled render: %v", err)
	}
	if hit {
		t.Error("different render options should produce a cache miss")
	}
}
