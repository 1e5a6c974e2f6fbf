package cli

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	// Clear XDG_CACHE_HOME to test default behavior
	t.Setenv("XDG_CACHE_HOME", "")
	os.Unsetenv("XDG_CACHE_HOME")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	if dir == "" {
		t.Error("cacheDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}

	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestResolveCacheDirConfigOverride(t *testing.T) {
	c := &CLI{Config: &Config{CacheDir: "/tmp/molgraph-cache"}}

	dir, err := c.resolveCacheDir()
	if err != nil {
		t.Fatalf("resolveCacheDir() error: %v", err)
	}
	if dir != "/tmp/molgraph-cache" {
		t.Errorf("resolveCacheDir() = %q, want config override", dir)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input    string
		fallback string
		want     []string
	}{
		{"", "svg", []string{"svg"}},
		{"dot", "svg", []string{"dot"}},
		{"svg,png", "svg", []string{"svg", "png"}},
		{"svg, png ", "svg", []string{"svg", "png"}},
		{",svg,", "svg", []string{"svg"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input, tt.fallback)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q, %q) = %v, want %v", tt.input, tt.fallback, got, tt.want)
		}
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "molgraph" {
		t.Errorf("root.Use = %q, want molgraph", root.Use)
	}

	want := []string{"convert", "render", "info", "inspect", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
