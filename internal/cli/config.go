package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from a molgraph.toml file.
//
// The file is looked up in the current directory first, then in the XDG
// config directory (~/.config/molgraph/molgraph.toml). Every field is
// optional; command-line flags override config values.
type Config struct {
	// Format is the default input format assumed when none is given and the
	// input path has no recognizable extension.
	Format string `toml:"format"`

	// RenderFormats is the default --format value for the render command.
	RenderFormats string `toml:"render_formats"`

	// Detailed and CarbonLabels set the default rendering style.
	Detailed     bool `toml:"detailed"`
	CarbonLabels bool `toml:"carbon_labels"`

	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	// NoCache disables result caching entirely.
	NoCache bool `toml:"no_cache"`
}

// configFile is the name of the config file in both lookup locations.
const configFile = "molgraph.toml"

// LoadConfig reads the user config, returning defaults when no file exists
// or a file fails to parse. Config problems never abort the CLI.
func LoadConfig() *Config {
	cfg := &Config{RenderFormats: "svg"}
	for _, path := range configPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := toml.Unmarshal(data, cfg); err == nil {
			return cfg
		}
	}
	return cfg
}

// configPaths returns the config lookup locations in priority order.
func configPaths() []string {
	paths := []string{configFile}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, appName, configFile))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, configFile))
	}
	return paths
}
