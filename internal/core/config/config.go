// Package config loads citr's optional tool configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nightconcept/citrine-go/internal/core/strlist"
	"github.com/nightconcept/citrine-go/internal/core/term"
)

// ConfigTomlName is the file citr looks for in the working directory.
const ConfigTomlName = "citr.toml"

// Output configures how diagnostic messages are rendered.
type Output struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
	// ErrorSymbol replaces the default ✖ when set.
	ErrorSymbol string `toml:"error_symbol"`
	// InfoSymbol replaces the default ● when set.
	InfoSymbol string `toml:"info_symbol"`
}

// Classifier configures the token lists backing a classification.
type Classifier struct {
	InitialCapacity int  `toml:"initial_capacity"`
	FixedCapacity   bool `toml:"fixed_capacity"`
}

// Config is the full citr.toml shape.
type Config struct {
	Output     Output     `toml:"output"`
	Classifier Classifier `toml:"classifier"`
}

// Default returns the configuration used when no citr.toml exists.
func Default() *Config {
	return &Config{
		Output: Output{
			Color:       "auto",
			ErrorSymbol: term.DefaultErrorSymbol,
			InfoSymbol:  term.DefaultInfoSymbol,
		},
		Classifier: Classifier{
			InitialCapacity: strlist.DefaultCapacity,
		},
	}
}

// Load reads citr.toml from dirPath. A missing file is not an error: the
// defaults are returned. Unset fields fall back to their defaults.
func Load(dirPath string) (*Config, error) {
	fullPath := filepath.Join(dirPath, ConfigTomlName)
	data, err := os.ReadFile(fullPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigTomlName, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigTomlName, err)
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("parsing %s: output.color must be auto, always or never, got %q", ConfigTomlName, cfg.Output.Color)
	}
	return cfg, nil
}
