// Package config resolves server settings from the environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/tile-filter-mcp/internal/filter"
)

const (
	// EnvLogLevel selects the log level; "debug" enables verbose logging.
	EnvLogLevel = "TILEFILTER_LOG_LEVEL"

	// EnvConfigFile points at an optional YAML configuration file.
	EnvConfigFile = "TILEFILTER_CONFIG"
)

// File is the YAML configuration file layout.
//
//	parallel: true
//	presets:
//	  NightMode:
//	    - type: invert
//	    - type: hsl_adjust
//	      adjustments: [180, 0, 0]
type File struct {
	Parallel bool                     `yaml:"parallel"`
	Presets  map[string][]filter.Spec `yaml:"presets,omitempty"`
}

// Config contains resolved settings.
type Config struct {
	Debug    bool
	Path     string
	Parallel bool
	Presets  map[string][]filter.Spec
}

// LoadOptional reads the YAML file at path. A missing file yields an empty
// File rather than an error.
func LoadOptional(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &f, nil
}

// Load resolves configuration from the environment, reading the YAML file
// named by TILEFILTER_CONFIG when it is set.
func Load() (*Config, error) {
	cfg := &Config{
		Debug: strings.EqualFold(strings.TrimSpace(os.Getenv(EnvLogLevel)), "debug"),
		Path:  strings.TrimSpace(os.Getenv(EnvConfigFile)),
	}
	if cfg.Path == "" {
		return cfg, nil
	}

	f, err := LoadOptional(cfg.Path)
	if err != nil {
		return nil, err
	}
	cfg.Parallel = f.Parallel
	cfg.Presets = f.Presets
	return cfg, nil
}
