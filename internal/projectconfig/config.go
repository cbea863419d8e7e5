// Package projectconfig provides the ProjectConfig struct and loader for
// .passcurve.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	// DefaultMaxK of 0 means the curve ceiling is derived from the data.
	DefaultMaxK   = 0
	DefaultFormat = "table"

	DefaultConfidenceLevel = 0.95
	DefaultBootstrap       = 10000
)

// DefaultsConfig holds default curve parameters.
type DefaultsConfig struct {
	MaxK   int    `yaml:"maxK,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// ConfidenceConfig holds uncertainty-band settings.
type ConfidenceConfig struct {
	Level     float64 `yaml:"level,omitempty"`
	Bootstrap int     `yaml:"bootstrap,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .passcurve.yaml.
type ProjectConfig struct {
	Defaults   DefaultsConfig   `yaml:"defaults,omitempty"`
	Confidence ConfidenceConfig `yaml:"confidence,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Defaults: DefaultsConfig{
			MaxK:   DefaultMaxK,
			Format: DefaultFormat,
		},
		Confidence: ConfidenceConfig{
			Level:     DefaultConfidenceLevel,
			Bootstrap: DefaultBootstrap,
		},
	}
}

// Load finds .passcurve.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .passcurve.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .passcurve.yaml: %w", err)
	}

	// Merge file values onto defaults.
	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .passcurve.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".passcurve.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Defaults.MaxK != 0 {
		dst.Defaults.MaxK = src.Defaults.MaxK
	}
	if src.Defaults.Format != "" {
		dst.Defaults.Format = src.Defaults.Format
	}
	if src.Confidence.Level != 0 {
		dst.Confidence.Level = src.Confidence.Level
	}
	if src.Confidence.Bootstrap != 0 {
		dst.Confidence.Bootstrap = src.Confidence.Bootstrap
	}
}
