package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile reads a YAML file on top of DefaultConfig, so a file only needs
// the keys it changes.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// FindConfigFile returns the settings file in baseDir, or "" when there is none.
func FindConfigFile(baseDir string) string {
	for _, name := range []string{FileName, "path2peace.yml"} {
		path := filepath.Join(baseDir, name)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// Load resolves the configuration for baseDir: the explicit path when given,
// else a settings file found in baseDir, else the defaults. The result is validated.
func Load(baseDir, explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = FindConfigFile(baseDir)
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
