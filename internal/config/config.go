// Package config loads optional defaults for the advent CLI from a
// YAML file. Command-line flags always win over file values, which in
// turn win over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable defaults.
type Config struct {
	// Format is the default output format, "text" or "json".
	Format string `yaml:"format"`

	Bench struct {
		// Database is the default benchmark history path. Empty means
		// no history is kept unless --db is given.
		Database string `yaml:"database"`
		// Runs is the default number of measured executions.
		Runs int `yaml:"runs"`
	} `yaml:"bench"`

	Pack struct {
		// Dist is the default archive output directory. Empty means
		// dist/ inside the extension directory.
		Dist string `yaml:"dist"`
	} `yaml:"pack"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{Format: "text"}
	cfg.Bench.Runs = 5
	return cfg
}

// Load reads configuration from path, or from .advent.yaml /
// .advent.yml in the current directory when path is empty. A missing
// explicit path is an error; missing default locations fall back to
// Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		return cfg, nil
	}

	for _, candidate := range []string{".advent.yaml", ".advent.yml"} {
		if _, err := os.Stat(candidate); err == nil {
			if err := loadFile(candidate, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", candidate, err)
			}
			break
		}
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
