package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultPath is where the config is looked up when none is given.
const DefaultPath = "aoc.yaml"

type Config struct {
	Year     int    `yaml:"year"`
	Inputs   string `yaml:"inputs"`
	Answers  string `yaml:"answers"`
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Year:     2023,
		Inputs:   "inputs/day-%d.txt",
		Answers:  "answers.json",
		LogLevel: "info",
	}
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validation
	if cfg.Year <= 0 {
		return nil, fmt.Errorf("year must be positive, got %d", cfg.Year)
	}
	if strings.Count(cfg.Inputs, "%d") != 1 {
		return nil, fmt.Errorf("inputs pattern %q must contain exactly one %%d", cfg.Inputs)
	}

	return cfg, nil
}

func Save(cfg *Config, path string) error {
	bytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// InputPath returns the input file of the given day.
func (c *Config) InputPath(day int) string {
	return fmt.Sprintf(c.Inputs, day)
}
