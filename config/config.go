// Package config loads the spacyud configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete spacyud configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Render RenderConfig `yaml:"render"`

	// Mappings adds dependency relation renames on top of the built-in
	// table, keyed by the parser label.
	Mappings map[string]string `yaml:"mappings"`
}

// ParserConfig configures the external parser invocation.
type ParserConfig struct {
	// Command overrides the default python invocation. Args are passed
	// verbatim; the sentence text is written to stdin and the doc JSON
	// is read from stdout.
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	// Model is the parser model to load (default: en_core_web_trf)
	Model string `yaml:"model"`

	// Language of the input text (default: en)
	Language string `yaml:"language"`

	// Timeout is the maximum time to wait for a parse
	Timeout Duration `yaml:"timeout"`
}

// Duration wraps time.Duration so that YAML strings like "30s" decode.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// RenderConfig configures the default output rendering.
type RenderConfig struct {
	Format   string `yaml:"format"`
	Color    bool   `yaml:"color"`
	Numbered bool   `yaml:"numbered"`
}

// Default returns a Config with the defaults applied.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			Model:    "en_core_web_trf",
			Language: "en",
			Timeout:  Duration(60 * time.Second),
		},
		Render: RenderConfig{
			Format: "text",
		},
	}
}

// Load reads the YAML config at path, merged over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Parser.Model == "" {
		return fmt.Errorf("parser.model is required")
	}
	if c.Parser.Timeout < 0 {
		return fmt.Errorf("parser.timeout must not be negative")
	}
	for from, to := range c.Mappings {
		if from == "" || to == "" {
			return fmt.Errorf("mappings entries must not be empty (%q: %q)", from, to)
		}
	}
	return nil
}
