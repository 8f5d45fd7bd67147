// Package config holds all boardroom configuration.
// Configuration is loaded once at process start and passed explicitly into
// the components that need it; nothing reads it as ambient global state.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all boardroom configuration.
type Config struct {
	// LLM configuration for the reasoning service
	LLM LLMConfig `yaml:"llm"`

	// Document review engine settings
	Review ReviewConfig `yaml:"review"`

	// Expert team selection settings
	Panel PanelConfig `yaml:"panel"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ReviewConfig configures the review orchestrator and critique invoker.
type ReviewConfig struct {
	// Timeout for a single critique call against the reasoning service.
	CritiqueTimeout string `yaml:"critique_timeout"`

	// Optional path to a YAML catalogue overriding the built-in
	// sections/templates/experts. Empty means built-in defaults.
	CataloguePath string `yaml:"catalogue_path"`
}

// GetCritiqueTimeout returns the critique timeout as a duration.
func (c ReviewConfig) GetCritiqueTimeout() time.Duration {
	d, err := time.ParseDuration(c.CritiqueTimeout)
	if err != nil {
		return 90 * time.Second
	}
	return d
}

// PanelConfig configures expert team selection.
type PanelConfig struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`

	// Timeout for the single team-selection call.
	SelectTimeout string `yaml:"select_timeout"`
}

// GetSelectTimeout returns the team-selection timeout as a duration.
func (c PanelConfig) GetSelectTimeout() time.Duration {
	d, err := time.ParseDuration(c.SelectTimeout)
	if err != nil {
		return 2 * time.Minute
	}
	return d
}

// LoggingConfig configures logger construction.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: DefaultLLMConfig(),
		Review: ReviewConfig{
			CritiqueTimeout: "90s",
		},
		Panel: PanelConfig{
			MinSize:       4,
			MaxSize:       8,
			SelectTimeout: "2m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file, applying defaults for any
// omitted section.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides fills in the API key from environment variables when the
// config file leaves it blank. The configured provider's variable wins;
// otherwise the first populated variable decides both key and provider.
func (c *Config) applyEnvOverrides() {
	if c.LLM.APIKey != "" {
		return
	}

	for _, env := range providerEnvVars {
		if env.provider != c.LLM.Provider {
			continue
		}
		if key := os.Getenv(env.envVar); key != "" {
			c.LLM.APIKey = key
			return
		}
	}

	for _, env := range providerEnvVars {
		if key := os.Getenv(env.envVar); key != "" {
			c.LLM.APIKey = key
			c.LLM.Provider = env.provider
			return
		}
	}
}
