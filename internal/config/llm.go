package config

import "time"

// LLMConfig configures the reasoning service client.
type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini, openai, zai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`

	// Requests per minute against the provider. Zero disables pacing.
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// DefaultLLMConfig returns sensible defaults.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:          "gemini",
		Model:             "",
		Timeout:           "120s",
		RequestsPerMinute: 60,
	}
}

// GetTimeout returns the per-call timeout as a duration.
func (c LLMConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// providerEnvVars lists the API-key environment variables checked when the
// config file carries no key, in priority order.
var providerEnvVars = []struct {
	envVar   string
	provider string
}{
	{"GEMINI_API_KEY", "gemini"},
	{"OPENAI_API_KEY", "openai"},
	{"ZAI_API_KEY", "zai"},
}
