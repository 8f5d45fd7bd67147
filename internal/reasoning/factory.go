package reasoning

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"boardroom/internal/config"
)

// NewClient creates a reasoning client from LLM configuration.
// An empty API key falls back to the provider's environment variable
// (GEMINI_API_KEY, OPENAI_API_KEY, ZAI_API_KEY).
func NewClient(cfg config.LLMConfig, logger *zap.Logger) (Client, error) {
	switch cfg.Provider {
	case "gemini", "":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		return NewGeminiClient(cfg, logger)
	case "openai":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		return openAIFromLLMConfig(cfg, logger), nil
	case "zai":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ZAI_API_KEY")
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = "https://api.z.ai/api/paas/v4"
		}
		return openAIFromLLMConfig(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown reasoning provider: %s", cfg.Provider)
	}
}
