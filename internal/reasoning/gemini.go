package reasoning

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"boardroom/internal/config"
	"boardroom/internal/logging"
	"boardroom/internal/metrics"
)

// GeminiClient implements Client for Google Gemini via the genai SDK.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiClient creates a Gemini-backed reasoning client.
func NewGeminiClient(cfg config.LLMConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := cfg.GetTimeout()

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logging.OrNop(logger),
	}, nil
}

// Generate sends the request and returns the completion text.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.1),
	}
	if req.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		schema, err := toGenAISchema(req.Schema)
		if err != nil {
			return "", fmt.Errorf("invalid response schema: %w", err)
		}
		genCfg.ResponseMIMEType = "application/json"
		genCfg.ResponseSchema = schema
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.User), genCfg)
	if err != nil {
		metrics.ReasoningCalls.WithLabelValues("gemini", metrics.OutcomeError).Inc()
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		metrics.ReasoningCalls.WithLabelValues("gemini", metrics.OutcomeError).Inc()
		return "", ErrEmptyResponse
	}

	metrics.ReasoningCalls.WithLabelValues("gemini", metrics.OutcomeSuccess).Inc()
	return text, nil
}

// Model returns the current model.
func (c *GeminiClient) Model() string {
	return c.model
}

// toGenAISchema converts a raw JSON schema map into the SDK's typed schema.
// Only the subset used by the review payloads is supported: object, array,
// string, integer, number, plus properties/items/required/description.
func toGenAISchema(raw map[string]interface{}) (*genai.Schema, error) {
	schema := &genai.Schema{}

	typeName, _ := raw["type"].(string)
	switch typeName {
	case "object":
		schema.Type = genai.TypeObject
	case "array":
		schema.Type = genai.TypeArray
	case "string":
		schema.Type = genai.TypeString
	case "integer":
		schema.Type = genai.TypeInteger
	case "number":
		schema.Type = genai.TypeNumber
	case "boolean":
		schema.Type = genai.TypeBoolean
	default:
		return nil, fmt.Errorf("unsupported schema type %q", typeName)
	}

	if desc, ok := raw["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := raw["properties"].(map[string]interface{}); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			subMap, ok := sub.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("property %q is not a schema object", name)
			}
			converted, err := toGenAISchema(subMap)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			schema.Properties[name] = converted
		}
	}

	if items, ok := raw["items"].(map[string]interface{}); ok {
		converted, err := toGenAISchema(items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		schema.Items = converted
	}

	if required, ok := raw["required"].([]string); ok {
		schema.Required = required
	} else if required, ok := raw["required"].([]interface{}); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}

	return schema, nil
}
