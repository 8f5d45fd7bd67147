package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"boardroom/internal/catalog"
	"boardroom/internal/logging"
	"boardroom/internal/metrics"
	"boardroom/internal/reasoning"
)

// fallbackScore is the fixed score of a synthesized critique. Chosen as a
// neutral "plausible but unverified" value so a degraded review does not
// drag the consensus toward either extreme.
const fallbackScore = 70

// Critic invokes one expert persona against one document section and always
// produces a critique: a reasoning failure of any kind (timeout, transport,
// malformed payload) degrades to deterministic fallback content instead of
// propagating.
type Critic struct {
	client  reasoning.Client
	logger  *zap.Logger
	timeout time.Duration

	// now is swappable in tests for deterministic timestamps.
	now func() time.Time
}

// NewCritic creates a critique invoker. A zero timeout disables per-call
// deadlines beyond whatever the reasoning client enforces itself.
func NewCritic(client reasoning.Client, logger *zap.Logger, timeout time.Duration) *Critic {
	return &Critic{
		client:  client,
		logger:  logging.OrNop(logger),
		timeout: timeout,
		now:     time.Now,
	}
}

// critiquePayload is the schema-constrained wire format of a critique.
type critiquePayload struct {
	Insight         string   `json:"insight"`
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
	Concerns        []string `json:"concerns"`
}

// Critique evaluates one section excerpt from one expert's perspective.
// The excerpt may be empty; the expert is then asked to evaluate against
// generic expectations for the section. This method never fails.
func (c *Critic) Critique(ctx context.Context, section catalog.SectionDefinition, excerpt string, expert catalog.ExpertPersona, guidance string) Critique {
	payload, err := c.generate(ctx, section, excerpt, expert, guidance)
	if err != nil {
		c.logger.Warn("critique degraded to fallback content",
			zap.String("section", section.ID),
			zap.String("expert", expert.ID),
			zap.Error(err))
		metrics.CritiqueFallbacks.WithLabelValues(section.ID).Inc()
		return c.fallbackCritique(section, expert)
	}

	return Critique{
		ExpertID:        expert.ID,
		ExpertName:      expert.Name,
		Insight:         payload.Insight,
		Score:           clampScore(payload.Score),
		Recommendations: truncate(payload.Recommendations, maxCritiqueRecommendations),
		Concerns:        truncate(payload.Concerns, maxCritiqueConcerns),
		CreatedAt:       c.now(),
	}
}

// generate performs the reasoning call and parses the structured response.
// Errors surface to Critique, which owns the fallback.
func (c *Critic) generate(ctx context.Context, section catalog.SectionDefinition, excerpt string, expert catalog.ExpertPersona, guidance string) (critiquePayload, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	raw, err := c.client.Generate(ctx, reasoning.Request{
		System: expert.Persona,
		User:   buildCritiquePrompt(section, excerpt, guidance),
		Schema: reasoning.CritiqueSchema(),
	})
	if err != nil {
		return critiquePayload{}, err
	}

	data, err := reasoning.ExtractJSON(raw)
	if err != nil {
		return critiquePayload{}, err
	}

	var payload critiquePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return critiquePayload{}, fmt.Errorf("malformed critique payload: %w", err)
	}
	return payload, nil
}

// buildCritiquePrompt assembles the user prompt for one (section, expert)
// pair: section description, guiding questions, optional template guidance,
// and the excerpt.
func buildCritiquePrompt(section catalog.SectionDefinition, excerpt string, guidance string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Review the **%s** section of a business document.\n\n", section.Name))
	sb.WriteString(section.Description)
	sb.WriteString("\n\nEvaluate it against these questions:\n")
	for i, q := range section.GuidingQuestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}

	if guidance != "" {
		sb.WriteString("\nBusiness-type guidance for this section:\n")
		sb.WriteString(guidance)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(excerpt) == "" {
		sb.WriteString("\nNo content was provided for this section. Evaluate it against generic ")
		sb.WriteString("expectations: treat the absence of content as the finding, and recommend ")
		sb.WriteString("what a strong version of this section must contain.\n")
	} else {
		sb.WriteString("\nSection content:\n---\n")
		sb.WriteString(excerpt)
		sb.WriteString("\n---\n")
	}

	sb.WriteString("\nRespond with JSON: {\"insight\": string, \"score\": integer 0-100, ")
	sb.WriteString("\"recommendations\": string[], \"concerns\": string[]}.")

	return sb.String()
}

// fallbackCritique synthesizes a deterministic critique when the reasoning
// service could not produce one. Identical inputs yield identical content.
func (c *Critic) fallbackCritique(section catalog.SectionDefinition, expert catalog.ExpertPersona) Critique {
	insight := fmt.Sprintf(
		"%s could not complete a detailed assessment of the %s section. "+
			"Based on standard expectations, verify it addresses: %s",
		expert.Name, section.Name, firstQuestion(section))

	return Critique{
		ExpertID:   expert.ID,
		ExpertName: expert.Name,
		Insight:    insight,
		Score:      fallbackScore,
		Recommendations: []string{
			fmt.Sprintf("Have the %s section re-reviewed once more detail is available", section.Name),
			"Expand this section with specific, verifiable figures and sources",
		},
		Concerns: []string{
			"Assessment is based on generic expectations, not the actual content",
			"Insufficient input was available for a confident evaluation",
		},
		CreatedAt: c.now(),
		Fallback:  true,
	}
}

func firstQuestion(section catalog.SectionDefinition) string {
	if len(section.GuidingQuestions) > 0 {
		return section.GuidingQuestions[0]
	}
	return "the fundamentals expected of this section"
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
