package review

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"boardroom/internal/catalog"
	"boardroom/internal/reasoning"
)

var testSection = catalog.SectionDefinition{
	ID:          "market_analysis",
	Name:        "Market Analysis",
	Description: "Target market and competition.",
	GuidingQuestions: []string{
		"Is the target segment specific enough to act on?",
		"Are competitors acknowledged?",
	},
	ExpertCategories: []string{"marketing"},
}

var testExpert = catalog.ExpertPersona{
	ID:       "cmo",
	Name:     "Priya Raman",
	Category: "marketing",
	Persona:  "You are a CMO.",
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestCritique_Success(t *testing.T) {
	client := &mockClient{respond: func(reasoning.Request) (string, error) {
		return `{"insight": "Solid section", "score": 82, "recommendations": ["a", "b"], "concerns": ["c"]}`, nil
	}}
	critic := NewCritic(client, nil, 0)

	c := critic.Critique(context.Background(), testSection, "some content", testExpert, "")

	if c.ExpertID != "cmo" || c.ExpertName != "Priya Raman" {
		t.Errorf("expert identity not carried: %+v", c)
	}
	if c.Score != 82 {
		t.Errorf("expected score 82, got %d", c.Score)
	}
	if c.Insight != "Solid section" {
		t.Errorf("unexpected insight: %s", c.Insight)
	}
	if c.Fallback {
		t.Error("successful critique should not be marked fallback")
	}
	if c.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
}

func TestCritique_ClampsAndTruncates(t *testing.T) {
	cases := []struct {
		name      string
		rawScore  int
		wantScore int
	}{
		{"above range", 150, 100},
		{"below range", -10, 0},
		{"at upper bound", 100, 100},
		{"at lower bound", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &mockClient{respond: func(reasoning.Request) (string, error) {
				return `{"insight": "x", "score": ` + strconv.Itoa(tc.rawScore) + `,
					"recommendations": ["r1", "r2", "r3", "r4", "r5"],
					"concerns": ["c1", "c2", "c3"]}`, nil
			}}
			critic := NewCritic(client, nil, 0)

			c := critic.Critique(context.Background(), testSection, "content", testExpert, "")

			if c.Score != tc.wantScore {
				t.Errorf("expected score %d, got %d", tc.wantScore, c.Score)
			}
			if len(c.Recommendations) != 3 {
				t.Errorf("expected 3 recommendations, got %d", len(c.Recommendations))
			}
			if len(c.Concerns) != 2 {
				t.Errorf("expected 2 concerns, got %d", len(c.Concerns))
			}
		})
	}
}

func TestCritique_FallbackOnError(t *testing.T) {
	client := &mockClient{respond: func(reasoning.Request) (string, error) {
		return "", errors.New("deadline exceeded")
	}}
	critic := NewCritic(client, nil, 0)
	critic.now = fixedClock()

	c := critic.Critique(context.Background(), testSection, "content", testExpert, "")

	if !c.Fallback {
		t.Fatal("expected fallback critique")
	}
	if c.Score != 70 {
		t.Errorf("expected fallback score 70, got %d", c.Score)
	}
	if len(c.Recommendations) != 2 || len(c.Concerns) != 2 {
		t.Errorf("fallback lists wrong sizes: %d recs, %d concerns",
			len(c.Recommendations), len(c.Concerns))
	}
	if !strings.Contains(c.Insight, testSection.GuidingQuestions[0]) {
		t.Errorf("fallback insight should reference the first guiding question: %s", c.Insight)
	}
}

func TestCritique_FallbackIsDeterministic(t *testing.T) {
	client := &mockClient{respond: func(reasoning.Request) (string, error) {
		return "", errors.New("transport failure")
	}}
	critic := NewCritic(client, nil, 0)
	critic.now = fixedClock()

	first := critic.Critique(context.Background(), testSection, "", testExpert, "")
	second := critic.Critique(context.Background(), testSection, "", testExpert, "")

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(Critique{}, "CreatedAt")); diff != "" {
		t.Errorf("fallback content not deterministic (-first +second):\n%s", diff)
	}
}

func TestCritique_FallbackOnMalformedPayload(t *testing.T) {
	responses := []string{
		"I cannot produce JSON today.",
		`{"insight": "broken`,
		"```json\nnot json\n```",
	}
	for _, raw := range responses {
		client := &mockClient{respond: func(reasoning.Request) (string, error) {
			return raw, nil
		}}
		critic := NewCritic(client, nil, 0)

		c := critic.Critique(context.Background(), testSection, "content", testExpert, "")
		if !c.Fallback {
			t.Errorf("response %q should degrade to fallback", raw)
		}
	}
}

func TestCritique_FencedJSONAccepted(t *testing.T) {
	client := &mockClient{respond: func(reasoning.Request) (string, error) {
		return "```json\n" + critiqueJSON(64, "fenced") + "\n```", nil
	}}
	critic := NewCritic(client, nil, 0)

	c := critic.Critique(context.Background(), testSection, "content", testExpert, "")
	if c.Fallback {
		t.Fatal("fenced JSON should parse, not fall back")
	}
	if c.Score != 64 {
		t.Errorf("expected score 64, got %d", c.Score)
	}
}

func TestCritique_EmptyExcerptSwitchesPrompt(t *testing.T) {
	client := &mockClient{}
	critic := NewCritic(client, nil, 0)

	critic.Critique(context.Background(), testSection, "", testExpert, "")
	critic.Critique(context.Background(), testSection, "   \n ", testExpert, "")

	for _, req := range client.calls {
		if !strings.Contains(req.User, "No content was provided") {
			t.Errorf("empty excerpt should request a generic evaluation, got prompt:\n%s", req.User)
		}
		if req.System != testExpert.Persona {
			t.Errorf("persona should ride in the system prompt, got %q", req.System)
		}
	}
}

func TestCritique_GuidanceInPrompt(t *testing.T) {
	client := &mockClient{}
	critic := NewCritic(client, nil, 0)

	critic.Critique(context.Background(), testSection, "content", testExpert, "Judge CAC payback.")

	if len(client.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(client.calls))
	}
	if !strings.Contains(client.calls[0].User, "Judge CAC payback.") {
		t.Error("template guidance missing from prompt")
	}
	if client.calls[0].Schema == nil {
		t.Error("critique call should request schema-constrained output")
	}
}

