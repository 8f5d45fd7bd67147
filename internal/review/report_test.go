package review

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileReport_Empty(t *testing.T) {
	report := CompileReport("run-1", nil)

	if report.OverallScore != 0 {
		t.Errorf("expected overall score 0, got %d", report.OverallScore)
	}
	if report.RunID != "run-1" {
		t.Errorf("expected run id carried through, got %q", report.RunID)
	}
	if len(report.TopRecommendations) != 0 || len(report.TopConcerns) != 0 {
		t.Error("empty input must produce empty pools")
	}
	if report.GeneratedAt.IsZero() {
		t.Error("expected a generation timestamp")
	}
}

func TestCompileReport_OverallScore(t *testing.T) {
	reviews := []SectionReview{
		{SectionID: "a", Score: 85},
		{SectionID: "b", Score: 65},
	}

	report := CompileReport("run-1", reviews)
	if report.OverallScore != 75 {
		t.Errorf("expected overall score 75, got %d", report.OverallScore)
	}
}

func TestCompileReport_PoolsAndCaps(t *testing.T) {
	// 3 sections with overlapping recommendations; pooled list dedupes and
	// caps while keeping first-seen order.
	var reviews []SectionReview
	for i := 0; i < 3; i++ {
		sr := SectionReview{SectionID: fmt.Sprintf("s%d", i), Score: 50}
		sr.Recommendations = []string{"shared rec"}
		for j := 0; j < 5; j++ {
			sr.Recommendations = append(sr.Recommendations, fmt.Sprintf("rec %d-%d", i, j))
		}
		sr.Concerns = []string{"shared concern", fmt.Sprintf("concern %d", i), fmt.Sprintf("extra %d", i)}
		reviews = append(reviews, sr)
	}

	report := CompileReport("run-1", reviews)

	if len(report.TopRecommendations) != maxReportRecommendations {
		t.Errorf("expected %d top recommendations, got %d", maxReportRecommendations, len(report.TopRecommendations))
	}
	if report.TopRecommendations[0] != "shared rec" {
		t.Errorf("expected first-seen ordering, got %v", report.TopRecommendations)
	}
	for i, r := range report.TopRecommendations[1:] {
		if report.TopRecommendations[i] == r {
			t.Errorf("duplicate survived dedup: %q", r)
		}
	}

	wantConcerns := []string{"shared concern", "concern 0", "extra 0", "concern 1", "extra 1"}
	if diff := cmp.Diff(wantConcerns, report.TopConcerns); diff != "" {
		t.Errorf("top concerns mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderReport(t *testing.T) {
	report := CompileReport("run-1", []SectionReview{
		{
			SectionID:   "alpha",
			SectionName: "Alpha",
			Status:      StatusCompleted,
			Score:       85,
			Weight:      2.0,
			Critiques: []Critique{
				{ExpertName: "Fin One", Score: 80, Insight: "Solid base case."},
				{ExpertName: "Fin Two", Score: 90, Insight: "Margins hold up."},
			},
			Recommendations: []string{"Add a downside scenario"},
			Concerns:        []string{"Churn assumption untested"},
		},
		{
			SectionID:   "beta",
			SectionName: "Beta",
			Status:      StatusCompleted,
			Score:       65,
			Weight:      1.0,
		},
	})

	out := RenderReport(report)

	for _, want := range []string{
		"# Document Review Report",
		"**Overall Score:** 75/100",
		"**Sections Reviewed:** 2",
		"## Alpha — 85/100 (weight 2.0)",
		"## Beta — 65/100",
		"**Fin One** (80/100): Solid base case.",
		"- Add a downside scenario",
		"- Churn assumption untested",
		"## Summary",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q\n%s", want, out)
		}
	}

	// Default-weight sections do not advertise their weight.
	if strings.Contains(out, "Beta — 65/100 (weight") {
		t.Error("weight 1.0 must not be rendered")
	}
}
