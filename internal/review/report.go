package review

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// CompileReport builds the consolidated whole-document view from a finished
// set of section reviews. Pure function: no network calls, no failure modes.
// An empty input produces a report with overall score 0.
func CompileReport(runID string, reviews []SectionReview) ConsolidatedReport {
	report := ConsolidatedReport{
		RunID:       runID,
		Sections:    reviews,
		GeneratedAt: time.Now(),
	}

	if len(reviews) == 0 {
		return report
	}

	sum := 0
	var recs, concerns []string
	for _, sr := range reviews {
		sum += sr.Score
		recs = append(recs, sr.Recommendations...)
		concerns = append(concerns, sr.Concerns...)
	}

	report.OverallScore = int(math.Round(float64(sum) / float64(len(reviews))))
	report.TopRecommendations = dedupe(recs, maxReportRecommendations)
	report.TopConcerns = dedupe(concerns, maxReportConcerns)
	return report
}

// RenderReport formats a consolidated report as markdown: one block per
// section followed by a pooled summary.
func RenderReport(report ConsolidatedReport) string {
	var sb strings.Builder

	sb.WriteString("# Document Review Report\n\n")
	sb.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("**Sections Reviewed:** %d\n\n", len(report.Sections)))

	for _, sr := range report.Sections {
		sb.WriteString(fmt.Sprintf("## %s — %d/100", sr.SectionName, sr.Score))
		if sr.Weight != 1.0 {
			sb.WriteString(fmt.Sprintf(" (weight %.1f)", sr.Weight))
		}
		sb.WriteString("\n\n")

		for _, c := range sr.Critiques {
			sb.WriteString(fmt.Sprintf("**%s** (%d/100): %s\n\n", c.ExpertName, c.Score, c.Insight))
		}

		if len(sr.Recommendations) > 0 {
			sb.WriteString("**Recommendations:**\n")
			for _, r := range sr.Recommendations {
				sb.WriteString(fmt.Sprintf("- %s\n", r))
			}
			sb.WriteString("\n")
		}

		if len(sr.Concerns) > 0 {
			sb.WriteString("**Concerns:**\n")
			for _, c := range sr.Concerns {
				sb.WriteString(fmt.Sprintf("- %s\n", c))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("## Summary\n\n")
	if len(report.TopRecommendations) > 0 {
		sb.WriteString("**Top Recommendations:**\n")
		for _, r := range report.TopRecommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", r))
		}
		sb.WriteString("\n")
	}
	if len(report.TopConcerns) > 0 {
		sb.WriteString("**Top Concerns:**\n")
		for _, c := range report.TopConcerns {
			sb.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	return sb.String()
}
