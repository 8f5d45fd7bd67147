package review

import (
	"fmt"
	"math"
)

// aggregateScores returns the rounded arithmetic mean of the critique
// scores. The mean is commutative with respect to critique arrival order,
// which is what lets the orchestrator fan in expert results in any order.
func aggregateScores(critiques []Critique) (int, error) {
	if len(critiques) == 0 {
		// Contract violation: every section resolves at least one expert
		// and the critic never fails, so an empty list means a caller bug.
		return 0, fmt.Errorf("cannot aggregate empty critique list")
	}

	sum := 0
	for _, c := range critiques {
		sum += c.Score
	}
	return int(math.Round(float64(sum) / float64(len(critiques)))), nil
}

// dedupe returns the first-seen-order union of the input, with exact-string
// duplicates removed, truncated to max entries. Exact matching is the
// documented baseline; near-duplicate phrasing does not merge.
func dedupe(items []string, max int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, max)
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == max {
			break
		}
	}
	return out
}

// aggregateSection fills a section review's consensus fields from its
// critiques: mean score, and deduplicated capped recommendation/concern
// pools in first-seen order.
func aggregateSection(sr *SectionReview) error {
	score, err := aggregateScores(sr.Critiques)
	if err != nil {
		return fmt.Errorf("section %s: %w", sr.SectionID, err)
	}
	sr.Score = score

	var recs, concerns []string
	for _, c := range sr.Critiques {
		recs = append(recs, c.Recommendations...)
		concerns = append(concerns, c.Concerns...)
	}
	sr.Recommendations = dedupe(recs, maxSectionRecommendations)
	sr.Concerns = dedupe(concerns, maxSectionConcerns)
	return nil
}
