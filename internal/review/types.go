// Package review implements the multi-expert document review engine: per
// (section, expert) critique invocation with fallback, per-section consensus
// aggregation, the concurrent review orchestrator, and the report compiler.
package review

import "time"

// SectionStatus is the lifecycle state of a section review.
type SectionStatus string

const (
	StatusPending    SectionStatus = "pending"
	StatusInProgress SectionStatus = "in_progress"
	StatusCompleted  SectionStatus = "completed"
)

// Limits on list sizes throughout the engine.
const (
	maxCritiqueRecommendations = 3
	maxCritiqueConcerns        = 2
	maxSectionRecommendations  = 5
	maxSectionConcerns         = 3
	maxReportRecommendations   = 10
	maxReportConcerns          = 5
)

// Critique is one expert's scored evaluation of one section. Immutable once
// created; the aggregator only reads it.
type Critique struct {
	ExpertID        string    `json:"expert_id"`
	ExpertName      string    `json:"expert_name"`
	Insight         string    `json:"insight"`
	Score           int       `json:"score"` // clamped to [0,100]
	Recommendations []string  `json:"recommendations"` // at most 3
	Concerns        []string  `json:"concerns"`        // at most 2
	CreatedAt       time.Time `json:"created_at"`

	// Fallback marks critiques synthesized after a reasoning failure.
	// Report structure is identical either way; this only feeds logging
	// and metrics.
	Fallback bool `json:"-"`
}

// SectionReview is the per-section consensus built from all critiques for
// that section.
type SectionReview struct {
	SectionID   string        `json:"section_id"`
	SectionName string        `json:"section_name"`
	Status      SectionStatus `json:"status"`
	Critiques   []Critique    `json:"critiques"`

	// Score is the rounded arithmetic mean of the critique scores; it is
	// never set independently of the critiques.
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"` // deduped, at most 5
	Concerns        []string `json:"concerns"`        // deduped, at most 3

	// Weight is the business template's importance weight for this
	// section. Informational only; the score is an unweighted mean.
	Weight float64 `json:"weight"`
}

// ConsolidatedReport is the derived whole-document view built once from a
// finished set of section reviews.
type ConsolidatedReport struct {
	RunID              string          `json:"run_id"`
	OverallScore       int             `json:"overall_score"`
	Sections           []SectionReview `json:"sections"`
	TopRecommendations []string        `json:"top_recommendations"` // at most 10
	TopConcerns        []string        `json:"top_concerns"`        // at most 5
	GeneratedAt        time.Time       `json:"generated_at"`
}
