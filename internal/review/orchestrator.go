package review

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"boardroom/internal/catalog"
	"boardroom/internal/logging"
	"boardroom/internal/metrics"
)

// runState is the lifecycle of a review run.
type runState int

const (
	runNotStarted runState = iota
	runRunning
	runCompleted
)

// RunRequest is the caller's input for one document review.
type RunRequest struct {
	// Content maps section id to the document excerpt for that section.
	// Missing keys are treated as empty excerpts, which is not an error.
	Content map[string]string

	// TemplateID optionally selects a business template. An unknown id is
	// a contract violation.
	TemplateID string

	// OnSectionComplete, when set, is invoked after each section review
	// completes, in catalogue order.
	OnSectionComplete func(SectionReview)
}

// Orchestrator drives a full document review: for every section in catalogue
// order it fans out one critique call per eligible expert, waits for the
// fan-in, aggregates the consensus, and emits a completion event.
//
// An Orchestrator is single-use; create a new one per run. The catalogues it
// reads are immutable, so any number of orchestrators may share them.
type Orchestrator struct {
	catalog *catalog.Catalog
	critic  *Critic
	logger  *zap.Logger
	runID   string

	mu    sync.Mutex
	state runState
}

// NewOrchestrator creates an orchestrator for a single review run.
func NewOrchestrator(cat *catalog.Catalog, critic *Critic, logger *zap.Logger) *Orchestrator {
	runID := uuid.NewString()
	return &Orchestrator{
		catalog: cat,
		critic:  critic,
		logger:  logging.OrNop(logger).With(zap.String("run_id", runID)),
		runID:   runID,
	}
}

// RunID returns this run's unique identifier.
func (o *Orchestrator) RunID() string {
	return o.runID
}

// Run executes the review and returns one completed SectionReview per
// catalogue section, in catalogue order.
//
// Reasoning failures never fail the run; they surface as fallback critique
// content. The only errors returned are contract violations (reused
// orchestrator, unknown template id, a section with no eligible experts) and
// cancellation. Cancellation is cooperative: it is checked between sections,
// and a cancelled run returns the reviews completed so far alongside the
// context's error.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) ([]SectionReview, error) {
	o.mu.Lock()
	if o.state != runNotStarted {
		o.mu.Unlock()
		return nil, fmt.Errorf("orchestrator already used; create a new one per run")
	}
	o.state = runRunning
	o.mu.Unlock()

	start := time.Now()
	defer func() {
		metrics.ReviewDuration.Observe(time.Since(start).Seconds())
	}()

	var template *catalog.BusinessTemplate
	if req.TemplateID != "" {
		t, ok := o.catalog.Template(req.TemplateID)
		if !ok {
			return nil, fmt.Errorf("unknown business template: %s", req.TemplateID)
		}
		template = &t
	}

	sections := o.catalog.Sections()
	o.logger.Info("review run started",
		zap.Int("sections", len(sections)),
		zap.String("template", req.TemplateID))

	reviews := make([]SectionReview, 0, len(sections))
	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("review run cancelled",
				zap.Int("completed_sections", len(reviews)))
			return reviews, err
		}

		sr, err := o.reviewSection(ctx, section, req.Content[section.ID], template)
		if err != nil {
			return nil, err
		}

		if req.OnSectionComplete != nil {
			req.OnSectionComplete(sr)
		}
		reviews = append(reviews, sr)
	}

	o.mu.Lock()
	o.state = runCompleted
	o.mu.Unlock()

	o.logger.Info("review run completed",
		zap.Int("sections", len(reviews)),
		zap.Duration("elapsed", time.Since(start)))
	return reviews, nil
}

// reviewSection runs the expert fan-out for one section and aggregates the
// results. Concurrency is bounded by the section's expert count; sections
// themselves run sequentially.
func (o *Orchestrator) reviewSection(ctx context.Context, section catalog.SectionDefinition, excerpt string, template *catalog.BusinessTemplate) (SectionReview, error) {
	experts := o.catalog.ExpertsForSection(section)
	if len(experts) == 0 {
		return SectionReview{}, fmt.Errorf("section %s has no eligible experts", section.ID)
	}

	sr := SectionReview{
		SectionID:   section.ID,
		SectionName: section.Name,
		Status:      StatusPending,
		Weight:      1.0,
	}

	var guidance string
	if template != nil {
		guidance = template.Guidance(section.ID)
		sr.Weight = template.Weight(section.ID)
	}

	sr.Status = StatusInProgress
	o.logger.Debug("section review started",
		zap.String("section", section.ID),
		zap.Int("experts", len(experts)))

	// Indexed writes keep the fan-in race-free without a mutex; arrival
	// order is irrelevant because aggregation is commutative.
	critiques := make([]Critique, len(experts))
	g, gctx := errgroup.WithContext(ctx)
	for i, expert := range experts {
		g.Go(func() error {
			metrics.ExpertCallsActive.Inc()
			defer metrics.ExpertCallsActive.Dec()
			critiques[i] = o.critic.Critique(gctx, section, excerpt, expert, guidance)
			return nil
		})
	}
	// The critic never returns an error; Wait is for the fan-in only.
	_ = g.Wait()

	sr.Critiques = critiques
	if err := aggregateSection(&sr); err != nil {
		return SectionReview{}, err
	}
	sr.Status = StatusCompleted

	o.logger.Info("section review completed",
		zap.String("section", section.ID),
		zap.Int("score", sr.Score),
		zap.Int("critiques", len(sr.Critiques)))
	return sr, nil
}
