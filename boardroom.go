// Package boardroom reviews structured business documents with a panel of
// LLM-backed expert personas. It is a pure orchestration library: the host
// application owns persistence, transport and UI, and calls in here with
// document content keyed by section.
//
// Typical use:
//
//	engine, err := boardroom.New(cfg, logger)
//	result, err := engine.Review(ctx, boardroom.ReviewInput{
//		Content: map[string]string{"market_analysis": text},
//	})
//	report := engine.Compile(result)
package boardroom

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"boardroom/internal/catalog"
	"boardroom/internal/config"
	"boardroom/internal/logging"
	"boardroom/internal/panel"
	"boardroom/internal/reasoning"
	"boardroom/internal/review"
)

// Re-exported types so callers don't import internal packages.
type (
	Config             = config.Config
	Critique           = review.Critique
	SectionReview      = review.SectionReview
	ConsolidatedReport = review.ConsolidatedReport
	Selection          = panel.Selection
	ExpertPersona      = catalog.ExpertPersona
)

// ReviewInput is the caller's input for one document review.
type ReviewInput struct {
	// Content maps section id to excerpt; missing sections are reviewed
	// against generic expectations.
	Content map[string]string

	// TemplateID optionally selects a business template (e.g. "saas").
	TemplateID string

	// OnSectionComplete, when set, receives each section review as it
	// completes, in section order.
	OnSectionComplete func(SectionReview)
}

// RunResult pairs a run's identifier with its completed section reviews.
type RunResult struct {
	RunID    string
	Sections []SectionReview
}

// Engine is the assembled review engine: catalogue, reasoning client,
// critique invoker and team selector, sharing one logger. An Engine is safe
// for concurrent use; each Review call is an independent run.
type Engine struct {
	catalog  *catalog.Catalog
	critic   *review.Critic
	selector *panel.Selector
	logger   *zap.Logger
}

// New assembles an engine from configuration. The reasoning provider comes
// from cfg.LLM; the catalogue is the built-in default unless
// cfg.Review.CataloguePath points at a YAML catalogue.
func New(cfg *Config, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger = logging.OrNop(logger)

	client, err := reasoning.NewClient(cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("reasoning client: %w", err)
	}

	cat := catalog.Default()
	if cfg.Review.CataloguePath != "" {
		cat, err = catalog.Load(cfg.Review.CataloguePath)
		if err != nil {
			return nil, fmt.Errorf("catalogue: %w", err)
		}
	}

	selectorCfg := panel.DefaultConfig()
	if cfg.Panel.MinSize > 0 {
		selectorCfg.MinSize = cfg.Panel.MinSize
	}
	if cfg.Panel.MaxSize > 0 {
		selectorCfg.MaxSize = cfg.Panel.MaxSize
	}
	selectorCfg.Timeout = cfg.Panel.GetSelectTimeout()

	return &Engine{
		catalog:  cat,
		critic:   review.NewCritic(client, logger, cfg.Review.GetCritiqueTimeout()),
		selector: panel.NewSelector(client, cat, selectorCfg, logger),
		logger:   logger,
	}, nil
}

// Review runs a full document review and returns the completed section
// reviews in catalogue order. Reasoning failures degrade to fallback
// critique content; the only errors are contract violations and
// cancellation.
func (e *Engine) Review(ctx context.Context, input ReviewInput) (*RunResult, error) {
	orch := review.NewOrchestrator(e.catalog, e.critic, e.logger)
	sections, err := orch.Run(ctx, review.RunRequest{
		Content:           input.Content,
		TemplateID:        input.TemplateID,
		OnSectionComplete: input.OnSectionComplete,
	})
	if err != nil {
		return nil, err
	}
	return &RunResult{RunID: orch.RunID(), Sections: sections}, nil
}

// Compile builds the consolidated report for a finished review.
func (e *Engine) Compile(result *RunResult) ConsolidatedReport {
	return review.CompileReport(result.RunID, result.Sections)
}

// Render formats a consolidated report as markdown.
func (e *Engine) Render(report ConsolidatedReport) string {
	return review.RenderReport(report)
}

// SelectTeam picks an expert panel for an arbitrary document. Never fails;
// an unreachable reasoning service yields the fixed default panel.
func (e *Engine) SelectTeam(ctx context.Context, document string) Selection {
	return e.selector.Select(ctx, document, nil)
}

// Experts returns the engine's expert registry.
func (e *Engine) Experts() []ExpertPersona {
	return e.catalog.Experts()
}
