// Package panel implements expert team selection: asking the reasoning
// service to pick the smallest sufficient panel of experts for an arbitrary
// document, with deterministic validation and padding so callers always get
// a viable panel even when the service misbehaves or is unreachable.
package panel

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

// RoleAssignment is one expert's role within a selected panel.
type RoleAssignment struct {
	ExpertID  string `json:"expertId"`
	Role      string `json:"role"`
	Rationale string `json:"rationale"`
}

// Selection is the outcome of one team-selection call.
type Selection struct {
	Experts     []string         `json:"selectedExperts"`
	Reasoning   string           `json:"reasoning"`
	Composition []RoleAssignment `json:"teamComposition"`
}

// Config bounds the panel and orders the deterministic padding.
type Config struct {
	MinSize int
	MaxSize int

	// DefaultOrder is the fixed priority list used both to pad undersized
	// selections and as the fallback panel when the reasoning call fails.
	DefaultOrder []string

	Timeout time.Duration
}

// DefaultConfig returns the standard panel bounds with the catalogue's
// default priority list.
func DefaultConfig() Config {
	return Config{
		MinSize:      4,
		MaxSize:      8,
		DefaultOrder: catalog.DefaultPanelOrder,
		Timeout:      2 * time.Minute,
	}
}

// fallbackReasoning is the documented constant explanation attached to a
// default panel.
const fallbackReasoning = "Expert selection service was unavailable; " +
	"assigned the standard review panel covering finance, strategy, operations and marketing."

// Selector chooses an expert panel for a document.
type Selector struct {
	client  reasoning.Client
	catalog *catalog.Catalog
	config  Config
	logger  *zap.Logger
}

// NewSelector creates a team selector over the given expert registry.
func NewSelector(client reasoning.Client, cat *catalog.Catalog, cfg Config, logger *zap.Logger) *Selector {
	if cfg.MinSize <= 0 {
		cfg.MinSize = 4
	}
	if cfg.MaxSize < cfg.MinSize {
		cfg.MaxSize = cfg.MinSize * 2
	}
	if len(cfg.DefaultOrder) == 0 {
		cfg.DefaultOrder = catalog.DefaultPanelOrder
	}
	return &Selector{
		client:  client,
		catalog: cat,
		config:  cfg,
		logger:  logging.OrNop(logger),
	}
}

// Select picks a panel for the document. The document may be empty and
// candidates may be nil (meaning the full registry). This method never
// fails: a reasoning failure yields the fixed default panel, and an invalid
// selection is repaired by validation and deterministic padding.
func (s *Selector) Select(ctx context.Context, document string, candidates []catalog.ExpertPersona) Selection {
	if candidates == nil {
		candidates = s.catalog.Experts()
	}

	sel, err := s.ask(ctx, document, candidates)
	if err != nil {
		s.logger.Warn("team selection degraded to default panel", zap.Error(err))
		metrics.PanelFallbacks.Inc()
		return s.defaultSelection()
	}

	return s.validate(sel)
}

// ask performs the single reasoning call and parses the structured response.
func (s *Selector) ask(ctx context.Context, document string, candidates []catalog.ExpertPersona) (Selection, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	raw, err := s.client.Generate(ctx, reasoning.Request{
		System: "You assemble review panels for business documents. Pick the smallest team that covers every competency the document needs.",
		User:   buildSelectionPrompt(document, candidates, s.config.MinSize, s.config.MaxSize),
		Schema: reasoning.TeamSelectionSchema(),
	})
	if err != nil {
		return Selection{}, err
	}

	data, err := reasoning.ExtractJSON(raw)
	if err != nil {
		return Selection{}, err
	}

	var sel Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		return Selection{}, fmt.Errorf("malformed selection payload: %w", err)
	}
	return sel, nil
}

func buildSelectionPrompt(document string, candidates []catalog.ExpertPersona, minSize, maxSize int) string {
	var sb strings.Builder

	sb.WriteString("Available experts:\n")
	for _, e := range candidates {
		sb.WriteString(fmt.Sprintf("- id: %s | category: %s | %s\n", e.ID, e.Category, e.Name))
	}

	sb.WriteString(fmt.Sprintf("\nSelect between %d and %d experts to review the document below. ", minSize, maxSize))
	sb.WriteString("Use only the ids listed above.\n")

	if strings.TrimSpace(document) == "" {
		sb.WriteString("\nNo document content is available yet; select a balanced general-purpose panel.\n")
	} else {
		sb.WriteString("\nDocument:\n---\n")
		sb.WriteString(document)
		sb.WriteString("\n---\n")
	}

	sb.WriteString("\nRespond with JSON: {\"selectedExperts\": string[], \"reasoning\": string, ")
	sb.WriteString("\"teamComposition\": [{\"expertId\": string, \"role\": string, \"rationale\": string}]}.")
	return sb.String()
}

// validate repairs a raw selection: unknown ids are dropped, duplicates
// removed (first occurrence wins), the list is truncated to MaxSize, then
// padded from the fixed priority list up to MinSize. The padding draws from
// DefaultOrder even when the registry itself is smaller than MinSize, so a
// minimum viable panel is always produced. Composition entries are filtered
// to the final id set.
func (s *Selector) validate(sel Selection) Selection {
	seen := make(map[string]bool, len(sel.Experts))
	valid := make([]string, 0, s.config.MaxSize)
	for _, id := range sel.Experts {
		if !s.catalog.HasExpert(id) {
			s.logger.Debug("discarding unknown expert id from selection", zap.String("expert", id))
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		valid = append(valid, id)
		if len(valid) == s.config.MaxSize {
			break
		}
	}

	for _, id := range s.config.DefaultOrder {
		if len(valid) >= s.config.MinSize {
			break
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		valid = append(valid, id)
	}

	filtered := make([]RoleAssignment, 0, len(sel.Composition))
	for _, ra := range sel.Composition {
		if seen[ra.ExpertID] {
			filtered = append(filtered, ra)
		}
	}

	return Selection{
		Experts:     valid,
		Reasoning:   sel.Reasoning,
		Composition: filtered,
	}
}

// defaultSelection is the fixed panel returned when the reasoning call
// itself fails.
func (s *Selector) defaultSelection() Selection {
	size := s.config.MinSize
	if size > len(s.config.DefaultOrder) {
		size = len(s.config.DefaultOrder)
	}
	experts := make([]string, size)
	copy(experts, s.config.DefaultOrder[:size])

	composition := make([]RoleAssignment, len(experts))
	for i, id := range experts {
		role := "panel member"
		if p, ok := s.catalog.Expert(id); ok {
			role = p.Category + " reviewer"
		}
		composition[i] = RoleAssignment{
			ExpertID:  id,
			Role:      role,
			Rationale: "Standard panel assignment",
		}
	}

	return Selection{
		Experts:     experts,
		Reasoning:   fallbackReasoning,
		Composition: composition,
	}
}
