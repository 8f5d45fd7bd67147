// Package catalog holds the static catalogues the review engine runs
// against: document section definitions, business-type templates, and expert
// personas. A Catalog is built once at process start and is read-only from
// then on, so it is shared freely across concurrent review runs.
package catalog

import "fmt"

// SectionDefinition describes one named subdivision of a business document.
type SectionDefinition struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	GuidingQuestions []string `yaml:"guiding_questions"`
	ExpertCategories []string `yaml:"expert_categories"`
}

// BusinessTemplate tunes a review for a type of business. Weights and
// guidance are keyed by section id; sections without an entry get weight 1.0
// and no extra guidance.
type BusinessTemplate struct {
	ID               string             `yaml:"id"`
	Name             string             `yaml:"name"`
	SectionWeights   map[string]float64 `yaml:"section_weights"`
	SectionGuidance  map[string]string  `yaml:"section_guidance"`
	KeyMetrics       []string           `yaml:"key_metrics"`
	PreferredExperts []string           `yaml:"preferred_experts"`
}

// Weight returns the importance weight for a section, defaulting to 1.0.
func (t *BusinessTemplate) Weight(sectionID string) float64 {
	if w, ok := t.SectionWeights[sectionID]; ok && w > 0 {
		return w
	}
	return 1.0
}

// Guidance returns the template's free-text guidance for a section, or "".
func (t *BusinessTemplate) Guidance(sectionID string) string {
	return t.SectionGuidance[sectionID]
}

// ExpertPersona is a named reviewer profile. Category drives section
// eligibility matching; Persona is the instruction text that shapes the
// reasoning call's perspective.
type ExpertPersona struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Persona  string `yaml:"persona"`
}

// Catalog is the immutable registry of sections, templates and experts.
type Catalog struct {
	sections  []SectionDefinition
	templates map[string]BusinessTemplate
	experts   []ExpertPersona

	sectionIndex map[string]int
	expertIndex  map[string]int
}

// New builds a catalogue from explicit definitions, validating internal
// consistency: unique ids, and at least one eligible expert per section.
func New(sections []SectionDefinition, templates []BusinessTemplate, experts []ExpertPersona) (*Catalog, error) {
	c := &Catalog{
		sections:     sections,
		templates:    make(map[string]BusinessTemplate, len(templates)),
		experts:      experts,
		sectionIndex: make(map[string]int, len(sections)),
		expertIndex:  make(map[string]int, len(experts)),
	}

	for i, s := range sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section %d has empty id", i)
		}
		if _, dup := c.sectionIndex[s.ID]; dup {
			return nil, fmt.Errorf("duplicate section id: %s", s.ID)
		}
		c.sectionIndex[s.ID] = i
	}

	for i, e := range experts {
		if e.ID == "" {
			return nil, fmt.Errorf("expert %d has empty id", i)
		}
		if _, dup := c.expertIndex[e.ID]; dup {
			return nil, fmt.Errorf("duplicate expert id: %s", e.ID)
		}
		c.expertIndex[e.ID] = i
	}

	for _, t := range templates {
		if t.ID == "" {
			return nil, fmt.Errorf("template has empty id")
		}
		if _, dup := c.templates[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id: %s", t.ID)
		}
		c.templates[t.ID] = t
	}

	for _, s := range sections {
		if len(c.ExpertsForSection(s)) == 0 {
			return nil, fmt.Errorf("section %s has no eligible experts", s.ID)
		}
	}

	return c, nil
}

// Sections returns section definitions in their fixed declaration order.
func (c *Catalog) Sections() []SectionDefinition {
	return c.sections
}

// Section looks up a section definition by id.
func (c *Catalog) Section(id string) (SectionDefinition, bool) {
	i, ok := c.sectionIndex[id]
	if !ok {
		return SectionDefinition{}, false
	}
	return c.sections[i], true
}

// Template looks up a business template by id.
func (c *Catalog) Template(id string) (BusinessTemplate, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// Experts returns all expert personas in registry order.
func (c *Catalog) Experts() []ExpertPersona {
	return c.experts
}

// Expert looks up an expert persona by id.
func (c *Catalog) Expert(id string) (ExpertPersona, bool) {
	i, ok := c.expertIndex[id]
	if !ok {
		return ExpertPersona{}, false
	}
	return c.experts[i], true
}

// HasExpert reports whether the catalogue contains an expert id.
func (c *Catalog) HasExpert(id string) bool {
	_, ok := c.expertIndex[id]
	return ok
}

// ExpertsForSection returns the experts whose category appears in the
// section's eligible categories, in registry order.
func (c *Catalog) ExpertsForSection(section SectionDefinition) []ExpertPersona {
	eligible := make(map[string]bool, len(section.ExpertCategories))
	for _, cat := range section.ExpertCategories {
		eligible[cat] = true
	}

	var experts []ExpertPersona
	for _, e := range c.experts {
		if eligible[e.Category] {
			experts = append(experts, e)
		}
	}
	return experts
}
