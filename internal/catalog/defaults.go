package catalog

// Built-in catalogue content. Deployments that need a different panel load a
// YAML catalogue instead (see Load); the defaults cover a general business
// plan review.

// DefaultPanelOrder is the fixed priority list used to pad undersized team
// selections and to build the fallback panel when the reasoning service is
// unavailable.
var DefaultPanelOrder = []string{
	"cfo",
	"market_strategist",
	"coo",
	"cmo",
	"legal_advisor",
	"tech_architect",
}

func defaultSections() []SectionDefinition {
	return []SectionDefinition{
		{
			ID:          "executive_summary",
			Name:        "Executive Summary",
			Description: "The high-level pitch: what the business does, for whom, and why now.",
			GuidingQuestions: []string{
				"Is the value proposition stated clearly in the first paragraph?",
				"Would an investor understand the business model after one read?",
				"Are the headline financials consistent with the rest of the plan?",
			},
			ExpertCategories: []string{"strategy", "finance"},
		},
		{
			ID:          "market_analysis",
			Name:        "Market Analysis",
			Description: "Target market definition, sizing, competition and positioning.",
			GuidingQuestions: []string{
				"Is the target segment specific enough to act on?",
				"Is the market sizing grounded in cited data rather than top-down guesses?",
				"Are direct and indirect competitors acknowledged?",
			},
			ExpertCategories: []string{"marketing", "strategy"},
		},
		{
			ID:          "products_services",
			Name:        "Products & Services",
			Description: "What is being sold, how it is built or delivered, and what makes it defensible.",
			GuidingQuestions: []string{
				"Is the offering described concretely rather than in aspirational terms?",
				"Is there a credible moat or differentiation?",
				"Are delivery and support obligations realistic for the team size?",
			},
			ExpertCategories: []string{"technology", "strategy"},
		},
		{
			ID:          "marketing_strategy",
			Name:        "Marketing Strategy",
			Description: "Customer acquisition channels, pricing and sales motion.",
			GuidingQuestions: []string{
				"Are acquisition channels matched to where the target customers actually are?",
				"Is pricing justified against competitors and willingness to pay?",
				"Is the cost of acquisition accounted for in the financials?",
			},
			ExpertCategories: []string{"marketing", "sales"},
		},
		{
			ID:          "operations_plan",
			Name:        "Operations Plan",
			Description: "Day-to-day execution: staffing, suppliers, processes and facilities.",
			GuidingQuestions: []string{
				"Does the staffing plan match the promised service levels?",
				"Are key supplier or platform dependencies identified with alternatives?",
				"Are the operational milestones sequenced realistically?",
			},
			ExpertCategories: []string{"operations", "hr"},
		},
		{
			ID:          "financial_projections",
			Name:        "Financial Projections",
			Description: "Revenue model, cost structure, cash flow and funding needs.",
			GuidingQuestions: []string{
				"Do the growth assumptions trace back to the market analysis?",
				"Is the burn rate and runway stated explicitly?",
				"Are the projections stress-tested with a downside case?",
			},
			ExpertCategories: []string{"finance", "legal"},
		},
	}
}

func defaultExperts() []ExpertPersona {
	return []ExpertPersona{
		{
			ID:       "cfo",
			Name:     "Miriam Osei",
			Category: "finance",
			Persona: "You are a fractional CFO who has taken three companies through Series B. " +
				"You read every number with suspicion: unit economics first, vanity metrics never. " +
				"Call out any figure that doesn't reconcile with the rest of the document.",
		},
		{
			ID:       "market_strategist",
			Name:     "Daniel Brooks",
			Category: "strategy",
			Persona: "You are a corporate strategy consultant specialising in market entry. " +
				"You evaluate positioning, timing and competitive dynamics, and you are allergic " +
				"to plans that could describe any company in the industry.",
		},
		{
			ID:       "cmo",
			Name:     "Priya Raman",
			Category: "marketing",
			Persona: "You are a CMO with a performance-marketing background. You judge every " +
				"channel claim by its expected CAC and every brand claim by whether the target " +
				"customer would recognise themselves in it.",
		},
		{
			ID:       "coo",
			Name:     "Tomasz Nowak",
			Category: "operations",
			Persona: "You are a COO who has scaled service businesses from 10 to 400 people. " +
				"You look for the operational detail founders skip: hiring pipelines, supplier " +
				"terms, and what breaks at 10x volume.",
		},
		{
			ID:       "legal_advisor",
			Name:     "Grace Lindqvist",
			Category: "legal",
			Persona: "You are a commercial lawyer advising startups. You flag regulatory " +
				"exposure, licensing gaps, and claims in the plan that could not survive due diligence.",
		},
		{
			ID:       "tech_architect",
			Name:     "Andre Fontaine",
			Category: "technology",
			Persona: "You are a principal engineer who has built and bought. You assess whether " +
				"the product as described is buildable by the stated team on the stated timeline, " +
				"and which build-vs-buy calls are wrong.",
		},
		{
			ID:       "sales_director",
			Name:     "Kate Moreno",
			Category: "sales",
			Persona: "You are a sales director for B2B mid-market deals. You judge the sales " +
				"motion: cycle length, pipeline math, and whether the revenue targets survive " +
				"contact with a real quarter.",
		},
		{
			ID:       "hr_lead",
			Name:     "Samuel Adeyemi",
			Category: "hr",
			Persona: "You are a people-operations lead. You review org design, compensation " +
				"assumptions and hiring velocity, and you flag plans that require hiring " +
				"faster than the market allows.",
		},
	}
}

func defaultTemplates() []BusinessTemplate {
	return []BusinessTemplate{
		{
			ID:   "saas",
			Name: "SaaS / Subscription Software",
			SectionWeights: map[string]float64{
				"financial_projections": 1.5,
				"market_analysis":       1.2,
			},
			SectionGuidance: map[string]string{
				"financial_projections": "Expect MRR-based projections with explicit churn and expansion assumptions.",
				"marketing_strategy":    "Self-serve vs sales-led motion should be stated; judge CAC payback accordingly.",
			},
			KeyMetrics:       []string{"MRR growth", "net revenue retention", "CAC payback months", "gross margin"},
			PreferredExperts: []string{"cfo", "tech_architect", "cmo", "market_strategist"},
		},
		{
			ID:   "retail",
			Name: "Retail / E-commerce",
			SectionWeights: map[string]float64{
				"operations_plan":    1.5,
				"marketing_strategy": 1.2,
			},
			SectionGuidance: map[string]string{
				"operations_plan":       "Inventory turns, fulfilment costs and supplier terms are the core of this section.",
				"financial_projections": "Gross margin after returns and shipping is the number that matters.",
			},
			KeyMetrics:       []string{"inventory turnover", "average order value", "return rate", "contribution margin"},
			PreferredExperts: []string{"coo", "cmo", "cfo", "sales_director"},
		},
		{
			ID:   "services",
			Name: "Professional Services",
			SectionWeights: map[string]float64{
				"operations_plan": 1.3,
			},
			SectionGuidance: map[string]string{
				"operations_plan":       "Utilisation and staffing leverage determine whether this business scales.",
				"financial_projections": "Revenue is headcount-bound; check billable utilisation assumptions.",
			},
			KeyMetrics:       []string{"billable utilisation", "revenue per employee", "client concentration"},
			PreferredExperts: []string{"coo", "hr_lead", "cfo", "market_strategist"},
		},
	}
}

// Default returns the built-in catalogue.
func Default() *Catalog {
	c, err := New(defaultSections(), defaultTemplates(), defaultExperts())
	if err != nil {
		// The built-in catalogue is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}
