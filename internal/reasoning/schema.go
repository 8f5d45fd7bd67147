package reasoning

// Wire schemas for the two structured payloads the review engine requests.
// Each schema is built fresh per call site; providers translate the raw map
// into their own structured-output mechanism.

// CritiqueSchema returns the JSON schema for a single expert critique.
func CritiqueSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"insight": map[string]interface{}{
				"type":        "string",
				"description": "The expert's main assessment of the section",
			},
			"score": map[string]interface{}{
				"type":        "integer",
				"description": "Section quality score from 0 to 100",
			},
			"recommendations": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"concerns": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
		},
		"required": []string{"insight", "score", "recommendations", "concerns"},
	}
}

// TeamSelectionSchema returns the JSON schema for an expert panel selection.
func TeamSelectionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"selectedExperts": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"reasoning": map[string]interface{}{
				"type": "string",
			},
			"teamComposition": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"expertId":  map[string]interface{}{"type": "string"},
						"role":      map[string]interface{}{"type": "string"},
						"rationale": map[string]interface{}{"type": "string"},
					},
					"required": []string{"expertId", "role", "rationale"},
				},
			},
		},
		"required": []string{"selectedExperts", "reasoning", "teamComposition"},
	}
}
