// Package reasoning provides the client layer for the external reasoning
// service. A provider takes a structured prompt and returns either raw text
// (usually JSON matching a requested schema) or an error. No fallback content
// is synthesized here; callers own their degradation policy.
package reasoning

import (
	"context"
	"errors"
)

// Request is a single structured prompt against the reasoning service.
type Request struct {
	// System carries the persona / role instructions. May be empty.
	System string

	// User carries the document content and task description.
	User string

	// Schema, when non-nil, requests schema-constrained JSON output.
	// The map is a raw JSON schema; providers translate it to their own
	// structured-output mechanism.
	Schema map[string]interface{}
}

// Client is the single-call abstraction over a reasoning provider.
type Client interface {
	// Generate sends the request and returns the raw response text.
	// Timeouts, transport errors, provider error payloads and empty
	// responses all surface as errors.
	Generate(ctx context.Context, req Request) (string, error)

	// Model returns the model identifier in use.
	Model() string
}

// ErrEmptyResponse indicates the provider returned no completion.
var ErrEmptyResponse = errors.New("reasoning: no completion returned")
