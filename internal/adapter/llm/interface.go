// Package llm provides an abstraction for the text-generation backend.
package llm

import (
	"context"
	"encoding/json"

	"github.com/brandloom/brandloom/internal/domain"
)

// Client is the uniform generation call shape. Every generator tool is a
// distinct instantiation of this one exchange: tool id plus structured
// input in, structured output out.
type Client interface {
	// Invoke runs a single generation exchange for the given tool and
	// returns the raw JSON output.
	Invoke(ctx context.Context, tool domain.Tool, input any) (json.RawMessage, error)

	// Close releases client resources.
	Close() error
}

// Ensure implementations satisfy the interface.
var (
	_ Client = (*GeminiClient)(nil)
	_ Client = (*MockClient)(nil)
)
