// Package policy gates outbound autofill fetches through an OPA policy.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.fetch_policy.decision"),
		rego.Module("fetch_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks the fetch policy for one outbound request.
// Input keys: scheme, host. Returns the decision (allow or block).
func (e *Engine) Evaluate(ctx context.Context, input map[string]any) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy is expected to define a default.
		return "allow", nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return "allow", nil
}

// DefaultPolicy blocks non-HTTP schemes and private or loopback hosts.
const DefaultPolicy = `
package fetch_policy

default decision := "allow"

decision := "block" if not allowed_scheme

decision := "block" if private_host

allowed_scheme if input.scheme == "http"

allowed_scheme if input.scheme == "https"

private_host if input.host == "localhost"

private_host if input.host == "0.0.0.0"

private_host if endswith(input.host, ".local")

private_host if startswith(input.host, "127.")

private_host if startswith(input.host, "10.")

private_host if startswith(input.host, "192.168.")

private_host if startswith(input.host, "169.254.")
`

// AllowAll permits every fetch; used by tests that talk to local servers.
const AllowAll = `
package fetch_policy

default decision := "allow"
`
