package authz

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

//go:embed catalog.rego
var policyContent string

// Checker evaluates permission checks against the embedded catalog policy.
// The policy is compiled once at construction; evaluation is input-only.
type Checker struct {
	prepared rego.PreparedEvalQuery
}

// NewChecker compiles the catalog policy and prepares it for evaluation.
func NewChecker() (*Checker, error) {
	query, err := rego.New(
		rego.Query("data.catalog.allow"),
		rego.Module("catalog.rego", policyContent),
	).PrepareForEval(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare policy query: %w", err)
	}

	return &Checker{prepared: query}, nil
}

// HasAny reports whether the requestor holds at least one of the required
// permissions. Evaluation failures deny.
func (c *Checker) HasAny(ctx context.Context, requestor Requestor, required []Permission) bool {
	held := make([]string, len(requestor.Permissions))
	for i, p := range requestor.Permissions {
		held[i] = string(p)
	}
	want := make([]string, len(required))
	for i, p := range required {
		want[i] = string(p)
	}

	input := map[string]interface{}{
		"held":     held,
		"required": want,
	}

	results, err := c.prepared.Eval(ctx, rego.EvalInput(input))
	if err != nil || len(results) == 0 {
		return false
	}

	allowed, ok := results[0].Expressions[0].Value.(bool)
	return ok && allowed
}
