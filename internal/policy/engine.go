// Package policy evaluates the admission policy for agent requests.
package policy

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// DefaultPolicy rejects requests missing one of the string fields of an agent request.
// Empty strings are admitted.
//
//go:embed agent_request.rego
var DefaultPolicy string

// Engine is the OPA admission engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine prepares the given Rego module. The module must define
// data.agent_request.deny as a set of rejection reasons.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.agent_request.deny"),
		rego.Module("agent_request.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate returns the sorted rejection reasons for the input. An empty result admits it.
func (e *Engine) Evaluate(ctx context.Context, input map[string]any) ([]string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return nil, nil
	}

	values, ok := results[0].Expressions[0].Value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected policy result type %T", results[0].Expressions[0].Value)
	}

	reasons := make([]string, 0, len(values))
	for _, v := range values {
		reasons = append(reasons, fmt.Sprint(v))
	}
	sort.Strings(reasons)
	return reasons, nil
}

// Admit returns an invalid-input error when the policy rejects the decoded request body.
func (e *Engine) Admit(ctx context.Context, input map[string]any) error {
	reasons, err := e.Evaluate(ctx, input)
	if err != nil {
		return err
	}
	if len(reasons) > 0 {
		return domain.NewInvalidInputError(strings.Join(reasons, "; "))
	}
	return nil
}
