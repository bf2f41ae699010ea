// Package llm provides the completion client used by the agent endpoint.
package llm

import (
	"context"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// Completer turns a user query into model text.
type Completer interface {
	// Complete issues one synchronous completion and returns the first choice's text,
	// or "" when the response carries no choices.
	Complete(ctx context.Context, query string, history []domain.HistoryEntry) (string, error)
}

// Ensure Client implements Completer interface.
var _ Completer = (*Client)(nil)
