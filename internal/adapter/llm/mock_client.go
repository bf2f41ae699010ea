package llm

import (
	"context"
	"fmt"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// MockClient is a canned Completer for local runs without an API key.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Completer interface.
var _ Completer = (*MockClient)(nil)

// Complete echoes the query back.
func (m *MockClient) Complete(ctx context.Context, query string, history []domain.HistoryEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewCompletionError(err)
	}
	return fmt.Sprintf("[MOCK] Received your snippet: %q (%d prior turns). This is a mock response.", truncate(query, 100), len(history)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
