package llm

import (
	"github.com/xiaot623/snippetagent/internal/config"
	"github.com/xiaot623/snippetagent/internal/logger"
)

// ModeMock selects the mock client.
const ModeMock = "MOCK"

// NewCompleter creates a Completer based on cfg.Mode.
// If the mode is MOCK, returns a MockClient; otherwise returns a real Client.
func NewCompleter(cfg *config.Config) Completer {
	if cfg.Mode == ModeMock {
		logger.Warn("AGENT_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}
	if cfg.LLMAPIKey == "" {
		logger.Warn("no completion API key configured; calls will be rejected upstream")
	}

	return NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout).
		WithHistory(cfg.LLMIncludeHistory)
}
