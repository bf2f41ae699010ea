package service

import (
	"context"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// FetchHistory returns the session's most recent messages oldest-first as role/content pairs.
// A non-positive limit uses the default of 10.
func (s *Service) FetchHistory(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	messages, err := s.store.RecentMessages(ctx, sessionID, limit)
	if err != nil {
		return nil, domain.NewRetrievalError(err)
	}

	// The store returns newest first.
	history := make([]domain.HistoryEntry, len(messages))
	for i, msg := range messages {
		history[len(messages)-1-i] = domain.HistoryEntry{
			Role:    msg.Message.Type,
			Content: msg.Message.Content,
		}
	}
	return history, nil
}
