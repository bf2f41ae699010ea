package service

import (
	"context"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// StoreMessage appends one message to the session. Empty data is omitted from the record.
func (s *Service) StoreMessage(ctx context.Context, sessionID string, msgType domain.MessageType, content string, data map[string]any) error {
	body := domain.MessageBody{
		Type:    msgType,
		Content: content,
	}
	if len(data) > 0 {
		body.Data = data
	}

	if err := s.store.InsertMessage(ctx, sessionID, body); err != nil {
		return domain.NewWriteError(err)
	}
	return nil
}
