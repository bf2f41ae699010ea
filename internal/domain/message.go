package domain

import "time"

// MessageBody is the nested message object persisted for every turn.
type MessageBody struct {
	Type    MessageType    `json:"type"`
	Content string         `json:"content"`
	Data    map[string]any `json:"data,omitempty"`
}

// Message is one persisted row of a session's history.
type Message struct {
	ID        int64       `json:"id"`
	SessionID string      `json:"session_id"`
	Message   MessageBody `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

// HistoryEntry is the role/content projection of a stored message.
type HistoryEntry struct {
	Role    MessageType `json:"role"`
	Content string      `json:"content"`
}
