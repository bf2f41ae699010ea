package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// PostgresStore implements Store on the hosted Postgres database.
type PostgresStore struct {
	db *pgxpool.Pool
}

// Ensure PostgresStore implements Store.
var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects a pool to dsn. The schema is not touched; run Migrate for that.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &PostgresStore{db: pool}, nil
}

const createMessagesTableSQL = `
CREATE TABLE IF NOT EXISTS messages (
	id         BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	session_id TEXT NOT NULL,
	message    JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_session ON messages (session_id, created_at DESC);`

// Migrate creates the messages table and its index.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createMessagesTableSQL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close closes the pool.
func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

// Ping checks the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// InsertMessage stores a message for the session.
func (s *PostgresStore) InsertMessage(ctx context.Context, sessionID string, body domain.MessageBody) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO messages (session_id, message) VALUES ($1, $2::jsonb)`,
		sessionID, string(payload))
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// RecentMessages retrieves the newest messages for a session, newest first.
func (s *PostgresStore) RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, session_id, message, created_at FROM messages
		 WHERE session_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var payload []byte
		if err := rows.Scan(&msg.ID, &msg.SessionID, &payload, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if err := json.Unmarshal(payload, &msg.Message); err != nil {
			return nil, fmt.Errorf("decode message %d: %w", msg.ID, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
