// Package repository persists session messages.
package repository

import (
	"context"
	"fmt"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// Store defines the interface for message persistence.
type Store interface {
	// InsertMessage appends one message to the session. Calling it twice stores two rows.
	InsertMessage(ctx context.Context, sessionID string, body domain.MessageBody) error

	// RecentMessages returns at most limit messages of the session, newest first.
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error)

	// Migrate creates the messages schema if it does not exist.
	Migrate(ctx context.Context) error

	Ping(ctx context.Context) error
	Close() error
}

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the store selected by driver.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case DriverPostgres, "postgresql", "supabase":
		return NewPostgresStore(ctx, dsn)
	case DriverSQLite, "sqlite3":
		return NewSQLiteStore(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
