// Package helpers provides shared test fixtures.
package helpers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/xiaot623/snippetagent/internal/domain"
	"github.com/xiaot623/snippetagent/internal/repository"
)

func NewTestSQLiteStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()

	s, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// ErrInjected is returned by FaultyStore when a fault is armed.
var ErrInjected = errors.New("injected store failure")

// FaultyStore wraps a Store, counts calls and fails selected operations.
type FaultyStore struct {
	repository.Store

	FailRecent bool

	// FailInsertAt fails the n-th InsertMessage call (1-based). Zero disables it.
	FailInsertAt int64

	// FailAllInserts fails every InsertMessage call.
	FailAllInserts bool

	RecentCalls atomic.Int64
	InsertCalls atomic.Int64

	mu       sync.Mutex
	Inserted []domain.MessageBody
}

func NewFaultyStore(t *testing.T) *FaultyStore {
	return &FaultyStore{Store: NewTestSQLiteStore(t)}
}

func (f *FaultyStore) RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error) {
	f.RecentCalls.Add(1)
	if f.FailRecent {
		return nil, ErrInjected
	}
	return f.Store.RecentMessages(ctx, sessionID, limit)
}

func (f *FaultyStore) InsertMessage(ctx context.Context, sessionID string, body domain.MessageBody) error {
	n := f.InsertCalls.Add(1)
	if f.FailAllInserts || n == f.FailInsertAt {
		return ErrInjected
	}
	f.mu.Lock()
	f.Inserted = append(f.Inserted, body)
	f.mu.Unlock()
	return f.Store.InsertMessage(ctx, sessionID, body)
}

// StubCompleter returns a fixed reply or error and records the queries it saw.
type StubCompleter struct {
	Reply string
	Err   error

	mu      sync.Mutex
	Queries []string
	History [][]domain.HistoryEntry
}

func (s *StubCompleter) Complete(ctx context.Context, query string, history []domain.HistoryEntry) (string, error) {
	s.mu.Lock()
	s.Queries = append(s.Queries, query)
	s.History = append(s.History, history)
	s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}
