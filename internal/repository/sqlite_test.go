package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/snippetagent/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreInsertAndRecent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.InsertMessage(ctx, "s1", domain.MessageBody{Type: domain.MessageTypeHuman, Content: "a"}))
	require.NoError(t, store.InsertMessage(ctx, "s1", domain.MessageBody{
		Type:    domain.MessageTypeAI,
		Content: "b",
		Data:    map[string]any{"request_id": "r1"},
	}))
	require.NoError(t, store.InsertMessage(ctx, "s2", domain.MessageBody{Type: domain.MessageTypeHuman, Content: "other"}))

	messages, err := store.RecentMessages(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	// Newest first.
	assert.Equal(t, "b", messages[0].Message.Content)
	assert.Equal(t, domain.MessageTypeAI, messages[0].Message.Type)
	assert.Equal(t, "r1", messages[0].Message.Data["request_id"])
	assert.Equal(t, "a", messages[1].Message.Content)
	assert.Nil(t, messages[1].Message.Data)
	assert.Equal(t, "s1", messages[1].SessionID)
	assert.False(t, messages[1].CreatedAt.IsZero())
	assert.Greater(t, messages[0].ID, messages[1].ID)
}

func TestSQLiteStoreRecentLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.InsertMessage(ctx, "s1", domain.MessageBody{
			Type:    domain.MessageTypeHuman,
			Content: fmt.Sprintf("m%d", i),
		}))
	}

	messages, err := store.RecentMessages(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m4", messages[0].Message.Content)
	assert.Equal(t, "m3", messages[1].Message.Content)
}

func TestSQLiteStoreUnknownSession(t *testing.T) {
	store := newTestStore(t)

	messages, err := store.RecentMessages(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSQLiteStoreNoDeduplication(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	body := domain.MessageBody{Type: domain.MessageTypeAI, Content: "same", Data: map[string]any{"request_id": "r1"}}
	require.NoError(t, store.InsertMessage(ctx, "s1", body))
	require.NoError(t, store.InsertMessage(ctx, "s1", body))

	messages, err := store.RecentMessages(ctx, "s1", 10)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestSQLiteStoreConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.InsertMessage(ctx, "s1", domain.MessageBody{Type: domain.MessageTypeHuman, Content: fmt.Sprint(i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	messages, err := store.RecentMessages(ctx, "s1", 100)
	require.NoError(t, err)
	assert.Len(t, messages, 20)
}

func TestSQLiteStoreClosed(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Error(t, store.Ping(context.Background()))
	assert.Error(t, store.InsertMessage(context.Background(), "s1", domain.MessageBody{Type: domain.MessageTypeHuman}))
	_, err = store.RecentMessages(context.Background(), "s1", 1)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Close())

	_, err = Open(ctx, "mongodb", "mongodb://localhost")
	assert.Error(t, err)
}
