package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", models.ChatTurn{SessionID: "s1", UserQuery: "one"}))
	require.NoError(t, store.Append(ctx, "s1", models.ChatTurn{SessionID: "s1", UserQuery: "two"}))
	require.NoError(t, store.Append(ctx, "s2", models.ChatTurn{SessionID: "s2", UserQuery: "other"}))

	turns, err := store.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "one", turns[0].UserQuery)
	assert.Equal(t, "two", turns[1].UserQuery)

	// callers get a copy
	turns[0].UserQuery = "changed"
	again, _ := store.History(ctx, "s1")
	assert.Equal(t, "one", again[0].UserQuery)

	empty, err := store.History(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemorySessionStoreConcurrentAppend(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, "shared", models.ChatTurn{SessionID: "shared"})
		}()
	}
	wg.Wait()

	turns, err := store.History(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, turns, 50)
}

// TestRedisSessionStore runs against an existing server at REDIS_ADDR. The
// integration build tag runs the same checks against a container.
func TestRedisSessionStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	checkRedisSessionStore(t, addr)
}

func checkRedisSessionStore(t *testing.T, addr string) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	prefix := "chatbot-test-" + uuid.NewString() + ":"
	store := NewRedisSessionStore(client, prefix)
	t.Cleanup(func() { client.Del(context.Background(), prefix+"session:s1") })

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Append(ctx, "s1", models.ChatTurn{SessionID: "s1", Timestamp: ts, UserQuery: "hi", BotResponse: "hello"}))
	require.NoError(t, store.Append(ctx, "s1", models.ChatTurn{SessionID: "s1", Timestamp: ts, UserQuery: "bye", BotResponse: "goodbye"}))

	turns, err := store.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "hi", turns[0].UserQuery)
	assert.Equal(t, "goodbye", turns[1].BotResponse)
	assert.True(t, ts.Equal(turns[0].Timestamp))

	empty, err := store.History(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNewSessionStore(t *testing.T) {
	store, closeFn, err := NewSessionStore(&config.SessionConfig{Store: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemorySessionStore{}, store)
	assert.NoError(t, closeFn())

	store, closeFn, err = NewSessionStore(&config.SessionConfig{Store: "redis", RedisAddr: "127.0.0.1:6379", RedisPrefix: "chatbot:"})
	require.NoError(t, err)
	assert.IsType(t, &RedisSessionStore{}, store)
	assert.NoError(t, closeFn())

	_, _, err = NewSessionStore(&config.SessionConfig{Store: "memcached"})
	assert.Error(t, err)
}
