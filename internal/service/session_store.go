package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/config"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the turns of each session in arrival order.
type SessionStore interface {
	Append(ctx context.Context, sessionID string, turn models.ChatTurn) error
	History(ctx context.Context, sessionID string) ([]models.ChatTurn, error)
}

// NewSessionStore builds the store named by cfg.Store. The returned func
// releases its resources.
func NewSessionStore(cfg *config.SessionConfig) (SessionStore, func() error, error) {
	switch cfg.Store {
	case "", "memory":
		return NewMemorySessionStore(), func() error { return nil }, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisSessionStore(client, cfg.RedisPrefix), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]models.ChatTurn
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string][]models.ChatTurn)}
}

func (s *MemorySessionStore) Append(_ context.Context, sessionID string, turn models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = append(s.sessions[sessionID], turn)
	return nil
}

func (s *MemorySessionStore) History(_ context.Context, sessionID string) ([]models.ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	out := make([]models.ChatTurn, len(turns))
	copy(out, turns)
	return out, nil
}

// RedisSessionStore keeps each session as a Redis list of JSON turns.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return s.prefix + "session:" + sessionID
}

func (s *RedisSessionStore) Append(ctx context.Context, sessionID string, turn models.ChatTurn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to encode turn: %w", err)
	}
	if err := s.client.RPush(ctx, s.key(sessionID), data).Err(); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) History(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	items, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	turns := make([]models.ChatTurn, 0, len(items))
	for _, item := range items {
		var turn models.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to decode turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
