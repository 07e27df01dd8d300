package conversation

import (
	"context"
	"encoding/json"
	"time"

	"meetwise/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:session:"

// SessionState is everything persisted between turns of one conversation.
type SessionState struct {
	History             []models.ChatMessage        `json:"history"`
	Context             *models.ConversationContext `json:"context,omitempty"`
	PendingConfirmation *models.ConfirmationPayload `json:"pending_confirmation,omitempty"`
}

type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*SessionState, error)
	Set(ctx context.Context, sessionID string, state *SessionState) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*SessionState, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &SessionState{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, state *SessionState) error {
	key := sessionPrefix + sessionID
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	key := sessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
