package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"immo-assistant/internal/model"
)

const keyPrefix = "assistant:session:"

// connectionTimeout bounds the ping done when connecting
const connectionTimeout = 5 * time.Second

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps sessions in Redis. Every write refreshes the session TTL;
// a zero TTL keeps sessions forever.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// NewRedisStore creates a store on an open client
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func prefsKey(sessionID string) string {
	return keyPrefix + sessionID + ":prefs"
}

func messagesKey(sessionID string) string {
	return keyPrefix + sessionID + ":messages"
}

// CreateSession stores the initial preferences
func (s *RedisStore) CreateSession(ctx context.Context, sessionID string, prefs model.UserPreferences) error {
	return s.SavePreferences(ctx, sessionID, prefs)
}

// GetPreferences loads the preferences of a session
func (s *RedisStore) GetPreferences(ctx context.Context, sessionID string) (*model.UserPreferences, error) {
	data, err := s.client.Get(ctx, prefsKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs model.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return &prefs, nil
}

// SavePreferences overwrites the preferences of a session
func (s *RedisStore) SavePreferences(ctx context.Context, sessionID string, prefs model.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, prefsKey(sessionID), data, s.ttl)
	s.touch(ctx, pipe, messagesKey(sessionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// AppendMessages pushes messages onto the session log
func (s *RedisStore) AppendMessages(ctx context.Context, sessionID string, messages ...model.Message) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to encode message %s: %w", m.ID, err)
		}
		values = append(values, data)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, messagesKey(sessionID), values...)
	s.touch(ctx, pipe, messagesKey(sessionID))
	s.touch(ctx, pipe, prefsKey(sessionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append messages: %w", err)
	}
	return nil
}

// ListMessages returns the whole session log
func (s *RedisStore) ListMessages(ctx context.Context, sessionID string) ([]model.Message, error) {
	raw, err := s.client.LRange(ctx, messagesKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]model.Message, 0, len(raw))
	for _, item := range raw {
		var m model.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// Close closes the client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// touch refreshes the TTL of key. EXPIRE with 0 would delete the key.
func (s *RedisStore) touch(ctx context.Context, pipe redis.Pipeliner, key string) {
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
}
