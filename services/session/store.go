package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"branchaudit/services/errs"

	"github.com/go-redis/redis/v8"
)

const FormSessionPrefix = "formSession:"

type Store interface {
	Save(ctx context.Context, s FormSession) error
	Get(ctx context.Context, id string) (*FormSession, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps each session as a JSON blob that expires after ttl of inactivity.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, s FormSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal form session: %w", err)
	}
	if err := r.client.Set(ctx, FormSessionPrefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save form session: %w", err)
	}
	return nil
}

// Get returns errs.ErrNotFound for unknown or expired sessions.
func (r *RedisStore) Get(ctx context.Context, id string) (*FormSession, error) {
	data, err := r.client.Get(ctx, FormSessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var s FormSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal form session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, FormSessionPrefix+id).Err()
}
