// Package session provides decided-set storage backends for review sessions.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/validately/api/internal/core/ports"
)

// sessionTTL bounds how long an abandoned review session lingers. An active
// session keeps refreshing it on every decision.
const sessionTTL = 24 * time.Hour

// RedisStore keeps each stakeholder's decided card set in a Redis set,
// letting a review session survive server restarts.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		prefix: "decided:",
	}, nil
}

func (s *RedisStore) key(identity string) string {
	return s.prefix + identity
}

func (s *RedisStore) MarkDecided(ctx context.Context, identity string, cardID uuid.UUID) error {
	key := s.key(identity)
	if err := s.client.SAdd(ctx, key, cardID.String()).Err(); err != nil {
		return fmt.Errorf("mark card decided: %w", err)
	}
	if err := s.client.Expire(ctx, key, sessionTTL).Err(); err != nil {
		return fmt.Errorf("refresh session ttl: %w", err)
	}
	return nil
}

func (s *RedisStore) DecidedCards(ctx context.Context, identity string) (map[uuid.UUID]bool, error) {
	members, err := s.client.SMembers(ctx, s.key(identity)).Result()
	if err != nil {
		return nil, fmt.Errorf("load decided set: %w", err)
	}

	decided := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			return nil, fmt.Errorf("corrupt decided set entry %q: %w", m, err)
		}
		decided[id] = true
	}
	return decided, nil
}

func (s *RedisStore) Reset(ctx context.Context, identity string) error {
	if err := s.client.Del(ctx, s.key(identity)).Err(); err != nil {
		return fmt.Errorf("reset decided set: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ ports.DecidedSetStore = (*RedisStore)(nil)
