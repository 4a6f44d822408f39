package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storage:"

// Redis stores client items under "storage:<clientID>:<key>". Unlike the report cache,
// it surfaces backend errors so callers can tell "absent" from "unreachable".
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Provider = (*Redis)(nil)

// NewRedis creates a Redis-backed provider. Items expire after ttl; zero keeps them forever.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// For returns the storage area of clientID.
func (r *Redis) For(clientID string) Storage {
	return &redisArea{parent: r, prefix: redisKeyPrefix + clientID + ":"}
}

type redisArea struct {
	parent *Redis
	prefix string
}

func (a *redisArea) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := a.parent.client.Get(ctx, a.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrUnavailable, key, err)
	}
	return v, true, nil
}

func (a *redisArea) SetItem(ctx context.Context, key string, value []byte) error {
	if err := a.parent.client.Set(ctx, a.prefix+key, value, a.parent.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (a *redisArea) RemoveItem(ctx context.Context, key string) error {
	if err := a.parent.client.Del(ctx, a.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
