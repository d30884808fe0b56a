package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps day documents in a Redis server with a per-key expiry.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects to the server at rawURL (redis:// or rediss://) and pings it.
func NewRedis(ctx context.Context, rawURL string) (*Redis, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, errors.New("REDIS_URL is required for the redis store")
	}
	opts, err := ParseRedisURL(rawURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{rdb: rdb}, nil
}

// NewRedisClient wraps an existing client.
func NewRedisClient(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Name() string {
	return "redis"
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Close() error {
	if r == nil || r.rdb == nil {
		return nil
	}
	return r.rdb.Close()
}

// ParseRedisURL turns redis://[user:password@]host:port[/db] (or rediss:// for
// TLS) into client options.
func ParseRedisURL(raw string) (*redis.Options, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("unsupported redis scheme: %s", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("redis url has no host")
	}
	return redis.ParseURL(raw)
}
