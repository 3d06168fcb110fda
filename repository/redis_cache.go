package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"flowfinance/config"
)

// RedisCache stores calculation results in Redis. Calls go through a circuit breaker so an
// unreachable Redis degrades to cache misses instead of slowing every request down.
type RedisCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	prefix  string
	ttl     time.Duration
	timeout time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return newRedisCache(rdb, cfg)
}

func newRedisCache(client *redis.Client, cfg config.RedisConfig) *RedisCache {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "redis-cache",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("cache circuit breaker changed state")
		},
	})

	return &RedisCache{
		client:  client,
		breaker: breaker,
		prefix:  cfg.Prefix,
		ttl:     cfg.TTL,
		timeout: cfg.Timeout,
	}
}

func (r *RedisCache) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Get returns the cached value. Misses, Redis errors and an open breaker all report false.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	val, err := r.breaker.Execute(func() (interface{}, error) {
		v, err := r.client.Get(ctx, r.prefix+key).Result()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return v, err
	})
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache get failed")
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
	})
	return err
}

// Ping checks connectivity at startup.
func (r *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
