package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"latina/infras/otel"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// Counter is a windowed counter shared by every replica of the site.
type Counter interface {
	// Increment bumps key and returns the new value. The key expires window
	// seconds after its first increment.
	Increment(ctx context.Context, key string, window int) (int64, error)
}

type redisCounter struct {
	client *redis.Client
	otel   otel.Otel
}

// NewRedisCounter returns nil when client is nil so the limiter can pick its
// local fallback.
func NewRedisCounter(client *redis.Client, ot otel.Otel) Counter {
	if client == nil {
		return nil
	}

	return &redisCounter{
		client: client,
		otel:   ot,
	}
}

// Increment implements Counter.
func (cache *redisCounter) Increment(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Duration(window)*time.Second)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment cache counter: %w", err)
	}

	return incr.Val(), nil
}
