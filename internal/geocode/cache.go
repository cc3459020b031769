package geocode

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"fact/internal/platform/metrics"
	"fact/internal/postcode"
)

const (
	keyPrefix      = "geocode:"
	negativeMarker = "0"
	positivePrefix = "1:"
)

// Cache is the subset of go-redis used by CachedResolver.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver remembers provider answers in Redis. A cached "not found"
// is stored as an explicit marker, so an absent key always means "not yet
// looked up". Redis failures fall through to the provider.
type CachedResolver struct {
	next        lookuper
	cache       Cache
	ttl         time.Duration
	negativeTTL time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// NewCachedResolver wraps next (normally a *Client).
func NewCachedResolver(next *Client, cache Cache, ttl, negativeTTL time.Duration, logger *slog.Logger, m *metrics.Metrics) *CachedResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedResolver{
		next:        next,
		cache:       cache,
		ttl:         ttl,
		negativeTTL: negativeTTL,
		logger:      logger,
		metrics:     m,
	}
}

func (c *CachedResolver) Resolve(ctx context.Context, pc string) (*Result, bool, error) {
	return c.cached(ctx, kindFull, pc, c.next.Resolve)
}

func (c *CachedResolver) ResolvePartial(ctx context.Context, outward string) (*Result, bool, error) {
	return c.cached(ctx, kindPartial, outward, c.next.ResolvePartial)
}

func (c *CachedResolver) ResolveWithPartialFallback(ctx context.Context, pc string) (*Result, bool, error) {
	return withPartialFallback(ctx, c, pc)
}

func cacheKey(kind, pc string) string {
	return keyPrefix + kind + ":" + postcode.Compact(pc)
}

func (c *CachedResolver) cached(
	ctx context.Context,
	kind, pc string,
	fetch func(context.Context, string) (*Result, bool, error),
) (*Result, bool, error) {
	key := cacheKey(kind, pc)

	val, err := c.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		if val == negativeMarker {
			c.metrics.IncGeocodeCache("negative_hit")
			return nil, false, nil
		}
		if len(val) > len(positivePrefix) && val[:len(positivePrefix)] == positivePrefix {
			if res, decErr := Decode([]byte(val[len(positivePrefix):])); decErr == nil {
				c.metrics.IncGeocodeCache("hit")
				return res, true, nil
			}
		}
		c.logger.WarnContext(ctx, "discarding corrupt geocode cache entry", "key", key)
	case errors.Is(err, redis.Nil):
		c.metrics.IncGeocodeCache("miss")
	default:
		c.metrics.IncGeocodeCache("error")
		c.logger.WarnContext(ctx, "geocode cache read failed, querying provider",
			"key", key,
			"error", err,
		)
	}

	res, ok, err := fetch(ctx, pc)
	if err != nil {
		// Provider failures are never cached.
		return nil, false, err
	}

	var setErr error
	if ok {
		setErr = c.cache.Set(ctx, key, positivePrefix+string(res.Raw()), c.ttl).Err()
	} else {
		setErr = c.cache.Set(ctx, key, negativeMarker, c.negativeTTL).Err()
	}
	if setErr != nil {
		c.logger.WarnContext(ctx, "geocode cache write failed",
			"key", key,
			"error", setErr,
		)
	}
	return res, ok, nil
}
