package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "fact/pkg/domain-errors"
)

type fakeCache struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	f.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func newProvider(t *testing.T, routes map[string]int) (*Client, map[string]*atomic.Int32) {
	t.Helper()
	calls := map[string]*atomic.Int32{}
	mux := http.NewServeMux()
	for path, status := range routes {
		counter := &atomic.Int32{}
		calls[path] = counter
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			counter.Add(1)
			w.WriteHeader(status)
			if status == http.StatusOK {
				_, _ = io.WriteString(w, westminster)
			}
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL), calls
}

func TestCachedResolver(t *testing.T) {
	ctx := context.Background()
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("positive answer served from cache", func(t *testing.T) {
		client, calls := newProvider(t, map[string]int{"/postcode/SW1A1AA": http.StatusOK})
		cache := newFakeCache()
		r := NewCachedResolver(client, cache, time.Hour, time.Minute, discard, nil)

		for range 2 {
			res, ok, err := r.Resolve(ctx, "SW1A 1AA")
			require.NoError(t, err)
			require.True(t, ok)
			la, _ := res.LocalAuthority()
			assert.Equal(t, "Westminster City Council", la)
		}
		assert.Equal(t, int32(1), calls["/postcode/SW1A1AA"].Load())
		assert.Equal(t, time.Hour, cache.ttls["geocode:full:SW1A1AA"])
	})

	t.Run("not found is cached distinctly from a miss", func(t *testing.T) {
		client, calls := newProvider(t, map[string]int{"/postcode/ZZ991ZZ": http.StatusNotFound})
		cache := newFakeCache()
		r := NewCachedResolver(client, cache, time.Hour, time.Minute, discard, nil)

		_, ok, err := r.Resolve(ctx, "ZZ99 1ZZ")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, negativeMarker, cache.data["geocode:full:ZZ991ZZ"])
		assert.Equal(t, time.Minute, cache.ttls["geocode:full:ZZ991ZZ"])

		_, ok, err = r.Resolve(ctx, "ZZ99 1ZZ")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int32(1), calls["/postcode/ZZ991ZZ"].Load())
	})

	t.Run("redis failure degrades to provider", func(t *testing.T) {
		client, calls := newProvider(t, map[string]int{"/postcode/SW1A1AA": http.StatusOK})
		cache := newFakeCache()
		cache.getErr = errors.New("connection refused")
		r := NewCachedResolver(client, cache, time.Hour, time.Minute, discard, nil)

		_, ok, err := r.Resolve(ctx, "SW1A 1AA")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int32(1), calls["/postcode/SW1A1AA"].Load())
	})

	t.Run("provider errors are not cached", func(t *testing.T) {
		client, _ := newProvider(t, map[string]int{"/postcode/SW1A1AA": http.StatusInternalServerError})
		cache := newFakeCache()
		r := NewCachedResolver(client, cache, time.Hour, time.Minute, discard, nil)

		_, _, err := r.Resolve(ctx, "SW1A 1AA")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamUnavailable))
		assert.Empty(t, cache.data)
	})

	t.Run("partial fallback goes through the cache", func(t *testing.T) {
		client, calls := newProvider(t, map[string]int{
			"/postcode/SA634SA":      http.StatusNotFound,
			"/postcode/partial/SA63": http.StatusOK,
		})
		cache := newFakeCache()
		r := NewCachedResolver(client, cache, time.Hour, time.Minute, discard, nil)

		for range 2 {
			_, ok, err := r.ResolveWithPartialFallback(ctx, "SA63 4SA")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Equal(t, int32(1), calls["/postcode/SA634SA"].Load())
		assert.Equal(t, int32(1), calls["/postcode/partial/SA63"].Load())
	})
}
