package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	adminservice "fact/internal/admin/service"
	"fact/internal/audit"
	auditstore "fact/internal/audit/store"
	"fact/internal/court/models"
	courtstore "fact/internal/court/store"
	"fact/internal/geocode"
	httpapi "fact/internal/http"
	"fact/internal/platform/config"
	"fact/internal/platform/metrics"
	"fact/internal/platform/postgres"
	platformredis "fact/internal/platform/redis"
	"fact/internal/ratelimit"
	"fact/internal/search"
	"fact/pkg/platform/circuit"
	"fact/pkg/platform/tx"
)

// courtStore is the union of what search and the admin service need.
type courtStore interface {
	adminservice.Store
	search.Store
}

// defaultAddressTypes mirrors the seed rows of the Postgres schema.
var defaultAddressTypes = []models.AddressType{
	{ID: 5880, Name: "Write to us", NameCy: "Ysgrifennwch atom"},
	{ID: 5881, Name: models.AddressTypeVisitUs, NameCy: "Ymweld â ni"},
	{ID: 5882, Name: models.AddressTypeVisitOrContactUs, NameCy: "Ymweld neu gysylltu â ni"},
}

// backend is the persistence selected by configuration: Postgres when a
// database URL is set, otherwise in-memory stores sharing one MemoryManager.
type backend struct {
	kind    string
	courts  courtStore
	audits  audit.Store
	txm     tx.Manager
	health  []httpapi.HealthCheck
	closers []func()
	redis   *platformredis.Client
}

func (b *backend) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func openBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	if cfg.Database.URL == "" {
		log.Warn("database url not set, using in-memory stores")
		courts := courtstore.NewInMemory()
		courts.SeedAddressTypes(defaultAddressTypes...)
		audits := auditstore.NewInMemory()
		return &backend{
			kind:   "memory",
			courts: courts,
			audits: audits,
			txm:    tx.NewMemoryManager(courts, audits),
		}, nil
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &backend{
		kind:    "postgres",
		courts:  courtstore.NewPostgres(db),
		audits:  auditstore.NewPostgres(db),
		txm:     tx.NewSQLManager(db, tx.WithTimeout(cfg.Server.TxTimeout)),
		health:  []httpapi.HealthCheck{{Name: "db", Check: db.PingContext}},
		closers: []func(){func() { _ = db.Close() }},
	}, nil
}

// openResolver builds the geocoding client, fronted by a Redis cache when
// one is configured.
func openResolver(ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.Metrics, be *backend) (search.Resolver, error) {
	client := geocode.NewClient(cfg.Geocode.BaseURL,
		geocode.WithAPIKey(cfg.Geocode.APIKey),
		geocode.WithTimeout(cfg.Geocode.Timeout),
		geocode.WithLogger(log),
		geocode.WithMetrics(m),
		geocode.WithBreaker(circuit.New("geocode",
			circuit.WithFailureThreshold(cfg.Geocode.BreakerThreshold),
			circuit.WithCooldown(cfg.Geocode.BreakerCooldown),
		)),
	)

	rc, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		log.Info("redis url not set, geocode cache disabled")
		return client, nil
	}
	be.redis = rc
	if err := rc.RegisterPoolMetrics(prometheus.DefaultRegisterer); err != nil {
		log.Warn("redis pool metrics not registered", "error", err)
	}
	be.health = append(be.health, httpapi.HealthCheck{Name: "redis", Check: rc.Health})
	be.closers = append(be.closers, func() { _ = rc.Close() })
	return geocode.NewCachedResolver(client, rc, cfg.Geocode.CacheTTL, cfg.Geocode.NegativeTTL, log, m), nil
}

// searchLimit returns the per-IP limiter for public search, shared through
// Redis when available.
func searchLimit(cfg *config.Config, log *slog.Logger, be *backend) func(http.Handler) http.Handler {
	if !cfg.Limit.Enabled {
		return nil
	}
	var store ratelimit.Store = ratelimit.NewInMemoryStore()
	if be.redis != nil {
		store = ratelimit.NewRedisStore(be.redis)
	}
	return ratelimit.NewMiddleware(store, cfg.Limit.Requests, cfg.Limit.Window, log).Handler
}
