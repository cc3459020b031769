// Package httpapi assembles the public, admin and ops routes behind the
// shared middleware chain.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminhandler "fact/internal/admin/handler"
	audithandler "fact/internal/audit/handler"
	"fact/internal/platform/metrics"
	searchhandler "fact/internal/search/handler"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/httputil"
	authmw "fact/pkg/platform/middleware/auth"
	"fact/pkg/platform/middleware/request"
)

// Deps carries everything NewRouter mounts. Gatherer defaults to the
// Prometheus default registry.
type Deps struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Validator authmw.JWTValidator
	Search    *searchhandler.Handler
	Admin     *adminhandler.Handler
	Audit     *audithandler.Handler
	Health    []HealthCheck

	// SearchLimit, when set, wraps the public search routes.
	SearchLimit func(http.Handler) http.Handler
}

// NewRouter wires all endpoints. Admin and audit routes require a bearer
// token carrying an admin role; court creation, deletion and area of law
// writes additionally require the super admin role.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.Logger(d.Logger))
	r.Use(latency(d.Metrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/health", healthHandler(d.Logger, d.Health))

	r.Group(func(r chi.Router) {
		if d.SearchLimit != nil {
			r.Use(d.SearchLimit)
		}
		d.Search.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(d.Validator, d.Logger))
		r.Use(authmw.RequireRole(d.Logger, domain.RoleAdmin, domain.RoleSuperAdmin))
		d.Admin.Register(r)
		d.Audit.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireRole(d.Logger, domain.RoleSuperAdmin))
			d.Admin.RegisterSuperAdmin(r)
		})
	})
	return r
}

// latency records request duration labelled by the matched route pattern,
// so path parameters do not explode label cardinality.
func latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = r.Method + " " + p
				}
			}
			m.ObserveRequest(route, time.Since(start).Seconds())
		})
	}
}
