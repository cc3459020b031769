package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fact/pkg/platform/httputil"
	"fact/pkg/requestcontext"
)

const healthTimeout = 2 * time.Second

// HealthCheck is one dependency probed by GET /health.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthHandler runs every check concurrently and answers 503 if any fails.
func healthHandler(logger *slog.Logger, checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		var (
			mu      sync.Mutex
			results = make(map[string]string, len(checks))
			g       errgroup.Group
		)
		for _, c := range checks {
			g.Go(func() error {
				err := c.Check(ctx)
				status := "ok"
				if err != nil {
					status = err.Error()
				}
				mu.Lock()
				results[c.Name] = status
				mu.Unlock()
				return err
			})
		}

		if err := g.Wait(); err != nil {
			logger.WarnContext(ctx, "health check failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Checks: results})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: results})
	}
}
