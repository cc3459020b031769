package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	adminhandler "fact/internal/admin/handler"
	adminservice "fact/internal/admin/service"
	"fact/internal/audit"
	audithandler "fact/internal/audit/handler"
	httpapi "fact/internal/http"
	jwttoken "fact/internal/jwt_token"
	"fact/internal/platform/config"
	"fact/internal/platform/httpserver"
	"fact/internal/platform/logger"
	"fact/internal/platform/metrics"
	"fact/internal/search"
	searchhandler "fact/internal/search/handler"
)

// main wires configuration, stores, the geocoder and the HTTP router, then
// serves until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer be.close()

	resolver, err := openResolver(ctx, cfg, log, m, be)
	if err != nil {
		return err
	}

	recorder := audit.NewRecorder(be.audits, audit.WithLogger(log), audit.WithMetrics(m))
	searchSvc := search.NewService(be.courts, resolver, search.WithLogger(log), search.WithMetrics(m))
	adminSvc := adminservice.New(be.courts, be.txm, resolver, recorder,
		adminservice.WithLogger(log),
		adminservice.WithMetrics(m),
	)

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	router := httpapi.NewRouter(httpapi.Deps{
		Logger:    log,
		Metrics:   m,
		Validator: jwttoken.NewAdapter(jwtService),
		Search:    searchhandler.New(searchSvc, log),
		Admin:     adminhandler.New(adminSvc, log),
		Audit:     audithandler.New(audit.NewQueryService(be.audits), log),
		Health:    be.health,

		SearchLimit: searchLimit(cfg, log, be),
	})

	srv := httpserver.New(ctx, cfg.Server, router, log)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting fact server", "addr", cfg.Server.Addr, "store", be.kind)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
