// Package httpserver builds the process's *http.Server from configuration.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"fact/internal/platform/config"
)

const readHeaderTimeout = 5 * time.Second

// New builds a server for handler. Request contexts derive from base, so
// cancelling base on shutdown reaches in-flight geocode calls.
func New(base context.Context, cfg config.Server, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return base },
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
