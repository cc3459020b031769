package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fact/internal/audit"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/httputil"
	"fact/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Service lists audit history.
type Service interface {
	List(ctx context.Context, q audit.Query) (*audit.Page, error)
}

// Handler serves GET /audits.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an audit handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the audit endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audits", h.HandleList)
}

// HandleList handles GET /audits?page&size&location&email&dateFrom&dateTo.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := parseQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit list failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func parseQuery(r *http.Request) (audit.Query, error) {
	v := r.URL.Query()
	q := audit.Query{
		Location: v.Get("location"),
		Email:    v.Get("email"),
	}
	var err error
	if q.Page, err = intParam(v.Get("page"), "page"); err != nil {
		return q, err
	}
	if q.Size, err = intParam(v.Get("size"), "size"); err != nil {
		return q, err
	}
	if q.From, err = timeParam(v.Get("dateFrom"), "dateFrom", false); err != nil {
		return q, err
	}
	if q.To, err = timeParam(v.Get("dateTo"), "dateTo", true); err != nil {
		return q, err
	}
	return q, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, name+" must be an integer")
	}
	return n, nil
}

// timeParam accepts RFC 3339 timestamps or plain dates. A plain date used as
// an upper bound covers the whole day.
func timeParam(raw, name string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, name+" must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Nanosecond)
	}
	return &d, nil
}
