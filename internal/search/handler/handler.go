package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"fact/internal/court/models"
	"fact/internal/search"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/httputil"
	"fact/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Service defines the public search operations.
type Service interface {
	CourtsNearPostcode(ctx context.Context, postcode, areaOfLaw string, limit int) ([]models.CourtWithDistance, error)
	SearchCourts(ctx context.Context, query string) ([]models.CourtReference, error)
	LocalAuthorityForPostcode(ctx context.Context, postcode string) (string, error)
	CourtBySlug(ctx context.Context, slug domain.Slug) (*models.Court, error)
}

// Handler serves the unauthenticated search endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a search handler. Request latency is observed by the
// router, per route pattern.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the public endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/courts/{slug}", h.HandleGetCourt)
	r.Get("/search/courts", h.HandleSearchCourts)
	r.Get("/search/courts/postcode", h.HandleCourtsNearPostcode)
	r.Get("/search/local-authority", h.HandleLocalAuthority)
}

// LocalAuthorityResponse is the body of GET /search/local-authority.
type LocalAuthorityResponse struct {
	Postcode       string `json:"postcode"`
	LocalAuthority string `json:"local_authority"`
}

// HandleGetCourt handles GET /courts/{slug}.
func (h *Handler) HandleGetCourt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug, err := domain.ParseSlug(chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	court, err := h.service.CourtBySlug(ctx, slug)
	if err != nil {
		h.writeServiceError(ctx, w, "court lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, court)
}

// HandleSearchCourts handles GET /search/courts?q=.
func (h *Handler) HandleSearchCourts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	refs, err := h.service.SearchCourts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(ctx, w, "court search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, refs)
}

// HandleCourtsNearPostcode handles GET /search/courts/postcode.
func (h *Handler) HandleCourtsNearPostcode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	pc := strings.TrimSpace(q.Get("postcode"))
	if pc == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "postcode is required"))
		return
	}
	limit := search.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer"))
			return
		}
		limit = n
	}

	courts, err := h.service.CourtsNearPostcode(ctx, pc, q.Get("aol"), limit)
	if err != nil {
		h.writeServiceError(ctx, w, "postcode search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, courts)
}

// HandleLocalAuthority handles GET /search/local-authority?postcode=.
func (h *Handler) HandleLocalAuthority(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pc := strings.TrimSpace(r.URL.Query().Get("postcode"))
	if pc == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "postcode is required"))
		return
	}
	name, err := h.service.LocalAuthorityForPostcode(ctx, pc)
	if err != nil {
		h.writeServiceError(ctx, w, "local authority lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, LocalAuthorityResponse{Postcode: pc, LocalAuthority: name})
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	switch dErrors.CodeOf(err) {
	case dErrors.CodeNotFound, dErrors.CodeValidation, dErrors.CodeBadRequest:
		level = slog.LevelDebug
	case dErrors.CodeInternal, dErrors.CodeInvariantViolation:
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
