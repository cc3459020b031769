package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fact/internal/court/models"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/httputil"
	"fact/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Service defines the admin operations exposed over HTTP.
type Service interface {
	GetCourt(ctx context.Context, slug domain.Slug) (*models.Court, error)
	GetGeneralInfo(ctx context.Context, slug domain.Slug) (*models.GeneralInfo, error)
	UpdateCourt(ctx context.Context, caller domain.Caller, slug domain.Slug, update models.GeneralInfo) (*models.Court, error)
	CreateCourt(ctx context.Context, caller domain.Caller, req models.NewCourt) (*models.Court, error)
	DeleteCourt(ctx context.Context, caller domain.Caller, slug domain.Slug) error

	GetAddresses(ctx context.Context, slug domain.Slug) ([]models.Address, error)
	UpdateAddresses(ctx context.Context, caller domain.Caller, slug domain.Slug, addresses []models.Address) ([]models.Address, error)
	ValidatePostcodes(ctx context.Context, addresses []models.Address) []string
	ListAddressTypes(ctx context.Context) ([]models.AddressType, error)

	ListAreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error)
	GetAreaOfLaw(ctx context.Context, id int) (*models.AreaOfLaw, error)
	CreateAreaOfLaw(ctx context.Context, caller domain.Caller, a models.AreaOfLaw) (*models.AreaOfLaw, error)
	UpdateAreaOfLaw(ctx context.Context, caller domain.Caller, a models.AreaOfLaw) (*models.AreaOfLaw, error)
	DeleteAreaOfLaw(ctx context.Context, caller domain.Caller, id int) error

	GetCourtAreasOfLaw(ctx context.Context, slug domain.Slug) ([]models.AreaOfLaw, error)
	UpdateCourtAreasOfLaw(ctx context.Context, caller domain.Caller, slug domain.Slug, ids []int) ([]models.AreaOfLaw, error)
	ListLocalAuthorities(ctx context.Context) ([]models.LocalAuthority, error)
	GetCourtLocalAuthorities(ctx context.Context, slug domain.Slug, areaOfLaw string) ([]models.LocalAuthority, error)
	UpdateCourtLocalAuthorities(ctx context.Context, caller domain.Caller, slug domain.Slug, areaOfLaw string, las []models.LocalAuthority) ([]models.LocalAuthority, error)
}

// InvalidPostcodesResponse is the 400 body of PUT /admin/courts/{slug}/addresses.
type InvalidPostcodesResponse struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description"`
	InvalidPostcodes []string `json:"invalid_postcodes"`
}

// Handler serves the authenticated admin endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an admin handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts endpoints open to every admin role.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/courts/{slug}", h.HandleGetCourt)
	r.Get("/admin/courts/{slug}/general", h.HandleGetGeneral)
	r.Put("/admin/courts/{slug}/general", h.HandleUpdateGeneral)
	r.Get("/admin/courts/{slug}/addresses", h.HandleGetAddresses)
	r.Put("/admin/courts/{slug}/addresses", h.HandleUpdateAddresses)
	r.Get("/admin/courts/{slug}/courtAreasOfLaw", h.HandleGetCourtAreasOfLaw)
	r.Put("/admin/courts/{slug}/courtAreasOfLaw", h.HandleUpdateCourtAreasOfLaw)
	r.Get("/admin/courts/{slug}/localAuthorities/{areaOfLaw}", h.HandleGetCourtLocalAuthorities)
	r.Put("/admin/courts/{slug}/localAuthorities/{areaOfLaw}", h.HandleUpdateCourtLocalAuthorities)
	r.Get("/admin/addressTypes", h.HandleListAddressTypes)
	r.Get("/admin/areasOfLaw", h.HandleListAreasOfLaw)
	r.Get("/admin/areasOfLaw/{id}", h.HandleGetAreaOfLaw)
	r.Get("/admin/localAuthorities", h.HandleListLocalAuthorities)
}

// RegisterSuperAdmin mounts endpoints reserved for super admins. The caller
// wraps r with the role check.
func (h *Handler) RegisterSuperAdmin(r chi.Router) {
	r.Post("/admin/courts", h.HandleCreateCourt)
	r.Delete("/admin/courts/{slug}", h.HandleDeleteCourt)
	r.Post("/admin/areasOfLaw", h.HandleCreateAreaOfLaw)
	r.Put("/admin/areasOfLaw", h.HandleUpdateAreaOfLaw)
	r.Delete("/admin/areasOfLaw/{id}", h.HandleDeleteAreaOfLaw)
}

func (h *Handler) HandleGetCourt(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	court, err := h.service.GetCourt(r.Context(), slug)
	h.respond(w, r, "get court failed", http.StatusOK, court, err)
}

func (h *Handler) HandleGetGeneral(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	info, err := h.service.GetGeneralInfo(r.Context(), slug)
	h.respond(w, r, "get general info failed", http.StatusOK, info, err)
}

func (h *Handler) HandleUpdateGeneral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[GeneralInfoRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	court, err := h.service.UpdateCourt(ctx, caller, slug, req.GeneralInfo)
	if err != nil {
		h.respond(w, r, "update court failed", 0, nil, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.GeneralInfoOf(court))
}

func (h *Handler) HandleGetAddresses(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	addrs, err := h.service.GetAddresses(r.Context(), slug)
	h.respond(w, r, "get addresses failed", http.StatusOK, addrs, err)
}

// HandleUpdateAddresses handles PUT /admin/courts/{slug}/addresses. Invalid
// postcodes are reported together before the court is looked up.
func (h *Handler) HandleUpdateAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddressesRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if invalid := h.service.ValidatePostcodes(ctx, *req); len(invalid) > 0 {
		h.logger.InfoContext(ctx, "address update rejected: invalid postcodes",
			"request_id", requestcontext.RequestID(ctx),
			"slug", slug.String(),
			"invalid_postcodes", invalid,
		)
		httputil.WriteJSON(w, http.StatusBadRequest, InvalidPostcodesResponse{
			Error:            string(dErrors.CodeValidation),
			ErrorDescription: "invalid postcodes",
			InvalidPostcodes: invalid,
		})
		return
	}
	addrs, err := h.service.UpdateAddresses(ctx, caller, slug, *req)
	h.respond(w, r, "update addresses failed", http.StatusOK, addrs, err)
}

func (h *Handler) HandleListAddressTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListAddressTypes(r.Context())
	h.respond(w, r, "list address types failed", http.StatusOK, types, err)
}

func (h *Handler) HandleCreateCourt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[NewCourtRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	court, err := h.service.CreateCourt(ctx, caller, req.NewCourt)
	h.respond(w, r, "create court failed", http.StatusCreated, court, err)
}

func (h *Handler) HandleDeleteCourt(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteCourt(r.Context(), caller, slug); err != nil {
		h.respond(w, r, "delete court failed", 0, nil, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleListAreasOfLaw(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.ListAreasOfLaw(r.Context())
	h.respond(w, r, "list areas of law failed", http.StatusOK, areas, err)
}

func (h *Handler) HandleGetAreaOfLaw(w http.ResponseWriter, r *http.Request) {
	id, ok := h.areaID(w, r)
	if !ok {
		return
	}
	area, err := h.service.GetAreaOfLaw(r.Context(), id)
	h.respond(w, r, "get area of law failed", http.StatusOK, area, err)
}

func (h *Handler) HandleCreateAreaOfLaw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AreaOfLawRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	area, err := h.service.CreateAreaOfLaw(ctx, caller, req.AreaOfLaw)
	h.respond(w, r, "create area of law failed", http.StatusCreated, area, err)
}

func (h *Handler) HandleUpdateAreaOfLaw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AreaOfLawRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	area, err := h.service.UpdateAreaOfLaw(ctx, caller, req.AreaOfLaw)
	h.respond(w, r, "update area of law failed", http.StatusOK, area, err)
}

func (h *Handler) HandleDeleteAreaOfLaw(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.areaID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteAreaOfLaw(r.Context(), caller, id); err != nil {
		h.respond(w, r, "delete area of law failed", 0, nil, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleGetCourtAreasOfLaw(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	areas, err := h.service.GetCourtAreasOfLaw(r.Context(), slug)
	h.respond(w, r, "get court areas of law failed", http.StatusOK, areas, err)
}

func (h *Handler) HandleUpdateCourtAreasOfLaw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AreasOfLawRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	areas, err := h.service.UpdateCourtAreasOfLaw(ctx, caller, slug, req.IDs())
	h.respond(w, r, "update court areas of law failed", http.StatusOK, areas, err)
}

func (h *Handler) HandleListLocalAuthorities(w http.ResponseWriter, r *http.Request) {
	las, err := h.service.ListLocalAuthorities(r.Context())
	h.respond(w, r, "list local authorities failed", http.StatusOK, las, err)
}

func (h *Handler) HandleGetCourtLocalAuthorities(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	las, err := h.service.GetCourtLocalAuthorities(r.Context(), slug, chi.URLParam(r, "areaOfLaw"))
	h.respond(w, r, "get court local authorities failed", http.StatusOK, las, err)
}

func (h *Handler) HandleUpdateCourtLocalAuthorities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	slug, ok := h.slug(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[LocalAuthoritiesRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	las, err := h.service.UpdateCourtLocalAuthorities(ctx, caller, slug, chi.URLParam(r, "areaOfLaw"), *req)
	h.respond(w, r, "update court local authorities failed", http.StatusOK, las, err)
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.Caller, bool) {
	caller, ok := requestcontext.Caller(r.Context())
	if !ok || caller.Email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return domain.Caller{}, false
	}
	return caller, true
}

func (h *Handler) slug(w http.ResponseWriter, r *http.Request) (domain.Slug, bool) {
	slug, err := domain.ParseSlug(chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	return slug, true
}

func (h *Handler) areaID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "area of law id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// respond writes body with status, or the error. Server-side failures are
// logged at error level, client errors at info.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, msg string, status int, body any, err error) {
	if err == nil {
		httputil.WriteJSON(w, status, body)
		return
	}
	ctx := r.Context()
	level := slog.LevelInfo
	if httputil.StatusFor(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"path", r.URL.Path,
		"error", err,
	)
	httputil.WriteError(w, err)
}
