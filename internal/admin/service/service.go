// Package service orchestrates admin mutations of the court directory. Every
// mutation validates and geocodes first, then persists and records its audit
// entry inside one tx.Manager unit of work.
package service

import (
	"context"
	"errors"
	"log/slog"

	"fact/internal/audit"
	"fact/internal/court/models"
	"fact/internal/geocode"
	"fact/internal/platform/metrics"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/sentinel"
	"fact/pkg/platform/tx"
	"fact/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Store is the court persistence used by the admin services. Writes must go
// through the transaction carried in ctx.
type Store interface {
	FindBySlug(ctx context.Context, slug domain.Slug) (*models.Court, error)
	CreateCourt(ctx context.Context, c *models.Court) error
	UpdateGeneral(ctx context.Context, courtID int64, info models.GeneralInfo) error
	DeleteCourt(ctx context.Context, courtID int64) error

	Addresses(ctx context.Context, courtID int64) ([]models.Address, error)
	DeleteAddresses(ctx context.Context, courtID int64) error
	InsertAddresses(ctx context.Context, courtID int64, addresses []models.Address) error
	UpdateLatLon(ctx context.Context, courtID int64, lat, lon float64) error
	AddressTypes(ctx context.Context) ([]models.AddressType, error)

	ListAreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error)
	GetAreaOfLaw(ctx context.Context, id int) (*models.AreaOfLaw, error)
	CreateAreaOfLaw(ctx context.Context, a *models.AreaOfLaw) error
	UpdateAreaOfLaw(ctx context.Context, a models.AreaOfLaw) error
	DeleteAreaOfLaw(ctx context.Context, id int) error
	AreaOfLawInUse(ctx context.Context, id int) (bool, error)
	CourtAreasOfLaw(ctx context.Context, courtID int64) ([]models.AreaOfLaw, error)
	SetCourtAreasOfLaw(ctx context.Context, courtID int64, ids []int) error

	ListLocalAuthorities(ctx context.Context) ([]models.LocalAuthority, error)
	CourtLocalAuthorities(ctx context.Context, courtID int64, areaOfLawID int) ([]models.LocalAuthority, error)
	SetCourtLocalAuthorities(ctx context.Context, courtID int64, areaOfLawID int, ids []int) error
}

// Geocoder resolves a full postcode. Not resolved is (nil, false, nil).
type Geocoder interface {
	Resolve(ctx context.Context, pc string) (*geocode.Result, bool, error)
}

// AuditRecorder records one audit entry per mutation.
type AuditRecorder interface {
	Record(ctx context.Context, caller domain.Caller, changeType audit.ChangeType, before, after any, location string) error
}

// Service implements the admin use cases.
type Service struct {
	store    Store
	tx       tx.Manager
	geocoder Geocoder
	auditor  AuditRecorder
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(store Store, txm tx.Manager, geocoder Geocoder, auditor AuditRecorder, opts ...Option) *Service {
	s := &Service{
		store:    store,
		tx:       txm,
		geocoder: geocoder,
		auditor:  auditor,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) findCourt(ctx context.Context, slug domain.Slug) (*models.Court, error) {
	court, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err, "court "+slug.String()+" not found", "failed to load court")
	}
	return court, nil
}

func (s *Service) logMutation(ctx context.Context, msg string, caller domain.Caller, attrs ...any) {
	s.logger.InfoContext(ctx, msg, append([]any{
		"request_id", requestcontext.RequestID(ctx),
		"user_email", caller.Email,
	}, attrs...)...)
}

func requireSuperAdmin(caller domain.Caller) error {
	if !caller.IsSuperAdmin() {
		return dErrors.New(dErrors.CodeForbidden, "super admin role required")
	}
	return nil
}

// translate maps store sentinels to domain errors. Errors that already carry
// a domain code pass through unchanged.
func translate(err error, notFound, internal string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFound)
	case errors.Is(err, sentinel.ErrConflict), errors.Is(err, sentinel.ErrInUse):
		return dErrors.Wrap(err, dErrors.CodeConflict, "conflicting change")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internal)
	}
}
