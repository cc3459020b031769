package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fact/internal/court/models"
	"fact/internal/geocode"
	"fact/internal/platform/metrics"
	"fact/internal/postcode"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/sentinel"
)

// Store is the read side of the court store used by public search.
type Store interface {
	CourtFinder
	FindBySlug(ctx context.Context, slug domain.Slug) (*models.Court, error)
	QueryBy(ctx context.Context, query string) ([]models.CourtReference, error)
}

// Resolver geocodes postcodes. *geocode.Client and *geocode.CachedResolver
// both satisfy it.
type Resolver interface {
	Resolve(ctx context.Context, pc string) (*geocode.Result, bool, error)
	ResolveWithPartialFallback(ctx context.Context, pc string) (*geocode.Result, bool, error)
}

// Service answers public directory queries.
type Service struct {
	store    Store
	resolver Resolver
	engine   *Engine
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

// NewService constructs a Service.
func NewService(store Store, resolver Resolver, opts ...Option) *Service {
	s := &Service{
		store:    store,
		resolver: resolver,
		engine:   NewEngine(store),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CourtsNearPostcode geocodes pc, falling back to its outward code, and
// returns the nearest courts. A postcode the provider does not know yields
// an empty list. An empty areaOfLaw disables the filter.
func (s *Service) CourtsNearPostcode(ctx context.Context, pc, areaOfLaw string, limit int) ([]models.CourtWithDistance, error) {
	if !postcode.Valid(pc) {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid postcode")
	}

	res, ok, err := s.resolver.ResolveWithPartialFallback(ctx, pc)
	if err != nil {
		return nil, err
	}
	if !ok || !res.HasCoordinates() {
		s.logger.InfoContext(ctx, "postcode not resolved", "postcode", postcode.Normalize(pc))
		s.metrics.ObserveSearchResults(0)
		return []models.CourtWithDistance{}, nil
	}

	var courts []models.CourtWithDistance
	if aol := strings.TrimSpace(areaOfLaw); aol != "" {
		courts, err = s.engine.NearestFiltered(ctx, res.Point, aol, limit)
	} else {
		courts, err = s.engine.Nearest(ctx, res.Point, limit)
	}
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSearchResults(len(courts))
	return courts, nil
}

// SearchCourts matches displayed courts by name, address, town or postcode.
func (s *Service) SearchCourts(ctx context.Context, query string) ([]models.CourtReference, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "query is required")
	}
	refs, err := s.store.QueryBy(ctx, query)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search courts")
	}
	s.metrics.ObserveSearchResults(len(refs))
	return refs, nil
}

// LocalAuthorityForPostcode returns the council the provider places a full
// postcode in.
func (s *Service) LocalAuthorityForPostcode(ctx context.Context, pc string) (string, error) {
	if !postcode.ValidFull(pc) {
		return "", dErrors.New(dErrors.CodeValidation, "invalid postcode")
	}
	res, ok, err := s.resolver.Resolve(ctx, pc)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", dErrors.New(dErrors.CodeNotFound, "postcode not found")
	}
	name, ok := res.LocalAuthority()
	if !ok {
		return "", dErrors.New(dErrors.CodeNotFound, "no local authority for postcode")
	}
	return name, nil
}

// CourtBySlug returns a displayed court. Hidden courts are reported as not
// found.
func (s *Service) CourtBySlug(ctx context.Context, slug domain.Slug) (*models.Court, error) {
	court, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "court not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load court")
	}
	if !court.Displayed {
		return nil, dErrors.New(dErrors.CodeNotFound, "court not found")
	}
	return court, nil
}
