// Package search answers public court lookups: proximity search around a
// geocoded postcode, free-text search and court detail.
package search

import (
	"context"
	"fmt"

	"fact/internal/court/models"
	"fact/internal/geocode"
	dErrors "fact/pkg/domain-errors"
)

// DefaultLimit is the number of courts returned when the caller gives none.
const DefaultLimit = 10

// CourtFinder lists displayed in-person courts with coordinates, nearest
// first. Equal distances are ordered by primary key.
type CourtFinder interface {
	FindNearest(ctx context.Context, lat, lon float64) ([]models.CourtWithDistance, error)
}

// Engine ranks courts by distance from a point.
type Engine struct {
	finder CourtFinder
}

// NewEngine constructs an Engine over finder.
func NewEngine(finder CourtFinder) *Engine {
	return &Engine{finder: finder}
}

// Nearest returns at most limit courts closest to point.
func (e *Engine) Nearest(ctx context.Context, point geocode.GeoPoint, limit int) ([]models.CourtWithDistance, error) {
	return e.nearest(ctx, point, limit, nil)
}

// NearestFiltered is Nearest restricted to courts serving areaOfLaw. The
// filter runs before the limit so a sparse area still fills the page.
func (e *Engine) NearestFiltered(ctx context.Context, point geocode.GeoPoint, areaOfLaw string, limit int) ([]models.CourtWithDistance, error) {
	return e.nearest(ctx, point, limit, func(c *models.Court) bool {
		return c.ServesAreaOfLaw(areaOfLaw)
	})
}

func (e *Engine) nearest(ctx context.Context, point geocode.GeoPoint, limit int, keep func(*models.Court) bool) ([]models.CourtWithDistance, error) {
	if !point.Resolved() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "search point has no coordinates")
	}
	if limit <= 0 {
		return []models.CourtWithDistance{}, nil
	}

	candidates, err := e.finder.FindNearest(ctx, *point.Lat, *point.Lon)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("find courts near %.5f,%.5f", *point.Lat, *point.Lon))
	}

	out := make([]models.CourtWithDistance, 0, min(limit, len(candidates)))
	for i := range candidates {
		if keep != nil && !keep(&candidates[i].Court) {
			continue
		}
		out = append(out, candidates[i])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
