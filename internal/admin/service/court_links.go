package service

import (
	"context"
	"errors"

	"fact/internal/audit"
	"fact/internal/court/models"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/sentinel"
)

// GetCourtAreasOfLaw returns the areas of law a court serves.
func (s *Service) GetCourtAreasOfLaw(ctx context.Context, slug domain.Slug) ([]models.AreaOfLaw, error) {
	court, err := s.findCourt(ctx, slug)
	if err != nil {
		return nil, err
	}
	areas, err := s.store.CourtAreasOfLaw(ctx, court.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load court areas of law")
	}
	return areas, nil
}

// UpdateCourtAreasOfLaw replaces the set of areas of law a court serves.
func (s *Service) UpdateCourtAreasOfLaw(ctx context.Context, caller domain.Caller, slug domain.Slug, ids []int) ([]models.AreaOfLaw, error) {
	court, err := s.findCourt(ctx, slug)
	if err != nil {
		return nil, err
	}

	var after []models.AreaOfLaw
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		before, err := s.store.CourtAreasOfLaw(ctx, court.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load court areas of law")
		}
		if err := s.store.SetCourtAreasOfLaw(ctx, court.ID, ids); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.Wrap(err, dErrors.CodeValidation, "unknown area of law")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update court areas of law")
		}
		if after, err = s.store.CourtAreasOfLaw(ctx, court.ID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load court areas of law")
		}
		return s.auditor.Record(ctx, caller, audit.ChangeUpdateCourtAreasOfLaw, before, after, slug.String())
	})
	if err != nil {
		return nil, err
	}
	s.logMutation(ctx, "court areas of law updated", caller, "slug", slug.String(), "areas_of_law", len(after))
	return after, nil
}

// ListLocalAuthorities returns every council.
func (s *Service) ListLocalAuthorities(ctx context.Context) ([]models.LocalAuthority, error) {
	las, err := s.store.ListLocalAuthorities(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list local authorities")
	}
	return las, nil
}

// GetCourtLocalAuthorities returns the councils linked to a court for the
// area of law with exactly this name. An unknown name yields an empty list.
func (s *Service) GetCourtLocalAuthorities(ctx context.Context, slug domain.Slug, areaOfLaw string) ([]models.LocalAuthority, error) {
	court, err := s.findCourt(ctx, slug)
	if err != nil {
		return nil, err
	}
	areas, err := s.ListAreasOfLaw(ctx)
	if err != nil {
		return nil, err
	}
	area, ok := areaNamed(areas, areaOfLaw)
	if !ok {
		return []models.LocalAuthority{}, nil
	}
	las, err := s.store.CourtLocalAuthorities(ctx, court.ID, area.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load court local authorities")
	}
	return las, nil
}

// UpdateCourtLocalAuthorities replaces the councils linked to a court for
// one of the areas of law it serves.
func (s *Service) UpdateCourtLocalAuthorities(ctx context.Context, caller domain.Caller, slug domain.Slug, areaOfLaw string, las []models.LocalAuthority) ([]models.LocalAuthority, error) {
	court, err := s.findCourt(ctx, slug)
	if err != nil {
		return nil, err
	}
	served, err := s.GetCourtAreasOfLaw(ctx, slug)
	if err != nil {
		return nil, err
	}
	area, ok := areaNamed(served, areaOfLaw)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "court does not serve area of law "+areaOfLaw)
	}
	ids := make([]int, len(las))
	for i, la := range las {
		ids[i] = la.ID
	}

	var after []models.LocalAuthority
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		before, err := s.store.CourtLocalAuthorities(ctx, court.ID, area.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load court local authorities")
		}
		if err := s.store.SetCourtLocalAuthorities(ctx, court.ID, area.ID, ids); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.Wrap(err, dErrors.CodeValidation, "unknown local authority")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update court local authorities")
		}
		if after, err = s.store.CourtLocalAuthorities(ctx, court.ID, area.ID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load court local authorities")
		}
		return s.auditor.Record(ctx, caller, audit.ChangeUpdateCourtLocalAuthorities, before, after, slug.String())
	})
	if err != nil {
		return nil, err
	}
	s.logMutation(ctx, "court local authorities updated", caller,
		"slug", slug.String(),
		"area_of_law", area.Name,
		"local_authorities", len(after),
	)
	return after, nil
}

// areaNamed matches name exactly, including case.
func areaNamed(areas []models.AreaOfLaw, name string) (models.AreaOfLaw, bool) {
	for _, a := range areas {
		if a.Name == name {
			return a, true
		}
	}
	return models.AreaOfLaw{}, false
}
