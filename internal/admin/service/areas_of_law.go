package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fact/internal/audit"
	"fact/internal/court/models"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/sentinel"
)

// ListAreasOfLaw returns the areas-of-law reference list ordered by name.
func (s *Service) ListAreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error) {
	areas, err := s.store.ListAreasOfLaw(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list areas of law")
	}
	return areas, nil
}

// GetAreaOfLaw returns one area of law.
func (s *Service) GetAreaOfLaw(ctx context.Context, id int) (*models.AreaOfLaw, error) {
	a, err := s.store.GetAreaOfLaw(ctx, id)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("area of law %d not found", id), "failed to load area of law")
	}
	return a, nil
}

// CreateAreaOfLaw adds an area of law. Names are unique ignoring case.
func (s *Service) CreateAreaOfLaw(ctx context.Context, caller domain.Caller, a models.AreaOfLaw) (*models.AreaOfLaw, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	a.ID = 0
	if err := normalizeAreaOfLaw(&a); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.CreateAreaOfLaw(ctx, &a); err != nil {
			return areaOfLawWriteError(err, a)
		}
		return s.auditor.Record(ctx, caller, audit.ChangeCreateAreaOfLaw, nil, a, a.Name)
	})
	if err != nil {
		return nil, err
	}
	s.logMutation(ctx, "area of law created", caller, "area_of_law", a.Name, "id", a.ID)
	return &a, nil
}

// UpdateAreaOfLaw replaces an existing area of law.
func (s *Service) UpdateAreaOfLaw(ctx context.Context, caller domain.Caller, a models.AreaOfLaw) (*models.AreaOfLaw, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	if err := normalizeAreaOfLaw(&a); err != nil {
		return nil, err
	}
	if _, err := s.GetAreaOfLaw(ctx, a.ID); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		before, err := s.GetAreaOfLaw(ctx, a.ID)
		if err != nil {
			return err
		}
		if err := s.store.UpdateAreaOfLaw(ctx, a); err != nil {
			return areaOfLawWriteError(err, a)
		}
		return s.auditor.Record(ctx, caller, audit.ChangeUpdateAreaOfLaw, before, a, a.Name)
	})
	if err != nil {
		return nil, err
	}
	s.logMutation(ctx, "area of law updated", caller, "area_of_law", a.Name, "id", a.ID)
	return &a, nil
}

// DeleteAreaOfLaw removes an area of law no court references. An area still
// in use is a conflict and nothing is written.
func (s *Service) DeleteAreaOfLaw(ctx context.Context, caller domain.Caller, id int) error {
	if err := requireSuperAdmin(caller); err != nil {
		return err
	}
	before, err := s.GetAreaOfLaw(ctx, id)
	if err != nil {
		return err
	}
	inUse, err := s.store.AreaOfLawInUse(ctx, id)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check area of law usage")
	}
	if inUse {
		return dErrors.New(dErrors.CodeConflict, "area of law "+before.Name+" is in use by a court")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.GetAreaOfLaw(ctx, id)
		if err != nil {
			return err
		}
		if err := s.store.DeleteAreaOfLaw(ctx, id); err != nil {
			if errors.Is(err, sentinel.ErrInUse) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "area of law "+current.Name+" is in use by a court")
			}
			return translate(err, fmt.Sprintf("area of law %d not found", id), "failed to delete area of law")
		}
		return s.auditor.Record(ctx, caller, audit.ChangeDeleteAreaOfLaw, current, nil, current.Name)
	})
	if err != nil {
		return err
	}
	s.logMutation(ctx, "area of law deleted", caller, "area_of_law", before.Name, "id", id)
	return nil
}

func normalizeAreaOfLaw(a *models.AreaOfLaw) error {
	a.Name = strings.TrimSpace(a.Name)
	a.NameCy = strings.TrimSpace(a.NameCy)
	a.DisplayName = strings.TrimSpace(a.DisplayName)
	a.DisplayNameCy = strings.TrimSpace(a.DisplayNameCy)
	a.ExternalLink = strings.TrimSpace(a.ExternalLink)
	if a.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "area of law name is required")
	}
	return nil
}

func areaOfLawWriteError(err error, a models.AreaOfLaw) error {
	if errors.Is(err, sentinel.ErrConflict) {
		return dErrors.Wrap(err, dErrors.CodeConflict, "area of law "+a.Name+" already exists")
	}
	return translate(err, fmt.Sprintf("area of law %d not found", a.ID), "failed to save area of law")
}
