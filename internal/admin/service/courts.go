package service

import (
	"context"
	"errors"
	"strings"

	"fact/internal/audit"
	"fact/internal/court/models"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/sentinel"
)

// GetCourt returns a court whether or not it is displayed.
func (s *Service) GetCourt(ctx context.Context, slug domain.Slug) (*models.Court, error) {
	return s.findCourt(ctx, slug)
}

// GetGeneralInfo returns the editable general section of a court.
func (s *Service) GetGeneralInfo(ctx context.Context, slug domain.Slug) (*models.GeneralInfo, error) {
	court, err := s.findCourt(ctx, slug)
	if err != nil {
		return nil, err
	}
	info := models.GeneralInfoOf(court)
	return &info, nil
}

// UpdateCourt applies update to the general section. Alerts and opening times
// are editable by any admin. Displayed, info and access scheme are applied
// only for super admins, and access scheme only on in-person courts.
func (s *Service) UpdateCourt(ctx context.Context, caller domain.Caller, slug domain.Slug, update models.GeneralInfo) (*models.Court, error) {
	if _, err := s.findCourt(ctx, slug); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		court, err := s.findCourt(ctx, slug)
		if err != nil {
			return err
		}
		before := models.GeneralInfoOf(court)
		next := applyGeneralUpdate(caller, court, before, update)
		if err := s.store.UpdateGeneral(ctx, court.ID, next); err != nil {
			return translate(err, "court "+slug.String()+" not found", "failed to update court")
		}
		return s.auditor.Record(ctx, caller, audit.ChangeUpdateCourtDetails, before, next, slug.String())
	})
	if err != nil {
		return nil, err
	}

	s.logMutation(ctx, "court details updated", caller,
		"slug", slug.String(),
		"super_admin", caller.IsSuperAdmin(),
	)
	return s.findCourt(ctx, slug)
}

// applyGeneralUpdate merges update into current, the state read inside the
// unit of work, keeping fields the caller may not change.
func applyGeneralUpdate(caller domain.Caller, court *models.Court, current, update models.GeneralInfo) models.GeneralInfo {
	next := current
	next.Alert = strings.TrimSpace(update.Alert)
	next.AlertCy = strings.TrimSpace(update.AlertCy)
	next.OpeningTimes = cleanOpeningTimes(update.OpeningTimes)
	if caller.IsSuperAdmin() {
		next.Displayed = update.Displayed
		next.Info = update.Info
		next.InfoCy = update.InfoCy
		if court.InPerson {
			next.AccessScheme = update.AccessScheme
		}
	}
	return next
}

func cleanOpeningTimes(in []models.OpeningTime) []models.OpeningTime {
	out := []models.OpeningTime{}
	for _, o := range in {
		o.Type, o.Hours = strings.TrimSpace(o.Type), strings.TrimSpace(o.Hours)
		if o.Type == "" && o.Hours == "" {
			continue
		}
		out = append(out, o)
	}
	return out
}

// CreateCourt adds a displayed court whose slug is derived from its name.
// Courts are in person unless flagged as a service centre.
func (s *Service) CreateCourt(ctx context.Context, caller domain.Caller, req models.NewCourt) (*models.Court, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "court name is required")
	}
	if (req.Lat == nil) != (req.Lon == nil) {
		return nil, dErrors.New(dErrors.CodeValidation, "lat and lon must be given together")
	}
	slug, err := domain.SlugFromName(name)
	if err != nil {
		return nil, err
	}

	noAccessScheme := false
	court := &models.Court{
		Slug:          slug,
		Name:          name,
		Lat:           req.Lat,
		Lon:           req.Lon,
		Displayed:     true,
		InPerson:      !req.ServiceCentre,
		ServiceCentre: req.ServiceCentre,
		AccessScheme:  &noAccessScheme,
		OpeningTimes:  []models.OpeningTime{},
	}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.CreateCourt(ctx, court); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "court "+slug.String()+" already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create court")
		}
		return s.auditor.Record(ctx, caller, audit.ChangeCreateCourt, nil, court, slug.String())
	})
	if err != nil {
		return nil, err
	}

	s.logMutation(ctx, "court created", caller, "slug", slug.String())
	return s.findCourt(ctx, slug)
}

// DeleteCourt removes a court and everything linked to it.
func (s *Service) DeleteCourt(ctx context.Context, caller domain.Caller, slug domain.Slug) error {
	if err := requireSuperAdmin(caller); err != nil {
		return err
	}
	if _, err := s.findCourt(ctx, slug); err != nil {
		return err
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		court, err := s.findCourt(ctx, slug)
		if err != nil {
			return err
		}
		if err := s.store.DeleteCourt(ctx, court.ID); err != nil {
			return translate(err, "court "+slug.String()+" not found", "failed to delete court")
		}
		return s.auditor.Record(ctx, caller, audit.ChangeDeleteCourt, court, nil, slug.String())
	})
	if err != nil {
		return err
	}
	s.logMutation(ctx, "court deleted", caller, "slug", slug.String())
	return nil
}
