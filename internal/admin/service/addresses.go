package service

import (
	"context"
	"fmt"
	"strings"

	"fact/internal/audit"
	"fact/internal/court/models"
	"fact/internal/postcode"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
)

// GetAddresses returns a court's addresses with primary visiting addresses
// first.
func (s *Service) GetAddresses(ctx context.Context, slug domain.Slug) ([]models.Address, error) {
	court, err := s.findCourt(ctx, slug)
	if err != nil {
		return nil, err
	}
	types, err := s.addressTypes(ctx)
	if err != nil {
		return nil, err
	}
	addrs, err := s.store.Addresses(ctx, court.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load addresses")
	}
	return types.SortAddresses(addrs), nil
}

// ValidatePostcodes returns the non-blank postcodes in addresses that are not
// complete postcodes, in submission order.
func (s *Service) ValidatePostcodes(_ context.Context, addresses []models.Address) []string {
	invalid := []string{}
	for _, a := range addresses {
		pc := strings.TrimSpace(a.Postcode)
		if pc != "" && !postcode.ValidFull(pc) {
			invalid = append(invalid, pc)
		}
	}
	return invalid
}

// UpdateAddresses replaces a court's addresses. For an in-person court the
// primary postcode is geocoded first and, when resolved, becomes the court's
// coordinates in the same unit of work as the address write and its audit.
func (s *Service) UpdateAddresses(ctx context.Context, caller domain.Caller, slug domain.Slug, addresses []models.Address) ([]models.Address, error) {
	court, err := s.findCourt(ctx, slug)
	if err != nil {
		return nil, err
	}
	types, err := s.addressTypes(ctx)
	if err != nil {
		return nil, err
	}

	normalized := make([]models.Address, len(addresses))
	for i, a := range addresses {
		normalized[i] = a.Normalized()
	}
	if unknown := types.UnknownIDs(normalized); len(unknown) > 0 {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown address type ids: %v", unknown))
	}
	if invalid := s.ValidatePostcodes(ctx, normalized); len(invalid) > 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid postcodes: "+strings.Join(invalid, ", "))
	}
	sorted := types.SortAddresses(normalized)

	var lat, lon float64
	resolved := false
	if court.InPerson {
		if primary, ok := types.PrimaryPostcode(sorted); ok {
			res, found, err := s.geocoder.Resolve(ctx, primary)
			if err != nil {
				return nil, err
			}
			if found && res.HasCoordinates() {
				lat, lon, resolved = *res.Point.Lat, *res.Point.Lon, true
			} else {
				s.logger.InfoContext(ctx, "primary postcode not resolved, keeping coordinates",
					"slug", slug.String(), "postcode", primary)
			}
		}
	}

	var updated []models.Address
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		before, err := s.store.Addresses(ctx, court.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load addresses")
		}
		if err := s.store.DeleteAddresses(ctx, court.ID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete addresses")
		}
		if err := s.store.InsertAddresses(ctx, court.ID, sorted); err != nil {
			return translate(err, "address type not found", "failed to insert addresses")
		}
		if resolved {
			if err := s.store.UpdateLatLon(ctx, court.ID, lat, lon); err != nil {
				return translate(err, "court "+slug.String()+" not found", "failed to update coordinates")
			}
		}
		stored, err := s.store.Addresses(ctx, court.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load addresses")
		}
		updated = types.SortAddresses(stored)
		return s.auditor.Record(ctx, caller, audit.ChangeUpdateAddresses, types.SortAddresses(before), updated, slug.String())
	})
	if err != nil {
		return nil, err
	}

	s.logMutation(ctx, "court addresses updated", caller,
		"slug", slug.String(),
		"addresses", len(updated),
		"coordinates_updated", resolved,
	)
	return updated, nil
}

// ListAddressTypes returns the address type reference list.
func (s *Service) ListAddressTypes(ctx context.Context) ([]models.AddressType, error) {
	types, err := s.store.AddressTypes(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load address types")
	}
	return types, nil
}

func (s *Service) addressTypes(ctx context.Context) (models.AddressTypeMap, error) {
	types, err := s.ListAddressTypes(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewAddressTypeMap(types), nil
}
