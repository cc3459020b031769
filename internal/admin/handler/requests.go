package handler

import (
	"strings"

	"fact/internal/court/models"
	dErrors "fact/pkg/domain-errors"
)

// maxListItems bounds list bodies accepted by the admin endpoints.
const maxListItems = 200

// GeneralInfoRequest is the body of PUT /admin/courts/{slug}/general.
type GeneralInfoRequest struct {
	models.GeneralInfo
}

// Validate implements httputil.Validatable.
func (r *GeneralInfoRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.OpeningTimes) > maxListItems {
		return dErrors.New(dErrors.CodeValidation, "too many opening times")
	}
	return nil
}

// AddressesRequest is the body of PUT /admin/courts/{slug}/addresses.
type AddressesRequest []models.Address

// Validate implements httputil.Validatable. Postcodes are checked by the
// handler so their list can be returned.
func (r *AddressesRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(*r) > maxListItems {
		return dErrors.New(dErrors.CodeValidation, "too many addresses")
	}
	return nil
}

// AreasOfLawRequest is the body of PUT /admin/courts/{slug}/courtAreasOfLaw.
type AreasOfLawRequest []models.AreaOfLaw

// Validate implements httputil.Validatable.
func (r *AreasOfLawRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(*r) > maxListItems {
		return dErrors.New(dErrors.CodeValidation, "too many areas of law")
	}
	for _, a := range *r {
		if a.ID <= 0 {
			return dErrors.New(dErrors.CodeValidation, "area of law id is required")
		}
	}
	return nil
}

// IDs returns the submitted area of law ids.
func (r AreasOfLawRequest) IDs() []int {
	ids := make([]int, len(r))
	for i, a := range r {
		ids[i] = a.ID
	}
	return ids
}

// LocalAuthoritiesRequest is the body of
// PUT /admin/courts/{slug}/localAuthorities/{areaOfLaw}.
type LocalAuthoritiesRequest []models.LocalAuthority

// Validate implements httputil.Validatable.
func (r *LocalAuthoritiesRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(*r) > maxListItems {
		return dErrors.New(dErrors.CodeValidation, "too many local authorities")
	}
	for _, la := range *r {
		if la.ID <= 0 {
			return dErrors.New(dErrors.CodeValidation, "local authority id is required")
		}
	}
	return nil
}

// NewCourtRequest is the body of POST /admin/courts.
type NewCourtRequest struct {
	models.NewCourt
}

// Validate implements httputil.Validatable.
func (r *NewCourtRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "new_court_name is required")
	}
	if len(r.Name) > 200 {
		return dErrors.New(dErrors.CodeValidation, "new_court_name must be at most 200 characters")
	}
	return nil
}

// AreaOfLawRequest is the body of POST and PUT /admin/areasOfLaw.
type AreaOfLawRequest struct {
	models.AreaOfLaw
}

// Validate implements httputil.Validatable.
func (r *AreaOfLawRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}
