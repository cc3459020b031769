package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"fact/internal/admin/service/mocks"
	"fact/internal/audit"
	"fact/internal/court/models"
	dErrors "fact/pkg/domain-errors"
)

func (s *ServiceSuite) TestUpdateCourtAreasOfLaw() {
	court := s.seedCourt("newport-crown-court", true, 51.59, -2.99)
	crime, err := s.svc.CreateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{Name: "Crime"})
	s.Require().NoError(err)
	adoption, err := s.svc.CreateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{Name: "Adoption"})
	s.Require().NoError(err)

	got, err := s.svc.UpdateCourtAreasOfLaw(s.ctx, s.admin, court.Slug, []int{crime.ID, adoption.ID})
	s.Require().NoError(err)
	s.Len(got, 2)

	_, err = s.svc.UpdateCourtAreasOfLaw(s.ctx, s.admin, court.Slug, []int{crime.ID, 404})
	s.requireCode(err, dErrors.CodeValidation)

	areas, err := s.svc.GetCourtAreasOfLaw(s.ctx, court.Slug)
	s.Require().NoError(err)
	s.Len(areas, 2, "failed replacement left the set intact")

	last := s.audits.All()
	s.Equal(audit.ChangeUpdateCourtAreasOfLaw, last[len(last)-1].ChangeType)
}

func (s *ServiceSuite) TestCourtLocalAuthorities() {
	court := s.seedCourt("cardiff-family-court", true, 51.48, -3.18)
	children, err := s.svc.CreateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{Name: "Children"})
	s.Require().NoError(err)
	_, err = s.svc.UpdateCourtAreasOfLaw(s.ctx, s.admin, court.Slug, []int{children.ID})
	s.Require().NoError(err)
	s.courts.SeedLocalAuthorities(
		models.LocalAuthority{ID: 1, Name: "Cardiff Council"},
		models.LocalAuthority{ID: 2, Name: "Vale of Glamorgan Council"},
	)

	got, err := s.svc.UpdateCourtLocalAuthorities(s.ctx, s.admin, court.Slug, "Children",
		[]models.LocalAuthority{{ID: 2}, {ID: 1}})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Cardiff Council", got[0].Name)

	got, err = s.svc.GetCourtLocalAuthorities(s.ctx, court.Slug, "Children")
	s.Require().NoError(err)
	s.Len(got, 2)

	s.Run("area of law name is matched exactly", func() {
		got, err := s.svc.GetCourtLocalAuthorities(s.ctx, court.Slug, "children")
		s.Require().NoError(err)
		s.Empty(got)

		_, err = s.svc.UpdateCourtLocalAuthorities(s.ctx, s.admin, court.Slug, "children", nil)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("unknown council", func() {
		_, err := s.svc.UpdateCourtLocalAuthorities(s.ctx, s.admin, court.Slug, "Children",
			[]models.LocalAuthority{{ID: 99}})
		s.requireCode(err, dErrors.CodeValidation)
		got, err := s.svc.GetCourtLocalAuthorities(s.ctx, court.Slug, "Children")
		s.Require().NoError(err)
		s.Len(got, 2)
	})
}

func (s *ServiceSuite) TestStoreFailureIsInternal() {
	st := mocks.NewMockStore(s.ctrl)
	st.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	st.EXPECT().ListAreasOfLaw(gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := New(st, s.txm, s.geocoder, nil, WithLogger(discardLogger()))
	_, err := svc.GetCourt(s.ctx, "any-court")
	s.requireCode(err, dErrors.CodeInternal)
	_, err = svc.ListAreasOfLaw(s.ctx)
	s.requireCode(err, dErrors.CodeInternal)
}
