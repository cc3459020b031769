package service

import (
	"fact/internal/audit"
	"fact/internal/court/models"
	dErrors "fact/pkg/domain-errors"
)

func (s *ServiceSuite) TestAreaOfLawLifecycle() {
	crime, err := s.svc.CreateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{Name: " Crime ", DisplayName: "Criminal"})
	s.Require().NoError(err)
	s.Equal("Crime", crime.Name)
	s.NotZero(crime.ID)

	_, err = s.svc.CreateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{Name: "CRIME"})
	s.requireCode(err, dErrors.CodeConflict)

	crime.ExternalLink = "https://www.gov.uk/crime"
	updated, err := s.svc.UpdateAreaOfLaw(s.ctx, s.superAdmin, *crime)
	s.Require().NoError(err)
	s.Equal("https://www.gov.uk/crime", updated.ExternalLink)

	s.Require().NoError(s.svc.DeleteAreaOfLaw(s.ctx, s.superAdmin, crime.ID))
	_, err = s.svc.GetAreaOfLaw(s.ctx, crime.ID)
	s.requireCode(err, dErrors.CodeNotFound)

	entries := s.audits.All()
	s.Require().Len(entries, 3)
	s.Equal(audit.ChangeCreateAreaOfLaw, entries[0].ChangeType)
	s.Equal(audit.ChangeUpdateAreaOfLaw, entries[1].ChangeType)
	s.Equal(audit.ChangeDeleteAreaOfLaw, entries[2].ChangeType)
	for _, e := range entries {
		s.Equal("Crime", e.Location)
	}
}

func (s *ServiceSuite) TestDeleteAreaOfLawInUseIsConflict() {
	family, err := s.svc.CreateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{Name: "Family"})
	s.Require().NoError(err)
	court := s.seedCourt("swansea-civil", true, 51.62, -3.94)
	s.Require().NoError(s.courts.SetCourtAreasOfLaw(s.ctx, court.ID, []int{family.ID}))
	audited := len(s.audits.All())

	err = s.svc.DeleteAreaOfLaw(s.ctx, s.superAdmin, family.ID)
	s.requireCode(err, dErrors.CodeConflict)

	still, err := s.svc.GetAreaOfLaw(s.ctx, family.ID)
	s.Require().NoError(err)
	s.Equal("Family", still.Name)
	s.Len(s.audits.All(), audited, "no audit for a refused delete")
}

func (s *ServiceSuite) TestAreaOfLawValidation() {
	_, err := s.svc.CreateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{Name: " "})
	s.requireCode(err, dErrors.CodeValidation)

	_, err = s.svc.UpdateAreaOfLaw(s.ctx, s.superAdmin, models.AreaOfLaw{ID: 999, Name: "Tax"})
	s.requireCode(err, dErrors.CodeNotFound)

	_, err = s.svc.CreateAreaOfLaw(s.ctx, s.admin, models.AreaOfLaw{Name: "Tax"})
	s.requireCode(err, dErrors.CodeForbidden)

	s.requireCode(s.svc.DeleteAreaOfLaw(s.ctx, s.superAdmin, 999), dErrors.CodeNotFound)
	s.Empty(s.audits.All())
}
