package service

import (
	"context"
	"encoding/json"

	"fact/internal/audit"
	"fact/internal/court/models"
	courtstore "fact/internal/court/store"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
)

// racingStore runs afterFirstRead once, right after the first court lookup,
// to commit a competing change between the existence check and the unit of
// work.
type racingStore struct {
	*courtstore.InMemoryStore
	afterFirstRead func()
}

func (r *racingStore) FindBySlug(ctx context.Context, slug domain.Slug) (*models.Court, error) {
	c, err := r.InMemoryStore.FindBySlug(ctx, slug)
	if hook := r.afterFirstRead; hook != nil {
		r.afterFirstRead = nil
		hook()
	}
	return c, err
}

func (s *ServiceSuite) TestUpdateCourtRestrictsFieldsForAdmins() {
	s.seedCourt("leeds-crown-court", true, 53.8, -1.55)
	yes := true
	update := models.GeneralInfo{
		Alert:        " Closed for refurbishment ",
		Displayed:    false,
		Info:         "New info",
		AccessScheme: &yes,
		OpeningTimes: []models.OpeningTime{{Type: "Court open", Hours: "9am to 5pm"}, {}},
	}

	got, err := s.svc.UpdateCourt(s.ctx, s.admin, "leeds-crown-court", update)
	s.Require().NoError(err)
	s.Equal("Closed for refurbishment", got.Alert)
	s.Equal([]models.OpeningTime{{Type: "Court open", Hours: "9am to 5pm"}}, got.OpeningTimes)
	s.True(got.Displayed, "displayed is restricted")
	s.Empty(got.Info, "info is restricted")
	s.Nil(got.AccessScheme, "access scheme is restricted")

	got, err = s.svc.UpdateCourt(s.ctx, s.superAdmin, "leeds-crown-court", update)
	s.Require().NoError(err)
	s.False(got.Displayed)
	s.Equal("New info", got.Info)
	s.Require().NotNil(got.AccessScheme)
	s.True(*got.AccessScheme)

	entries := s.audits.All()
	s.Require().Len(entries, 2)
	s.Equal(audit.ChangeUpdateCourtDetails, entries[0].ChangeType)
	var before models.GeneralInfo
	s.Require().NoError(json.Unmarshal(entries[1].Before, &before))
	s.True(before.Displayed, "before is the persisted state")
	s.Equal("Closed for refurbishment", before.Alert)
}

func (s *ServiceSuite) TestUpdateCourtIgnoresAccessSchemeForServiceCentres() {
	s.seedCourt("probate-service-centre", false, 52.48, -1.89)
	yes := true
	got, err := s.svc.UpdateCourt(s.ctx, s.superAdmin, "probate-service-centre", models.GeneralInfo{Displayed: true, AccessScheme: &yes})
	s.Require().NoError(err)
	s.Nil(got.AccessScheme)
}

func (s *ServiceSuite) TestUpdateCourtNotFound() {
	_, err := s.svc.UpdateCourt(s.ctx, s.superAdmin, "missing", models.GeneralInfo{})
	s.requireCode(err, dErrors.CodeNotFound)
	s.Empty(s.audits.All())
}

func (s *ServiceSuite) TestCreateCourt() {
	lat, lon := 52.41, -4.08
	got, err := s.svc.CreateCourt(s.ctx, s.superAdmin, models.NewCourt{Name: " Aberystwyth Justice Centre ", Lat: &lat, Lon: &lon})
	s.Require().NoError(err)
	s.Equal("aberystwyth-justice-centre", got.Slug.String())
	s.Equal("Aberystwyth Justice Centre", got.Name)
	s.True(got.Displayed)
	s.True(got.InPerson)
	s.False(got.ServiceCentre)
	s.Require().True(got.HasCoordinates())
	s.Equal(lat, *got.Lat)

	entries := s.audits.All()
	s.Require().Len(entries, 1)
	s.Equal(audit.ChangeCreateCourt, entries[0].ChangeType)
	s.Nil(entries[0].Before)
	s.NotNil(entries[0].After)

	s.Run("duplicate slug conflicts", func() {
		_, err := s.svc.CreateCourt(s.ctx, s.superAdmin, models.NewCourt{Name: "Aberystwyth justice centre"})
		s.requireCode(err, dErrors.CodeConflict)
		s.Len(s.audits.All(), 1)
	})

	s.Run("service centre is not in person", func() {
		got, err := s.svc.CreateCourt(s.ctx, s.superAdmin, models.NewCourt{Name: "Divorce Service Centre", ServiceCentre: true})
		s.Require().NoError(err)
		s.False(got.InPerson)
		s.True(got.ServiceCentre)
	})

	s.Run("admins cannot create", func() {
		_, err := s.svc.CreateCourt(s.ctx, s.admin, models.NewCourt{Name: "Other Court"})
		s.requireCode(err, dErrors.CodeForbidden)
	})

	s.Run("half a coordinate", func() {
		_, err := s.svc.CreateCourt(s.ctx, s.superAdmin, models.NewCourt{Name: "Other Court", Lat: &lat})
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("blank name", func() {
		_, err := s.svc.CreateCourt(s.ctx, s.superAdmin, models.NewCourt{Name: "  "})
		s.requireCode(err, dErrors.CodeValidation)
	})
}

func (s *ServiceSuite) TestCreateCourtRollsBackWhenAuditFails() {
	_, err := s.withAuditor(failingAuditor{}).CreateCourt(s.ctx, s.superAdmin, models.NewCourt{Name: "Ghost Court"})
	s.requireCode(err, dErrors.CodeInternal)

	_, err = s.svc.GetCourt(s.ctx, "ghost-court")
	s.requireCode(err, dErrors.CodeNotFound)
}

func (s *ServiceSuite) TestDeleteCourt() {
	s.seedCourt("old-court", true, 51, 0)

	s.requireCode(s.svc.DeleteCourt(s.ctx, s.admin, "old-court"), dErrors.CodeForbidden)
	s.Require().NoError(s.svc.DeleteCourt(s.ctx, s.superAdmin, "old-court"))
	s.requireCode(s.svc.DeleteCourt(s.ctx, s.superAdmin, "old-court"), dErrors.CodeNotFound)

	entries := s.audits.All()
	s.Require().Len(entries, 1)
	s.Equal(audit.ChangeDeleteCourt, entries[0].ChangeType)
	s.NotNil(entries[0].Before)
	s.Nil(entries[0].After)
}

func (s *ServiceSuite) TestUpdateCourtKeepsConcurrentSuperAdminChange() {
	court := s.seedCourt("luton-crown-court", true, 51.88, -0.42)
	racing := &racingStore{InMemoryStore: s.courts, afterFirstRead: func() {
		s.Require().NoError(s.courts.UpdateGeneral(s.ctx, court.ID, models.GeneralInfo{
			Displayed:    false,
			Info:         "Temporarily closed",
			OpeningTimes: []models.OpeningTime{},
		}))
	}}
	svc := New(racing, s.txm, s.geocoder, audit.NewRecorder(s.audits, audit.WithLogger(discardLogger())),
		WithLogger(discardLogger()))

	got, err := svc.UpdateCourt(s.ctx, s.admin, "luton-crown-court", models.GeneralInfo{Alert: "Lift out of order"})
	s.Require().NoError(err)
	s.False(got.Displayed, "concurrent displayed change survives")
	s.Equal("Temporarily closed", got.Info)
	s.Equal("Lift out of order", got.Alert)

	entries := s.audits.All()
	s.Require().Len(entries, 1)
	var before models.GeneralInfo
	s.Require().NoError(json.Unmarshal(entries[0].Before, &before))
	s.False(before.Displayed, "before reflects the state the update replaced")
	s.Equal("Temporarily closed", before.Info)
}
