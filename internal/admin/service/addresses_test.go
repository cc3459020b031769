package service

import (
	"encoding/json"
	"errors"

	"go.uber.org/mock/gomock"

	"fact/internal/admin/service/mocks"
	"fact/internal/audit"
	"fact/internal/court/models"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
)

func (s *ServiceSuite) TestUpdateAddressesReplacesPrimaryPostcode() {
	prior := []models.Address{
		{TypeID: typeVisitUs, AddressLines: []string{"1 Old Road"}, Town: "Nowhere", Postcode: "Y288"},
	}
	s.seedCourt("westminster-magistrates", true, 1, 1, prior...)
	before, err := s.svc.GetAddresses(s.ctx, "westminster-magistrates")
	s.Require().NoError(err)

	s.geocoder.EXPECT().Resolve(gomock.Any(), "SW1A 1AA").Return(resolved(51.501009, -0.141588), true, nil)

	got, err := s.svc.UpdateAddresses(s.ctx, s.admin, "westminster-magistrates", []models.Address{
		{TypeID: typeWriteToUs, AddressLines: []string{"PO Box 123"}, Town: "London", Postcode: "SW1P 2BY"},
		{TypeID: typeVisitUs, AddressLines: []string{" 181 Marylebone Road ", ""}, Town: "London ", Postcode: "SW1A 1AA"},
	})
	s.Require().NoError(err)

	s.Require().Len(got, 2)
	s.Equal(typeVisitUs, got[0].TypeID, "primary address sorts first")
	s.Equal([]string{"181 Marylebone Road"}, got[0].AddressLines)
	s.Equal("London", got[0].Town)
	s.Equal(typeWriteToUs, got[1].TypeID)

	court := s.reload("westminster-magistrates")
	s.InDelta(51.501009, *court.Lat, 1e-9)
	s.InDelta(-0.141588, *court.Lon, 1e-9)

	entries := s.audits.All()
	s.Require().Len(entries, 1)
	s.Equal(audit.ChangeUpdateAddresses, entries[0].ChangeType)
	s.Equal("westminster-magistrates", entries[0].Location)
	s.Equal("admin@justice.gov.uk", entries[0].UserEmail)
	wantBefore, err := json.Marshal(before)
	s.Require().NoError(err)
	s.JSONEq(string(wantBefore), string(entries[0].Before))
	wantAfter, err := json.Marshal(got)
	s.Require().NoError(err)
	s.JSONEq(string(wantAfter), string(entries[0].After))
}

func (s *ServiceSuite) TestUpdateAddressesTwiceIsIdempotentWithTwoAudits() {
	s.seedCourt("leeds-combined-court-centre", true, 0, 0)
	payload := []models.Address{
		{TypeID: typeVisitOrContactUs, AddressLines: []string{"1 Oxford Row"}, Town: "Leeds", Postcode: "LS1 3BG"},
	}
	s.geocoder.EXPECT().Resolve(gomock.Any(), "LS1 3BG").Return(resolved(53.8, -1.55), true, nil).Times(2)

	first, err := s.svc.UpdateAddresses(s.ctx, s.admin, "leeds-combined-court-centre", payload)
	s.Require().NoError(err)
	afterFirst := s.reload("leeds-combined-court-centre")

	second, err := s.svc.UpdateAddresses(s.ctx, s.admin, "leeds-combined-court-centre", payload)
	s.Require().NoError(err)
	afterSecond := s.reload("leeds-combined-court-centre")

	s.Equal(first, second)
	s.Equal(afterFirst, afterSecond)
	entries := s.audits.All()
	s.Require().Len(entries, 2)
	s.JSONEq(string(entries[0].After), string(entries[1].After))
	s.JSONEq(string(entries[1].Before), string(entries[1].After))
}

func (s *ServiceSuite) TestUpdateAddressesRollsBackWhenAuditFails() {
	prior := []models.Address{{TypeID: typeVisitUs, AddressLines: []string{"Old Street"}, Postcode: "CF10 1ET"}}
	s.seedCourt("cardiff-crown-court", true, 51.48, -3.18, prior...)
	before := s.reload("cardiff-crown-court")

	auditor := mocks.NewMockAuditRecorder(s.ctrl)
	auditor.EXPECT().
		Record(gomock.Any(), s.admin, audit.ChangeUpdateAddresses, gomock.Any(), gomock.Any(), "cardiff-crown-court").
		Return(dErrors.Wrap(errors.New("disk full"), dErrors.CodeInternal, "failed to record audit entry"))
	s.geocoder.EXPECT().Resolve(gomock.Any(), "CF24 0RZ").Return(resolved(51.49, -3.16), true, nil)

	_, err := s.withAuditor(auditor).UpdateAddresses(s.ctx, s.admin, "cardiff-crown-court", []models.Address{
		{TypeID: typeVisitUs, AddressLines: []string{"New Street"}, Postcode: "CF24 0RZ"},
	})
	s.requireCode(err, dErrors.CodeInternal)

	after := s.reload("cardiff-crown-court")
	s.Equal(before.Addresses, after.Addresses)
	s.Equal(*before.Lat, *after.Lat)
	s.Equal(*before.Lon, *after.Lon)
	s.Empty(s.audits.All())
}

func (s *ServiceSuite) TestUpdateAddressesValidation() {
	s.seedCourt("york-crown-court", true, 53.96, -1.08)

	s.Run("invalid postcodes never reach the geocoder", func() {
		_, err := s.svc.UpdateAddresses(s.ctx, s.admin, "york-crown-court", []models.Address{
			{TypeID: typeVisitUs, Postcode: "Y288"},
			{TypeID: typeWriteToUs, Postcode: "YO1 9WZ"},
			{TypeID: typeWriteToUs, Postcode: "YO1"},
		})
		s.requireCode(err, dErrors.CodeValidation)
		s.Contains(err.Error(), "Y288")
		s.Contains(err.Error(), "YO1")
	})

	s.Run("unknown address type", func() {
		_, err := s.svc.UpdateAddresses(s.ctx, s.admin, "york-crown-court", []models.Address{
			{TypeID: 42, Postcode: "YO1 9WZ"},
		})
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("unknown court", func() {
		_, err := s.svc.UpdateAddresses(s.ctx, s.admin, "nowhere", nil)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Empty(s.audits.All())
}

func (s *ServiceSuite) TestValidatePostcodes() {
	invalid := s.svc.ValidatePostcodes(s.ctx, []models.Address{
		{Postcode: "SW1A 1AA"},
		{Postcode: " "},
		{Postcode: "M1"},
		{Postcode: "EC1W"},
		{Postcode: "ec1a1bb"},
		{Postcode: "NOT-A-CODE"},
	})
	s.Equal([]string{"M1", "EC1W", "NOT-A-CODE"}, invalid)
}

func (s *ServiceSuite) TestUpdateAddressesKeepsCoordinatesWhenNotResolved() {
	s.seedCourt("hull-combined-court", true, 53.74, -0.33)
	s.geocoder.EXPECT().Resolve(gomock.Any(), "HU1 2EZ").Return(nil, false, nil)

	got, err := s.svc.UpdateAddresses(s.ctx, s.admin, "hull-combined-court", []models.Address{
		{TypeID: typeVisitUs, AddressLines: []string{"Lowgate"}, Postcode: "HU1 2EZ"},
	})
	s.Require().NoError(err)
	s.Len(got, 1)

	court := s.reload("hull-combined-court")
	s.Equal(53.74, *court.Lat)
	s.Equal(-0.33, *court.Lon)
	s.Len(s.audits.All(), 1)
}

func (s *ServiceSuite) TestUpdateAddressesSkipsGeocodingForServiceCentres() {
	s.seedCourt("divorce-service-centre", false, 0, 0)

	got, err := s.svc.UpdateAddresses(s.ctx, s.admin, "divorce-service-centre", []models.Address{
		{TypeID: typeWriteToUs, AddressLines: []string{"PO Box 13226"}, Postcode: "HA1 9BN"},
	})
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *ServiceSuite) TestUpdateAddressesGeocoderOutage() {
	prior := []models.Address{{TypeID: typeVisitUs, AddressLines: []string{"Bridge Street"}, Postcode: "M3 3FX"}}
	s.seedCourt("manchester-civil", true, 53.48, -2.25, prior...)
	s.geocoder.EXPECT().Resolve(gomock.Any(), "M60 9DJ").
		Return(nil, false, dErrors.New(dErrors.CodeUpstreamUnavailable, "geocoder unavailable"))

	_, err := s.svc.UpdateAddresses(s.ctx, s.admin, "manchester-civil", []models.Address{
		{TypeID: typeVisitUs, AddressLines: []string{"1 Bridge Street West"}, Postcode: "M60 9DJ"},
	})
	s.requireCode(err, dErrors.CodeUpstreamUnavailable)
	s.Equal([]string{"Bridge Street"}, s.reload("manchester-civil").Addresses[0].AddressLines)
	s.Empty(s.audits.All())
}

func (s *ServiceSuite) TestGetAddressesSortsPrimaryFirst() {
	s.seedCourt("bristol-civil", true, 51.45, -2.58,
		models.Address{TypeID: typeWriteToUs, Postcode: "BS1 6GR"},
		models.Address{TypeID: typeVisitOrContactUs, Postcode: "BS1 6GR"},
	)
	got, err := s.svc.GetAddresses(s.ctx, "bristol-civil")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(typeVisitOrContactUs, got[0].TypeID)

	_, err = s.svc.GetAddresses(s.ctx, domain.Slug("missing"))
	s.requireCode(err, dErrors.CodeNotFound)
}

func (s *ServiceSuite) TestListAddressTypesOrderedByID() {
	types, err := s.svc.ListAddressTypes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(types, 3)
	s.Equal(typeWriteToUs, types[0].ID)
	s.Equal(typeVisitOrContactUs, types[2].ID)
}
