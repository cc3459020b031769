package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fact/internal/admin/handler/mocks"
	"fact/internal/court/models"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/testutil"
)

const adminEmail = "clerk@justice.example"

type AdminHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	caller  domain.Caller
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerSuite))
}

func (s *AdminHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.Register(s.router)
	h.RegisterSuperAdmin(s.router)
	s.caller = domain.Caller{Email: adminEmail, Roles: []string{domain.RoleAdmin}}
}

func (s *AdminHandlerSuite) as(req *http.Request) *http.Request {
	return testutil.WithCaller(req, s.caller.Email, s.caller.Roles...)
}

func (s *AdminHandlerSuite) TestUpdateAddresses() {
	body := []models.Address{
		{TypeID: 5881, AddressLines: []string{"PO Box 1"}, Town: "London", Postcode: "SW1A 2AA"},
		{TypeID: 5880, AddressLines: []string{"1 Court Lane"}, Town: "London", Postcode: "SW1A 1AA"},
	}

	s.Run("returns the stored addresses", func() {
		sorted := []models.Address{body[1], body[0]}
		s.service.EXPECT().ValidatePostcodes(gomock.Any(), body).Return(nil)
		s.service.EXPECT().
			UpdateAddresses(gomock.Any(), s.caller, domain.Slug("westminster"), body).
			Return(sorted, nil)

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/westminster/addresses", body))
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusOK, rr.Code)
		got := testutil.UnmarshalResponse[[]models.Address](s.T(), rr)
		s.Require().Len(got, 2)
		s.Equal(5880, got[0].TypeID)
	})

	s.Run("lists invalid postcodes", func() {
		s.service.EXPECT().ValidatePostcodes(gomock.Any(), gomock.Any()).Return([]string{"NOT A PC"})

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/westminster/addresses", body))
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusBadRequest, rr.Code)
		got := testutil.UnmarshalResponse[InvalidPostcodesResponse](s.T(), rr)
		s.Equal(string(dErrors.CodeValidation), got.Error)
		s.Equal([]string{"NOT A PC"}, got.InvalidPostcodes)
	})

	s.Run("unknown court", func() {
		s.service.EXPECT().ValidatePostcodes(gomock.Any(), gomock.Any()).Return(nil)
		s.service.EXPECT().
			UpdateAddresses(gomock.Any(), gomock.Any(), domain.Slug("nowhere"), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "court not found"))

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/nowhere/addresses", body))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("malformed body", func() {
		req := s.as(testutil.NewRawRequest(http.MethodPut, "/admin/courts/westminster/addresses", "{not json"))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("requires a caller", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/westminster/addresses", body)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeUnauthorized))
	})
}

func (s *AdminHandlerSuite) TestGetCourt() {
	s.Run("found", func() {
		s.service.EXPECT().
			GetCourt(gomock.Any(), domain.Slug("westminster")).
			Return(&models.Court{Slug: "westminster", Name: "Westminster"}, nil)

		rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/courts/westminster", nil)))
		s.Equal(http.StatusOK, rr.Code)
		got := testutil.UnmarshalResponse[models.Court](s.T(), rr)
		s.Equal("Westminster", got.Name)
	})

	s.Run("malformed slug", func() {
		rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/courts/Bad_Slug", nil)))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.Run("store failure", func() {
		s.service.EXPECT().
			GetCourt(gomock.Any(), domain.Slug("westminster")).
			Return(nil, dErrors.New(dErrors.CodeInternal, "failed to load court"))

		rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/courts/westminster", nil)))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, string(dErrors.CodeInternal))
	})
}

func (s *AdminHandlerSuite) TestUpdateGeneral() {
	update := models.GeneralInfo{Alert: "Closed Friday", OpeningTimes: []models.OpeningTime{{Type: "Counter", Hours: "9-5"}}}
	s.service.EXPECT().
		UpdateCourt(gomock.Any(), s.caller, domain.Slug("westminster"), update).
		Return(&models.Court{Slug: "westminster", Alert: "Closed Friday", Displayed: true, OpeningTimes: update.OpeningTimes}, nil)

	req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/westminster/general", update))
	rr := testutil.DoRequest(s.router, req)
	s.Equal(http.StatusOK, rr.Code)
	got := testutil.UnmarshalResponse[models.GeneralInfo](s.T(), rr)
	s.Equal("Closed Friday", got.Alert)
	s.True(got.Displayed)
}

func (s *AdminHandlerSuite) TestCreateCourt() {
	s.Run("created", func() {
		s.service.EXPECT().
			CreateCourt(gomock.Any(), s.caller, models.NewCourt{Name: "Bristol Civil Court"}).
			Return(&models.Court{Slug: "bristol-civil-court", Name: "Bristol Civil Court"}, nil)

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/courts", map[string]any{"new_court_name": "  Bristol Civil Court "}))
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusCreated, rr.Code)
	})

	s.Run("blank name", func() {
		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/courts", map[string]any{"new_court_name": " "}))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.Run("duplicate", func() {
		s.service.EXPECT().
			CreateCourt(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeConflict, "court already exists"))

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/courts", map[string]any{"new_court_name": "Westminster"}))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeConflict))
	})

	s.Run("forbidden", func() {
		s.service.EXPECT().
			CreateCourt(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "super admin role required"))

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/courts", map[string]any{"new_court_name": "Westminster"}))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, string(dErrors.CodeForbidden))
	})
}

func (s *AdminHandlerSuite) TestDeleteCourt() {
	s.service.EXPECT().DeleteCourt(gomock.Any(), s.caller, domain.Slug("westminster")).Return(nil)

	rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodDelete, "/admin/courts/westminster", nil)))
	s.Equal(http.StatusNoContent, rr.Code)
	s.Empty(rr.Body.String())
}

func (s *AdminHandlerSuite) TestAreasOfLaw() {
	s.Run("get by id", func() {
		s.service.EXPECT().GetAreaOfLaw(gomock.Any(), 7).Return(&models.AreaOfLaw{ID: 7, Name: "Divorce"}, nil)

		rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/areasOfLaw/7", nil)))
		s.Equal(http.StatusOK, rr.Code)
		s.Equal("Divorce", testutil.UnmarshalResponse[models.AreaOfLaw](s.T(), rr).Name)
	})

	s.Run("non-numeric id", func() {
		rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/areasOfLaw/seven", nil)))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("delete in use", func() {
		s.service.EXPECT().
			DeleteAreaOfLaw(gomock.Any(), s.caller, 7).
			Return(dErrors.New(dErrors.CodeConflict, "area of law is in use"))

		rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodDelete, "/admin/areasOfLaw/7", nil)))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeConflict))
	})

	s.Run("update", func() {
		s.service.EXPECT().
			UpdateAreaOfLaw(gomock.Any(), s.caller, models.AreaOfLaw{ID: 7, Name: "Adoption"}).
			Return(&models.AreaOfLaw{ID: 7, Name: "Adoption"}, nil)

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/areasOfLaw", models.AreaOfLaw{ID: 7, Name: " Adoption "}))
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusOK, rr.Code)
	})
}

func (s *AdminHandlerSuite) TestCourtAreasOfLaw() {
	s.Run("passes ids", func() {
		s.service.EXPECT().
			UpdateCourtAreasOfLaw(gomock.Any(), s.caller, domain.Slug("westminster"), []int{3, 9}).
			Return([]models.AreaOfLaw{{ID: 3, Name: "Adoption"}, {ID: 9, Name: "Money claims"}}, nil)

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/westminster/courtAreasOfLaw",
			[]models.AreaOfLaw{{ID: 3}, {ID: 9}}))
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusOK, rr.Code)
		s.Len(testutil.UnmarshalResponse[[]models.AreaOfLaw](s.T(), rr), 2)
	})

	s.Run("missing id", func() {
		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/westminster/courtAreasOfLaw",
			[]models.AreaOfLaw{{Name: "Adoption"}}))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})
}

func (s *AdminHandlerSuite) TestCourtLocalAuthorities() {
	s.Run("get decodes the area of law", func() {
		s.service.EXPECT().
			GetCourtLocalAuthorities(gomock.Any(), domain.Slug("westminster"), "Children").
			Return([]models.LocalAuthority{{ID: 4, Name: "Westminster City Council"}}, nil)

		rr := testutil.DoRequest(s.router, s.as(testutil.NewJSONRequest(s.T(), http.MethodGet, "/admin/courts/westminster/localAuthorities/Children", nil)))
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("area not served", func() {
		las := []models.LocalAuthority{{ID: 4, Name: "Westminster City Council"}}
		s.service.EXPECT().
			UpdateCourtLocalAuthorities(gomock.Any(), s.caller, domain.Slug("westminster"), "Adoption", las).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "area of law not found for court"))

		req := s.as(testutil.NewJSONRequest(s.T(), http.MethodPut, "/admin/courts/westminster/localAuthorities/Adoption", las))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})
}
