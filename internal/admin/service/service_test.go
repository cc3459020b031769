package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fact/internal/admin/service/mocks"
	"fact/internal/audit"
	auditstore "fact/internal/audit/store"
	"fact/internal/court/models"
	courtstore "fact/internal/court/store"
	"fact/internal/geocode"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/tx"
	"fact/pkg/requestcontext"
)

const (
	typeWriteToUs        = 5880
	typeVisitUs          = 5881
	typeVisitOrContactUs = 5882
)

// ServiceSuite runs the admin use cases against the in-memory stores so the
// unit of work, the audit trail and the court state are all real.
type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	courts     *courtstore.InMemoryStore
	audits     *auditstore.InMemoryStore
	txm        *tx.MemoryManager
	geocoder   *mocks.MockGeocoder
	svc        *Service
	admin      domain.Caller
	superAdmin domain.Caller
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	s.ctrl = gomock.NewController(s.T())
	s.courts = courtstore.NewInMemory()
	s.courts.SeedAddressTypes(
		models.AddressType{ID: typeWriteToUs, Name: "Write to us"},
		models.AddressType{ID: typeVisitUs, Name: models.AddressTypeVisitUs},
		models.AddressType{ID: typeVisitOrContactUs, Name: models.AddressTypeVisitOrContactUs},
	)
	s.audits = auditstore.NewInMemory()
	s.txm = tx.NewMemoryManager(s.courts, s.audits)
	s.geocoder = mocks.NewMockGeocoder(s.ctrl)
	s.svc = New(s.courts, s.txm, s.geocoder,
		audit.NewRecorder(s.audits, audit.WithLogger(discardLogger())),
		WithLogger(discardLogger()),
	)
	s.admin = domain.Caller{Email: "admin@justice.gov.uk", Roles: []string{domain.RoleAdmin}}
	s.superAdmin = domain.Caller{Email: "super@justice.gov.uk", Roles: []string{domain.RoleAdmin, domain.RoleSuperAdmin}}
}

// withAuditor rebuilds the service with a different audit recorder over the
// same stores and unit of work.
func (s *ServiceSuite) withAuditor(a AuditRecorder) *Service {
	return New(s.courts, s.txm, s.geocoder, a, WithLogger(discardLogger()))
}

func (s *ServiceSuite) seedCourt(slug string, inPerson bool, lat, lon float64, addresses ...models.Address) *models.Court {
	c := &models.Court{Slug: domain.Slug(slug), Name: slug, Displayed: true, InPerson: inPerson, ServiceCentre: !inPerson}
	s.Require().NoError(s.courts.CreateCourt(s.ctx, c))
	s.Require().NoError(s.courts.UpdateLatLon(s.ctx, c.ID, lat, lon))
	if len(addresses) > 0 {
		s.Require().NoError(s.courts.InsertAddresses(s.ctx, c.ID, addresses))
	}
	return c
}

func (s *ServiceSuite) reload(slug string) *models.Court {
	c, err := s.courts.FindBySlug(s.ctx, domain.Slug(slug))
	s.Require().NoError(err)
	return c
}

func (s *ServiceSuite) requireCode(err error, code dErrors.Code) {
	s.Require().Error(err)
	s.Equal(code, dErrors.CodeOf(err), "error: %v", err)
}

func resolved(lat, lon float64) *geocode.Result {
	res, err := geocode.Decode([]byte(fmt.Sprintf(`{"wgs84_lat": %g, "wgs84_lon": %g}`, lat, lon)))
	if err != nil {
		panic(err)
	}
	return res
}

type failingAuditor struct{}

func (failingAuditor) Record(context.Context, domain.Caller, audit.ChangeType, any, any, string) error {
	return dErrors.Wrap(errors.New("connection reset"), dErrors.CodeInternal, "failed to record audit entry")
}
