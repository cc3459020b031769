package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fact/internal/audit"
	"fact/internal/audit/handler/mocks"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/testutil"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func TestHandleList(t *testing.T) {
	t.Run("parses filters and date bounds", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q audit.Query) (*audit.Page, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 25, q.Size)
				assert.Equal(t, "leeds", q.Location)
				assert.Equal(t, "alice", q.Email)
				require.NotNil(t, q.From)
				require.NotNil(t, q.To)
				assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *q.From)
				assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 999999999, time.UTC), *q.To)
				return &audit.Page{Entries: []audit.Entry{{ID: 7, Location: "leeds-crown-court"}}, Page: 2, Size: 25, Total: 51}, nil
			})

		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet,
			"/audits?page=2&size=25&location=leeds&email=alice&dateFrom=2026-01-01&dateTo=2026-01-31", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		page := testutil.UnmarshalResponse[audit.Page](t, rr)
		assert.Equal(t, 51, page.Total)
		require.Len(t, page.Entries, 1)
		assert.Equal(t, "leeds-crown-court", page.Entries[0].Location)
	})

	t.Run("open-ended range", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q audit.Query) (*audit.Page, error) {
				assert.Nil(t, q.From)
				require.NotNil(t, q.To)
				assert.Equal(t, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), q.To.UTC())
				return &audit.Page{Entries: []audit.Entry{}}, nil
			})

		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/audits?dateTo=2026-02-01T09:00:00Z", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("bad parameters", func(t *testing.T) {
		r, _ := newTestRouter(t)
		for _, path := range []string{"/audits?page=x", "/audits?size=1.5", "/audits?dateFrom=yesterday"} {
			rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, path, nil))
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
		}
	})

	t.Run("service validation error", func(t *testing.T) {
		r, svc := newTestRouter(t)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "dateFrom must not be after dateTo"))

		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/audits?dateFrom=2026-02-01&dateTo=2026-01-01", nil))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})
}
