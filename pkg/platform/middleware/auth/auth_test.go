package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fact/pkg/domain"
	"fact/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return s.claims, s.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireAuth(t *testing.T) {
	var got domain.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetCaller(r)
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		RequireAuth(stubValidator{}, discard())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		RequireAuth(stubValidator{err: errors.New("bad")}, discard())(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token sets caller", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		v := stubValidator{claims: &JWTClaims{Email: "a@b.com", Roles: []string{domain.RoleAdmin}}}
		RequireAuth(v, discard())(next).ServeHTTP(w, r)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "a@b.com", got.Email)
		assert.True(t, got.HasRole(domain.RoleAdmin))
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guard := RequireRole(discard(), domain.RoleSuperAdmin)(next)

	tests := []struct {
		name   string
		caller *domain.Caller
		want   int
	}{
		{name: "anonymous", caller: nil, want: http.StatusUnauthorized},
		{name: "plain admin", caller: &domain.Caller{Email: "a@b", Roles: []string{domain.RoleAdmin}}, want: http.StatusForbidden},
		{name: "super admin", caller: &domain.Caller{Email: "s@b", Roles: []string{domain.RoleSuperAdmin}}, want: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodDelete, "/", nil)
			if tt.caller != nil {
				r = r.WithContext(requestcontext.WithCaller(r.Context(), *tt.caller))
			}
			w := httptest.NewRecorder()
			guard.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
