package testutil

import (
	"net/http"
	"time"

	"fact/pkg/domain"
	"fact/pkg/requestcontext"
)

// WithCaller simulates RequireAuth for handler tests that bypass the
// middleware chain.
func WithCaller(req *http.Request, email string, roles ...string) *http.Request {
	ctx := requestcontext.WithCaller(req.Context(), domain.Caller{Email: email, Roles: roles})
	return req.WithContext(ctx)
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
