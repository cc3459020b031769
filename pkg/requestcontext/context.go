// Package requestcontext carries request-scoped values (caller, request ID,
// request time) from middleware to handlers and services. Services receive the
// caller as an argument; only handlers read it from here.
package requestcontext

import (
	"context"
	"time"

	"fact/pkg/domain"
)

type (
	callerKey      struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Keys are exported for tests that build contexts by hand.
var (
	ContextKeyCaller      = callerKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// Caller returns the authenticated caller; ok is false on public routes.
func Caller(ctx context.Context) (domain.Caller, bool) {
	c, ok := ctx.Value(ContextKeyCaller).(domain.Caller)
	return c, ok
}

func WithCaller(ctx context.Context, c domain.Caller) context.Context {
	return context.WithValue(ctx, ContextKeyCaller, c)
}

// RequestID returns the X-Request-ID value, or "" when none was assigned.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now is the time the request arrived, so every audit row written for one
// request shares a timestamp. Outside a request it is the wall clock.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
