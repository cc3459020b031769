package audit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"

	"fact/internal/platform/metrics"
	"fact/pkg/domain"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/sentinel"
	"fact/pkg/requestcontext"
)

// Store persists entries. Implementations must write through the
// transaction carried in ctx, if any.
type Store interface {
	TypeByName(ctx context.Context, name ChangeType) (*Type, error)
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context, q Query) ([]Entry, int, error)
}

// Recorder writes audit entries.
type Recorder struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Recorder)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Recorder) {
		r.metrics = m
	}
}

// NewRecorder constructs a Recorder over store.
func NewRecorder(store Store, opts ...Option) *Recorder {
	r := &Recorder{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record stores one entry for a mutation of location by caller. Call it
// inside the mutation's tx.Manager.RunInTx so a failure here rolls the
// mutation back.
func (r *Recorder) Record(ctx context.Context, caller domain.Caller, changeType ChangeType, before, after any, location string) error {
	if isNil(before) && isNil(after) {
		return dErrors.New(dErrors.CodeInvariantViolation, "audit entry needs a before or after snapshot")
	}

	t, err := r.store.TypeByName(ctx, changeType)
	if err != nil {
		r.metrics.IncAuditFailure()
		if errors.Is(err, sentinel.ErrNotFound) {
			r.logger.ErrorContext(ctx, "CRITICAL: audit type is not configured",
				"audit_type", string(changeType),
				"request_id", requestcontext.RequestID(ctx),
			)
			return dErrors.Wrap(err, dErrors.CodeInternal, "audit type not configured")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit type")
	}

	entry := Entry{
		UserEmail:  caller.Email,
		ChangeType: t.Name,
		Location:   location,
		CreatedAt:  requestcontext.Now(ctx),
	}
	if entry.Before, err = snapshot(before); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to serialise audit snapshot")
	}
	if entry.After, err = snapshot(after); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to serialise audit snapshot")
	}

	if err := r.store.Append(ctx, entry); err != nil {
		r.metrics.IncAuditFailure()
		r.logger.ErrorContext(ctx, "audit write failed",
			"audit_type", string(changeType),
			"location", location,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record audit entry")
	}
	r.metrics.IncAuditEntry(string(changeType))
	return nil
}

// snapshot renders v as JSON. encoding/json emits struct fields in
// declaration order and map keys sorted, which keeps snapshots stable.
func snapshot(v any) (json.RawMessage, error) {
	if isNil(v) {
		return nil, nil
	}
	return json.Marshal(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
