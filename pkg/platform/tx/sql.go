package tx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	dErrors "fact/pkg/domain-errors"
)

const defaultTxTimeout = 5 * time.Second

var tracer = otel.Tracer("fact/pkg/platform/tx")

// SQLManager runs units of work inside a database/sql transaction.
type SQLManager struct {
	db      *sql.DB
	timeout time.Duration
}

// Option configures a SQLManager.
type Option func(*SQLManager)

// WithTimeout bounds transactions started without a context deadline.
func WithTimeout(d time.Duration) Option {
	return func(m *SQLManager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// NewSQLManager constructs a SQLManager over db.
func NewSQLManager(db *sql.DB, opts ...Option) *SQLManager {
	m := &SQLManager{db: db, timeout: defaultTxTimeout}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx begins a read-committed transaction, runs fn with the transaction
// in context and commits when fn returns nil. Any error or panic rolls back.
// Nested calls reuse the outer transaction.
func (m *SQLManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := From(ctx); ok {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "tx.run")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rolled back")
		}
		span.SetAttributes(attribute.Bool("tx.committed", err == nil))
		span.End()
	}()

	sqlTx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = sqlTx.Rollback()
		}
	}()

	if err = fn(WithTx(ctx, sqlTx)); err != nil {
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
