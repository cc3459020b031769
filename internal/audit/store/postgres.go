// Package store persists audit entries in Postgres or in memory.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fact/internal/audit"
	"fact/pkg/platform/sentinel"
	"fact/pkg/platform/tx"
)

// PostgresStore reads and writes the audits and audit_types tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgresStore.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) tx.Execer {
	return tx.ExecerFrom(ctx, s.db)
}

// TypeByName returns the audit type with the given label, or ErrNotFound.
func (s *PostgresStore) TypeByName(ctx context.Context, name audit.ChangeType) (*audit.Type, error) {
	var t audit.Type
	var label string
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT id, name FROM audit_types WHERE name = $1`, string(name),
	).Scan(&t.ID, &label)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find audit type: %w", err)
	}
	t.Name = audit.ChangeType(label)
	return &t, nil
}

// Append inserts entry through the transaction in ctx, if any.
func (s *PostgresStore) Append(ctx context.Context, entry audit.Entry) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO audits (user_email, audit_type_id, data_before, data_after, location, created_at)
		SELECT $1, id, $3, $4, $5, $6 FROM audit_types WHERE name = $2
	`, entry.UserEmail, string(entry.ChangeType), nullText(entry.Before), nullText(entry.After), entry.Location, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("audit type %q: %w", entry.ChangeType, sentinel.ErrNotFound)
	}
	return nil
}

func nullText(raw []byte) sql.NullString {
	if raw == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

// List returns the page of entries matching q and the total match count.
func (s *PostgresStore) List(ctx context.Context, q audit.Query) ([]audit.Entry, int, error) {
	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if q.Location != "" {
		where = append(where, "LOWER(a.location) LIKE "+arg(likePattern(q.Location))+` ESCAPE '\'`)
	}
	if q.Email != "" {
		where = append(where, "LOWER(a.user_email) LIKE "+arg(likePattern(q.Email))+` ESCAPE '\'`)
	}
	if q.From != nil {
		where = append(where, "a.created_at >= "+arg(*q.From))
	}
	if q.To != nil {
		where = append(where, "a.created_at <= "+arg(*q.To))
	}
	filter := ""
	if len(where) > 0 {
		filter = "WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.execer(ctx).QueryRowContext(ctx,
		"SELECT COUNT(*) FROM audits a "+filter, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audits: %w", err)
	}

	limit, offset := arg(q.Size), arg(q.Page*q.Size)
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT a.id, a.user_email, t.name, a.data_before, a.data_after, a.location, a.created_at
		FROM audits a
		JOIN audit_types t ON t.id = a.audit_type_id
		`+filter+`
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT `+limit+` OFFSET `+offset, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()

	entries := []audit.Entry{}
	for rows.Next() {
		var e audit.Entry
		var label string
		var before, after sql.NullString
		if err := rows.Scan(&e.ID, &e.UserEmail, &label, &before, &after, &e.Location, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan audit: %w", err)
		}
		e.ChangeType = audit.ChangeType(label)
		if before.Valid {
			e.Before = []byte(before.String)
		}
		if after.Valid {
			e.After = []byte(after.String)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audits: %w", err)
	}
	return entries, total, nil
}

func likePattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s))
	return "%" + s + "%"
}
