package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fact/internal/court/models"
	"fact/internal/platform/postgres"
	"fact/pkg/platform/sentinel"
)

const areaOfLawColumns = `a.id, a.name, a.name_cy, a.external_link, a.display_name, a.display_name_cy`

func scanAreaOfLaw(row rowScanner) (models.AreaOfLaw, error) {
	var a models.AreaOfLaw
	err := row.Scan(&a.ID, &a.Name, &a.NameCy, &a.ExternalLink, &a.DisplayName, &a.DisplayNameCy)
	return a, err
}

func (s *PostgresStore) queryAreasOfLaw(ctx context.Context, query string, args ...any) ([]models.AreaOfLaw, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query areas of law: %w", err)
	}
	defer rows.Close()

	out := []models.AreaOfLaw{}
	for rows.Next() {
		a, err := scanAreaOfLaw(rows)
		if err != nil {
			return nil, fmt.Errorf("scan area of law: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListAreasOfLaw returns the reference list ordered by name.
func (s *PostgresStore) ListAreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error) {
	return s.queryAreasOfLaw(ctx, `SELECT `+areaOfLawColumns+` FROM areas_of_law a ORDER BY a.name, a.id`)
}

func (s *PostgresStore) GetAreaOfLaw(ctx context.Context, id int) (*models.AreaOfLaw, error) {
	a, err := scanAreaOfLaw(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+areaOfLawColumns+` FROM areas_of_law a WHERE a.id = $1`+forUpdate(ctx), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get area of law: %w", err)
	}
	return &a, nil
}

// CreateAreaOfLaw inserts a and sets its ID. Names are unique ignoring case.
func (s *PostgresStore) CreateAreaOfLaw(ctx context.Context, a *models.AreaOfLaw) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO areas_of_law (name, name_cy, external_link, display_name, display_name_cy)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, a.Name, a.NameCy, a.ExternalLink, a.DisplayName, a.DisplayNameCy).Scan(&a.ID)
	if err != nil {
		if postgres.IsCode(err, postgres.UniqueViolation) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert area of law: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateAreaOfLaw(ctx context.Context, a models.AreaOfLaw) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE areas_of_law
		SET name = $2, name_cy = $3, external_link = $4, display_name = $5, display_name_cy = $6
		WHERE id = $1
	`, a.ID, a.Name, a.NameCy, a.ExternalLink, a.DisplayName, a.DisplayNameCy)
	if err != nil {
		if postgres.IsCode(err, postgres.UniqueViolation) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("update area of law: %w", err)
	}
	return requireOneRow(res)
}

// DeleteAreaOfLaw removes an unused area of law. One still linked to a court
// is ErrInUse and nothing is deleted.
func (s *PostgresStore) DeleteAreaOfLaw(ctx context.Context, id int) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM areas_of_law WHERE id = $1`, id)
	if err != nil {
		if postgres.IsCode(err, postgres.ForeignKeyViolation) {
			return sentinel.ErrInUse
		}
		return fmt.Errorf("delete area of law: %w", err)
	}
	return requireOneRow(res)
}

// AreaOfLawInUse reports whether any court serves the area of law.
func (s *PostgresStore) AreaOfLawInUse(ctx context.Context, id int) (bool, error) {
	var inUse bool
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM court_areas_of_law WHERE area_of_law_id = $1)`, id).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("check area of law usage: %w", err)
	}
	return inUse, nil
}

// CourtAreasOfLaw returns the areas of law a court serves.
func (s *PostgresStore) CourtAreasOfLaw(ctx context.Context, courtID int64) ([]models.AreaOfLaw, error) {
	return s.queryAreasOfLaw(ctx, `
		SELECT `+areaOfLawColumns+`
		FROM court_areas_of_law caol
		JOIN areas_of_law a ON a.id = caol.area_of_law_id
		WHERE caol.court_id = $1
		ORDER BY a.name, a.id
	`, courtID)
}

// SetCourtAreasOfLaw replaces the set of areas a court serves. An unknown
// area id is ErrNotFound.
func (s *PostgresStore) SetCourtAreasOfLaw(ctx context.Context, courtID int64, ids []int) error {
	if _, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM court_areas_of_law WHERE court_id = $1`, courtID); err != nil {
		return fmt.Errorf("delete court areas of law: %w", err)
	}
	for _, id := range ids {
		_, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO court_areas_of_law (court_id, area_of_law_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, courtID, id)
		if err != nil {
			if postgres.IsCode(err, postgres.ForeignKeyViolation) {
				return fmt.Errorf("area of law %d: %w", id, sentinel.ErrNotFound)
			}
			return fmt.Errorf("insert court area of law: %w", err)
		}
	}
	return nil
}

// ListLocalAuthorities returns every known local authority ordered by name.
func (s *PostgresStore) ListLocalAuthorities(ctx context.Context) ([]models.LocalAuthority, error) {
	return s.queryLocalAuthorities(ctx, `SELECT la.id, la.name FROM local_authorities la ORDER BY la.name`)
}

// CourtLocalAuthorities returns the councils linked to a court for one area of law.
func (s *PostgresStore) CourtLocalAuthorities(ctx context.Context, courtID int64, areaOfLawID int) ([]models.LocalAuthority, error) {
	return s.queryLocalAuthorities(ctx, `
		SELECT la.id, la.name
		FROM court_local_authorities cla
		JOIN local_authorities la ON la.id = cla.local_authority_id
		WHERE cla.court_id = $1 AND cla.area_of_law_id = $2
		ORDER BY la.name
	`, courtID, areaOfLawID)
}

func (s *PostgresStore) queryLocalAuthorities(ctx context.Context, query string, args ...any) ([]models.LocalAuthority, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query local authorities: %w", err)
	}
	defer rows.Close()

	out := []models.LocalAuthority{}
	for rows.Next() {
		var la models.LocalAuthority
		if err := rows.Scan(&la.ID, &la.Name); err != nil {
			return nil, fmt.Errorf("scan local authority: %w", err)
		}
		out = append(out, la)
	}
	return out, rows.Err()
}

// SetCourtLocalAuthorities replaces the councils linked to a court for one
// area of law. An unknown council id is ErrNotFound.
func (s *PostgresStore) SetCourtLocalAuthorities(ctx context.Context, courtID int64, areaOfLawID int, ids []int) error {
	if _, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM court_local_authorities WHERE court_id = $1 AND area_of_law_id = $2`,
		courtID, areaOfLawID); err != nil {
		return fmt.Errorf("delete court local authorities: %w", err)
	}
	for _, id := range ids {
		_, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO court_local_authorities (court_id, area_of_law_id, local_authority_id)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING
		`, courtID, areaOfLawID, id)
		if err != nil {
			if postgres.IsCode(err, postgres.ForeignKeyViolation) {
				return fmt.Errorf("local authority %d: %w", id, sentinel.ErrNotFound)
			}
			return fmt.Errorf("insert court local authority: %w", err)
		}
	}
	return nil
}
