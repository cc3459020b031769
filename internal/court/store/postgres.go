// Package store persists courts and their reference lists.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"fact/internal/court/models"
	"fact/internal/platform/postgres"
	"fact/pkg/domain"
	"fact/pkg/platform/sentinel"
	stringutil "fact/pkg/platform/strings"
	"fact/pkg/platform/tx"
)

// PostgresStore persists courts in PostgreSQL. Every method writes through
// the transaction carried by ctx when there is one.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed court store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) tx.Execer {
	return tx.ExecerFrom(ctx, s.db)
}

// forUpdate locks the selected row until commit when ctx carries a
// transaction, so a read-modify-write sees no concurrent change.
func forUpdate(ctx context.Context) string {
	if _, ok := tx.From(ctx); ok {
		return ` FOR UPDATE`
	}
	return ""
}

const courtColumns = `c.id, c.slug, c.name, c.name_cy, c.lat, c.lon, c.displayed, c.in_person,
	c.service_centre, c.access_scheme, c.alert, c.alert_cy, c.info, c.info_cy, c.image_file`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourt(row rowScanner, extra ...any) (*models.Court, error) {
	var (
		c            models.Court
		slug         string
		lat, lon     sql.NullFloat64
		accessScheme sql.NullBool
	)
	dest := []any{
		&c.ID, &slug, &c.Name, &c.NameCy, &lat, &lon, &c.Displayed, &c.InPerson,
		&c.ServiceCentre, &accessScheme, &c.Alert, &c.AlertCy, &c.Info, &c.InfoCy, &c.ImageFile,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	c.Slug = domain.Slug(slug)
	if lat.Valid {
		c.Lat = &lat.Float64
	}
	if lon.Valid {
		c.Lon = &lon.Float64
	}
	if accessScheme.Valid {
		c.AccessScheme = &accessScheme.Bool
	}
	return &c, nil
}

// FindBySlug loads a court with its addresses, opening times and areas of law.
// Inside a transaction the court row stays locked until commit.
func (s *PostgresStore) FindBySlug(ctx context.Context, slug domain.Slug) (*models.Court, error) {
	row := s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+courtColumns+` FROM courts c WHERE c.slug = $1`+forUpdate(ctx), string(slug))
	c, err := scanCourt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find court by slug: %w", err)
	}

	if c.Addresses, err = s.Addresses(ctx, c.ID); err != nil {
		return nil, err
	}
	if c.OpeningTimes, err = s.openingTimes(ctx, c.ID); err != nil {
		return nil, err
	}
	if c.AreasOfLaw, err = s.CourtAreasOfLaw(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

// FindNearest returns displayed in-person courts with coordinates, ordered by
// haversine distance in miles (mean Earth radius 3958.8) from (lat, lon)
// and then by id. Only the areas
// of law (id and name) are populated on each court.
func (s *PostgresStore) FindNearest(ctx context.Context, lat, lon float64) ([]models.CourtWithDistance, error) {
	query := `
		SELECT ` + courtColumns + `,
			(2 * 3958.8 * asin(sqrt(
				power(sin(radians(c.lat - $1) / 2), 2) +
				cos(radians($1)) * cos(radians(c.lat)) *
				power(sin(radians(c.lon - $2) / 2), 2)
			))) AS distance,
			COALESCE(array_agg(a.id ORDER BY a.name) FILTER (WHERE a.id IS NOT NULL), '{}') AS aol_ids,
			COALESCE(array_agg(a.name ORDER BY a.name) FILTER (WHERE a.id IS NOT NULL), '{}') AS aol_names
		FROM courts c
		LEFT JOIN court_areas_of_law caol ON caol.court_id = c.id
		LEFT JOIN areas_of_law a ON a.id = caol.area_of_law_id
		WHERE c.displayed AND c.in_person AND c.lat IS NOT NULL AND c.lon IS NOT NULL
		GROUP BY c.id
		ORDER BY distance, c.id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("query nearest courts: %w", err)
	}
	defer rows.Close()

	var out []models.CourtWithDistance
	for rows.Next() {
		var (
			distance float64
			ids      pq.Int64Array
			names    pq.StringArray
		)
		c, err := scanCourt(rows, &distance, &ids, &names)
		if err != nil {
			return nil, fmt.Errorf("scan nearest court: %w", err)
		}
		c.AreasOfLaw = make([]models.AreaOfLaw, 0, len(names))
		for i := range names {
			if i < len(ids) {
				c.AreasOfLaw = append(c.AreasOfLaw, models.AreaOfLaw{ID: int(ids[i]), Name: names[i]})
			}
		}
		out = append(out, models.CourtWithDistance{Court: *c, Distance: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nearest courts: %w", err)
	}
	return out, nil
}

// QueryBy matches displayed courts whose name or address contains query, whose
// postcode contains it ignoring case and spaces, or whose town equals it.
func (s *PostgresStore) QueryBy(ctx context.Context, query string) ([]models.CourtReference, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	compact := "%" + escapeLike(strings.ToLower(strings.ReplaceAll(query, " ", ""))) + "%"

	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT DISTINCT c.slug, c.name
		FROM courts c
		LEFT JOIN court_addresses ca ON ca.court_id = c.id
		WHERE c.displayed AND (
			LOWER(c.name) LIKE $1 ESCAPE '\'
			OR LOWER(ca.address) LIKE $1 ESCAPE '\'
			OR REPLACE(LOWER(ca.postcode), ' ', '') LIKE $2 ESCAPE '\'
			OR LOWER(ca.town_name) = LOWER($3)
		)
		ORDER BY c.name, c.slug
	`, pattern, compact, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("query courts: %w", err)
	}
	defer rows.Close()

	out := []models.CourtReference{}
	for rows.Next() {
		var ref models.CourtReference
		var slug string
		if err := rows.Scan(&slug, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan court reference: %w", err)
		}
		ref.Slug = domain.Slug(slug)
		out = append(out, ref)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// CreateCourt inserts c and sets its ID. A duplicate slug is ErrConflict.
func (s *PostgresStore) CreateCourt(ctx context.Context, c *models.Court) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO courts (slug, name, lat, lon, displayed, in_person, service_centre, access_scheme)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, string(c.Slug), c.Name, c.Lat, c.Lon, c.Displayed, c.InPerson, c.ServiceCentre, c.AccessScheme).Scan(&c.ID)
	if err != nil {
		if postgres.IsCode(err, postgres.UniqueViolation) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert court: %w", err)
	}
	return nil
}

// UpdateGeneral writes the general section and replaces opening times.
func (s *PostgresStore) UpdateGeneral(ctx context.Context, courtID int64, info models.GeneralInfo) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE courts
		SET alert = $2, alert_cy = $3, displayed = $4, info = $5, info_cy = $6,
			access_scheme = $7, updated_at = now()
		WHERE id = $1
	`, courtID, info.Alert, info.AlertCy, info.Displayed, info.Info, info.InfoCy, info.AccessScheme)
	if err != nil {
		return fmt.Errorf("update court: %w", err)
	}
	if err := requireOneRow(res); err != nil {
		return err
	}

	if _, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM court_opening_times WHERE court_id = $1`, courtID); err != nil {
		return fmt.Errorf("delete opening times: %w", err)
	}
	for i, ot := range info.OpeningTimes {
		if _, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO court_opening_times (court_id, description, hours, sort_order)
			VALUES ($1, $2, $3, $4)
		`, courtID, ot.Type, ot.Hours, i); err != nil {
			return fmt.Errorf("insert opening time: %w", err)
		}
	}
	return nil
}

// DeleteCourt removes a court; dependent rows cascade.
func (s *PostgresStore) DeleteCourt(ctx context.Context, courtID int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, courtID)
	if err != nil {
		return fmt.Errorf("delete court: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) openingTimes(ctx context.Context, courtID int64) ([]models.OpeningTime, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT description, hours FROM court_opening_times
		WHERE court_id = $1 ORDER BY sort_order, id
	`, courtID)
	if err != nil {
		return nil, fmt.Errorf("query opening times: %w", err)
	}
	defer rows.Close()

	out := []models.OpeningTime{}
	for rows.Next() {
		var ot models.OpeningTime
		if err := rows.Scan(&ot.Type, &ot.Hours); err != nil {
			return nil, fmt.Errorf("scan opening time: %w", err)
		}
		out = append(out, ot)
	}
	return out, rows.Err()
}

// Addresses returns a court's addresses in stored order.
func (s *PostgresStore) Addresses(ctx context.Context, courtID int64) ([]models.Address, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT address_type_id, address, address_cy, town_name, town_name_cy, postcode
		FROM court_addresses WHERE court_id = $1 ORDER BY sort_order, id
	`, courtID)
	if err != nil {
		return nil, fmt.Errorf("query addresses: %w", err)
	}
	defer rows.Close()

	out := []models.Address{}
	for rows.Next() {
		var a models.Address
		var lines, linesCy string
		if err := rows.Scan(&a.TypeID, &lines, &linesCy, &a.Town, &a.TownCy, &a.Postcode); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		a.AddressLines = stringutil.SplitLines(lines)
		a.AddressLinesCy = stringutil.SplitLines(linesCy)
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteAddresses removes every address of a court.
func (s *PostgresStore) DeleteAddresses(ctx context.Context, courtID int64) error {
	if _, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM court_addresses WHERE court_id = $1`, courtID); err != nil {
		return fmt.Errorf("delete addresses: %w", err)
	}
	return nil
}

// InsertAddresses appends addresses in the given order.
func (s *PostgresStore) InsertAddresses(ctx context.Context, courtID int64, addresses []models.Address) error {
	for i, a := range addresses {
		_, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO court_addresses
				(court_id, address_type_id, address, address_cy, town_name, town_name_cy, postcode, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, courtID, a.TypeID, stringutil.JoinLines(a.AddressLines), stringutil.JoinLines(a.AddressLinesCy),
			a.Town, a.TownCy, a.Postcode, i)
		if err != nil {
			if postgres.IsCode(err, postgres.ForeignKeyViolation) {
				return fmt.Errorf("address type %d: %w", a.TypeID, sentinel.ErrNotFound)
			}
			return fmt.Errorf("insert address: %w", err)
		}
	}
	return nil
}

// UpdateLatLon sets a court's coordinates.
func (s *PostgresStore) UpdateLatLon(ctx context.Context, courtID int64, lat, lon float64) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE courts SET lat = $2, lon = $3, updated_at = now() WHERE id = $1`, courtID, lat, lon)
	if err != nil {
		return fmt.Errorf("update coordinates: %w", err)
	}
	return requireOneRow(res)
}

// AddressTypes returns all address types.
func (s *PostgresStore) AddressTypes(ctx context.Context) ([]models.AddressType, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT id, name, name_cy FROM address_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query address types: %w", err)
	}
	defer rows.Close()

	out := []models.AddressType{}
	for rows.Next() {
		var t models.AddressType
		if err := rows.Scan(&t.ID, &t.Name, &t.NameCy); err != nil {
			return nil, fmt.Errorf("scan address type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
