//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fact/internal/audit"
	"fact/internal/audit/store"
	"fact/pkg/platform/sentinel"
	"fact/pkg/platform/tx"
	"fact/pkg/testutil/containers"
)

type PostgresAuditSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	tx       *tx.SQLManager
	ctx      context.Context
}

func TestPostgresAuditSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresAuditSuite))
}

func (s *PostgresAuditSuite) SetupSuite() {
	s.ctx = context.Background()
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.Require().NoError(s.postgres.ApplySchemaFile(s.ctx, "../../court/store/testdata/schema.sql"))
	s.store = store.NewPostgres(s.postgres.DB)
	s.tx = tx.NewSQLManager(s.postgres.DB)
}

func (s *PostgresAuditSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "audits"))
}

func (s *PostgresAuditSuite) append(location, email string, at time.Time) {
	s.Require().NoError(s.store.Append(s.ctx, audit.Entry{
		UserEmail:  email,
		ChangeType: audit.ChangeUpdateCourtDetails,
		Before:     []byte(`{"alert":""}`),
		After:      []byte(`{"alert":"Closed"}`),
		Location:   location,
		CreatedAt:  at,
	}))
}

func (s *PostgresAuditSuite) TestTypeByName() {
	t, err := s.store.TypeByName(s.ctx, audit.ChangeUpdateAddresses)
	s.Require().NoError(err)
	s.Equal(4, t.ID)

	_, err = s.store.TypeByName(s.ctx, "Rename the moon")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresAuditSuite) TestListFilters() {
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	s.append("leeds-crown-court", "alice@justice.gov.uk", base)
	s.append("york_crown_court", "bob@justice.gov.uk", base.Add(time.Hour))
	s.append("leeds-magistrates", "Alice@Justice.gov.uk", base.Add(2*time.Hour))

	entries, total, err := s.store.List(s.ctx, audit.Query{Size: 10, Email: "ALICE"})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Equal("leeds-magistrates", entries[0].Location)
	s.JSONEq(`{"alert":"Closed"}`, string(entries[0].After))
	s.Equal(audit.ChangeUpdateCourtDetails, entries[0].ChangeType)

	from, to := base.Add(time.Hour), base.Add(2*time.Hour)
	entries, total, err = s.store.List(s.ctx, audit.Query{Size: 10, From: &from, To: &to})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(entries, 2)

	_, total, err = s.store.List(s.ctx, audit.Query{Size: 10, Location: "_"})
	s.Require().NoError(err)
	s.Equal(1, total, "underscore is literal")

	entries, total, err = s.store.List(s.ctx, audit.Query{Size: 1, Page: 2})
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Require().Len(entries, 1)
	s.Equal("leeds-crown-court", entries[0].Location)
}

func (s *PostgresAuditSuite) TestAppendJoinsTransaction() {
	err := s.tx.RunInTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.store.Append(ctx, audit.Entry{
			UserEmail:  "alice@justice.gov.uk",
			ChangeType: audit.ChangeDeleteCourt,
			Before:     []byte(`{}`),
			CreatedAt:  time.Now(),
		}))
		return sentinel.ErrConflict
	})
	s.ErrorIs(err, sentinel.ErrConflict)

	_, total, err := s.store.List(s.ctx, audit.Query{Size: 10})
	s.Require().NoError(err)
	s.Zero(total)
}
