// Package sqlstore implements storage.Store over database/sql via sqlx.
// Queries use ? bindvars and are rebound per driver, so the same store runs
// against Postgres (pgx stdlib driver) in production and in-memory SQLite
// in tests.
package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/statustracker/probsync/internal/storage"
	"github.com/statustracker/probsync/internal/types"
)

// SQLStore implements storage.Store.
type SQLStore struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ storage.Store = (*SQLStore)(nil)

// New opens a database handle for the given driver and DSN. The caller owns
// the handle for the life of the run and must Close it on every exit path.
func New(driver, dsn string) (*SQLStore, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return NewFromDB(db), nil
}

// NewFromDB wraps an existing handle. Used by tests that open their own
// in-memory database.
func NewFromDB(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

// SetClock overrides the timestamp source. Test hook.
func (s *SQLStore) SetClock(now func() time.Time) {
	s.now = now
}

// Experts returns the roster ordered by id.
func (s *SQLStore) Experts(ctx context.Context) ([]types.Expert, error) {
	var experts []types.Expert
	if err := s.db.SelectContext(ctx, &experts, `SELECT id, name FROM experts ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to load experts: %w", err)
	}
	return experts, nil
}

// SourceCounts returns problem counts grouped by source tag.
func (s *SQLStore) SourceCounts(ctx context.Context) ([]types.SourceCount, error) {
	var counts []types.SourceCount
	query := `SELECT source, COUNT(*) AS count FROM problems GROUP BY source ORDER BY source`
	if err := s.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to count problems by source: %w", err)
	}
	return counts, nil
}

// BeginImport opens one import transaction.
func (s *SQLStore) BeginImport(ctx context.Context) (storage.Batch, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import batch: %w", err)
	}
	return &batch{tx: tx, now: s.now}, nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying handle. Provided for command-level helpers that
// need raw access; general code goes through storage.Store.
func (s *SQLStore) DB() *sqlx.DB {
	return s.db
}
