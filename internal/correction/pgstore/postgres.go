// Package pgstore persists learned voice corrections in PostgreSQL.
//
// The table is append-mostly: a correction is recorded once and its
// hit_count incremented on every reuse. The resolver never writes here;
// new corrections enter through [Store.Record] when user feedback confirms
// a mis-transcription.
package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrWong99/majordome/internal/correction"
)

// Schema is the SQL DDL for the voice_corrections table. Execute it via
// [Store.Migrate] or apply it manually during deployment.
const Schema = `
CREATE TABLE IF NOT EXISTS voice_corrections (
    wrong      TEXT PRIMARY KEY,
    correct    TEXT NOT NULL,
    category   TEXT NOT NULL DEFAULT '',
    hit_count  INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_voice_corrections_category ON voice_corrections(category);
`

// DB is the database interface used by [Store]. Both *pgxpool.Pool and
// *pgx.Conn satisfy this interface.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store persists learned correction rules in PostgreSQL.
type Store struct {
	db DB
}

// New creates a [Store] using the given database connection or pool. The
// caller is responsible for calling [Store.Migrate] before issuing queries.
func New(db DB) *Store {
	return &Store{db: db}
}

// Migrate executes the [Schema] DDL, creating the voice_corrections table
// and index if they do not already exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("pgstore: migrate: %w", err)
	}
	return nil
}

// Snapshot loads every learned rule ordered by first insertion, oldest
// first, so dictionary iteration order stays stable across restarts.
func (s *Store) Snapshot(ctx context.Context) ([]correction.Rule, error) {
	const query = `
		SELECT wrong, correct, category
		FROM voice_corrections
		ORDER BY created_at, wrong`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgstore: snapshot: %w", err)
	}
	defer rows.Close()

	var rules []correction.Rule
	for rows.Next() {
		var r correction.Rule
		if err := rows.Scan(&r.Wrong, &r.Right, &r.Category); err != nil {
			return nil, fmt.Errorf("pgstore: snapshot scan: %w", err)
		}
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: snapshot: %w", err)
	}
	return rules, nil
}

// Record stores a learned correction. Recording an already-known wrong form
// updates its canonical form and increments hit_count. The new hit count is
// returned.
func (s *Store) Record(ctx context.Context, wrong, correct, category string) (int, error) {
	if wrong == "" || correct == "" {
		return 0, fmt.Errorf("pgstore: record: wrong and correct must not be empty")
	}

	const query = `
		INSERT INTO voice_corrections (wrong, correct, category)
		VALUES ($1, $2, $3)
		ON CONFLICT (wrong) DO UPDATE SET
			correct = EXCLUDED.correct,
			category = EXCLUDED.category,
			hit_count = voice_corrections.hit_count + 1,
			updated_at = now()
		RETURNING hit_count`

	var hits int
	if err := s.db.QueryRow(ctx, query, wrong, correct, category).Scan(&hits); err != nil {
		return 0, fmt.Errorf("pgstore: record %q: %w", wrong, err)
	}
	return hits, nil
}

// Delete removes a learned correction. Deleting an unknown wrong form is
// not an error.
func (s *Store) Delete(ctx context.Context, wrong string) error {
	const query = `DELETE FROM voice_corrections WHERE wrong = $1`
	if _, err := s.db.Exec(ctx, query, wrong); err != nil {
		return fmt.Errorf("pgstore: delete %q: %w", wrong, err)
	}
	return nil
}
