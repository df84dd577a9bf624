package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrWong99/majordome/internal/correction"
)

// ---------------------------------------------------------------------------
// Test helpers: mock DB types
// ---------------------------------------------------------------------------

// mockRow implements pgx.Row for testing.
type mockRow struct {
	scanFunc func(dest ...any) error
}

func (r *mockRow) Scan(dest ...any) error { return r.scanFunc(dest...) }

// mockRows implements pgx.Rows for testing.
type mockRows struct {
	data   [][]any
	idx    int
	err    error
	closed bool
}

func (r *mockRows) Close()                                       { r.closed = true }
func (r *mockRows) Err() error                                   { return r.err }
func (r *mockRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *mockRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *mockRows) RawValues() [][]byte                          { return nil }
func (r *mockRows) Conn() *pgx.Conn                              { return nil }
func (r *mockRows) Values() ([]any, error)                       { return nil, nil }

func (r *mockRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *mockRows) Scan(dest ...any) error {
	row := r.data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: expected %d columns, got %d destinations", len(row), len(dest))
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		default:
			return fmt.Errorf("scan: unsupported type at index %d: %T", i, dest[i])
		}
	}
	return nil
}

// mockDB implements the DB interface for testing.
type mockDB struct {
	queryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
	queryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	execFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.queryRowFunc != nil {
		return m.queryRowFunc(ctx, sql, args...)
	}
	return &mockRow{scanFunc: func(dest ...any) error { return pgx.ErrNoRows }}
}

func (m *mockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, sql, args...)
	}
	return &mockRows{}, nil
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if m.execFunc != nil {
		return m.execFunc(ctx, sql, args...)
	}
	return pgconn.CommandTag{}, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestMigrateExecutesSchema(t *testing.T) {
	t.Parallel()

	var gotSQL string
	db := &mockDB{
		execFunc: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
			gotSQL = sql
			return pgconn.CommandTag{}, nil
		},
	}

	if err := New(db).Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	if !strings.Contains(gotSQL, "CREATE TABLE IF NOT EXISTS voice_corrections") {
		t.Errorf("Migrate() executed unexpected SQL: %q", gotSQL)
	}
}

func TestSnapshotReturnsRulesInOrder(t *testing.T) {
	t.Parallel()

	db := &mockDB{
		queryFunc: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			if !strings.Contains(sql, "ORDER BY created_at") {
				t.Errorf("Snapshot query not ordered by created_at: %q", sql)
			}
			return &mockRows{data: [][]any{
				{"crome", "chrome", "app"},
				{"gougueule", "google", "site"},
			}}, nil
		},
	}

	rules, err := New(db).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	want := []correction.Rule{
		{Wrong: "crome", Right: "chrome", Category: "app"},
		{Wrong: "gougueule", Right: "google", Category: "site"},
	}
	if len(rules) != len(want) {
		t.Fatalf("len(rules) = %d, want %d", len(rules), len(want))
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Errorf("rules[%d] = %+v, want %+v", i, rules[i], want[i])
		}
	}
}

func TestSnapshotPropagatesQueryError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")
	db := &mockDB{
		queryFunc: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, dbErr
		},
	}

	_, err := New(db).Snapshot(context.Background())
	if !errors.Is(err, dbErr) {
		t.Errorf("Snapshot() error = %v, want wrapped %v", err, dbErr)
	}
}

func TestRecordUpsertsAndReturnsHitCount(t *testing.T) {
	t.Parallel()

	db := &mockDB{
		queryRowFunc: func(_ context.Context, sql string, args ...any) pgx.Row {
			if !strings.Contains(sql, "ON CONFLICT (wrong) DO UPDATE") {
				t.Errorf("Record query is not an upsert: %q", sql)
			}
			if len(args) != 3 || args[0] != "spotifai" {
				t.Errorf("Record args = %v, want [spotifai spotify app]", args)
			}
			return &mockRow{scanFunc: func(dest ...any) error {
				*(dest[0].(*int)) = 4
				return nil
			}}
		},
	}

	hits, err := New(db).Record(context.Background(), "spotifai", "spotify", "app")
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if hits != 4 {
		t.Errorf("Record() hits = %d, want 4", hits)
	}
}

func TestRecordRejectsEmptyArguments(t *testing.T) {
	t.Parallel()

	s := New(&mockDB{})
	if _, err := s.Record(context.Background(), "", "chrome", "app"); err == nil {
		t.Error("Record() accepted an empty wrong form")
	}
	if _, err := s.Record(context.Background(), "crome", "", "app"); err == nil {
		t.Error("Record() accepted an empty correct form")
	}
}
