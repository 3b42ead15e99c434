package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-units/internal/units"
)

// Repository stores the last published unit catalog.
type Repository interface {
	// Load returns the stored snapshot in catalog order, or nil if none was
	// ever written.
	Load(ctx context.Context) ([]units.Ref, error)

	// Replace atomically swaps the stored snapshot for refs.
	Replace(ctx context.Context, refs []units.Ref) error
}

// SQLiteRepository implements Repository using the unit_catalog table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed catalog repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load returns the stored snapshot ordered by position.
func (r *SQLiteRepository) Load(ctx context.Context) ([]units.Ref, error) {
	const query = `SELECT category, name, symbol FROM unit_catalog ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying unit catalog: %w", err)
	}
	defer rows.Close()

	var refs []units.Ref
	for rows.Next() {
		var ref units.Ref
		var category string
		if err := rows.Scan(&category, &ref.Name, &ref.Symbol); err != nil {
			return nil, fmt.Errorf("scanning unit catalog row: %w", err)
		}
		ref.Category = units.Category(category)
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unit catalog: %w", err)
	}

	return refs, nil
}

// Replace deletes the stored snapshot and writes refs in one transaction.
func (r *SQLiteRepository) Replace(ctx context.Context, refs []units.Ref) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM unit_catalog`); err != nil {
		return fmt.Errorf("clearing unit catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO unit_catalog (category, name, symbol, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, ref := range refs {
		if _, err := stmt.ExecContext(ctx, string(ref.Category), ref.Name, ref.Symbol, i); err != nil {
			return fmt.Errorf("inserting %s.%s: %w", ref.Category, ref.Name, err)
		}
	}

	const meta = `INSERT INTO unit_catalog_meta (id, members, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET members = excluded.members, updated_at = excluded.updated_at`
	if _, err := tx.ExecContext(ctx, meta, len(refs), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("updating unit catalog meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing unit catalog: %w", err)
	}
	return nil
}

// UpdatedAt returns when the snapshot was last replaced. ok is false if no
// snapshot has been written.
func (r *SQLiteRepository) UpdatedAt(ctx context.Context) (t time.Time, ok bool, err error) {
	var raw string
	err = r.db.QueryRowContext(ctx, `SELECT updated_at FROM unit_catalog_meta WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading unit catalog meta: %w", err)
	}

	t, err = time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing unit catalog timestamp %q: %w", raw, err)
	}
	return t, true, nil
}
