package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/turtle3d-xyz/go-turtle3d/export"
	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
)

// SQLiteStore persists skeletons in a SQLite database. Use ":memory:"
// as the path for an ephemeral database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite-backed store at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS skeletons (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			strands    INTEGER NOT NULL,
			points     INTEGER NOT NULL,
			props      INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL,
			data       BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_skeletons_created
			ON skeletons(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Save persists a skeleton under a fresh ID.
func (s *SQLiteStore) Save(ctx context.Context, name string, skel *skeleton.Skeleton) (Meta, error) {
	data, err := export.EncodeCBOR(skel)
	if err != nil {
		return Meta{}, err
	}
	meta := metaFor(uuid.NewString(), name, skel)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO skeletons (id, name, strands, points, props, created_at, data)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.Name, meta.Strands, meta.Points, meta.Props, meta.CreatedAt, data)
	if err != nil {
		return Meta{}, fmt.Errorf("inserting skeleton: %w", err)
	}
	return meta, nil
}

// Load retrieves a skeleton by ID.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*skeleton.Skeleton, Meta, error) {
	var meta Meta
	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, strands, points, props, created_at, data
		FROM skeletons WHERE id = ?`, id).
		Scan(&meta.ID, &meta.Name, &meta.Strands, &meta.Points, &meta.Props, &meta.CreatedAt, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Meta{}, ErrNotFound
	}
	if err != nil {
		return nil, Meta{}, fmt.Errorf("querying skeleton: %w", err)
	}
	skel, err := export.DecodeCBOR(data)
	if err != nil {
		return nil, Meta{}, err
	}
	return skel, meta, nil
}

// List returns all catalog entries, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]Meta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, strands, points, props, created_at
		FROM skeletons ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing skeletons: %w", err)
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var meta Meta
		if err := rows.Scan(&meta.ID, &meta.Name, &meta.Strands, &meta.Points, &meta.Props, &meta.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// Delete removes a skeleton by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM skeletons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting skeleton: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
