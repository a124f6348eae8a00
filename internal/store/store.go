// Package store keeps generated sample configs in SQLite so a renderer can
// pick up the latest one per API version.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"skyline-samplegen/internal/sampleconfig"
)

var ErrNotFound = errors.New("sample config not found")

// Record is one stored config.
type Record struct {
	ID         int64
	APIName    string
	APIVersion string
	Format     string
	Methods    int
	Body       []byte
	CreatedAt  time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS sample_configs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		api_name TEXT NOT NULL,
		api_version TEXT NOT NULL,
		format TEXT NOT NULL,
		methods INTEGER NOT NULL,
		body BLOB NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sample_configs_api ON sample_configs(api_name, api_version, id DESC);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores body, the encoding of cfg in format.
func (s *Store) Save(ctx context.Context, cfg *sampleconfig.SampleConfig, format string, body []byte) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO sample_configs (api_name, api_version, format, methods, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, cfg.APIName, cfg.APIVersion, format, len(cfg.Methods), body, time.Now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("insert sample config: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert sample config: %w", err)
	}
	return id, nil
}

// Latest returns the most recently saved config for the API version.
func (s *Store) Latest(ctx context.Context, apiName, apiVersion string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, api_name, api_version, format, methods, body, created_at
		FROM sample_configs
		WHERE api_name = ? AND api_version = ?
		ORDER BY id DESC
		LIMIT 1
	`, apiName, apiVersion)

	var (
		rec     Record
		created int64
	)
	err := row.Scan(&rec.ID, &rec.APIName, &rec.APIVersion, &rec.Format, &rec.Methods, &rec.Body, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, apiName, apiVersion)
	}
	if err != nil {
		return nil, fmt.Errorf("query sample config: %w", err)
	}
	rec.CreatedAt = time.Unix(0, created).UTC()
	return &rec, nil
}
