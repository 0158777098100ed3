// Package sqlite is the desktop storage backend: a single database file
// holding both the imported catalog and the reconciliation records, for
// warehouses that run the service offline.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Storage owns the SQLite database handle.
type Storage struct {
	db   *sql.DB
	path string
}

// Open opens (and creates if needed) the database file and bootstraps the
// schema, so the desktop variant is self-contained on first run.
func Open(ctx context.Context, path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: path kosong")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	// SQLite does not benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping database: %w", err)
	}

	s := &Storage{db: db, path: path}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database handle.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ensureSchema(ctx context.Context) error {
	// Quantities are stored as text and parsed into decimals on read, so
	// variance arithmetic never goes through floats.
	const ddl = `
	CREATE TABLE IF NOT EXISTS tb_barang (
		kode       TEXT NOT NULL,
		nama       TEXT NOT NULL,
		stok       TEXT NOT NULL,
		satuan     TEXT NOT NULL,
		departemen TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tb_barang_kode ON tb_barang(kode);

	CREATE TABLE IF NOT EXISTS stok_opname (
		id          TEXT PRIMARY KEY,
		kode_opname TEXT NOT NULL,
		kode        TEXT NOT NULL,
		nama        TEXT NOT NULL,
		stok_awal   TEXT NOT NULL,
		stok_real   TEXT NOT NULL,
		selisih     TEXT NOT NULL,
		status      TEXT NOT NULL,
		jenis       TEXT NOT NULL,
		departemen  TEXT NOT NULL,
		tanggal     TEXT NOT NULL
	);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("sqlite: bootstrap schema: %w", err)
	}
	return nil
}
