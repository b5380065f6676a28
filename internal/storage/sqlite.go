// Package storage provides SQLite-based persistence for level packs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	// ErrPackNotFound is returned when no pack has the requested name.
	ErrPackNotFound = errors.New("storage: level pack not found")
	// ErrInvalidPack is returned for a pack without a name or without levels.
	ErrInvalidPack = errors.New("storage: invalid level pack")
)

// Store manages the SQLite database connection for level packs.
type Store struct {
	db *sql.DB
}

// Pack describes a stored, named list of level definitions.
type Pack struct {
	ID        uuid.UUID
	Name      string
	Source    string // Where the levels were imported from, e.g. a file path
	Levels    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS packs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS levels (
			pack_id TEXT NOT NULL REFERENCES packs(id),
			position INTEGER NOT NULL,
			definition TEXT NOT NULL,
			PRIMARY KEY (pack_id, position)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportPack stores defs under name, replacing any pack with the same name.
// The replacement is atomic.
func (s *Store) ImportPack(name, source string, defs []string) (Pack, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Pack{}, fmt.Errorf("%w: empty name", ErrInvalidPack)
	}
	if len(defs) == 0 {
		return Pack{}, fmt.Errorf("%w: %q has no levels", ErrInvalidPack, name)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Pack{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := deletePack(tx, name); err != nil && !errors.Is(err, ErrPackNotFound) {
		return Pack{}, err
	}

	pack := Pack{ID: uuid.New(), Name: name, Source: source, Levels: len(defs)}
	if _, err := tx.Exec(
		"INSERT INTO packs (id, name, source) VALUES (?, ?, ?)",
		pack.ID.String(), pack.Name, pack.Source,
	); err != nil {
		return Pack{}, fmt.Errorf("storage: cannot save pack: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO levels (pack_id, position, definition) VALUES (?, ?, ?)")
	if err != nil {
		return Pack{}, fmt.Errorf("storage: cannot prepare level insert: %w", err)
	}
	defer stmt.Close()

	for i, def := range defs {
		if _, err := stmt.Exec(pack.ID.String(), i, def); err != nil {
			return Pack{}, fmt.Errorf("storage: cannot save level %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Pack{}, fmt.Errorf("storage: cannot commit pack: %w", err)
	}

	// Read back for the stored timestamp.
	return s.Pack(name)
}

// Pack returns the metadata of the named pack.
func (s *Store) Pack(name string) (Pack, error) {
	row := s.db.QueryRow(
		`SELECT p.id, p.name, p.source, p.created_at, COUNT(l.position)
		 FROM packs p LEFT JOIN levels l ON l.pack_id = p.id
		 WHERE p.name = ?
		 GROUP BY p.id`,
		name,
	)

	p, err := scanPack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Pack{}, fmt.Errorf("%w: %q", ErrPackNotFound, name)
	}
	if err != nil {
		return Pack{}, fmt.Errorf("storage: cannot query pack: %w", err)
	}
	return p, nil
}

// Packs lists all stored packs ordered by name.
func (s *Store) Packs() ([]Pack, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.name, p.source, p.created_at, COUNT(l.position)
		 FROM packs p LEFT JOIN levels l ON l.pack_id = p.id
		 GROUP BY p.id
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []Pack
	for rows.Next() {
		p, err := scanPack(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		packs = append(packs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return packs, nil
}

// PackLevels returns the level definitions of the named pack in order.
func (s *Store) PackLevels(name string) ([]string, error) {
	pack, err := s.Pack(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT definition FROM levels WHERE pack_id = ? ORDER BY position",
		pack.ID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	defs := make([]string, 0, pack.Levels)
	for rows.Next() {
		var def string
		if err := rows.Scan(&def); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return defs, nil
}

// DeletePack removes the named pack and its levels.
func (s *Store) DeletePack(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := deletePack(tx, name); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

func deletePack(tx *sql.Tx, name string) error {
	var id string
	err := tx.QueryRow("SELECT id FROM packs WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrPackNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query pack: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM levels WHERE pack_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete levels: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM packs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete pack: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPack(row rowScanner) (Pack, error) {
	var (
		p         Pack
		id        string
		createdAt any
	)
	if err := row.Scan(&id, &p.Name, &p.Source, &createdAt, &p.Levels); err != nil {
		return Pack{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Pack{}, fmt.Errorf("storage: bad pack id %q: %w", id, err)
	}
	p.ID = parsed
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
