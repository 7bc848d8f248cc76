// Package sqlitestore keeps the active-round slot as a row in a SQLite table.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// DefaultFileName is the database created under the data home.
const DefaultFileName = "forecounter.sqlite"

const schema = `CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store persists one named slot in SQLite.
type Store struct {
	sqlDB *sql.DB
	path  string
	name  string
	now   func() time.Time
}

type Option func(*Store)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens a SQLite database at path and ensures the slots table exists.
func Open(path, name string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.OpError{
			Op:   "sqlitestore.open",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("storage path is required: %w", domain.ErrInvalidConfig),
		}
	}
	if strings.TrimSpace(name) == "" {
		name = domain.ActiveRoundSlot
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, openErr(cleanPath, fmt.Errorf("open sqlite db: %w", err))
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, openErr(cleanPath, fmt.Errorf("ping sqlite db: %w", err))
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, openErr(cleanPath, fmt.Errorf("create slots table: %w", err))
	}

	s := &Store{
		sqlDB: sqlDB,
		path:  cleanPath,
		name:  name,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var _ ports.Slot = (*Store)(nil)

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Read() ([]byte, error) {
	var payload []byte
	err := s.sqlDB.QueryRow(`SELECT payload FROM slots WHERE name = ?`, s.name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.OpError{
				Op:   "sqlitestore.read",
				Kind: domain.KindNotFound,
				Path: s.path,
				Err:  domain.ErrNotFound,
			}
		}
		return nil, s.opErr("sqlitestore.read", err)
	}
	return payload, nil
}

func (s *Store) Write(payload []byte) error {
	if payload == nil {
		payload = []byte{}
	}
	_, err := s.sqlDB.Exec(
		`INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.name,
		payload,
		s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return s.opErr("sqlitestore.write", err)
	}
	return nil
}

func (s *Store) Delete() error {
	if _, err := s.sqlDB.Exec(`DELETE FROM slots WHERE name = ?`, s.name); err != nil {
		return s.opErr("sqlitestore.delete", err)
	}
	return nil
}

// UpdatedAt reports when the slot was last written.
func (s *Store) UpdatedAt() (time.Time, bool) {
	var ms int64
	err := s.sqlDB.QueryRow(`SELECT updated_at FROM slots WHERE name = ?`, s.name).Scan(&ms)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

func (s *Store) opErr(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindStorage,
		Path: s.path,
		Err:  err,
	}
}

func openErr(path string, err error) error {
	return &domain.OpError{
		Op:   "sqlitestore.open",
		Kind: domain.KindStorage,
		Path: path,
		Err:  err,
	}
}
