package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	abacuserrors "github.com/zhubert/abacus/internal/errors"
)

// DatabaseFile is the SQLite file created inside the data directory.
const DatabaseFile = "abacus.db"

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// SQLiteSlot keeps every slot as a row of a single table.
type SQLiteSlot struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteSlot opens (or creates) dir/abacus.db and initializes the schema.
func NewSQLiteSlot(dir string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, abacuserrors.E(abacuserrors.Op("storage.NewSQLiteSlot"), abacuserrors.KindIO, err, dir)
	}
	return openSQLite(filepath.Join(dir, DatabaseFile))
}

func openSQLite(dsn string) (*SQLiteSlot, error) {
	op := abacuserrors.Op("storage.NewSQLiteSlot")
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, abacuserrors.E(op, abacuserrors.KindStorage, fmt.Errorf("open database: %w", err))
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, abacuserrors.E(op, abacuserrors.KindStorage, fmt.Errorf("init schema: %w", err))
	}
	return &SQLiteSlot{db: db}, nil
}

func (s *SQLiteSlot) Get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data []byte
	err := s.db.QueryRow("SELECT data FROM slots WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, abacuserrors.SlotReadFailed(name, err)
	}
	return data, nil
}

func (s *SQLiteSlot) Put(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO slots (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, data, time.Now(),
	)
	if err != nil {
		return abacuserrors.SlotWriteFailed(name, err)
	}
	return nil
}

// UpdatedAt returns when a slot was last written, or the zero time if it
// never was.
func (s *SQLiteSlot) UpdatedAt(name string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var at time.Time
	err := s.db.QueryRow("SELECT updated_at FROM slots WHERE name = ?", name).Scan(&at)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, abacuserrors.SlotReadFailed(name, err)
	}
	return at, nil
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
