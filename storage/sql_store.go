package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS kv_store (
	key   TEXT PRIMARY KEY,
	value BYTEA NOT NULL
)`
	getQuery = `SELECT value FROM kv_store WHERE key = $1`
	putQuery = `INSERT INTO kv_store (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
)

// SQLStore keeps values in a single postgres table.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore connects with the postgres driver and makes sure the table
// exists.
func OpenSQLStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s, err := NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open database.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(createTableQuery); err != nil {
		return nil, fmt.Errorf("create kv_store table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Put(key string, value []byte) error {
	if _, err := s.db.Exec(putQuery, key, value); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
