package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	path string
	conn *sql.DB
}

func NewSQLite(path string) *SQLite {
	return &SQLite{
		path: path,
		conn: nil,
	}
}

func (s *SQLite) InitDB() error {
	var err error
	s.conn, err = sql.Open("sqlite3", s.path)
	if err != nil {
		return err
	}

	// sqlite serializes writers anyway, and a pool of one keeps every
	// caller on the same database when path is ":memory:".
	s.conn.SetMaxOpenConns(1)

	// last_saved and last_checked are milliseconds since the Unix epoch.
	// Secondary indexes back the retention sweep and per-user listings.
	res, err := s.conn.Exec(`
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS drafts (
    id TEXT PRIMARY KEY,
    title TEXT,
    content BLOB,
    hero_image TEXT,
    category_id TEXT,
    excerpt TEXT,
    status TEXT,
    last_saved INTEGER NOT NULL,
    user_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_drafts_last_saved ON drafts(last_saved);
CREATE INDEX IF NOT EXISTS idx_drafts_user_id ON drafts(user_id);

CREATE TABLE IF NOT EXISTS connectivity (
    key TEXT PRIMARY KEY,
    online INTEGER NOT NULL,
    last_checked INTEGER NOT NULL
);`)

	dbLogger.Info().Any("db_result", res).Str("path", s.path).Msg("Database initialized")
	return err
}

func (s *SQLite) Get() *sql.DB {
	return s.conn
}

func (s *SQLite) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *SQLite) Query(query string, args ...interface{}) (*sql.Rows, error) {
	dbLogger.Debug().Str("query", query).Msg("Query")
	return s.conn.Query(query, args...)
}

func (s *SQLite) QueryRow(query string, args ...interface{}) *sql.Row {
	dbLogger.Debug().Str("query", query).Msg("QueryRow")
	return s.conn.QueryRow(query, args...)
}

func (s *SQLite) Exec(query string, args ...interface{}) (sql.Result, error) {
	dbLogger.Debug().Str("query", query).Msg("Exec")
	return s.conn.Exec(query, args...)
}
