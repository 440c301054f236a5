// Package db abstracts the embedded database holding local drafts and
// connectivity state.
package db

import (
	"database/sql"

	"github.com/rs/zerolog"
)

type DB interface {
	// InitDB opens the database and creates the schema if it is missing.
	InitDB() error

	Get() *sql.DB
	Close() error

	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

var dbLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	dbLogger = l
}
