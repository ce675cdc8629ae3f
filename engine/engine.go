package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database through the pure-Go driver, returning the
// database/sql handle the vector functions are served on. Pass a file path
// for a durable database, or ":memory:" for a throwaway one. Call
// RegisterVectorFunctions before Open so the connection sees the functions.
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }
