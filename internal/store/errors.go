package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// pgUniqueViolation is the Postgres SQLSTATE for unique constraint errors.
const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// in either engine. Callers map it to model.ErrAlreadyExists so the UI can
// show a specific "already exists" message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
