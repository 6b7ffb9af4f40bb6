// Package store persists the penalty ledger and its reference data in a
// relational database: SQLite for local use, Postgres via configuration.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/asvnatz/strafenkasse/internal/config"
)

// Store wraps the SQL database handle. All queries are written with `?`
// placeholders and rebound for Postgres.
type Store struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

// Open connects to the configured database and verifies the connection.
// The schema is not touched; call EnsureSchema and EnsureSeeded once at
// process init.
func Open(cfg config.Config, logger *slog.Logger) (*Store, error) {
	var driverName, dsn string

	switch cfg.Driver {
	case config.DriverSQLite:
		driverName = "sqlite"
		dsn = filepath.Clean(cfg.DSN) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	case config.DriverPostgres:
		driverName = "pgx"
		dsn = cfg.DSN
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", cfg.Driver, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		// The modernc driver is not safe for concurrent writers on one
		// connection; a single pooled connection sidesteps SQLITE_BUSY.
		db.SetMaxOpenConns(1)

		if err := ensureForeignKeysEnabled(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{db: db, driver: cfg.Driver, logger: logger}, nil
}

// ensureForeignKeysEnabled verifies the foreign_keys pragma took effect. The
// driver applies DSN pragmas per connection; a typo in the DSN would fail
// silently and leave referential integrity unenforced.
func ensureForeignKeysEnabled(db *sql.DB) error {
	var enabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("check foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("foreign_keys pragma is not enabled")
	}
	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// rebind rewrites `?` placeholders to `$1..$n` for Postgres. Queries in this
// package never contain a literal question mark.
func (s *Store) rebind(query string) string {
	if s.driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.rebind(query), args...)
}

// dateLayout is the canonical calendar-date format. Dates are stored as text
// so that range filters compare lexicographically in both engines.
const dateLayout = "2006-01-02"
