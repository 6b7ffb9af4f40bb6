package store

import (
	"context"
	"fmt"

	"github.com/asvnatz/strafenkasse/internal/config"
)

// sqliteSchema and postgresSchema create the three tables. Statements are
// idempotent and safe to run on every start.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS player (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS penalty_type (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL UNIQUE,
		amount      REAL NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS penalty (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		date            TEXT NOT NULL,
		player_id       INTEGER NOT NULL REFERENCES player(id),
		penalty_type_id INTEGER NOT NULL REFERENCES penalty_type(id),
		quantity        INTEGER NOT NULL DEFAULT 1,
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_penalty_player ON penalty(player_id)`,
	`CREATE INDEX IF NOT EXISTS idx_penalty_date ON penalty(date)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS player (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS penalty_type (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		amount      DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS penalty (
		id              BIGSERIAL PRIMARY KEY,
		date            TEXT NOT NULL,
		player_id       BIGINT NOT NULL REFERENCES player(id),
		penalty_type_id BIGINT NOT NULL REFERENCES penalty_type(id),
		quantity        INTEGER NOT NULL DEFAULT 1,
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_penalty_player ON penalty(player_id)`,
	`CREATE INDEX IF NOT EXISTS idx_penalty_date ON penalty(date)`,
}

// EnsureSchema creates the three tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema := sqliteSchema
	if s.driver == config.DriverPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
