package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asvnatz/strafenkasse/internal/model"
)

// CreatePlayer inserts a roster member and returns their id.
// A duplicate name yields model.ErrAlreadyExists.
func (s *Store) CreatePlayer(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.queryRow(ctx, `INSERT INTO player (name) VALUES (?) RETURNING id`, name).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("create player: %w", err)
	}
	return id, nil
}

// GetPlayer fetches one roster member by id.
func (s *Store) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	var p model.Player
	err := s.queryRow(ctx, `SELECT id, name FROM player WHERE id = ?`, id).Scan(&p.ID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	return &p, nil
}

// ListPlayers returns the roster ordered by name.
func (s *Store) ListPlayers(ctx context.Context) ([]model.Player, error) {
	rows, err := s.query(ctx, `SELECT id, name FROM player ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// DeletePlayer removes a roster member together with every penalty charged
// against them. Both deletes run in one transaction so a failure cannot leave
// orphaned entries or a half-removed player.
func (s *Store) DeletePlayer(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete player: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM penalty WHERE player_id = ?`), id); err != nil {
		return fmt.Errorf("delete player penalties: %w", err)
	}

	res, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM player WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if affected == 0 {
		return model.ErrPlayerNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete player: commit: %w", err)
	}
	return nil
}
