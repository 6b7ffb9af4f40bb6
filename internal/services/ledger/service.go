// Package ledger mediates every read and write of the penalty ledger and its
// reference data. It is the single place the treasurer-only rule is enforced:
// mutations check the caller's role before touching the store.
package ledger

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/store"
)

// Service gates mutations on the treasurer role and validates input
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates a new ledger Service
func New(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// requireTreasurer refuses any caller that does not hold the treasurer role.
// The role is re-evaluated on every invocation.
func requireTreasurer(role model.Role) error {
	if role != model.RoleTreasurer {
		return model.ErrPermissionDenied
	}
	return nil
}

// RecordPenalty creates a ledger entry and returns its id. Treasurer only.
func (s *Service) RecordPenalty(ctx context.Context, role model.Role, date time.Time, playerID, typeID int64, quantity int, notes string) (int64, error) {
	if err := requireTreasurer(role); err != nil {
		return 0, err
	}
	if quantity < 1 {
		return 0, model.ErrInvalidQuantity
	}
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		return 0, err
	}
	if _, err := s.store.GetPenaltyType(ctx, typeID); err != nil {
		return 0, err
	}

	id, err := s.store.CreatePenalty(ctx, date, playerID, typeID, quantity, strings.TrimSpace(notes))
	if err != nil {
		return 0, err
	}

	s.logger.Info("penalty recorded",
		slog.Int64("penalty_id", id),
		slog.Int64("player_id", playerID),
		slog.Int64("penalty_type_id", typeID),
		slog.Int("quantity", quantity),
	)
	return id, nil
}

// DeletePenalty removes one ledger entry. Treasurer only. Deleting an entry
// someone else already removed is a no-op.
func (s *Service) DeletePenalty(ctx context.Context, role model.Role, id int64) error {
	if err := requireTreasurer(role); err != nil {
		return err
	}
	if err := s.store.DeletePenalty(ctx, id); err != nil {
		return err
	}
	s.logger.Info("penalty deleted", slog.Int64("penalty_id", id))
	return nil
}

// Penalties lists ledger entries matching the filter. Any role may read.
func (s *Service) Penalties(ctx context.Context, filter model.PenaltyFilter) ([]model.PenaltyEntry, error) {
	return s.store.ListPenalties(ctx, filter)
}

// AddPlayer creates a roster member. Treasurer only.
func (s *Service) AddPlayer(ctx context.Context, role model.Role, name string) (int64, error) {
	if err := requireTreasurer(role); err != nil {
		return 0, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, model.ErrEmptyName
	}

	id, err := s.store.CreatePlayer(ctx, name)
	if err != nil {
		return 0, err
	}
	s.logger.Info("player added", slog.Int64("player_id", id), slog.String("name", name))
	return id, nil
}

// RemovePlayer deletes a roster member and all their penalties. Treasurer only.
func (s *Service) RemovePlayer(ctx context.Context, role model.Role, id int64) error {
	if err := requireTreasurer(role); err != nil {
		return err
	}
	if err := s.store.DeletePlayer(ctx, id); err != nil {
		return err
	}
	s.logger.Info("player removed", slog.Int64("player_id", id))
	return nil
}

// Players lists the roster. Any role may read.
func (s *Service) Players(ctx context.Context) ([]model.Player, error) {
	return s.store.ListPlayers(ctx)
}

// AddPenaltyType creates a catalog entry. Treasurer only. A zero amount marks
// an in-kind penalty.
func (s *Service) AddPenaltyType(ctx context.Context, role model.Role, name string, amount float64, description string) (int64, error) {
	if err := requireTreasurer(role); err != nil {
		return 0, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, model.ErrEmptyName
	}
	if amount < 0 {
		return 0, model.ErrInvalidAmount
	}

	id, err := s.store.CreatePenaltyType(ctx, name, amount, strings.TrimSpace(description))
	if err != nil {
		return 0, err
	}
	s.logger.Info("penalty type added", slog.Int64("penalty_type_id", id), slog.String("name", name))
	return id, nil
}

// UpdatePenaltyType edits a catalog entry. Treasurer only.
func (s *Service) UpdatePenaltyType(ctx context.Context, role model.Role, pt model.PenaltyType) error {
	if err := requireTreasurer(role); err != nil {
		return err
	}
	pt.Name = strings.TrimSpace(pt.Name)
	if pt.Name == "" {
		return model.ErrEmptyName
	}
	if pt.Amount < 0 {
		return model.ErrInvalidAmount
	}

	if err := s.store.UpdatePenaltyType(ctx, pt); err != nil {
		return err
	}
	s.logger.Info("penalty type updated", slog.Int64("penalty_type_id", pt.ID))
	return nil
}

// PenaltyTypes lists the catalog. Any role may read.
func (s *Service) PenaltyTypes(ctx context.Context) ([]model.PenaltyType, error) {
	return s.store.ListPenaltyTypes(ctx)
}
