package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asvnatz/strafenkasse/internal/model"
)

// CreatePenaltyType inserts a catalog entry and returns its id.
// A duplicate name yields model.ErrAlreadyExists.
func (s *Store) CreatePenaltyType(ctx context.Context, name string, amount float64, description string) (int64, error) {
	var id int64
	err := s.queryRow(ctx,
		`INSERT INTO penalty_type (name, amount, description) VALUES (?, ?, ?) RETURNING id`,
		name, amount, description,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("create penalty type: %w", err)
	}
	return id, nil
}

// UpdatePenaltyType overwrites a catalog entry's name, amount and description.
func (s *Store) UpdatePenaltyType(ctx context.Context, pt model.PenaltyType) error {
	res, err := s.exec(ctx,
		`UPDATE penalty_type SET name = ?, amount = ?, description = ? WHERE id = ?`,
		pt.Name, pt.Amount, pt.Description, pt.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("update penalty type: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update penalty type: %w", err)
	}
	if affected == 0 {
		return model.ErrPenaltyTypeNotFound
	}
	return nil
}

// GetPenaltyType fetches one catalog entry by id.
func (s *Store) GetPenaltyType(ctx context.Context, id int64) (*model.PenaltyType, error) {
	var pt model.PenaltyType
	err := s.queryRow(ctx,
		`SELECT id, name, amount, description FROM penalty_type WHERE id = ?`, id,
	).Scan(&pt.ID, &pt.Name, &pt.Amount, &pt.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPenaltyTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get penalty type: %w", err)
	}
	return &pt, nil
}

// ListPenaltyTypes returns the catalog ordered by name.
func (s *Store) ListPenaltyTypes(ctx context.Context) ([]model.PenaltyType, error) {
	rows, err := s.query(ctx, `SELECT id, name, amount, description FROM penalty_type ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list penalty types: %w", err)
	}
	defer rows.Close()

	var types []model.PenaltyType
	for rows.Next() {
		var pt model.PenaltyType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Amount, &pt.Description); err != nil {
			return nil, fmt.Errorf("scan penalty type: %w", err)
		}
		types = append(types, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list penalty types: %w", err)
	}
	return types, nil
}
