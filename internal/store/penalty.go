package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asvnatz/strafenkasse/internal/model"
)

// entryColumns are the joined columns of the ledger listing, shared by
// ListPenalties, RecentPenalties and the CSV export.
const entryColumns = `p.id, p.date, pl.name, pt.name, p.quantity, pt.amount,
	(pt.amount * p.quantity), p.notes
	FROM penalty p
	JOIN player pl ON p.player_id = pl.id
	JOIN penalty_type pt ON p.penalty_type_id = pt.id`

// CreatePenalty records one infraction and returns the ledger entry id.
// The foreign keys guarantee a dangling reference is never created.
func (s *Store) CreatePenalty(ctx context.Context, date time.Time, playerID, typeID int64, quantity int, notes string) (int64, error) {
	var id int64
	err := s.queryRow(ctx,
		`INSERT INTO penalty (date, player_id, penalty_type_id, quantity, notes)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		date.Format(dateLayout), playerID, typeID, quantity, notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create penalty: %w", err)
	}
	return id, nil
}

// DeletePenalty removes one ledger entry. Deleting an entry that no longer
// exists is a no-op: two treasurers deleting the same entry concurrently must
// not produce an error.
func (s *Store) DeletePenalty(ctx context.Context, id int64) error {
	if _, err := s.exec(ctx, `DELETE FROM penalty WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete penalty: %w", err)
	}
	return nil
}

// ListPenalties returns ledger entries matching the filter, newest infraction
// date first. Every filter field is independently omittable.
func (s *Store) ListPenalties(ctx context.Context, filter model.PenaltyFilter) ([]model.PenaltyEntry, error) {
	var (
		conds []string
		args  []any
	)
	if filter.PlayerID != 0 {
		conds = append(conds, `p.player_id = ?`)
		args = append(args, filter.PlayerID)
	}
	if filter.DateFrom != nil {
		conds = append(conds, `p.date >= ?`)
		args = append(args, filter.DateFrom.Format(dateLayout))
	}
	if filter.DateTo != nil {
		conds = append(conds, `p.date <= ?`)
		args = append(args, filter.DateTo.Format(dateLayout))
	}

	query := `SELECT ` + entryColumns
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY p.date DESC`

	return s.queryEntries(ctx, query, args...)
}

// RecentPenalties returns the most recently recorded entries, newest first.
func (s *Store) RecentPenalties(ctx context.Context, limit int) ([]model.PenaltyEntry, error) {
	query := `SELECT ` + entryColumns + ` ORDER BY p.created_at DESC, p.id DESC LIMIT ?`
	return s.queryEntries(ctx, query, limit)
}

func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]model.PenaltyEntry, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list penalties: %w", err)
	}
	defer rows.Close()

	var entries []model.PenaltyEntry
	for rows.Next() {
		var (
			e       model.PenaltyEntry
			dateStr string
		)
		if err := rows.Scan(&e.ID, &dateStr, &e.PlayerName, &e.PenaltyName, &e.Quantity, &e.Amount, &e.Total, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan penalty: %w", err)
		}
		e.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse penalty date %q: %w", dateStr, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list penalties: %w", err)
	}
	return entries, nil
}
