package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asvnatz/strafenkasse/internal/model"
)

// Aggregation queries. Every aggregate joins penalty → penalty_type (and
// player where needed) and sums amount × quantity; an empty ledger reports
// zero, never NULL.

// Totals returns the grand entry count and owed sum, optionally limited to an
// inclusive date window when from/to are non-nil.
func (s *Store) Totals(ctx context.Context, from, to *time.Time) (model.Totals, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(pt.amount * p.quantity), 0)
		FROM penalty p
		JOIN penalty_type pt ON p.penalty_type_id = pt.id`
	conds, args := dateWindow(from, to)
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}

	var t model.Totals
	if err := s.queryRow(ctx, query, args...).Scan(&t.Count, &t.Total); err != nil {
		return model.Totals{}, fmt.Errorf("totals: %w", err)
	}
	return t, nil
}

// CountOnDate returns the number of entries with the given infraction date.
func (s *Store) CountOnDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := s.queryRow(ctx, `SELECT COUNT(*) FROM penalty WHERE date = ?`, date.Format(dateLayout)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count on date: %w", err)
	}
	return count, nil
}

// TopPlayers returns per-player owed totals in descending order, truncated to
// limit. Ties fall back to storage-native ordering.
func (s *Store) TopPlayers(ctx context.Context, from, to *time.Time, limit int) ([]model.LeaderboardRow, error) {
	query := `SELECT pl.name, SUM(pt.amount * p.quantity) AS total
		FROM player pl
		JOIN penalty p ON pl.id = p.player_id
		JOIN penalty_type pt ON p.penalty_type_id = pt.id`
	conds, args := dateWindow(from, to)
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` GROUP BY pl.id, pl.name ORDER BY total DESC LIMIT ?`
	args = append(args, limit)

	return s.queryLeaderboard(ctx, query, args...)
}

// TopTypes returns per-penalty-type owed totals in descending order.
func (s *Store) TopTypes(ctx context.Context, from, to *time.Time, limit int) ([]model.LeaderboardRow, error) {
	query := `SELECT pt.name, SUM(pt.amount * p.quantity) AS total
		FROM penalty_type pt
		JOIN penalty p ON pt.id = p.penalty_type_id`
	conds, args := dateWindow(from, to)
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` GROUP BY pt.id, pt.name ORDER BY total DESC LIMIT ?`
	args = append(args, limit)

	return s.queryLeaderboard(ctx, query, args...)
}

// DailyTotals returns per-date owed sums within the window in ascending date
// order, the shape the cumulative series is derived from.
func (s *Store) DailyTotals(ctx context.Context, from, to *time.Time) ([]model.DailyTotal, error) {
	query := `SELECT p.date, SUM(pt.amount * p.quantity)
		FROM penalty p
		JOIN penalty_type pt ON p.penalty_type_id = pt.id`
	conds, args := dateWindow(from, to)
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` GROUP BY p.date ORDER BY p.date ASC`

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()

	var totals []model.DailyTotal
	for rows.Next() {
		var (
			dt      model.DailyTotal
			dateStr string
		)
		if err := rows.Scan(&dateStr, &dt.Total); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		dt.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", dateStr, err)
		}
		totals = append(totals, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	return totals, nil
}

func (s *Store) queryLeaderboard(ctx context.Context, query string, args ...any) ([]model.LeaderboardRow, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	var board []model.LeaderboardRow
	for rows.Next() {
		var row model.LeaderboardRow
		if err := rows.Scan(&row.Name, &row.Total); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		board = append(board, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return board, nil
}

func dateWindow(from, to *time.Time) (conds []string, args []any) {
	if from != nil {
		conds = append(conds, `p.date >= ?`)
		args = append(args, from.Format(dateLayout))
	}
	if to != nil {
		conds = append(conds, `p.date <= ?`)
		args = append(args, to.Format(dateLayout))
	}
	return conds, args
}
