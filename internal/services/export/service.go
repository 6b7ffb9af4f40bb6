package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/asvnatz/strafenkasse/internal/dependencies/clock"
	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/store"
)

var header = []string{"date", "player", "penalty_type", "quantity", "amount", "total", "notes"}

// Service writes the full ledger as a semicolon-delimited CSV download.
// Export is a treasurer-only operation.
type Service struct {
	store *store.Store
	clock clock.Clock
}

func New(store *store.Store, clock clock.Clock) *Service {
	return &Service{
		store: store,
		clock: clock,
	}
}

// Filename returns the download name stamped with the current date.
func (s *Service) Filename() string {
	return fmt.Sprintf("strafen_export_%s.csv", s.clock.Now().Format("20060102"))
}

// WriteCSV streams every ledger entry to w in date-descending order, one
// header row first.
func (s *Service) WriteCSV(ctx context.Context, role model.Role, w io.Writer) error {
	if role != model.RoleTreasurer {
		return model.ErrPermissionDenied
	}

	entries, err := s.store.ListPenalties(ctx, model.PenaltyFilter{})
	if err != nil {
		return fmt.Errorf("export listing: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.Date.Format("2006-01-02"),
			e.PlayerName,
			e.PenaltyName,
			strconv.Itoa(e.Quantity),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			strconv.FormatFloat(e.Total, 'f', 2, 64),
			e.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export flush: %w", err)
	}
	return nil
}
