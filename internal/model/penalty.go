package model

import "time"

// PenaltyType is a catalog entry defining a fixed per-occurrence amount.
// An amount of zero marks an in-kind penalty (e.g. "buy a case of drinks").
type PenaltyType struct {
	ID          int64
	Name        string
	Amount      float64
	Description string
}

// PenaltyEntry is a ledger row joined with its player and type for display
// and export: the columns of the filtered ledger listing.
type PenaltyEntry struct {
	ID          int64
	Date        time.Time
	PlayerName  string
	PenaltyName string
	Quantity    int
	Amount      float64
	Total       float64
	Notes       string
}

// PenaltyFilter narrows a ledger listing. Each field is independently
// omittable; zero values mean "no filter".
type PenaltyFilter struct {
	PlayerID int64
	DateFrom *time.Time
	DateTo   *time.Time
}
