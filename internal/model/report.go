package model

import "time"

// Totals is a count/sum pair over a set of ledger entries.
type Totals struct {
	Count int
	Total float64
}

// LeaderboardRow is one line of a per-player or per-type leaderboard.
type LeaderboardRow struct {
	Name  string
	Total float64
}

// DailyTotal is the summed owed amount of one calendar date. Cumulative
// carries the running total up to and including that date.
type DailyTotal struct {
	Date       time.Time
	Total      float64
	Cumulative float64
}

// DashboardReport backs the dashboard page.
type DashboardReport struct {
	Totals          Totals
	TodayCount      int
	AveragePerEntry float64
	Recent          []PenaltyEntry
	TopPlayers      []LeaderboardRow
	Series          []DailyTotal
}

// StatisticsReport backs the statistics page for a date window.
type StatisticsReport struct {
	From, To        time.Time
	Totals          Totals
	AveragePerEntry float64
	AveragePerDay   float64
	TopPlayers      []LeaderboardRow
	TopTypes        []LeaderboardRow
	Series          []DailyTotal
}
