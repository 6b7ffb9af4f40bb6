package report

import (
	"context"
	"fmt"
	"time"

	"github.com/asvnatz/strafenkasse/internal/dependencies/clock"
	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/store"
)

const (
	dashboardRecentLimit      = 10
	dashboardLeaderboardLimit = 10
	dashboardSeriesDays       = 30

	statisticsLeaderboardLimit = 15
)

// Service derives the dashboard and statistics views from the ledger. It only
// reads, so it takes no role argument.
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

// Dashboard builds the landing-page report: all-time totals, today's entry
// count, the most recent entries, the player leaderboard and a cumulative
// series over the last 30 days.
func (s *Service) Dashboard(ctx context.Context) (model.DashboardReport, error) {
	totals, err := s.store.Totals(ctx, nil, nil)
	if err != nil {
		return model.DashboardReport{}, fmt.Errorf("dashboard totals: %w", err)
	}

	today := s.clock.Now()
	todayCount, err := s.store.CountOnDate(ctx, today)
	if err != nil {
		return model.DashboardReport{}, fmt.Errorf("dashboard today count: %w", err)
	}

	recent, err := s.store.RecentPenalties(ctx, dashboardRecentLimit)
	if err != nil {
		return model.DashboardReport{}, fmt.Errorf("dashboard recent entries: %w", err)
	}

	topPlayers, err := s.store.TopPlayers(ctx, nil, nil, dashboardLeaderboardLimit)
	if err != nil {
		return model.DashboardReport{}, fmt.Errorf("dashboard leaderboard: %w", err)
	}

	from := today.AddDate(0, 0, -dashboardSeriesDays)
	series, err := s.store.DailyTotals(ctx, &from, &today)
	if err != nil {
		return model.DashboardReport{}, fmt.Errorf("dashboard series: %w", err)
	}

	return model.DashboardReport{
		Totals:          totals,
		TodayCount:      todayCount,
		AveragePerEntry: averagePerEntry(totals),
		Recent:          recent,
		TopPlayers:      topPlayers,
		Series:          accumulate(series),
	}, nil
}

// Statistics builds the report for an inclusive date window.
func (s *Service) Statistics(ctx context.Context, from, to time.Time) (model.StatisticsReport, error) {
	totals, err := s.store.Totals(ctx, &from, &to)
	if err != nil {
		return model.StatisticsReport{}, fmt.Errorf("statistics totals: %w", err)
	}

	topPlayers, err := s.store.TopPlayers(ctx, &from, &to, statisticsLeaderboardLimit)
	if err != nil {
		return model.StatisticsReport{}, fmt.Errorf("statistics player leaderboard: %w", err)
	}

	topTypes, err := s.store.TopTypes(ctx, &from, &to, statisticsLeaderboardLimit)
	if err != nil {
		return model.StatisticsReport{}, fmt.Errorf("statistics type leaderboard: %w", err)
	}

	series, err := s.store.DailyTotals(ctx, &from, &to)
	if err != nil {
		return model.StatisticsReport{}, fmt.Errorf("statistics series: %w", err)
	}

	return model.StatisticsReport{
		From:            from,
		To:              to,
		Totals:          totals,
		AveragePerEntry: averagePerEntry(totals),
		AveragePerDay:   totals.Total / float64(daySpan(from, to)),
		TopPlayers:      topPlayers,
		TopTypes:        topTypes,
		Series:          accumulate(series),
	}, nil
}

func averagePerEntry(t model.Totals) float64 {
	if t.Count == 0 {
		return 0
	}
	return t.Total / float64(t.Count)
}

// daySpan counts the days in the inclusive window, at least 1 so the
// per-day average never divides by zero.
func daySpan(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	span := int(toDay.Sub(fromDay).Hours()/24) + 1
	if span < 1 {
		return 1
	}
	return span
}

// accumulate fills in the running total over an ascending daily series.
func accumulate(series []model.DailyTotal) []model.DailyTotal {
	var running float64
	for i := range series {
		running += series[i].Total
		series[i].Cumulative = running
	}
	return series
}
