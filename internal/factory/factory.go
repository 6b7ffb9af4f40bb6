package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/asvnatz/strafenkasse/internal/config"
	"github.com/asvnatz/strafenkasse/internal/dependencies/clock"
	"github.com/asvnatz/strafenkasse/internal/services/auth"
	"github.com/asvnatz/strafenkasse/internal/services/export"
	"github.com/asvnatz/strafenkasse/internal/services/ledger"
	"github.com/asvnatz/strafenkasse/internal/services/report"
	"github.com/asvnatz/strafenkasse/internal/sessions"
	"github.com/asvnatz/strafenkasse/internal/sessions/memory"
	redissessions "github.com/asvnatz/strafenkasse/internal/sessions/redis"
	"github.com/asvnatz/strafenkasse/internal/store"
)

// App contains all wired application components
type App struct {
	Config config.Config
	Logger *slog.Logger

	Store    *store.Store
	Sessions sessions.Store
	Clock    clock.Clock

	AuthService   *auth.Service
	LedgerService *ledger.Service
	ReportService *report.Service
	ExportService *export.Service
}

// New wires the application from config: opens the store, runs migrations and
// seeding, selects the session backend and builds the services on top.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	st, err := store.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := st.EnsureSchema(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := st.EnsureSeeded(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	var sessionStore sessions.Store
	switch cfg.Sessions {
	case config.SessionsMemory:
		sessionStore = memory.New()
	case config.SessionsRedis:
		sessionStore, err = redissessions.New(cfg.RedisURL)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
	default:
		_ = st.Close()
		return nil, fmt.Errorf("invalid session backend %q", cfg.Sessions)
	}

	clk := clock.New()
	return newWithDependencies(cfg, st, sessionStore, clk, logger), nil
}

// newWithDependencies builds the App from pre-made dependencies (useful for testing)
func newWithDependencies(cfg config.Config, st *store.Store, sessionStore sessions.Store, clk clock.Clock, logger *slog.Logger) *App {
	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    st,
		Sessions: sessionStore,
		Clock:    clk,
		AuthService: auth.New(sessionStore, clk, auth.Config{
			TreasurerCode:   cfg.TreasurerCode,
			SessionDuration: cfg.SessionTTL,
		}),
		LedgerService: ledger.New(st, logger),
		ReportService: report.New(st, clk),
		ExportService: export.New(st, clk),
	}
}

// Close releases the App's resources.
func (a *App) Close() error {
	type closer interface{ Close() error }
	if c, ok := a.Sessions.(closer); ok {
		_ = c.Close()
	}
	return a.Store.Close()
}
