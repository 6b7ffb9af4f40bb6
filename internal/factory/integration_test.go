package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asvnatz/strafenkasse/internal/config"
	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/testutil"
)

// Wires the real factory path end to end: open, migrate, seed, then run a
// treasurer flow through the services.
func TestFactoryWiresWorkingApp(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		Driver:        config.DriverSQLite,
		DSN:           filepath.Join(t.TempDir(), "integration.db"),
		TreasurerCode: "1970",
		SessionTTL:    time.Hour,
		Sessions:      config.SessionsMemory,
	}

	app, err := New(ctx, cfg, testutil.NopLogger())
	require.NoError(t, err)
	defer app.Close()

	// Seed data is present after wiring.
	players, err := app.LedgerService.Players(ctx)
	require.NoError(t, err)
	require.Len(t, players, 28)
	types, err := app.LedgerService.PenaltyTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 50)

	// Treasurer login and a recorded entry flow through to the dashboard.
	session, err := app.AuthService.LoginTreasurer(ctx, "1970")
	require.NoError(t, err)
	require.Equal(t, model.RoleTreasurer, session.Role)

	date := time.Now().UTC()
	_, err = app.LedgerService.RecordPenalty(ctx, session.Role, date, players[0].ID, types[0].ID, 1, "")
	require.NoError(t, err)

	dashboard, err := app.ReportService.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, dashboard.Totals.Count)
}

func TestFactoryRejectsUnknownSessionBackend(t *testing.T) {
	cfg := config.Config{
		Driver:   config.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "bad.db"),
		Sessions: "etcd",
	}
	_, err := New(context.Background(), cfg, testutil.NopLogger())
	require.Error(t, err)
}
