package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asvnatz/strafenkasse/internal/config"
	"github.com/asvnatz/strafenkasse/internal/dependencies/mocks"
	"github.com/asvnatz/strafenkasse/internal/sessions/memory"
	"github.com/asvnatz/strafenkasse/internal/store"
	"github.com/asvnatz/strafenkasse/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time in tests
	MockClock *mocks.MockClock
}

// NewTestApp wires an App against a temporary SQLite file and in-memory
// sessions, with a mocked clock. Schema is applied but the ledger starts
// empty; call SeedReferenceData when a test needs the stock players and
// penalty types.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	cfg := config.Config{
		Driver:        config.DriverSQLite,
		DSN:           filepath.Join(t.TempDir(), "strafenkasse-test.db"),
		TreasurerCode: "1970",
		SessionTTL:    24 * time.Hour,
		Sessions:      config.SessionsMemory,
	}
	logger := testutil.NopLogger()

	st, err := store.Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.EnsureSchema(context.Background()))

	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	app := newWithDependencies(cfg, st, memory.New(), mockClock, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// SeedReferenceData loads the stock players and penalty types.
func (t *TestApp) SeedReferenceData(ctx context.Context) error {
	return t.Store.EnsureSeeded(ctx)
}
