package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/asvnatz/strafenkasse/internal/config"
	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/store"
	"github.com/asvnatz/strafenkasse/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store    *store.Store
	service  *Service
	ctx      context.Context
	playerID int64
	typeID   int64
	date     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	cfg := config.Config{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(s.T().TempDir(), "ledger-test.db"),
	}
	st, err := store.Open(cfg, testutil.NopLogger())
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = st.Close() })

	s.ctx = context.Background()
	s.Require().NoError(st.EnsureSchema(s.ctx))

	s.store = st
	s.service = New(st, testutil.NopLogger())

	s.playerID, err = st.CreatePlayer(s.ctx, "Test Spieler")
	s.Require().NoError(err)
	s.typeID, err = st.CreatePenaltyType(s.ctx, "Zu spät", 5, "")
	s.Require().NoError(err)
	s.date = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
}

// Authorization gate

func (s *ServiceSuite) TestPlayerRoleCannotRecordPenalty() {
	_, err := s.service.RecordPenalty(s.ctx, model.RolePlayer, s.date, s.playerID, s.typeID, 1, "")
	s.ErrorIs(err, model.ErrPermissionDenied)

	entries, err := s.service.Penalties(s.ctx, model.PenaltyFilter{})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ServiceSuite) TestPlayerRoleCannotDeletePenalty() {
	id, err := s.service.RecordPenalty(s.ctx, model.RoleTreasurer, s.date, s.playerID, s.typeID, 1, "")
	s.Require().NoError(err)

	s.ErrorIs(s.service.DeletePenalty(s.ctx, model.RolePlayer, id), model.ErrPermissionDenied)

	// The entry is untouched.
	entries, err := s.service.Penalties(s.ctx, model.PenaltyFilter{})
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *ServiceSuite) TestPlayerRoleCannotManageReferenceData() {
	_, err := s.service.AddPlayer(s.ctx, model.RolePlayer, "Neuer Spieler")
	s.ErrorIs(err, model.ErrPermissionDenied)

	s.ErrorIs(s.service.RemovePlayer(s.ctx, model.RolePlayer, s.playerID), model.ErrPermissionDenied)

	_, err = s.service.AddPenaltyType(s.ctx, model.RolePlayer, "Eigentor", 0, "Kasten")
	s.ErrorIs(err, model.ErrPermissionDenied)

	err = s.service.UpdatePenaltyType(s.ctx, model.RolePlayer, model.PenaltyType{ID: s.typeID, Name: "x"})
	s.ErrorIs(err, model.ErrPermissionDenied)
}

func (s *ServiceSuite) TestAnyRoleMayRead() {
	_, err := s.service.RecordPenalty(s.ctx, model.RoleTreasurer, s.date, s.playerID, s.typeID, 2, "")
	s.Require().NoError(err)

	entries, err := s.service.Penalties(s.ctx, model.PenaltyFilter{})
	s.Require().NoError(err)
	s.Len(entries, 1)

	players, err := s.service.Players(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)

	types, err := s.service.PenaltyTypes(s.ctx)
	s.Require().NoError(err)
	s.Len(types, 1)
}

// Validation

func (s *ServiceSuite) TestRecordPenaltyRejectsZeroQuantity() {
	_, err := s.service.RecordPenalty(s.ctx, model.RoleTreasurer, s.date, s.playerID, s.typeID, 0, "")
	s.ErrorIs(err, model.ErrInvalidQuantity)
}

func (s *ServiceSuite) TestRecordPenaltyRejectsUnknownPlayer() {
	_, err := s.service.RecordPenalty(s.ctx, model.RoleTreasurer, s.date, 404, s.typeID, 1, "")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestRecordPenaltyRejectsUnknownType() {
	_, err := s.service.RecordPenalty(s.ctx, model.RoleTreasurer, s.date, s.playerID, 404, 1, "")
	s.ErrorIs(err, model.ErrPenaltyTypeNotFound)
}

func (s *ServiceSuite) TestAddPlayerRejectsBlankName() {
	_, err := s.service.AddPlayer(s.ctx, model.RoleTreasurer, "   ")
	s.ErrorIs(err, model.ErrEmptyName)
}

func (s *ServiceSuite) TestAddPenaltyTypeRejectsNegativeAmount() {
	_, err := s.service.AddPenaltyType(s.ctx, model.RoleTreasurer, "Komisch", -1, "")
	s.ErrorIs(err, model.ErrInvalidAmount)
}

func (s *ServiceSuite) TestAddPenaltyTypeAllowsZeroAmount() {
	_, err := s.service.AddPenaltyType(s.ctx, model.RoleTreasurer, "Eigentor", 0, "Kasten (ansonsten 20€)")
	s.NoError(err)
}

func (s *ServiceSuite) TestAddPlayerDuplicateName() {
	_, err := s.service.AddPlayer(s.ctx, model.RoleTreasurer, "Test Spieler")
	s.ErrorIs(err, model.ErrAlreadyExists)
}

// Treasurer flows

func (s *ServiceSuite) TestTreasurerRecordsAndDeletes() {
	id, err := s.service.RecordPenalty(s.ctx, model.RoleTreasurer, s.date, s.playerID, s.typeID, 2, "Training")
	s.Require().NoError(err)
	s.Positive(id)

	s.Require().NoError(s.service.DeletePenalty(s.ctx, model.RoleTreasurer, id))

	entries, err := s.service.Penalties(s.ctx, model.PenaltyFilter{})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ServiceSuite) TestRemovePlayerDropsTheirEntries() {
	_, err := s.service.RecordPenalty(s.ctx, model.RoleTreasurer, s.date, s.playerID, s.typeID, 1, "")
	s.Require().NoError(err)

	s.Require().NoError(s.service.RemovePlayer(s.ctx, model.RoleTreasurer, s.playerID))

	entries, err := s.service.Penalties(s.ctx, model.PenaltyFilter{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Empty(entries)
}
