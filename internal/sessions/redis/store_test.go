package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/asvnatz/strafenkasse/internal/model"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewWithClient(client)
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *StoreSuite) newSession(token string) *model.Session {
	now := time.Now()
	return &model.Session{
		Token:     token,
		Role:      model.RoleTreasurer,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func (s *StoreSuite) TestSaveAndGetRoundTrip() {
	session := s.newSession("sess_abc")
	s.Require().NoError(s.store.Save(s.ctx, session))

	got, err := s.store.Get(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(session.Token, got.Token)
	s.Equal(model.RoleTreasurer, got.Role)
}

func (s *StoreSuite) TestGetUnknownTokenFails() {
	_, err := s.store.Get(s.ctx, "sess_missing")
	s.ErrorIs(err, model.ErrInvalidSession)
}

func (s *StoreSuite) TestDeleteRemovesSession() {
	session := s.newSession("sess_abc")
	s.Require().NoError(s.store.Save(s.ctx, session))
	s.Require().NoError(s.store.Delete(s.ctx, "sess_abc"))

	_, err := s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrInvalidSession)
}

func (s *StoreSuite) TestSaveNonPositiveLifetimeFails() {
	now := time.Now()
	session := &model.Session{
		Token:     "sess_zero",
		Role:      model.RolePlayer,
		CreatedAt: now,
		ExpiresAt: now,
	}
	s.Error(s.store.Save(s.ctx, session))

	_, err := s.store.Get(s.ctx, "sess_zero")
	s.ErrorIs(err, model.ErrInvalidSession)
}

func (s *StoreSuite) TestSaveTTLMatchesSessionLifetime() {
	session := s.newSession("sess_abc")
	s.Require().NoError(s.store.Save(s.ctx, session))

	s.mini.FastForward(30 * time.Minute)
	_, err := s.store.Get(s.ctx, "sess_abc")
	s.NoError(err)
}

func (s *StoreSuite) TestSessionExpiresWithTTL() {
	session := s.newSession("sess_abc")
	s.Require().NoError(s.store.Save(s.ctx, session))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrInvalidSession)
}
