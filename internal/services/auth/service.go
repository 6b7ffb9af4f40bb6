package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"github.com/asvnatz/strafenkasse/internal/dependencies/clock"
	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/sessions"
)

// Service handles login and session management. The treasurer role is gated
// by a shared static access code checked by exact match; the player role
// needs no credential. This is a convenience gate for a club tool, not a
// security boundary.
type Service struct {
	store sessions.Store
	clock clock.Clock

	treasurerCode   string
	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	TreasurerCode   string
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TreasurerCode:   "1970",
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(store sessions.Store, clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	if cfg.TreasurerCode == "" {
		cfg.TreasurerCode = DefaultConfig().TreasurerCode
	}
	return &Service{
		store:           store,
		clock:           clock,
		treasurerCode:   cfg.TreasurerCode,
		sessionDuration: cfg.SessionDuration,
	}
}

// LoginPlayer creates a read-only player session. No credential is required.
func (s *Service) LoginPlayer(ctx context.Context) (*model.Session, error) {
	return s.createSession(ctx, model.RolePlayer)
}

// LoginTreasurer creates a treasurer session when the access code matches.
func (s *Service) LoginTreasurer(ctx context.Context, code string) (*model.Session, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.treasurerCode)) != 1 {
		return nil, model.ErrInvalidCode
	}
	return s.createSession(ctx, model.RoleTreasurer)
}

// GetSession validates a token and returns the session. The role is read
// from the store on every call; it is never cached across requests.
func (s *Service) GetSession(ctx context.Context, token string) (*model.Session, error) {
	session, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.clock.Now().After(session.ExpiresAt) {
		_ = s.store.Delete(ctx, token)
		return nil, model.ErrInvalidSession
	}
	return session, nil
}

// Logout removes a session
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

func (s *Service) createSession(ctx context.Context, role model.Role) (*model.Session, error) {
	now := s.clock.Now()
	session := &model.Session{
		Token:     generateToken(),
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
