package memory

import (
	"context"
	"sync"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/sessions"
)

// Store is an in-memory implementation of the session store
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// New creates a new in-memory session store
func New() *Store {
	return &Store{
		sessions: make(map[string]*model.Session),
	}
}

// Ensure Store implements the interface
var _ sessions.Store = (*Store)(nil)

func (s *Store) Save(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *Store) Get(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrInvalidSession
	}
	// Expiry is enforced by the auth service, which owns the clock.
	return session, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
