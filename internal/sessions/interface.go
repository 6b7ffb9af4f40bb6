// Package sessions defines where login sessions live. Sessions are soft
// state: losing the backing store only forces a re-login.
package sessions

import (
	"context"

	"github.com/asvnatz/strafenkasse/internal/model"
)

// Store defines the interface for session persistence
type Store interface {
	Save(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}
