package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
)

// SessionRepository stores one workspace per browser session
type SessionRepository interface {
	// FindByID returns entities.ErrSessionNotFound when the session is unknown or expired
	FindByID(ctx context.Context, id string) (*entities.Workspace, error)

	// Save stores the workspace and refreshes its expiration
	Save(ctx context.Context, w *entities.Workspace, ttl time.Duration) error

	// Delete removes the workspace
	Delete(ctx context.Context, id string) error
}
