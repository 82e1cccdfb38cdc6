package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	"github.com/johnquangdev/meeting-workspace/internal/infrastructure/cache"
)

const sessionKeyPrefix = "workspace:session:"

// SessionRepository stores workspaces as JSON documents in a cache.Store
type SessionRepository struct {
	store cache.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store cache.Store) *SessionRepository {
	return &SessionRepository{
		store: store,
	}
}

// FindByID finds a workspace by session ID
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*entities.Workspace, error) {
	raw, ok, err := r.store.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to find session by ID: %w", err)
	}
	if !ok {
		return nil, entities.ErrSessionNotFound
	}

	var w entities.Workspace
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &w, nil
}

// Save stores the workspace and refreshes its expiration
func (r *SessionRepository) Save(ctx context.Context, w *entities.Workspace, ttl time.Duration) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", w.ID, err)
	}
	if err := r.store.Set(ctx, sessionKey(w.ID), string(raw), ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a workspace
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
