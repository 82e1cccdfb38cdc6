package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	"github.com/johnquangdev/meeting-workspace/internal/infrastructure/cache"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	defer store.Close()
	repo := NewSessionRepository(store)

	w := entities.NewWorkspace("abc")
	w.SelectFile(entities.UploadedFile{Name: "meeting.mp3", ObjectKey: "uploads/abc/1"})
	w.AddActionItem("Fix pipeline", "Dana, Eve", "2024-07-01")
	require.NoError(t, repo.Save(ctx, w, time.Hour))

	got, err := repo.FindByID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, w.File.Name, got.File.Name)
	assert.Equal(t, w.Result.ActionItems, got.Result.ActionItems)
	assert.Equal(t, w.NextID, got.NextID)
	assert.Equal(t, w.Generation, got.Generation)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestSessionRepository_Missing(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close()

	_, err := NewSessionRepository(store).FindByID(context.Background(), "nope")

	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}
