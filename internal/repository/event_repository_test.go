package repository

import (
	"context"
	"testing"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_SeedDefaults(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SeedDefaults(ctx))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 3)

	// seeding again must not duplicate
	require.NoError(t, repo.SeedDefaults(ctx))
	events, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestEventRepository_ListBetween(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.SeedDefaults(ctx))

	events, err := repo.ListBetween(ctx, 202001, 202012)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 202003, events[0].Period)
	assert.Equal(t, 202004, events[1].Period)

	none, err := repo.ListBetween(ctx, 201501, 201512)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepository_Create(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	event := &domain.Event{Period: 202307, Label: "Heat wave"}
	require.NoError(t, repo.Create(ctx, event))
	assert.NotZero(t, event.ID)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
