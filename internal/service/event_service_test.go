package service

import (
	"context"
	"testing"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_SeedAndList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(repository.NewEventRepository(db))

	require.NoError(t, svc.Seed(context.Background()))

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, len(domain.DefaultEvents()))

	// ordered by period
	for i := 1; i < len(events); i++ {
		assert.LessOrEqual(t, events[i-1].Period, events[i].Period)
	}

	// seeding again does not duplicate
	require.NoError(t, svc.Seed(context.Background()))
	events, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, len(domain.DefaultEvents()))
}
