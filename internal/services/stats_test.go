package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/laundry-service/internal/models"
)

func statusTotals() []models.StatusTotals {
	return []models.StatusTotals{
		{Status: models.StatusPending, Count: 4, Amount: 300},
		{Status: models.StatusProcessing, Count: 2, Amount: 120.5},
		{Status: models.StatusDelivered, Count: 3, Amount: 410.1},
		{Status: models.StatusCancelled, Count: 1, Amount: 99},
	}
}

func TestGetStats(t *testing.T) {
	storage := &fakeStatsStorage{totals: statusTotals(), users: 7}
	service := NewStatsService(storage, nil, 0)

	stats, err := service.GetStats(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, models.Stats{
		TotalOrders:      10,
		TotalUsers:       7,
		TotalRevenue:     410.1,
		PendingOrders:    4,
		ProcessingOrders: 2,
		ReadyOrders:      0,
		DeliveredOrders:  3,
		CancelledOrders:  1,
	}, stats)
}

func TestGetStatsIsAdminOnly(t *testing.T) {
	storage := &fakeStatsStorage{}
	service := NewStatsService(storage, nil, 0)

	_, err := service.GetStats(context.Background(), customer)
	assert.ErrorIs(t, err, models.ErrAccessDenied)
	assert.Zero(t, storage.calls)
}

func TestGetStatsCache(t *testing.T) {
	storage := &fakeStatsStorage{totals: statusTotals(), users: 7}
	c := &fakeCache{values: map[string]string{}}
	service := NewStatsService(storage, c, time.Minute)
	ctx := context.Background()

	first, err := service.GetStats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, c.ttl)
	assert.Contains(t, c.values, "test:stats:dashboard")

	storage.totals = nil
	second, err := service.GetStats(ctx, admin)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, storage.calls)
}

func TestGetStatsCacheFailureFallsBackToStorage(t *testing.T) {
	storage := &fakeStatsStorage{totals: statusTotals(), users: 7}
	c := &fakeCache{values: map[string]string{"test:stats:dashboard": "{not json"}}
	service := NewStatsService(storage, c, time.Minute)

	stats, err := service.GetStats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalOrders)

	c.getErr = errors.New("redis down")
	stats, err = service.GetStats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalOrders)
	assert.Equal(t, 2, storage.calls)
}
