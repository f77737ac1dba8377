package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/cache"
	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/pricing"
)

const DefaultStatsCacheTTL = 30 * time.Second

type statsStorage interface {
	FindStatusTotals(ctx context.Context) ([]models.StatusTotals, error)
	CountUsers(ctx context.Context) (int64, error)
}

// StatsService aggregates the admin dashboard figures. When a cache is set
// the figures may be up to ttl old.
type StatsService struct {
	storage statsStorage
	cache   cache.Cache
	ttl     time.Duration
}

func NewStatsService(storage statsStorage, c cache.Cache, ttl time.Duration) *StatsService {
	if ttl <= 0 {
		ttl = DefaultStatsCacheTTL
	}
	return &StatsService{storage: storage, cache: c, ttl: ttl}
}

func (s *StatsService) GetStats(ctx context.Context, actor *models.User) (models.Stats, error) {
	if !actor.IsAdmin() {
		return models.Stats{}, models.ErrAccessDenied
	}

	key := ""
	if s.cache != nil {
		key = s.cache.GenerateKey("stats", "dashboard")
		if stats, ok := s.cached(ctx, key); ok {
			return stats, nil
		}
	}

	stats, err := s.aggregate(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	if s.cache != nil {
		s.store(ctx, key, stats)
	}

	return stats, nil
}

func (s *StatsService) aggregate(ctx context.Context) (models.Stats, error) {
	totals, err := s.storage.FindStatusTotals(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	users, err := s.storage.CountUsers(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count users: %w", err)
	}

	stats := models.Stats{TotalUsers: users}
	for _, t := range totals {
		stats.TotalOrders += t.Count

		switch t.Status {
		case models.StatusPending:
			stats.PendingOrders += t.Count
		case models.StatusProcessing:
			stats.ProcessingOrders += t.Count
		case models.StatusReady:
			stats.ReadyOrders += t.Count
		case models.StatusDelivered:
			stats.DeliveredOrders += t.Count
			stats.TotalRevenue += t.Amount
		case models.StatusCancelled:
			stats.CancelledOrders += t.Count
		}
	}
	stats.TotalRevenue = pricing.RoundMoney(stats.TotalRevenue)

	return stats, nil
}

// Cache failures only cost a trip to the database.
func (s *StatsService) cached(ctx context.Context, key string) (models.Stats, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Log.Warn("failed to read stats cache", zap.Error(err))
		return models.Stats{}, false
	}

	if raw == "" {
		return models.Stats{}, false
	}

	var stats models.Stats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		logger.Log.Warn("failed to decode cached stats", zap.Error(err))
		return models.Stats{}, false
	}

	return stats, true
}

func (s *StatsService) store(ctx context.Context, key string, stats models.Stats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		logger.Log.Warn("failed to encode stats", zap.Error(err))
		return
	}

	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		logger.Log.Warn("failed to write stats cache", zap.Error(err))
	}
}
