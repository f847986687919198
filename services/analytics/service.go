package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	analyticsRepo "seminarly/database/repository/analytics"
	seminarRepo "seminarly/database/repository/seminar"
	userRepo "seminarly/database/repository/user"
	"seminarly/models"
	"seminarly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
	Invalidate(ctx context.Context)
}

// DefaultAnalyticsService builds the dashboard summary and caches it in Redis.
// A nil Cache disables caching.
type DefaultAnalyticsService struct {
	Repo     analyticsRepo.AnalyticsRepository
	Users    userRepo.UserRepository
	Seminars seminarRepo.SeminarRepository
	Cache    *redis.Client
	TTL      time.Duration
}

func NewDefaultAnalyticsService(
	repo analyticsRepo.AnalyticsRepository,
	users userRepo.UserRepository,
	seminars seminarRepo.SeminarRepository,
	cache *redis.Client,
	ttl time.Duration,
) *DefaultAnalyticsService {
	return &DefaultAnalyticsService{Repo: repo, Users: users, Seminars: seminars, Cache: cache, TTL: ttl}
}

func (s *DefaultAnalyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	logger := utils.GetLogger()

	if cached, err := s.cached(ctx); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.Nil) && s.Cache != nil {
		logger.Warn("analytics cache read failed", zap.Error(err))
	}

	summary, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil && s.TTL > 0 {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.Cache.Set(ctx, utils.AnalyticsCacheKey, data, s.TTL).Err(); err != nil {
				logger.Warn("analytics cache write failed", zap.Error(err))
			}
		}
	}
	return summary, nil
}

// Invalidate drops the cached summary so the next read recomputes it.
func (s *DefaultAnalyticsService) Invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AnalyticsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("analytics cache invalidation failed", zap.Error(err))
	}
}

func (s *DefaultAnalyticsService) cached(ctx context.Context) (*models.AnalyticsSummary, error) {
	if s.Cache == nil {
		return nil, redis.Nil
	}
	data, err := s.Cache.Get(ctx, utils.AnalyticsCacheKey).Bytes()
	if err != nil {
		return nil, err
	}
	var summary models.AnalyticsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *DefaultAnalyticsService) compute(ctx context.Context) (*models.AnalyticsSummary, error) {
	byStatus, err := s.Repo.BookingsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	revenue, err := s.Repo.ConfirmedRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	perSeminar, err := s.Repo.PerSeminar(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate seminars: %w", err)
	}
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	seminars, err := s.Seminars.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count seminars: %w", err)
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &models.AnalyticsSummary{
		TotalUsers:       users,
		TotalSeminars:    seminars,
		TotalBookings:    total,
		BookingsByStatus: byStatus,
		ConfirmedRevenue: revenue,
		PerSeminar:       perSeminar,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}
