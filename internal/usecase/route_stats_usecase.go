package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
)

// RouteStatsUseCase обрабатывает бизнес-логику для статистики маршрутов
type RouteStatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewRouteStatsUseCase создает новый экземпляр RouteStatsUseCase
func NewRouteStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RouteStatsUseCase {
	return &RouteStatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStats возвращает статистику, используя кеш когда возможно
func (uc *RouteStatsUseCase) GetStats(ctx context.Context) (*domain.RouteStats, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetRouteStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Route stats fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get route stats from cache", zap.Error(err))
	}

	// 2. Получаем из БД и кешируем
	return uc.load(ctx)
}

// RefreshStats принудительно пересчитывает статистику
func (uc *RouteStatsUseCase) RefreshStats(ctx context.Context) (*domain.RouteStats, error) {
	uc.logger.Debug("Refreshing route stats")
	return uc.load(ctx)
}

func (uc *RouteStatsUseCase) load(ctx context.Context) (*domain.RouteStats, error) {
	stats, err := uc.statsRepo.GetRouteStats(ctx)
	if err != nil {
		uc.logger.Error("Failed to get route stats from db", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseError, err)
	}

	if err := uc.cacheRepo.SetRouteStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache route stats", zap.Error(err))
		// Не возвращаем ошибку, т.к. данные уже получены
	}

	return stats, nil
}
