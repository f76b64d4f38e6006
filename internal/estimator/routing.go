package estimator

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/utils"
)

// RoutingEstimator берет метрики у внешнего движка маршрутизации
type RoutingEstimator struct {
	routingRepo repository.RoutingRepository
	logger      *zap.Logger
}

func NewRoutingEstimator(routingRepo repository.RoutingRepository, logger *zap.Logger) *RoutingEstimator {
	return &RoutingEstimator{
		routingRepo: routingRepo,
		logger:      logger,
	}
}

func (e *RoutingEstimator) Name() string {
	return StrategyRouting
}

// Estimate возвращает ErrRoutingUnavailable при сбое движка
func (e *RoutingEstimator) Estimate(ctx context.Context, points []domain.GeoPoint) (*domain.RouteMetrics, error) {
	if err := requireTwoPoints(points); err != nil {
		return nil, err
	}

	leg, err := e.routingRepo.Route(ctx, points)
	if err != nil {
		e.logger.Warn("Routing estimate failed", zap.Int("points", len(points)), zap.Error(err))
		return nil, err
	}

	return &domain.RouteMetrics{
		DistanceKm:    utils.RoundTo(leg.DistanceMeters/1000, 2),
		DurationLabel: FormatTravelTime(leg.DurationSeconds),
	}, nil
}
