// Package estimator вычисляет дистанцию и длительность маршрута.
// Две стратегии: движок маршрутизации (OSRM) и локальная оценка по haversine.
package estimator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/config"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
)

const (
	StrategyRouting   = "routing"
	StrategyHaversine = "haversine"
)

// Estimator - стратегия расчета метрик по упорядоченным точкам
type Estimator interface {
	Estimate(ctx context.Context, points []domain.GeoPoint) (*domain.RouteMetrics, error)
	Name() string
}

// New выбирает стратегию по cfg.Strategy
func New(cfg *config.EstimatorConfig, routingRepo repository.RoutingRepository, logger *zap.Logger) (Estimator, error) {
	switch cfg.Strategy {
	case "", StrategyRouting:
		if routingRepo == nil {
			return nil, fmt.Errorf("routing strategy requires a routing repository")
		}
		logger.Info("Using routing estimator")
		return NewRoutingEstimator(routingRepo, logger), nil
	case StrategyHaversine:
		logger.Info("Using haversine estimator", zap.Float64("average_speed_kmh", cfg.AverageSpeedKmh))
		return NewHaversineEstimator(cfg.AverageSpeedKmh), nil
	default:
		return nil, fmt.Errorf("unknown estimator strategy %q", cfg.Strategy)
	}
}

func requireTwoPoints(points []domain.GeoPoint) error {
	if len(points) < 2 {
		return errors.NewValidationError(errors.ReasonInsufficientWaypoints)
	}
	for _, p := range points {
		if !p.Valid() {
			return errors.NewValidationError(errors.ReasonInvalidCoordinates)
		}
	}
	return nil
}
