package estimator

import (
	"context"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/pkg/utils"
)

const DefaultAverageSpeedKmh = 60.0

// HaversineEstimator - оценка по дуге большого круга без внешних вызовов
type HaversineEstimator struct {
	speedKmh float64
}

func NewHaversineEstimator(speedKmh float64) *HaversineEstimator {
	if speedKmh <= 0 {
		speedKmh = DefaultAverageSpeedKmh
	}
	return &HaversineEstimator{speedKmh: speedKmh}
}

func (e *HaversineEstimator) Name() string {
	return StrategyHaversine
}

// Estimate суммирует отрезки между соседними точками
func (e *HaversineEstimator) Estimate(_ context.Context, points []domain.GeoPoint) (*domain.RouteMetrics, error) {
	if err := requireTwoPoints(points); err != nil {
		return nil, err
	}

	var total float64
	for i := 1; i < len(points); i++ {
		total += utils.HaversineDistance(points[i-1].Lat, points[i-1].Lng, points[i].Lat, points[i].Lng)
	}

	distance := utils.RoundTo(total, 1)
	return &domain.RouteMetrics{
		DistanceKm:    distance,
		DurationLabel: FormatApproxDuration(distance, e.speedKmh),
	}, nil
}
