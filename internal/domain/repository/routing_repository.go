package repository

import (
	"context"

	"github.com/tourism-route-service/internal/domain"
)

// RouteLeg - итог маршрута от движка маршрутизации
type RouteLeg struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// RoutingRepository - внешний движок маршрутизации
type RoutingRepository interface {
	// Route строит маршрут через упорядоченные точки (минимум две).
	// ErrRoutingUnavailable при сбое или отсутствии маршрутов.
	Route(ctx context.Context, points []domain.GeoPoint) (*RouteLeg, error)
}
