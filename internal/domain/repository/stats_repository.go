package repository

import (
	"context"

	"github.com/tourism-route-service/internal/domain"
)

// StatsRepository интерфейс для агрегированной статистики маршрутов
type StatsRepository interface {
	// GetRouteStats считает статистику по всем маршрутам
	GetRouteStats(ctx context.Context) (*domain.RouteStats, error)
}
