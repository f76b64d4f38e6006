package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tourism-route-service/internal/domain"
)

// RouteRepository - хранилище маршрутов
type RouteRepository interface {
	// Create сохраняет новый маршрут целиком, включая точки
	Create(ctx context.Context, route *domain.Route) error

	// Update перезаписывает маршрут. Владелец и createdAt не меняются.
	// Возвращает errors.ErrRouteNotFound, если маршрута нет.
	Update(ctx context.Context, route *domain.Route) error

	// GetByID возвращает маршрут или errors.ErrRouteNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Route, error)

	// List возвращает маршруты по фильтру, новые первыми
	List(ctx context.Context, filter domain.RouteFilter) ([]*domain.Route, error)

	// ListByOwner возвращает маршруты владельца, новые первыми
	ListByOwner(ctx context.Context, owner domain.OwnerRef) ([]*domain.Route, error)

	// Delete удаляет маршрут. Возвращает false, если маршрута не было.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
