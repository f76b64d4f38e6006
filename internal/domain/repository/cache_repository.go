package repository

import (
	"context"
	"time"

	"github.com/tourism-route-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах кеша - (nil, nil).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetGeocode получает результат прямого геокодирования
	GetGeocode(ctx context.Context, query string) (*domain.GeoPoint, error)

	// SetGeocode сохраняет результат прямого геокодирования
	SetGeocode(ctx context.Context, query string, point *domain.GeoPoint, ttl time.Duration) error

	// GetReverseGeocode получает адрес для координат. Промах - "".
	GetReverseGeocode(ctx context.Context, lat, lng float64) (string, error)

	// SetReverseGeocode сохраняет адрес для координат
	SetReverseGeocode(ctx context.Context, lat, lng float64, address string, ttl time.Duration) error

	// GetRouteStats получает статистику маршрутов из кеша
	GetRouteStats(ctx context.Context) (*domain.RouteStats, error)

	// SetRouteStats сохраняет статистику маршрутов в кеше
	SetRouteStats(ctx context.Context, stats *domain.RouteStats, ttl time.Duration) error

	// InvalidateRouteStats удаляет статистику из кеша
	InvalidateRouteStats(ctx context.Context) error
}
