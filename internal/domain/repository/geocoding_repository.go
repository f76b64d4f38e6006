package repository

import (
	"context"

	"github.com/tourism-route-service/internal/domain"
)

// GeocodingRepository - внешний сервис геокодирования
type GeocodingRepository interface {
	// Search возвращает первый результат поиска по адресу.
	// ErrGeocodeNotFound при пустом ответе, ErrGeocodingUnavailable при сбое.
	Search(ctx context.Context, query string) (*domain.GeoPoint, error)

	// Reverse возвращает адрес для координат.
	// ErrGeocodingUnavailable при любом сбое или пустом адресе.
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}
