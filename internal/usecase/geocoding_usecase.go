package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/utils"
)

// GeocodingUseCase - геокодирование с кешем в Redis
type GeocodingUseCase struct {
	geocodingRepo repository.GeocodingRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	cacheTTL      time.Duration
}

// NewGeocodingUseCase создает новый экземпляр GeocodingUseCase
func NewGeocodingUseCase(
	geocodingRepo repository.GeocodingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GeocodingUseCase {
	return &GeocodingUseCase{
		geocodingRepo: geocodingRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		cacheTTL:      cacheTTL,
	}
}

// Forward ищет адрес. Ошибки: ErrGeocodeNotFound, ErrGeocodingUnavailable.
func (uc *GeocodingUseCase) Forward(ctx context.Context, query string) (*domain.GeoPoint, error) {
	key := normalizeQuery(query)
	if key == "" {
		return nil, errors.ErrGeocodeNotFound
	}

	// 1. Проверяем кеш
	if cached, err := uc.cacheRepo.GetGeocode(ctx, key); err != nil {
		uc.logger.Warn("Failed to get geocode from cache", zap.String("query", key), zap.Error(err))
	} else if cached != nil {
		uc.logger.Debug("Geocode cache hit", zap.String("query", key))
		return cached, nil
	}

	// 2. Внешний сервис
	point, err := uc.geocodingRepo.Search(ctx, query)
	if err != nil {
		if !stderrors.Is(err, errors.ErrGeocodeNotFound) && !stderrors.Is(err, errors.ErrGeocodingUnavailable) {
			err = errors.ErrGeocodingUnavailable
		}
		return nil, err
	}

	// 3. Кешируем
	if err := uc.cacheRepo.SetGeocode(ctx, key, point, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode", zap.String("query", key), zap.Error(err))
	}

	return point, nil
}

// Reverse всегда возвращает подпись: адрес сервиса или "lat, lng" с 6 знаками
func (uc *GeocodingUseCase) Reverse(ctx context.Context, lat, lng float64) string {
	if cached, err := uc.cacheRepo.GetReverseGeocode(ctx, lat, lng); err != nil {
		uc.logger.Warn("Failed to get reverse geocode from cache", zap.Error(err))
	} else if cached != "" {
		return cached
	}

	address, err := uc.geocodingRepo.Reverse(ctx, lat, lng)
	if err != nil || strings.TrimSpace(address) == "" {
		uc.logger.Debug("Reverse geocode fell back to coordinates",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return utils.FormatCoordinates(lat, lng)
	}

	if err := uc.cacheRepo.SetReverseGeocode(ctx, lat, lng, address, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache reverse geocode", zap.Error(err))
	}

	return address
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
