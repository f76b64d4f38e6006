package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	forwardGeocodePrefix = "geocode:fwd:"
	reverseGeocodePrefix = "geocode:rev:"
	routeStatsKey        = "stats:routes"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// forwardKey - ключ прямого геокодирования, запрос нормализован
func forwardKey(query string) string {
	return forwardGeocodePrefix + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

func reverseKey(lat, lng float64) string {
	return fmt.Sprintf("%s%.6f,%.6f", reverseGeocodePrefix, lat, lng)
}

func (r *cacheRepository) GetGeocode(ctx context.Context, query string) (*domain.GeoPoint, error) {
	var point domain.GeoPoint
	ok, err := r.getJSON(ctx, forwardKey(query), &point)
	if err != nil || !ok {
		return nil, err
	}
	return &point, nil
}

func (r *cacheRepository) SetGeocode(ctx context.Context, query string, point *domain.GeoPoint, ttl time.Duration) error {
	return r.setJSON(ctx, forwardKey(query), point, ttl)
}

func (r *cacheRepository) GetReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	data, err := r.Get(ctx, reverseKey(lat, lng))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *cacheRepository) SetReverseGeocode(ctx context.Context, lat, lng float64, address string, ttl time.Duration) error {
	return r.Set(ctx, reverseKey(lat, lng), []byte(address), ttl)
}

// GetRouteStats получает статистику из кеша
func (r *cacheRepository) GetRouteStats(ctx context.Context) (*domain.RouteStats, error) {
	var stats domain.RouteStats
	ok, err := r.getJSON(ctx, routeStatsKey, &stats)
	if err != nil || !ok {
		return nil, err
	}
	return &stats, nil
}

// SetRouteStats сохраняет статистику в кеше
func (r *cacheRepository) SetRouteStats(ctx context.Context, stats *domain.RouteStats, ttl time.Duration) error {
	return r.setJSON(ctx, routeStatsKey, stats, ttl)
}

func (r *cacheRepository) InvalidateRouteStats(ctx context.Context) error {
	return r.Delete(ctx, routeStatsKey)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.Set(ctx, key, data, ttl)
}
