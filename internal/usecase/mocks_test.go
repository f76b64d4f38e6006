package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/pkg/errors"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, query string) (*domain.GeoPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoPoint), args.Error(1)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, query string, point *domain.GeoPoint, ttl time.Duration) error {
	args := m.Called(ctx, query, point, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	args := m.Called(ctx, lat, lng)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) SetReverseGeocode(ctx context.Context, lat, lng float64, address string, ttl time.Duration) error {
	args := m.Called(ctx, lat, lng, address, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetRouteStats(ctx context.Context) (*domain.RouteStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStats), args.Error(1)
}

func (m *MockCacheRepository) SetRouteStats(ctx context.Context, stats *domain.RouteStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateRouteStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64, block time.Duration) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumePending(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs ...string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Search(ctx context.Context, query string) (*domain.GeoPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoPoint), args.Error(1)
}

func (m *MockGeocodingRepository) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	args := m.Called(ctx, lat, lng)
	return args.String(0), args.Error(1)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetRouteStats(ctx context.Context) (*domain.RouteStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStats), args.Error(1)
}

// memoryRouteRepository - RouteRepository в памяти с семантикой фильтров Postgres
type memoryRouteRepository struct {
	mu     sync.Mutex
	routes []*domain.Route
}

func newMemoryRouteRepository() *memoryRouteRepository {
	return &memoryRouteRepository{}
}

func (r *memoryRouteRepository) Create(_ context.Context, route *domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *route
	cp.Waypoints = append([]domain.GeoPoint{}, route.Waypoints...)
	r.routes = append(r.routes, &cp)
	return nil
}

func (r *memoryRouteRepository) Update(_ context.Context, route *domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.routes {
		if existing.ID == route.ID {
			cp := *route
			cp.Waypoints = append([]domain.GeoPoint{}, route.Waypoints...)
			r.routes[i] = &cp
			return nil
		}
	}
	return errors.ErrRouteNotFound
}

func (r *memoryRouteRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, route := range r.routes {
		if route.ID == id {
			cp := *route
			return &cp, nil
		}
	}
	return nil, errors.ErrRouteNotFound
}

func (r *memoryRouteRepository) List(_ context.Context, filter domain.RouteFilter) ([]*domain.Route, error) {
	return r.filter(func(route *domain.Route) bool {
		if filter.City != nil && !strings.Contains(strings.ToLower(route.City), strings.ToLower(*filter.City)) {
			return false
		}
		if filter.MinDistance != nil && route.DistanceKm < *filter.MinDistance {
			return false
		}
		if filter.DurationContains != nil &&
			!strings.Contains(strings.ToLower(route.DurationLabel), strings.ToLower(*filter.DurationContains)) {
			return false
		}
		if filter.Status != nil && route.Status != *filter.Status {
			return false
		}
		return true
	}), nil
}

func (r *memoryRouteRepository) ListByOwner(_ context.Context, owner domain.OwnerRef) ([]*domain.Route, error) {
	return r.filter(func(route *domain.Route) bool {
		return route.Owner == owner
	}), nil
}

func (r *memoryRouteRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, route := range r.routes {
		if route.ID == id {
			r.routes = append(r.routes[:i], r.routes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRouteRepository) filter(keep func(*domain.Route) bool) []*domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Route, 0, len(r.routes))
	for i := len(r.routes) - 1; i >= 0; i-- {
		if keep(r.routes[i]) {
			cp := *r.routes[i]
			result = append(result, &cp)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
