package estimator

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/config"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
)

type MockRoutingRepository struct {
	mock.Mock
}

func (m *MockRoutingRepository) Route(ctx context.Context, points []domain.GeoPoint) (*repository.RouteLeg, error) {
	args := m.Called(ctx, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RouteLeg), args.Error(1)
}

var (
	ankara   = domain.GeoPoint{Lat: 39.9334, Lng: 32.8597, Address: "Ankara"}
	istanbul = domain.GeoPoint{Lat: 41.0082, Lng: 28.9784, Address: "İstanbul"}
)

func TestFormatTravelTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{seconds: 3725, expected: "1 saat 2 dakika"},
		{seconds: 300, expected: "5 dakika"},
		{seconds: 59, expected: "0 dakika"},
		{seconds: 7200, expected: "2 saat 0 dakika"},
		{seconds: 16320.9, expected: "4 saat 32 dakika"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTravelTime(tt.seconds))
		})
	}
}

func TestFormatApproxDuration(t *testing.T) {
	assert.Equal(t, "2 sa 30 dk", FormatApproxDuration(150, 60))
	assert.Equal(t, "0 sa 45 dk", FormatApproxDuration(45, 60))
	assert.Equal(t, "5 sa 49 dk", FormatApproxDuration(349.4, 60))
	assert.Equal(t, "0 sa 0 dk", FormatApproxDuration(0, 60))
	// 119.9 km => 1.99833 h => 59.9 min rounds to 60 and carries
	assert.Equal(t, "2 sa 0 dk", FormatApproxDuration(119.9, 60))
}

func TestHaversineEstimator_Estimate(t *testing.T) {
	est := NewHaversineEstimator(0)

	t.Run("ankara to istanbul", func(t *testing.T) {
		metrics, err := est.Estimate(context.Background(), []domain.GeoPoint{ankara, istanbul})
		require.NoError(t, err)
		assert.InDelta(t, 348, metrics.DistanceKm, 5)
		assert.Equal(t, "5 sa 49 dk", metrics.DurationLabel)
	})

	t.Run("sums legs through waypoints", func(t *testing.T) {
		bolu := domain.GeoPoint{Lat: 40.7350, Lng: 31.6061}
		direct, err := est.Estimate(context.Background(), []domain.GeoPoint{ankara, istanbul})
		require.NoError(t, err)
		via, err := est.Estimate(context.Background(), []domain.GeoPoint{ankara, bolu, istanbul})
		require.NoError(t, err)
		assert.Greater(t, via.DistanceKm, direct.DistanceKm)
	})

	t.Run("single point", func(t *testing.T) {
		_, err := est.Estimate(context.Background(), []domain.GeoPoint{ankara})
		assert.True(t, stderrors.Is(err, errors.ErrValidation))
		assert.Equal(t, errors.ReasonInsufficientWaypoints, errors.ReasonOf(err))
	})

	assert.Equal(t, StrategyHaversine, est.Name())
}

func TestRoutingEstimator_Estimate(t *testing.T) {
	t.Run("rounds meters to two decimals", func(t *testing.T) {
		repo := new(MockRoutingRepository)
		repo.On("Route", mock.Anything, []domain.GeoPoint{ankara, istanbul}).
			Return(&repository.RouteLeg{DistanceMeters: 452345.6789, DurationSeconds: 3725}, nil)

		metrics, err := NewRoutingEstimator(repo, zap.NewNop()).Estimate(context.Background(), []domain.GeoPoint{ankara, istanbul})
		require.NoError(t, err)
		assert.Equal(t, 452.35, metrics.DistanceKm)
		assert.Equal(t, "1 saat 2 dakika", metrics.DurationLabel)
		repo.AssertExpectations(t)
	})

	t.Run("propagates routing failure", func(t *testing.T) {
		repo := new(MockRoutingRepository)
		repo.On("Route", mock.Anything, mock.Anything).Return(nil, errors.ErrRoutingUnavailable)

		metrics, err := NewRoutingEstimator(repo, zap.NewNop()).Estimate(context.Background(), []domain.GeoPoint{ankara, istanbul})
		assert.Nil(t, metrics)
		assert.True(t, stderrors.Is(err, errors.ErrRoutingUnavailable))
	})

	t.Run("invalid coordinates never reach the engine", func(t *testing.T) {
		repo := new(MockRoutingRepository)

		_, err := NewRoutingEstimator(repo, zap.NewNop()).Estimate(context.Background(), []domain.GeoPoint{ankara, {Lat: 95, Lng: 0}})
		assert.Equal(t, errors.ReasonInvalidCoordinates, errors.ReasonOf(err))
		repo.AssertNotCalled(t, "Route", mock.Anything, mock.Anything)
	})
}

func TestNew(t *testing.T) {
	logger := zap.NewNop()

	est, err := New(&config.EstimatorConfig{Strategy: "haversine", AverageSpeedKmh: 60}, nil, logger)
	require.NoError(t, err)
	assert.Equal(t, StrategyHaversine, est.Name())

	est, err = New(&config.EstimatorConfig{Strategy: "routing"}, new(MockRoutingRepository), logger)
	require.NoError(t, err)
	assert.Equal(t, StrategyRouting, est.Name())

	_, err = New(&config.EstimatorConfig{Strategy: "routing"}, nil, logger)
	assert.Error(t, err)

	_, err = New(&config.EstimatorConfig{Strategy: "teleport"}, nil, logger)
	assert.Error(t, err)
}
