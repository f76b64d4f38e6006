package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/config"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/metrics"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	profile    string
	metrics    *metrics.Collector
	logger     *zap.Logger
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// NewClient создает клиент OSRM route service
func NewClient(cfg *config.RoutingConfig, collector *metrics.Collector, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		profile: cfg.Profile,
		metrics: collector,
		logger:  logger,
	}
}

// Route возвращает суммарные дистанцию и время первого маршрута
func (c *client) Route(ctx context.Context, points []domain.GeoPoint) (*repository.RouteLeg, error) {
	leg, err := c.route(ctx, points)
	c.metrics.ObserveExternal("osrm", "route", err)
	return leg, err
}

func (c *client) route(ctx context.Context, points []domain.GeoPoint) (*repository.RouteLeg, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: at least two points required", errors.ErrRoutingUnavailable)
	}

	// OSRM ожидает пары lng,lat через ";"
	coordinates := make([]string, 0, len(points))
	for _, p := range points {
		coordinates = append(coordinates,
			strconv.FormatFloat(p.Lng, 'f', -1, 64)+","+strconv.FormatFloat(p.Lat, 'f', -1, 64))
	}

	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=false",
		c.baseURL,
		c.profile,
		strings.Join(coordinates, ";"),
	)

	c.logger.Debug("Calling OSRM route API",
		zap.String("url", url),
		zap.Int("points_count", len(points)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("%w: create request: %v", errors.ErrRoutingUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	var routeResp routeResponse
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("OSRM API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("%w: status %d", errors.ErrRoutingUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		c.logger.Warn("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("%w: decode response: %v", errors.ErrRoutingUnavailable, err)
	}

	if routeResp.Code != "Ok" || len(routeResp.Routes) == 0 {
		c.logger.Warn("OSRM returned no routes",
			zap.String("code", routeResp.Code),
			zap.String("message", routeResp.Message))
		return nil, fmt.Errorf("%w: code %s", errors.ErrRoutingUnavailable, routeResp.Code)
	}

	first := routeResp.Routes[0]

	c.logger.Debug("OSRM route API call successful",
		zap.Float64("distance_m", first.Distance),
		zap.Float64("duration_s", first.Duration))

	return &repository.RouteLeg{
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
	}, nil
}
