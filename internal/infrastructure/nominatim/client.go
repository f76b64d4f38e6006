package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tourism-route-service/internal/config"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/metrics"
)

const serviceName = "nominatim"

type client struct {
	httpClient   *http.Client
	baseURL      string
	userAgent    string
	countryCodes string
	limiter      *rate.Limiter
	metrics      *metrics.Collector
	logger       *zap.Logger
}

// searchResult - элемент ответа /search. Координаты приходят строками.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NewClient создает клиент Nominatim. Запросы ограничены cfg.RateLimit в секунду.
func NewClient(cfg *config.GeocodingConfig, collector *metrics.Collector, logger *zap.Logger) repository.GeocodingRepository {
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:    cfg.UserAgent,
		countryCodes: cfg.CountryCodes,
		limiter:      rate.NewLimiter(limit, 1),
		metrics:      collector,
		logger:       logger,
	}
}

// Search ищет адрес и возвращает первый результат
func (c *client) Search(ctx context.Context, query string) (*domain.GeoPoint, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ErrGeocodeNotFound
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")
	if c.countryCodes != "" {
		params.Set("countrycodes", c.countryCodes)
	}

	var results []searchResult
	err := c.get(ctx, "/search", params, &results)
	c.metrics.ObserveExternal(serviceName, "search", err)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		c.logger.Debug("Geocode search returned no results", zap.String("query", query))
		return nil, errors.ErrGeocodeNotFound
	}

	first := results[0]
	lat, errLat := strconv.ParseFloat(first.Lat, 64)
	lng, errLng := strconv.ParseFloat(first.Lon, 64)
	if errLat != nil || errLng != nil {
		c.logger.Error("Failed to parse geocode coordinates",
			zap.String("lat", first.Lat),
			zap.String("lon", first.Lon))
		return nil, fmt.Errorf("%w: malformed coordinates", errors.ErrGeocodingUnavailable)
	}

	return &domain.GeoPoint{
		Lat:     lat,
		Lng:     lng,
		Address: first.DisplayName,
	}, nil
}

// Reverse возвращает display_name для координат
func (c *client) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	var result reverseResult
	err := c.get(ctx, "/reverse", params, &result)
	if err == nil && (result.Error != "" || strings.TrimSpace(result.DisplayName) == "") {
		err = fmt.Errorf("%w: empty address", errors.ErrGeocodingUnavailable)
	}
	c.metrics.ObserveExternal(serviceName, "reverse", err)
	if err != nil {
		return "", err
	}

	return result.DisplayName, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", errors.ErrGeocodingUnavailable, err)
	}

	endpoint := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("Calling Nominatim API", zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("%w: create request: %v", errors.ErrGeocodingUnavailable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Nominatim request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", errors.ErrGeocodingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("%w: status %d", errors.ErrGeocodingUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Failed to decode Nominatim response", zap.Error(err))
		return fmt.Errorf("%w: decode response: %v", errors.ErrGeocodingUnavailable, err)
	}

	return nil
}
