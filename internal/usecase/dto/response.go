package dto

import "github.com/tourism-route-service/internal/domain"

// RouteResponse - {success, route}
type RouteResponse struct {
	Success bool          `json:"success"`
	Route   *domain.Route `json:"route"`
}

// StatsResponse - {success, stats}
type StatsResponse struct {
	Success bool               `json:"success"`
	Stats   *domain.RouteStats `json:"stats"`
}

// ReverseGeocodeResponse - адрес для координат
type ReverseGeocodeResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// EstimateResponse - метрики и примененная стратегия
type EstimateResponse struct {
	DistanceKm    float64 `json:"distanceKm"`
	DurationLabel string  `json:"durationLabel"`
	Strategy      string  `json:"strategy"`
}
