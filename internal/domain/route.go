package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// difficultyAliases - значения из исходного набора данных
var difficultyAliases = map[string]Difficulty{
	"easy":   DifficultyEasy,
	"medium": DifficultyMedium,
	"hard":   DifficultyHard,
	"kolay":  DifficultyEasy,
	"orta":   DifficultyMedium,
	"zor":    DifficultyHard,
}

// ParseDifficulty нормализует сложность. Пустая строка дает medium.
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyMedium, true
	}
	d, ok := difficultyAliases[s]
	return d, ok
}

type RouteStatus string

const (
	RouteStatusActive RouteStatus = "active"
	RouteStatusDraft  RouteStatus = "draft"
)

// ParseRouteStatus нормализует статус. Пустая строка дает active.
func ParseRouteStatus(s string) (RouteStatus, bool) {
	switch RouteStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", RouteStatusActive:
		return RouteStatusActive, true
	case RouteStatusDraft:
		return RouteStatusDraft, true
	default:
		return "", false
	}
}

// Route - сохраненный маршрут
type Route struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	City          string      `json:"city"`
	StartLocation GeoPoint    `json:"startLocation"`
	EndLocation   GeoPoint    `json:"endLocation"`
	Waypoints     []GeoPoint  `json:"waypoints"`
	DistanceKm    float64     `json:"distance"`
	DurationLabel string      `json:"duration"`
	Difficulty    Difficulty  `json:"difficulty"`
	Status        RouteStatus `json:"status"`
	Owner         OwnerRef    `json:"owner"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// RouteMetrics - производные метрики маршрута
type RouteMetrics struct {
	DistanceKm    float64 `json:"distanceKm"`
	DurationLabel string  `json:"durationLabel"`
}

// RouteFilter - фильтры списка маршрутов. nil означает "без фильтра".
type RouteFilter struct {
	City             *string
	MinDistance      *float64
	DurationContains *string
	Status           *RouteStatus
}

// RouteSummary - краткая информация о маршруте
type RouteSummary struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	DistanceKm float64   `json:"distanceKm" db:"distance_km"`
}

// RouteStats - статистика для админ-панели
type RouteStats struct {
	TotalRoutes       int            `json:"totalRoutes"`
	AverageDistanceKm float64        `json:"averageDistanceKm"`
	LongestRoute      *RouteSummary  `json:"longestRoute,omitempty"`
	ByCity            map[string]int `json:"byCity"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}
