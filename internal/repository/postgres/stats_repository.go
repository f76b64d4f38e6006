package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/utils"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetRouteStats возвращает агрегированную статистику по всем маршрутам
func (r *statsRepository) GetRouteStats(ctx context.Context) (*domain.RouteStats, error) {
	stats := &domain.RouteStats{
		ByCity:    map[string]int{},
		UpdatedAt: time.Now().UTC(),
	}

	// Общее количество и средняя длина
	var totals struct {
		Total   int     `db:"total"`
		Average float64 `db:"average"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COUNT(*) AS total, COALESCE(AVG(distance_km), 0) AS average
		FROM routes
	`)
	if err != nil {
		r.logger.Error("failed to get route totals", zap.Error(err))
		return nil, fmt.Errorf("get route totals: %w", err)
	}
	stats.TotalRoutes = totals.Total
	stats.AverageDistanceKm = utils.RoundTo(totals.Average, 1)

	if stats.TotalRoutes == 0 {
		return stats, nil
	}

	// Самый длинный маршрут
	longest, err := r.getLongestRoute(ctx)
	if err != nil {
		r.logger.Error("failed to get longest route", zap.Error(err))
		return nil, fmt.Errorf("get longest route: %w", err)
	}
	stats.LongestRoute = longest

	// Разбивка по городам
	byCity, err := r.getCityCounts(ctx)
	if err != nil {
		r.logger.Error("failed to get city stats", zap.Error(err))
		return nil, fmt.Errorf("get city stats: %w", err)
	}
	stats.ByCity = byCity

	return stats, nil
}

func (r *statsRepository) getLongestRoute(ctx context.Context) (*domain.RouteSummary, error) {
	var summary domain.RouteSummary
	err := r.db.GetContext(ctx, &summary, `
		SELECT id, title, distance_km
		FROM routes
		ORDER BY distance_km DESC, created_at DESC
		LIMIT 1
	`)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *statsRepository) getCityCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		City  string `db:"city"`
		Count int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT city, COUNT(*) AS count
		FROM routes
		GROUP BY city
		ORDER BY count DESC, city
	`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(rows))
	for _, row := range rows {
		result[row.City] = row.Count
	}
	return result, nil
}
