package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
)

const routeColumns = `
	id, title, description, city,
	start_location, end_location, waypoints,
	distance_km, duration_label, difficulty, status,
	owner_user_id, owner_admin_id, created_at, updated_at`

type routeRepository struct {
	db *DB
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// routeRow - строка таблицы routes. Точки хранятся в JSONB.
type routeRow struct {
	ID            uuid.UUID      `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	City          string         `db:"city"`
	StartLocation []byte         `db:"start_location"`
	EndLocation   []byte         `db:"end_location"`
	Waypoints     []byte         `db:"waypoints"`
	DistanceKm    float64        `db:"distance_km"`
	DurationLabel string         `db:"duration_label"`
	Difficulty    string         `db:"difficulty"`
	Status        string         `db:"status"`
	OwnerUserID   sql.NullString `db:"owner_user_id"`
	OwnerAdminID  sql.NullString `db:"owner_admin_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (row *routeRow) toDomain() (*domain.Route, error) {
	route := &domain.Route{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		City:          row.City,
		DistanceKm:    row.DistanceKm,
		DurationLabel: row.DurationLabel,
		Difficulty:    domain.Difficulty(row.Difficulty),
		Status:        domain.RouteStatus(row.Status),
		Owner: domain.OwnerRef{
			UserID:  row.OwnerUserID.String,
			AdminID: row.OwnerAdminID.String,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if err := json.Unmarshal(row.StartLocation, &route.StartLocation); err != nil {
		return nil, fmt.Errorf("decode start_location of route %s: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.EndLocation, &route.EndLocation); err != nil {
		return nil, fmt.Errorf("decode end_location of route %s: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Waypoints, &route.Waypoints); err != nil {
		return nil, fmt.Errorf("decode waypoints of route %s: %w", row.ID, err)
	}

	return route, nil
}

// encodedPoints - JSON-представление точек маршрута для записи
type encodedPoints struct {
	start     string
	end       string
	waypoints string
}

func encodePoints(route *domain.Route) (*encodedPoints, error) {
	start, err := json.Marshal(route.StartLocation)
	if err != nil {
		return nil, fmt.Errorf("encode start_location: %w", err)
	}
	end, err := json.Marshal(route.EndLocation)
	if err != nil {
		return nil, fmt.Errorf("encode end_location: %w", err)
	}
	waypoints := route.Waypoints
	if waypoints == nil {
		waypoints = []domain.GeoPoint{}
	}
	wp, err := json.Marshal(waypoints)
	if err != nil {
		return nil, fmt.Errorf("encode waypoints: %w", err)
	}
	return &encodedPoints{start: string(start), end: string(end), waypoints: string(wp)}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create сохраняет маршрут одной вставкой
func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	points, err := encodePoints(route)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseError, err)
	}

	query := `
		INSERT INTO routes (
			id, title, description, city,
			start_location, end_location, waypoints,
			distance_km, duration_label, difficulty, status,
			owner_user_id, owner_admin_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5::jsonb, $6::jsonb, $7::jsonb,
			$8, $9, $10, $11,
			$12, $13, $14, $15
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		route.ID, route.Title, route.Description, route.City,
		points.start, points.end, points.waypoints,
		route.DistanceKm, route.DurationLabel, string(route.Difficulty), string(route.Status),
		nullString(route.Owner.UserID), nullString(route.Owner.AdminID), route.CreatedAt, route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert route: %v", errors.ErrDatabaseError, err)
	}

	return nil
}

// Update перезаписывает изменяемые поля. owner_* и created_at не трогаются.
func (r *routeRepository) Update(ctx context.Context, route *domain.Route) error {
	points, err := encodePoints(route)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseError, err)
	}

	query := `
		UPDATE routes SET
			title = $2,
			description = $3,
			city = $4,
			start_location = $5::jsonb,
			end_location = $6::jsonb,
			waypoints = $7::jsonb,
			distance_km = $8,
			duration_label = $9,
			difficulty = $10,
			status = $11,
			updated_at = $12
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		route.ID, route.Title, route.Description, route.City,
		points.start, points.end, points.waypoints,
		route.DistanceKm, route.DurationLabel, string(route.Difficulty), string(route.Status),
		route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: update route: %v", errors.ErrDatabaseError, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update route: %v", errors.ErrDatabaseError, err)
	}
	if affected == 0 {
		return errors.ErrRouteNotFound
	}

	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	var row routeRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get route: %v", errors.ErrDatabaseError, err)
	}

	return row.toDomain()
}

// List - публичный список. Фильтры комбинируются через AND.
func (r *routeRepository) List(ctx context.Context, filter domain.RouteFilter) ([]*domain.Route, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.City != nil && *filter.City != "" {
		args = append(args, "%"+escapeLike(*filter.City)+"%")
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", len(args)))
	}
	if filter.MinDistance != nil {
		args = append(args, *filter.MinDistance)
		conditions = append(conditions, fmt.Sprintf("distance_km >= $%d", len(args)))
	}
	if filter.DurationContains != nil && *filter.DurationContains != "" {
		args = append(args, "%"+escapeLike(*filter.DurationContains)+"%")
		conditions = append(conditions, fmt.Sprintf("duration_label ILIKE $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + routeColumns + ` FROM routes`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`

	return r.selectRoutes(ctx, query, args...)
}

func (r *routeRepository) ListByOwner(ctx context.Context, owner domain.OwnerRef) ([]*domain.Route, error) {
	if owner.IsZero() {
		return []*domain.Route{}, nil
	}

	query := `SELECT ` + routeColumns + ` FROM routes`
	var arg string
	if owner.AdminID != "" {
		query += ` WHERE owner_admin_id = $1`
		arg = owner.AdminID
	} else {
		query += ` WHERE owner_user_id = $1`
		arg = owner.UserID
	}
	query += ` ORDER BY created_at DESC, id`

	return r.selectRoutes(ctx, query, arg)
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%w: delete route: %v", errors.ErrDatabaseError, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete route: %v", errors.ErrDatabaseError, err)
	}

	return affected > 0, nil
}

func (r *routeRepository) selectRoutes(ctx context.Context, query string, args ...interface{}) ([]*domain.Route, error) {
	var rows []routeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: list routes: %v", errors.ErrDatabaseError, err)
	}

	routes := make([]*domain.Route, 0, len(rows))
	for i := range rows {
		route, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseError, err)
		}
		routes = append(routes, route)
	}

	return routes, nil
}

// escapeLike экранирует спецсимволы LIKE, пользовательский ввод ищется как подстрока
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
