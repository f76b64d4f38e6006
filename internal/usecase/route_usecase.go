package usecase

import (
	"context"
	stderrors "errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/estimator"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/usecase/dto"
)

// RouteUseCase - сохранение, изменение и выборка маршрутов
type RouteUseCase struct {
	routeRepo    repository.RouteRepository
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	estimator    estimator.Estimator
	eventsStream string
	logger       *zap.Logger
}

// NewRouteUseCase - streamRepo, cacheRepo и est могут быть nil
func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	est estimator.Estimator,
	eventsStream string,
	logger *zap.Logger,
) *RouteUseCase {
	if eventsStream == "" {
		eventsStream = domain.StreamRouteEvents
	}
	return &RouteUseCase{
		routeRepo:    routeRepo,
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		estimator:    est,
		eventsStream: eventsStream,
		logger:       logger,
	}
}

// Create проверяет черновик и сохраняет новый маршрут владельца identity.
// Порядок проверок: название, город, точки, координаты и дистанция, сессия.
func (uc *RouteUseCase) Create(ctx context.Context, identity domain.Identity, req *dto.CreateRouteRequest) (*domain.Route, error) {
	route, err := uc.buildRoute(req)
	if err != nil {
		return nil, err
	}
	if !identity.IsAuthenticated() {
		return nil, errors.ErrNotAuthenticated
	}
	if req.Distance.Value == nil {
		uc.fillMetrics(ctx, route)
	}

	now := time.Now().UTC()
	route.ID = uuid.New()
	route.Status = domain.RouteStatusActive
	route.Owner = identity.OwnerRef()
	route.CreatedAt = now
	route.UpdatedAt = now

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		uc.logger.Error("Failed to create route", zap.String("title", route.Title), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.String("city", route.City),
		zap.Int("waypoints", len(route.Waypoints)))

	uc.afterMutation(ctx, domain.RouteCreated, route)
	return route, nil
}

// Update полностью перезаписывает маршрут. Владелец и createdAt сохраняются.
func (uc *RouteUseCase) Update(ctx context.Context, identity domain.Identity, id uuid.UUID, req *dto.UpdateRouteRequest) (*domain.Route, error) {
	if !identity.IsAuthenticated() {
		return nil, errors.ErrNotAuthenticated
	}

	existing, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.CanModify(existing) {
		return nil, errors.ErrForbidden
	}

	route, err := uc.buildRoute(&req.CreateRouteRequest)
	if err != nil {
		return nil, err
	}
	if req.Distance.Value == nil {
		uc.fillMetrics(ctx, route)
	}

	route.Status = existing.Status
	if req.Status != "" {
		status, ok := domain.ParseRouteStatus(req.Status)
		if !ok {
			return nil, errors.NewValidationError(errors.ReasonInvalidStatus)
		}
		route.Status = status
	}

	route.ID = existing.ID
	route.Owner = existing.Owner
	route.CreatedAt = existing.CreatedAt
	route.UpdatedAt = time.Now().UTC()

	if err := uc.routeRepo.Update(ctx, route); err != nil {
		if stderrors.Is(err, errors.ErrRouteNotFound) {
			return nil, errors.ErrRouteNotFound
		}
		uc.logger.Error("Failed to update route", zap.String("route_id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Route updated", zap.String("route_id", id.String()))
	uc.afterMutation(ctx, domain.RouteUpdated, route)
	return route, nil
}

// List - выборка по фильтру, новые первыми. Каждый вызов - новый запрос.
func (uc *RouteUseCase) List(ctx context.Context, filter domain.RouteFilter) ([]*domain.Route, error) {
	if filter.MinDistance != nil && (*filter.MinDistance < 0 || math.IsNaN(*filter.MinDistance)) {
		return nil, errors.NewValidationError(errors.ReasonInvalidDistance)
	}

	routes, err := uc.routeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return routes, nil
}

// ListMine - маршруты вызывающего пользователя
func (uc *RouteUseCase) ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Route, error) {
	if !identity.IsAuthenticated() {
		return nil, errors.ErrNotAuthenticated
	}

	routes, err := uc.routeRepo.ListByOwner(ctx, identity.OwnerRef())
	if err != nil {
		uc.logger.Error("Failed to list own routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return routes, nil
}

// Get возвращает маршрут или ErrRouteNotFound
func (uc *RouteUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	return uc.get(ctx, id)
}

// Delete удаляет маршрут. Отсутствующий маршрут - не ошибка.
func (uc *RouteUseCase) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	if !identity.IsAuthenticated() {
		return errors.ErrNotAuthenticated
	}

	existing, err := uc.get(ctx, id)
	if stderrors.Is(err, errors.ErrRouteNotFound) {
		uc.logger.Debug("Delete of missing route ignored", zap.String("route_id", id.String()))
		return nil
	}
	if err != nil {
		return err
	}
	if !identity.CanModify(existing) {
		return errors.ErrForbidden
	}

	deleted, err := uc.routeRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete route", zap.String("route_id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if deleted {
		uc.logger.Info("Route deleted", zap.String("route_id", id.String()))
		uc.afterMutation(ctx, domain.RouteDeleted, existing)
	}
	return nil
}

func (uc *RouteUseCase) get(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, errors.ErrRouteNotFound) {
			return nil, errors.ErrRouteNotFound
		}
		uc.logger.Error("Failed to get route", zap.String("route_id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return route, nil
}

// buildRoute проверяет поля запроса и материализует список точек
func (uc *RouteUseCase) buildRoute(req *dto.CreateRouteRequest) (*domain.Route, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.NewValidationError(errors.ReasonMissingTitle)
	}
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, errors.NewValidationError(errors.ReasonMissingCity)
	}

	if req.StartLocation.Err() != nil || req.EndLocation.Err() != nil {
		return nil, errors.NewValidationError(errors.ReasonInvalidCoordinates)
	}
	waypoints, err := materializeWaypoints(req.StartLocation.Point, req.EndLocation.Point, req.Waypoints)
	if err != nil {
		return nil, err
	}
	for _, p := range waypoints {
		if !p.Valid() {
			return nil, errors.NewValidationError(errors.ReasonInvalidCoordinates)
		}
	}

	if req.Distance.Err() != nil {
		return nil, errors.NewValidationError(errors.ReasonInvalidDistance)
	}
	if req.Distance.Value != nil {
		d := *req.Distance.Value
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, errors.NewValidationError(errors.ReasonInvalidDistance)
		}
	}

	difficulty, ok := domain.ParseDifficulty(req.Difficulty)
	if !ok {
		return nil, errors.NewValidationError(errors.ReasonInvalidDifficulty)
	}

	route := &domain.Route{
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		City:          city,
		StartLocation: waypoints[0],
		EndLocation:   waypoints[len(waypoints)-1],
		Waypoints:     waypoints,
		DurationLabel: strings.TrimSpace(req.Duration),
		Difficulty:    difficulty,
	}

	if req.Distance.Value != nil {
		route.DistanceKm = *req.Distance.Value
	}

	return route, nil
}

// fillMetrics считает метрики, если клиент их не прислал. Сбой не блокирует сохранение.
func (uc *RouteUseCase) fillMetrics(ctx context.Context, route *domain.Route) {
	if uc.estimator == nil {
		return
	}

	metrics, err := uc.estimator.Estimate(ctx, route.Waypoints)
	if err != nil {
		uc.logger.Warn("Failed to estimate missing route metrics",
			zap.String("estimator", uc.estimator.Name()),
			zap.Error(err))
		return
	}

	route.DistanceKm = metrics.DistanceKm
	if route.DurationLabel == "" {
		route.DurationLabel = metrics.DurationLabel
	}
}

// materializeWaypoints: пустой список дает [start, end]; иначе минимум две
// точки, а переданные start/end должны совпадать с первой и последней.
func materializeWaypoints(start, end *domain.GeoPoint, list dto.WaypointList) ([]domain.GeoPoint, error) {
	if list.Err() != nil {
		if start == nil || end == nil {
			return nil, errors.NewValidationError(errors.ReasonInsufficientWaypoints)
		}
		return nil, errors.NewValidationError(errors.ReasonInvalidWaypoints)
	}

	if len(list.Points) == 0 {
		if start == nil || end == nil {
			return nil, errors.NewValidationError(errors.ReasonInsufficientWaypoints)
		}
		return []domain.GeoPoint{*start, *end}, nil
	}

	if len(list.Points) < 2 {
		return nil, errors.NewValidationError(errors.ReasonInsufficientWaypoints)
	}

	waypoints := append([]domain.GeoPoint{}, list.Points...)
	last := len(waypoints) - 1

	if start != nil {
		if !start.SameLocation(waypoints[0]) {
			return nil, errors.NewValidationError(errors.ReasonEndpointMismatch)
		}
		waypoints[0] = *start
	}
	if end != nil {
		if !end.SameLocation(waypoints[last]) {
			return nil, errors.NewValidationError(errors.ReasonEndpointMismatch)
		}
		waypoints[last] = *end
	}

	return waypoints, nil
}

// afterMutation публикует событие и сбрасывает кеш статистики. Ошибки только логируются.
func (uc *RouteUseCase) afterMutation(ctx context.Context, eventType domain.RouteEventType, route *domain.Route) {
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.InvalidateRouteStats(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate route stats cache", zap.Error(err))
		}
	}

	if uc.streamRepo == nil {
		return
	}
	event := domain.NewRouteEvent(eventType, route)
	if err := uc.streamRepo.PublishToStream(ctx, uc.eventsStream, event); err != nil {
		uc.logger.Warn("Failed to publish route event",
			zap.String("type", string(eventType)),
			zap.String("route_id", route.ID.String()),
			zap.Error(err))
	}
}
