package planner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/estimator"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/utils"
	"github.com/tourism-route-service/internal/usecase/dto"
)

// Geocoder - геокодирование для планировщика. Reverse никогда не возвращает пустую строку.
type Geocoder interface {
	Forward(ctx context.Context, query string) (*domain.GeoPoint, error)
	Reverse(ctx context.Context, lat, lng float64) string
}

// Session - один черновик маршрута и его контроллер выбора точек.
// Все изменения черновика идут под mu; внешние вызовы выполняются без блокировки.
type Session struct {
	id        uuid.UUID
	estimator estimator.Estimator
	geocoder  Geocoder
	view      MapView
	logger    *zap.Logger

	mu          sync.Mutex
	draft       *domain.RouteDraft
	selection   SelectionController
	addressText map[domain.PointRole]string
	seq         uint64 // последний выданный номер пересчета

	lastAccess atomic.Int64
}

// Snapshot - состояние сессии для клиента
type Snapshot struct {
	ID            uuid.UUID                  `json:"id"`
	SelectionMode string                     `json:"selectionMode"`
	Draft         *domain.RouteDraft         `json:"draft"`
	StartAddress  string                     `json:"startAddress"`
	EndAddress    string                     `json:"endAddress"`
	Estimator     string                     `json:"estimator"`
	Map           *geojson.FeatureCollection `json:"map,omitempty" swaggertype:"object"`
}

// recompute - выданный, но еще не примененный пересчет метрик
type recompute struct {
	seq  uint64
	path []domain.GeoPoint
}

func NewSession(id uuid.UUID, est estimator.Estimator, geocoder Geocoder, view MapView, logger *zap.Logger) *Session {
	if view == nil {
		view = NopMapView{}
	}
	s := &Session{
		id:          id,
		estimator:   est,
		geocoder:    geocoder,
		view:        view,
		logger:      logger.With(zap.String("draft_id", id.String())),
		draft:       domain.NewRouteDraft(),
		addressText: make(map[domain.PointRole]string, 2),
	}
	s.touch()
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// LastAccess - время последнего обращения к сессии
func (s *Session) LastAccess() time.Time {
	return time.Unix(0, s.lastAccess.Load())
}

func (s *Session) touch() {
	s.lastAccess.Store(time.Now().UnixNano())
}

func (s *Session) SetSelectionMode(mode SelectionMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.SetMode(mode)
}

// SetDetails обновляет описательные поля черновика
func (s *Session) SetDetails(title, city, description, difficulty string) error {
	d, ok := domain.ParseDifficulty(difficulty)
	if !ok {
		return errors.NewValidationError(errors.ReasonInvalidDifficulty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Title = title
	s.draft.City = city
	s.draft.Description = description
	s.draft.Difficulty = d
	return nil
}

// HandleMapClick назначает точку по правилам SelectionController, подписывает ее
// адресом обратного геокодирования и пересчитывает метрики.
// Возвращает ошибку пересчета как некритичную: черновик остается согласованным.
func (s *Session) HandleMapClick(ctx context.Context, lat, lng float64) (domain.PointRole, error) {
	point := domain.GeoPoint{Lat: lat, Lng: lng, Address: utils.FormatCoordinates(lat, lng)}

	s.mu.Lock()
	role := s.selection.Resolve(s.draft)
	s.assignLocked(role, point)
	job := s.beginRecomputeLocked()
	s.mu.Unlock()

	label := s.geocoder.Reverse(ctx, lat, lng)

	s.mu.Lock()
	// слот мог быть перезаписан, пока шел запрос
	if slot := s.draft.Slot(role); slot != nil && slot.SameLocation(point) && label != "" {
		slot.Address = label
		s.addressText[role] = label
		s.view.SetMarker(role, *slot)
	}
	s.mu.Unlock()

	return role, s.runRecompute(ctx, job)
}

// HandleAddressInput геокодирует введенный адрес и назначает его роли.
// NotFound и ServiceUnavailable оставляют черновик без изменений.
func (s *Session) HandleAddressInput(ctx context.Context, role domain.PointRole, query string) error {
	if !role.Valid() {
		return errors.ErrInvalidRequest
	}

	point, err := s.geocoder.Forward(ctx, query)
	if err != nil {
		s.logger.Info("Address lookup failed", zap.String("role", string(role)), zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.assignLocked(role, *point)
	job := s.beginRecomputeLocked()
	s.mu.Unlock()

	return s.runRecompute(ctx, job)
}

// SetWaypoints заменяет промежуточные точки между start и end
func (s *Session) SetWaypoints(ctx context.Context, points []domain.GeoPoint) error {
	for _, p := range points {
		if !p.Valid() {
			return errors.NewValidationError(errors.ReasonInvalidCoordinates)
		}
	}

	s.mu.Lock()
	s.draft.Waypoints = append([]domain.GeoPoint{}, points...)
	job := s.beginRecomputeLocked()
	s.mu.Unlock()

	return s.runRecompute(ctx, job)
}

// LoadRoute загружает сохраненный маршрут в черновик. Метрики маршрута
// берутся как есть и затем пересчитываются активной стратегией.
func (s *Session) LoadRoute(ctx context.Context, route *domain.Route) error {
	if len(route.Waypoints) < 2 {
		return errors.NewValidationError(errors.ReasonInsufficientWaypoints)
	}

	s.mu.Lock()
	draft := domain.NewRouteDraft()
	draft.Title = route.Title
	draft.City = route.City
	draft.Description = route.Description
	draft.Difficulty = route.Difficulty
	draft.Waypoints = append([]domain.GeoPoint{}, route.Waypoints[1:len(route.Waypoints)-1]...)
	draft.SetMetrics(domain.RouteMetrics{DistanceKm: route.DistanceKm, DurationLabel: route.DurationLabel})
	s.draft = draft
	s.assignLocked(domain.RoleStart, route.StartLocation)
	s.assignLocked(domain.RoleEnd, route.EndLocation)
	s.view.DrawRoute(s.draft.Path())
	job := s.beginRecomputeLocked()
	s.mu.Unlock()

	return s.runRecompute(ctx, job)
}

// Snapshot возвращает копию состояния
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		ID:            s.id,
		SelectionMode: s.selection.Mode().String(),
		Draft:         s.draft.Clone(),
		StartAddress:  s.addressText[domain.RoleStart],
		EndAddress:    s.addressText[domain.RoleEnd],
		Estimator:     s.estimator.Name(),
	}
	if gv, ok := s.view.(*GeoJSONMapView); ok {
		snap.Map = gv.FeatureCollection()
	}
	return snap
}

// ToCreateRequest собирает запрос на сохранение: путь start, промежуточные, end
func (s *Session) ToCreateRequest() *dto.CreateRouteRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft
	req := &dto.CreateRouteRequest{
		Title:       d.Title,
		Description: d.Description,
		City:        d.City,
		Difficulty:  string(d.Difficulty),
	}
	if d.Start != nil {
		req.StartLocation = dto.NewOptionalPoint(*d.Start)
	}
	if d.End != nil {
		req.EndLocation = dto.NewOptionalPoint(*d.End)
	}
	if path := d.Path(); path != nil {
		req.Waypoints = dto.NewWaypointList(path...)
	}
	if d.DistanceKm != nil {
		req.Distance = dto.NewOptionalFloat(*d.DistanceKm)
	}
	if d.DurationLabel != nil {
		req.Duration = *d.DurationLabel
	}
	return req
}

// Reset начинает новый черновик. Незавершенные пересчеты будут отброшены.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = domain.NewRouteDraft()
	s.selection.SetMode(ModeNone)
	s.addressText = make(map[domain.PointRole]string, 2)
	s.seq++
	if r, ok := s.view.(interface{ Reset() }); ok {
		r.Reset()
	} else {
		s.view.ClearRoute()
	}
}

func (s *Session) assignLocked(role domain.PointRole, point domain.GeoPoint) {
	s.draft.SetSlot(role, point)
	s.addressText[role] = point.Address
	s.view.SetMarker(role, point)
}

// beginRecomputeLocked выдает новый номер пересчета, если обе конечные точки заданы
func (s *Session) beginRecomputeLocked() *recompute {
	if !s.draft.HasEndpoints() {
		return nil
	}
	s.seq++
	return &recompute{seq: s.seq, path: s.draft.Path()}
}

// runRecompute применяет результат, только если номер все еще последний.
// При ошибке прежние метрики сохраняются.
func (s *Session) runRecompute(ctx context.Context, job *recompute) error {
	if job == nil {
		return nil
	}

	metrics, err := s.estimator.Estimate(ctx, job.path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if job.seq != s.seq {
		s.logger.Debug("Discarding stale estimate",
			zap.Uint64("seq", job.seq),
			zap.Uint64("latest", s.seq))
		return nil
	}
	if err != nil {
		s.logger.Warn("Estimate failed, keeping previous metrics", zap.Error(err))
		return err
	}

	s.draft.SetMetrics(*metrics)
	// номер не менялся, значит координаты те же, а подписи могли обновиться
	s.view.DrawRoute(s.draft.Path())
	return nil
}
