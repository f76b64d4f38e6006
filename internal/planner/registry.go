package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/estimator"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/metrics"
)

// Registry хранит сессии планировщика в памяти процесса API
type Registry struct {
	estimator  estimator.Estimator
	geocoder   Geocoder
	newMapView func() MapView
	ttl        time.Duration
	metrics    *metrics.Collector
	logger     *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry - newMapView может быть nil, тогда карта не ведется
func NewRegistry(
	est estimator.Estimator,
	geocoder Geocoder,
	newMapView func() MapView,
	ttl time.Duration,
	collector *metrics.Collector,
	logger *zap.Logger,
) *Registry {
	if newMapView == nil {
		newMapView = func() MapView { return NopMapView{} }
	}
	return &Registry{
		estimator:  est,
		geocoder:   geocoder,
		newMapView: newMapView,
		ttl:        ttl,
		metrics:    collector,
		logger:     logger,
		sessions:   make(map[uuid.UUID]*Session),
	}
}

// Open создает новую сессию с пустым черновиком
func (r *Registry) Open() *Session {
	session := NewSession(uuid.New(), r.estimator, r.geocoder, r.newMapView(), r.logger)

	r.mu.Lock()
	r.sessions[session.ID()] = session
	count := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetActiveDrafts(count)
	r.logger.Debug("Planner session opened", zap.String("draft_id", session.ID().String()))
	return session
}

// Get возвращает сессию и продлевает ее жизнь
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.ErrDraftNotFound
	}
	session.touch()
	return session, nil
}

// Discard удаляет сессию. false, если ее не было.
func (r *Registry) Discard(id uuid.UUID) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	count := len(r.sessions)
	r.mu.Unlock()

	if ok {
		r.metrics.SetActiveDrafts(count)
	}
	return ok
}

// Sweep удаляет сессии, не использовавшиеся дольше ttl относительно now
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	removed := 0
	for id, session := range r.sessions {
		if now.Sub(session.LastAccess()) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	count := len(r.sessions)
	r.mu.Unlock()

	if removed > 0 {
		r.metrics.SetActiveDrafts(count)
		r.logger.Info("Expired planner sessions discarded",
			zap.Int("removed", removed),
			zap.Int("active", count))
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
