package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamRouteEvents = "stream:route:events"
)

type RouteEventType string

const (
	RouteCreated RouteEventType = "route.created"
	RouteUpdated RouteEventType = "route.updated"
	RouteDeleted RouteEventType = "route.deleted"
)

// RouteEvent - событие изменения маршрута
type RouteEvent struct {
	Type       RouteEventType `json:"type"`
	RouteID    uuid.UUID      `json:"route_id"`
	City       string         `json:"city,omitempty"`
	DistanceKm float64        `json:"distance_km"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewRouteEvent создает событие по маршруту
func NewRouteEvent(t RouteEventType, route *Route) RouteEvent {
	return RouteEvent{
		Type:       t,
		RouteID:    route.ID,
		City:       route.City,
		DistanceKm: route.DistanceKm,
		OccurredAt: time.Now().UTC(),
	}
}

// IsMutation - изменяет ли событие статистику
func (e RouteEventType) IsMutation() bool {
	return e == RouteCreated || e == RouteUpdated || e == RouteDeleted
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
