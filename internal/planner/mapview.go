package planner

import (
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tourism-route-service/internal/domain"
)

// MapView - отображение маркеров и линии маршрута
type MapView interface {
	SetMarker(role domain.PointRole, point domain.GeoPoint)
	ClearRoute()
	DrawRoute(points []domain.GeoPoint)
}

// NopMapView ничего не рисует
type NopMapView struct{}

func (NopMapView) SetMarker(domain.PointRole, domain.GeoPoint) {}
func (NopMapView) ClearRoute()                                 {}
func (NopMapView) DrawRoute([]domain.GeoPoint)                 {}

// GeoJSONMapView хранит состояние карты как GeoJSON, который рендерит клиент
type GeoJSONMapView struct {
	mu      sync.Mutex
	markers map[domain.PointRole]*geojson.Feature
	route   *geojson.Feature
}

func NewGeoJSONMapView() *GeoJSONMapView {
	return &GeoJSONMapView{
		markers: make(map[domain.PointRole]*geojson.Feature, 2),
	}
}

func (v *GeoJSONMapView) SetMarker(role domain.PointRole, point domain.GeoPoint) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.markers[role] = markerFeature(role, point)
}

func (v *GeoJSONMapView) ClearRoute() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.route = nil
}

func (v *GeoJSONMapView) DrawRoute(points []domain.GeoPoint) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(points) < 2 {
		v.route = nil
		return
	}
	v.route = lineFeature(points)
}

// Reset убирает маркеры и линию
func (v *GeoJSONMapView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.markers = make(map[domain.PointRole]*geojson.Feature, 2)
	v.route = nil
}

// FeatureCollection - снимок: маркер start, маркер end, линия
func (v *GeoJSONMapView) FeatureCollection() *geojson.FeatureCollection {
	v.mu.Lock()
	defer v.mu.Unlock()

	fc := geojson.NewFeatureCollection()
	for _, role := range []domain.PointRole{domain.RoleStart, domain.RoleEnd} {
		if f, ok := v.markers[role]; ok {
			fc.Append(f)
		}
	}
	if v.route != nil {
		fc.Append(v.route)
	}
	return fc
}

// RouteFeatureCollection рендерит сохраненный маршрут
func RouteFeatureCollection(route *domain.Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(markerFeature(domain.RoleStart, route.StartLocation))
	fc.Append(markerFeature(domain.RoleEnd, route.EndLocation))

	if len(route.Waypoints) >= 2 {
		line := lineFeature(route.Waypoints)
		line.ID = route.ID.String()
		line.Properties["title"] = route.Title
		line.Properties["distance"] = route.DistanceKm
		line.Properties["duration"] = route.DurationLabel
		fc.Append(line)
	}
	return fc
}

func markerFeature(role domain.PointRole, point domain.GeoPoint) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{point.Lng, point.Lat})
	f.Properties["role"] = string(role)
	f.Properties["address"] = point.Address
	if point.Name != "" {
		f.Properties["name"] = point.Name
	}
	return f
}

// lineFeature - линия маршрута; labels[i] подписывает i-ю вершину
func lineFeature(points []domain.GeoPoint) *geojson.Feature {
	line := make(orb.LineString, 0, len(points))
	labels := make([]string, 0, len(points))
	for _, p := range points {
		line = append(line, orb.Point{p.Lng, p.Lat})
		labels = append(labels, p.String())
	}
	f := geojson.NewFeature(line)
	f.Properties["kind"] = "route"
	f.Properties["labels"] = labels
	return f
}
