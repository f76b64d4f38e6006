package domain

import "fmt"

// GeoPoint - координата с человекочитаемым адресом.
// Name - необязательное название места (например, достопримечательности).
type GeoPoint struct {
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"gte=-180,lte=180"`
	Address string  `json:"address"`
	Name    string  `json:"name,omitempty"`
}

// Valid проверяет диапазоны широты и долготы. Адрес не проверяется.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// SameLocation сравнивает только координаты
func (p GeoPoint) SameLocation(other GeoPoint) bool {
	return p.Lat == other.Lat && p.Lng == other.Lng
}

func (p GeoPoint) String() string {
	if p.Address != "" {
		return p.Address
	}
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}

// PointRole - роль конечной точки маршрута
type PointRole string

const (
	RoleStart PointRole = "start"
	RoleEnd   PointRole = "end"
)

func (r PointRole) Valid() bool {
	return r == RoleStart || r == RoleEnd
}
