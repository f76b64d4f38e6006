package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tourism-route-service/internal/domain"
)

// CreateRouteRequest - тело POST /routes
type CreateRouteRequest struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	City          string        `json:"city"`
	Difficulty    string        `json:"difficulty"`
	StartLocation OptionalPoint `json:"startLocation" swaggertype:"object"`
	EndLocation   OptionalPoint `json:"endLocation" swaggertype:"object"`
	Waypoints     WaypointList  `json:"waypoints" swaggertype:"array,object"`
	Distance      OptionalFloat `json:"distance" swaggertype:"number"`
	Duration      string        `json:"duration"`
}

// UpdateRouteRequest - тело POST /routes/:id (админ-панель)
type UpdateRouteRequest struct {
	CreateRouteRequest
	Status string `json:"status"`
}

// WaypointList принимает массив точек или JSON-строку с массивом.
// Ошибка разбора не прерывает декодирование тела, а сохраняется в Err.
type WaypointList struct {
	Points []domain.GeoPoint
	err    error
}

// NewWaypointList - список из уже разобранных точек
func NewWaypointList(points ...domain.GeoPoint) WaypointList {
	return WaypointList{Points: points}
}

func (w *WaypointList) UnmarshalJSON(data []byte) error {
	w.Points = nil
	w.err = nil

	data, ok, err := unwrapJSONString(data)
	if err != nil {
		w.err = fmt.Errorf("waypoints: %w", err)
		return nil
	}
	if !ok {
		return nil
	}

	var points []domain.GeoPoint
	if err := json.Unmarshal(data, &points); err != nil {
		w.err = fmt.Errorf("waypoints: %w", err)
		return nil
	}
	w.Points = points
	return nil
}

func (w WaypointList) MarshalJSON() ([]byte, error) {
	if w.Points == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w.Points)
}

// Err - ошибка разбора waypoints, если была
func (w WaypointList) Err() error {
	return w.err
}

// OptionalPoint принимает точку объектом или JSON-строкой с объектом.
// null и "" означают отсутствие точки.
type OptionalPoint struct {
	Point *domain.GeoPoint
	err   error
}

// NewOptionalPoint - уже разобранная точка
func NewOptionalPoint(p domain.GeoPoint) OptionalPoint {
	return OptionalPoint{Point: &p}
}

func (o *OptionalPoint) UnmarshalJSON(data []byte) error {
	o.Point = nil
	o.err = nil

	data, ok, err := unwrapJSONString(data)
	if err != nil {
		o.err = fmt.Errorf("location: %w", err)
		return nil
	}
	if !ok {
		return nil
	}

	var point domain.GeoPoint
	if err := json.Unmarshal(data, &point); err != nil {
		o.err = fmt.Errorf("location: %w", err)
		return nil
	}
	o.Point = &point
	return nil
}

func (o OptionalPoint) MarshalJSON() ([]byte, error) {
	if o.Point == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Point)
}

// Err - ошибка разбора точки, если была
func (o OptionalPoint) Err() error {
	return o.err
}

// OptionalFloat принимает число или строку с числом ("2.10").
// null и "" означают отсутствие значения.
type OptionalFloat struct {
	Value *float64
	err   error
}

// NewOptionalFloat - заданное значение
func NewOptionalFloat(v float64) OptionalFloat {
	return OptionalFloat{Value: &v}
}

func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	f.Value = nil
	f.err = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			f.err = fmt.Errorf("number: %w", err)
			return nil
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.err = fmt.Errorf("number: %w", err)
		return nil
	}
	f.Value = &v
	return nil
}

func (f OptionalFloat) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// Err - ошибка разбора числа, если была
func (f OptionalFloat) Err() error {
	return f.err
}

// unwrapJSONString снимает строковую обертку. ok=false - значения нет.
func unwrapJSONString(data []byte) ([]byte, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, false, nil
	}
	if data[0] != '"' {
		return data, true, nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, false, err
	}
	data = bytes.TrimSpace([]byte(encoded))
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, false, nil
	}
	return data, true, nil
}

// EstimateRequest - запрос на расчет метрик по точкам
type EstimateRequest struct {
	Points []domain.GeoPoint `json:"points" validate:"required,min=2,dive"`
}

// ReverseGeocodeRequest - обратное геокодирование (query-параметры)
type ReverseGeocodeRequest struct {
	Lat *float64 `query:"lat" json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `query:"lng" json:"lng" validate:"required,gte=-180,lte=180"`
}

// SearchGeocodeRequest - прямое геокодирование
type SearchGeocodeRequest struct {
	Query string `query:"q" json:"q" validate:"required,min=2,max=256"`
}

// RouteListRequest - фильтры GET /routes
type RouteListRequest struct {
	City             string   `query:"city" json:"city"`
	MinDistance      *float64 `query:"minDistance" json:"minDistance" validate:"omitempty,gte=0"`
	DurationContains string   `query:"durationContains" json:"durationContains"`
}

// ToFilter переводит параметры запроса в domain.RouteFilter
func (r *RouteListRequest) ToFilter() domain.RouteFilter {
	var filter domain.RouteFilter
	if r.City != "" {
		city := r.City
		filter.City = &city
	}
	if r.MinDistance != nil {
		minDistance := *r.MinDistance
		filter.MinDistance = &minDistance
	}
	if r.DurationContains != "" {
		duration := r.DurationContains
		filter.DurationContains = &duration
	}
	return filter
}

// SelectionModeRequest - PUT /planner/:id/mode
type SelectionModeRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=none start end"`
}

// DraftDetailsRequest - PUT /planner/:id/details
type DraftDetailsRequest struct {
	Title       string `json:"title" validate:"max=200"`
	City        string `json:"city" validate:"max=100"`
	Description string `json:"description" validate:"max=5000"`
	Difficulty  string `json:"difficulty" validate:"difficulty"`
}

// MapClickRequest - POST /planner/:id/click
type MapClickRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// AddressInputRequest - POST /planner/:id/address
type AddressInputRequest struct {
	Role  string `json:"role" validate:"required,oneof=start end"`
	Query string `json:"query" validate:"required,min=2,max=256"`
}

// DraftWaypointsRequest - PUT /planner/:id/waypoints. Только промежуточные точки.
type DraftWaypointsRequest struct {
	Waypoints []domain.GeoPoint `json:"waypoints" validate:"max=23,dive"`
}
