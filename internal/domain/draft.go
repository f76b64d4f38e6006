package domain

// RouteDraft - маршрут в процессе составления
type RouteDraft struct {
	Title         string     `json:"title"`
	City          string     `json:"city"`
	Description   string     `json:"description"`
	Difficulty    Difficulty `json:"difficulty"`
	Start         *GeoPoint  `json:"start"`
	End           *GeoPoint  `json:"end"`
	Waypoints     []GeoPoint `json:"waypoints"` // промежуточные точки между start и end
	DistanceKm    *float64   `json:"distanceKm"`
	DurationLabel *string    `json:"durationLabel"`
}

// NewRouteDraft создает пустой черновик
func NewRouteDraft() *RouteDraft {
	return &RouteDraft{
		Difficulty: DifficultyMedium,
		Waypoints:  []GeoPoint{},
	}
}

func (d *RouteDraft) HasEndpoints() bool {
	return d.Start != nil && d.End != nil
}

// Slot возвращает точку для роли
func (d *RouteDraft) Slot(role PointRole) *GeoPoint {
	if role == RoleStart {
		return d.Start
	}
	return d.End
}

// SetSlot записывает копию точки в слот роли
func (d *RouteDraft) SetSlot(role PointRole, p GeoPoint) {
	if role == RoleStart {
		d.Start = &p
		return
	}
	d.End = &p
}

// Path возвращает упорядоченный путь start, промежуточные точки, end.
// nil, если хотя бы одна конечная точка не задана.
func (d *RouteDraft) Path() []GeoPoint {
	if !d.HasEndpoints() {
		return nil
	}
	path := make([]GeoPoint, 0, len(d.Waypoints)+2)
	path = append(path, *d.Start)
	path = append(path, d.Waypoints...)
	path = append(path, *d.End)
	return path
}

func (d *RouteDraft) SetMetrics(m RouteMetrics) {
	distance := m.DistanceKm
	label := m.DurationLabel
	d.DistanceKm = &distance
	d.DurationLabel = &label
}

// Clone возвращает глубокую копию
func (d *RouteDraft) Clone() *RouteDraft {
	c := *d
	if d.Start != nil {
		s := *d.Start
		c.Start = &s
	}
	if d.End != nil {
		e := *d.End
		c.End = &e
	}
	c.Waypoints = append([]GeoPoint{}, d.Waypoints...)
	if d.DistanceKm != nil {
		v := *d.DistanceKm
		c.DistanceKm = &v
	}
	if d.DurationLabel != nil {
		v := *d.DurationLabel
		c.DurationLabel = &v
	}
	return &c
}
