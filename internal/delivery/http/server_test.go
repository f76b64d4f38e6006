package http_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/config"
	deliveryhttp "github.com/tourism-route-service/internal/delivery/http"
	"github.com/tourism-route-service/internal/delivery/http/handler"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/estimator"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/metrics"
	"github.com/tourism-route-service/internal/planner"
	"github.com/tourism-route-service/internal/usecase"
)

const (
	userSession  = "user-sid"
	otherSession = "other-sid"
	adminSession = "admin-sid"
)

// --- fakes ---

type staticSessions map[string]domain.Identity

func (s staticSessions) GetIdentity(_ context.Context, sid string) (domain.Identity, error) {
	if id, ok := s[sid]; ok {
		return id, nil
	}
	return domain.Anonymous, nil
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (nopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (nopCache) Delete(context.Context, string) error { return nil }

func (nopCache) Exists(context.Context, string) (bool, error) { return false, nil }

func (nopCache) GetGeocode(context.Context, string) (*domain.GeoPoint, error) { return nil, nil }

func (nopCache) SetGeocode(context.Context, string, *domain.GeoPoint, time.Duration) error {
	return nil
}

func (nopCache) GetReverseGeocode(context.Context, float64, float64) (string, error) {
	return "", nil
}

func (nopCache) SetReverseGeocode(context.Context, float64, float64, string, time.Duration) error {
	return nil
}

func (nopCache) GetRouteStats(context.Context) (*domain.RouteStats, error) { return nil, nil }

func (nopCache) SetRouteStats(context.Context, *domain.RouteStats, time.Duration) error {
	return nil
}

func (nopCache) InvalidateRouteStats(context.Context) error { return nil }

type stubGeocoder struct{}

func (stubGeocoder) Search(_ context.Context, query string) (*domain.GeoPoint, error) {
	if strings.EqualFold(query, "Galata Kulesi") {
		return &domain.GeoPoint{Lat: 41.0256, Lng: 28.9741, Address: "Galata Kulesi, Beyoğlu"}, nil
	}
	return nil, errors.ErrGeocodeNotFound
}

func (stubGeocoder) Reverse(context.Context, float64, float64) (string, error) {
	return "", errors.ErrGeocodingUnavailable
}

type memoryRoutes struct {
	mu     sync.Mutex
	routes map[uuid.UUID]domain.Route
}

func (r *memoryRoutes) Create(_ context.Context, route *domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route.ID] = *route
	return nil
}

func (r *memoryRoutes) Update(_ context.Context, route *domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[route.ID]; !ok {
		return errors.ErrRouteNotFound
	}
	r.routes[route.ID] = *route
	return nil
}

func (r *memoryRoutes) GetByID(_ context.Context, id uuid.UUID) (*domain.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[id]
	if !ok {
		return nil, errors.ErrRouteNotFound
	}
	return &route, nil
}

func (r *memoryRoutes) List(_ context.Context, filter domain.RouteFilter) ([]*domain.Route, error) {
	return r.collect(func(route domain.Route) bool {
		return filter.City == nil || strings.Contains(strings.ToLower(route.City), strings.ToLower(*filter.City))
	}), nil
}

func (r *memoryRoutes) ListByOwner(_ context.Context, owner domain.OwnerRef) ([]*domain.Route, error) {
	return r.collect(func(route domain.Route) bool { return route.Owner == owner }), nil
}

func (r *memoryRoutes) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.routes[id]
	delete(r.routes, id)
	return ok, nil
}

func (r *memoryRoutes) collect(keep func(domain.Route) bool) []*domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.Route{}
	for _, route := range r.routes {
		if keep(route) {
			cp := route
			result = append(result, &cp)
		}
	}
	return result
}

type fixedStats struct{}

func (fixedStats) GetRouteStats(context.Context) (*domain.RouteStats, error) {
	return &domain.RouteStats{TotalRoutes: 4, AverageDistanceKm: 12.5, ByCity: map[string]int{"İstanbul": 4}}, nil
}

// --- harness ---

type testServer struct {
	server *deliveryhttp.Server
	routes *memoryRoutes
}

func newTestServer(t *testing.T, checks map[string]deliveryhttp.HealthCheck) *testServer {
	t.Helper()
	logger := zap.NewNop()

	cfg := &config.Config{
		Server:  config.ServerConfig{AllowOrigins: "http://localhost:5173"},
		Session: config.SessionConfig{CookieName: "sid", HeaderName: "X-Session-ID"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	routes := &memoryRoutes{routes: map[uuid.UUID]domain.Route{}}
	est := estimator.NewHaversineEstimator(estimator.DefaultAverageSpeedKmh)

	routeUC := usecase.NewRouteUseCase(routes, nil, nopCache{}, est, "", logger)
	statsUC := usecase.NewRouteStatsUseCase(fixedStats{}, nopCache{}, logger, time.Minute)
	geocodingUC := usecase.NewGeocodingUseCase(stubGeocoder{}, nopCache{}, logger, time.Minute)
	registry := planner.NewRegistry(est, geocodingUC, func() planner.MapView {
		return planner.NewGeoJSONMapView()
	}, time.Hour, collector, logger)

	sessions := staticSessions{
		userSession:  {UserID: "user-1"},
		otherSession: {UserID: "user-2"},
		adminSession: {AdminID: "admin-1"},
	}

	server := deliveryhttp.NewServer(cfg, logger, collector, sessions, checks, deliveryhttp.Handlers{
		Route:    handler.NewRouteHandler(routeUC, statsUC, logger),
		Geocode:  handler.NewGeocodeHandler(geocodingUC, logger),
		Estimate: handler.NewEstimateHandler(est, logger),
		Planner:  handler.NewPlannerHandler(registry, routeUC, logger),
	})

	return &testServer{server: server, routes: routes}
}

func (ts *testServer) do(t *testing.T, method, path, sid string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	status, raw := ts.doRaw(t, method, path, sid, body)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return status, decoded
}

func (ts *testServer) doRaw(t *testing.T, method, path, sid string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}

	resp, err := ts.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func errorCode(body map[string]interface{}) string {
	e, _ := body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}

func errorReason(body map[string]interface{}) string {
	e, _ := body["error"].(map[string]interface{})
	details, _ := e["details"].(map[string]interface{})
	reason, _ := details["reason"].(string)
	return reason
}

func createRouteBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":         title,
		"city":          "İstanbul",
		"description":   "Tarihi yarımada",
		"difficulty":    "kolay",
		"startLocation": map[string]interface{}{"lat": 41.0082, "lng": 28.9784, "address": "Sultanahmet"},
		"endLocation":   map[string]interface{}{"lat": 41.0256, "lng": 28.9741, "address": "Galata"},
		"waypoints":     `[{"lat":41.0082,"lng":28.9784,"address":"Sultanahmet"},{"lat":41.0256,"lng":28.9741,"address":"Galata"}]`,
		"distance":      2.1,
		"duration":      "0 sa 30 dk",
	}
}

func (ts *testServer) createRoute(t *testing.T, sid, title string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/api/v1/routes", sid, createRouteBody(title))
	require.Equal(t, http.StatusCreated, status, body)
	route := body["route"].(map[string]interface{})
	return route["id"].(string)
}

// --- tests ---

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t, map[string]deliveryhttp.HealthCheck{
		"postgres": func(context.Context) error { return nil },
	})
	status, body := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	ts = newTestServer(t, map[string]deliveryhttp.HealthCheck{
		"redis": func(context.Context) error { return stderrors.New("connection refused") },
	})
	status, body = ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "degraded", body["status"])
}

func TestServer_UnknownPath(t *testing.T) {
	ts := newTestServer(t, nil)
	status, body := ts.do(t, http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.do(t, http.MethodGet, "/api/v1/routes", "", nil)

	status, raw := ts.doRaw(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "route_api_requests_total")
}

func TestRoutes_CreateRequiresSession(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.do(t, http.MethodPost, "/api/v1/routes", "", createRouteBody("Sur Dibi"))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_AUTHENTICATED", errorCode(body))

	status, raw := ts.doRaw(t, http.MethodGet, "/api/v1/routes", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestRoutes_CreateValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	body := createRouteBody("")
	status, resp := ts.do(t, http.MethodPost, "/api/v1/routes", userSession, body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(resp))
	assert.Equal(t, errors.ReasonMissingTitle, errorReason(resp))

	status, _ = ts.do(t, http.MethodPost, "/api/v1/routes", userSession, `{"title": `)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRoutes_CreateAcceptsClientPayloads(t *testing.T) {
	ts := newTestServer(t, nil)

	// Планировщик шлет distance строкой после toFixed(2), waypoints JSON-строкой.
	plannerPayload := `{"title":"Kordon Yürüyüşü","description":"Sahil boyunca","city":"İzmir",` +
		`"difficulty":"kolay","distance":"2.10","duration":"0 sa 25 dk",` +
		`"startLocation":{"lat":38.4192,"lng":27.1287,"address":"Konak"},` +
		`"endLocation":{"lat":38.4370,"lng":27.1425,"address":"Alsancak"},` +
		`"waypoints":"[{\"lat\":38.4192,\"lng\":27.1287,\"address\":\"Konak\"},` +
		`{\"lat\":38.4280,\"lng\":27.1340,\"address\":\"Kordon\",\"name\":\"Gündoğdu Meydanı\"},` +
		`{\"lat\":38.4370,\"lng\":27.1425,\"address\":\"Alsancak\"}]"}`

	status, body := ts.do(t, http.MethodPost, "/api/v1/routes", userSession, plannerPayload)
	require.Equal(t, http.StatusCreated, status, body)

	route := body["route"].(map[string]interface{})
	assert.InDelta(t, 2.1, route["distance"], 1e-9)
	waypoints := route["waypoints"].([]interface{})
	require.Len(t, waypoints, 3)
	middle := waypoints[1].(map[string]interface{})
	assert.Equal(t, "Gündoğdu Meydanı", middle["name"])
	assert.Equal(t, "Kordon", middle["address"])
	_, hasName := waypoints[0].(map[string]interface{})["name"]
	assert.False(t, hasName)

	// Админ-панель шлет точки JSON-строками.
	adminPayload := `{"title":"Kemeraltı","city":"İzmir","difficulty":"orta","distance":"",` +
		`"startLocation":"{\"lat\":38.4189,\"lng\":27.1287,\"address\":\"Konak\"}",` +
		`"endLocation":"{\"lat\":38.4220,\"lng\":27.1350,\"address\":\"Kemeraltı\"}",` +
		`"waypoints":"","status":"draft"}`

	status, body = ts.do(t, http.MethodPost, "/api/v1/routes", adminSession, adminPayload)
	require.Equal(t, http.StatusCreated, status, body)
	route = body["route"].(map[string]interface{})
	assert.Equal(t, "Kemeraltı", route["endLocation"].(map[string]interface{})["address"])
	assert.Greater(t, route["distance"], 0.0, "empty distance is estimated")

	id := route["id"].(string)
	status, body = ts.do(t, http.MethodPost, "/api/v1/routes/"+id, adminSession, adminPayload)
	require.Equal(t, http.StatusOK, status, body)

	updated, err := ts.routes.GetByID(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	assert.Equal(t, domain.RouteStatusDraft, updated.Status)
	assert.Equal(t, "Konak", updated.StartLocation.Address)

	status, body = ts.do(t, http.MethodPost, "/api/v1/routes", userSession,
		`{"title":"X","city":"İzmir","distance":"iki","startLocation":{"lat":1,"lng":1},"endLocation":{"lat":2,"lng":2}}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, errors.ReasonInvalidDistance, errorReason(body))
}

func TestRoutes_CreateListMine(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.do(t, http.MethodPost, "/api/v1/routes", userSession, createRouteBody("Sur Dibi"))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	route := body["route"].(map[string]interface{})
	assert.Equal(t, "easy", route["difficulty"])
	assert.Equal(t, "active", route["status"])
	waypoints := route["waypoints"].([]interface{})
	require.Len(t, waypoints, 2)
	assert.Equal(t, "Sultanahmet", waypoints[0].(map[string]interface{})["address"])

	var listed []map[string]interface{}
	status, raw := ts.doRaw(t, http.MethodGet, "/api/v1/routes?city=ist", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &listed))
	assert.Len(t, listed, 1)

	status, raw = ts.doRaw(t, http.MethodGet, "/api/v1/routes/mine", otherSession, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	status, raw = ts.doRaw(t, http.MethodGet, "/api/v1/routes/mine", userSession, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &listed))
	assert.Len(t, listed, 1)

	status, resp := ts.do(t, http.MethodGet, "/api/v1/routes/mine", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "NOT_AUTHENTICATED", errorCode(resp))
}

func TestRoutes_SessionHeader(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.createRoute(t, userSession, "Sur Dibi")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/mine", nil)
	req.Header.Set("X-Session-ID", userSession)
	resp, err := ts.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_GetAndGeoJSON(t *testing.T) {
	ts := newTestServer(t, nil)
	id := ts.createRoute(t, userSession, "Sur Dibi")

	status, body := ts.do(t, http.MethodGet, "/api/v1/routes/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Sur Dibi", body["route"].(map[string]interface{})["title"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/routes/"+id+"/geojson", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "FeatureCollection", body["type"])
	assert.Len(t, body["features"], 3)

	status, body = ts.do(t, http.MethodGet, "/api/v1/routes/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REQUEST", errorCode(body))

	status, body = ts.do(t, http.MethodGet, "/api/v1/routes/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(body))
}

func TestRoutes_UpdatePermissions(t *testing.T) {
	ts := newTestServer(t, nil)
	id := ts.createRoute(t, userSession, "Sur Dibi")

	update := createRouteBody("Sur Dibi Yürüyüşü")
	update["status"] = "draft"

	status, body := ts.do(t, http.MethodPost, "/api/v1/routes/"+id, otherSession, update)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errorCode(body))

	status, body = ts.do(t, http.MethodPost, "/api/v1/routes/"+id, adminSession, update)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, map[string]interface{}{"success": true}, body)

	route, err := ts.routes.GetByID(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	assert.Equal(t, "Sur Dibi Yürüyüşü", route.Title)
	assert.Equal(t, domain.RouteStatusDraft, route.Status)
	assert.Equal(t, domain.OwnerRef{UserID: "user-1"}, route.Owner)
}

func TestRoutes_Delete(t *testing.T) {
	ts := newTestServer(t, nil)
	id := ts.createRoute(t, userSession, "Sur Dibi")

	status, body := ts.do(t, http.MethodPost, "/api/v1/routes/"+id+"/delete", otherSession, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errorCode(body))

	status, body = ts.do(t, http.MethodPost, "/api/v1/routes/"+id+"/delete", userSession, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	// Повторное удаление тоже успешно
	status, body = ts.do(t, http.MethodPost, "/api/v1/routes/"+id+"/delete", userSession, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
}

func TestRoutes_Stats(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.do(t, http.MethodGet, "/api/v1/routes/stats", "", nil)
	require.Equal(t, http.StatusOK, status)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(4), stats["totalRoutes"])
}

func TestGeocode_Endpoints(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.do(t, http.MethodGet, "/api/v1/geocode/search?q=Galata%20Kulesi", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Galata Kulesi, Beyoğlu", body["data"].(map[string]interface{})["address"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/geocode/search?q=Atlantis", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "GEOCODE_NOT_FOUND", errorCode(body))

	status, body = ts.do(t, http.MethodGet, "/api/v1/geocode/reverse?lat=41.0082&lng=28.9784", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "41.008200, 28.978400", body["data"].(map[string]interface{})["address"])

	status, _ = ts.do(t, http.MethodGet, "/api/v1/geocode/reverse?lat=120&lng=28.9784", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEstimate(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.do(t, http.MethodPost, "/api/v1/estimate", "", map[string]interface{}{
		"points": []map[string]float64{
			{"lat": 41.0082, "lng": 28.9784},
			{"lat": 41.0082, "lng": 28.9784},
		},
	})
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["distanceKm"])
	assert.Equal(t, "0 sa 0 dk", data["durationLabel"])
	assert.Equal(t, estimator.StrategyHaversine, data["strategy"])

	status, _ = ts.do(t, http.MethodPost, "/api/v1/estimate", "", map[string]interface{}{
		"points": []map[string]float64{{"lat": 41.0, "lng": 28.9}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPlanner_ClickAndSubmit(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.do(t, http.MethodPost, "/api/v1/planner", "", nil)
	require.Equal(t, http.StatusCreated, status)
	id := body["data"].(map[string]interface{})["id"].(string)
	base := "/api/v1/planner/" + id

	status, _ = ts.do(t, http.MethodPut, base+"/details", "", map[string]string{
		"title": "Galata'dan Sultanahmet'e", "city": "İstanbul", "difficulty": "orta",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = ts.do(t, http.MethodPost, base+"/click", "", map[string]float64{"lat": 41.0256, "lng": 28.9741})
	require.Equal(t, http.StatusOK, status)
	draft := body["data"].(map[string]interface{})["draft"].(map[string]interface{})
	assert.NotNil(t, draft["start"])
	assert.Nil(t, draft["end"])

	status, body = ts.do(t, http.MethodPost, base+"/click", "", map[string]float64{"lat": 41.0082, "lng": 28.9784})
	require.Equal(t, http.StatusOK, status)
	snapshot := body["data"].(map[string]interface{})
	draft = snapshot["draft"].(map[string]interface{})
	assert.NotNil(t, draft["end"])
	assert.NotNil(t, draft["distanceKm"])
	assert.Equal(t, "41.008200, 28.978400", snapshot["endAddress"])

	// Без сессии сохранить нельзя, черновик остается
	status, body = ts.do(t, http.MethodPost, base+"/submit", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "NOT_AUTHENTICATED", errorCode(body))

	status, body = ts.do(t, http.MethodPost, base+"/submit", userSession, nil)
	require.Equal(t, http.StatusCreated, status, body)
	route := body["route"].(map[string]interface{})
	assert.Equal(t, "medium", route["difficulty"])
	assert.Len(t, route["waypoints"], 2)

	status, body = ts.do(t, http.MethodGet, base, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "DRAFT_NOT_FOUND", errorCode(body))
}

func TestPlanner_AddressNotFoundIsWarning(t *testing.T) {
	ts := newTestServer(t, nil)

	_, body := ts.do(t, http.MethodPost, "/api/v1/planner", "", nil)
	base := "/api/v1/planner/" + body["data"].(map[string]interface{})["id"].(string)

	status, body := ts.do(t, http.MethodPost, base+"/address", "", map[string]string{"role": "start", "query": "Galata Kulesi"})
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, body["warning"])
	assert.Equal(t, "Galata Kulesi, Beyoğlu", body["data"].(map[string]interface{})["startAddress"])

	status, body = ts.do(t, http.MethodPost, base+"/address", "", map[string]string{"role": "start", "query": "Atlantis"})
	require.Equal(t, http.StatusOK, status)
	warning := body["warning"].(map[string]interface{})
	assert.Equal(t, "GEOCODE_NOT_FOUND", warning["code"])
	assert.Equal(t, "Galata Kulesi, Beyoğlu", body["data"].(map[string]interface{})["startAddress"])

	status, _ = ts.do(t, http.MethodPost, base+"/address", "", map[string]string{"role": "middle", "query": "Taksim"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPlanner_LoadRouteAndDiscard(t *testing.T) {
	ts := newTestServer(t, nil)
	routeID := ts.createRoute(t, userSession, "Sur Dibi")

	_, body := ts.do(t, http.MethodPost, "/api/v1/planner", "", nil)
	base := "/api/v1/planner/" + body["data"].(map[string]interface{})["id"].(string)

	status, body := ts.do(t, http.MethodPost, base+"/load/"+routeID, "", nil)
	require.Equal(t, http.StatusOK, status)
	draft := body["data"].(map[string]interface{})["draft"].(map[string]interface{})
	assert.Equal(t, "Sur Dibi", draft["title"])

	status, _ = ts.do(t, http.MethodPost, base+"/load/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = ts.do(t, http.MethodPut, base+"/mode", "", map[string]string{"mode": "sideways"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.do(t, http.MethodDelete, base, "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = ts.do(t, http.MethodGet, base, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPlanner_UnknownDraft(t *testing.T) {
	ts := newTestServer(t, nil)
	status, body := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/planner/%s/click", uuid.NewString()), "",
		map[string]float64{"lat": 41, "lng": 29})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "DRAFT_NOT_FOUND", errorCode(body))
}
