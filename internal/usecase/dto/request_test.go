package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-route-service/internal/domain"
)

func TestWaypointList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		count   int
		wantErr bool
	}{
		{name: "array", body: `{"waypoints":[{"lat":1,"lng":2},{"lat":3,"lng":4}]}`, count: 2},
		{name: "json encoded string", body: `{"waypoints":"[{\"lat\":1,\"lng\":2,\"address\":\"A\"}]"}`, count: 1},
		{name: "empty string", body: `{"waypoints":""}`, count: 0},
		{name: "missing", body: `{}`, count: 0},
		{name: "malformed string", body: `{"waypoints":"[{lat:1"}`, wantErr: true},
		{name: "wrong type", body: `{"waypoints":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateRouteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			if tt.wantErr {
				assert.Error(t, req.Waypoints.Err())
				return
			}
			assert.NoError(t, req.Waypoints.Err())
			assert.Len(t, req.Waypoints.Points, tt.count)
		})
	}
}

func TestOptionalFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *float64
		wantErr bool
	}{
		{name: "number", body: `{"distance":2.1}`, want: floatPtr(2.1)},
		{name: "numeric string", body: `{"distance":"2.10"}`, want: floatPtr(2.1)},
		{name: "padded string", body: `{"distance":" 12 "}`, want: floatPtr(12)},
		{name: "empty string is absent", body: `{"distance":""}`},
		{name: "null is absent", body: `{"distance":null}`},
		{name: "missing", body: `{}`},
		{name: "text", body: `{"distance":"iki"}`, wantErr: true},
		{name: "wrong type", body: `{"distance":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateRouteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			if tt.wantErr {
				assert.Error(t, req.Distance.Err())
				assert.Nil(t, req.Distance.Value)
				return
			}
			assert.NoError(t, req.Distance.Err())
			if tt.want == nil {
				assert.Nil(t, req.Distance.Value)
				return
			}
			require.NotNil(t, req.Distance.Value)
			assert.InDelta(t, *tt.want, *req.Distance.Value, 1e-9)
		})
	}
}

func TestOptionalPoint_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *domain.GeoPoint
		wantErr bool
	}{
		{
			name: "object",
			body: `{"startLocation":{"lat":41.0086,"lng":28.9802,"address":"Sultanahmet"}}`,
			want: &domain.GeoPoint{Lat: 41.0086, Lng: 28.9802, Address: "Sultanahmet"},
		},
		{
			name: "json encoded string",
			body: `{"startLocation":"{\"lat\":41.0086,\"lng\":28.9802,\"address\":\"Sultanahmet\"}"}`,
			want: &domain.GeoPoint{Lat: 41.0086, Lng: 28.9802, Address: "Sultanahmet"},
		},
		{name: "empty string is absent", body: `{"startLocation":""}`},
		{name: "null is absent", body: `{"startLocation":null}`},
		{name: "malformed string", body: `{"startLocation":"{lat:1"}`, wantErr: true},
		{name: "wrong type", body: `{"startLocation":[1,2]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateRouteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			if tt.wantErr {
				assert.Error(t, req.StartLocation.Err())
				assert.Nil(t, req.StartLocation.Point)
				return
			}
			assert.NoError(t, req.StartLocation.Err())
			assert.Equal(t, tt.want, req.StartLocation.Point)
		})
	}
}

func TestCreateRouteRequest_MarshalJSON(t *testing.T) {
	req := CreateRouteRequest{
		Title:         "Boğaz",
		StartLocation: NewOptionalPoint(domain.GeoPoint{Lat: 41, Lng: 29}),
		Distance:      NewOptionalFloat(3.5),
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded CreateRouteRequest
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.StartLocation.Point)
	assert.Equal(t, 41.0, decoded.StartLocation.Point.Lat)
	assert.Nil(t, decoded.EndLocation.Point)
	require.NotNil(t, decoded.Distance.Value)
	assert.Equal(t, 3.5, *decoded.Distance.Value)
}

func floatPtr(v float64) *float64 { return &v }

func TestUpdateRouteRequest_EmbeddedFields(t *testing.T) {
	var req UpdateRouteRequest
	body := `{"title":"Kapadokya","city":"Nevşehir","status":"draft","waypoints":"[]"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "Kapadokya", req.Title)
	assert.Equal(t, "draft", req.Status)
	assert.Empty(t, req.Waypoints.Points)
}

func TestRouteListRequest_ToFilter(t *testing.T) {
	minDistance := 10.0
	req := RouteListRequest{City: "ank", MinDistance: &minDistance}
	filter := req.ToFilter()

	require.NotNil(t, filter.City)
	assert.Equal(t, "ank", *filter.City)
	assert.Equal(t, 10.0, *filter.MinDistance)
	assert.Nil(t, filter.DurationContains)
}
