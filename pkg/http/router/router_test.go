package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Monocerum/escolar/pkg/campus"
	"github.com/Monocerum/escolar/pkg/engine"
	"github.com/Monocerum/escolar/pkg/geo"
	"github.com/Monocerum/escolar/pkg/http/usecases"
	"github.com/Monocerum/escolar/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	src := campus.NewSource("test campus")
	src.AddVertex(campus.SourceVertex{ID: "Hall", Class: "bn", Lat: 14.5980, Lon: 121.0100, Vulnerability: 1})
	src.AddVertex(campus.SourceVertex{ID: "Walk", Class: "in", Lat: 14.5983, Lon: 121.0100, Vulnerability: 0})
	src.AddVertex(campus.SourceVertex{ID: "Oval", Class: "dn", Lat: 14.5986, Lon: 121.0100, Vulnerability: 0})
	src.AddEdge("Hall", "Walk")
	src.AddEdge("Walk", "Oval")

	reg := prometheus.NewRegistry()
	metric := metrics.NewMetric(reg)
	e, err := engine.NewEngineFromSource(src, 1000, 1000, zap.NewNop(), metric)
	require.NoError(t, err)
	rs, err := usecases.NewRoutingService(zap.NewNop(), e.GetRoutingEngine(), e.GetSpatialIndex(), metric,
		0.05, "Oval", 2, 16)
	require.NoError(t, err)

	return NewAPI(zap.NewNop()).Handler(false, rs, reg)
}

type routeBody struct {
	Found    bool     `json:"found"`
	Vertices []string `json:"vertices"`
	Polyline string   `json:"polyline"`
	Distance float64  `json:"distance"`
}

type routesBody struct {
	Data struct {
		Origin      string    `json:"origin"`
		Destination string    `json:"destination"`
		Primary     routeBody `json:"primary"`
		Alternative routeBody `json:"alternative"`
	} `json:"data"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestComputeRoutes(t *testing.T) {
	h := newTestHandler(t)

	rec := serve(t, h, "/api/computeRoutes?origin=Hall")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body routesBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hall", body.Data.Origin)
	assert.Equal(t, "Oval", body.Data.Destination)
	assert.True(t, body.Data.Primary.Found)
	assert.Equal(t, []string{"Hall", "Walk", "Oval"}, body.Data.Primary.Vertices)
	assert.InDelta(t, 66.7, body.Data.Primary.Distance, 1.0)

	coords, err := geo.CoordsFromPolyline(body.Data.Primary.Polyline)
	require.NoError(t, err)
	assert.Len(t, coords, 3)
}

func TestComputeRoutesErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "missing origin", target: "/api/computeRoutes", wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "unknown origin", target: "/api/computeRoutes?origin=Library", wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "unknown destination", target: "/api/computeRoutes?origin=Hall&destination=Field", wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "lat not a float", target: "/api/computeRoutesFromCoordinates?lat=north&lon=121.01", wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "lat out of range", target: "/api/computeRoutesFromCoordinates?lat=91&lon=121.01", wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "far from campus", target: "/api/computeRoutesFromCoordinates?lat=14.7&lon=121.2", wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "unknown place class", target: "/api/places?class=xx", wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, tt.target)
			require.Equal(t, tt.wantStatus, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestComputeRoutesFromCoordinates(t *testing.T) {
	h := newTestHandler(t)

	rec := serve(t, h, "/api/computeRoutesFromCoordinates?lat=14.59831&lon=121.01001")
	require.Equal(t, http.StatusOK, rec.Code)

	var body routesBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Walk", body.Data.Origin)
	assert.Equal(t, []string{"Walk", "Oval"}, body.Data.Primary.Vertices)
}

func TestEvacuationPlanAndPlaces(t *testing.T) {
	h := newTestHandler(t)

	rec := serve(t, h, "/api/evacuationPlan")
	require.Equal(t, http.StatusOK, rec.Code)
	var plan struct {
		Data []struct {
			Origin string `json:"origin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Len(t, plan.Data, 1)
	assert.Equal(t, "Hall", plan.Data[0].Origin)

	rec = serve(t, h, "/api/places?class=dn")
	require.Equal(t, http.StatusOK, rec.Code)
	var places struct {
		Data []struct {
			ID    string `json:"id"`
			Class string `json:"class"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
	require.Len(t, places.Data, 1)
	assert.Equal(t, "Oval", places.Data[0].ID)
	assert.Equal(t, "evacuation_area", places.Data[0].Class)
}

func TestMiddleware(t *testing.T) {
	h := newTestHandler(t)

	t.Run("heartbeat", func(t *testing.T) {
		rec := serve(t, h, "/healthz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ".", rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		serve(t, h, "/api/computeRoutes?origin=Hall")
		rec := serve(t, h, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "escolar_route_queries_total"))
	})

	t.Run("non json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/places", strings.NewReader("a=b"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "10.0.0.7"}, want: "10.0.0.7"},
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "10.0.0.8, 10.0.0.1"}, want: "10.0.0.8"},
		{name: "garbage", headers: map[string]string{"X-Real-IP": "campus"}, want: ""},
		{name: "none", headers: map[string]string{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, realIP(req))
		})
	}
}
