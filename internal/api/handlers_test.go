package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabriel-GH1/calendario-aeronaves/internal/calendar"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/metrics"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/models"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/routes"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/services"
	"github.com/Gabriel-GH1/calendario-aeronaves/internal/store"
)

// One registry for the whole package; promauto registers globally.
var metricsReg = metrics.NewMetricsRegistry()

func newTestServer() (http.Handler, *store.ScheduleStore) {
	exit := models.NewDate(2025, time.September, 12)
	st := store.NewScheduleStore(
		map[string]models.AircraftRecord{
			"pp-fcf": {
				Prefix:      "PP-FCF",
				Name:        "Airbus A320",
				Description: "Aeronave comercial de corredor único",
				Year:        2025,
				Maintenances: []models.MaintenancePeriod{
					{
						Entrada:   models.NewDate(2025, time.July, 21),
						Saida:     models.NewDate(2025, time.September, 16),
						Descricao: "CVA + DOC44",
					},
				},
			},
		},
		map[string]models.AircraftSettings{
			"pp-fcf": {PlannedExit: &exit},
		},
	)
	calendars := services.NewCalendarService(st, calendar.NewCalculator(), 10*time.Minute, nil)
	return routes.RegisterRoutes(st, calendars, metricsReg), st
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "127.0.0.1:54321"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestMetadataRoute(t *testing.T) {
	handler, _ := newTestServer()

	rr := doRequest(t, handler, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var meta struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &meta))
	assert.Equal(t, "API do Calendário de Aeronaves", meta.Message)
	assert.Equal(t, "1.0.0", meta.Version)
	assert.Contains(t, meta.Endpoints, "todasAeronaves")
	assert.Contains(t, meta.Endpoints, "healthCheck")
}

func TestHealthRoute(t *testing.T) {
	handler, _ := newTestServer()

	rr := doRequest(t, handler, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var health struct {
		Status         string `json:"status"`
		TotalAeronaves int    `json:"totalAeronaves"`
		Timestamp      string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, 1, health.TotalAeronaves)
	assert.NotEmpty(t, health.Timestamp)
}

func TestListAircraft(t *testing.T) {
	handler, _ := newTestServer()

	rr := doRequest(t, handler, http.MethodGet, "/api/aeronaves", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var records map[string]models.AircraftRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "PP-FCF", records["pp-fcf"].Prefix)
}

func TestGetAircraft(t *testing.T) {
	handler, _ := newTestServer()

	rr := doRequest(t, handler, http.MethodGet, "/api/aeronaves/pp-fcf", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var rec models.AircraftRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, "PP-FCF", rec.Prefix)
	require.Len(t, rec.Maintenances, 1)
	assert.Equal(t, "CVA + DOC44", rec.Maintenances[0].Descricao)
	assert.Equal(t, "2025-07-21", rec.Maintenances[0].Entrada.String())
}

func TestGetAircraftNotFound(t *testing.T) {
	handler, _ := newTestServer()

	rr := doRequest(t, handler, http.MethodGet, "/api/aeronaves/unknown-id", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "Aeronave não encontrada", payload.Error)
}

func TestGetCalendar(t *testing.T) {
	handler, _ := newTestServer()

	rr := doRequest(t, handler, http.MethodGet, "/api/aeronaves/pp-fcf/calendario", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var grid models.YearGrid
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &grid))
	assert.Equal(t, 2025, grid.Year)
	require.Len(t, grid.Months, 12)

	sep := grid.Months[8]
	assert.Equal(t, "setembro", sep.Name)
	assert.Equal(t, models.StatusCompletedDelayed, sep.Days[15].Status)

	rr = doRequest(t, handler, http.MethodGet, "/api/aeronaves/unknown-id/calendario", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetSummary(t *testing.T) {
	handler, _ := newTestServer()

	rr := doRequest(t, handler, http.MethodGet, "/api/aeronaves/pp-fcf/resumo", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var summary struct {
		Prefix         string `json:"prefix"`
		TotalDiasUteis int    `json:"totalDiasUteis"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, "PP-FCF", summary.Prefix)
	assert.Equal(t, 42, summary.TotalDiasUteis)
}

func TestRequestMetricsUseRoutePattern(t *testing.T) {
	handler, _ := newTestServer()

	doRequest(t, handler, http.MethodGet, "/health", "")
	doRequest(t, handler, http.MethodGet, "/api/aeronaves/pp-fcf", "")

	got := testutil.ToFloat64(metricsReg.HTTPRequestsTotal.WithLabelValues("/health", "GET", "200"))
	assert.GreaterOrEqual(t, got, 1.0, "requests must be counted under the matched route pattern")

	got = testutil.ToFloat64(metricsReg.HTTPRequestsTotal.WithLabelValues("/api/aeronaves/{id}/", "GET", "200"))
	assert.GreaterOrEqual(t, got, 1.0, "parameterized routes keep their pattern, not the raw path")
}

func TestAddMaintenanceRoute(t *testing.T) {
	handler, st := newTestServer()

	body := `{"entrada":"2025-10-06","saida":"2025-10-10","descricao":"Intervalos"}`
	rr := doRequest(t, handler, http.MethodPost, "/api/aeronaves/pp-fcf/manutencoes", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	rec, err := st.GetByID("pp-fcf")
	require.NoError(t, err)
	assert.Len(t, rec.Maintenances, 2)

	// Unknown id
	rr = doRequest(t, handler, http.MethodPost, "/api/aeronaves/unknown-id/manutencoes", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Inverted range
	bad := `{"entrada":"2025-10-10","saida":"2025-10-06","descricao":"x"}`
	rr = doRequest(t, handler, http.MethodPost, "/api/aeronaves/pp-fcf/manutencoes", bad)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateSettingsRoute(t *testing.T) {
	handler, st := newTestServer()

	rr := doRequest(t, handler, http.MethodPatch, "/api/aeronaves/pp-fcf/config", `{"critical":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	settings, ok := st.GetSettings("pp-fcf")
	require.True(t, ok)
	assert.True(t, settings.Critical)
	require.NotNil(t, settings.PlannedExit, "merge must retain the planned exit")
	assert.Equal(t, "2025-09-12", settings.PlannedExit.String())
}

func TestReloadRoute(t *testing.T) {
	handler, st := newTestServer()

	body := `{
		"pr-day": {"prefix": "PR-DAY", "year": 2025, "maintenances": [
			{"entrada": "2025-09-18", "saida": "2025-09-30", "descricao": "Manutenção CVA"}
		]}
	}`
	rr := doRequest(t, handler, http.MethodPut, "/api/aeronaves", body)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, 1, st.Count())
	_, err := st.GetByID("pp-fcf")
	assert.ErrorIs(t, err, store.ErrAircraftNotFound)
	_, err = st.GetByID("pr-day")
	assert.NoError(t, err)
}
