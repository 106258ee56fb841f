package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarlock/rowflow/internal/models"
)

func TestYearlyTableEndpoint(t *testing.T) {
	db := &DBMock{
		records: []models.Record{
			record("2024-03-01", 5, models.TypeWater),
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/yearly_table?year=2024", nil)

	newMux(db).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result YearlyTableResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 2024, result.Year)
	assert.Len(t, result.DailyMileage, 366)
	assert.Equal(t, 5.0, result.DailyMileage["2024-03-01"])
}

func TestYearlyTableEndpointInvalidYear(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/yearly_table?year=banana", nil)

	newMux(&DBMock{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "four-digit year")
}

func TestMonthlyTotalsEndpoint(t *testing.T) {
	db := &DBMock{
		records: []models.Record{
			record("2024-03-01", 5, models.TypeErg),
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/monthly_totals?year=2024", nil)

	newMux(db).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result MonthlyTotalsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Len(t, result.Totals, 12)
	assert.Equal(t, 5.0, result.Totals["03"]["Erg"])
	assert.Equal(t, 0.0, result.Totals["03"]["Water"])
}

func TestDataEndpoint(t *testing.T) {
	db := &DBMock{
		records: []models.Record{
			record("2024-03-01", 5, models.TypeWater),
			record("2024-02-01", 3, models.TypeErg),
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)

	newMux(db).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result RecordsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	require.Len(t, result.Rows, 2)
	assert.Equal(t, "2024-02-01", result.Rows[0].Date)
	assert.Equal(t, "2024-03-01", result.Rows[1].Date)
}

func TestLogSessionEndpoint(t *testing.T) {
	db := &DBMock{}

	form := url.Values{
		"date":         {"2024-03-01"},
		"distance_km":  {"10"},
		"duration_min": {"50"},
		"session_type": {"Water"},
		"notes":        {"morning row"},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/log",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	newMux(db).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?saved=1&year=2024", rec.Header().Get("Location"))

	require.Len(t, db.records, 1)

	saved := db.records[0]
	assert.Equal(t, 10.0, saved.DistanceKM)
	assert.Equal(t, 50.0, saved.DurationMin)
	assert.Equal(t, 12.0, saved.SpeedKMH)
	assert.Equal(t, models.TypeWater, saved.Type)
	assert.Equal(t, "morning row", saved.Notes)
}

func TestLogSessionDerivesDurationFromSplit(t *testing.T) {
	db := &DBMock{}

	form := url.Values{
		"date":         {"2024-03-01"},
		"distance_km":  {"10"},
		"split":        {"2:30.0"},
		"session_type": {"Erg"},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/log",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	newMux(db).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, db.records, 1)
	assert.Equal(t, 50.0, db.records[0].DurationMin)
}

func TestLogSessionInvalidSplit(t *testing.T) {
	db := &DBMock{}

	form := url.Values{
		"date":        {"2024-03-01"},
		"distance_km": {"10"},
		"split":       {"230"},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/log",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	newMux(db).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, db.records)
}

func TestLogSessionRejectsMissingDuration(t *testing.T) {
	db := &DBMock{}

	// distance alone cannot produce a valid record
	form := url.Values{
		"date":        {"2024-03-01"},
		"distance_km": {"10"},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/log",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	newMux(db).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, db.records)
}

func TestLogSessionRequiresPost(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/log", nil)

	newMux(&DBMock{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	db := &DBMock{
		records: []models.Record{
			record("2024-03-01", 5, models.TypeWater),
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)

	newMux(db).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(
		body,
		"date,distance_km,duration_min,speed_kmh,session_type,notes,created_at",
	))
	assert.Contains(t, body, "2024-03-01,5.00,25.00")
}

func TestIndexPage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?year=2024", nil)

	newMux(&DBMock{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "RowFlow")
	assert.Contains(t, rec.Body.String(), "Cross-Training")
}
