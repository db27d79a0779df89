/*
handlers_test.go - HTTP-level tests for the reconciliation API

Exercises the full stack: router, handlers, holiday resolution (static
calendar + declared store on in-memory SQLite) and the engine.
*/
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wisley56/Apontamento-de-Horas/api"
	"github.com/Wisley56/Apontamento-de-Horas/store/sqlite"
	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) http.Handler {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	h := api.NewHandler(store, timesheet.DefaultConfig())
	return api.NewRouter(h, api.RouterOptions{StaticDir: t.TempDir()})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// =============================================================================
// STATES AND HOLIDAYS
// =============================================================================

func TestListStates(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/states", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	states := decode[[]map[string]string](t, rec)
	assert.Len(t, states, 27)
	assert.Equal(t, "AC", states[0]["code"])
}

func TestListYearHolidays(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/holidays/2024/SP", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Holidays map[string]string `json:"holidays"`
		State    string            `json:"state"`
	}](t, rec)
	assert.Equal(t, "SP", body.State)
	assert.Equal(t, "Confraternização Universal", body.Holidays["01/01/2024"])
	assert.Equal(t, "Revolução Constitucionalista", body.Holidays["09/07/2024"])
}

func TestDeclareHoliday_AppearsInResolution(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/holidays", map[string]string{
		"uf":   "SP",
		"date": "25/01/2024",
		"name": "Aniversário de São Paulo",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[map[string]string](t, rec)
	require.NotEmpty(t, created["holiday"])

	rec = doJSON(t, srv, http.MethodGet, "/api/holidays/2024/SP", nil)
	body := decode[struct {
		Holidays map[string]string `json:"holidays"`
	}](t, rec)
	assert.Equal(t, "Aniversário de São Paulo", body.Holidays["25/01/2024"])

	// And the declared date now skips reconciliation in an analysis.
	analyze := doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "single",
		"start_date":     "25/01/2024",
		"state":          "SP",
		"worked_hours":   []string{"08:00"},
	})
	require.Equal(t, http.StatusOK, analyze.Code)
	result := decode[struct {
		Days []map[string]any `json:"days"`
	}](t, analyze)
	assert.Equal(t, "ignorado", result.Days[0]["status"])

	del := doJSON(t, srv, http.MethodDelete, "/api/holidays/"+created["holiday"], nil)
	assert.Equal(t, http.StatusOK, del.Code)
}

// =============================================================================
// ANALYZE
// =============================================================================

func TestAnalyze_SingleWorkday(t *testing.T) {
	srv := newTestServer(t)

	// 15/01/2024 is a plain Monday in SP.
	rec := doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "single",
		"start_date":     "15/01/2024",
		"state":          "SP",
		"worked_hours":   []string{"08:01"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Days []struct {
			Status       string `json:"status"`
			RedmineValue string `json:"redmine_value"`
			DayOfWeek    string `json:"day_of_week"`
		} `json:"days"`
		Summary struct {
			WorkdaysAnalyzed     int     `json:"workdays_analyzed"`
			DaysOK               int     `json:"days_ok"`
			ConformityPercentage float64 `json:"conformity_percentage"`
			State                string  `json:"state"`
		} `json:"summary"`
	}](t, rec)

	require.Len(t, body.Days, 1)
	assert.Equal(t, "confere", body.Days[0].Status)
	assert.Equal(t, "8.02", body.Days[0].RedmineValue)
	assert.Equal(t, "Segunda", body.Days[0].DayOfWeek)
	assert.Equal(t, 1, body.Summary.WorkdaysAnalyzed)
	assert.Equal(t, 1, body.Summary.DaysOK)
	assert.Equal(t, 100.0, body.Summary.ConformityPercentage)
	assert.Equal(t, "SP", body.Summary.State)
}

func TestAnalyze_ManualExceptionCategoryLabels(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "single",
		"start_date":     "15/01/2024",
		"state":          "SP",
		"worked_hours":   []string{"08:00"},
		"manual_exceptions": []map[string]string{
			{"date": "15/01/2024", "type": "ferias"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Days []struct {
			Status    string `json:"status"`
			DayType   string `json:"day_type"`
			IsIgnored bool   `json:"is_ignored"`
		} `json:"days"`
	}](t, rec)
	assert.Equal(t, "ignorado", body.Days[0].Status)
	assert.Equal(t, "Férias", body.Days[0].DayType)
	assert.True(t, body.Days[0].IsIgnored)
}

func TestAnalyze_UnknownStateFallsBackToDefault(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "single",
		"start_date":     "15/01/2024",
		"state":          "ZZ",
		"worked_hours":   []string{"08:00"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Summary struct {
			State string `json:"state"`
		} `json:"summary"`
	}](t, rec)
	assert.Equal(t, "SP", body.Summary.State)
}

func TestAnalyze_CallerInputErrors(t *testing.T) {
	srv := newTestServer(t)

	// End before start.
	rec := doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "period",
		"start_date":     "10/01/2024",
		"end_date":       "05/01/2024",
		"state":          "SP",
		"worked_hours":   []string{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Hour list not matching the range.
	rec = doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "period",
		"start_date":     "01/01/2024",
		"end_date":       "07/01/2024",
		"state":          "SP",
		"worked_hours":   []string{"08:00"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unparseable boundary date.
	rec = doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "single",
		"start_date":     "2024-01-15",
		"state":          "SP",
		"worked_hours":   []string{"08:00"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Period selection without an end date.
	rec = doJSON(t, srv, http.MethodPost, "/api/analyze", map[string]any{
		"selection_type": "period",
		"start_date":     "01/01/2024",
		"state":          "SP",
		"worked_hours":   []string{"08:00"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// EXPORT
// =============================================================================

func TestExport_ReturnsWorkbook(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/export", map[string]any{
		"days": []map[string]any{
			{
				"date":               "15/01/2024",
				"day_of_week":        "Segunda",
				"worked_time":        "08:00",
				"redmine_value":      "8.00",
				"status":             "confere",
				"status_description": "Confere",
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "apontamento_resultado.xlsx")
	assert.NotZero(t, rec.Body.Len())
}
