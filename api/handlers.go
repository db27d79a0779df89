/*
handlers.go - HTTP handlers for the hours reconciliation API

PURPOSE:

	Exposes the reconciliation engine over REST. Handlers parse and validate
	the boundary format (dd/mm/yyyy dates, HH:MM times), delegate to the
	engine, and serialize responses.

ENDPOINTS:

	GET    /api/states                   List Brazilian states
	GET    /api/holidays/{year}/{region} Resolved holidays for one year
	GET    /api/holidays                 List declared holidays (?uf=)
	POST   /api/holidays                 Declare a holiday
	DELETE /api/holidays/{id}            Remove a declared holiday
	POST   /api/analyze                  Run a reconciliation analysis
	POST   /api/export                   Render records to XLSX

ERROR HANDLING:

	Errors are returned as JSON with appropriate HTTP status:
	- 400: Caller input errors (inverted period, misaligned hour list,
	       unparseable dates)
	- 500: Store or rendering failures
	Individual malformed time values are NOT errors; the engine absorbs them.

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Wisley56/Apontamento-de-Horas/export"
	"github.com/Wisley56/Apontamento-de-Horas/holidays"
	"github.com/Wisley56/Apontamento-de-Horas/store/sqlite"
	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// exceptionLabels maps declared exception categories to display labels.
// Unknown categories pass through verbatim.
var exceptionLabels = map[string]string{
	"ferias":         "Férias",
	"afastamento":    "Afastamento",
	"atestado":       "Atestado",
	"banco":          "Banco de Horas",
	"feriado_manual": "Feriado Manual",
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Engine   timesheet.Config
	Resolver timesheet.HolidayResolver

	source holidays.Source
}

// NewHandler wires the holiday resolver over the static calendar plus the
// declared-holiday store. A nil store resolves against the tables alone.
func NewHandler(store *sqlite.Store, engine timesheet.Config) *Handler {
	src := holidays.StoreSource{Base: holidays.Calendar{}}
	if store != nil {
		src.Store = store
	}
	return &Handler{
		Store:    store,
		Engine:   engine,
		Resolver: holidays.Resolver{Source: src},
		source:   src,
	}
}

// =============================================================================
// STATES
// =============================================================================

// ListStates returns all Brazilian states.
// GET /api/states
func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, holidays.States())
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// ListYearHolidays returns the resolved holiday map (static tables plus
// declared entries) for one year and region, keyed by dd/mm/yyyy.
// GET /api/holidays/{year}/{region}
func (h *Handler) ListYearHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	period := timesheet.Period{
		Start: timesheet.NewDate(year, time.January, 1),
		End:   timesheet.NewDate(year, time.December, 31),
	}
	resolved, uf, err := holidays.ResolvePeriod(r.Context(), h.source, period, chi.URLParam(r, "region"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve holidays", err)
		return
	}

	byDate := make(map[string]string, len(resolved))
	for date, name := range resolved {
		byDate[date.FormatBR()] = name
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"holidays": byDate,
		"state":    string(uf),
	})
}

// ListDeclaredHolidays returns the user-declared holidays for a UF.
// GET /api/holidays?uf=SP
func (h *Handler) ListDeclaredHolidays(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeJSON(w, http.StatusOK, map[string]any{"holidays": []HolidayDTO{}})
		return
	}
	uf, _ := holidays.NormalizeUF(r.URL.Query().Get("uf"))

	declared, err := h.Store.ListHolidays(r.Context(), uf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	dtos := make([]HolidayDTO, 0, len(declared))
	for _, d := range declared {
		dtos = append(dtos, HolidayDTO{
			ID:   d.ID,
			UF:   string(d.UF),
			Date: d.Date.FormatBR(),
			Name: d.Name,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"holidays": dtos})
}

// CreateHoliday declares an ad-hoc holiday for a UF.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusInternalServerError, "Holiday store not configured", nil)
		return
	}

	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Date == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Date and name are required", nil)
		return
	}

	date, err := timesheet.ParseBR(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use dd/mm/yyyy)", err)
		return
	}
	uf, _ := holidays.NormalizeUF(req.UF)

	declared := holidays.Declared{
		ID:   uuid.NewString(),
		UF:   uf,
		Date: date,
		Name: req.Name,
	}
	if err := h.Store.SaveHoliday(r.Context(), declared); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "created",
		"holiday": declared.ID,
	})
}

// DeleteHoliday removes a declared holiday.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusInternalServerError, "Holiday store not configured", nil)
		return
	}
	if err := h.Store.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// ANALYSIS
// =============================================================================

// Analyze runs one reconciliation over the requested range.
// POST /api/analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	start, err := timesheet.ParseBR(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date (use dd/mm/yyyy)", err)
		return
	}

	end := start
	if req.SelectionType != "single" {
		if req.EndDate == "" {
			writeError(w, http.StatusBadRequest, "End date is required for period selection", nil)
			return
		}
		end, err = timesheet.ParseBR(req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid end date (use dd/mm/yyyy)", err)
			return
		}
	}

	exceptions := timesheet.ManualExceptions{}
	for _, exc := range req.ManualExceptions {
		date, err := timesheet.ParseBR(exc.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid exception date %q", exc.Date), err)
			return
		}
		label, ok := exceptionLabels[exc.Type]
		if !ok {
			label = exc.Type
		}
		exceptions[date] = label
	}

	result, err := timesheet.Analyze(r.Context(), timesheet.Request{
		Period:        timesheet.Period{Start: start, End: end},
		Region:        req.State,
		ReportedTimes: req.WorkedHours,
		Exceptions:    exceptions,
		Config:        h.Engine,
	}, h.Resolver)
	if err != nil {
		if timesheet.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid analysis request", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Analysis failed", err)
		}
		return
	}

	days := make([]DayResultDTO, len(result.Days))
	for i, rec := range result.Days {
		days[i] = dayRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Days:    days,
		Summary: summaryDTO(result.Summary, result.RegionUsed),
	})
}

// =============================================================================
// EXPORT
// =============================================================================

// Export renders the submitted records to an XLSX attachment.
// POST /api/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rows := make([]export.Day, len(req.Days))
	for i, d := range req.Days {
		rows[i] = export.Day{
			Date:              d.Date,
			Weekday:           d.DayOfWeek,
			WorkedTime:        d.WorkedTime,
			RedmineValue:      d.RedmineValue,
			DayType:           d.DayType,
			Status:            timesheet.Status(d.Status),
			StatusDescription: d.StatusDescription,
		}
		if d.ManualStatus != nil {
			s := timesheet.Status(*d.ManualStatus)
			rows[i].ManualStatus = &s
		}
	}

	file, err := export.Render(rows)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render spreadsheet", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.DefaultFilename)
	if err := file.Write(w); err != nil {
		// Headers are gone; nothing left to do but log via the request logger.
		return
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
