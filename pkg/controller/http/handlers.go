package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/koyomi-lab/koyomi/pkg/domain/types"
	"github.com/koyomi-lab/koyomi/pkg/service/render"
	"github.com/m-mizutani/ctxlog"
)

type handlers struct {
	builder interfaces.CalendarBuilder
	html    *render.HTML
	png     *render.PNG
	ics     *render.ICS
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "koyomi",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

func (h *handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	http.Redirect(w, r, fmt.Sprintf("/calendar/%d", year), http.StatusFound)
}

// yearParam parses and bounds-checks the {year} URL parameter
func yearParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

// firstWeekdayParam parses the optional first_weekday query parameter;
// empty selects the server default
func firstWeekdayParam(r *http.Request) (types.Weekday, error) {
	raw := r.URL.Query().Get("first_weekday")
	if raw == "" {
		return "", nil
	}
	return types.ParseWeekday(raw)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// buildYear resolves parameters and builds the year calendar, writing
// the error response itself on failure
func (h *handlers) buildYear(w http.ResponseWriter, r *http.Request) *model.YearCalendar {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil
	}
	first, err := firstWeekdayParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil
	}

	cal, err := h.builder.BuildYear(r.Context(), year, first)
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to build year calendar",
			"year", year, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to build calendar"))
		return nil
	}
	return cal
}

func (h *handlers) handleYearHTML(w http.ResponseWriter, r *http.Request) {
	cal := h.buildYear(w, r)
	if cal == nil {
		return
	}
	w.Header().Set("Content-Type", render.FormatHTML.ContentType())
	if err := h.html.Render(w, cal); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render HTML calendar", "error", err)
	}
}

func (h *handlers) handleYearPNG(w http.ResponseWriter, r *http.Request) {
	cal := h.buildYear(w, r)
	if cal == nil {
		return
	}
	w.Header().Set("Content-Type", render.FormatPNG.ContentType())
	if err := h.png.Render(w, cal); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render PNG calendar", "error", err)
	}
}

func (h *handlers) handleYearICS(w http.ResponseWriter, r *http.Request) {
	cal := h.buildYear(w, r)
	if cal == nil {
		return
	}
	w.Header().Set("Content-Type", render.FormatICS.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=calendar_%d.ics", cal.Year))
	if err := h.ics.Render(w, cal); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render ICS calendar", "error", err)
	}
}

func (h *handlers) handleMonthJSON(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid month %q", chi.URLParam(r, "month")))
		return
	}
	first, err := firstWeekdayParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	grid, err := h.builder.BuildMonth(r.Context(), year, time.Month(month), first)
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to build month grid",
			"year", year, "month", month, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to build calendar"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(grid); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode month grid", "error", err)
	}
}
