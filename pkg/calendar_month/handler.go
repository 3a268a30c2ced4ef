package calendar_month

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/wfhlog/wfhlog/internal/rest"
	"github.com/wfhlog/wfhlog/internal/utils"
)

type MonthDTO struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Name  string     `json:"name"`
	Weeks [][]string `json:"weeks"`
}

type Handler struct {
	clock utils.Clock
	// displayWeekends is the configured default; the includeWeekends query
	// parameter overrides it per request.
	displayWeekends bool
}

func NewHandler(clock utils.Clock, displayWeekends bool) *Handler {
	return &Handler{clock: clock, displayWeekends: displayWeekends}
}

// GetMonth returns the 6-week grid for the month containing the requested
// date (today when absent).
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date := h.clock.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid date format",
				Details: "date must be in YYYY-MM-DD format",
			})
			return
		}
		date = parsed
	}

	includeWeekends := h.displayWeekends
	if param := r.URL.Query().Get("includeWeekends"); param != "" {
		parsed, err := strconv.ParseBool(param)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid includeWeekends value",
				Details: "includeWeekends must be true or false",
			})
			return
		}
		includeWeekends = parsed
	}

	month := ForDate(date)
	weeks := month.Weeks(time.Sunday)
	if !includeWeekends {
		weeks = WeekdaysOnly(weeks)
	}

	dto := MonthDTO{
		Year:  month.Year,
		Month: int(month.Month),
		Name:  month.Name(),
		Weeks: make([][]string, 0, len(weeks)),
	}
	for _, week := range weeks {
		days := make([]string, 0, len(week))
		for _, day := range week {
			days = append(days, day.Format("2006-01-02"))
		}
		dto.Weeks = append(dto.Weeks, days)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
