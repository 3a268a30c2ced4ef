package stats

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/wfhlog/wfhlog/internal/rest"
	"github.com/wfhlog/wfhlog/pkg/workday"
)

type WorkTotalsDTO struct {
	HomeHours    float64 `json:"homeHours"`
	OfficeHours  float64 `json:"officeHours"`
	HolidayHours float64 `json:"holidayHours"`
	SickHours    float64 `json:"sickHours"`
	TotalHours   float64 `json:"totalHours"`
	WorkHours    float64 `json:"workHours"`
	LeaveHours   float64 `json:"leaveHours"`
}

type YearlyTotalsDTO struct {
	FinancialYear string        `json:"financialYear"`
	StartYear     int           `json:"startYear"`
	Totals        WorkTotalsDTO `json:"totals"`
}

type StatsHandler struct {
	statsService StatsService
}

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (handler *StatsHandler) GetMonthlyTotals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeBadRequest(w, "Invalid year", "year must be an integer")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeBadRequest(w, "Invalid month", "month must be an integer between 1 and 12")
		return
	}

	totals, err := handler.statsService.GetMonthlyTotals(r.Context(), time.Month(month), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TotalsToDTO(totals)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *StatsHandler) GetYearlyTotals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dateString := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		writeBadRequest(w, "Invalid date format", "date must be in YYYY-MM-DD format")
		return
	}

	totals, fy, err := handler.statsService.GetYearlyTotals(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := YearlyTotalsDTO{
		FinancialYear: fy.DisplayString(),
		StartYear:     fy.StartYear,
		Totals:        TotalsToDTO(totals),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func TotalsToDTO(totals WorkTotals) WorkTotalsDTO {
	return WorkTotalsDTO{
		HomeHours:    totals.HoursFor(workday.Home),
		OfficeHours:  totals.HoursFor(workday.Office),
		HolidayHours: totals.HoursFor(workday.Holiday),
		SickHours:    totals.HoursFor(workday.Sick),
		TotalHours:   totals.TotalHours(),
		WorkHours:    totals.WorkHours(),
		LeaveHours:   totals.LeaveHours(),
	}
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
