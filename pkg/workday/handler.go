package workday

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wfhlog/wfhlog/internal/rest"
)

type WorkDayDTO struct {
	Date            string             `json:"date"`
	WorkEntries     map[string]float64 `json:"workEntries"`
	TotalHours      float64            `json:"totalHours"`
	IsAdvancedEntry bool               `json:"isAdvancedEntry"`
}

type FinancialYearDTO struct {
	StartYear int    `json:"startYear"`
	Label     string `json:"label"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetWorkDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	day, err := h.service.GetWorkDay(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if day == nil {
		http.Error(w, "No work day recorded for date", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(WorkDayToDTO(*day)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]WorkDayDTO, 0, len(days))
	for _, day := range days {
		dtos = append(dtos, WorkDayToDTO(day))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpsertWorkDay(w http.ResponseWriter, r *http.Request) {
	log.Debug("Upserting work day")
	w.Header().Set("Content-Type", "application/json")

	var dto WorkDayDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	day, err := DTOToWorkDay(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid work day",
			Details: err.Error(),
		})
		return
	}

	if err := h.service.UpdateWorkDay(r.Context(), day); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(WorkDayToDTO(day)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteWorkDay(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	if err := h.service.DeleteWorkDay(r.Context(), date); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetFinancialYears(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	years, err := h.service.FinancialYears(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]FinancialYearDTO, 0, len(years))
	for _, fy := range years {
		dtos = append(dtos, FinancialYearDTO{
			StartYear: fy.StartYear,
			Label:     fy.DisplayString(),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func WorkDayToDTO(day WorkDay) WorkDayDTO {
	entries := make(map[string]float64, len(day.Entries))
	for t, hours := range day.Entries {
		entries[string(t)] = hours
	}
	return WorkDayDTO{
		Date:            DayKey(day.Date).Format(dateLayout),
		WorkEntries:     entries,
		TotalHours:      day.TotalHours(),
		IsAdvancedEntry: day.IsAdvancedEntry(),
	}
}

func DTOToWorkDay(dto WorkDayDTO) (WorkDay, error) {
	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		return WorkDay{}, err
	}

	day := New(date)
	for name, hours := range dto.WorkEntries {
		t, err := ParseWorkType(name)
		if err != nil {
			return WorkDay{}, err
		}
		day.SetHours(t, hours)
	}
	return day, nil
}

func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	value := r.URL.Query().Get(name)
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid " + name + " format",
			Details: name + " must be in YYYY-MM-DD format",
		})
		return time.Time{}, false
	}
	return DayKey(date), true
}
