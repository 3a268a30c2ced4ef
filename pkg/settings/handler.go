package settings

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wfhlog/wfhlog/internal/rest"
	"github.com/wfhlog/wfhlog/internal/utils"
)

type NotificationSettingsDTO struct {
	Enabled         bool    `json:"enabled"`
	DayOfWeek       int     `json:"dayOfWeek"`
	DayName         string  `json:"dayName"`
	Hour            int     `json:"hour"`
	Minute          int     `json:"minute"`
	Time            string  `json:"time"`
	DisplayWeekends bool    `json:"displayWeekends"`
	NextScheduled   *string `json:"nextScheduled,omitempty"`
}

type SettingsHandler struct {
	settingsService Service
	clock           utils.Clock
}

func NewSettingsHandler(settingsService Service, clock utils.Clock) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, clock: clock}
}

func (handler *SettingsHandler) GetNotificationSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	settings, err := handler.settingsService.GetNotificationSettings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	handler.writeSettings(w, settings)
}

func (handler *SettingsHandler) UpdateNotificationSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto NotificationSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	settings, err := handler.settingsService.UpdateNotificationSettings(r.Context(),
		NotificationSettings{
			Enabled:         dto.Enabled,
			DayOfWeek:       dto.DayOfWeek,
			Hour:            dto.Hour,
			Minute:          dto.Minute,
			DisplayWeekends: dto.DisplayWeekends,
		})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	handler.writeSettings(w, settings)
}

func (handler *SettingsHandler) ResetNotificationSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	settings, err := handler.settingsService.ResetNotificationSettings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	handler.writeSettings(w, settings)
}

func (handler *SettingsHandler) writeSettings(w http.ResponseWriter, settings NotificationSettings) {
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(handler.settingsToDTO(settings)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SettingsHandler) settingsToDTO(settings NotificationSettings) NotificationSettingsDTO {
	dto := NotificationSettingsDTO{
		Enabled:         settings.Enabled,
		DayOfWeek:       settings.DayOfWeek,
		DayName:         settings.DayName(),
		Hour:            settings.Hour,
		Minute:          settings.Minute,
		Time:            settings.TimeString(),
		DisplayWeekends: settings.DisplayWeekends,
	}
	if next := settings.NextScheduled(handler.clock.Now()); next != nil {
		formatted := next.Format(time.RFC3339)
		dto.NextScheduled = &formatted
	}
	return dto
}
