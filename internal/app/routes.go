package app

import (
	"github.com/gorilla/mux"
	"github.com/wfhlog/wfhlog/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Work days
	r.HandleFunc("/api/workday", deps.WorkDayHandler.GetWorkDay).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/workday", deps.WorkDayHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/workday", deps.WorkDayHandler.UpsertWorkDay).Methods("PUT")
	r.HandleFunc("/api/workday", deps.WorkDayHandler.DeleteWorkDay).Queries("date", "{date}").Methods("DELETE")
	r.HandleFunc("/api/workday", deps.WorkDayHandler.ClearAll).Methods("DELETE")
	r.HandleFunc("/api/workday/financial-years", deps.WorkDayHandler.GetFinancialYears).Methods("GET")

	// Calendar
	r.HandleFunc("/api/calendar/month", deps.CalendarMonthHandler.GetMonth).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats/monthly", deps.StatsHandler.GetMonthlyTotals).Queries("year", "{year}", "month", "{month}").Methods("GET")
	r.HandleFunc("/api/stats/yearly", deps.StatsHandler.GetYearlyTotals).Queries("date", "{date}").Methods("GET")

	// Export
	r.HandleFunc("/api/export/csv", deps.ExportHandler.DownloadCsv).Methods("GET")
	r.HandleFunc("/api/export/file", deps.ExportHandler.SaveToFile).Methods("POST")

	// Settings
	r.HandleFunc("/api/settings/notifications", deps.SettingsHandler.GetNotificationSettings).Methods("GET")
	r.HandleFunc("/api/settings/notifications", deps.SettingsHandler.UpdateNotificationSettings).Methods("PUT")
	r.HandleFunc("/api/settings/notifications/reset", deps.SettingsHandler.ResetNotificationSettings).Methods("POST")
}
