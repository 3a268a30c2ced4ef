package app

import (
	"database/sql"

	"github.com/wfhlog/wfhlog/internal/config"
	"github.com/wfhlog/wfhlog/internal/utils"
	"github.com/wfhlog/wfhlog/pkg/calendar_month"
	"github.com/wfhlog/wfhlog/pkg/export"
	"github.com/wfhlog/wfhlog/pkg/settings"
	"github.com/wfhlog/wfhlog/pkg/stats"
	"github.com/wfhlog/wfhlog/pkg/workday"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	WorkDayRepo    workday.Repository
	WorkDayService workday.Service
	WorkDayHandler *workday.Handler

	CalendarMonthHandler *calendar_month.Handler

	StatsService *stats.StatsServiceImpl
	StatsHandler *stats.StatsHandler

	CsvExportRenderer *export.CsvExportRendererImpl
	ExportService     *export.ServiceImpl
	ExportHandler     *export.ExportHandler

	SettingsRepo    settings.Repository
	SettingsService settings.Service
	SettingsHandler *settings.SettingsHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.WorkDayRepo = workday.NewRepository(db)
	deps.WorkDayService = workday.NewService(deps.WorkDayRepo)
	deps.WorkDayHandler = workday.NewHandler(deps.WorkDayService)

	deps.CalendarMonthHandler = calendar_month.NewHandler(deps.Clock, cfg.Defaults.DisplayWeekends)

	deps.StatsService = stats.NewStatsService(deps.WorkDayService)
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService)

	deps.CsvExportRenderer = export.NewCsvExportRenderer()
	deps.ExportService = export.NewService(deps.WorkDayService, deps.CsvExportRenderer, cfg.Export.Directory)
	deps.ExportHandler = export.NewExportHandler(deps.ExportService)

	deps.SettingsRepo = settings.NewRepository(db)
	deps.SettingsService = settings.NewService(deps.SettingsRepo)
	deps.SettingsHandler = settings.NewSettingsHandler(deps.SettingsService, deps.Clock)

	return deps
}
