package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/wfhlog/wfhlog/internal/rest"
	"github.com/wfhlog/wfhlog/pkg/financial_year"
)

const dateParamLayout = "2006-01-02"

type ExportHandler struct {
	exportService Service
}

func NewExportHandler(exportService Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// DownloadCsv streams a CSV report as an attachment. With startYear it
// covers a full financial year; with from/to it covers a custom range.
func (handler *ExportHandler) DownloadCsv(w http.ResponseWriter, r *http.Request) {
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam != "" || toParam != "" {
		handler.downloadCustomRange(w, r, fromParam, toParam)
		return
	}

	startYear, err := strconv.Atoi(r.URL.Query().Get("startYear"))
	if err != nil {
		writeBadRequest(w, "Invalid startYear", "startYear must be an integer")
		return
	}

	fy := financial_year.ForStartYear(startYear)
	content, err := handler.exportService.ExportYear(r.Context(), fy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeCsvAttachment(w, fy.ExportFileName(), content)
}

func (handler *ExportHandler) downloadCustomRange(w http.ResponseWriter, r *http.Request, fromParam, toParam string) {
	from, err := time.Parse(dateParamLayout, fromParam)
	if err != nil {
		writeBadRequest(w, "Invalid from date", "from must be in YYYY-MM-DD format")
		return
	}
	to, err := time.Parse(dateParamLayout, toParam)
	if err != nil {
		writeBadRequest(w, "Invalid to date", "to must be in YYYY-MM-DD format")
		return
	}

	content, err := handler.exportService.ExportRange(r.Context(), from, to)
	if errors.Is(err, ErrInvalidDateRange) {
		writeBadRequest(w, "Invalid date range", "to must not be before from")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("WFH-Export-%s-%s.csv",
		from.Format(dateParamLayout), to.Format(dateParamLayout))
	writeCsvAttachment(w, filename, content)
}

// SaveToFile writes the report into the configured export directory and
// reports the path back to the caller.
func (handler *ExportHandler) SaveToFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	startYear, err := strconv.Atoi(r.URL.Query().Get("startYear"))
	if err != nil {
		writeBadRequest(w, "Invalid startYear", "startYear must be an integer")
		return
	}

	path, err := handler.exportService.ExportToFile(r.Context(), financial_year.ForStartYear(startYear))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"path": path})
}

func writeCsvAttachment(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
