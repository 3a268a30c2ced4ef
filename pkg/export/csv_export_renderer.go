package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wfhlog/wfhlog/pkg/financial_year"
	"github.com/wfhlog/wfhlog/pkg/workday"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// hoursPerDayEquivalent is the divisor turning recorded hours into
// day-equivalent fractions in the exported report.
const hoursPerDayEquivalent = 8.0

var csvHeader = []string{
	"date", "day",
	"home days", "office days", "holiday days", "sick days",
	"home hours", "office hours", "holiday hours", "sick hours",
}

// DayLookup resolves the record for a calendar day, nil when none exists.
type DayLookup func(date time.Time) *workday.WorkDay

type CsvExportRenderer interface {
	Render(fy financial_year.FinancialYear, lookup DayLookup) (string, error)
	RenderRange(from time.Time, to time.Time, lookup DayLookup) (string, error)
}

type CsvExportRendererImpl struct {
}

func NewCsvExportRenderer() *CsvExportRendererImpl {
	return &CsvExportRendererImpl{}
}

// Render produces the full-year report: one row per calendar day of the
// financial year, inclusive of both boundaries. Days without a record
// render as zero rows.
func (t *CsvExportRendererImpl) Render(fy financial_year.FinancialYear, lookup DayLookup) (string, error) {
	return t.RenderRange(fy.StartDate(), fy.EndDate(), lookup)
}

func (t *CsvExportRendererImpl) RenderRange(from time.Time, to time.Time, lookup DayLookup) (string, error) {
	from = workday.DayKey(from)
	to = workday.DayKey(to)
	if to.Before(from) {
		return "", ErrInvalidDateRange
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.Write(csvHeader); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if err := writer.Write(rowForDay(date, lookup(date))); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func rowForDay(date time.Time, day *workday.WorkDay) []string {
	row := make([]string, 0, len(csvHeader))
	row = append(row, date.Format("02/01/2006"), date.Weekday().String())

	hours := func(wt workday.WorkType) float64 {
		if day == nil {
			return 0
		}
		return day.Hours(wt)
	}

	for _, wt := range workday.AllWorkTypes() {
		row = append(row, formatDays(hours(wt)))
	}
	for _, wt := range workday.AllWorkTypes() {
		row = append(row, formatHours(hours(wt)))
	}
	return row
}

// formatDays converts hours into a day-equivalent fraction rounded to one
// decimal, half away from zero (6h -> "0.8").
func formatDays(hours float64) string {
	days := math.Round(hours/hoursPerDayEquivalent*10) / 10
	return strconv.FormatFloat(days, 'f', 1, 64)
}

// formatHours prints hours with at least one decimal place: whole values
// as "8.0", fractional values with their natural precision ("7.25").
func formatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return strconv.FormatFloat(hours, 'f', 1, 64)
	}
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
