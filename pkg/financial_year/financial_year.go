package financial_year

import (
	"fmt"
	"time"
)

// startMonth is July: an Australian financial year runs July 1 to June 30.
const startMonth = time.July

// FinancialYear identifies a July-June accounting period by the calendar
// year containing its July start.
type FinancialYear struct {
	StartYear int
}

// ForStartYear constructs the financial year starting July 1 of the given year.
func ForStartYear(year int) FinancialYear {
	return FinancialYear{StartYear: year}
}

// ForDate classifies a date into its financial year: July-December belongs to
// the year that started in the date's own calendar year, January-June to the
// one that started the year before. This is the single source of truth for
// the July-June boundary; aggregation and export both go through it.
func ForDate(date time.Time) FinancialYear {
	if date.Month() >= startMonth {
		return FinancialYear{StartYear: date.Year()}
	}
	return FinancialYear{StartYear: date.Year() - 1}
}

// StartDate returns July 1 of the start year at UTC midnight.
func (fy FinancialYear) StartDate() time.Time {
	return time.Date(fy.StartYear, startMonth, 1, 0, 0, 0, 0, time.UTC)
}

// EndDate returns June 30 of the following year at UTC midnight.
func (fy FinancialYear) EndDate() time.Time {
	return time.Date(fy.StartYear+1, time.June, 30, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date falls within this financial year,
// applying the same month-split rule as ForDate.
func (fy FinancialYear) Contains(date time.Time) bool {
	return ForDate(date) == fy
}

// Before orders financial years by start year.
func (fy FinancialYear) Before(other FinancialYear) bool {
	return fy.StartYear < other.StartYear
}

// DisplayString returns the label used for selection lists and export file
// names, e.g. "2024/2025".
func (fy FinancialYear) DisplayString() string {
	return fmt.Sprintf("%d/%d", fy.StartYear, fy.StartYear+1)
}

// ExportFileName returns the CSV export file name, e.g.
// "WFH-Export-2024-2025.csv".
func (fy FinancialYear) ExportFileName() string {
	return fmt.Sprintf("WFH-Export-%d-%d.csv", fy.StartYear, fy.StartYear+1)
}
