package stats

import (
	"time"

	"github.com/wfhlog/wfhlog/pkg/financial_year"
	"github.com/wfhlog/wfhlog/pkg/workday"
)

// WorkTotals holds summed hours per work type over some period. Absent
// categories read as 0.
type WorkTotals struct {
	Hours map[workday.WorkType]float64
}

func NewWorkTotals() WorkTotals {
	return WorkTotals{Hours: make(map[workday.WorkType]float64)}
}

// HoursFor returns the summed hours for a work type, 0 when none recorded.
func (t WorkTotals) HoursFor(wt workday.WorkType) float64 {
	return t.Hours[wt]
}

// TotalHours sums every category.
func (t WorkTotals) TotalHours() float64 {
	var total float64
	for _, hours := range t.Hours {
		total += hours
	}
	return total
}

// WorkHours sums the categories spent working (home + office).
func (t WorkTotals) WorkHours() float64 {
	return t.Hours[workday.Home] + t.Hours[workday.Office]
}

// LeaveHours sums the categories spent away (holiday + sick).
func (t WorkTotals) LeaveHours() float64 {
	return t.Hours[workday.Holiday] + t.Hours[workday.Sick]
}

func (t WorkTotals) add(day workday.WorkDay) {
	for wt, hours := range day.Entries {
		t.Hours[wt] += hours
	}
}

// MonthlyTotals sums hours per category over the records whose calendar
// month and year match exactly. Pure: the input slice is not modified.
func MonthlyTotals(days []workday.WorkDay, month time.Month, year int) WorkTotals {
	totals := NewWorkTotals()
	for _, day := range days {
		if day.Date.Month() == month && day.Date.Year() == year {
			totals.add(day)
		}
	}
	return totals
}

// YearlyTotals sums hours per category over the records falling in the
// financial year containing the reference date. Membership uses the same
// July split as financial_year.ForDate: records in the start year count from
// July on, records in the following year count through June.
func YearlyTotals(days []workday.WorkDay, referenceDate time.Time) WorkTotals {
	fy := financial_year.ForDate(referenceDate)

	totals := NewWorkTotals()
	for _, day := range days {
		year := day.Date.Year()
		month := day.Date.Month()
		switch year {
		case fy.StartYear:
			if month >= time.July {
				totals.add(day)
			}
		case fy.StartYear + 1:
			if month <= time.June {
				totals.add(day)
			}
		}
	}
	return totals
}
