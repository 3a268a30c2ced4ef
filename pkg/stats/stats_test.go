package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wfhlog/wfhlog/pkg/workday"
)

func record(date time.Time, entries map[workday.WorkType]float64) workday.WorkDay {
	day := workday.New(date)
	for t, h := range entries {
		day.SetHours(t, h)
	}
	return day
}

func TestMonthlyTotals(t *testing.T) {
	days := []workday.WorkDay{
		record(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 4, workday.Office: 3}),
		record(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 6, workday.Office: 2}),
		record(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 5, workday.Office: 5}),
	}

	totals := MonthlyTotals(days, time.January, 2025)

	assert.Equal(t, 10.0, totals.HoursFor(workday.Home))
	assert.Equal(t, 5.0, totals.HoursFor(workday.Office))
	assert.Equal(t, 0.0, totals.HoursFor(workday.Holiday))
	assert.Equal(t, 15.0, totals.TotalHours())
}

func TestMonthlyTotalsExcludesOtherYears(t *testing.T) {
	days := []workday.WorkDay{
		record(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 8}),
		record(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 4}),
	}

	totals := MonthlyTotals(days, time.January, 2025)

	assert.Equal(t, 4.0, totals.HoursFor(workday.Home))
}

func TestMonthlyTotalsEmptyCollection(t *testing.T) {
	totals := MonthlyTotals(nil, time.January, 2025)

	assert.Equal(t, 0.0, totals.TotalHours())
	assert.Equal(t, 0.0, totals.WorkHours())
	assert.Equal(t, 0.0, totals.LeaveHours())
}

func TestMonthlyTotalsAdditiveAndOrderIndependent(t *testing.T) {
	subsetA := []workday.WorkDay{
		record(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 4}),
		record(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Office: 3}),
	}
	subsetB := []workday.WorkDay{
		record(time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 2, workday.Holiday: 8}),
	}

	union := append(append([]workday.WorkDay{}, subsetA...), subsetB...)
	reversed := append(append([]workday.WorkDay{}, subsetB...), subsetA...)

	fromUnion := MonthlyTotals(union, time.January, 2025)
	fromReversed := MonthlyTotals(reversed, time.January, 2025)
	fromA := MonthlyTotals(subsetA, time.January, 2025)
	fromB := MonthlyTotals(subsetB, time.January, 2025)

	for _, wt := range workday.AllWorkTypes() {
		assert.Equal(t, fromUnion.HoursFor(wt), fromA.HoursFor(wt)+fromB.HoursFor(wt), "work type %s", wt)
		assert.Equal(t, fromUnion.HoursFor(wt), fromReversed.HoursFor(wt), "work type %s", wt)
	}
}

func TestYearlyTotalsFinancialYearSplit(t *testing.T) {
	days := []workday.WorkDay{
		// Inside FY 2024/2025.
		record(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 8}),
		record(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Office: 6}),
		record(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Sick: 4}),
		// Outside: June of start year and July of end year.
		record(time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 8}),
		record(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 8}),
		// Entirely different year.
		record(time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 8}),
	}

	tests := []struct {
		name          string
		referenceDate time.Time
	}{
		{"reference in first half", time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{"reference in second half", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := YearlyTotals(days, tt.referenceDate)

			assert.Equal(t, 8.0, totals.HoursFor(workday.Home))
			assert.Equal(t, 6.0, totals.HoursFor(workday.Office))
			assert.Equal(t, 4.0, totals.HoursFor(workday.Sick))
			assert.Equal(t, 18.0, totals.TotalHours())
		})
	}
}

func TestWorkAndLeaveHours(t *testing.T) {
	days := []workday.WorkDay{
		record(time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{
			workday.Home: 4, workday.Office: 2, workday.Holiday: 1, workday.Sick: 1,
		}),
	}

	totals := YearlyTotals(days, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 6.0, totals.WorkHours())
	assert.Equal(t, 2.0, totals.LeaveHours())
	assert.Equal(t, 8.0, totals.TotalHours())
}

func TestAggregationDoesNotMutateInput(t *testing.T) {
	days := []workday.WorkDay{
		record(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), map[workday.WorkType]float64{workday.Home: 4}),
	}

	first := MonthlyTotals(days, time.January, 2025)
	second := MonthlyTotals(days, time.January, 2025)

	assert.Equal(t, first.HoursFor(workday.Home), second.HoursFor(workday.Home))
	assert.Equal(t, 4.0, days[0].Hours(workday.Home))
}
