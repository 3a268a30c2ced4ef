package calendar_month

import (
	"time"
)

// gridWeeks is the fixed number of week rows in a month grid. Six rows always
// cover a month regardless of which weekday the 1st falls on.
const gridWeeks = 6

const daysPerWeek = 7

// CalendarMonth identifies a single (year, month) unit and derives its
// display grid. All dates it produces are UTC midnight.
type CalendarMonth struct {
	Year  int
	Month time.Month
}

// ForDate constructs the month containing the given date.
func ForDate(date time.Time) CalendarMonth {
	return CalendarMonth{Year: date.Year(), Month: date.Month()}
}

// FirstDay returns the 1st of the month at UTC midnight.
func (m CalendarMonth) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Name returns the month label, e.g. "July 2024".
func (m CalendarMonth) Name() string {
	return m.FirstDay().Format("January 2006")
}

// Next returns the following month, rolling over December to January.
func (m CalendarMonth) Next() CalendarMonth {
	return ForDate(m.FirstDay().AddDate(0, 1, 0))
}

// Previous returns the preceding month, rolling over January to December.
func (m CalendarMonth) Previous() CalendarMonth {
	return ForDate(m.FirstDay().AddDate(0, -1, 0))
}

// Contains reports whether the date falls in this month.
func (m CalendarMonth) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}

// Weeks returns the month's grid: exactly 6 weeks of 7 consecutive days,
// starting from the first firstWeekday on or before the 1st of the month.
// The first weekday is passed explicitly instead of read from a locale so
// the grid is deterministic.
func (m CalendarMonth) Weeks(firstWeekday time.Weekday) [][]time.Time {
	first := m.FirstDay()
	offset := (int(first.Weekday()) - int(firstWeekday) + daysPerWeek) % daysPerWeek
	current := first.AddDate(0, 0, -offset)

	weeks := make([][]time.Time, 0, gridWeeks)
	for w := 0; w < gridWeeks; w++ {
		week := make([]time.Time, 0, daysPerWeek)
		for d := 0; d < daysPerWeek; d++ {
			week = append(week, current)
			current = current.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// WeekdaysOnly drops Saturday and Sunday from each week, preserving week
// ordering and the order of the remaining days.
func WeekdaysOnly(weeks [][]time.Time) [][]time.Time {
	filtered := make([][]time.Time, 0, len(weeks))
	for _, week := range weeks {
		days := make([]time.Time, 0, daysPerWeek-2)
		for _, day := range week {
			if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
				days = append(days, day)
			}
		}
		filtered = append(filtered, days)
	}
	return filtered
}
