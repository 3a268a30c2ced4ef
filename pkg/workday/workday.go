package workday

import (
	"fmt"
	"time"
)

// WorkType is a trackable hour bucket for a single day. The string value is
// the stable serialization identifier.
type WorkType string

const (
	Home    WorkType = "home"
	Office  WorkType = "office"
	Holiday WorkType = "holiday"
	Sick    WorkType = "sick"
)

// AllWorkTypes returns every work type in fixed order. The order is the
// column order of CSV exports and totals DTOs.
func AllWorkTypes() []WorkType {
	return []WorkType{Home, Office, Holiday, Sick}
}

func (t WorkType) Valid() bool {
	switch t {
	case Home, Office, Holiday, Sick:
		return true
	}
	return false
}

// ParseWorkType converts a serialized identifier back into a WorkType.
func ParseWorkType(s string) (WorkType, error) {
	t := WorkType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown work type: %q", s)
	}
	return t, nil
}

// DayKey normalizes a date to UTC midnight. Every date used as a record
// identity goes through this: storage, lookup and aggregation all compare
// calendar days, never timestamps.
func DayKey(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a).Equal(DayKey(b))
}

// WorkDay is the per-day record: a calendar day plus hours per work type.
// Entries never holds a non-positive value; SetHours maintains that.
type WorkDay struct {
	Date    time.Time
	Entries map[WorkType]float64
}

// New creates an empty record for the given date.
func New(date time.Time) WorkDay {
	return WorkDay{
		Date:    DayKey(date),
		Entries: make(map[WorkType]float64),
	}
}

// SetHours stores hours for a work type. A non-positive value removes the
// category instead, so an explicit zero never ends up persisted.
func (d *WorkDay) SetHours(t WorkType, hours float64) {
	if d.Entries == nil {
		d.Entries = make(map[WorkType]float64)
	}
	if hours > 0 {
		d.Entries[t] = hours
	} else {
		delete(d.Entries, t)
	}
}

// Hours returns the hours recorded for a work type, 0 when absent.
func (d WorkDay) Hours(t WorkType) float64 {
	return d.Entries[t]
}

// TotalHours sums hours across all categories.
func (d WorkDay) TotalHours() float64 {
	var total float64
	for _, hours := range d.Entries {
		total += hours
	}
	return total
}

// HasData reports whether any category has hours recorded.
func (d WorkDay) HasData() bool {
	return len(d.Entries) > 0
}

// IsAdvancedEntry reports whether more than one category is populated.
func (d WorkDay) IsAdvancedEntry() bool {
	return len(d.Entries) > 1
}

// ActiveWorkTypes returns the populated categories in fixed order.
func (d WorkDay) ActiveWorkTypes() []WorkType {
	types := make([]WorkType, 0, len(d.Entries))
	for _, t := range AllWorkTypes() {
		if _, ok := d.Entries[t]; ok {
			types = append(types, t)
		}
	}
	return types
}
