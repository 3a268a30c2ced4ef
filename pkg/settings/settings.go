package settings

import (
	"fmt"
	"time"
)

// NotificationSettings configures the weekly reminder to fill in the
// timesheet. DayOfWeek runs 1 (Monday) through 7 (Sunday).
type NotificationSettings struct {
	Enabled         bool
	DayOfWeek       int
	Hour            int
	Minute          int
	DisplayWeekends bool
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:         false,
		DayOfWeek:       5, // Friday
		Hour:            16,
		Minute:          0,
		DisplayWeekends: false,
	}
}

// NewNotificationSettings clamps every field into its valid range rather
// than rejecting out-of-range input.
func NewNotificationSettings(enabled bool, dayOfWeek, hour, minute int, displayWeekends bool) NotificationSettings {
	return NotificationSettings{
		Enabled:         enabled,
		DayOfWeek:       clamp(dayOfWeek, 1, 7),
		Hour:            clamp(hour, 0, 23),
		Minute:          clamp(minute, 0, 59),
		DisplayWeekends: displayWeekends,
	}
}

// Weekday maps the 1-7 day number onto time.Weekday (7 is Sunday).
func (s NotificationSettings) Weekday() time.Weekday {
	return time.Weekday(s.DayOfWeek % 7)
}

func (s NotificationSettings) DayName() string {
	return s.Weekday().String()
}

// TimeString renders the reminder time as "16:00".
func (s NotificationSettings) TimeString() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// NextScheduled returns the next reminder occurrence strictly after now,
// or nil when notifications are disabled. A reminder time already passed
// this week rolls over to the same weekday next week.
func (s NotificationSettings) NextScheduled(now time.Time) *time.Time {
	if !s.Enabled {
		return nil
	}

	for offset := 0; offset <= 7; offset++ {
		candidate := time.Date(now.Year(), now.Month(), now.Day()+offset,
			s.Hour, s.Minute, 0, 0, now.Location())
		if candidate.Weekday() == s.Weekday() && candidate.After(now) {
			return &candidate
		}
	}
	return nil
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
