package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationSettingsClamping(t *testing.T) {
	tests := []struct {
		name                          string
		dayOfWeek, hour, minute       int
		wantDay, wantHour, wantMinute int
	}{
		{"in range", 5, 16, 30, 5, 16, 30},
		{"day below range", 0, 16, 0, 1, 16, 0},
		{"day above range", 9, 16, 0, 7, 16, 0},
		{"hour below range", 3, -1, 0, 3, 0, 0},
		{"hour above range", 3, 24, 0, 3, 23, 0},
		{"minute below range", 3, 16, -5, 3, 16, 0},
		{"minute above range", 3, 16, 75, 3, 16, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewNotificationSettings(true, tt.dayOfWeek, tt.hour, tt.minute, false)

			assert.Equal(t, tt.wantDay, settings.DayOfWeek)
			assert.Equal(t, tt.wantHour, settings.Hour)
			assert.Equal(t, tt.wantMinute, settings.Minute)
		})
	}
}

func TestWeekdayMapping(t *testing.T) {
	assert.Equal(t, time.Monday, NewNotificationSettings(true, 1, 0, 0, false).Weekday())
	assert.Equal(t, time.Friday, NewNotificationSettings(true, 5, 0, 0, false).Weekday())
	assert.Equal(t, time.Sunday, NewNotificationSettings(true, 7, 0, 0, false).Weekday())
}

func TestDayNameAndTimeString(t *testing.T) {
	settings := NewNotificationSettings(true, 5, 16, 0, false)

	assert.Equal(t, "Friday", settings.DayName())
	assert.Equal(t, "16:00", settings.TimeString())
	assert.Equal(t, "09:05", NewNotificationSettings(true, 1, 9, 5, false).TimeString())
}

func TestNextScheduled(t *testing.T) {
	friday16 := NewNotificationSettings(true, 5, 16, 0, false)
	// 2025-01-15 is a Wednesday.
	wednesdayMorning := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	t.Run("disabled returns nil", func(t *testing.T) {
		disabled := friday16
		disabled.Enabled = false
		assert.Nil(t, disabled.NextScheduled(wednesdayMorning))
	})

	t.Run("later this week", func(t *testing.T) {
		next := friday16.NextScheduled(wednesdayMorning)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, time.January, 17, 16, 0, 0, 0, time.UTC), *next)
	})

	t.Run("earlier today rolls to next week", func(t *testing.T) {
		fridayEvening := time.Date(2025, time.January, 17, 17, 0, 0, 0, time.UTC)
		next := friday16.NextScheduled(fridayEvening)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, time.January, 24, 16, 0, 0, 0, time.UTC), *next)
	})

	t.Run("exactly at reminder time rolls to next week", func(t *testing.T) {
		exactly := time.Date(2025, time.January, 17, 16, 0, 0, 0, time.UTC)
		next := friday16.NextScheduled(exactly)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, time.January, 24, 16, 0, 0, 0, time.UTC), *next)
	})

	t.Run("sunday reminder", func(t *testing.T) {
		sunday9 := NewNotificationSettings(true, 7, 9, 0, false)
		next := sunday9.NextScheduled(wednesdayMorning)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, time.January, 19, 9, 0, 0, 0, time.UTC), *next)
	})
}
