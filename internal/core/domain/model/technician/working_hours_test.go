package technician_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdays() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	}
}

// monday returns a Monday (2025-03-10) at the given wall-clock time.
func monday(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	ts := time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	require.Equal(t, time.Monday, ts.Weekday())
	return ts
}

func TestNewWorkingHours(t *testing.T) {
	t.Run("valid_window", func(t *testing.T) {
		wh, err := technician.NewWorkingHours("08:00", "17:00", weekdays())

		require.NoError(t, err)
		assert.Equal(t, "08:00", wh.Start())
		assert.Equal(t, "17:00", wh.End())
		assert.Equal(t, weekdays(), wh.WorkingDays())
	})

	t.Run("deduplicates_and_sorts_days", func(t *testing.T) {
		wh, err := technician.NewWorkingHours("08:00", "17:00", []time.Weekday{
			time.Friday, time.Monday, time.Friday, time.Wednesday,
		})

		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, wh.WorkingDays())
	})

	t.Run("start_after_end_rejected", func(t *testing.T) {
		_, err := technician.NewWorkingHours("18:00", "09:00", weekdays())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("malformed_time_rejected", func(t *testing.T) {
		for _, bad := range []string{"8:00", "08:60", "25:00", "0800", ""} {
			_, err := technician.NewWorkingHours(bad, "17:00", weekdays())
			assert.Error(t, err, "start %q", bad)
		}
	})

	t.Run("empty_days_rejected", func(t *testing.T) {
		_, err := technician.NewWorkingHours("08:00", "17:00", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var wh technician.WorkingHours
		require.Error(t, wh.Validate())
	})
}

func TestWorkingHours_Covers(t *testing.T) {
	wh, err := technician.NewWorkingHours("08:00", "17:00", weekdays())
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		covered bool
	}{
		{"exactly_at_start", monday(t, 8, 0), true},
		{"exactly_at_end", monday(t, 17, 0), true},
		{"one_minute_before_start", monday(t, 7, 59), false},
		{"one_minute_after_end", monday(t, 17, 1), false},
		{"midday", monday(t, 12, 30), true},
		{"weekend", monday(t, 12, 30).AddDate(0, 0, 5), false}, // Saturday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.covered, wh.Covers(tt.now))
		})
	}
}

func TestWorkingHours_IsEqual(t *testing.T) {
	a, err := technician.NewWorkingHours("08:00", "17:00", []time.Weekday{time.Friday, time.Monday})
	require.NoError(t, err)
	b, err := technician.NewWorkingHours("08:00", "17:00", []time.Weekday{time.Monday, time.Friday})
	require.NoError(t, err)
	c, err := technician.NewWorkingHours("09:00", "17:00", []time.Weekday{time.Monday, time.Friday})
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
