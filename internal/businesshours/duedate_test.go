package businesshours

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDueDateTime(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name     string
		startDay int
		startHr  int
		startMin int
		hours    float64
		want     DueDateResult
	}{
		{
			name:     "fits within the same day",
			startDay: 2, startHr: 9, hours: 8,
			want: DueDateResult{DueDate: "2024-01-02", DueTime: "17:00:00"},
		},
		{
			name:     "exactly exhausts the day, does not roll over",
			startDay: 2, startHr: 9, hours: 9,
			want: DueDateResult{DueDate: "2024-01-02", DueTime: "18:00:00"},
		},
		{
			name:     "exactly fills a friday",
			startDay: 5, startHr: 9, hours: 9,
			want: DueDateResult{DueDate: "2024-01-05", DueTime: "18:00:00"},
		},
		{
			name:     "overflows friday and skips the weekend",
			startDay: 5, startHr: 9, hours: 9.5,
			want: DueDateResult{DueDate: "2024-01-08", DueTime: "09:30:00"},
		},
		{
			name:     "after closing starts at next opening",
			startDay: 2, startHr: 20, hours: 1,
			want: DueDateResult{DueDate: "2024-01-03", DueTime: "10:00:00"},
		},
		{
			name:     "before opening snaps to opening the same day",
			startDay: 2, startHr: 7, hours: 1,
			want: DueDateResult{DueDate: "2024-01-02", DueTime: "10:00:00"},
		},
		{
			name:     "zero hours is due at close of the same day",
			startDay: 2, startHr: 11, hours: 0,
			want: DueDateResult{DueDate: "2024-01-02", DueTime: "18:00:00"},
		},
		{
			name:     "zero hours on a saturday still closes that date",
			startDay: 6, startHr: 11, hours: 0,
			want: DueDateResult{DueDate: "2024-01-06", DueTime: "18:00:00"},
		},
		{
			name:     "weekend start moves to monday",
			startDay: 6, startHr: 11, hours: 2,
			want: DueDateResult{DueDate: "2024-01-08", DueTime: "11:00:00"},
		},
		{
			name:     "fractional allocation keeps minute precision",
			startDay: 2, startHr: 9, startMin: 15, hours: 1.5,
			want: DueDateResult{DueDate: "2024-01-02", DueTime: "10:45:00"},
		},
		{
			name:     "spans several working days",
			startDay: 2, startHr: 14, hours: 20,
			want: DueDateResult{DueDate: "2024-01-04", DueTime: "16:00:00"},
		},
		{
			name:     "a full working week",
			startDay: 2, startHr: 9, hours: 45,
			want: DueDateResult{DueDate: "2024-01-08", DueTime: "18:00:00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateDueDateTime(localDate(tt.startDay, tt.startHr, tt.startMin), tt.hours, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateDueDateTimeCustomWindow(t *testing.T) {
	cfg, err := NewConfig("08:30:00", "16:30:00", true)
	require.NoError(t, err)
	require.Equal(t, 8.0, cfg.HoursPerDay())

	got, err := CalculateDueDateTime(localDate(2, 15, 30), 2, cfg) // 1h left on Tuesday
	require.NoError(t, err)
	assert.Equal(t, DueDateResult{DueDate: "2024-01-03", DueTime: "09:30:00"}, got)
}

func TestCalculateDueDateTimeWeekendsIncluded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludeWeekends = false

	got, err := CalculateDueDateTime(localDate(5, 9, 0), 9.5, cfg)
	require.NoError(t, err)
	assert.Equal(t, DueDateResult{DueDate: "2024-01-06", DueTime: "09:30:00"}, got)
}

func TestCalculateDueDateTimeRejectsBadConfig(t *testing.T) {
	bad := Config{WorkStart: TimeOfDay{Hour: 18}, WorkEnd: TimeOfDay{Hour: 9}, ExcludeWeekends: true}
	_, err := CalculateDueDateTime(localDate(2, 9, 0), 1, bad)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCalculateDueDateTimeRejectsBadAllocation(t *testing.T) {
	cfg := DefaultConfig()
	for _, hours := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := CalculateDueDateTime(localDate(2, 9, 0), hours, cfg)
		assert.ErrorIs(t, err, ErrInvalidInput, "hours %v", hours)
	}
}

// The due-date walk and the elapsed-hours walk must agree on the calendar:
// the business hours between the normalized start and the due instant equal
// the allocation.
func TestDueDateAndElapsedHoursAgree(t *testing.T) {
	cfg := DefaultConfig()
	starts := []struct {
		day, hr int
	}{
		{2, 9},  // Tuesday at opening
		{2, 14}, // Tuesday afternoon
		{5, 16}, // Friday, spills into next week
	}
	for _, s := range starts {
		for hours := 1.0; hours <= 24; hours++ {
			start := localDate(s.day, s.hr, 0)
			due, err := CalculateDueDateTime(start, hours, cfg)
			require.NoError(t, err)

			dueAt, err := due.At(time.Local)
			require.NoError(t, err)

			elapsed, err := CalculateElapsedBusinessHours(start, dueAt, cfg)
			require.NoError(t, err)
			assert.InDelta(t, hours, elapsed, 1e-9, "start day %d %02d:00, %v hours", s.day, s.hr, hours)
		}
	}
}
