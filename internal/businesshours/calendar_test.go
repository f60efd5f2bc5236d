package businesshours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
func localDate(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.Local)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00:00", want: TimeOfDay{Hour: 9}},
		{in: "18:30", want: TimeOfDay{Hour: 18, Minute: 30}},
		{in: " 07:15:30 ", want: TimeOfDay{Hour: 7, Minute: 15, Second: 30}},
		{in: "24:00:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "nine", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestDefaultConfigIsFresh(t *testing.T) {
	a := DefaultConfig()
	a.WorkEnd = TimeOfDay{Hour: 23}
	b := DefaultConfig()
	assert.Equal(t, TimeOfDay{Hour: 18}, b.WorkEnd)
	assert.Equal(t, 9.0, b.HoursPerDay())
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{WorkStart: TimeOfDay{Hour: 18}, WorkEnd: TimeOfDay{Hour: 9}}
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

	cfg = Config{WorkStart: TimeOfDay{Hour: 9}, WorkEnd: TimeOfDay{Hour: 9}}
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

	assert.NoError(t, DefaultConfig().Validate())
}

func TestIsWorkDay(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, IsWorkDay(localDate(2, 12, 0), cfg))  // Tue
	assert.False(t, IsWorkDay(localDate(6, 12, 0), cfg)) // Sat
	assert.False(t, IsWorkDay(localDate(7, 12, 0), cfg)) // Sun

	cfg.ExcludeWeekends = false
	assert.True(t, IsWorkDay(localDate(6, 12, 0), cfg))
}

func TestIsWithinBusinessHours(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"midday on a Tuesday", localDate(2, 12, 0), true},
		{"exactly at opening", localDate(2, 9, 0), true},
		{"exactly at closing", localDate(2, 18, 0), false},
		{"one minute before closing", localDate(2, 17, 59), true},
		{"before opening", localDate(2, 8, 59), false},
		{"saturday midday", localDate(6, 12, 0), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsWithinBusinessHours(tt.at, cfg), tt.name)
	}
}

func TestNextBusinessDayStart(t *testing.T) {
	cfg := DefaultConfig()

	// Tuesday evening -> Wednesday opening.
	got := NextBusinessDayStart(localDate(2, 20, 0), cfg)
	assert.Equal(t, localDate(3, 9, 0), got)

	// Friday -> Monday, skipping the weekend.
	got = NextBusinessDayStart(localDate(5, 10, 0), cfg)
	assert.Equal(t, localDate(8, 9, 0), got)

	// Saturday -> Monday.
	got = NextBusinessDayStart(localDate(6, 10, 0), cfg)
	assert.Equal(t, localDate(8, 9, 0), got)

	cfg.ExcludeWeekends = false
	got = NextBusinessDayStart(localDate(5, 10, 0), cfg)
	assert.Equal(t, localDate(6, 9, 0), got)
}
