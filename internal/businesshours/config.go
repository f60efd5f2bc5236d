// Package businesshours computes due dates and elapsed work time against an
// organization's work calendar. It is a pure library: no persistence, no I/O,
// no shared state. Instants are treated as naive local times — all calendar
// arithmetic uses the time value's own fields and Location, never converting.
package businesshours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrConfiguration means the work calendar itself is unusable.
	ErrConfiguration = errors.New("work end must be after work start")
	// ErrInvalidInput means an allocation is negative, NaN or infinite.
	ErrInvalidInput = errors.New("allocated hours must be finite and non-negative")
)

// TimeOfDay is a clock time within a day, independent of any date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "HH:MM:SS" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("time of day must be HH:MM or HH:MM:SS, got %q", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("time of day %q: %w", s, err)
		}
		nums[i] = n
	}
	t := TimeOfDay{Hour: nums[0], Minute: nums[1], Second: nums[2]}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Hours returns the time of day as fractional hours since midnight.
func (t TimeOfDay) Hours() float64 {
	return float64(t.seconds()) / 3600
}

// On places the time of day onto the calendar date of d, keeping d's Location.
func (t TimeOfDay) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, t.Second, 0, d.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Config is an immutable work calendar: the daily business-hours window and
// the weekend policy. The zero value is not valid; use DefaultConfig or NewConfig.
type Config struct {
	WorkStart       TimeOfDay
	WorkEnd         TimeOfDay
	ExcludeWeekends bool
}

// DefaultConfig returns a fresh 09:00–18:00 Mon–Fri calendar. Each call
// produces a new value so a caller can never mutate a shared default.
func DefaultConfig() Config {
	return Config{
		WorkStart:       TimeOfDay{Hour: 9},
		WorkEnd:         TimeOfDay{Hour: 18},
		ExcludeWeekends: true,
	}
}

// NewConfig builds a validated Config from the serialized "HH:MM:SS" forms.
// Empty strings fall back to the defaults.
func NewConfig(workStart, workEnd string, excludeWeekends bool) (Config, error) {
	cfg := DefaultConfig()
	cfg.ExcludeWeekends = excludeWeekends
	if strings.TrimSpace(workStart) != "" {
		t, err := ParseTimeOfDay(workStart)
		if err != nil {
			return Config{}, fmt.Errorf("work start: %w", err)
		}
		cfg.WorkStart = t
	}
	if strings.TrimSpace(workEnd) != "" {
		t, err := ParseTimeOfDay(workEnd)
		if err != nil {
			return Config{}, fmt.Errorf("work end: %w", err)
		}
		cfg.WorkEnd = t
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects calendars whose window is empty or inverted.
func (c Config) Validate() error {
	if c.WorkEnd.seconds() <= c.WorkStart.seconds() {
		return ErrConfiguration
	}
	return nil
}

// HoursPerDay is the length of one business day in fractional hours.
func (c Config) HoursPerDay() float64 {
	return float64(c.WorkEnd.seconds()-c.WorkStart.seconds()) / 3600
}
