package businesshours

import (
	"fmt"
	"math"
	"time"
)

// DueDateResult is the serialized due instant: a calendar date and a clock
// time with seconds always zeroed (the model has minute resolution only).
type DueDateResult struct {
	DueDate string `json:"due_date"` // YYYY-MM-DD
	DueTime string `json:"due_time"` // HH:MM:SS
}

// At parses the result back into an instant in the given location.
func (r DueDateResult) At(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", r.DueDate+" "+r.DueTime, loc)
}

// CalculateDueDateTime returns the instant at which allocatedHours of work
// time, started at start, are exhausted under cfg. Hours are consumed only
// inside business hours; non-work days are skipped entirely.
//
// A zero allocation is not an error: the task is due at closing time on
// start's own calendar date, whatever the day. Exactly exhausting a day lands
// the due instant at closing time on that day and never rolls over.
func CalculateDueDateTime(start time.Time, allocatedHours float64, cfg Config) (DueDateResult, error) {
	if err := cfg.Validate(); err != nil {
		return DueDateResult{}, err
	}
	if math.IsNaN(allocatedHours) || math.IsInf(allocatedHours, 0) || allocatedHours < 0 {
		return DueDateResult{}, ErrInvalidInput
	}
	if allocatedHours == 0 {
		return resultAt(cfg.WorkEnd.On(start)), nil
	}

	current := start
	if !IsWithinBusinessHours(current, cfg) {
		if IsWorkDay(current, cfg) && secondsOfDay(current) < cfg.WorkStart.seconds() {
			// Created before opening: work starts at opening the same day.
			current = cfg.WorkStart.On(current)
		} else {
			current = NextBusinessDayStart(current, cfg)
		}
	}

	remaining := allocatedHours
	hoursLeftToday := float64(cfg.WorkEnd.seconds()-secondsOfDay(current)) / 3600
	if remaining <= hoursLeftToday {
		return resultAt(addHours(current, remaining)), nil
	}

	remaining -= hoursLeftToday
	current = NextBusinessDayStart(current, cfg)
	for remaining > cfg.HoursPerDay() {
		remaining -= cfg.HoursPerDay()
		current = NextBusinessDayStart(current, cfg)
	}
	return resultAt(addHours(current, remaining)), nil
}

func addHours(t time.Time, hours float64) time.Time {
	return t.Add(time.Duration(hours * float64(time.Hour)))
}

// resultAt truncates to the minute: seconds are dropped, not rounded.
func resultAt(t time.Time) DueDateResult {
	return DueDateResult{
		DueDate: t.Format("2006-01-02"),
		DueTime: fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()),
	}
}
