package businesshours

import "time"

// IsWorkDay reports whether t falls on a working day under cfg.
func IsWorkDay(t time.Time, cfg Config) bool {
	if !cfg.ExcludeWeekends {
		return true
	}
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsWithinBusinessHours reports whether t is inside the business-hours window:
// start inclusive, end exclusive. An instant exactly at closing time is outside.
func IsWithinBusinessHours(t time.Time, cfg Config) bool {
	if !IsWorkDay(t, cfg) {
		return false
	}
	sec := secondsOfDay(t)
	return sec >= cfg.WorkStart.seconds() && sec < cfg.WorkEnd.seconds()
}

// NextBusinessDayStart returns opening time on the first working day strictly
// after t's date. The loop is general so the weekend policy could grow without
// touching callers.
func NextBusinessDayStart(t time.Time, cfg Config) time.Time {
	next := cfg.WorkStart.On(t.AddDate(0, 0, 1))
	for !IsWorkDay(next, cfg) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
