package domain

import "time"

// CalendarSettings is the organization-wide work calendar as persisted.
// Times are kept in their serialized "HH:MM:SS" form; parsing and arithmetic
// happen in the businesshours package.
type CalendarSettings struct {
	ID              int64
	WorkStartTime   string
	WorkEndTime     string
	ExcludeWeekends bool
	UpdatedAt       time.Time
}
