package dto

import "time"

// UpdateCalendarRequest is the JSON body for PUT /calendar.
type UpdateCalendarRequest struct {
	WorkStartTime   string `json:"work_start_time" binding:"required"` // "HH:MM:SS"
	WorkEndTime     string `json:"work_end_time" binding:"required"`   // "HH:MM:SS"
	ExcludeWeekends *bool  `json:"exclude_weekends" binding:"required"`
}

type CalendarResponse struct {
	WorkStartTime   string     `json:"work_start_time"`
	WorkEndTime     string     `json:"work_end_time"`
	ExcludeWeekends bool       `json:"exclude_weekends"`
	WorkHoursPerDay float64    `json:"work_hours_per_day"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
