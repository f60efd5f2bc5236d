package dto

// DueDateRequest is the JSON body for POST /schedule/due-date.
// Start is optional; missing means "now".
type DueDateRequest struct {
	Start          LocalTime `json:"start"`
	AllocatedHours float64   `json:"allocated_hours"`
}

type DueDateResponse struct {
	DueDate string `json:"due_date"` // YYYY-MM-DD
	DueTime string `json:"due_time"` // HH:MM:SS
}

// ElapsedRequest is the JSON body for POST /schedule/elapsed.
type ElapsedRequest struct {
	Start LocalTime `json:"start" binding:"required"`
	End   LocalTime `json:"end" binding:"required"`
}

type ElapsedResponse struct {
	Hours float64 `json:"hours"`
}
