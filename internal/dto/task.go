package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LocalTime parses a JSON datetime as either date-only ("2006-01-02"),
// a naive local datetime ("2006-01-02T15:04:05") or RFC3339. Date-only is
// taken as start of that day in the local zone; the work calendar operates
// on naive local times.
type LocalTime struct{ t *time.Time }

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		lt.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",          // date only
		"2006-01-02T15:04:05", // naive local datetime
		time.RFC3339,
		time.RFC3339Nano,
	}
	for _, layout := range layouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			lt.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("use date (YYYY-MM-DD), local datetime or RFC3339")
}

// Ptr returns *time.Time for use in service/domain.
func (lt LocalTime) Ptr() *time.Time { return lt.t }

type CreateTaskRequest struct {
	Title          string   `json:"title" binding:"required,min=1,max=120"`
	Description    string   `json:"description" binding:"max=1000"`
	AllocatedHours *float64 `json:"allocated_hours"` // optional: missing means due by end of today
}

type UpdateTaskRequest struct {
	Title          *string  `json:"title" binding:"omitempty,min=1,max=120"`
	Description    *string  `json:"description" binding:"omitempty,max=1000"`
	AllocatedHours *float64 `json:"allocated_hours"` // nil = keep, value = reschedule
}

type TaskResponse struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	IsDone         bool       `json:"is_done"`
	AllocatedHours *float64   `json:"allocated_hours"`
	StartedAt      time.Time  `json:"started_at"`
	DueDate        string     `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime        string     `json:"due_time,omitempty"` // HH:MM:SS
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	SpentHours     *float64   `json:"spent_hours,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}
