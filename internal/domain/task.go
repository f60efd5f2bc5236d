package domain

import "time"

// Task is the domain entity for an assignable unit of work. It does not
// depend on Gin, Postgres or Redis.
//
// AllocatedHours is the budgeted work time; DueAt is derived from it through
// the work calendar when the task is created or rescheduled. SpentHours is
// the elapsed business time between StartedAt and completion.
type Task struct {
	ID             int64
	UserID         int64
	Title          string
	Description    string
	IsDone         bool
	AllocatedHours *float64
	StartedAt      time.Time
	DueAt          *time.Time
	CompletedAt    *time.Time
	SpentHours     *float64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
