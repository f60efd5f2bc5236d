package service

import (
	"context"
	"testing"
	"time"

	"talentdesk/internal/businesshours"
	dom "talentdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCalendar struct{ cfg businesshours.Config }

func (s staticCalendar) Current(context.Context) (businesshours.Config, error) {
	return s.cfg, nil
}

type fakeTaskRepo struct {
	tasks  map[int64]dom.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]dom.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = t.StartedAt
	t.UpdatedAt = t.StartedAt
	r.tasks[t.ID] = t
	return t, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, userID, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID || t.DeletedAt != nil {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTaskRepo) List(_ context.Context, userID int64) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range r.tasks {
		if t.UserID == userID && t.DeletedAt == nil {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	t, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Task{}, err
	}
	t.Title = patch.Title
	t.Description = patch.Description
	t.AllocatedHours = patch.AllocatedHours
	t.DueAt = patch.DueAt
	r.tasks[id] = t
	return t, nil
}

func (r *fakeTaskRepo) SoftDelete(_ context.Context, userID, id int64) error {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	now := time.Now()
	t.DeletedAt = &now
	r.tasks[id] = t
	return nil
}

func (r *fakeTaskRepo) Complete(ctx context.Context, userID, id int64, completedAt time.Time, spentHours float64) (dom.Task, error) {
	t, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Task{}, err
	}
	t.IsDone = true
	t.CompletedAt = &completedAt
	t.SpentHours = &spentHours
	r.tasks[id] = t
	return t, nil
}

func (r *fakeTaskRepo) Search(ctx context.Context, userID int64, _ string) ([]dom.Task, error) {
	return r.List(ctx, userID)
}

func (r *fakeTaskRepo) Overdue(ctx context.Context, userID int64, now time.Time) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range r.tasks {
		if t.UserID == userID && t.DeletedAt == nil && !t.IsDone && t.DueAt != nil && t.DueAt.Before(now) {
			list = append(list, t)
		}
	}
	return list, nil
}

func newTestTaskService(at time.Time) (*TaskService, *fakeTaskRepo) {
	r := newFakeTaskRepo()
	svc := NewTaskService(r, staticCalendar{cfg: businesshours.DefaultConfig()}, nil)
	svc.now = func() time.Time { return at }
	return svc, r
}

func ptr(v float64) *float64 { return &v }

// 2024-01-02 is a Tuesday, 2024-01-05 a Friday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.Local)
}

func TestTaskServiceCreateSchedulesDueDate(t *testing.T) {
	svc, _ := newTestTaskService(at(2, 10, 0))

	task, err := svc.Create(context.Background(), 1, "  prepare review ", "quarterly", ptr(4))
	require.NoError(t, err)
	assert.Equal(t, "prepare review", task.Title)
	require.NotNil(t, task.DueAt)
	assert.Equal(t, at(2, 14, 0), *task.DueAt)
}

func TestTaskServiceCreateWithoutAllocationDueToday(t *testing.T) {
	svc, _ := newTestTaskService(at(2, 10, 0))

	task, err := svc.Create(context.Background(), 1, "triage inbox", "", nil)
	require.NoError(t, err)
	require.NotNil(t, task.DueAt)
	assert.Equal(t, at(2, 18, 0), *task.DueAt)
}

func TestTaskServiceCreateRollsOverWeekend(t *testing.T) {
	svc, _ := newTestTaskService(at(5, 9, 0)) // Friday opening

	task, err := svc.Create(context.Background(), 1, "onboarding plan", "", ptr(9.5))
	require.NoError(t, err)
	require.NotNil(t, task.DueAt)
	assert.Equal(t, at(8, 9, 30), *task.DueAt) // Monday 09:30
}

func TestTaskServiceCreateRejectsNegativeAllocation(t *testing.T) {
	svc, _ := newTestTaskService(at(2, 10, 0))

	_, err := svc.Create(context.Background(), 1, "bad", "", ptr(-2))
	assert.ErrorIs(t, err, ErrInvalidAllocation)
}

func TestTaskServiceUpdateReschedulesFromOriginalStart(t *testing.T) {
	svc, _ := newTestTaskService(at(2, 10, 0))

	task, err := svc.Create(context.Background(), 1, "draft goals", "", ptr(2))
	require.NoError(t, err)

	// Allocation grows later the same day; due is re-derived from the
	// original 10:00 start, not from the update time.
	svc.now = func() time.Time { return at(2, 15, 0) }
	updated, err := svc.Update(context.Background(), 1, task.ID, nil, nil, ptr(6))
	require.NoError(t, err)
	require.NotNil(t, updated.DueAt)
	assert.Equal(t, at(2, 16, 0), *updated.DueAt)
}

func TestTaskServiceCompleteRecordsSpentBusinessHours(t *testing.T) {
	svc, _ := newTestTaskService(at(5, 16, 0)) // Friday 16:00

	task, err := svc.Create(context.Background(), 1, "ship report", "", ptr(3))
	require.NoError(t, err)

	svc.now = func() time.Time { return at(8, 10, 0) } // Monday 10:00
	done, err := svc.Complete(context.Background(), 1, task.ID)
	require.NoError(t, err)
	assert.True(t, done.IsDone)
	require.NotNil(t, done.SpentHours)
	assert.InDelta(t, 3.0, *done.SpentHours, 1e-9) // Fri 16-18 + Mon 9-10
}

func TestTaskServiceNotFound(t *testing.T) {
	svc, _ := newTestTaskService(at(2, 10, 0))

	_, err := svc.GetByID(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Complete(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
