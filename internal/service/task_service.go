package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"talentdesk/internal/businesshours"
	"talentdesk/internal/cache"
	dom "talentdesk/internal/domain"
	"talentdesk/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidAllocation = errors.New("allocated_hours must be a finite non-negative number")
)

// CalendarProvider supplies the active work calendar for scheduling.
type CalendarProvider interface {
	Current(ctx context.Context) (businesshours.Config, error)
}

type TaskService struct {
	repo      repo.TaskRepo
	calendars CalendarProvider
	cache     *cache.TaskCache
	sf        singleflight.Group
	now       func() time.Time
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, calendars CalendarProvider, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, calendars: calendars, cache: c, now: time.Now}
}

// Create stores a new task with its due instant derived from the allocation:
// allocated hours are consumed through the work calendar starting now. A nil
// or zero allocation makes the task due at close of business today.
func (s *TaskService) Create(ctx context.Context, userID int64, title, desc string, allocatedHours *float64) (dom.Task, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)

	cfg, err := s.calendars.Current(ctx)
	if err != nil {
		return dom.Task{}, err
	}
	startedAt := s.now()
	dueAt, err := s.schedule(cfg, startedAt, allocatedHours)
	if err != nil {
		return dom.Task{}, err
	}

	t, err := s.repo.Create(ctx, dom.Task{
		UserID:         userID,
		Title:          title,
		Description:    desc,
		AllocatedHours: allocatedHours,
		StartedAt:      startedAt,
		DueAt:          dueAt,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.List(ctx, userID)
}

func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Update patches title/description and, when the allocation changes,
// reschedules: the due instant is re-derived from the task's original start
// under the calendar in force now.
func (s *TaskService) Update(ctx context.Context, userID, id int64, title, desc *string, allocatedHours *float64) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if allocatedHours != nil {
		cfg, err := s.calendars.Current(ctx)
		if err != nil {
			return dom.Task{}, err
		}
		dueAt, err := s.schedule(cfg, existing.StartedAt, allocatedHours)
		if err != nil {
			return dom.Task{}, err
		}
		patch.AllocatedHours = allocatedHours
		patch.DueAt = dueAt
	}
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Complete marks the task done and records the business hours actually spent
// between its start and now.
func (s *TaskService) Complete(ctx context.Context, userID, id int64) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	cfg, err := s.calendars.Current(ctx)
	if err != nil {
		return dom.Task{}, err
	}
	completedAt := s.now()
	spent, err := businesshours.CalculateElapsedBusinessHours(existing.StartedAt, completedAt, cfg)
	if err != nil {
		return dom.Task{}, err
	}
	t, err := s.repo.Complete(ctx, userID, id, completedAt, spent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.SoftDelete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TaskService) Search(ctx context.Context, userID int64, q string) ([]dom.Task, error) {
	q = strings.TrimSpace(q)
	if s.cache != nil {
		key := "search:" + strconv.FormatInt(userID, 10) + ":" + strings.ToLower(q)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetSearch(ctx, userID, q); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.Search(ctx, userID, q)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetSearch(ctx, userID, q, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.Search(ctx, userID, q)
}

func (s *TaskService) Overdue(ctx context.Context, userID int64) ([]dom.Task, error) {
	if s.cache != nil {
		key := "overdue:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetOverdue(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.Overdue(ctx, userID, s.now())
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetOverdue(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.Overdue(ctx, userID, s.now())
}

// schedule turns an allocation into a due instant. A nil allocation is
// scheduled as zero hours: due at close of business on the start date.
func (s *TaskService) schedule(cfg businesshours.Config, start time.Time, allocatedHours *float64) (*time.Time, error) {
	hours := 0.0
	if allocatedHours != nil {
		hours = *allocatedHours
	}
	due, err := businesshours.CalculateDueDateTime(start, hours, cfg)
	if err != nil {
		if errors.Is(err, businesshours.ErrInvalidInput) {
			return nil, ErrInvalidAllocation
		}
		return nil, err
	}
	dueAt, err := due.At(start.Location())
	if err != nil {
		return nil, err
	}
	return &dueAt, nil
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}
