package service

import (
	"context"
	"errors"

	"talentdesk/internal/businesshours"
	dom "talentdesk/internal/domain"
	"talentdesk/internal/repo"

	"github.com/jackc/pgx/v5"
)

// ErrInvalidCalendar marks calendar updates rejected before any write.
var ErrInvalidCalendar = errors.New("invalid work calendar")

// CalendarService answers "what is the current work calendar" and applies
// updates to it. The saved row wins; env defaults apply until one exists.
type CalendarService struct {
	repo     repo.CalendarRepo
	defaults businesshours.Config
}

// NewCalendarService returns a new CalendarService.
func NewCalendarService(r repo.CalendarRepo, defaults businesshours.Config) *CalendarService {
	return &CalendarService{repo: r, defaults: defaults}
}

// Current returns the active work calendar configuration.
func (s *CalendarService) Current(ctx context.Context) (businesshours.Config, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.defaults, nil
		}
		return businesshours.Config{}, err
	}
	return businesshours.NewConfig(row.WorkStartTime, row.WorkEndTime, row.ExcludeWeekends)
}

// Settings returns the persisted settings row; saved is false when the org
// still runs on the env defaults.
func (s *CalendarService) Settings(ctx context.Context) (dom.CalendarSettings, bool, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.CalendarSettings{
				WorkStartTime:   s.defaults.WorkStart.String(),
				WorkEndTime:     s.defaults.WorkEnd.String(),
				ExcludeWeekends: s.defaults.ExcludeWeekends,
			}, false, nil
		}
		return dom.CalendarSettings{}, false, err
	}
	return row, true, nil
}

// Update validates and persists a new work calendar. Validation runs before
// any write: an inverted window never reaches the database.
func (s *CalendarService) Update(ctx context.Context, workStart, workEnd string, excludeWeekends bool) (dom.CalendarSettings, error) {
	cfg, err := businesshours.NewConfig(workStart, workEnd, excludeWeekends)
	if err != nil {
		return dom.CalendarSettings{}, errors.Join(ErrInvalidCalendar, err)
	}
	return s.repo.Upsert(ctx, dom.CalendarSettings{
		WorkStartTime:   cfg.WorkStart.String(),
		WorkEndTime:     cfg.WorkEnd.String(),
		ExcludeWeekends: cfg.ExcludeWeekends,
	})
}
