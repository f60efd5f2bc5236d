package repo

import (
	"context"

	dom "talentdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarRepo persists the single organization-wide work calendar row.
type CalendarRepo interface {
	Get(ctx context.Context) (dom.CalendarSettings, error)
	Upsert(ctx context.Context, s dom.CalendarSettings) (dom.CalendarSettings, error)
}

type PGCalendarRepo struct {
	db *pgxpool.Pool
}

func NewPGCalendarRepo(db *pgxpool.Pool) *PGCalendarRepo {
	return &PGCalendarRepo{db: db}
}

// Get returns the saved calendar. pgx.ErrNoRows means none has been saved yet.
func (r *PGCalendarRepo) Get(ctx context.Context) (dom.CalendarSettings, error) {
	var s dom.CalendarSettings
	err := r.db.QueryRow(ctx,
		`SELECT id, work_start_time, work_end_time, exclude_weekends, updated_at
		 FROM calendar_settings WHERE id = 1`,
	).Scan(&s.ID, &s.WorkStartTime, &s.WorkEndTime, &s.ExcludeWeekends, &s.UpdatedAt)
	return s, err
}

func (r *PGCalendarRepo) Upsert(ctx context.Context, s dom.CalendarSettings) (dom.CalendarSettings, error) {
	query := `
		INSERT INTO calendar_settings (id, work_start_time, work_end_time, exclude_weekends, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			exclude_weekends = EXCLUDED.exclude_weekends,
			updated_at = NOW()
		RETURNING id, work_start_time, work_end_time, exclude_weekends, updated_at`
	var out dom.CalendarSettings
	err := r.db.QueryRow(ctx, query, s.WorkStartTime, s.WorkEndTime, s.ExcludeWeekends).Scan(
		&out.ID, &out.WorkStartTime, &out.WorkEndTime, &out.ExcludeWeekends, &out.UpdatedAt,
	)
	return out, err
}
