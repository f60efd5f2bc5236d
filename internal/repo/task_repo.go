package repo

import (
	"context"
	"time"

	dom "talentdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, user_id, title, description, is_done, allocated_hours,
		started_at, due_at, completed_at, spent_hours, created_at, updated_at, deleted_at`

type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	List(ctx context.Context, userID int64) ([]dom.Task, error)
	Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error)
	SoftDelete(ctx context.Context, userID, id int64) error
	Complete(ctx context.Context, userID, id int64, completedAt time.Time, spentHours float64) (dom.Task, error)
	Search(ctx context.Context, userID int64, q string) ([]dom.Task, error)
	Overdue(ctx context.Context, userID int64, now time.Time) ([]dom.Task, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, allocated_hours, started_at, due_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns
	var out dom.Task
	err := r.db.QueryRow(ctx, query,
		t.UserID, t.Title, t.Description, t.AllocatedHours, t.StartedAt, t.DueAt,
	).Scan(scanTargets(&out)...)
	return out, err
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, userID).Scan(scanTargets(&t)...)
	return t, err
}

func (r *PGTaskRepo) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, userID)
}

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, allocated_hours = $5, due_at = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + taskColumns
	var t dom.Task
	err := r.db.QueryRow(ctx, query,
		id, userID, patch.Title, patch.Description, patch.AllocatedHours, patch.DueAt,
	).Scan(scanTargets(&t)...)
	return t, err
}

func (r *PGTaskRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE tasks SET deleted_at = $3, updated_at = $3 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, userID, now)
	return err
}

func (r *PGTaskRepo) Complete(ctx context.Context, userID, id int64, completedAt time.Time, spentHours float64) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET is_done = TRUE, completed_at = $3, spent_hours = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + taskColumns
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, userID, completedAt, spentHours).Scan(scanTargets(&t)...)
	return t, err
}

func (r *PGTaskRepo) Search(ctx context.Context, userID int64, q string) ([]dom.Task, error) {
	pattern := "%" + q + "%"
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND deleted_at IS NULL AND (title ILIKE $2 OR description ILIKE $2)
		ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, userID, pattern)
}

func (r *PGTaskRepo) Overdue(ctx context.Context, userID int64, now time.Time) ([]dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND deleted_at IS NULL AND is_done = FALSE
			AND due_at IS NOT NULL AND due_at < $2
		ORDER BY due_at ASC`
	return r.queryTasks(ctx, query, userID, now)
}

func (r *PGTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]dom.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(scanTargets(&t)...); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTargets(t *dom.Task) []any {
	return []any{
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsDone, &t.AllocatedHours,
		&t.StartedAt, &t.DueAt, &t.CompletedAt, &t.SpentHours,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	}
}
