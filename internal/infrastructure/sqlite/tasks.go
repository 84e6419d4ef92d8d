package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// TaskRepo provides typed SQLite operations for the tasks table.
type TaskRepo struct {
	db *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (title, description, status, date) VALUES (?, ?, ?, ?)",
		t.Title, t.Description, t.Status, t.Date,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("task last insert id: %w", err)
	}
	return nil
}

// List returns every task, or only those with the given status when it is
// non-empty.
func (r *TaskRepo) List(ctx context.Context, status string) ([]domain.Task, error) {
	var tasks []domain.Task
	var err error
	if status != "" {
		err = r.db.SelectContext(ctx, &tasks, "SELECT * FROM tasks WHERE status = ?", status)
	} else {
		err = r.db.SelectContext(ctx, &tasks, "SELECT * FROM tasks")
	}
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.GetContext(ctx, &t, "SELECT * FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, status = ?, date = ? WHERE id = ?",
		t.Title, t.Description, t.Status, t.Date, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task %d: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *TaskRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM tasks WHERE status = ?", status)
	if err != nil {
		return 0, fmt.Errorf("count tasks by status: %w", err)
	}
	return n, nil
}
