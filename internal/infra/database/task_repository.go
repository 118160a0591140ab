package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bensapovits/studiously/internal/entity"
)

type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

const taskColumns = `
	id, user_id, COALESCE(contact_id, ''), title, COALESCE(description, ''),
	COALESCE(priority, ''), due_date, status, created_at, updated_at
`

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (
			id, user_id, contact_id, title, description, priority,
			due_date, status, created_at, updated_at
		) VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.UserID, t.ContactID, t.Title, t.Description, t.Priority,
		t.DueDate, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *TaskRepository) FindByID(ctx context.Context, id, userID string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	task, err := scanTask(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *TaskRepository) ListByContact(ctx context.Context, contactID, userID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE contact_id = $1 AND user_id = $2 ORDER BY due_date ASC NULLS LAST`
	return r.list(ctx, query, contactID, userID)
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE tasks SET
			title = $1, description = NULLIF($2, ''), priority = NULLIF($3, ''),
			due_date = $4, status = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`

	result, err := r.DB.ExecContext(ctx, query,
		t.Title, t.Description, t.Priority,
		t.DueDate, t.Status, t.UpdatedAt,
		t.ID, t.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrTaskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrTaskNotFound)
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...interface{}) ([]*entity.Task, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func scanTask(row rowScanner) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.ContactID, &t.Title, &t.Description,
		&t.Priority, &t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
