package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

const taskColumns = "id, title, description, completed, user_id, created_at, updated_at"

// TaskRepository persists tasks. Every statement filters on the owner id,
// so a task owned by someone else behaves exactly like a missing one.
type TaskRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTaskRepository(db *sqlx.DB, txGetter TxGetter) *TaskRepository {
	return &TaskRepository{db: db, txGetter: txGetter}
}

// List returns the owner's tasks, newest first.
func (r *TaskRepository) List(ctx context.Context, ownerID int64) ([]models.Task, error) {
	const query = `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	tasks := []models.Task{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tasks, query, ownerID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{ownerID},
		"result", len(tasks),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a task owned by ownerID.
func (r *TaskRepository) Create(ctx context.Context, ownerID int64, input models.TaskInput) (*models.Task, error) {
	const query = `
		INSERT INTO tasks (title, description, completed, user_id, created_at, updated_at)
		VALUES ($1, $2, FALSE, $3, NOW(), NOW())
		RETURNING ` + taskColumns

	return r.getOne(ctx, "create", query, input.Title, input.Description, ownerID)
}

// Get returns the task with taskID owned by ownerID.
func (r *TaskRepository) Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	const query = `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	return r.getOne(ctx, "get", query, taskID, ownerID)
}

// Update applies patch to the owner's task in a single statement and refreshes updated_at.
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID int64, patch models.TaskPatch) (*models.Task, error) {
	const query = `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    description = CASE WHEN $4::BOOLEAN THEN NULL ELSE COALESCE($5, description) END,
		    completed = COALESCE($6, completed),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns

	return r.getOne(ctx, "update", query,
		taskID, ownerID, patch.Title, patch.ClearDescription, patch.Description, patch.Completed)
}

// Toggle flips the completion flag of the owner's task.
func (r *TaskRepository) Toggle(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	const query = `
		UPDATE tasks
		SET completed = NOT completed,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns

	return r.getOne(ctx, "toggle", query, taskID, ownerID)
}

// Delete removes the owner's task.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	const query = `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, taskID, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{taskID, ownerID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) getOne(ctx context.Context, op, query string, args ...any) (*models.Task, error) {
	var task models.Task
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &task, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", task.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s task: %w", op, err)
	}
	return &task, nil
}
