package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bensapovits/studiously/internal/entity"
)

type CreateTaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ContactID   string     `json:"contact_id"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
}

type TaskUseCase struct {
	Repo entity.TaskRepositoryInterface
	Auth AuthContext
}

func NewTaskUseCase(repo entity.TaskRepositoryInterface, auth AuthContext) *TaskUseCase {
	return &TaskUseCase{Repo: repo, Auth: auth}
}

func (uc *TaskUseCase) Create(ctx context.Context, input CreateTaskInput) (*entity.Task, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !entity.ValidPriority(input.Priority) {
		return nil, &ValidationError{"priority", "must be low, medium or high"}
	}

	task, err := entity.NewTask(user.ID, input.Title)
	if err != nil {
		return nil, &ValidationError{"title", "is required"}
	}
	task.Description = input.Description
	task.ContactID = input.ContactID
	task.Priority = input.Priority
	task.DueDate = input.DueDate

	if err := uc.Repo.Create(ctx, task); err != nil {
		return nil, &StoreError{Op: "create task", Err: err}
	}
	return task, nil
}

func (uc *TaskUseCase) List(ctx context.Context) ([]*entity.Task, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.Repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, &StoreError{Op: "list tasks", Err: err}
	}
	return tasks, nil
}

func (uc *TaskUseCase) ListByContact(ctx context.Context, contactID string) ([]*entity.Task, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.Repo.ListByContact(ctx, contactID, user.ID)
	if err != nil {
		return nil, &StoreError{Op: "list contact tasks", Err: err}
	}
	return tasks, nil
}

func (uc *TaskUseCase) Update(ctx context.Context, id string, input UpdateTaskInput) (*entity.Task, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	task, err := uc.Repo.FindByID(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrTaskNotFound) {
			return nil, &NotFoundError{Resource: "task", ID: id}
		}
		return nil, &StoreError{Op: "find task", Err: err}
	}

	if input.Status != "" && !entity.ValidTaskStatus(input.Status) {
		return nil, &ValidationError{"status", "must be Not Started, In Progress or Completed"}
	}
	if !entity.ValidPriority(input.Priority) {
		return nil, &ValidationError{"priority", "must be low, medium or high"}
	}

	if input.Title != "" {
		task.Title = input.Title
	}
	if input.Description != "" {
		task.Description = input.Description
	}
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != "" {
		task.Status = input.Status
	}
	task.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, task); err != nil {
		return nil, &StoreError{Op: "update task", Err: err}
	}
	return task, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, id, user.ID); err != nil {
		if errors.Is(err, entity.ErrTaskNotFound) {
			return &NotFoundError{Resource: "task", ID: id}
		}
		return &StoreError{Op: "delete task", Err: err}
	}
	return nil
}
