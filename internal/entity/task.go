package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("task not found")

// Task statuses.
const (
	TaskNotStarted = "Not Started"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a to-do item, optionally linked to a contact.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	ContactID   string     `json:"contact_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a task in the Not Started status.
func NewTask(userID, title string) (*Task, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if title == "" {
		return nil, errors.New("title is required")
	}
	return &Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Status:    TaskNotStarted,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

func ValidTaskStatus(status string) bool {
	return status == TaskNotStarted || status == TaskInProgress || status == TaskCompleted
}

func ValidPriority(priority string) bool {
	return priority == "" || priority == PriorityLow || priority == PriorityMedium || priority == PriorityHigh
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id, userID string) (*Task, error)
	ListByUser(ctx context.Context, userID string) ([]*Task, error)
	ListByContact(ctx context.Context, contactID, userID string) ([]*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id, userID string) error
}
