package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bensapovits/studiously/internal/entity"
)

type CreateEventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Location    string     `json:"location"`
}

type UpdateEventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Location    string     `json:"location"`
}

// EventUseCase covers calendar event CRUD with range queries.
type EventUseCase struct {
	Repo entity.EventRepositoryInterface
	Auth AuthContext
}

func NewEventUseCase(repo entity.EventRepositoryInterface, auth AuthContext) *EventUseCase {
	return &EventUseCase{Repo: repo, Auth: auth}
}

func (uc *EventUseCase) Create(ctx context.Context, input CreateEventInput) (*entity.Event, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, &ValidationError{"title", "is required"}
	}
	if !entity.ValidEventType(input.Type) {
		return nil, &ValidationError{"type", "must be meeting, assignment or event"}
	}
	if input.StartTime.IsZero() {
		return nil, &ValidationError{"start_time", "is required"}
	}

	event, err := entity.NewEvent(user.ID, input.Title, input.Type, input.StartTime)
	if err != nil {
		return nil, &ValidationError{"event", err.Error()}
	}
	event.Description = input.Description
	event.EndTime = input.EndTime
	event.Location = input.Location

	if err := uc.Repo.Create(ctx, event); err != nil {
		return nil, &StoreError{Op: "create event", Err: err}
	}
	return event, nil
}

// ListRange returns the caller's events starting inside [start, end].
func (uc *EventUseCase) ListRange(ctx context.Context, start, end time.Time) ([]*entity.Event, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if end.Before(start) {
		return nil, &ValidationError{"end", "must not be before start"}
	}

	events, err := uc.Repo.ListByRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, &StoreError{Op: "list events", Err: err}
	}
	return events, nil
}

func (uc *EventUseCase) Update(ctx context.Context, id string, input UpdateEventInput) (*entity.Event, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	event, err := uc.Repo.FindByID(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrEventNotFound) {
			return nil, &NotFoundError{Resource: "event", ID: id}
		}
		return nil, &StoreError{Op: "find event", Err: err}
	}

	if input.Type != "" && !entity.ValidEventType(input.Type) {
		return nil, &ValidationError{"type", "must be meeting, assignment or event"}
	}

	if input.Title != "" {
		event.Title = input.Title
	}
	if input.Description != "" {
		event.Description = input.Description
	}
	if input.Type != "" {
		event.Type = input.Type
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = input.EndTime
	}
	if input.Location != "" {
		event.Location = input.Location
	}

	if err := uc.Repo.Update(ctx, event); err != nil {
		return nil, &StoreError{Op: "update event", Err: err}
	}
	return event, nil
}

func (uc *EventUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, id, user.ID); err != nil {
		if errors.Is(err, entity.ErrEventNotFound) {
			return &NotFoundError{Resource: "event", ID: id}
		}
		return &StoreError{Op: "delete event", Err: err}
	}
	return nil
}
