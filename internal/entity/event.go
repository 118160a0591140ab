package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEventNotFound = errors.New("event not found")

// Event types.
const (
	EventMeeting    = "meeting"
	EventAssignment = "assignment"
	EventGeneric    = "event"
)

// Event is a calendar entry owned by one user. Events are queried by
// start-time range for the calendar view.
type Event struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewEvent creates an event. Title, type and start time are required.
func NewEvent(userID, title, eventType string, startTime time.Time) (*Event, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if title == "" {
		return nil, errors.New("title is required")
	}
	if !ValidEventType(eventType) {
		return nil, errors.New("invalid event type")
	}
	if startTime.IsZero() {
		return nil, errors.New("start_time is required")
	}
	return &Event{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Type:      eventType,
		StartTime: startTime,
		CreatedAt: time.Now(),
	}, nil
}

func ValidEventType(eventType string) bool {
	return eventType == EventMeeting || eventType == EventAssignment || eventType == EventGeneric
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, e *Event) error
	FindByID(ctx context.Context, id, userID string) (*Event, error)
	// ListByRange returns the user's events whose start time falls inside
	// [start, end], ordered by start time ascending.
	ListByRange(ctx context.Context, userID string, start, end time.Time) ([]*Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id, userID string) error
}
