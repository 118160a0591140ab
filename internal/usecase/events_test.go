package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bensapovits/studiously/internal/entity"
)

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Event")).Return(nil)

	end := frozenNow.Add(time.Hour)
	event, err := uc.Create(ctx, CreateEventInput{
		Title:     "Kickoff call",
		Type:      entity.EventMeeting,
		StartTime: frozenNow,
		EndTime:   &end,
		Location:  "Zoom",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "Kickoff call", event.Title)
	assert.Equal(t, entity.EventMeeting, event.Type)
	assert.Equal(t, frozenNow, event.StartTime)
	assert.Equal(t, &end, event.EndTime)
	assert.Equal(t, "Zoom", event.Location)
	repo.AssertExpectations(t)
}

func TestCreateEventValidation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		input CreateEventInput
		field string
	}{
		{"missing title", CreateEventInput{Type: entity.EventMeeting, StartTime: frozenNow}, "title"},
		{"unknown type", CreateEventInput{Title: "Review", Type: "party", StartTime: frozenNow}, "type"},
		{"missing start time", CreateEventInput{Title: "Review", Type: entity.EventGeneric}, "start_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEventRepository)
			uc := NewEventUseCase(repo, testAuth())

			event, err := uc.Create(ctx, tt.input)

			assert.Nil(t, event)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateEventRequiresAuth(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, anonymousAuth())

	event, err := uc.Create(ctx, CreateEventInput{Title: "Review", Type: entity.EventGeneric, StartTime: frozenNow})

	assert.Nil(t, event)
	assert.True(t, IsNotAuthenticated(err))
	repo.AssertNotCalled(t, "Create")
}

func TestListEventsByRange(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	start := frozenNow
	end := frozenNow.AddDate(0, 0, 7)
	stored := []*entity.Event{
		{ID: "event-1", UserID: "user-1", Title: "Standup", Type: entity.EventMeeting, StartTime: start},
		{ID: "event-2", UserID: "user-1", Title: "Midterm", Type: entity.EventAssignment, StartTime: start.AddDate(0, 0, 3)},
	}
	repo.On("ListByRange", ctx, "user-1", start, end).Return(stored, nil)

	events, err := uc.ListRange(ctx, start, end)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "event-1", events[0].ID)
	repo.AssertExpectations(t)
}

func TestListEventsRejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	events, err := uc.ListRange(ctx, frozenNow, frozenNow.AddDate(0, 0, -1))

	assert.Nil(t, events)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "end", validationErr.Field)
	repo.AssertNotCalled(t, "ListByRange")
}

func TestUpdateEventAppliesProvidedFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	existing := &entity.Event{
		ID:        "event-1",
		UserID:    "user-1",
		Title:     "Standup",
		Type:      entity.EventMeeting,
		StartTime: frozenNow,
		Location:  "Room 4",
	}
	repo.On("FindByID", ctx, "event-1", "user-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	moved := frozenNow.Add(2 * time.Hour)
	event, err := uc.Update(ctx, "event-1", UpdateEventInput{Title: "Planning", StartTime: &moved})

	assert.NoError(t, err)
	assert.Equal(t, "Planning", event.Title)
	assert.Equal(t, moved, event.StartTime)
	// untouched fields keep their stored values
	assert.Equal(t, entity.EventMeeting, event.Type)
	assert.Equal(t, "Room 4", event.Location)
	repo.AssertExpectations(t)
}

func TestUpdateEventRejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	existing := &entity.Event{ID: "event-1", UserID: "user-1", Title: "Standup", Type: entity.EventMeeting, StartTime: frozenNow}
	repo.On("FindByID", ctx, "event-1", "user-1").Return(existing, nil)

	event, err := uc.Update(ctx, "event-1", UpdateEventInput{Type: "party"})

	assert.Nil(t, event)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "type", validationErr.Field)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateEventNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	repo.On("FindByID", ctx, "missing", "user-1").Return(nil, entity.ErrEventNotFound)

	event, err := uc.Update(ctx, "missing", UpdateEventInput{Title: "Planning"})

	assert.Nil(t, event)
	assert.True(t, IsNotFound(err))
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	repo.On("Delete", ctx, "event-1", "user-1").Return(nil)

	assert.NoError(t, uc.Delete(ctx, "event-1"))
	repo.AssertExpectations(t)
}

func TestDeleteEventNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	uc := NewEventUseCase(repo, testAuth())

	repo.On("Delete", ctx, "missing", "user-1").Return(entity.ErrEventNotFound)

	err := uc.Delete(ctx, "missing")

	assert.True(t, IsNotFound(err))
}
