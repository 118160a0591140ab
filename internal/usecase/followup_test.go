package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bensapovits/studiously/internal/entity"
)

var frozenNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newScheduler(repo *MockFollowUpRepository) *FollowUpSchedulerUseCase {
	uc := NewFollowUpSchedulerUseCase(repo, testAuth())
	uc.Now = func() time.Time { return frozenNow }
	return uc
}

func TestCreateFollowUpDueDatePerFrequency(t *testing.T) {
	cases := []struct {
		frequency entity.Frequency
		days      int
	}{
		{entity.FrequencyWeekly, 7},
		{entity.FrequencyBiweekly, 14},
		{entity.FrequencyMonthly, 30},
		{entity.FrequencyQuarterly, 90},
		{entity.FrequencySemiannual, 180},
		{entity.FrequencyAnnual, 365},
	}

	for _, tc := range cases {
		t.Run(string(tc.frequency), func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockFollowUpRepository)
			uc := newScheduler(repo)

			repo.On("FindByContact", ctx, "contact-1", "user-1").Return(nil, entity.ErrFollowUpNotFound)
			repo.On("Insert", ctx, mock.AnythingOfType("*entity.FollowUp")).Return(nil)

			followUp, err := uc.CreateOrUpdate(ctx, "contact-1", tc.frequency, "ping about roadmap")

			assert.NoError(t, err)
			assert.Equal(t, frozenNow.AddDate(0, 0, tc.days), followUp.NextDueDate)
			assert.Equal(t, entity.FollowUpPending, followUp.Status)
			assert.Equal(t, "ping about roadmap", followUp.Notes)
			repo.AssertExpectations(t)
		})
	}
}

func TestCreateOrUpdateReusesExistingRecord(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowUpRepository)
	uc := newScheduler(repo)

	stale := frozenNow.AddDate(0, 0, -3)
	existing := &entity.FollowUp{
		ID:          "fu-1",
		ContactID:   "contact-1",
		UserID:      "user-1",
		Frequency:   entity.FrequencyWeekly,
		NextDueDate: stale,
		Status:      entity.FollowUpSnoozed,
		SnoozeUntil: &stale,
		Notes:       "old notes",
	}

	repo.On("FindByContact", ctx, "contact-1", "user-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	followUp, err := uc.CreateOrUpdate(ctx, "contact-1", entity.FrequencyMonthly, "")

	assert.NoError(t, err)
	assert.Equal(t, "fu-1", followUp.ID)
	assert.Equal(t, entity.FrequencyMonthly, followUp.Frequency)
	assert.Equal(t, frozenNow.AddDate(0, 0, 30), followUp.NextDueDate)
	assert.Equal(t, entity.FollowUpPending, followUp.Status)
	assert.Nil(t, followUp.SnoozeUntil)
	assert.Equal(t, "old notes", followUp.Notes, "empty notes must not erase the stored value")
	repo.AssertNotCalled(t, "Insert", ctx, mock.Anything)
}

func TestCreateOrUpdateRejectsUnknownFrequency(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowUpRepository)
	uc := newScheduler(repo)

	followUp, err := uc.CreateOrUpdate(ctx, "contact-1", entity.Frequency("fortnightly"), "")

	assert.Nil(t, followUp)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "frequency", validationErr.Field)
	repo.AssertNotCalled(t, "FindByContact")
	repo.AssertNotCalled(t, "Insert")
}

func TestCompleteSchedulesNextOccurrenceFromNow(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowUpRepository)
	uc := newScheduler(repo)

	// Completed four days late: the next due date counts from today, not
	// from the missed date.
	overdue := frozenNow.AddDate(0, 0, -4)
	snoozed := frozenNow.AddDate(0, 0, -1)
	followUp := &entity.FollowUp{
		ID:          "fu-1",
		ContactID:   "contact-1",
		UserID:      "user-1",
		Frequency:   entity.FrequencyQuarterly,
		NextDueDate: overdue,
		Status:      entity.FollowUpPending,
		SnoozeUntil: &snoozed,
	}

	repo.On("FindByID", ctx, "fu-1", "user-1").Return(followUp, nil)
	repo.On("Update", ctx, followUp).Return(nil)

	updated, err := uc.Complete(ctx, "fu-1", entity.FrequencyQuarterly)

	assert.NoError(t, err)
	assert.Equal(t, entity.FollowUpCompleted, updated.Status)
	assert.Equal(t, frozenNow.AddDate(0, 0, 90), updated.NextDueDate)
	if assert.NotNil(t, updated.LastCompleted) {
		assert.Equal(t, frozenNow, *updated.LastCompleted)
	}
	// The stale snooze window is left in place.
	assert.Equal(t, &snoozed, updated.SnoozeUntil)
}

func TestSnoozeLeavesDueDateUntouched(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowUpRepository)
	uc := newScheduler(repo)

	due := frozenNow.AddDate(0, 0, 2)
	followUp := &entity.FollowUp{
		ID:          "fu-1",
		UserID:      "user-1",
		Frequency:   entity.FrequencyWeekly,
		NextDueDate: due,
		Status:      entity.FollowUpPending,
	}

	repo.On("FindByID", ctx, "fu-1", "user-1").Return(followUp, nil)
	repo.On("Update", ctx, followUp).Return(nil)

	updated, err := uc.Snooze(ctx, "fu-1", 7)

	assert.NoError(t, err)
	assert.Equal(t, entity.FollowUpSnoozed, updated.Status)
	if assert.NotNil(t, updated.SnoozeUntil) {
		assert.Equal(t, frozenNow.AddDate(0, 0, 7), *updated.SnoozeUntil)
	}
	assert.Equal(t, due, updated.NextDueDate)
}

func TestUpdateFrequencyClearsSnooze(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowUpRepository)
	uc := newScheduler(repo)

	snoozed := frozenNow.AddDate(0, 0, 3)
	followUp := &entity.FollowUp{
		ID:          "fu-1",
		UserID:      "user-1",
		Frequency:   entity.FrequencyWeekly,
		NextDueDate: frozenNow.AddDate(0, 0, 7),
		Status:      entity.FollowUpSnoozed,
		SnoozeUntil: &snoozed,
	}

	repo.On("FindByID", ctx, "fu-1", "user-1").Return(followUp, nil)
	repo.On("Update", ctx, followUp).Return(nil)

	updated, err := uc.UpdateFrequency(ctx, "fu-1", entity.FrequencyAnnual)

	assert.NoError(t, err)
	assert.Equal(t, entity.FrequencyAnnual, updated.Frequency)
	assert.Equal(t, frozenNow.AddDate(0, 0, 365), updated.NextDueDate)
	assert.Equal(t, entity.FollowUpPending, updated.Status)
	assert.Nil(t, updated.SnoozeUntil)
}

func TestFollowUpNotFoundMapsToNotFoundError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowUpRepository)
	uc := newScheduler(repo)

	repo.On("FindByID", ctx, "ghost", "user-1").Return(nil, entity.ErrFollowUpNotFound)

	updated, err := uc.Complete(ctx, "ghost", entity.FrequencyWeekly)

	assert.Nil(t, updated)
	assert.True(t, IsNotFound(err))
}

func TestFollowUpOperationsRequireAuthentication(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowUpRepository)
	uc := NewFollowUpSchedulerUseCase(repo, anonymousAuth())

	_, err := uc.CreateOrUpdate(ctx, "contact-1", entity.FrequencyWeekly, "")
	assert.True(t, IsNotAuthenticated(err))

	_, err = uc.Snooze(ctx, "fu-1", 7)
	assert.True(t, IsNotAuthenticated(err))

	repo.AssertNotCalled(t, "FindByContact")
	repo.AssertNotCalled(t, "FindByID")
}
