package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bensapovits/studiously/internal/entity"
)

// FollowUpSchedulerUseCase owns the follow-up lifecycle. Due dates are
// always computed forward from "now" at the moment of the write, so a late
// completion pushes the whole cadence forward instead of catching up to a
// fixed schedule.
type FollowUpSchedulerUseCase struct {
	FollowUpRepo entity.FollowUpRepositoryInterface
	Auth         AuthContext
	Now          func() time.Time
}

func NewFollowUpSchedulerUseCase(
	followUpRepo entity.FollowUpRepositoryInterface,
	auth AuthContext,
) *FollowUpSchedulerUseCase {
	return &FollowUpSchedulerUseCase{
		FollowUpRepo: followUpRepo,
		Auth:         auth,
		Now:          time.Now,
	}
}

// CreateOrUpdate upserts the follow-up for a contact. An existing record is
// updated in place: frequency and due date replaced, status forced back to
// pending, snooze cleared, notes replaced only when a new value is given.
func (uc *FollowUpSchedulerUseCase) CreateOrUpdate(ctx context.Context, contactID string, frequency entity.Frequency, notes string) (*entity.FollowUp, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !frequency.Valid() {
		return nil, &ValidationError{"frequency", "must be weekly, biweekly, monthly, quarterly, semiannual or annual"}
	}

	now := uc.Now()

	existing, err := uc.FollowUpRepo.FindByContact(ctx, contactID, user.ID)
	if err != nil && !errors.Is(err, entity.ErrFollowUpNotFound) {
		return nil, &StoreError{Op: "find follow-up", Err: err}
	}

	if existing != nil {
		existing.Frequency = frequency
		existing.NextDueDate = frequency.NextDueFrom(now)
		existing.Status = entity.FollowUpPending
		existing.SnoozeUntil = nil
		if notes != "" {
			existing.Notes = notes
		}
		existing.UpdatedAt = now
		if err := uc.FollowUpRepo.Update(ctx, existing); err != nil {
			return nil, &StoreError{Op: "update follow-up", Err: err}
		}
		return existing, nil
	}

	followUp := entity.NewFollowUp(contactID, user.ID, frequency, notes, now)
	if err := uc.FollowUpRepo.Insert(ctx, followUp); err != nil {
		return nil, &StoreError{Op: "insert follow-up", Err: err}
	}
	return followUp, nil
}

// Complete marks a follow-up done and schedules the next occurrence from
// now. A stale snooze_until is left as-is, matching the stored behavior the
// clients already depend on.
func (uc *FollowUpSchedulerUseCase) Complete(ctx context.Context, id string, frequency entity.Frequency) (*entity.FollowUp, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	followUp, err := uc.findOwned(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	followUp.LastCompleted = &now
	followUp.NextDueDate = frequency.NextDueFrom(now)
	followUp.Status = entity.FollowUpCompleted
	followUp.UpdatedAt = now

	if err := uc.FollowUpRepo.Update(ctx, followUp); err != nil {
		return nil, &StoreError{Op: "complete follow-up", Err: err}
	}
	return followUp, nil
}

// Snooze pushes the reminder out by the given number of days without
// touching the due date.
func (uc *FollowUpSchedulerUseCase) Snooze(ctx context.Context, id string, days int) (*entity.FollowUp, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	followUp, err := uc.findOwned(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	until := now.AddDate(0, 0, days)
	followUp.Status = entity.FollowUpSnoozed
	followUp.SnoozeUntil = &until
	followUp.UpdatedAt = now

	if err := uc.FollowUpRepo.Update(ctx, followUp); err != nil {
		return nil, &StoreError{Op: "snooze follow-up", Err: err}
	}
	return followUp, nil
}

// UpdateFrequency reschedules from now with a new interval and clears any
// snooze window.
func (uc *FollowUpSchedulerUseCase) UpdateFrequency(ctx context.Context, id string, frequency entity.Frequency) (*entity.FollowUp, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	followUp, err := uc.findOwned(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	followUp.Frequency = frequency
	followUp.NextDueDate = frequency.NextDueFrom(now)
	followUp.Status = entity.FollowUpPending
	followUp.SnoozeUntil = nil
	followUp.UpdatedAt = now

	if err := uc.FollowUpRepo.Update(ctx, followUp); err != nil {
		return nil, &StoreError{Op: "update frequency", Err: err}
	}
	return followUp, nil
}

// FindByContact returns the follow-up attached to a contact, or a
// NotFoundError when there is none.
func (uc *FollowUpSchedulerUseCase) FindByContact(ctx context.Context, contactID string) (*entity.FollowUp, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	followUp, err := uc.FollowUpRepo.FindByContact(ctx, contactID, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrFollowUpNotFound) {
			return nil, &NotFoundError{Resource: "follow-up", ID: contactID}
		}
		return nil, &StoreError{Op: "find follow-up", Err: err}
	}
	return followUp, nil
}

func (uc *FollowUpSchedulerUseCase) findOwned(ctx context.Context, id, userID string) (*entity.FollowUp, error) {
	followUp, err := uc.FollowUpRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, entity.ErrFollowUpNotFound) {
			return nil, &NotFoundError{Resource: "follow-up", ID: id}
		}
		return nil, &StoreError{Op: "find follow-up", Err: err}
	}
	return followUp, nil
}
