package usecase

import (
	"context"
	"errors"

	"github.com/bensapovits/studiously/internal/entity"
)

// BoardColumn is one kanban column: a stage definition plus the contacts
// currently sitting in it.
type BoardColumn struct {
	Stage    entity.StageDefinition `json:"stage"`
	Contacts []*entity.Contact      `json:"contacts"`
}

// BoardUseCase groups contacts into columns and translates drop gestures
// into stage transitions.
type BoardUseCase struct {
	Catalog    *entity.Catalog
	Transition *StageTransitionUseCase
	Scheduler  *FollowUpSchedulerUseCase
	Auth       AuthContext
}

func NewBoardUseCase(
	catalog *entity.Catalog,
	transition *StageTransitionUseCase,
	scheduler *FollowUpSchedulerUseCase,
	auth AuthContext,
) *BoardUseCase {
	return &BoardUseCase{
		Catalog:    catalog,
		Transition: transition,
		Scheduler:  scheduler,
		Auth:       auth,
	}
}

// Columns partitions contacts into the track's columns by exact stage
// match. Pure and deterministic: column order is catalog order, contact
// order within a column is input order.
func (uc *BoardUseCase) Columns(track entity.Track, contacts []*entity.Contact) []BoardColumn {
	stages := uc.Catalog.Stages(track)
	columns := make([]BoardColumn, 0, len(stages))
	for _, stage := range stages {
		column := BoardColumn{Stage: stage, Contacts: []*entity.Contact{}}
		for _, contact := range contacts {
			if contact.Stage == stage.ID {
				column.Contacts = append(column.Contacts, contact)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// Drop applies a drag-drop gesture. The target column id is the stage
// identifier; the returned result carries the follow-up prompt when the
// drop landed on Call Completed.
func (uc *BoardUseCase) Drop(ctx context.Context, contactID, targetColumnID string) (*TransitionResult, error) {
	return uc.Transition.Execute(ctx, contactID, targetColumnID)
}

// ConfirmFollowUp completes the prompt raised by Drop: it upserts the
// follow-up and then moves the contact's stage to the chosen frequency's
// cadence column. The two writes are independent round trips to the store,
// so they run inside a compensating transaction; a failed stage write
// restores (or removes) the follow-up record.
func (uc *BoardUseCase) ConfirmFollowUp(ctx context.Context, contactID string, frequency entity.Frequency, notes string) (*entity.FollowUp, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	// Snapshot the prior record so the compensation can restore it.
	prior, err := uc.Scheduler.FollowUpRepo.FindByContact(ctx, contactID, user.ID)
	if err != nil && !errors.Is(err, entity.ErrFollowUpNotFound) {
		return nil, &StoreError{Op: "find follow-up", Err: err}
	}

	var followUp *entity.FollowUp

	txn := NewTransaction()

	txn.AddOperation("upsert_follow_up", func(ctx context.Context) error {
		fu, err := uc.Scheduler.CreateOrUpdate(ctx, contactID, frequency, notes)
		if err != nil {
			return err
		}
		followUp = fu
		return nil
	})
	txn.AddCompensation("restore_follow_up", func(ctx context.Context) error {
		if prior == nil {
			return uc.Scheduler.FollowUpRepo.Delete(ctx, followUp.ID, user.ID)
		}
		return uc.Scheduler.FollowUpRepo.Update(ctx, prior)
	})

	txn.AddOperation("move_to_cadence", func(ctx context.Context) error {
		_, err := uc.Transition.Execute(ctx, contactID, frequency.Stage())
		return err
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, err
	}

	return followUp, nil
}
