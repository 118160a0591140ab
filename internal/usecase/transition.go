package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/entity"
)

// FollowUpPrompt is the signal raised when a contact reaches the
// Call Completed stage: the caller must ask the user for a follow-up
// frequency before the contact can move onto the grow track.
type FollowUpPrompt struct {
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
}

// TransitionResult reports the outcome of a stage change. Prompt is non-nil
// only when the transition landed on Call Completed.
type TransitionResult struct {
	Contact *entity.Contact `json:"contact"`
	Changed bool            `json:"changed"`
	Prompt  *FollowUpPrompt `json:"follow_up_prompt,omitempty"`
}

// StageTransitionUseCase validates and applies a contact's stage change.
type StageTransitionUseCase struct {
	Catalog     *entity.Catalog
	ContactRepo entity.ContactRepositoryInterface
	Auth        AuthContext
}

func NewStageTransitionUseCase(
	catalog *entity.Catalog,
	contactRepo entity.ContactRepositoryInterface,
	auth AuthContext,
) *StageTransitionUseCase {
	return &StageTransitionUseCase{
		Catalog:     catalog,
		ContactRepo: contactRepo,
		Auth:        auth,
	}
}

// Execute moves a contact to newStage. Requesting the stage the contact is
// already in succeeds without writing. The follow-up prompt is emitted only
// after the store write resolves; a failed write raises no prompt.
func (uc *StageTransitionUseCase) Execute(ctx context.Context, contactID, newStage string) (*TransitionResult, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !uc.Catalog.IsValid(newStage) {
		return nil, &InvalidStageError{Stage: newStage}
	}

	contact, err := uc.ContactRepo.FindByID(ctx, contactID, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, &NotFoundError{Resource: "contact", ID: contactID}
		}
		return nil, &StoreError{Op: "find contact", Err: err}
	}

	if contact.Stage == newStage {
		return &TransitionResult{Contact: contact, Changed: false}, nil
	}

	if err := uc.ContactRepo.UpdateStage(ctx, contactID, user.ID, newStage); err != nil {
		return nil, &StoreError{Op: "update stage", Err: err}
	}
	contact.Stage = newStage

	result := &TransitionResult{Contact: contact, Changed: true}
	if newStage == entity.StageCallCompleted {
		result.Prompt = &FollowUpPrompt{
			ContactID:   contact.ID,
			ContactName: contact.DisplayName(),
		}
		logrus.WithFields(logrus.Fields{
			"contact_id": contact.ID,
			"user_id":    user.ID,
		}).Info("call completed, follow-up prompt raised")
	}

	return result, nil
}
