package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bensapovits/studiously/internal/entity"
)

func newTestContact(stage string) *entity.Contact {
	return &entity.Contact{
		ID:        "contact-1",
		UserID:    "user-1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Stage:     stage,
	}
}

func TestTransitionAppliesStageChange(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, testAuth())

	repo.On("FindByID", ctx, "contact-1", "user-1").Return(newTestContact(entity.StageNew), nil)
	repo.On("UpdateStage", ctx, "contact-1", "user-1", entity.StageContacted).Return(nil)

	result, err := uc.Execute(ctx, "contact-1", entity.StageContacted)

	assert.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, entity.StageContacted, result.Contact.Stage)
	assert.Nil(t, result.Prompt)
	repo.AssertExpectations(t)
}

func TestTransitionSameStageIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, testAuth())

	repo.On("FindByID", ctx, "contact-1", "user-1").Return(newTestContact(entity.StageContacted), nil)

	result, err := uc.Execute(ctx, "contact-1", entity.StageContacted)

	assert.NoError(t, err)
	assert.False(t, result.Changed)
	repo.AssertNotCalled(t, "UpdateStage", ctx, "contact-1", "user-1", entity.StageContacted)
}

func TestTransitionRejectsUnknownStage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, testAuth())

	result, err := uc.Execute(ctx, "contact-1", "Telepathy")

	assert.Nil(t, result)
	assert.True(t, IsInvalidStage(err))
	repo.AssertNotCalled(t, "FindByID")
	repo.AssertNotCalled(t, "UpdateStage")
}

func TestTransitionToCallCompletedRaisesPrompt(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, testAuth())

	repo.On("FindByID", ctx, "contact-1", "user-1").Return(newTestContact(entity.StageMeetingBooked), nil)
	repo.On("UpdateStage", ctx, "contact-1", "user-1", entity.StageCallCompleted).Return(nil)

	result, err := uc.Execute(ctx, "contact-1", entity.StageCallCompleted)

	assert.NoError(t, err)
	assert.True(t, result.Changed)
	if assert.NotNil(t, result.Prompt) {
		assert.Equal(t, "contact-1", result.Prompt.ContactID)
		assert.Equal(t, "Ada Lovelace", result.Prompt.ContactName)
	}
	repo.AssertExpectations(t)
}

func TestTransitionNoPromptWhenWriteFails(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, testAuth())

	repo.On("FindByID", ctx, "contact-1", "user-1").Return(newTestContact(entity.StageMeetingBooked), nil)
	repo.On("UpdateStage", ctx, "contact-1", "user-1", entity.StageCallCompleted).Return(errors.New("connection reset"))

	result, err := uc.Execute(ctx, "contact-1", entity.StageCallCompleted)

	assert.Nil(t, result)
	assert.True(t, IsStoreError(err))
}

func TestTransitionContactNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, testAuth())

	repo.On("FindByID", ctx, "ghost", "user-1").Return(nil, entity.ErrContactNotFound)

	result, err := uc.Execute(ctx, "ghost", entity.StageContacted)

	assert.Nil(t, result)
	assert.True(t, IsNotFound(err))
}

func TestTransitionRequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, anonymousAuth())

	result, err := uc.Execute(ctx, "contact-1", entity.StageContacted)

	assert.Nil(t, result)
	assert.True(t, IsNotAuthenticated(err))
	repo.AssertNotCalled(t, "FindByID")
}

// Cross-track validation is deliberately permissive: a funnel contact can
// be dropped straight onto a cadence stage without completing the funnel.
func TestTransitionAllowsCrossTrackMoves(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	uc := NewStageTransitionUseCase(entity.NewCatalog(), repo, testAuth())

	repo.On("FindByID", ctx, "contact-1", "user-1").Return(newTestContact(entity.StageNew), nil)
	repo.On("UpdateStage", ctx, "contact-1", "user-1", entity.StageQuarterly).Return(nil)

	result, err := uc.Execute(ctx, "contact-1", entity.StageQuarterly)

	assert.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Nil(t, result.Prompt)
}
