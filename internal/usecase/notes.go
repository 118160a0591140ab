package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bensapovits/studiously/internal/entity"
)

type CreateNoteInput struct {
	ContactID string `json:"contact_id"`
	Content   string `json:"content"`
}

// NoteUseCase covers per-contact note CRUD. Updates replace the content
// only; a note never moves to another contact.
type NoteUseCase struct {
	Repo entity.NoteRepositoryInterface
	Auth AuthContext
}

func NewNoteUseCase(repo entity.NoteRepositoryInterface, auth AuthContext) *NoteUseCase {
	return &NoteUseCase{Repo: repo, Auth: auth}
}

func (uc *NoteUseCase) Create(ctx context.Context, input CreateNoteInput) (*entity.Note, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if input.ContactID == "" {
		return nil, &ValidationError{"contact_id", "is required"}
	}
	if input.Content == "" {
		return nil, &ValidationError{"content", "is required"}
	}

	note, err := entity.NewNote(user.ID, input.ContactID, input.Content)
	if err != nil {
		return nil, &ValidationError{"note", err.Error()}
	}

	if err := uc.Repo.Create(ctx, note); err != nil {
		return nil, &StoreError{Op: "create note", Err: err}
	}
	return note, nil
}

func (uc *NoteUseCase) ListByContact(ctx context.Context, contactID string) ([]*entity.Note, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := uc.Repo.ListByContact(ctx, contactID, user.ID)
	if err != nil {
		return nil, &StoreError{Op: "list notes", Err: err}
	}
	return notes, nil
}

func (uc *NoteUseCase) UpdateContent(ctx context.Context, id, content string) (*entity.Note, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if content == "" {
		return nil, &ValidationError{"content", "is required"}
	}

	note, err := uc.Repo.FindByID(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return nil, &NotFoundError{Resource: "note", ID: id}
		}
		return nil, &StoreError{Op: "find note", Err: err}
	}

	note.Content = content
	note.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, note); err != nil {
		return nil, &StoreError{Op: "update note", Err: err}
	}
	return note, nil
}

func (uc *NoteUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, id, user.ID); err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return &NotFoundError{Resource: "note", ID: id}
		}
		return &StoreError{Op: "delete note", Err: err}
	}
	return nil
}
