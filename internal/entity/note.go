package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoteNotFound = errors.New("note not found")

// Note is a free-text annotation attached to exactly one contact.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ContactID string    `json:"contact_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a note for a contact.
func NewNote(userID, contactID, content string) (*Note, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if contactID == "" {
		return nil, errors.New("contact_id is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}
	now := time.Now()
	return &Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		ContactID: contactID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

type NoteRepositoryInterface interface {
	Create(ctx context.Context, n *Note) error
	FindByID(ctx context.Context, id, userID string) (*Note, error)
	// ListByContact returns a contact's notes, most recently updated first.
	ListByContact(ctx context.Context, contactID, userID string) ([]*Note, error)
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, id, userID string) error
}
