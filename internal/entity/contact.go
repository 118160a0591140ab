package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrContactNotFound    = errors.New("contact not found")
	ErrEmailAlreadyExists = errors.New("a contact with this email already exists")
)

// Contact is a person record owned by exactly one user. Stage holds the
// contact's current board column on either track.
type Contact struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	LinkedIn      string    `json:"linkedin,omitempty"`
	Company       string    `json:"company,omitempty"`
	College       string    `json:"college,omitempty"`
	Stage         string    `json:"stage"`
	LastContacted time.Time `json:"last_contacted,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DisplayName is the name shown on board cards and in follow-up prompts.
func (c *Contact) DisplayName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// NewContact creates a contact in the initial funnel stage.
func NewContact(userID, firstName, lastName string) (*Contact, error) {
	contact := &Contact{
		ID:        uuid.New().String(),
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Stage:     StageNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.UserID == "" {
		return errors.New("user_id is required")
	}
	if c.FirstName == "" {
		return errors.New("first_name is required")
	}
	return nil
}

// ContactRepositoryInterface defines persistence for contacts. All lookups
// are scoped to the owning user; a row belonging to someone else behaves as
// if it did not exist.
type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *Contact) error
	FindByID(ctx context.Context, id, userID string) (*Contact, error)
	ListByUser(ctx context.Context, userID string) ([]*Contact, error)
	Update(ctx context.Context, c *Contact) error
	UpdateStage(ctx context.Context, id, userID, stage string) error
	Delete(ctx context.Context, id, userID string) error
	// UpsertByEmail inserts a captured contact or refreshes name, phone and
	// social fields on an existing row with the same owner and email.
	UpsertByEmail(ctx context.Context, c *Contact) error
	// ListCompletedWithoutFollowUp returns contacts sitting in the
	// Call Completed stage that have no follow-up record attached.
	ListCompletedWithoutFollowUp(ctx context.Context) ([]*Contact, error)
}
