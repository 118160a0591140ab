package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/entity"
)

type CreateContactInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Company   string `json:"company"`
	College   string `json:"college"`
	Stage     string `json:"stage"`
}

type UpdateContactInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Company   string `json:"company"`
	College   string `json:"college"`
	Stage     string `json:"stage"`
}

// CaptureContactInput is what the browser extension scrapes off a Gmail or
// LinkedIn page.
type CaptureContactInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Company   string `json:"company"`
	College   string `json:"college"`
	Source    string `json:"source"` // gmail | linkedin
}

// ContactUseCase covers contact CRUD and extension capture.
type ContactUseCase struct {
	Catalog *entity.Catalog
	Repo    entity.ContactRepositoryInterface
	Auth    AuthContext
}

func NewContactUseCase(catalog *entity.Catalog, repo entity.ContactRepositoryInterface, auth AuthContext) *ContactUseCase {
	return &ContactUseCase{Catalog: catalog, Repo: repo, Auth: auth}
}

func (uc *ContactUseCase) Create(ctx context.Context, input CreateContactInput) (*entity.Contact, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if validationErrors := ValidateContactInput(input.FirstName, input.Email, input.Phone); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	contact, err := entity.NewContact(user.ID, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.LinkedIn = input.LinkedIn
	contact.Company = input.Company
	contact.College = input.College

	if input.Stage != "" {
		if !uc.Catalog.IsValid(input.Stage) {
			return nil, &InvalidStageError{Stage: input.Stage}
		}
		contact.Stage = input.Stage
	}

	if err := uc.Repo.Create(ctx, contact); err != nil {
		return nil, &StoreError{Op: "create contact", Err: err}
	}
	return contact, nil
}

func (uc *ContactUseCase) Get(ctx context.Context, id string) (*entity.Contact, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	contact, err := uc.Repo.FindByID(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, &NotFoundError{Resource: "contact", ID: id}
		}
		return nil, &StoreError{Op: "find contact", Err: err}
	}
	return contact, nil
}

func (uc *ContactUseCase) List(ctx context.Context) ([]*entity.Contact, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	contacts, err := uc.Repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, &StoreError{Op: "list contacts", Err: err}
	}
	return contacts, nil
}

// Update applies the non-empty fields of input. Stage changes go through
// the same catalog validation as the board.
func (uc *ContactUseCase) Update(ctx context.Context, id string, input UpdateContactInput) (*entity.Contact, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	contact, err := uc.Repo.FindByID(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, &NotFoundError{Resource: "contact", ID: id}
		}
		return nil, &StoreError{Op: "find contact", Err: err}
	}

	if input.Stage != "" && !uc.Catalog.IsValid(input.Stage) {
		return nil, &InvalidStageError{Stage: input.Stage}
	}

	if input.FirstName != "" {
		contact.FirstName = input.FirstName
	}
	if input.LastName != "" {
		contact.LastName = input.LastName
	}
	if input.Email != "" {
		contact.Email = input.Email
	}
	if input.Phone != "" {
		contact.Phone = input.Phone
	}
	if input.LinkedIn != "" {
		contact.LinkedIn = input.LinkedIn
	}
	if input.Company != "" {
		contact.Company = input.Company
	}
	if input.College != "" {
		contact.College = input.College
	}
	if input.Stage != "" {
		contact.Stage = input.Stage
	}
	contact.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, contact); err != nil {
		return nil, &StoreError{Op: "update contact", Err: err}
	}
	return contact, nil
}

func (uc *ContactUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, id, user.ID); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return &NotFoundError{Resource: "contact", ID: id}
		}
		return &StoreError{Op: "delete contact", Err: err}
	}
	return nil
}

// Capture ingests a contact scraped by the browser extension. Captures are
// upserted by email so re-scraping the same person refreshes their card
// instead of duplicating it. New captures land in the New stage with
// last_contacted set to the capture time.
func (uc *ContactUseCase) Capture(ctx context.Context, input CaptureContactInput) (*entity.Contact, error) {
	user, err := uc.Auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if validationErrors := ValidateCaptureInput(input); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	contact, err := entity.NewContact(user.ID, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.LinkedIn = input.LinkedIn
	contact.Company = input.Company
	contact.College = input.College
	contact.LastContacted = time.Now()

	if err := uc.Repo.UpsertByEmail(ctx, contact); err != nil {
		return nil, &StoreError{Op: "capture contact", Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"contact_id": contact.ID,
		"source":     input.Source,
	}).Info("contact captured")

	return contact, nil
}
