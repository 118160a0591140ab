package usecase

import (
	"errors"
	"fmt"
)

// NotAuthenticatedError is returned when an operation runs with no active
// user session.
type NotAuthenticatedError struct{}

func (e *NotAuthenticatedError) Error() string {
	return "not authenticated"
}

func IsNotAuthenticated(err error) bool {
	var target *NotAuthenticatedError
	return errors.As(err, &target)
}

// NotFoundError is returned when a referenced contact or follow-up is
// absent or owned by another user.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// InvalidStageError is returned when a stage value is outside the catalog.
type InvalidStageError struct {
	Stage string
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("invalid stage: %q", e.Stage)
}

func IsInvalidStage(err error) bool {
	var target *InvalidStageError
	return errors.As(err, &target)
}

// StoreError wraps a failure from the persistence layer. It is surfaced to
// the caller unmodified; the use cases never retry, only the explicit
// transaction compensations run.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsStoreError(err error) bool {
	var target *StoreError
	return errors.As(err, &target)
}
