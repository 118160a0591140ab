package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestValidator() *TokenValidator {
	return NewTokenValidator([]byte("test-secret"), "https://auth.studiously.app", "authenticated")
}

func TestValidateRoundTrip(t *testing.T) {
	validator := newTestValidator()

	token, err := validator.IssueForTest("user-1", "ben@studiously.app", time.Hour)
	assert.NoError(t, err)

	userID, email, err := validator.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ben@studiously.app", email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	other := NewTokenValidator([]byte("other-secret"), "https://auth.studiously.app", "authenticated")
	token, err := other.IssueForTest("user-1", "ben@studiously.app", time.Hour)
	assert.NoError(t, err)

	_, _, err = newTestValidator().Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	validator := newTestValidator()
	token, err := validator.IssueForTest("user-1", "ben@studiously.app", -time.Minute)
	assert.NoError(t, err)

	_, _, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	other := NewTokenValidator([]byte("test-secret"), "https://evil.example.com", "authenticated")
	token, err := other.IssueForTest("user-1", "ben@studiously.app", time.Hour)
	assert.NoError(t, err)

	_, _, err = newTestValidator().Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, _, err := newTestValidator().Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
