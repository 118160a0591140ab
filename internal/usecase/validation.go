package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

// ValidateContactInput checks the fields shared by create and capture.
func ValidateContactInput(firstName, email, phone string) []*ValidationError {
	var errs []*ValidationError

	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, &ValidationError{"first_name", "is required"})
	} else if len(firstName) > 200 {
		errs = append(errs, &ValidationError{"first_name", "must not exceed 200 characters"})
	}

	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, &ValidationError{"email", "is invalid"})
		}
	}

	if phone != "" && !isValidPhoneNumber(phone) {
		errs = append(errs, &ValidationError{"phone", "must be a valid phone number"})
	}

	return errs
}

// ValidateCaptureInput additionally requires something to dedupe on: the
// extension must send an email address, and the source page must be one we
// scrape.
func ValidateCaptureInput(input CaptureContactInput) []*ValidationError {
	errs := ValidateContactInput(input.FirstName, input.Email, input.Phone)

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, &ValidationError{"email", "is required for captured contacts"})
	}

	if input.Source != "" && input.Source != "gmail" && input.Source != "linkedin" {
		errs = append(errs, &ValidationError{"source", "must be gmail or linkedin"})
	}

	return errs
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 7 && len(cleaned) <= 15
}
