package response

import (
	"errors"

	"github.com/cmlabs-hris/competency-web/internal/domain/auth"
	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/domain/employee"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
	"github.com/cmlabs-hris/competency-web/internal/pkg/validator"
)

// ErrorMessage maps domain errors to the message shown on a screen. Backend
// errors carrying a detail show that detail; anything else shows fallback.
func ErrorMessage(err error, fallback string) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs.Error()
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, auth.ErrMissingFields):
		return "All fields are required"

	// Competency domain errors
	case errors.Is(err, competency.ErrNotAuthenticated):
		return "User not authenticated"
	case errors.Is(err, competency.ErrCompetencyNotFound):
		return "Competency not found"

	// Employee domain errors
	case errors.Is(err, employee.ErrIncompleteCompetencies):
		return "Please complete all competency selections"
	case errors.Is(err, employee.ErrDuplicateCompetencies):
		return "Each competency can only be selected once"
	case errors.Is(err, employee.ErrRowOutOfRange):
		return "Competency row not found"
	}

	return apiclient.DetailOr(err, fallback)
}
