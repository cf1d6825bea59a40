package services

import (
	"regexp"
	"strings"

	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/Alex3925/company-suggestion-box/types"
)

// Rejection reasons surfaced verbatim to API callers.
const (
	ReasonMissingFields   = "Missing required fields."
	ReasonMessageTooShort = "Message too short."
	ReasonInvalidEmail    = "Invalid email address."
)

const minMessageLength = 3

// emailPattern accepts a basic local@domain.tld shape. It is deliberately
// loose; the field is display-only and never used for delivery.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSubmission normalizes a raw submission and checks it against the
// acceptance rules. It is a pure mapping: no I/O, no side effects. On success
// it returns a draft suggestion with ID and CreatedAt left unset.
func ValidateSubmission(req types.SuggestionCreate) (*types.Suggestion, *apperrors.AppError) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	suggestionType := strings.TrimSpace(req.Type)
	message := strings.TrimSpace(req.Message)
	impact := strings.TrimSpace(req.Impact)
	extra := strings.TrimSpace(req.Extra)

	if name == "" || email == "" || suggestionType == "" || message == "" {
		return nil, apperrors.ValidationFailed(ReasonMissingFields, "name, email, type and message must not be blank")
	}
	if len(message) < minMessageLength {
		return nil, apperrors.ValidationFailed(ReasonMessageTooShort, "message must be at least 3 characters after trimming")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.ValidationFailed(ReasonInvalidEmail, "email must look like local@domain.tld")
	}

	return &types.Suggestion{
		Name:    name,
		Email:   email,
		Type:    suggestionType,
		Message: message,
		Impact:  impact,
		Extra:   extra,
	}, nil
}
