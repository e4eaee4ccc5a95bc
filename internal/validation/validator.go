package validation

import (
	"quizshare/internal/domain"
	"regexp"
	"strings"
)

// Share keys are Base64 with an optional version prefix. The length cap is
// generous; a quiz set that large will not fit in a QR code anyway.
const maxShareKeyLength = 128 * 1024

var validShareKey = regexp.MustCompile(`^(v[0-9]+\.)?[A-Za-z0-9+/]+={0,2}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateShareKey checks the shape of a share key before it reaches the
// codec. The codec still verifies the actual payload.
func (v *Validator) ValidateShareKey(key string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(key) == "" {
		errors = append(errors, domain.NewMissingFieldError("key"))
		return errors
	}
	if len(key) > maxShareKeyLength {
		errors = append(errors, domain.ValidationError{Field: "key", Message: "exceeds maximum length"})
		return errors
	}
	if !validShareKey.MatchString(key) {
		errors = append(errors, domain.NewInvalidFormatError("key", truncateForMessage(key)))
	}
	return errors
}

// ValidateImportQuizRequest checks the raw quiz document body.
func (v *Validator) ValidateImportQuizRequest(body []byte) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(body) == 0 {
		errors = append(errors, domain.NewMissingFieldError("body"))
	}
	return errors
}

// ValidateBulkShareKeysRequest checks a bulk share-key request.
func (v *Validator) ValidateBulkShareKeysRequest(quizIDs []string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(quizIDs) == 0 {
		errors = append(errors, domain.NewMissingFieldError("quiz_ids"))
		return errors
	}
	if len(quizIDs) > 100 {
		errors = append(errors, domain.ValidationError{Field: "quiz_ids", Message: "at most 100 ids per request"})
	}
	for _, id := range quizIDs {
		if strings.TrimSpace(id) == "" {
			errors = append(errors, domain.NewMissingFieldError("quiz_ids[]"))
			break
		}
	}
	return errors
}

func truncateForMessage(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}
