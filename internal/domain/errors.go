package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrValidation ErrorCode = "VALIDATION_ERROR"

	// Share-key and library specific errors
	ErrInvalidShareKey ErrorCode = "INVALID_SHARE_KEY"
	ErrMalformedQuiz   ErrorCode = "MALFORMED_QUIZ"
	ErrDuplicateQuiz   ErrorCode = "DUPLICATE_QUIZ"
	ErrQuizNotFound    ErrorCode = "QUIZ_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewValidationFailure(message string) *DomainError {
	return NewError(ErrValidation, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(ErrInternal, message, cause)
}

// NewInvalidShareKeyError covers every transport-corruption failure inside
// decode: bad Base64, a corrupt DEFLATE stream, or unparseable payload JSON.
// Callers treat all of them as "invalid key".
func NewInvalidShareKeyError(cause error) *DomainError {
	return NewError(ErrInvalidShareKey, "share key could not be decoded", cause)
}

// NewMalformedQuizError reports externally authored quiz data that the
// normalizer could not reshape into the canonical form.
func NewMalformedQuizError(message string) *DomainError {
	return NewError(ErrMalformedQuiz, message, nil)
}

func NewDuplicateQuizError(quizID string) *DomainError {
	return NewError(ErrDuplicateQuiz, fmt.Sprintf("quiz %s already exists in the library", quizID), nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("quiz not found: %s", quizID), nil)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates per-field validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}
