package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DenyReason classifies why an authenticated actor was refused.
type DenyReason string

const (
	DenyWrongRole       DenyReason = "wrong_role"
	DenyPendingApproval DenyReason = "pending_approval"
	DenyNotOwner        DenyReason = "not_owner"
	DenySelfValidation  DenyReason = "self_validation"
	DenyAccountInactive DenyReason = "account_inactive"
)

func (r DenyReason) String() string { return string(r) }

// defaultDenyMessages are the user-facing explanations for each reason.
var defaultDenyMessages = map[DenyReason]string{
	DenyWrongRole:       "your role does not allow this action",
	DenyPendingApproval: "your author account is awaiting approval by an administrator",
	DenyNotOwner:        "you can only change content you own",
	DenySelfValidation:  "you cannot validate your own proposal",
	DenyAccountInactive: "your account is not active",
}

// AuthorizationError is returned when an authenticated actor is not allowed
// to perform an action. It unwraps to ErrForbidden.
type AuthorizationError struct {
	Reason  DenyReason
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("forbidden (%s): %s", e.Reason, e.Message)
}

func (e *AuthorizationError) Unwrap() error { return ErrForbidden }

// Deny builds an AuthorizationError with the default message for reason.
func Deny(reason DenyReason) *AuthorizationError {
	return &AuthorizationError{Reason: reason, Message: defaultDenyMessages[reason]}
}
