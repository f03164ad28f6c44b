package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeConflict   ErrorType = "CONFLICT"
	ErrorTypeInternal   ErrorType = "INTERNAL"
)

// Error codes for the analysis engine's well-known failure modes
const (
	CodeInvalidWeights   = "INVALID_WEIGHTS"
	CodeUnknownReference = "UNKNOWN_REFERENCE"
	CodeInvalidDimension = "INVALID_DIMENSION"
	CodeDuplicateEntity  = "DUPLICATE_ENTITY"
)

// AppError represents an application-specific error with a type, a stable
// code and optional structured details
type AppError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetail adds a single structured detail
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// Domain-specific constructors

// NewInvalidWeightsError reports importance weights that are out of range
// or do not sum to one
func NewInvalidWeightsError(commentWeight, viewWeight float64) *AppError {
	return NewValidationError("weights must be between 0 and 1 and sum to 1").
		WithCode(CodeInvalidWeights).
		WithDetail("comment_weight", commentWeight).
		WithDetail("view_weight", viewWeight)
}

// NewUnknownReferenceError reports an event that references an entity
// missing from the analyzed snapshot
func NewUnknownReferenceError(kind, id string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    CodeUnknownReference,
		Message: fmt.Sprintf("unknown %s reference: %s", kind, id),
		Details: map[string]interface{}{"kind": kind, "id": id},
	}
}

// NewInvalidDimensionError reports an unsupported rendering dimension mode
func NewInvalidDimensionError(got string) *AppError {
	return NewValidationError(fmt.Sprintf("dimensions must be '2d' or '3d', got %q", got)).
		WithCode(CodeInvalidDimension).
		WithDetail("dimensions", got)
}

// NewDuplicateEntityError reports two snapshot entities sharing an identifier
func NewDuplicateEntityError(kind, id string) *AppError {
	return NewConflictError(fmt.Sprintf("duplicate %s: %s", kind, id)).
		WithCode(CodeDuplicateEntity).
		WithDetail("kind", kind).
		WithDetail("id", id)
}

// Type and code predicates

func hasType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return hasType(err, ErrorTypeConflict)
}

// IsInvalidWeights checks for the invalid importance weights failure
func IsInvalidWeights(err error) bool {
	return hasCode(err, CodeInvalidWeights)
}

// IsUnknownReference checks for a dangling entity reference failure
func IsUnknownReference(err error) bool {
	return hasCode(err, CodeUnknownReference)
}

// IsInvalidDimension checks for an unsupported dimension mode failure
func IsInvalidDimension(err error) bool {
	return hasCode(err, CodeInvalidDimension)
}
