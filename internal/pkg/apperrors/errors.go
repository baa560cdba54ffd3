package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Entity names used in not-found errors
const (
	EntityCourse       = "Course"
	EntityStudent      = "Student"
	EntityEnrolment    = "Enrolment"
	EntityCourseDetail = "CourseDetail"
)

// NewEntityNotFoundError creates a not found error naming the missing entity and its id.
func NewEntityNotFoundError(entity string, id interface{}) error {
	return NewCustomError(ErrResourceNotFound, fmt.Sprintf("%s with ID %v not found", entity, id)).
		WithDetails(map[string]interface{}{
			"entity": entity,
			"id":     fmt.Sprint(id),
		})
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError marks a request binding failure as a validation error.
// The binding error stays reachable through errors.As.
func NewValidationError(cause error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, cause)
}

// EntityOf returns the entity named by a not found error, or "" when err carries none.
func EntityOf(err error) string {
	var ce *CustomError
	if !errors.As(err, &ce) || ce.Details == nil {
		return ""
	}
	entity, _ := ce.Details["entity"].(string)
	return entity
}

// MessageOf returns the user facing message of err.
func MessageOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
