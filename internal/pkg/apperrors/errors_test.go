package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityNotFoundError(t *testing.T) {
	err := NewEntityNotFoundError(EntityStudent, "s-42")

	require.ErrorIs(t, err, ErrResourceNotFound)
	assert.Equal(t, "Student with ID s-42 not found", err.Error())
	assert.Equal(t, EntityStudent, EntityOf(err))
}

func TestEntityOf_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("creating enrolment: %w", NewEntityNotFoundError(EntityCourse, "abc"))

	assert.Equal(t, EntityCourse, EntityOf(err))
	assert.Equal(t, "Course with ID abc not found", MessageOf(err))
}

func TestEntityOf_PlainError(t *testing.T) {
	assert.Empty(t, EntityOf(errors.New("boom")))
	assert.Empty(t, EntityOf(NewConflictError("already there")))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("courseId must be a valid GUID")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "courseId must be a valid GUID", MessageOf(err))
	assert.Empty(t, EntityOf(err))
}

type bindingError struct{ field string }

func (e bindingError) Error() string { return e.field + " is invalid" }

func TestNewValidationError_KeepsCause(t *testing.T) {
	err := NewValidationError(bindingError{field: "title"})

	require.ErrorIs(t, err, ErrValidationFailed)
	var be bindingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "title", be.field)
}
