package dto

import (
	"github.com/google/uuid"
	"github.com/yigit/minilms/internal/app/models"
)

// CourseResponse represents course information returned by the API
type CourseResponse struct {
	ID          uuid.UUID `json:"id" example:"11111111-1111-1111-1111-111111111111"`
	Title       string    `json:"title" example:"Introduction to React"`
	Description string    `json:"description" example:"Learn the fundamentals of React"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,min=2" example:"Introduction to React"`
	Description string `json:"description" binding:"required,min=5" example:"Learn the fundamentals of React"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Title       string `json:"title" binding:"required,min=2" example:"Introduction to React"`
	Description string `json:"description" binding:"required,min=5" example:"Learn the fundamentals of React"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course models.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
	}
}

// FromCourses converts a list of courses
func FromCourses(courses []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, FromCourse(c))
	}
	return responses
}
