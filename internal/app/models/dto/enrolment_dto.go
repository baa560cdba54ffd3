package dto

import (
	"time"

	"github.com/google/uuid"
)

// UnknownName is shown in place of a student name or course title that no
// longer resolves.
const UnknownName = "Unknown"

// EnrolmentResponse is an enrolment enriched with the student name and course title
type EnrolmentResponse struct {
	StudentID   string    `json:"studentId" example:"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"`
	StudentName string    `json:"studentName" example:"Alice Johnson"`
	CourseID    uuid.UUID `json:"courseId" example:"11111111-1111-1111-1111-111111111111"`
	CourseTitle string    `json:"courseTitle" example:"Introduction to React"`
	EnrolledAt  time.Time `json:"enrolledAt" example:"2025-04-23T12:01:05Z"`
}

// CreateEnrolmentRequest represents enrolment creation data
type CreateEnrolmentRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"`
	CourseID  string `json:"courseId" binding:"required,uuid" example:"11111111-1111-1111-1111-111111111111"`
}

// EnrolmentFilter narrows an enrolment listing. When both are set the course
// filter applies and the student filter is ignored.
type EnrolmentFilter struct {
	CourseID  *uuid.UUID
	StudentID *string
}
