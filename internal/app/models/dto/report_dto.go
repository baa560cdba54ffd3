package dto

import "github.com/google/uuid"

// ReportRowResponse is one row of the enrolment summary report
type ReportRowResponse struct {
	CourseID      uuid.UUID `json:"courseId" example:"11111111-1111-1111-1111-111111111111"`
	CourseTitle   string    `json:"courseTitle" example:"Introduction to React"`
	TotalStudents int       `json:"totalStudents" example:"12"`
}
