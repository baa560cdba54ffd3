package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrolment associates one student with one course. The (StudentID, CourseID)
// pair is the identity of the record.
type Enrolment struct {
	StudentID  string    `json:"studentId"`
	CourseID   uuid.UUID `json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// Matches reports whether the enrolment has the given key.
func (e Enrolment) Matches(studentID string, courseID uuid.UUID) bool {
	return e.StudentID == studentID && e.CourseID == courseID
}
