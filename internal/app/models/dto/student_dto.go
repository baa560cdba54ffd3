package dto

import "github.com/yigit/minilms/internal/app/models"

// StudentResponse represents student information returned by the API
type StudentResponse struct {
	ID       string `json:"id" example:"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"`
	FullName string `json:"fullName" example:"Alice Johnson"`
	Email    string `json:"email" example:"alice@example.com"`
}

// FromStudents converts a list of students
func FromStudents(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		responses = append(responses, FromStudent(s))
	}
	return responses
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s models.Student) StudentResponse {
	return StudentResponse{ID: s.ID, FullName: s.FullName, Email: s.Email}
}
