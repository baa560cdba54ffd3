package models

import "github.com/google/uuid"

// Course represents a course offered in the catalogue.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
