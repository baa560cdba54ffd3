package models

// Student defines a student known to the system. Identifiers are assigned
// outside this service (seed data) and are treated as opaque strings.
type Student struct {
	ID       string `json:"id" example:"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"`
	FullName string `json:"fullName" example:"Alice Johnson"`
	Email    string `json:"email" example:"alice@example.com"`
}
