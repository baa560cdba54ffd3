package models

import "slices"

// CourseDetail holds the extended, read-only description of a course.
type CourseDetail struct {
	CourseID         string            `json:"courseId"`
	Instructor       Instructor        `json:"instructor"`
	Level            string            `json:"level"`
	Language         string            `json:"language"`
	Category         string            `json:"category"`
	DurationHours    int               `json:"durationHours"`
	CreatedAt        string            `json:"createdAt"`
	LastUpdated      string            `json:"lastUpdated"`
	WhatYouWillLearn []string          `json:"whatYouWillLearn"`
	Requirements     []string          `json:"requirements"`
	Syllabus         []SyllabusSection `json:"syllabus"`
}

// Instructor is the person teaching a course.
type Instructor struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

// SyllabusSection is one section of a course syllabus.
type SyllabusSection struct {
	Title           string `json:"title"`
	Lectures        int    `json:"lectures"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Clone returns a copy of d that shares no slices with it.
func (d CourseDetail) Clone() CourseDetail {
	d.WhatYouWillLearn = slices.Clone(d.WhatYouWillLearn)
	d.Requirements = slices.Clone(d.Requirements)
	d.Syllabus = slices.Clone(d.Syllabus)
	return d
}
