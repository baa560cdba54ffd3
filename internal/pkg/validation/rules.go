package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// Course field minimum lengths, mirrored by the request binding tags
	CourseTitleMinLength       = 2
	CourseDescriptionMinLength = 5
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// StringValidation describes the checks applied to one string value
type StringValidation struct {
	Value   string
	MinLen  int
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation. Values are required; whitespace-only values
// count as empty and lengths are measured in runes.
func (v *StringValidation) Validate() bool {
	if strings.TrimSpace(v.Value) == "" {
		return false
	}

	if v.MinLen > 0 && len([]rune(v.Value)) < v.MinLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// ValidCourseTitle reports whether title satisfies the course title rules
func ValidCourseTitle(title string) bool {
	return NewStringValidation(title).WithMinLength(CourseTitleMinLength).Validate()
}

// ValidCourseDescription reports whether description satisfies the course description rules
func ValidCourseDescription(description string) bool {
	return NewStringValidation(description).WithMinLength(CourseDescriptionMinLength).Validate()
}

// ValidEmail reports whether email looks like an email address
func ValidEmail(email string) bool {
	return NewStringValidation(email).WithPattern(CompiledPatterns.Email).Validate()
}
