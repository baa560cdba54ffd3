package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/minilms/internal/app/models"
	appRepos "github.com/yigit/minilms/internal/app/repositories"
	"github.com/yigit/minilms/internal/pkg/validation"
)

// Seed file names inside the data directory
const (
	CoursesFile       = "courses.json"
	StudentsFile      = "students.json"
	EnrolmentsFile    = "enrolments.json"
	CourseDetailsFile = "courseDetails.json"
)

// enrolledAtLayouts are tried in order when parsing seeded timestamps
var enrolledAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type courseRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type studentRecord struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type enrolmentRecord struct {
	StudentID  string `json:"studentId"`
	CourseID   string `json:"courseId"`
	EnrolledAt string `json:"enrolledAt"`
}

// Loader reads seed data from JSON files in Dir. A missing or unreadable file
// yields an empty result and an error log; it never aborts startup.
type Loader struct {
	Dir    string
	Logger zerolog.Logger
}

// NewLoader creates a loader for the given data directory
func NewLoader(dir string, lgr zerolog.Logger) *Loader {
	return &Loader{Dir: dir, Logger: lgr.With().Str("component", "seed").Logger()}
}

// Counts reports how many records were inserted into the store
type Counts struct {
	Courses    int
	Students   int
	Enrolments int
}

// LoadCourses loads courses, skipping records whose id is not a GUID
func (l *Loader) LoadCourses() []appModels.Course {
	records, ok := readRecords[courseRecord](l, CoursesFile)
	if !ok {
		return []appModels.Course{}
	}

	courses := make([]appModels.Course, 0, len(records))
	for i, rec := range records {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			l.Logger.Warn().Err(err).Int("index", i).Str("id", rec.ID).Msg("Skipping course with invalid id")
			continue
		}
		if !validation.ValidCourseTitle(rec.Title) || !validation.ValidCourseDescription(rec.Description) {
			l.Logger.Warn().Str("id", rec.ID).Msg("Course title or description is shorter than the API accepts")
		}
		courses = append(courses, appModels.Course{
			ID:          id,
			Title:       rec.Title,
			Description: rec.Description,
		})
	}

	l.Logger.Info().Int("count", len(courses)).Msg("Loaded courses")
	return courses
}

// LoadStudents loads students, skipping records without an id
func (l *Loader) LoadStudents() []appModels.Student {
	records, ok := readRecords[studentRecord](l, StudentsFile)
	if !ok {
		return []appModels.Student{}
	}

	students := make([]appModels.Student, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			l.Logger.Warn().Int("index", i).Msg("Skipping student without id")
			continue
		}
		if rec.Email != "" && !validation.ValidEmail(rec.Email) {
			l.Logger.Warn().Str("id", rec.ID).Str("email", rec.Email).Msg("Student has a malformed email")
		}
		students = append(students, appModels.Student{
			ID:       rec.ID,
			FullName: rec.FullName,
			Email:    rec.Email,
		})
	}

	l.Logger.Info().Int("count", len(students)).Msg("Loaded students")
	return students
}

// LoadEnrolments loads enrolments with their recorded timestamps. Records with
// an empty student id, a non-GUID course id or an unparsable timestamp are skipped.
func (l *Loader) LoadEnrolments() []appModels.Enrolment {
	records, ok := readRecords[enrolmentRecord](l, EnrolmentsFile)
	if !ok {
		return []appModels.Enrolment{}
	}

	enrolments := make([]appModels.Enrolment, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.StudentID) == "" {
			l.Logger.Warn().Int("index", i).Msg("Skipping enrolment without studentId")
			continue
		}
		courseID, err := uuid.Parse(rec.CourseID)
		if err != nil {
			l.Logger.Warn().Err(err).Int("index", i).Str("courseId", rec.CourseID).Msg("Skipping enrolment with invalid courseId")
			continue
		}
		enrolledAt, err := parseEnrolledAt(rec.EnrolledAt)
		if err != nil {
			l.Logger.Warn().Err(err).Int("index", i).Msg("Skipping enrolment with invalid enrolledAt")
			continue
		}
		enrolments = append(enrolments, appModels.Enrolment{
			StudentID:  rec.StudentID,
			CourseID:   courseID,
			EnrolledAt: enrolledAt,
		})
	}

	l.Logger.Info().Int("count", len(enrolments)).Msg("Loaded enrolments")
	return enrolments
}

// LoadCourseDetails loads the course detail catalogue
func (l *Loader) LoadCourseDetails() []appModels.CourseDetail {
	details, ok := readRecords[appModels.CourseDetail](l, CourseDetailsFile)
	if !ok {
		return []appModels.CourseDetail{}
	}
	l.Logger.Info().Int("count", len(details)).Msg("Loaded course details")
	return details
}

// CourseDetailsLoader adapts LoadCourseDetails to the read-through cache loader signature
func (l *Loader) CourseDetailsLoader() func(ctx context.Context, key string) ([]appModels.CourseDetail, error) {
	return func(ctx context.Context, key string) ([]appModels.CourseDetail, error) {
		return l.LoadCourseDetails(), nil
	}
}

// Populate inserts courses, students and enrolments into the store and returns
// what was inserted. Courses and students with a duplicate id keep the first
// occurrence. Course details are not touched; they are read on demand through
// CourseDetailsLoader.
func Populate(loader *Loader, repos *appRepos.Repositories) Counts {
	var counts Counts

	for _, course := range loader.LoadCourses() {
		if repos.CourseRepository.Add(course) {
			counts.Courses++
		} else {
			loader.Logger.Warn().Str("id", course.ID.String()).Msg("Duplicate course id in seed data")
		}
	}

	for _, student := range loader.LoadStudents() {
		if repos.StudentRepository.Add(student) {
			counts.Students++
		} else {
			loader.Logger.Warn().Str("id", student.ID).Msg("Duplicate student id in seed data")
		}
	}

	for _, enrolment := range loader.LoadEnrolments() {
		repos.EnrolmentRepository.Add(enrolment)
		counts.Enrolments++
	}

	loader.Logger.Info().
		Int("courses", counts.Courses).
		Int("students", counts.Students).
		Int("enrolments", counts.Enrolments).
		Msg("Seed data loaded")
	return counts
}

func readRecords[T any](l *Loader, name string) ([]T, bool) {
	path := filepath.Join(l.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.Logger.Error().Str("path", path).Msg("Seed file not found")
		} else {
			l.Logger.Error().Err(err).Str("path", path).Msg("Failed to read seed file")
		}
		return nil, false
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		l.Logger.Error().Err(err).Str("path", path).Msg("Failed to parse seed file")
		return nil, false
	}
	return records, true
}

func parseEnrolledAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range enrolledAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}
