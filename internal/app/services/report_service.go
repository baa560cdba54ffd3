package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/app/repositories"
)

// ReportService defines the interface for reporting operations
type ReportService interface {
	GetEnrolmentsSummary(ctx context.Context) ([]dto.ReportRowResponse, error)
}

type reportServiceImpl struct {
	courseRepo    *repositories.CourseRepository
	enrolmentRepo *repositories.EnrolmentRepository
}

// NewReportService creates a new report service instance
func NewReportService(courseRepo *repositories.CourseRepository, enrolmentRepo *repositories.EnrolmentRepository) ReportService {
	return &reportServiceImpl{
		courseRepo:    courseRepo,
		enrolmentRepo: enrolmentRepo,
	}
}

// GetEnrolmentsSummary returns one row per existing course with the number of
// distinct students enrolled, sorted by course title. Duplicate enrolments
// count once; enrolments for courses that no longer exist are ignored.
func (s *reportServiceImpl) GetEnrolmentsSummary(ctx context.Context) ([]dto.ReportRowResponse, error) {
	courses := s.courseRepo.GetAll()
	enrolments := s.enrolmentRepo.GetAll()

	studentsByCourse := make(map[uuid.UUID]map[string]struct{})
	for _, e := range enrolments {
		students, ok := studentsByCourse[e.CourseID]
		if !ok {
			students = make(map[string]struct{})
			studentsByCourse[e.CourseID] = students
		}
		students[e.StudentID] = struct{}{}
	}

	rows := make([]dto.ReportRowResponse, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, dto.ReportRowResponse{
			CourseID:      course.ID,
			CourseTitle:   course.Title,
			TotalStudents: len(studentsByCourse[course.ID]),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CourseTitle < rows[j].CourseTitle
	})
	return rows, nil
}
