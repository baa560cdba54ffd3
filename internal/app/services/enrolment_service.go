package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/minilms/internal/app/models"
	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/app/repositories"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

// EnrolmentService defines the interface for enrolment-related operations
type EnrolmentService interface {
	GetAllEnrolments(ctx context.Context, filter dto.EnrolmentFilter) ([]dto.EnrolmentResponse, error)
	CreateEnrolment(ctx context.Context, studentID string, courseID uuid.UUID) (*dto.EnrolmentResponse, error)
	DeleteEnrolment(ctx context.Context, studentID string, courseID uuid.UUID) error
}

type enrolmentServiceImpl struct {
	enrolmentRepo *repositories.EnrolmentRepository
	studentRepo   *repositories.StudentRepository
	courseRepo    *repositories.CourseRepository
	logger        zerolog.Logger
}

// NewEnrolmentService creates a new enrolment service instance
func NewEnrolmentService(
	enrolmentRepo *repositories.EnrolmentRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	logger zerolog.Logger,
) EnrolmentService {
	return &enrolmentServiceImpl{
		enrolmentRepo: enrolmentRepo,
		studentRepo:   studentRepo,
		courseRepo:    courseRepo,
		logger:        logger,
	}
}

// GetAllEnrolments lists enrolments, optionally narrowed to one course or one
// student. References that no longer resolve are shown as "Unknown".
func (s *enrolmentServiceImpl) GetAllEnrolments(ctx context.Context, filter dto.EnrolmentFilter) ([]dto.EnrolmentResponse, error) {
	var enrolments []models.Enrolment
	switch {
	case filter.CourseID != nil:
		enrolments = s.enrolmentRepo.GetByCourseID(*filter.CourseID)
	case filter.StudentID != nil:
		enrolments = s.enrolmentRepo.GetByStudentID(*filter.StudentID)
	default:
		enrolments = s.enrolmentRepo.GetAll()
	}

	responses := make([]dto.EnrolmentResponse, 0, len(enrolments))
	for _, e := range enrolments {
		studentName := dto.UnknownName
		if student, ok := s.studentRepo.GetByID(e.StudentID); ok {
			studentName = student.FullName
		}
		courseTitle := dto.UnknownName
		if course, ok := s.courseRepo.GetByID(e.CourseID); ok {
			courseTitle = course.Title
		}
		responses = append(responses, dto.EnrolmentResponse{
			StudentID:   e.StudentID,
			StudentName: studentName,
			CourseID:    e.CourseID,
			CourseTitle: courseTitle,
			EnrolledAt:  e.EnrolledAt,
		})
	}
	return responses, nil
}

// CreateEnrolment enrols a student in a course. The student is checked before
// the course, so when both are missing the error names the student.
func (s *enrolmentServiceImpl) CreateEnrolment(ctx context.Context, studentID string, courseID uuid.UUID) (*dto.EnrolmentResponse, error) {
	student, ok := s.studentRepo.GetByID(studentID)
	if !ok {
		return nil, apperrors.NewEntityNotFoundError(apperrors.EntityStudent, studentID)
	}

	course, ok := s.courseRepo.GetByID(courseID)
	if !ok {
		return nil, apperrors.NewEntityNotFoundError(apperrors.EntityCourse, courseID)
	}

	enrolment, created := s.enrolmentRepo.CreateIfAbsent(studentID, courseID)
	if !created {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("Student %s is already enrolled in %s", student.FullName, course.Title))
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("courseId", courseID.String()).
		Msg("Enrolment created")

	return &dto.EnrolmentResponse{
		StudentID:   enrolment.StudentID,
		StudentName: student.FullName,
		CourseID:    enrolment.CourseID,
		CourseTitle: course.Title,
		EnrolledAt:  enrolment.EnrolledAt,
	}, nil
}

// DeleteEnrolment removes an enrolment by its exact (student, course) key
func (s *enrolmentServiceImpl) DeleteEnrolment(ctx context.Context, studentID string, courseID uuid.UUID) error {
	if !s.enrolmentRepo.Delete(studentID, courseID) {
		return apperrors.NewCustomError(apperrors.ErrResourceNotFound,
			fmt.Sprintf("Enrolment not found for student %s and course %s", studentID, courseID)).
			WithDetails(map[string]interface{}{
				"entity":    apperrors.EntityEnrolment,
				"studentId": studentID,
				"courseId":  courseID.String(),
			})
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("courseId", courseID.String()).
		Msg("Enrolment deleted")
	return nil
}
