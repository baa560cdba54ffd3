package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/minilms/internal/app/models"
	"github.com/yigit/minilms/internal/app/repositories"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CreateCourse(ctx context.Context, title, description string) (*models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, title, description string) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.GetAll(), nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, ok := s.courseRepo.GetByID(id)
	if !ok {
		return nil, apperrors.NewEntityNotFoundError(apperrors.EntityCourse, id)
	}
	return &course, nil
}

// CreateCourse creates a new course. Title and description are stored as
// given; format rules are enforced when binding the request.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, title, description string) (*models.Course, error) {
	course := s.courseRepo.Create(title, description)
	s.logger.Info().Str("courseId", course.ID.String()).Str("title", course.Title).Msg("Course created")
	return &course, nil
}

// UpdateCourse updates an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id uuid.UUID, title, description string) (*models.Course, error) {
	course, ok := s.courseRepo.Update(id, title, description)
	if !ok {
		return nil, apperrors.NewEntityNotFoundError(apperrors.EntityCourse, id)
	}
	s.logger.Info().Str("courseId", id.String()).Msg("Course updated")
	return &course, nil
}

// DeleteCourse deletes a course by ID. Enrolments for the course are kept.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if !s.courseRepo.Delete(id) {
		return apperrors.NewEntityNotFoundError(apperrors.EntityCourse, id)
	}
	s.logger.Info().Str("courseId", id.String()).Msg("Course deleted")
	return nil
}
