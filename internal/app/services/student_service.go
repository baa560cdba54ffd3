package services

import (
	"context"

	"github.com/yigit/minilms/internal/app/models"
	"github.com/yigit/minilms/internal/app/repositories"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(), nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := s.studentRepo.GetByID(id)
	if !ok {
		return nil, apperrors.NewEntityNotFoundError(apperrors.EntityStudent, id)
	}
	return &student, nil
}
