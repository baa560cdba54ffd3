package services

import (
	"context"
	"fmt"

	"github.com/yigit/minilms/internal/app/models"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

// CourseDetailsCacheKey is the cache key the whole catalogue is stored under
const CourseDetailsCacheKey = "course-details"

// CourseDetailSource returns the course detail catalogue. It is satisfied by
// *cache.ReadThrough[[]models.CourseDetail].
type CourseDetailSource interface {
	Get(ctx context.Context, key string) ([]models.CourseDetail, error)
}

// CourseDetailService defines the interface for course detail lookups
type CourseDetailService interface {
	GetAllCourseDetails(ctx context.Context) ([]models.CourseDetail, error)
	GetCourseDetail(ctx context.Context, courseID string) (*models.CourseDetail, error)
}

type courseDetailServiceImpl struct {
	source CourseDetailSource
}

// NewCourseDetailService creates a new course detail service instance
func NewCourseDetailService(source CourseDetailSource) CourseDetailService {
	return &courseDetailServiceImpl{source: source}
}

// GetAllCourseDetails returns copies of the cached catalogue entries
func (s *courseDetailServiceImpl) GetAllCourseDetails(ctx context.Context) ([]models.CourseDetail, error) {
	details, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.CourseDetail, len(details))
	for i := range details {
		result[i] = details[i].Clone()
	}
	return result, nil
}

func (s *courseDetailServiceImpl) GetCourseDetail(ctx context.Context, courseID string) (*models.CourseDetail, error) {
	details, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}

	for i := range details {
		if details[i].CourseID == courseID {
			detail := details[i].Clone()
			return &detail, nil
		}
	}
	return nil, apperrors.NewCustomError(apperrors.ErrResourceNotFound,
		fmt.Sprintf("Course details not found for courseId: %s", courseID)).
		WithDetails(map[string]interface{}{
			"entity": apperrors.EntityCourseDetail,
			"id":     courseID,
		})
}

// catalogue returns the shared cached slice; callers must not modify it
func (s *courseDetailServiceImpl) catalogue(ctx context.Context) ([]models.CourseDetail, error) {
	details, err := s.source.Get(ctx, CourseDetailsCacheKey)
	if err != nil {
		return nil, fmt.Errorf("error loading course details: %w", err)
	}
	return details, nil
}
