package repositories

import (
	"sync"

	"github.com/google/uuid"
	"github.com/yigit/minilms/internal/app/models"
)

// CourseRepository keeps courses in memory, keyed by ID.
type CourseRepository struct {
	mu      sync.RWMutex
	courses map[uuid.UUID]models.Course
	// order preserves insertion order so listings are deterministic
	order []uuid.UUID
	newID func() uuid.UUID
}

// NewCourseRepository creates a new, empty CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make(map[uuid.UUID]models.Course),
		newID:   uuid.New,
	}
}

// Add inserts a course with a pre-assigned ID (seed data). An existing
// course with the same ID is kept.
func (r *CourseRepository) Add(course models.Course) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[course.ID]; exists {
		return false
	}
	r.courses[course.ID] = course
	r.order = append(r.order, course.ID)
	return true
}

// GetAll returns a copy of all courses in insertion order
func (r *CourseRepository) GetAll() []models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.order))
	for _, id := range r.order {
		courses = append(courses, r.courses[id])
	}
	return courses
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(id uuid.UUID) (models.Course, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	return course, ok
}

// Create stores a new course under a freshly generated ID
func (r *CourseRepository) Create(title, description string) models.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	course := models.Course{
		ID:          r.newID(),
		Title:       title,
		Description: description,
	}
	r.courses[course.ID] = course
	r.order = append(r.order, course.ID)
	return course
}

// Update replaces title and description of an existing course. The ID never
// changes. Returns false when no course has the given ID.
func (r *CourseRepository) Update(id uuid.UUID, title, description string) (models.Course, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[id]; !exists {
		return models.Course{}, false
	}

	course := models.Course{
		ID:          id,
		Title:       title,
		Description: description,
	}
	r.courses[id] = course
	return course, true
}

// Delete removes a course by ID and reports whether it existed.
// Enrolments referencing the course are left in place.
func (r *CourseRepository) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[id]; !exists {
		return false
	}
	delete(r.courses, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of stored courses
func (r *CourseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.courses)
}
