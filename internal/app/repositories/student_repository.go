package repositories

import (
	"sync"

	"github.com/yigit/minilms/internal/app/models"
)

// StudentRepository keeps students in memory. Students are read-only once
// loaded; Add exists for seeding.
type StudentRepository struct {
	mu       sync.RWMutex
	students map[string]models.Student
	order    []string
}

// NewStudentRepository creates a new, empty StudentRepository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		students: make(map[string]models.Student),
	}
}

// Add inserts a student. The first student seen for an ID wins.
func (r *StudentRepository) Add(student models.Student) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.students[student.ID]; exists {
		return false
	}
	r.students[student.ID] = student
	r.order = append(r.order, student.ID)
	return true
}

// GetAll returns a copy of all students in insertion order
func (r *StudentRepository) GetAll() []models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]models.Student, 0, len(r.order))
	for _, id := range r.order {
		students = append(students, r.students[id])
	}
	return students
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id string) (models.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	student, ok := r.students[id]
	return student, ok
}

// Count returns the number of stored students
func (r *StudentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}
