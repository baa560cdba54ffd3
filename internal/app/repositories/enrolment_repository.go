package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/minilms/internal/app/models"
	"github.com/yigit/minilms/internal/pkg/helpers"
)

// EnrolmentRepository keeps enrolments in memory. A single mutex guards the
// collection so that check-then-insert sequences run as one unit.
type EnrolmentRepository struct {
	mu         sync.RWMutex
	enrolments []models.Enrolment
	now        func() time.Time
}

// NewEnrolmentRepository creates a new, empty EnrolmentRepository
func NewEnrolmentRepository() *EnrolmentRepository {
	return &EnrolmentRepository{
		now: helpers.NowUTC,
	}
}

// Add appends an enrolment as-is, keeping its timestamp. Used for seed data;
// it does not de-duplicate.
func (r *EnrolmentRepository) Add(enrolment models.Enrolment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enrolments = append(r.enrolments, enrolment)
}

// GetAll returns a snapshot of all enrolments
func (r *EnrolmentRepository) GetAll() []models.Enrolment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enrolments := make([]models.Enrolment, len(r.enrolments))
	copy(enrolments, r.enrolments)
	return enrolments
}

// GetByCourseID returns a snapshot of the enrolments for one course
func (r *EnrolmentRepository) GetByCourseID(courseID uuid.UUID) []models.Enrolment {
	return r.filter(func(e models.Enrolment) bool { return e.CourseID == courseID })
}

// GetByStudentID returns a snapshot of the enrolments for one student
func (r *EnrolmentRepository) GetByStudentID(studentID string) []models.Enrolment {
	return r.filter(func(e models.Enrolment) bool { return e.StudentID == studentID })
}

func (r *EnrolmentRepository) filter(keep func(models.Enrolment) bool) []models.Enrolment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enrolments := []models.Enrolment{}
	for _, e := range r.enrolments {
		if keep(e) {
			enrolments = append(enrolments, e)
		}
	}
	return enrolments
}

// Exists reports whether the student is enrolled in the course
func (r *EnrolmentRepository) Exists(studentID string, courseID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(studentID, courseID) >= 0
}

// Create stores a new enrolment stamped with the current time. It performs no
// uniqueness check; callers that need one use CreateIfAbsent.
func (r *EnrolmentRepository) Create(studentID string, courseID uuid.UUID) models.Enrolment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(studentID, courseID)
}

// CreateIfAbsent stores a new enrolment unless the pair is already enrolled.
// The existence check and the insert happen under the same lock.
func (r *EnrolmentRepository) CreateIfAbsent(studentID string, courseID uuid.UUID) (models.Enrolment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(studentID, courseID); i >= 0 {
		return r.enrolments[i], false
	}
	return r.insert(studentID, courseID), true
}

// Delete removes the enrolment for the pair. Returns false, and changes
// nothing, when the pair is not enrolled.
func (r *EnrolmentRepository) Delete(studentID string, courseID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(studentID, courseID)
	if i < 0 {
		return false
	}
	r.enrolments = append(r.enrolments[:i], r.enrolments[i+1:]...)
	return true
}

// Count returns the number of stored enrolments
func (r *EnrolmentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.enrolments)
}

// insert requires r.mu to be held for writing
func (r *EnrolmentRepository) insert(studentID string, courseID uuid.UUID) models.Enrolment {
	enrolment := models.Enrolment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: r.now(),
	}
	r.enrolments = append(r.enrolments, enrolment)
	return enrolment
}

// indexOf requires r.mu to be held
func (r *EnrolmentRepository) indexOf(studentID string, courseID uuid.UUID) int {
	for i, e := range r.enrolments {
		if e.Matches(studentID, courseID) {
			return i
		}
	}
	return -1
}
