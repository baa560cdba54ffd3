package repositories

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository    *CourseRepository
	StudentRepository   *StudentRepository
	EnrolmentRepository *EnrolmentRepository
}

// NewRepositories initializes all repositories with empty collections
func NewRepositories() *Repositories {
	return &Repositories{
		CourseRepository:    NewCourseRepository(),
		StudentRepository:   NewStudentRepository(),
		EnrolmentRepository: NewEnrolmentRepository(),
	}
}
