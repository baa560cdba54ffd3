package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/minilms/internal/app/models"
	"github.com/yigit/minilms/internal/app/repositories"
)

func newReportFixture(courses ...models.Course) (*repositories.Repositories, ReportService) {
	repos := repositories.NewRepositories()
	for _, c := range courses {
		repos.CourseRepository.Add(c)
	}
	return repos, NewReportService(repos.CourseRepository, repos.EnrolmentRepository)
}

func course(title string) models.Course {
	return models.Course{ID: uuid.New(), Title: title, Description: "Description for " + title}
}

func TestGetEnrolmentsSummary_NoCourses(t *testing.T) {
	_, svc := newReportFixture()

	rows, err := svc.GetEnrolmentsSummary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGetEnrolmentsSummary_CoursesWithoutEnrolments(t *testing.T) {
	_, svc := newReportFixture(course("React Basics"), course("Advanced TypeScript"))

	rows, err := svc.GetEnrolmentsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Advanced TypeScript", rows[0].CourseTitle)
	assert.Zero(t, rows[0].TotalStudents)
	assert.Equal(t, "React Basics", rows[1].CourseTitle)
	assert.Zero(t, rows[1].TotalStudents)
}

func TestGetEnrolmentsSummary_SortedByTitle(t *testing.T) {
	_, svc := newReportFixture(course("Zebra Course"), course("Alpha Course"), course("Beta Course"))

	rows, err := svc.GetEnrolmentsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha Course", rows[0].CourseTitle)
	assert.Equal(t, "Beta Course", rows[1].CourseTitle)
	assert.Equal(t, "Zebra Course", rows[2].CourseTitle)
}

func TestGetEnrolmentsSummary_DuplicatesCountOnce(t *testing.T) {
	react := course("React Basics")
	repos, svc := newReportFixture(react)
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s1", CourseID: react.ID})
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s1", CourseID: react.ID})

	rows, err := svc.GetEnrolmentsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TotalStudents)
}

func TestGetEnrolmentsSummary_IgnoresOrphans(t *testing.T) {
	react := course("React Basics")
	repos, svc := newReportFixture(react)
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s1", CourseID: react.ID})
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s1", CourseID: uuid.New()})
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s2", CourseID: uuid.New()})

	rows, err := svc.GetEnrolmentsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, react.ID, rows[0].CourseID)
	assert.Equal(t, 1, rows[0].TotalStudents)
}

func TestGetEnrolmentsSummary_DeletedCourseLeavesOrphan(t *testing.T) {
	alpha, beta := course("Alpha"), course("Beta")
	repos, svc := newReportFixture(alpha, beta)
	repos.EnrolmentRepository.Create("s1", alpha.ID)
	repos.EnrolmentRepository.Create("s1", beta.ID)
	require.True(t, repos.CourseRepository.Delete(beta.ID))

	rows, err := svc.GetEnrolmentsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].CourseTitle)
	assert.Equal(t, 1, rows[0].TotalStudents)
	assert.Equal(t, 2, repos.EnrolmentRepository.Count())
}

func TestGetEnrolmentsSummary_AlphaBetaScenario(t *testing.T) {
	repos := repositories.NewRepositories()
	repos.StudentRepository.Add(models.Student{ID: "S1", FullName: "Student One"})
	repos.StudentRepository.Add(models.Student{ID: "S2", FullName: "Student Two"})
	courses := NewCourseService(repos.CourseRepository, zerolog.Nop())
	enrolments := newEnrolmentService(repos)
	report := NewReportService(repos.CourseRepository, repos.EnrolmentRepository)
	ctx := context.Background()

	b, err := courses.CreateCourse(ctx, "Beta", "Second course")
	require.NoError(t, err)
	a, err := courses.CreateCourse(ctx, "Alpha", "First course")
	require.NoError(t, err)

	for _, pair := range []struct {
		student string
		course  uuid.UUID
	}{{"S1", a.ID}, {"S2", a.ID}, {"S1", b.ID}} {
		_, err := enrolments.CreateEnrolment(ctx, pair.student, pair.course)
		require.NoError(t, err)
	}

	rows, err := report.GetEnrolmentsSummary(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha", rows[0].CourseTitle)
	assert.Equal(t, 2, rows[0].TotalStudents)
	assert.Equal(t, "Beta", rows[1].CourseTitle)
	assert.Equal(t, 1, rows[1].TotalStudents)
}

func TestGetEnrolmentsSummary_MixedScenario(t *testing.T) {
	courseB, courseA, courseC := course("Course B"), course("Course A"), course("Course C")
	repos, svc := newReportFixture(courseB, courseA, courseC)
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s1", CourseID: courseA.ID})
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s2", CourseID: courseA.ID})
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s3", CourseID: courseB.ID})
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "s3", CourseID: courseB.ID})

	rows, err := svc.GetEnrolmentsSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []int{2, 1, 0}, []int{rows[0].TotalStudents, rows[1].TotalStudents, rows[2].TotalStudents})
	assert.Equal(t, []string{"Course A", "Course B", "Course C"}, []string{rows[0].CourseTitle, rows[1].CourseTitle, rows[2].CourseTitle})
}
