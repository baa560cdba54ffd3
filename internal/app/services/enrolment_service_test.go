package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/minilms/internal/app/models"
	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/app/repositories"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

var (
	aliceID   = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	bobID     = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	reactID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	nodeJSID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	missingID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
)

func seededRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	repos := repositories.NewRepositories()
	repos.StudentRepository.Add(models.Student{ID: aliceID, FullName: "Alice Johnson", Email: "alice@example.com"})
	repos.StudentRepository.Add(models.Student{ID: bobID, FullName: "Bob Smith", Email: "bob@example.com"})
	repos.CourseRepository.Add(models.Course{ID: reactID, Title: "Introduction to React", Description: "Components and hooks"})
	repos.CourseRepository.Add(models.Course{ID: nodeJSID, Title: "Node.js", Description: "Backend with Node"})
	return repos
}

func newEnrolmentService(repos *repositories.Repositories) EnrolmentService {
	return NewEnrolmentService(repos.EnrolmentRepository, repos.StudentRepository, repos.CourseRepository, zerolog.Nop())
}

func TestCreateEnrolment_StudentNotFound(t *testing.T) {
	svc := newEnrolmentService(seededRepos(t))

	_, err := svc.CreateEnrolment(context.Background(), "nobody", reactID)

	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, apperrors.EntityStudent, apperrors.EntityOf(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateEnrolment_CourseNotFound(t *testing.T) {
	svc := newEnrolmentService(seededRepos(t))

	_, err := svc.CreateEnrolment(context.Background(), aliceID, missingID)

	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, apperrors.EntityCourse, apperrors.EntityOf(err))
}

func TestCreateEnrolment_BothMissingNamesStudent(t *testing.T) {
	svc := newEnrolmentService(seededRepos(t))

	_, err := svc.CreateEnrolment(context.Background(), "nobody", missingID)

	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, apperrors.EntityStudent, apperrors.EntityOf(err))
}

func TestCreateEnrolment_ValidData(t *testing.T) {
	repos := seededRepos(t)
	svc := newEnrolmentService(repos)
	before := time.Now().UTC()

	got, err := svc.CreateEnrolment(context.Background(), aliceID, reactID)
	require.NoError(t, err)

	assert.Equal(t, aliceID, got.StudentID)
	assert.Equal(t, "Alice Johnson", got.StudentName)
	assert.Equal(t, reactID, got.CourseID)
	assert.Equal(t, "Introduction to React", got.CourseTitle)
	assert.False(t, got.EnrolledAt.Before(before))
	assert.False(t, got.EnrolledAt.After(time.Now().UTC()))
}

func TestCreateEnrolment_Duplicate(t *testing.T) {
	repos := seededRepos(t)
	svc := newEnrolmentService(repos)
	ctx := context.Background()

	_, err := svc.CreateEnrolment(ctx, aliceID, reactID)
	require.NoError(t, err)

	_, err = svc.CreateEnrolment(ctx, aliceID, reactID)
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Student Alice Johnson is already enrolled in Introduction to React", err.Error())
	assert.Len(t, repos.EnrolmentRepository.GetByStudentID(aliceID), 1)
}

func TestCreateEnrolment_ThenListByStudent(t *testing.T) {
	svc := newEnrolmentService(seededRepos(t))
	ctx := context.Background()

	created, err := svc.CreateEnrolment(ctx, bobID, nodeJSID)
	require.NoError(t, err)

	list, err := svc.GetAllEnrolments(ctx, dto.EnrolmentFilter{StudentID: &bobID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *created, list[0])
	assert.False(t, list[0].EnrolledAt.After(time.Now().UTC()))
}

func TestGetAllEnrolments_Filters(t *testing.T) {
	svc := newEnrolmentService(seededRepos(t))
	ctx := context.Background()
	for _, pair := range []struct {
		student string
		course  uuid.UUID
	}{{aliceID, reactID}, {bobID, reactID}, {aliceID, nodeJSID}} {
		_, err := svc.CreateEnrolment(ctx, pair.student, pair.course)
		require.NoError(t, err)
	}

	byCourse, err := svc.GetAllEnrolments(ctx, dto.EnrolmentFilter{CourseID: &reactID})
	require.NoError(t, err)
	require.Len(t, byCourse, 2)
	for _, e := range byCourse {
		assert.Equal(t, reactID, e.CourseID)
	}

	byStudent, err := svc.GetAllEnrolments(ctx, dto.EnrolmentFilter{StudentID: &aliceID})
	require.NoError(t, err)
	require.Len(t, byStudent, 2)
	for _, e := range byStudent {
		assert.Equal(t, aliceID, e.StudentID)
	}

	// the course filter wins when both are given
	both, err := svc.GetAllEnrolments(ctx, dto.EnrolmentFilter{CourseID: &nodeJSID, StudentID: &bobID})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, aliceID, both[0].StudentID)

	all, err := svc.GetAllEnrolments(ctx, dto.EnrolmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetAllEnrolments_OrphansShowUnknown(t *testing.T) {
	repos := seededRepos(t)
	repos.EnrolmentRepository.Add(models.Enrolment{StudentID: "ghost", CourseID: missingID, EnrolledAt: time.Now()})
	svc := newEnrolmentService(repos)

	list, err := svc.GetAllEnrolments(context.Background(), dto.EnrolmentFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, dto.UnknownName, list[0].StudentName)
	assert.Equal(t, dto.UnknownName, list[0].CourseTitle)
}

func TestGetAllEnrolments_EmptyIsNotNil(t *testing.T) {
	svc := newEnrolmentService(seededRepos(t))

	list, err := svc.GetAllEnrolments(context.Background(), dto.EnrolmentFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDeleteEnrolment(t *testing.T) {
	repos := seededRepos(t)
	svc := newEnrolmentService(repos)
	ctx := context.Background()
	_, err := svc.CreateEnrolment(ctx, aliceID, reactID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEnrolment(ctx, aliceID, reactID))
	assert.Zero(t, repos.EnrolmentRepository.Count())

	// the pair can be enrolled again once removed
	_, err = svc.CreateEnrolment(ctx, aliceID, reactID)
	assert.NoError(t, err)
}

func TestDeleteEnrolment_NotFoundLeavesStoreUnchanged(t *testing.T) {
	repos := seededRepos(t)
	svc := newEnrolmentService(repos)
	ctx := context.Background()
	_, err := svc.CreateEnrolment(ctx, aliceID, reactID)
	require.NoError(t, err)
	before := repos.EnrolmentRepository.GetAll()

	err = svc.DeleteEnrolment(ctx, "s3", reactID)

	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, apperrors.EntityEnrolment, apperrors.EntityOf(err))
	assert.Equal(t, before, repos.EnrolmentRepository.GetAll())
}

func TestCreateEnrolment_ConcurrentSamePair(t *testing.T) {
	repos := seededRepos(t)
	svc := newEnrolmentService(repos)

	const callers = 64
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.CreateEnrolment(context.Background(), aliceID, reactID)
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	successes, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, apperrors.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, conflicts)
	assert.Len(t, repos.EnrolmentRepository.GetByCourseID(reactID), 1)
}
