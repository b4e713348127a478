package memory

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func day(raw string) models.Date {
	d, err := models.ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleStudent(code string) *models.Student {
	return &models.Student{
		StudentID:      code,
		Name:           "Student " + code,
		Gender:         models.GenderFemale,
		DateOfBirth:    day("2010-04-02"),
		GradeLevel:     "9",
		Section:        "A",
		EnrollmentDate: day("2024-08-15"),
	}
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	store := New()
	repo := store.Grades()
	ctx := context.Background()

	const workers = 16
	const perWorker = 50
	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				g := &models.Grade{ClassID: 1, StudentID: 1, AssignmentName: "quiz", AssignmentType: models.AssignmentQuiz}
				if err := repo.Create(ctx, g); err != nil {
					t.Error(err)
					return
				}
				ids <- g.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{})
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "id %d assigned twice", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestStudentRoundTripAndMerge(t *testing.T) {
	ctx := context.Background()
	repo := New().Students()

	created := sampleStudent("STU001")
	require.NoError(t, repo.Create(ctx, created))
	assert.Equal(t, int64(1), created.ID)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	byKey, err := repo.FindByStudentID(ctx, "STU001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byKey.ID)

	got.Section = "B"
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Section)
	assert.Equal(t, created.Name, updated.Name)
}

func TestUpdateMissingDoesNotCreate(t *testing.T) {
	ctx := context.Background()
	repo := New().Students()

	ghost := sampleStudent("STU404")
	ghost.ID = 42
	err := repo.Update(ctx, ghost)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteTwiceReturnsFalse(t *testing.T) {
	ctx := context.Background()
	repo := New().Events()
	event := &models.Event{Title: "Sports day", StartDate: day("2024-10-01"), Type: models.EventActivity}
	require.NoError(t, repo.Create(ctx, event))

	removed, err := repo.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.FindByID(ctx, event.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	next := &models.Event{Title: "Exam week", StartDate: day("2024-11-01"), Type: models.EventExam}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, int64(2), next.ID, "ids are never reused")
}

func TestUniqueKeysEnforced(t *testing.T) {
	ctx := context.Background()
	store := New()
	students := store.Students()

	first := sampleStudent("STU001")
	require.NoError(t, students.Create(ctx, first))
	err := students.Create(ctx, sampleStudent("STU001"))
	assert.ErrorIs(t, err, appErrors.ErrDuplicateKey)

	second := sampleStudent("STU002")
	require.NoError(t, students.Create(ctx, second))
	second.StudentID = "STU001"
	assert.ErrorIs(t, students.Update(ctx, second), appErrors.ErrDuplicateKey)

	first.StudentID = "STU009"
	require.NoError(t, students.Update(ctx, first))
	third := sampleStudent("STU001")
	require.NoError(t, students.Create(ctx, third), "released key can be reused")

	users := store.Users()
	require.NoError(t, users.Create(ctx, &models.User{Username: "admin", Email: "admin@school.test", Role: models.RoleAdmin}))
	assert.ErrorIs(t, users.Create(ctx, &models.User{Username: "other", Email: "admin@school.test"}), appErrors.ErrDuplicateKey)
	assert.ErrorIs(t, users.Create(ctx, &models.User{Username: "admin", Email: "x@school.test"}), appErrors.ErrDuplicateKey)
}

func TestDeleteStudentCascades(t *testing.T) {
	ctx := context.Background()
	store := New()
	student := sampleStudent("STU001")
	other := sampleStudent("STU002")
	require.NoError(t, store.Students().Create(ctx, student))
	require.NoError(t, store.Students().Create(ctx, other))
	class := &models.Class{ClassName: "Math", ClassCode: "MATH1", GradeLevel: "9", AcademicYear: "2024"}
	require.NoError(t, store.Classes().Create(ctx, class))

	for _, sid := range []int64{student.ID, other.ID} {
		require.NoError(t, store.Enrollments().Create(ctx, &models.ClassEnrollment{ClassID: class.ID, StudentID: sid, EnrollmentDate: day("2024-09-01")}))
		require.NoError(t, store.Attendance().Create(ctx, &models.Attendance{ClassID: class.ID, StudentID: sid, Date: day("2024-09-02"), Status: models.AttendanceStatusPresent}))
		require.NoError(t, store.Grades().Create(ctx, &models.Grade{ClassID: class.ID, StudentID: sid, AssignmentName: "Quiz", AssignmentType: models.AssignmentQuiz, MaxScore: 10, Score: 8}))
	}

	removed, err := store.Students().Delete(ctx, student.ID)
	require.NoError(t, err)
	require.True(t, removed)

	enrollments, _ := store.Enrollments().List(ctx, models.EnrollmentFilter{})
	attendance, _ := store.Attendance().List(ctx, models.AttendanceFilter{})
	grades, _ := store.Grades().List(ctx, models.GradeFilter{})
	require.Len(t, enrollments, 1)
	require.Len(t, attendance, 1)
	require.Len(t, grades, 1)
	assert.Equal(t, other.ID, enrollments[0].StudentID)

	// the released enrollment key no longer blocks a fresh enrollment
	require.NoError(t, store.Students().Create(ctx, student))
	require.NoError(t, store.Enrollments().Create(ctx, &models.ClassEnrollment{ClassID: class.ID, StudentID: student.ID, EnrollmentDate: day("2024-09-03")}))
}

func TestDeleteClassCascadesAndTeacherUnlinks(t *testing.T) {
	ctx := context.Background()
	store := New()
	user := &models.User{Username: "t1", Email: "t1@school.test", Role: models.RoleTeacher}
	require.NoError(t, store.Users().Create(ctx, user))
	teacher := &models.Teacher{TeacherID: "TCH1", Name: "Ms. Frizzle", JoinDate: day("2020-01-01"), Subjects: []string{"science"}, UserID: &user.ID}
	require.NoError(t, store.Teachers().Create(ctx, teacher))
	class := &models.Class{ClassName: "Science", ClassCode: "SCI1", GradeLevel: "9", AcademicYear: "2024", TeacherID: &teacher.ID}
	require.NoError(t, store.Classes().Create(ctx, class))
	student := sampleStudent("STU001")
	require.NoError(t, store.Students().Create(ctx, student))
	require.NoError(t, store.Grades().Create(ctx, &models.Grade{ClassID: class.ID, StudentID: student.ID, AssignmentName: "Lab", AssignmentType: models.AssignmentProject}))

	_, err := store.Teachers().Delete(ctx, teacher.ID)
	require.NoError(t, err)
	reloaded, err := store.Classes().FindByID(ctx, class.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.TeacherID)

	_, err = store.Classes().Delete(ctx, class.ID)
	require.NoError(t, err)
	grades, _ := store.Grades().List(ctx, models.GradeFilter{StudentID: student.ID})
	assert.Empty(t, grades)

	teacher2 := &models.Teacher{TeacherID: "TCH2", Name: "Mr. Keating", JoinDate: day("2021-01-01"), UserID: &user.ID}
	require.NoError(t, store.Teachers().Create(ctx, teacher2))
	_, err = store.Users().Delete(ctx, user.ID)
	require.NoError(t, err)
	reloadedTeacher, err := store.Teachers().FindByID(ctx, teacher2.ID)
	require.NoError(t, err)
	assert.Nil(t, reloadedTeacher.UserID)
}

func TestAttendanceFiltersAndDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := New().Attendance()
	require.NoError(t, repo.Create(ctx, &models.Attendance{ClassID: 1, StudentID: 1, Date: day("2024-09-02T08:00:00Z"), Status: models.AttendanceStatusPresent}))
	require.NoError(t, repo.Create(ctx, &models.Attendance{ClassID: 1, StudentID: 2, Date: day("2024-09-02"), Status: models.AttendanceStatusLate}))
	require.NoError(t, repo.Create(ctx, &models.Attendance{ClassID: 2, StudentID: 1, Date: day("2024-09-03"), Status: models.AttendanceStatusAbsent}))

	err := repo.Create(ctx, &models.Attendance{ClassID: 1, StudentID: 1, Date: day("2024-09-02T15:00:00Z"), Status: models.AttendanceStatusAbsent})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateKey)

	onDay := day("2024-09-02T23:59:00Z")
	rows, err := repo.List(ctx, models.AttendanceFilter{Date: &onDay})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.List(ctx, models.AttendanceFilter{StudentID: 1})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	counts, err := repo.StatusCounts(ctx, models.AttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Total())
	assert.Equal(t, 66.7, counts.Rate())
}

func TestActivitiesNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	offsets := []time.Duration{2 * time.Minute, 0, 5 * time.Minute, 5 * time.Minute, time.Minute}
	call := 0
	store := New(WithClock(func() time.Time {
		ts := base.Add(offsets[call])
		call++
		return ts
	}))
	repo := store.Activities()
	for i := range offsets {
		require.NoError(t, repo.Create(ctx, &models.Activity{Action: "created student", Details: string(rune('a' + i))}))
	}

	rows, err := repo.List(ctx, models.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, rows, len(offsets))
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Timestamp.After(rows[i-1].Timestamp), "activity %d newer than predecessor", i)
	}
	assert.Equal(t, int64(4), rows[0].ID)
	assert.Equal(t, int64(3), rows[1].ID)

	limited, err := repo.List(ctx, models.ActivityFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := New().Teachers()
	teacher := &models.Teacher{TeacherID: "TCH1", Name: "A", JoinDate: day("2020-01-01"), Subjects: []string{"math", "physics"}}
	require.NoError(t, repo.Create(ctx, teacher))
	teacher.Subjects[0] = "art"

	got, err := repo.FindByID(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "physics"}, []string(got.Subjects))
	got.Subjects[1] = "history"

	again, err := repo.FindByID(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "physics", again.Subjects[1])
}

func TestFindByBusinessKeys(t *testing.T) {
	ctx := context.Background()
	store := New()
	teachers := store.Teachers()
	classes := store.Classes()

	teacher := &models.Teacher{TeacherID: "TCH001", Name: "Sarah Smith", Subjects: []string{"math"}}
	require.NoError(t, teachers.Create(ctx, teacher))
	class := &models.Class{ClassName: "Algebra", ClassCode: "MATH-10A", TeacherID: &teacher.ID}
	require.NoError(t, classes.Create(ctx, class))

	gotTeacher, err := teachers.FindByTeacherID(ctx, "TCH001")
	require.NoError(t, err)
	assert.Equal(t, *teacher, *gotTeacher)
	_, err = teachers.FindByTeacherID(ctx, "TCH999")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	gotClass, err := classes.FindByClassCode(ctx, "MATH-10A")
	require.NoError(t, err)
	assert.Equal(t, class.ID, gotClass.ID)
	require.NotNil(t, gotClass.TeacherID)
	assert.Equal(t, teacher.ID, *gotClass.TeacherID)
	_, err = classes.FindByClassCode(ctx, "math-10a")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	gotClass.ClassCode = "MATH-10B"
	require.NoError(t, classes.Update(ctx, gotClass))
	_, err = classes.FindByClassCode(ctx, "MATH-10A")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	moved, err := classes.FindByClassCode(ctx, "MATH-10B")
	require.NoError(t, err)
	assert.Equal(t, class.ID, moved.ID)

	deleted, err := teachers.Delete(ctx, teacher.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	_, err = teachers.FindByTeacherID(ctx, "TCH001")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = store.Students().FindByStudentID(ctx, "STU404")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
