package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
)

func TestDashboardStatsEmpty(t *testing.T) {
	f := newFixture(t)

	stats, err := f.dashboard.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{}, *stats)
}

func TestDashboardStatsScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student, err := f.students.Create(ctx, studentRequest(t, "S1", "Jane Doe"))
	require.NoError(t, err)
	class, err := f.classes.Create(ctx, classRequest("C1"))
	require.NoError(t, err)
	_, err = f.enrollments.Create(ctx, CreateEnrollmentRequest{ClassID: class.ID, StudentID: student.ID, EnrollmentDate: mustDate(t, "2024-09-01")})
	require.NoError(t, err)
	_, err = f.attendance.Create(ctx, CreateAttendanceRequest{ClassID: class.ID, StudentID: student.ID, Date: mustDate(t, "2024-10-07"), Status: models.AttendanceStatusPresent})
	require.NoError(t, err)
	_, err = f.attendance.Create(ctx, CreateAttendanceRequest{ClassID: class.ID, StudentID: student.ID, Date: mustDate(t, "2024-10-08"), Status: models.AttendanceStatusAbsent})
	require.NoError(t, err)

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 0, stats.TotalTeachers)
	assert.Equal(t, 1, stats.TotalClasses)
	assert.Equal(t, 50.0, stats.AttendanceRate)

	activities, err := f.activities.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, activities, 5)
}

func TestDashboardStatsCountsLateAsAttended(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	class, err := f.classes.Create(ctx, classRequest("C1"))
	require.NoError(t, err)
	statuses := []models.AttendanceStatus{models.AttendanceStatusPresent, models.AttendanceStatusLate, models.AttendanceStatusPresent, models.AttendanceStatusExcused}
	for i, status := range statuses {
		student, err := f.students.Create(ctx, studentRequest(t, "S"+string(rune('1'+i)), "Student"))
		require.NoError(t, err)
		_, err = f.attendance.Create(ctx, CreateAttendanceRequest{ClassID: class.ID, StudentID: student.ID, Date: mustDate(t, "2024-10-07"), Status: status})
		require.NoError(t, err)
	}

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75.0, stats.AttendanceRate)
}

func TestDashboardStatsServedFromCacheUntilInvalidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cache := NewCacheService(newFakeCache(), nil, time.Minute, nil, true)
	f.dashboard.cache = cache
	f.activities.cache = cache

	first, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, first.TotalStudents)

	// A direct store write bypasses activity recording, so the cached figure stays.
	require.NoError(t, f.store.Students().Create(ctx, &models.Student{StudentID: "RAW", Name: "Raw"}))
	cached, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cached.TotalStudents)

	_, err = f.students.Create(ctx, studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)
	fresh, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.TotalStudents)
}

// interleavedCounter records a student mid-computation, the way a concurrent
// request would.
type interleavedCounter struct {
	counter
	during func()
}

func (c interleavedCounter) Count(ctx context.Context) (int, error) {
	n, err := c.counter.Count(ctx)
	if c.during != nil {
		c.during()
	}
	return n, err
}

func TestDashboardStatsNotCachedAcrossConcurrentMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cache := NewCacheService(newFakeCache(), nil, time.Minute, nil, true)
	f.dashboard.cache = cache
	f.activities.cache = cache

	once := false
	f.dashboard.students = interleavedCounter{counter: f.store.Students(), during: func() {
		if once {
			return
		}
		once = true
		_, err := f.students.Create(ctx, studentRequest(t, "STU001", "Jane Doe"))
		require.NoError(t, err)
	}}

	racing, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, racing.TotalStudents)

	next, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next.TotalStudents)
}
