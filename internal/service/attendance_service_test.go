package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func TestAttendanceServiceFiltersByCalendarDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student, err := f.students.Create(ctx, studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)
	class, err := f.classes.Create(ctx, classRequest("MATH-10A"))
	require.NoError(t, err)
	for _, raw := range []string{"2024-10-07T08:15:00Z", "2024-10-08T08:15:00Z"} {
		_, err = f.attendance.Create(ctx, CreateAttendanceRequest{ClassID: class.ID, StudentID: student.ID, Date: mustDate(t, raw), Status: models.AttendanceStatusPresent})
		require.NoError(t, err)
	}

	day := mustDate(t, "2024-10-07T23:59:00Z")
	records, err := f.attendance.List(ctx, models.AttendanceFilter{Date: &day})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-10-07", records[0].Date.String())
}

func TestAttendanceServiceRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.attendance.Create(context.Background(), CreateAttendanceRequest{ClassID: 1, StudentID: 1, Date: mustDate(t, "2024-10-07"), Status: "sleeping"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "status", appErr.Details[0].Field)
}

func TestAttendanceServiceSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student, err := f.students.Create(ctx, studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)
	class, err := f.classes.Create(ctx, classRequest("MATH-10A"))
	require.NoError(t, err)
	days := map[string]models.AttendanceStatus{
		"2024-10-07": models.AttendanceStatusPresent,
		"2024-10-08": models.AttendanceStatusLate,
		"2024-10-09": models.AttendanceStatusAbsent,
	}
	for raw, status := range days {
		_, err = f.attendance.Create(ctx, CreateAttendanceRequest{ClassID: class.ID, StudentID: student.ID, Date: mustDate(t, raw), Status: status})
		require.NoError(t, err)
	}

	summary, err := f.attendance.Summary(ctx, models.AttendanceFilter{StudentID: student.ID})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceSummary{Present: 1, Absent: 1, Late: 1, Total: 3, Rate: 66.7}, summary)
}
