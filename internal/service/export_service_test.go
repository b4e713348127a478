package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func newExportFixture(t *testing.T) (*fixture, *ExportService) {
	t.Helper()
	f := newFixture(t)
	exports := NewExportService(ExportSources{
		Students:    f.store.Students(),
		Teachers:    f.store.Teachers(),
		Classes:     f.store.Classes(),
		Enrollments: f.store.Enrollments(),
		Attendance:  f.store.Attendance(),
		Grades:      f.store.Grades(),
		Events:      f.store.Events(),
		Activities:  f.store.Activities(),
	}, nil)
	exports.now = func() time.Time { return time.Date(2024, 10, 11, 15, 0, 0, 0, time.UTC) }
	return f, exports
}

func TestExportServiceQuotesCSVFields(t *testing.T) {
	f, exports := newExportFixture(t)
	ctx := context.Background()

	student, err := f.students.Create(ctx, studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)
	class, err := f.classes.Create(ctx, classRequest("MATH-10A"))
	require.NoError(t, err)
	_, err = f.grades.Create(ctx, CreateGradeRequest{
		ClassID:        class.ID,
		StudentID:      student.ID,
		AssignmentName: "Essay",
		AssignmentType: models.AssignmentHomework,
		MaxScore:       floatPtr(20),
		Score:          floatPtr(18.5),
		GradedDate:     mustDate(t, "2024-10-10"),
		Comments:       `He said, "great job"`,
	})
	require.NoError(t, err)

	file, err := exports.Export(ctx, "grades", "")
	require.NoError(t, err)
	assert.Equal(t, "grades_20241011.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,classId,studentId,assignmentName,assignmentType,score,maxScore,gradedDate,comments", lines[0])
	assert.Equal(t, `1,1,1,Essay,homework,18.5,20,2024-10-10,"He said, ""great job"""`, lines[1])
}

func TestExportServiceRendersOtherFormats(t *testing.T) {
	f, exports := newExportFixture(t)
	_, err := f.students.Create(context.Background(), studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)

	pdf, err := exports.Export(context.Background(), "students", "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, strings.HasPrefix(string(pdf.Body), "%PDF"))

	xlsx, err := exports.Export(context.Background(), "activities", "xlsx")
	require.NoError(t, err)
	assert.Equal(t, "activities_20241011.xlsx", xlsx.Filename)
	assert.NotEmpty(t, xlsx.Body)
}

func TestExportServiceRejectsUnknownInputs(t *testing.T) {
	_, exports := newExportFixture(t)

	_, err := exports.Export(context.Background(), "students", "docx")
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedFormat)

	_, err = exports.Export(context.Background(), "parents", "csv")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
