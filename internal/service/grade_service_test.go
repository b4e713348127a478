package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func TestGradeServiceSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student, err := f.students.Create(ctx, studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)
	class, err := f.classes.Create(ctx, classRequest("MATH-10A"))
	require.NoError(t, err)

	scores := []struct {
		name  string
		score float64
		max   float64
	}{
		{"Quiz 1", 9, 10},
		{"Midterm", 80, 100},
		{"Bonus project", 12, 10},
	}
	for _, s := range scores {
		_, err := f.grades.Create(ctx, CreateGradeRequest{
			ClassID:        class.ID,
			StudentID:      student.ID,
			AssignmentName: s.name,
			AssignmentType: models.AssignmentQuiz,
			MaxScore:       floatPtr(s.max),
			Score:          floatPtr(s.score),
			GradedDate:     mustDate(t, "2024-10-11"),
		})
		require.NoError(t, err)
	}

	summary, err := f.grades.Summary(ctx, models.GradeFilter{StudentID: student.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 101.0, summary.TotalScore)
	assert.Equal(t, 120.0, summary.TotalMaxScore)
	assert.Equal(t, 84.2, summary.Percentage)
	assert.Equal(t, 3.0, summary.GPA)
	assert.Equal(t, "B", summary.Letter)
}

func TestGradeServiceRejectsNegativeScore(t *testing.T) {
	f := newFixture(t)

	_, err := f.grades.Create(context.Background(), CreateGradeRequest{ClassID: 1, StudentID: 1, AssignmentName: "Quiz", AssignmentType: "quiz", MaxScore: floatPtr(10), Score: floatPtr(-1), GradedDate: mustDate(t, "2024-10-11")})
	require.Error(t, err)
	grades, err := f.grades.List(context.Background(), models.GradeFilter{})
	require.NoError(t, err)
	assert.Empty(t, grades)
}

func TestGradeServiceRequiresBothScores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student, err := f.students.Create(ctx, studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)
	class, err := f.classes.Create(ctx, classRequest("MATH-10A"))
	require.NoError(t, err)

	req := CreateGradeRequest{
		ClassID:        class.ID,
		StudentID:      student.ID,
		AssignmentName: "Quiz 2",
		AssignmentType: models.AssignmentQuiz,
		GradedDate:     mustDate(t, "2024-10-14"),
	}
	_, err = f.grades.Create(ctx, req)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	fields := map[string]bool{}
	for _, d := range appErr.Details {
		fields[d.Field] = true
	}
	assert.True(t, fields["maxScore"])
	assert.True(t, fields["score"])

	req.MaxScore = floatPtr(10)
	req.Score = floatPtr(0)
	grade, err := f.grades.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 10.0, grade.MaxScore)
	assert.Zero(t, grade.Score)
}
