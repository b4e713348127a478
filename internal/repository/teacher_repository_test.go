package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

var teacherRowColumns = []string{"id", "teacher_id", "name", "email", "phone", "qualification", "join_date", "subjects", "avatar", "user_id"}

func TestTeacherRepositoryFindByIDScansSubjects(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	joined := time.Date(2019, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(teacherRowColumns).
		AddRow(2, "TCH002", "Ada Lovelace", "ada@school.test", "", "MSc", joined, "{Mathematics,Physics}", "", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + teacherColumns + " FROM teachers WHERE id = $1")).WithArgs(int64(2)).WillReturnRows(rows)

	teacher, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mathematics", "Physics"}, []string(teacher.Subjects))
	assert.Nil(t, teacher.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreateUnknownUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery("INSERT INTO teachers").WillReturnError(&pq.Error{Code: pqForeignKeyViolation, Constraint: "teachers_user_id_fkey"})

	userID := int64(99)
	err := repo.Create(context.Background(), &models.Teacher{TeacherID: "TCH003", Name: "Bob", UserID: &userID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryFindByTeacherID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	joined := time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + teacherColumns + " FROM teachers WHERE teacher_id = $1 LIMIT 1")
	mock.ExpectQuery(query).WithArgs("TCH001").
		WillReturnRows(sqlmock.NewRows(teacherRowColumns).
			AddRow(1, "TCH001", "Sarah Smith", "s.smith@school.test", "", "MSc", joined, "{Mathematics}", "", int64(3)))
	mock.ExpectQuery(query).WithArgs("TCH404").WillReturnRows(sqlmock.NewRows(teacherRowColumns))

	teacher, err := repo.FindByTeacherID(context.Background(), "TCH001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), teacher.ID)
	require.NotNil(t, teacher.UserID)
	assert.Equal(t, int64(3), *teacher.UserID)

	_, err = repo.FindByTeacherID(context.Background(), "TCH404")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
