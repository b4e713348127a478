package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
)

func TestActivityRepositoryCreateStampsTimestamp(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	stamped := time.Date(2024, 10, 7, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO activities").
		WithArgs(nil, "created student", "Jane Doe (STU001)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(11, stamped))

	activity := &models.Activity{Action: "created student", Details: "Jane Doe (STU001)"}
	require.NoError(t, repo.Create(context.Background(), activity))
	assert.Equal(t, int64(11), activity.ID)
	assert.True(t, activity.Timestamp.Equal(stamped))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepositoryListNewestFirst(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "action", "details", "timestamp"}).
		AddRow(2, 1, "deleted class", "Algebra (MATH-10A)", now).
		AddRow(1, nil, "created class", "Algebra (MATH-10A)", now.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("FROM activities ORDER BY timestamp DESC, id DESC LIMIT $1")).
		WithArgs(10).
		WillReturnRows(rows)

	activities, err := repo.List(context.Background(), models.ActivityFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, int64(2), activities[0].ID)
	require.NotNil(t, activities[0].UserID)
	assert.Nil(t, activities[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
