package database

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateAppliesSchema(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()
	db := sqlx.NewDb(raw, "sqlmock")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaDeclaresCascades(t *testing.T) {
	assert.Contains(t, schema, "student_id      BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE")
	assert.Contains(t, schema, "teacher_id    BIGINT REFERENCES teachers(id) ON DELETE SET NULL")
	assert.Contains(t, schema, "UNIQUE (class_id, student_id, date)")
}
