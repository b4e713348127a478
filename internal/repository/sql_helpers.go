package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// constraintMessages maps unique constraint names created by the schema to caller facing messages.
var constraintMessages = map[string]string{
	"users_username_key":                        "username already used",
	"users_email_key":                           "email already used",
	"students_student_id_key":                   "studentId already used",
	"teachers_teacher_id_key":                   "teacherId already used",
	"classes_class_code_key":                    "classCode already used",
	"class_enrollments_class_id_student_id_key": "student is already enrolled in this class",
	"attendance_class_id_student_id_date_key":   "attendance already recorded for this student, class and date",
}

// translateWriteError maps constraint violations onto typed errors and wraps everything else.
func translateWriteError(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			message := constraintMessages[pqErr.Constraint]
			if message == "" {
				message = appErrors.ErrDuplicateKey.Message
			}
			return appErrors.Wrap(err, appErrors.ErrDuplicateKey.Code, appErrors.ErrDuplicateKey.Status, message)
		case pqForeignKeyViolation:
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "referenced record does not exist")
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// insertReturningID runs a named INSERT ... RETURNING id statement.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, arg interface{}, op string) (int64, error) {
	rows, err := db.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return 0, translateWriteError(err, op)
	}
	defer rows.Close()
	var id int64
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, translateWriteError(err, op)
		}
		return 0, fmt.Errorf("%s: no id returned", op)
	}
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// updateOne runs a named UPDATE and reports sql.ErrNoRows when no row matched.
func updateOne(ctx context.Context, db *sqlx.DB, query string, arg interface{}, op string) error {
	res, err := db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return translateWriteError(err, op)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// deleteByID removes a row by primary key and reports whether it existed.
func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) (bool, error) {
	res, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", table, err)
	}
	return affected > 0, nil
}

// countRows returns the number of rows in table.
func countRows(ctx context.Context, db *sqlx.DB, table string) (int, error) {
	var total int
	if err := db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}

// whereBuilder accumulates positional conditions.
type whereBuilder struct {
	conditions []string
	args       []interface{}
}

func (w *whereBuilder) add(column string, value interface{}) {
	w.args = append(w.args, value)
	w.conditions = append(w.conditions, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w *whereBuilder) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}
