package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const enrollmentColumns = "id, class_id, student_id, enrollment_date"

// EnrollmentRepository handles persistence of class enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns enrollments filtered by class and/or student.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.ClassEnrollment, error) {
	var where whereBuilder
	if filter.ClassID != 0 {
		where.add("class_id", filter.ClassID)
	}
	if filter.StudentID != 0 {
		where.add("student_id", filter.StudentID)
	}
	query := "SELECT " + enrollmentColumns + " FROM class_enrollments" + where.clause() + " ORDER BY id"
	enrollments := []models.ClassEnrollment{}
	if err := r.db.SelectContext(ctx, &enrollments, query, where.args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// FindByID fetches an enrollment by id.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.ClassEnrollment, error) {
	var enrollment models.ClassEnrollment
	if err := r.db.GetContext(ctx, &enrollment, "SELECT "+enrollmentColumns+" FROM class_enrollments WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create inserts an enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.ClassEnrollment) error {
	const query = `INSERT INTO class_enrollments (class_id, student_id, enrollment_date) VALUES (:class_id, :student_id, :enrollment_date) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, enrollment, "create enrollment")
	if err != nil {
		return err
	}
	enrollment.ID = id
	return nil
}

// Update writes the merged enrollment record.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.ClassEnrollment) error {
	const query = `UPDATE class_enrollments SET class_id = :class_id, student_id = :student_id, enrollment_date = :enrollment_date WHERE id = :id`
	return updateOne(ctx, r.db, query, enrollment, "update enrollment")
}

// Delete removes an enrollment.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "class_enrollments", id)
}
