package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const gradeColumns = "id, class_id, student_id, assignment_name, assignment_type, max_score, score, graded_date, comments"

// GradeRepository persists grades.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs the repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// List returns grades filtered by class and/or student.
func (r *GradeRepository) List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error) {
	var where whereBuilder
	if filter.ClassID != 0 {
		where.add("class_id", filter.ClassID)
	}
	if filter.StudentID != 0 {
		where.add("student_id", filter.StudentID)
	}
	query := "SELECT " + gradeColumns + " FROM grades" + where.clause() + " ORDER BY id"
	grades := []models.Grade{}
	if err := r.db.SelectContext(ctx, &grades, query, where.args...); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

// FindByID fetches a grade by id.
func (r *GradeRepository) FindByID(ctx context.Context, id int64) (*models.Grade, error) {
	var grade models.Grade
	if err := r.db.GetContext(ctx, &grade, "SELECT "+gradeColumns+" FROM grades WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &grade, nil
}

// Create inserts a grade.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	const query = `INSERT INTO grades (class_id, student_id, assignment_name, assignment_type, max_score, score, graded_date, comments)
        VALUES (:class_id, :student_id, :assignment_name, :assignment_type, :max_score, :score, :graded_date, :comments) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, grade, "create grade")
	if err != nil {
		return err
	}
	grade.ID = id
	return nil
}

// Update writes the merged grade record.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	const query = `UPDATE grades SET class_id = :class_id, student_id = :student_id, assignment_name = :assignment_name, assignment_type = :assignment_type,
        max_score = :max_score, score = :score, graded_date = :graded_date, comments = :comments WHERE id = :id`
	return updateOne(ctx, r.db, query, grade, "update grade")
}

// Delete removes a grade.
func (r *GradeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "grades", id)
}
