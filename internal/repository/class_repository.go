package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const classColumns = "id, class_name, class_code, grade_level, section, description, teacher_id, schedule, room_number, academic_year"

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List returns classes ordered by id.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, "SELECT "+classColumns+" FROM classes ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// Count returns the number of classes.
func (r *ClassRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "classes")
}

// FindByID fetches a class by id.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	var class models.Class
	if err := r.db.GetContext(ctx, &class, "SELECT "+classColumns+" FROM classes WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &class, nil
}

// FindByClassCode fetches a class by business key.
func (r *ClassRepository) FindByClassCode(ctx context.Context, code string) (*models.Class, error) {
	var class models.Class
	if err := r.db.GetContext(ctx, &class, "SELECT "+classColumns+" FROM classes WHERE class_code = $1 LIMIT 1", code); err != nil {
		return nil, err
	}
	return &class, nil
}

// Create inserts a class.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	const query = `INSERT INTO classes (class_name, class_code, grade_level, section, description, teacher_id, schedule, room_number, academic_year)
        VALUES (:class_name, :class_code, :grade_level, :section, :description, :teacher_id, :schedule, :room_number, :academic_year) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, class, "create class")
	if err != nil {
		return err
	}
	class.ID = id
	return nil
}

// Update writes the merged class record.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	const query = `UPDATE classes SET class_name = :class_name, class_code = :class_code, grade_level = :grade_level, section = :section, description = :description,
        teacher_id = :teacher_id, schedule = :schedule, room_number = :room_number, academic_year = :academic_year WHERE id = :id`
	return updateOne(ctx, r.db, query, class, "update class")
}

// Delete removes a class; enrollments, attendance and grades cascade.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "classes", id)
}
