package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const teacherColumns = "id, teacher_id, name, email, phone, qualification, join_date, subjects, avatar, user_id"

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns teachers ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, "SELECT "+teacherColumns+" FROM teachers ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// Count returns the number of teachers.
func (r *TeacherRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "teachers")
}

// FindByID fetches a teacher by id.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, "SELECT "+teacherColumns+" FROM teachers WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindByTeacherID fetches a teacher by business key.
func (r *TeacherRepository) FindByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, "SELECT "+teacherColumns+" FROM teachers WHERE teacher_id = $1 LIMIT 1", teacherID); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a teacher.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO teachers (teacher_id, name, email, phone, qualification, join_date, subjects, avatar, user_id)
        VALUES (:teacher_id, :name, :email, :phone, :qualification, :join_date, :subjects, :avatar, :user_id) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, teacher, "create teacher")
	if err != nil {
		return err
	}
	teacher.ID = id
	return nil
}

// Update writes the merged teacher record.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE teachers SET teacher_id = :teacher_id, name = :name, email = :email, phone = :phone, qualification = :qualification,
        join_date = :join_date, subjects = :subjects, avatar = :avatar, user_id = :user_id WHERE id = :id`
	return updateOne(ctx, r.db, query, teacher, "update teacher")
}

// Delete removes a teacher; classes keep existing with no teacher assigned.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "teachers", id)
}
