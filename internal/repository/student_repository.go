package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const studentColumns = "id, student_id, name, gender, date_of_birth, email, phone, address, guardian_name, guardian_phone, guardian_email, grade_level, section, enrollment_date, avatar"

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, "SELECT "+studentColumns+" FROM students ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Count returns the number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "students")
}

// FindByID fetches a student by id.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := r.db.GetContext(ctx, &student, "SELECT "+studentColumns+" FROM students WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByStudentID fetches a student by business key.
func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student
	if err := r.db.GetContext(ctx, &student, "SELECT "+studentColumns+" FROM students WHERE student_id = $1 LIMIT 1", studentID); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (student_id, name, gender, date_of_birth, email, phone, address, guardian_name, guardian_phone, guardian_email, grade_level, section, enrollment_date, avatar)
        VALUES (:student_id, :name, :gender, :date_of_birth, :email, :phone, :address, :guardian_name, :guardian_phone, :guardian_email, :grade_level, :section, :enrollment_date, :avatar) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, student, "create student")
	if err != nil {
		return err
	}
	student.ID = id
	return nil
}

// Update writes the merged student record.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET student_id = :student_id, name = :name, gender = :gender, date_of_birth = :date_of_birth, email = :email, phone = :phone, address = :address,
        guardian_name = :guardian_name, guardian_phone = :guardian_phone, guardian_email = :guardian_email, grade_level = :grade_level, section = :section,
        enrollment_date = :enrollment_date, avatar = :avatar WHERE id = :id`
	return updateOne(ctx, r.db, query, student, "update student")
}

// Delete removes a student; enrollments, attendance and grades cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "students", id)
}
