package memory

import (
	"context"
	"database/sql"

	"github.com/noah-isme/school-records-api/internal/models"
)

// StudentRepository stores students; studentId is unique.
type StudentRepository struct {
	s *Store
}

// Students returns the student collection of the store.
func (s *Store) Students() *StudentRepository {
	return &StudentRepository{s: s}
}

// List returns students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.students.scan(nil), nil
}

// Count returns the number of stored students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.students.len(), nil
}

// FindByID fetches a student by id.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	student, ok := r.s.students.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &student, nil
}

// FindByStudentID fetches a student by business key.
func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.studentIDs.keys[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	student, _ := r.s.students.get(id)
	return &student, nil
}

// Create inserts the student and assigns its id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.studentIDs.check(student.StudentID, 0); err != nil {
		return err
	}
	student.ID = r.s.students.nextID()
	r.s.students.insert(student.ID, *student)
	r.s.studentIDs.claim(student.StudentID, student.ID)
	return nil
}

// Update replaces the stored student with the merged record.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.students.get(student.ID)
	if !ok {
		return sql.ErrNoRows
	}
	if err := r.s.studentIDs.check(student.StudentID, student.ID); err != nil {
		return err
	}
	r.s.students.replace(student.ID, *student)
	r.s.studentIDs.move(existing.StudentID, student.StudentID, student.ID)
	return nil
}

// Delete removes the student together with its enrollments, attendance and grades.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.students.get(id)
	if !ok {
		return false, nil
	}
	r.s.students.remove(id)
	r.s.studentIDs.release(existing.StudentID, id)
	r.s.dropDependents(func(classID, studentID int64) bool { return studentID == id })
	return true, nil
}
