package memory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/noah-isme/school-records-api/internal/models"
)

// EnrollmentRepository stores class enrollments; a student is enrolled in a class at most once.
type EnrollmentRepository struct {
	s *Store
}

// Enrollments returns the enrollment collection of the store.
func (s *Store) Enrollments() *EnrollmentRepository {
	return &EnrollmentRepository{s: s}
}

func enrollmentKey(classID, studentID int64) string {
	return fmt.Sprintf("%d:%d", classID, studentID)
}

// List returns enrollments matching the filter in insertion order.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.ClassEnrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.enrollments.scan(filter.Matches), nil
}

// FindByID fetches an enrollment by id.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.ClassEnrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	enrollment, ok := r.s.enrollments.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &enrollment, nil
}

// Create inserts the enrollment and assigns its id.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.ClassEnrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := enrollmentKey(enrollment.ClassID, enrollment.StudentID)
	if err := r.s.enrolled.check(key, 0); err != nil {
		return err
	}
	enrollment.ID = r.s.enrollments.nextID()
	r.s.enrollments.insert(enrollment.ID, *enrollment)
	r.s.enrolled.claim(key, enrollment.ID)
	return nil
}

// Update replaces the stored enrollment with the merged record.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.ClassEnrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.enrollments.get(enrollment.ID)
	if !ok {
		return sql.ErrNoRows
	}
	key := enrollmentKey(enrollment.ClassID, enrollment.StudentID)
	if err := r.s.enrolled.check(key, enrollment.ID); err != nil {
		return err
	}
	r.s.enrollments.replace(enrollment.ID, *enrollment)
	r.s.enrolled.move(enrollmentKey(existing.ClassID, existing.StudentID), key, enrollment.ID)
	return nil
}

// Delete removes the enrollment.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.enrollments.get(id)
	if !ok {
		return false, nil
	}
	r.s.enrollments.remove(id)
	r.s.enrolled.release(enrollmentKey(existing.ClassID, existing.StudentID), id)
	return true, nil
}

// dropDependents removes enrollments, attendance and grades whose (class, student)
// pair matches. Callers hold the write lock.
func (s *Store) dropDependents(match func(classID, studentID int64) bool) {
	for _, id := range s.enrollments.ids(func(e models.ClassEnrollment) bool { return match(e.ClassID, e.StudentID) }) {
		e, _ := s.enrollments.get(id)
		s.enrollments.remove(id)
		s.enrolled.release(enrollmentKey(e.ClassID, e.StudentID), id)
	}
	for _, id := range s.attendance.ids(func(a models.Attendance) bool { return match(a.ClassID, a.StudentID) }) {
		a, _ := s.attendance.get(id)
		s.attendance.remove(id)
		s.attendedDay.release(attendanceKey(a), id)
	}
	for _, id := range s.grades.ids(func(g models.Grade) bool { return match(g.ClassID, g.StudentID) }) {
		s.grades.remove(id)
	}
}
