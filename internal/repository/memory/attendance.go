package memory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/noah-isme/school-records-api/internal/models"
)

// AttendanceRepository stores attendance; one row per (class, student, date).
type AttendanceRepository struct {
	s *Store
}

// Attendance returns the attendance collection of the store.
func (s *Store) Attendance() *AttendanceRepository {
	return &AttendanceRepository{s: s}
}

func attendanceKey(a models.Attendance) string {
	return fmt.Sprintf("%d:%d:%s", a.ClassID, a.StudentID, a.Date.String())
}

// List returns attendance records matching the filter in insertion order.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.attendance.scan(filter.Matches), nil
}

// StatusCounts tallies attendance records matching the filter per status.
func (r *AttendanceRepository) StatusCounts(ctx context.Context, filter models.AttendanceFilter) (models.AttendanceCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var counts models.AttendanceCounts
	for _, row := range r.s.attendance.scan(filter.Matches) {
		counts.Add(row.Status)
	}
	return counts, nil
}

// FindByID fetches an attendance record by id.
func (r *AttendanceRepository) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	record, ok := r.s.attendance.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &record, nil
}

// Create inserts the record and assigns its id.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := attendanceKey(*record)
	if err := r.s.attendedDay.check(key, 0); err != nil {
		return err
	}
	record.ID = r.s.attendance.nextID()
	r.s.attendance.insert(record.ID, *record)
	r.s.attendedDay.claim(key, record.ID)
	return nil
}

// Update replaces the stored record with the merged record.
func (r *AttendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.attendance.get(record.ID)
	if !ok {
		return sql.ErrNoRows
	}
	key := attendanceKey(*record)
	if err := r.s.attendedDay.check(key, record.ID); err != nil {
		return err
	}
	r.s.attendance.replace(record.ID, *record)
	r.s.attendedDay.move(attendanceKey(existing), key, record.ID)
	return nil
}

// Delete removes the record.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.attendance.get(id)
	if !ok {
		return false, nil
	}
	r.s.attendance.remove(id)
	r.s.attendedDay.release(attendanceKey(existing), id)
	return true, nil
}
