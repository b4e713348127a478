package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const attendanceColumns = "id, class_id, student_id, date, status, notes"

// AttendanceRepository persists attendance records.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func attendanceWhere(filter models.AttendanceFilter) whereBuilder {
	var where whereBuilder
	if filter.ClassID != 0 {
		where.add("class_id", filter.ClassID)
	}
	if filter.StudentID != 0 {
		where.add("student_id", filter.StudentID)
	}
	if filter.Date != nil {
		where.add("date", *filter.Date)
	}
	return where
}

// List returns attendance filtered by class, student and calendar date.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	where := attendanceWhere(filter)
	query := "SELECT " + attendanceColumns + " FROM attendance" + where.clause() + " ORDER BY id"
	records := []models.Attendance{}
	if err := r.db.SelectContext(ctx, &records, query, where.args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// StatusCounts tallies attendance per status for the filter.
func (r *AttendanceRepository) StatusCounts(ctx context.Context, filter models.AttendanceFilter) (models.AttendanceCounts, error) {
	where := attendanceWhere(filter)
	query := `SELECT COUNT(*) FILTER (WHERE status = 'present') AS present,
        COUNT(*) FILTER (WHERE status = 'absent') AS absent,
        COUNT(*) FILTER (WHERE status = 'late') AS late,
        COUNT(*) FILTER (WHERE status = 'excused') AS excused
        FROM attendance` + where.clause()
	var counts models.AttendanceCounts
	if err := r.db.GetContext(ctx, &counts, query, where.args...); err != nil {
		return models.AttendanceCounts{}, fmt.Errorf("count attendance: %w", err)
	}
	return counts, nil
}

// FindByID fetches an attendance record by id.
func (r *AttendanceRepository) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.GetContext(ctx, &record, "SELECT "+attendanceColumns+" FROM attendance WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts an attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	const query = `INSERT INTO attendance (class_id, student_id, date, status, notes) VALUES (:class_id, :student_id, :date, :status, :notes) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, record, "create attendance")
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

// Update writes the merged attendance record.
func (r *AttendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	const query = `UPDATE attendance SET class_id = :class_id, student_id = :student_id, date = :date, status = :status, notes = :notes WHERE id = :id`
	return updateOne(ctx, r.db, query, record, "update attendance")
}

// Delete removes an attendance record.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "attendance", id)
}
