package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

const entityAttendance = "attendance"

type attendanceRepository interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	StatusCounts(ctx context.Context, filter models.AttendanceFilter) (models.AttendanceCounts, error)
	FindByID(ctx context.Context, id int64) (*models.Attendance, error)
	Create(ctx context.Context, record *models.Attendance) error
	Update(ctx context.Context, record *models.Attendance) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateAttendanceRequest records a student's attendance for a class on a day.
type CreateAttendanceRequest struct {
	ClassID   int64                   `json:"classId" validate:"required,gt=0"`
	StudentID int64                   `json:"studentId" validate:"required,gt=0"`
	Date      models.Date             `json:"date" validate:"required" swaggertype:"string" example:"2024-10-07"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	Notes     string                  `json:"notes"`
}

// UpdateAttendanceRequest is a partial update.
type UpdateAttendanceRequest struct {
	ClassID   *int64                   `json:"classId" validate:"omitempty,gt=0"`
	StudentID *int64                   `json:"studentId" validate:"omitempty,gt=0"`
	Date      *models.Date             `json:"date" validate:"omitempty" swaggertype:"string"`
	Status    *models.AttendanceStatus `json:"status" validate:"omitempty,oneof=present absent late excused"`
	Notes     *string                  `json:"notes"`
}

// Apply merges the supplied fields onto record.
func (r UpdateAttendanceRequest) Apply(record *models.Attendance) {
	setInt64(&record.ClassID, r.ClassID)
	setInt64(&record.StudentID, r.StudentID)
	setDate(&record.Date, r.Date)
	if r.Status != nil {
		record.Status = *r.Status
	}
	setString(&record.Notes, r.Notes)
}

// AttendanceService records and summarises attendance.
type AttendanceService struct {
	repo       attendanceRepository
	refs       participants
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo attendanceRepository, classes classFinder, students studentFinder, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		repo:       repo,
		refs:       participants{classes: classes, students: students},
		activities: defaultRecorder(activities),
		validator:  defaultValidator(validate),
		logger:     logger,
	}
}

// List returns attendance narrowed by class, student and calendar date.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internalError(err, "failed to list attendance")
	}
	return records, nil
}

// Summary counts records per status and derives the attendance rate for the filter.
func (s *AttendanceService) Summary(ctx context.Context, filter models.AttendanceFilter) (models.AttendanceSummary, error) {
	counts, err := s.repo.StatusCounts(ctx, filter)
	if err != nil {
		return models.AttendanceSummary{}, internalError(err, "failed to summarise attendance")
	}
	return counts.Summary(), nil
}

// Get returns a single attendance record.
func (s *AttendanceService) Get(ctx context.Context, id int64) (*models.Attendance, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityAttendance)
	}
	return record, nil
}

// Create records attendance; one record per class, student and day.
func (s *AttendanceService) Create(ctx context.Context, req CreateAttendanceRequest) (*models.Attendance, error) {
	if err := validatePayload(s.validator, req, "invalid attendance payload"); err != nil {
		return nil, err
	}
	label, err := s.refs.require(ctx, req.ClassID, req.StudentID)
	if err != nil {
		return nil, err
	}
	record := &models.Attendance{ClassID: req.ClassID, StudentID: req.StudentID, Date: req.Date, Status: req.Status, Notes: req.Notes}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, writeError(err, "failed to record attendance")
	}
	s.activities.Record(ctx, entityAttendance, actionCreated, attendanceDetails(record, label))
	return record, nil
}

// Update merges the supplied fields into an existing record.
func (s *AttendanceService) Update(ctx context.Context, id int64, req UpdateAttendanceRequest) (*models.Attendance, error) {
	if err := validatePayload(s.validator, req, "invalid attendance payload"); err != nil {
		return nil, err
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityAttendance)
	}
	req.Apply(record)
	label, err := s.refs.require(ctx, record.ClassID, record.StudentID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, record); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityAttendance)
		}
		return nil, writeError(err, "failed to update attendance")
	}
	s.activities.Record(ctx, entityAttendance, actionUpdated, attendanceDetails(record, label))
	return record, nil
}

// Delete removes an attendance record.
func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityAttendance)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete attendance")
	}
	if !removed {
		return notFound(entityAttendance)
	}
	s.activities.Record(ctx, entityAttendance, actionDeleted, attendanceDetails(record, s.refs.describe(ctx, record.ClassID, record.StudentID)))
	return nil
}

func attendanceDetails(record *models.Attendance, label string) string {
	return label + " on " + record.Date.String() + ": " + string(record.Status)
}
