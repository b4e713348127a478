package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

const entityEnrollment = "enrollment"

type enrollmentRepository interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]models.ClassEnrollment, error)
	FindByID(ctx context.Context, id int64) (*models.ClassEnrollment, error)
	Create(ctx context.Context, enrollment *models.ClassEnrollment) error
	Update(ctx context.Context, enrollment *models.ClassEnrollment) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateEnrollmentRequest enrolls a student in a class.
type CreateEnrollmentRequest struct {
	ClassID        int64       `json:"classId" validate:"required,gt=0"`
	StudentID      int64       `json:"studentId" validate:"required,gt=0"`
	EnrollmentDate models.Date `json:"enrollmentDate" validate:"required" swaggertype:"string" example:"2024-09-01"`
}

// UpdateEnrollmentRequest is a partial update.
type UpdateEnrollmentRequest struct {
	ClassID        *int64       `json:"classId" validate:"omitempty,gt=0"`
	StudentID      *int64       `json:"studentId" validate:"omitempty,gt=0"`
	EnrollmentDate *models.Date `json:"enrollmentDate" validate:"omitempty" swaggertype:"string"`
}

// Apply merges the supplied fields onto enrollment.
func (r UpdateEnrollmentRequest) Apply(enrollment *models.ClassEnrollment) {
	setInt64(&enrollment.ClassID, r.ClassID)
	setInt64(&enrollment.StudentID, r.StudentID)
	setDate(&enrollment.EnrollmentDate, r.EnrollmentDate)
}

// EnrollmentService manages class membership.
type EnrollmentService struct {
	repo       enrollmentRepository
	refs       participants
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, classes classFinder, students studentFinder, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		repo:       repo,
		refs:       participants{classes: classes, students: students},
		activities: defaultRecorder(activities),
		validator:  defaultValidator(validate),
		logger:     logger,
	}
}

// List returns enrollments, optionally narrowed to a class or student.
func (s *EnrollmentService) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.ClassEnrollment, error) {
	enrollments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internalError(err, "failed to list enrollments")
	}
	return enrollments, nil
}

// Get returns a single enrollment.
func (s *EnrollmentService) Get(ctx context.Context, id int64) (*models.ClassEnrollment, error) {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityEnrollment)
	}
	return enrollment, nil
}

// Create enrolls a student; the pair must be new and both records must exist.
func (s *EnrollmentService) Create(ctx context.Context, req CreateEnrollmentRequest) (*models.ClassEnrollment, error) {
	if err := validatePayload(s.validator, req, "invalid enrollment payload"); err != nil {
		return nil, err
	}
	label, err := s.refs.require(ctx, req.ClassID, req.StudentID)
	if err != nil {
		return nil, err
	}
	enrollment := &models.ClassEnrollment{ClassID: req.ClassID, StudentID: req.StudentID, EnrollmentDate: req.EnrollmentDate}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, writeError(err, "failed to create enrollment")
	}
	s.activities.Record(ctx, entityEnrollment, actionCreated, label)
	return enrollment, nil
}

// Update merges the supplied fields into an existing enrollment.
func (s *EnrollmentService) Update(ctx context.Context, id int64, req UpdateEnrollmentRequest) (*models.ClassEnrollment, error) {
	if err := validatePayload(s.validator, req, "invalid enrollment payload"); err != nil {
		return nil, err
	}
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityEnrollment)
	}
	req.Apply(enrollment)
	label, err := s.refs.require(ctx, enrollment.ClassID, enrollment.StudentID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, enrollment); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityEnrollment)
		}
		return nil, writeError(err, "failed to update enrollment")
	}
	s.activities.Record(ctx, entityEnrollment, actionUpdated, label)
	return enrollment, nil
}

// Delete removes an enrollment.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityEnrollment)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete enrollment")
	}
	if !removed {
		return notFound(entityEnrollment)
	}
	s.activities.Record(ctx, entityEnrollment, actionDeleted, s.refs.describe(ctx, enrollment.ClassID, enrollment.StudentID))
	return nil
}
