package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

const entityGrade = "grade"

type gradeRepository interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error)
	FindByID(ctx context.Context, id int64) (*models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateGradeRequest records a scored assignment. Both scores are required; score may exceed maxScore.
type CreateGradeRequest struct {
	ClassID        int64       `json:"classId" validate:"required,gt=0"`
	StudentID      int64       `json:"studentId" validate:"required,gt=0"`
	AssignmentName string      `json:"assignmentName" validate:"required"`
	AssignmentType string      `json:"assignmentType" validate:"required,oneof=exam quiz homework project"`
	MaxScore       *float64    `json:"maxScore" validate:"required,gte=0"`
	Score          *float64    `json:"score" validate:"required,gte=0"`
	GradedDate     models.Date `json:"gradedDate" validate:"required" swaggertype:"string" example:"2024-10-11"`
	Comments       string      `json:"comments"`
}

// UpdateGradeRequest is a partial update.
type UpdateGradeRequest struct {
	ClassID        *int64       `json:"classId" validate:"omitempty,gt=0"`
	StudentID      *int64       `json:"studentId" validate:"omitempty,gt=0"`
	AssignmentName *string      `json:"assignmentName" validate:"omitempty,min=1"`
	AssignmentType *string      `json:"assignmentType" validate:"omitempty,oneof=exam quiz homework project"`
	MaxScore       *float64     `json:"maxScore" validate:"omitempty,gte=0"`
	Score          *float64     `json:"score" validate:"omitempty,gte=0"`
	GradedDate     *models.Date `json:"gradedDate" validate:"omitempty" swaggertype:"string"`
	Comments       *string      `json:"comments"`
}

// Apply merges the supplied fields onto grade.
func (r UpdateGradeRequest) Apply(grade *models.Grade) {
	setInt64(&grade.ClassID, r.ClassID)
	setInt64(&grade.StudentID, r.StudentID)
	setString(&grade.AssignmentName, r.AssignmentName)
	setString(&grade.AssignmentType, r.AssignmentType)
	setFloat(&grade.MaxScore, r.MaxScore)
	setFloat(&grade.Score, r.Score)
	setDate(&grade.GradedDate, r.GradedDate)
	setString(&grade.Comments, r.Comments)
}

// GradeService records grades and derives GPA summaries.
type GradeService struct {
	repo       gradeRepository
	refs       participants
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(repo gradeRepository, classes classFinder, students studentFinder, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{
		repo:       repo,
		refs:       participants{classes: classes, students: students},
		activities: defaultRecorder(activities),
		validator:  defaultValidator(validate),
		logger:     logger,
	}
}

// List returns grades narrowed by class and/or student.
func (s *GradeService) List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error) {
	grades, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internalError(err, "failed to list grades")
	}
	return grades, nil
}

// Summary aggregates the filtered grades into a percentage, GPA and letter.
func (s *GradeService) Summary(ctx context.Context, filter models.GradeFilter) (models.GradeSummary, error) {
	grades, err := s.repo.List(ctx, filter)
	if err != nil {
		return models.GradeSummary{}, internalError(err, "failed to summarise grades")
	}
	return models.SummarizeGrades(grades), nil
}

// Get returns a single grade.
func (s *GradeService) Get(ctx context.Context, id int64) (*models.Grade, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityGrade)
	}
	return grade, nil
}

// Create records a grade.
func (s *GradeService) Create(ctx context.Context, req CreateGradeRequest) (*models.Grade, error) {
	if err := validatePayload(s.validator, req, "invalid grade payload"); err != nil {
		return nil, err
	}
	label, err := s.refs.require(ctx, req.ClassID, req.StudentID)
	if err != nil {
		return nil, err
	}
	grade := &models.Grade{
		ClassID:        req.ClassID,
		StudentID:      req.StudentID,
		AssignmentName: req.AssignmentName,
		AssignmentType: req.AssignmentType,
		MaxScore:       *req.MaxScore,
		Score:          *req.Score,
		GradedDate:     req.GradedDate,
		Comments:       req.Comments,
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		return nil, writeError(err, "failed to create grade")
	}
	s.activities.Record(ctx, entityGrade, actionCreated, grade.AssignmentName+" for "+label)
	return grade, nil
}

// Update merges the supplied fields into an existing grade.
func (s *GradeService) Update(ctx context.Context, id int64, req UpdateGradeRequest) (*models.Grade, error) {
	if err := validatePayload(s.validator, req, "invalid grade payload"); err != nil {
		return nil, err
	}
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityGrade)
	}
	req.Apply(grade)
	label, err := s.refs.require(ctx, grade.ClassID, grade.StudentID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, grade); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityGrade)
		}
		return nil, writeError(err, "failed to update grade")
	}
	s.activities.Record(ctx, entityGrade, actionUpdated, grade.AssignmentName+" for "+label)
	return grade, nil
}

// Delete removes a grade.
func (s *GradeService) Delete(ctx context.Context, id int64) error {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityGrade)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete grade")
	}
	if !removed {
		return notFound(entityGrade)
	}
	s.activities.Record(ctx, entityGrade, actionDeleted, grade.AssignmentName+" for "+s.refs.describe(ctx, grade.ClassID, grade.StudentID))
	return nil
}
