package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

const entityClass = "class"

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type teacherFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// CreateClassRequest holds payload for creating classes.
type CreateClassRequest struct {
	ClassName    string `json:"className" validate:"required"`
	ClassCode    string `json:"classCode" validate:"required"`
	GradeLevel   string `json:"gradeLevel" validate:"required"`
	Section      string `json:"section" validate:"required"`
	Description  string `json:"description"`
	TeacherID    *int64 `json:"teacherId" validate:"omitempty,gt=0"`
	Schedule     string `json:"schedule"`
	RoomNumber   string `json:"roomNumber"`
	AcademicYear string `json:"academicYear" validate:"required"`
}

// UpdateClassRequest is a partial update; teacherId 0 unassigns the teacher.
type UpdateClassRequest struct {
	ClassName    *string `json:"className" validate:"omitempty,min=1"`
	ClassCode    *string `json:"classCode" validate:"omitempty,min=1"`
	GradeLevel   *string `json:"gradeLevel" validate:"omitempty,min=1"`
	Section      *string `json:"section" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	TeacherID    *int64  `json:"teacherId" validate:"omitempty,gte=0"`
	Schedule     *string `json:"schedule"`
	RoomNumber   *string `json:"roomNumber"`
	AcademicYear *string `json:"academicYear" validate:"omitempty,min=1"`
}

// Apply merges the supplied fields onto class.
func (r UpdateClassRequest) Apply(class *models.Class) {
	setString(&class.ClassName, r.ClassName)
	setString(&class.ClassCode, r.ClassCode)
	setString(&class.GradeLevel, r.GradeLevel)
	setString(&class.Section, r.Section)
	setString(&class.Description, r.Description)
	setOptionalID(&class.TeacherID, r.TeacherID)
	setString(&class.Schedule, r.Schedule)
	setString(&class.RoomNumber, r.RoomNumber)
	setString(&class.AcademicYear, r.AcademicYear)
}

// ClassService handles class use-cases.
type ClassService struct {
	repo       classRepository
	teachers   teacherFinder
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewClassService constructs the class service.
func NewClassService(repo classRepository, teachers teacherFinder, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, teachers: teachers, activities: defaultRecorder(activities), validator: defaultValidator(validate), logger: logger}
}

// List returns every class.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list classes")
	}
	return classes, nil
}

// Get returns a single class.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityClass)
	}
	return class, nil
}

// Create registers a class, verifying the assigned teacher when one is given.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := validatePayload(s.validator, req, "invalid class payload"); err != nil {
		return nil, err
	}
	if req.TeacherID != nil {
		if _, err := requireReference(ctx, "teacherId", *req.TeacherID, s.teachers.FindByID); err != nil {
			return nil, err
		}
	}
	class := &models.Class{
		ClassName:    req.ClassName,
		ClassCode:    req.ClassCode,
		GradeLevel:   req.GradeLevel,
		Section:      req.Section,
		Description:  req.Description,
		TeacherID:    req.TeacherID,
		Schedule:     req.Schedule,
		RoomNumber:   req.RoomNumber,
		AcademicYear: req.AcademicYear,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, writeError(err, "failed to create class")
	}
	s.activities.Record(ctx, entityClass, actionCreated, class.Label())
	return class, nil
}

// Update merges the supplied fields into an existing class.
func (s *ClassService) Update(ctx context.Context, id int64, req UpdateClassRequest) (*models.Class, error) {
	if err := validatePayload(s.validator, req, "invalid class payload"); err != nil {
		return nil, err
	}
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityClass)
	}
	if req.TeacherID != nil && *req.TeacherID != 0 {
		if _, err := requireReference(ctx, "teacherId", *req.TeacherID, s.teachers.FindByID); err != nil {
			return nil, err
		}
	}
	req.Apply(class)
	if err := s.repo.Update(ctx, class); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityClass)
		}
		return nil, writeError(err, "failed to update class")
	}
	s.activities.Record(ctx, entityClass, actionUpdated, class.Label())
	return class, nil
}

// Delete removes a class together with its enrollments, attendance and grades.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityClass)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete class")
	}
	if !removed {
		return notFound(entityClass)
	}
	s.activities.Record(ctx, entityClass, actionDeleted, class.Label())
	return nil
}
