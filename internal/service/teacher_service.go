package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

const entityTeacher = "teacher"

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// CreateTeacherRequest holds payload for creating teachers.
type CreateTeacherRequest struct {
	TeacherID     string      `json:"teacherId" validate:"required"`
	Name          string      `json:"name" validate:"required"`
	Email         string      `json:"email" validate:"required,email"`
	Phone         string      `json:"phone"`
	Qualification string      `json:"qualification"`
	JoinDate      models.Date `json:"joinDate" validate:"required" swaggertype:"string" example:"2019-08-01"`
	Subjects      []string    `json:"subjects" validate:"omitempty,dive,required"`
	Avatar        string      `json:"avatar"`
	UserID        *int64      `json:"userId" validate:"omitempty,gt=0"`
}

// UpdateTeacherRequest is a partial update; userId 0 unlinks the account.
type UpdateTeacherRequest struct {
	TeacherID     *string      `json:"teacherId" validate:"omitempty,min=1"`
	Name          *string      `json:"name" validate:"omitempty,min=1"`
	Email         *string      `json:"email" validate:"omitempty,email"`
	Phone         *string      `json:"phone"`
	Qualification *string      `json:"qualification"`
	JoinDate      *models.Date `json:"joinDate" validate:"omitempty" swaggertype:"string"`
	Subjects      *[]string    `json:"subjects" validate:"omitempty,dive,required"`
	Avatar        *string      `json:"avatar"`
	UserID        *int64       `json:"userId" validate:"omitempty,gte=0"`
}

// Apply merges the supplied fields onto teacher.
func (r UpdateTeacherRequest) Apply(teacher *models.Teacher) {
	setString(&teacher.TeacherID, r.TeacherID)
	setString(&teacher.Name, r.Name)
	setString(&teacher.Email, r.Email)
	setString(&teacher.Phone, r.Phone)
	setString(&teacher.Qualification, r.Qualification)
	setDate(&teacher.JoinDate, r.JoinDate)
	if r.Subjects != nil {
		teacher.Subjects = append([]string{}, (*r.Subjects)...)
	}
	setString(&teacher.Avatar, r.Avatar)
	setOptionalID(&teacher.UserID, r.UserID)
}

// TeacherService handles teacher use-cases.
type TeacherService struct {
	repo       teacherRepository
	users      userFinder
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(repo teacherRepository, users userFinder, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, users: users, activities: defaultRecorder(activities), validator: defaultValidator(validate), logger: logger}
}

// List returns every teacher.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list teachers")
	}
	return teachers, nil
}

// Get returns a single teacher.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityTeacher)
	}
	return teacher, nil
}

// Create registers a teacher, verifying the linked account when one is given.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := validatePayload(s.validator, req, "invalid teacher payload"); err != nil {
		return nil, err
	}
	if req.UserID != nil {
		if _, err := requireReference(ctx, "userId", *req.UserID, s.users.FindByID); err != nil {
			return nil, err
		}
	}
	subjects := req.Subjects
	if subjects == nil {
		subjects = []string{}
	}
	teacher := &models.Teacher{
		TeacherID:     req.TeacherID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Qualification: req.Qualification,
		JoinDate:      req.JoinDate,
		Subjects:      subjects,
		Avatar:        req.Avatar,
		UserID:        req.UserID,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, writeError(err, "failed to create teacher")
	}
	s.activities.Record(ctx, entityTeacher, actionCreated, teacher.Label())
	return teacher, nil
}

// Update merges the supplied fields into an existing teacher.
func (s *TeacherService) Update(ctx context.Context, id int64, req UpdateTeacherRequest) (*models.Teacher, error) {
	if err := validatePayload(s.validator, req, "invalid teacher payload"); err != nil {
		return nil, err
	}
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityTeacher)
	}
	if req.UserID != nil && *req.UserID != 0 {
		if _, err := requireReference(ctx, "userId", *req.UserID, s.users.FindByID); err != nil {
			return nil, err
		}
	}
	req.Apply(teacher)
	if err := s.repo.Update(ctx, teacher); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityTeacher)
		}
		return nil, writeError(err, "failed to update teacher")
	}
	s.activities.Record(ctx, entityTeacher, actionUpdated, teacher.Label())
	return teacher, nil
}

// Delete removes a teacher; their classes are left without a teacher.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityTeacher)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete teacher")
	}
	if !removed {
		return notFound(entityTeacher)
	}
	s.activities.Record(ctx, entityTeacher, actionDeleted, teacher.Label())
	return nil
}
