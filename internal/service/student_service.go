package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

const entityStudent = "student"

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	StudentID      string      `json:"studentId" validate:"required"`
	Name           string      `json:"name" validate:"required"`
	Gender         string      `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth    models.Date `json:"dateOfBirth" validate:"required" swaggertype:"string" example:"2008-04-12"`
	Email          string      `json:"email" validate:"omitempty,email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	GuardianName   string      `json:"guardianName"`
	GuardianPhone  string      `json:"guardianPhone"`
	GuardianEmail  string      `json:"guardianEmail" validate:"omitempty,email"`
	GradeLevel     string      `json:"gradeLevel" validate:"required"`
	Section        string      `json:"section" validate:"required"`
	EnrollmentDate models.Date `json:"enrollmentDate" validate:"required" swaggertype:"string" example:"2024-07-15"`
	Avatar         string      `json:"avatar"`
}

func (r CreateStudentRequest) model() *models.Student {
	return &models.Student{
		StudentID:      r.StudentID,
		Name:           r.Name,
		Gender:         r.Gender,
		DateOfBirth:    r.DateOfBirth,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		GuardianName:   r.GuardianName,
		GuardianPhone:  r.GuardianPhone,
		GuardianEmail:  r.GuardianEmail,
		GradeLevel:     r.GradeLevel,
		Section:        r.Section,
		EnrollmentDate: r.EnrollmentDate,
		Avatar:         r.Avatar,
	}
}

// UpdateStudentRequest is a partial update; nil fields are left unchanged.
type UpdateStudentRequest struct {
	StudentID      *string      `json:"studentId" validate:"omitempty,min=1"`
	Name           *string      `json:"name" validate:"omitempty,min=1"`
	Gender         *string      `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth    *models.Date `json:"dateOfBirth" validate:"omitempty" swaggertype:"string"`
	Email          *string      `json:"email" validate:"omitempty,email"`
	Phone          *string      `json:"phone"`
	Address        *string      `json:"address"`
	GuardianName   *string      `json:"guardianName"`
	GuardianPhone  *string      `json:"guardianPhone"`
	GuardianEmail  *string      `json:"guardianEmail" validate:"omitempty,email"`
	GradeLevel     *string      `json:"gradeLevel" validate:"omitempty,min=1"`
	Section        *string      `json:"section" validate:"omitempty,min=1"`
	EnrollmentDate *models.Date `json:"enrollmentDate" validate:"omitempty" swaggertype:"string"`
	Avatar         *string      `json:"avatar"`
}

// Apply merges the supplied fields onto student.
func (r UpdateStudentRequest) Apply(student *models.Student) {
	setString(&student.StudentID, r.StudentID)
	setString(&student.Name, r.Name)
	setString(&student.Gender, r.Gender)
	setDate(&student.DateOfBirth, r.DateOfBirth)
	setString(&student.Email, r.Email)
	setString(&student.Phone, r.Phone)
	setString(&student.Address, r.Address)
	setString(&student.GuardianName, r.GuardianName)
	setString(&student.GuardianPhone, r.GuardianPhone)
	setString(&student.GuardianEmail, r.GuardianEmail)
	setString(&student.GradeLevel, r.GradeLevel)
	setString(&student.Section, r.Section)
	setDate(&student.EnrollmentDate, r.EnrollmentDate)
	setString(&student.Avatar, r.Avatar)
}

// StudentService handles student use-cases.
type StudentService struct {
	repo       studentRepository
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, activities: defaultRecorder(activities), validator: defaultValidator(validate), logger: logger}
}

// List returns every student in registration order.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list students")
	}
	return students, nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityStudent)
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := validatePayload(s.validator, req, "invalid student payload"); err != nil {
		return nil, err
	}
	student := req.model()
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, writeError(err, "failed to create student")
	}
	s.activities.Record(ctx, entityStudent, actionCreated, student.Label())
	return student, nil
}

// Update merges the supplied fields into an existing student.
func (s *StudentService) Update(ctx context.Context, id int64, req UpdateStudentRequest) (*models.Student, error) {
	if err := validatePayload(s.validator, req, "invalid student payload"); err != nil {
		return nil, err
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityStudent)
	}
	req.Apply(student)
	if err := s.repo.Update(ctx, student); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityStudent)
		}
		return nil, writeError(err, "failed to update student")
	}
	s.activities.Record(ctx, entityStudent, actionUpdated, student.Label())
	return student, nil
}

// Delete removes a student together with its enrollments, attendance and grades.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityStudent)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete student")
	}
	if !removed {
		return notFound(entityStudent)
	}
	s.activities.Record(ctx, entityStudent, actionDeleted, student.Label())
	return nil
}
