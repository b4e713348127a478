package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Store contracts satisfied by both the in-memory store and the PostgreSQL repositories.
type (
	UserStore interface {
		userRepository
		authUserRepository
	}
	StudentStore interface {
		studentRepository
		counter
	}
	TeacherStore interface {
		teacherRepository
		counter
	}
	ClassStore interface {
		classRepository
		counter
	}
	EnrollmentStore = enrollmentRepository
	AttendanceStore = attendanceRepository
	GradeStore      = gradeRepository
	EventStore      = eventRepository
	ActivityStore   = activityRepository
)

// Repositories bundles one data store implementation.
type Repositories struct {
	Users       UserStore
	Students    StudentStore
	Teachers    TeacherStore
	Classes     ClassStore
	Enrollments EnrollmentStore
	Attendance  AttendanceStore
	Grades      GradeStore
	Events      EventStore
	Activities  ActivityStore
}

// Options carries the cross-cutting dependencies shared by every service.
type Options struct {
	Logger    *zap.Logger
	Validator *validator.Validate
	Metrics   *MetricsService
	Cache     *CacheService
	Auth      AuthConfig
}

// Services is the wired record service layer.
type Services struct {
	Activities  *ActivityService
	Users       *UserService
	Students    *StudentService
	Teachers    *TeacherService
	Classes     *ClassService
	Enrollments *EnrollmentService
	Attendance  *AttendanceService
	Grades      *GradeService
	Events      *EventService
	Dashboard   *DashboardService
	Auth        *AuthService
	Exports     *ExportService
	Imports     *StudentImportService
}

// NewServices wires every service over repos.
func NewServices(repos Repositories, opts Options) *Services {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := defaultValidator(opts.Validator)

	activities := NewActivityService(repos.Activities, opts.Cache, opts.Metrics, logger.Named("activity"))
	students := NewStudentService(repos.Students, activities, validate, logger.Named("student"))
	return &Services{
		Activities:  activities,
		Users:       NewUserService(repos.Users, activities, validate, logger.Named("user")),
		Students:    students,
		Teachers:    NewTeacherService(repos.Teachers, repos.Users, activities, validate, logger.Named("teacher")),
		Classes:     NewClassService(repos.Classes, repos.Teachers, activities, validate, logger.Named("class")),
		Enrollments: NewEnrollmentService(repos.Enrollments, repos.Classes, repos.Students, activities, validate, logger.Named("enrollment")),
		Attendance:  NewAttendanceService(repos.Attendance, repos.Classes, repos.Students, activities, validate, logger.Named("attendance")),
		Grades:      NewGradeService(repos.Grades, repos.Classes, repos.Students, activities, validate, logger.Named("grade")),
		Events:      NewEventService(repos.Events, activities, validate, logger.Named("event")),
		Dashboard: NewDashboardService(DashboardServiceParams{
			Students:   repos.Students,
			Teachers:   repos.Teachers,
			Classes:    repos.Classes,
			Attendance: repos.Attendance,
			Cache:      opts.Cache,
			Logger:     logger.Named("dashboard"),
		}),
		Auth: NewAuthService(repos.Users, validate, logger.Named("auth"), opts.Auth),
		Exports: NewExportService(ExportSources{
			Students:    repos.Students,
			Teachers:    repos.Teachers,
			Classes:     repos.Classes,
			Enrollments: repos.Enrollments,
			Attendance:  repos.Attendance,
			Grades:      repos.Grades,
			Events:      repos.Events,
			Activities:  repos.Activities,
		}, logger.Named("export")),
		Imports: NewStudentImportService(students, logger.Named("import")),
	}
}
