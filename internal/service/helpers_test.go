package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/repository/memory"
)

// fixture wires every service over one in-memory store.
type fixture struct {
	store       *memory.Store
	activities  *ActivityService
	users       *UserService
	students    *StudentService
	teachers    *TeacherService
	classes     *ClassService
	enrollments *EnrollmentService
	attendance  *AttendanceService
	grades      *GradeService
	events      *EventService
	dashboard   *DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	logger := zap.NewNop()
	validate := NewValidator()
	activities := NewActivityService(store.Activities(), nil, nil, logger)
	return &fixture{
		store:       store,
		activities:  activities,
		users:       NewUserService(store.Users(), activities, validate, logger),
		students:    NewStudentService(store.Students(), activities, validate, logger),
		teachers:    NewTeacherService(store.Teachers(), store.Users(), activities, validate, logger),
		classes:     NewClassService(store.Classes(), store.Teachers(), activities, validate, logger),
		enrollments: NewEnrollmentService(store.Enrollments(), store.Classes(), store.Students(), activities, validate, logger),
		attendance:  NewAttendanceService(store.Attendance(), store.Classes(), store.Students(), activities, validate, logger),
		grades:      NewGradeService(store.Grades(), store.Classes(), store.Students(), activities, validate, logger),
		events:      NewEventService(store.Events(), activities, validate, logger),
		dashboard: NewDashboardService(DashboardServiceParams{
			Students:   store.Students(),
			Teachers:   store.Teachers(),
			Classes:    store.Classes(),
			Attendance: store.Attendance(),
			Logger:     logger,
		}),
	}
}

func mustDate(t *testing.T, raw string) models.Date {
	t.Helper()
	d, err := models.ParseDate(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	return d
}

func studentRequest(t *testing.T, code, name string) CreateStudentRequest {
	return CreateStudentRequest{
		StudentID:      code,
		Name:           name,
		Gender:         models.GenderFemale,
		DateOfBirth:    mustDate(t, "2008-04-12"),
		GradeLevel:     "10",
		Section:        "A",
		EnrollmentDate: mustDate(t, "2024-07-15"),
	}
}

func classRequest(code string) CreateClassRequest {
	return CreateClassRequest{
		ClassName:    "Algebra",
		ClassCode:    code,
		GradeLevel:   "10",
		Section:      "A",
		AcademicYear: "2024/2025",
	}
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }
