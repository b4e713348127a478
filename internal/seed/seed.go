// Package seed loads a small demonstration data set through the record services.
//
// Load is the documented initialisation routine for a fresh store: it does nothing
// when any user already exists, otherwise it creates an administrator, two teachers,
// two classes, three students and a week of attendance, grades and events. Every
// record goes through the services, so the activity log reflects the seeding.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/service"
)

// AdminUsername is the login created for the seeded administrator.
const AdminUsername = "admin"

// Result reports what Load created.
type Result struct {
	Skipped  bool
	Users    int
	Teachers int
	Classes  int
	Students int
}

// Load seeds svc when the store is empty. adminPassword must satisfy the user password rules.
func Load(ctx context.Context, svc *service.Services, adminPassword string, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	existing, err := svc.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing users: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("store already holds data, skipping seed", zap.Int("users", len(existing)))
		return &Result{Skipped: true}, nil
	}

	s := &seeder{svc: svc}
	s.run(ctx, adminPassword)
	if s.err != nil {
		return nil, s.err
	}
	logger.Info("demo data seeded",
		zap.Int("users", s.result.Users),
		zap.Int("teachers", s.result.Teachers),
		zap.Int("classes", s.result.Classes),
		zap.Int("students", s.result.Students),
	)
	return &s.result, nil
}

// seeder stops at the first failure; later steps become no-ops.
type seeder struct {
	svc    *service.Services
	err    error
	result Result
}

func (s *seeder) run(ctx context.Context, adminPassword string) {
	s.user(ctx, service.CreateUserRequest{
		Username: AdminUsername,
		Password: adminPassword,
		Role:     models.RoleAdmin,
		FullName: "School Administrator",
		Email:    "admin@school.test",
	})
	teacherAccount := s.user(ctx, service.CreateUserRequest{
		Username: "s.smith",
		Password: adminPassword,
		Role:     models.RoleTeacher,
		FullName: "Sarah Smith",
		Email:    "s.smith@school.test",
	})

	math := s.teacher(ctx, service.CreateTeacherRequest{
		TeacherID:     "TCH001",
		Name:          "Sarah Smith",
		Email:         "s.smith@school.test",
		Qualification: "M.Sc. Mathematics",
		JoinDate:      date(2018, 8, 1),
		Subjects:      []string{"Mathematics", "Statistics"},
		UserID:        userID(teacherAccount),
	})
	science := s.teacher(ctx, service.CreateTeacherRequest{
		TeacherID:     "TCH002",
		Name:          "Daniel Okafor",
		Email:         "d.okafor@school.test",
		Qualification: "B.Sc. Physics",
		JoinDate:      date(2020, 1, 6),
		Subjects:      []string{"Physics"},
	})

	algebra := s.class(ctx, service.CreateClassRequest{
		ClassName:    "Algebra I",
		ClassCode:    "MATH-10A",
		GradeLevel:   "10",
		Section:      "A",
		TeacherID:    teacherID(math),
		Schedule:     "Mon/Wed/Fri 08:00",
		RoomNumber:   "101",
		AcademicYear: "2024/2025",
	})
	physics := s.class(ctx, service.CreateClassRequest{
		ClassName:    "Physics",
		ClassCode:    "PHY-10A",
		GradeLevel:   "10",
		Section:      "A",
		TeacherID:    teacherID(science),
		Schedule:     "Tue/Thu 10:00",
		RoomNumber:   "204",
		AcademicYear: "2024/2025",
	})

	names := []struct{ code, name, gender string }{
		{"STU001", "Jane Doe", models.GenderFemale},
		{"STU002", "John Roe", models.GenderMale},
		{"STU003", "Kim Lee", models.GenderOther},
	}
	var students []*models.Student
	for _, n := range names {
		students = append(students, s.student(ctx, service.CreateStudentRequest{
			StudentID:      n.code,
			Name:           n.name,
			Gender:         n.gender,
			DateOfBirth:    date(2008, 4, 12),
			GuardianName:   "Guardian of " + n.name,
			GradeLevel:     "10",
			Section:        "A",
			EnrollmentDate: date(2024, 7, 15),
		}))
	}

	statuses := []models.AttendanceStatus{models.AttendanceStatusPresent, models.AttendanceStatusLate, models.AttendanceStatusAbsent}
	for i, student := range students {
		for _, class := range []*models.Class{algebra, physics} {
			s.enroll(ctx, class, student)
			for day := 0; day < 5; day++ {
				status := models.AttendanceStatusPresent
				if day == 4 {
					status = statuses[i%len(statuses)]
				}
				s.attend(ctx, class, student, date(2024, 10, 7+day), status)
			}
			s.grade(ctx, class, student, "Quiz 1", models.AssignmentQuiz, 10, float64(10-i))
			s.grade(ctx, class, student, "Midterm", models.AssignmentExam, 100, float64(92-7*i))
		}
	}

	end := date(2025, 1, 3)
	s.event(ctx, service.CreateEventRequest{
		Title:     "Winter break",
		StartDate: date(2024, 12, 20),
		EndDate:   &end,
		AllDay:    true,
		Type:      models.EventHoliday,
	})
	s.event(ctx, service.CreateEventRequest{
		Title:     "Parent-teacher meeting",
		StartDate: date(2024, 11, 14),
		StartTime: "16:00",
		EndTime:   "18:00",
		Location:  "Main hall",
		Type:      models.EventMeeting,
	})
}

func (s *seeder) user(ctx context.Context, req service.CreateUserRequest) *models.User {
	if s.err != nil {
		return nil
	}
	user, err := s.svc.Users.Create(ctx, req)
	if err != nil {
		s.err = fmt.Errorf("seed user %s: %w", req.Username, err)
		return nil
	}
	s.result.Users++
	return user
}

func (s *seeder) teacher(ctx context.Context, req service.CreateTeacherRequest) *models.Teacher {
	if s.err != nil {
		return nil
	}
	teacher, err := s.svc.Teachers.Create(ctx, req)
	if err != nil {
		s.err = fmt.Errorf("seed teacher %s: %w", req.TeacherID, err)
		return nil
	}
	s.result.Teachers++
	return teacher
}

func (s *seeder) class(ctx context.Context, req service.CreateClassRequest) *models.Class {
	if s.err != nil {
		return nil
	}
	class, err := s.svc.Classes.Create(ctx, req)
	if err != nil {
		s.err = fmt.Errorf("seed class %s: %w", req.ClassCode, err)
		return nil
	}
	s.result.Classes++
	return class
}

func (s *seeder) student(ctx context.Context, req service.CreateStudentRequest) *models.Student {
	if s.err != nil {
		return nil
	}
	student, err := s.svc.Students.Create(ctx, req)
	if err != nil {
		s.err = fmt.Errorf("seed student %s: %w", req.StudentID, err)
		return nil
	}
	s.result.Students++
	return student
}

func (s *seeder) enroll(ctx context.Context, class *models.Class, student *models.Student) {
	if s.err != nil {
		return
	}
	_, err := s.svc.Enrollments.Create(ctx, service.CreateEnrollmentRequest{
		ClassID:        class.ID,
		StudentID:      student.ID,
		EnrollmentDate: date(2024, 9, 2),
	})
	if err != nil {
		s.err = fmt.Errorf("seed enrollment %s/%s: %w", class.ClassCode, student.StudentID, err)
	}
}

func (s *seeder) attend(ctx context.Context, class *models.Class, student *models.Student, day models.Date, status models.AttendanceStatus) {
	if s.err != nil {
		return
	}
	_, err := s.svc.Attendance.Create(ctx, service.CreateAttendanceRequest{
		ClassID:   class.ID,
		StudentID: student.ID,
		Date:      day,
		Status:    status,
	})
	if err != nil {
		s.err = fmt.Errorf("seed attendance %s/%s %s: %w", class.ClassCode, student.StudentID, day, err)
	}
}

func (s *seeder) grade(ctx context.Context, class *models.Class, student *models.Student, name, kind string, maxScore, score float64) {
	if s.err != nil {
		return
	}
	_, err := s.svc.Grades.Create(ctx, service.CreateGradeRequest{
		ClassID:        class.ID,
		StudentID:      student.ID,
		AssignmentName: name,
		AssignmentType: kind,
		MaxScore:       &maxScore,
		Score:          &score,
		GradedDate:     date(2024, 10, 11),
	})
	if err != nil {
		s.err = fmt.Errorf("seed grade %s for %s: %w", name, student.StudentID, err)
	}
}

func (s *seeder) event(ctx context.Context, req service.CreateEventRequest) {
	if s.err != nil {
		return
	}
	if _, err := s.svc.Events.Create(ctx, req); err != nil {
		s.err = fmt.Errorf("seed event %s: %w", req.Title, err)
	}
}

func date(year, month, day int) models.Date {
	return models.NewDate(year, time.Month(month), day)
}

func userID(user *models.User) *int64 {
	if user == nil {
		return nil
	}
	return &user.ID
}

func teacherID(teacher *models.Teacher) *int64 {
	if teacher == nil {
		return nil
	}
	return &teacher.ID
}
