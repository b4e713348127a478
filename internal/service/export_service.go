package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
	"github.com/noah-isme/school-records-api/pkg/export"
)

// Export formats accepted by ExportService.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportSources lists the collections that can be exported.
type ExportSources struct {
	Students interface {
		List(ctx context.Context) ([]models.Student, error)
	}
	Teachers interface {
		List(ctx context.Context) ([]models.Teacher, error)
	}
	Classes interface {
		List(ctx context.Context) ([]models.Class, error)
	}
	Enrollments interface {
		List(ctx context.Context, filter models.EnrollmentFilter) ([]models.ClassEnrollment, error)
	}
	Attendance interface {
		List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	}
	Grades interface {
		List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error)
	}
	Events interface {
		List(ctx context.Context) ([]models.Event, error)
	}
	Activities interface {
		List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	}
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders collections as CSV, PDF or XLSX documents.
type ExportService struct {
	sources   ExportSources
	renderers map[string]renderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService with the standard renderers.
func NewExportService(sources ExportSources, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		sources: sources,
		renderers: map[string]renderer{
			FormatCSV:  export.NewCSVExporter(),
			FormatPDF:  export.NewPDFExporter(),
			FormatXLSX: export.NewXLSXExporter(),
		},
		logger: logger,
		now:    time.Now,
	}
}

// Resources lists the exportable collection names.
func (s *ExportService) Resources() []string {
	return []string{"students", "teachers", "classes", "enrollments", "attendance", "grades", "events", "activities"}
}

// Export renders resource in format. An empty format means CSV.
func (s *ExportService) Export(ctx context.Context, resource, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}

	dataset, err := s.dataset(ctx, resource)
	if err != nil {
		return nil, err
	}
	body, err := r.Render(dataset)
	if err != nil {
		return nil, internalError(err, "failed to render export")
	}
	s.logger.Debug("export rendered", zap.String("resource", resource), zap.String("format", format), zap.Int("rows", len(dataset.Rows)))
	return &ExportFile{
		Filename:    fmt.Sprintf("%s_%s.%s", resource, s.now().UTC().Format("20060102"), r.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}

func (s *ExportService) dataset(ctx context.Context, resource string) (export.Dataset, error) {
	switch resource {
	case "students":
		students, err := s.sources.Students.List(ctx)
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load students")
		}
		return studentDataset(students), nil
	case "teachers":
		teachers, err := s.sources.Teachers.List(ctx)
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load teachers")
		}
		return teacherDataset(teachers), nil
	case "classes":
		classes, err := s.sources.Classes.List(ctx)
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load classes")
		}
		return classDataset(classes), nil
	case "enrollments":
		enrollments, err := s.sources.Enrollments.List(ctx, models.EnrollmentFilter{})
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load enrollments")
		}
		return enrollmentDataset(enrollments), nil
	case "attendance":
		records, err := s.sources.Attendance.List(ctx, models.AttendanceFilter{})
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load attendance")
		}
		return attendanceDataset(records), nil
	case "grades":
		grades, err := s.sources.Grades.List(ctx, models.GradeFilter{})
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load grades")
		}
		return gradeDataset(grades), nil
	case "events":
		events, err := s.sources.Events.List(ctx)
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load events")
		}
		return eventDataset(events), nil
	case "activities":
		activities, err := s.sources.Activities.List(ctx, models.ActivityFilter{})
		if err != nil {
			return export.Dataset{}, internalError(err, "failed to load activities")
		}
		return activityDataset(activities), nil
	default:
		return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown export resource %q", resource))
	}
}

func studentDataset(students []models.Student) export.Dataset {
	data := export.Dataset{
		Title:   "Students",
		Headers: []string{"id", "studentId", "name", "gender", "dateOfBirth", "email", "phone", "address", "guardianName", "guardianPhone", "guardianEmail", "gradeLevel", "section", "enrollmentDate"},
	}
	for _, st := range students {
		data.Rows = append(data.Rows, map[string]string{
			"id":             formatID(st.ID),
			"studentId":      st.StudentID,
			"name":           st.Name,
			"gender":         st.Gender,
			"dateOfBirth":    st.DateOfBirth.String(),
			"email":          st.Email,
			"phone":          st.Phone,
			"address":        st.Address,
			"guardianName":   st.GuardianName,
			"guardianPhone":  st.GuardianPhone,
			"guardianEmail":  st.GuardianEmail,
			"gradeLevel":     st.GradeLevel,
			"section":        st.Section,
			"enrollmentDate": st.EnrollmentDate.String(),
		})
	}
	return data
}

func teacherDataset(teachers []models.Teacher) export.Dataset {
	data := export.Dataset{
		Title:   "Teachers",
		Headers: []string{"id", "teacherId", "name", "email", "phone", "qualification", "joinDate", "subjects", "userId"},
	}
	for _, t := range teachers {
		data.Rows = append(data.Rows, map[string]string{
			"id":            formatID(t.ID),
			"teacherId":     t.TeacherID,
			"name":          t.Name,
			"email":         t.Email,
			"phone":         t.Phone,
			"qualification": t.Qualification,
			"joinDate":      t.JoinDate.String(),
			"subjects":      strings.Join(t.Subjects, "; "),
			"userId":        formatOptionalID(t.UserID),
		})
	}
	return data
}

func classDataset(classes []models.Class) export.Dataset {
	data := export.Dataset{
		Title:   "Classes",
		Headers: []string{"id", "className", "classCode", "gradeLevel", "section", "teacherId", "schedule", "roomNumber", "academicYear", "description"},
	}
	for _, c := range classes {
		data.Rows = append(data.Rows, map[string]string{
			"id":           formatID(c.ID),
			"className":    c.ClassName,
			"classCode":    c.ClassCode,
			"gradeLevel":   c.GradeLevel,
			"section":      c.Section,
			"teacherId":    formatOptionalID(c.TeacherID),
			"schedule":     c.Schedule,
			"roomNumber":   c.RoomNumber,
			"academicYear": c.AcademicYear,
			"description":  c.Description,
		})
	}
	return data
}

func enrollmentDataset(enrollments []models.ClassEnrollment) export.Dataset {
	data := export.Dataset{
		Title:   "Enrollments",
		Headers: []string{"id", "classId", "studentId", "enrollmentDate"},
	}
	for _, e := range enrollments {
		data.Rows = append(data.Rows, map[string]string{
			"id":             formatID(e.ID),
			"classId":        formatID(e.ClassID),
			"studentId":      formatID(e.StudentID),
			"enrollmentDate": e.EnrollmentDate.String(),
		})
	}
	return data
}

func attendanceDataset(records []models.Attendance) export.Dataset {
	data := export.Dataset{
		Title:   "Attendance",
		Headers: []string{"id", "classId", "studentId", "date", "status", "notes"},
	}
	for _, a := range records {
		data.Rows = append(data.Rows, map[string]string{
			"id":        formatID(a.ID),
			"classId":   formatID(a.ClassID),
			"studentId": formatID(a.StudentID),
			"date":      a.Date.String(),
			"status":    string(a.Status),
			"notes":     a.Notes,
		})
	}
	return data
}

func gradeDataset(grades []models.Grade) export.Dataset {
	data := export.Dataset{
		Title:   "Grades",
		Headers: []string{"id", "classId", "studentId", "assignmentName", "assignmentType", "score", "maxScore", "gradedDate", "comments"},
	}
	for _, g := range grades {
		data.Rows = append(data.Rows, map[string]string{
			"id":             formatID(g.ID),
			"classId":        formatID(g.ClassID),
			"studentId":      formatID(g.StudentID),
			"assignmentName": g.AssignmentName,
			"assignmentType": g.AssignmentType,
			"score":          strconv.FormatFloat(g.Score, 'f', -1, 64),
			"maxScore":       strconv.FormatFloat(g.MaxScore, 'f', -1, 64),
			"gradedDate":     g.GradedDate.String(),
			"comments":       g.Comments,
		})
	}
	return data
}

func eventDataset(events []models.Event) export.Dataset {
	data := export.Dataset{
		Title:   "Events",
		Headers: []string{"id", "title", "type", "startDate", "endDate", "startTime", "endTime", "allDay", "location", "description"},
	}
	for _, e := range events {
		endDate := ""
		if e.EndDate != nil {
			endDate = e.EndDate.String()
		}
		data.Rows = append(data.Rows, map[string]string{
			"id":          formatID(e.ID),
			"title":       e.Title,
			"type":        e.Type,
			"startDate":   e.StartDate.String(),
			"endDate":     endDate,
			"startTime":   e.StartTime,
			"endTime":     e.EndTime,
			"allDay":      strconv.FormatBool(e.AllDay),
			"location":    e.Location,
			"description": e.Description,
		})
	}
	return data
}

func activityDataset(activities []models.Activity) export.Dataset {
	data := export.Dataset{
		Title:   "Activities",
		Headers: []string{"id", "timestamp", "userId", "action", "details"},
	}
	for _, a := range activities {
		data.Rows = append(data.Rows, map[string]string{
			"id":        formatID(a.ID),
			"timestamp": a.Timestamp.UTC().Format(time.RFC3339),
			"userId":    formatOptionalID(a.UserID),
			"action":    a.Action,
			"details":   a.Details,
		})
	}
	return data
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatOptionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return formatID(*id)
}
