package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type studentCreator interface {
	Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error)
}

// ImportRowError reports a spreadsheet row that was not imported. Row is 1-based as shown in the sheet.
type ImportRowError struct {
	Row     int                    `json:"row"`
	Message string                 `json:"message"`
	Details []appErrors.FieldError `json:"details,omitempty"`
}

// ImportResult summarises a spreadsheet import.
type ImportResult struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Failures []ImportRowError `json:"failures"`
}

// StudentImportService creates students from the first sheet of an xlsx workbook.
// The header row names the columns using the student JSON field names.
type StudentImportService struct {
	students studentCreator
	logger   *zap.Logger
}

// NewStudentImportService constructs the import service.
func NewStudentImportService(students studentCreator, logger *zap.Logger) *StudentImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentImportService{students: students, logger: logger}
}

// Import reads the workbook and creates one student per data row. Invalid or
// duplicate rows are reported in the result and do not stop the import.
func (s *StudentImportService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, appErrors.Validation("file is not a readable xlsx workbook", appErrors.FieldError{Field: "file", Message: err.Error()})
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, appErrors.Validation("workbook contains no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, internalError(err, "failed to read sheet "+sheet)
	}
	if len(rows) == 0 {
		return nil, appErrors.Validation("sheet has no header row")
	}

	columns := headerIndex(rows[0])
	if _, ok := columns["studentid"]; !ok {
		return nil, appErrors.Validation("header row must name a studentId column", appErrors.FieldError{Field: "studentId", Message: "column is missing"})
	}

	result := &ImportResult{Failures: []ImportRowError{}}
	for i, row := range rows[1:] {
		sheetRow := i + 2
		if blankRow(row) {
			result.Skipped++
			continue
		}
		req, err := studentFromRow(row, columns)
		if err == nil {
			_, err = s.students.Create(ctx, req)
		}
		if err != nil {
			failure := ImportRowError{Row: sheetRow, Message: err.Error()}
			var appErr *appErrors.Error
			if errors.As(err, &appErr) {
				if appErr.Status >= 500 {
					return nil, err
				}
				failure.Message = appErr.Message
				failure.Details = appErr.Details
			}
			result.Failures = append(result.Failures, failure)
			continue
		}
		result.Imported++
	}

	s.logger.Info("student import finished",
		zap.Int("imported", result.Imported),
		zap.Int("failed", len(result.Failures)),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// headerIndex maps normalised header names to column positions.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := normaliseHeader(name)
		if key == "" {
			continue
		}
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	return index
}

func normaliseHeader(name string) string {
	replacer := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(replacer.Replace(strings.TrimSpace(name)))
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func studentFromRow(row []string, columns map[string]int) (CreateStudentRequest, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	req := CreateStudentRequest{
		StudentID:     cell("studentid"),
		Name:          cell("name"),
		Gender:        strings.ToLower(cell("gender")),
		Email:         cell("email"),
		Phone:         cell("phone"),
		Address:       cell("address"),
		GuardianName:  cell("guardianname"),
		GuardianPhone: cell("guardianphone"),
		GuardianEmail: cell("guardianemail"),
		GradeLevel:    cell("gradelevel"),
		Section:       cell("section"),
		Avatar:        cell("avatar"),
	}

	var details []appErrors.FieldError
	for _, field := range []struct {
		column string
		name   string
		dst    *models.Date
	}{
		{"dateofbirth", "dateOfBirth", &req.DateOfBirth},
		{"enrollmentdate", "enrollmentDate", &req.EnrollmentDate},
	} {
		raw := cell(field.column)
		if raw == "" {
			continue
		}
		parsed, err := models.ParseDate(raw)
		if err != nil {
			details = append(details, appErrors.FieldError{Field: field.name, Message: fmt.Sprintf("cannot parse %q as a date", raw)})
			continue
		}
		*field.dst = parsed
	}
	if len(details) > 0 {
		return req, appErrors.Validation("invalid student row", details...)
	}
	return req, nil
}
