package service

import (
	"context"
	"fmt"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type classFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Class, error)
}

type studentFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Student, error)
}

// participants resolves the class and student that enrollment, attendance and grade rows link.
type participants struct {
	classes  classFinder
	students studentFinder
}

// require verifies both references and returns a label such as
// "Jane Doe (STU001) in Algebra (MATH-10A)". Missing references are reported together.
func (p participants) require(ctx context.Context, classID, studentID int64) (string, error) {
	var details []appErrors.FieldError
	class, err := p.classes.FindByID(ctx, classID)
	switch {
	case isNotFound(err):
		details = append(details, appErrors.FieldError{Field: "classId", Message: fmt.Sprintf("no class with id %d", classID)})
	case err != nil:
		return "", internalError(err, "failed to verify classId")
	}
	student, err := p.students.FindByID(ctx, studentID)
	switch {
	case isNotFound(err):
		details = append(details, appErrors.FieldError{Field: "studentId", Message: fmt.Sprintf("no student with id %d", studentID)})
	case err != nil:
		return "", internalError(err, "failed to verify studentId")
	}
	if len(details) > 0 {
		return "", appErrors.Validation("referenced record does not exist", details...)
	}
	return student.Label() + " in " + class.Label(), nil
}

// describe builds the same label for logging only, falling back to raw ids.
func (p participants) describe(ctx context.Context, classID, studentID int64) string {
	classLabel := fmt.Sprintf("class #%d", classID)
	if class, err := p.classes.FindByID(ctx, classID); err == nil {
		classLabel = class.Label()
	}
	studentLabel := fmt.Sprintf("student #%d", studentID)
	if student, err := p.students.FindByID(ctx, studentID); err == nil {
		studentLabel = student.Label()
	}
	return studentLabel + " in " + classLabel
}
