package models

// ClassEnrollment links a student to a class.
type ClassEnrollment struct {
	ID             int64 `db:"id" json:"id"`
	ClassID        int64 `db:"class_id" json:"classId"`
	StudentID      int64 `db:"student_id" json:"studentId"`
	EnrollmentDate Date  `db:"enrollment_date" json:"enrollmentDate"`
}

// EnrollmentFilter narrows enrollment listings; zero values are ignored.
type EnrollmentFilter struct {
	ClassID   int64
	StudentID int64
}

// Matches reports whether the enrollment satisfies the filter.
func (f EnrollmentFilter) Matches(e ClassEnrollment) bool {
	if f.ClassID != 0 && e.ClassID != f.ClassID {
		return false
	}
	if f.StudentID != 0 && e.StudentID != f.StudentID {
		return false
	}
	return true
}
