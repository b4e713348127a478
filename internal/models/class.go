package models

// Class represents a taught class section within an academic year.
type Class struct {
	ID           int64  `db:"id" json:"id"`
	ClassName    string `db:"class_name" json:"className"`
	ClassCode    string `db:"class_code" json:"classCode"`
	GradeLevel   string `db:"grade_level" json:"gradeLevel"`
	Section      string `db:"section" json:"section"`
	Description  string `db:"description" json:"description"`
	TeacherID    *int64 `db:"teacher_id" json:"teacherId"`
	Schedule     string `db:"schedule" json:"schedule"`
	RoomNumber   string `db:"room_number" json:"roomNumber"`
	AcademicYear string `db:"academic_year" json:"academicYear"`
}

// Label is the human readable name used in activity entries.
func (c Class) Label() string {
	return c.ClassName + " (" + c.ClassCode + ")"
}
