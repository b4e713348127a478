package models

// Gender values accepted for students.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Student represents a learner registered in the school.
type Student struct {
	ID             int64  `db:"id" json:"id"`
	StudentID      string `db:"student_id" json:"studentId"`
	Name           string `db:"name" json:"name"`
	Gender         string `db:"gender" json:"gender"`
	DateOfBirth    Date   `db:"date_of_birth" json:"dateOfBirth"`
	Email          string `db:"email" json:"email"`
	Phone          string `db:"phone" json:"phone"`
	Address        string `db:"address" json:"address"`
	GuardianName   string `db:"guardian_name" json:"guardianName"`
	GuardianPhone  string `db:"guardian_phone" json:"guardianPhone"`
	GuardianEmail  string `db:"guardian_email" json:"guardianEmail"`
	GradeLevel     string `db:"grade_level" json:"gradeLevel"`
	Section        string `db:"section" json:"section"`
	EnrollmentDate Date   `db:"enrollment_date" json:"enrollmentDate"`
	Avatar         string `db:"avatar" json:"avatar"`
}

// Label is the human readable name used in activity entries.
func (s Student) Label() string {
	return s.Name + " (" + s.StudentID + ")"
}
