package models

// AttendanceStatus represents the recorded presence of a student.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	default:
		return false
	}
}

// Attended reports whether the status counts towards the attendance rate.
func (s AttendanceStatus) Attended() bool {
	return s == AttendanceStatusPresent || s == AttendanceStatusLate
}

// Attendance is one recorded attendance event for a student in a class on a day.
type Attendance struct {
	ID        int64            `db:"id" json:"id"`
	ClassID   int64            `db:"class_id" json:"classId"`
	StudentID int64            `db:"student_id" json:"studentId"`
	Date      Date             `db:"date" json:"date"`
	Status    AttendanceStatus `db:"status" json:"status"`
	Notes     string           `db:"notes" json:"notes"`
}

// AttendanceFilter narrows attendance listings; zero values are ignored.
type AttendanceFilter struct {
	ClassID   int64
	StudentID int64
	Date      *Date
}

// Matches reports whether the record satisfies the filter. Dates compare by calendar day.
func (f AttendanceFilter) Matches(a Attendance) bool {
	if f.ClassID != 0 && a.ClassID != f.ClassID {
		return false
	}
	if f.StudentID != 0 && a.StudentID != f.StudentID {
		return false
	}
	if f.Date != nil && !a.Date.SameDay(*f.Date) {
		return false
	}
	return true
}

// AttendanceCounts tallies records per status.
type AttendanceCounts struct {
	Present int `db:"present" json:"present"`
	Absent  int `db:"absent" json:"absent"`
	Late    int `db:"late" json:"late"`
	Excused int `db:"excused" json:"excused"`
}

// Add increments the tally for status.
func (c *AttendanceCounts) Add(status AttendanceStatus) {
	switch status {
	case AttendanceStatusPresent:
		c.Present++
	case AttendanceStatusAbsent:
		c.Absent++
	case AttendanceStatusLate:
		c.Late++
	case AttendanceStatusExcused:
		c.Excused++
	}
}

// Total is the number of counted records.
func (c AttendanceCounts) Total() int {
	return c.Present + c.Absent + c.Late + c.Excused
}

// Rate is the share of present or late records as a percentage rounded to one
// decimal place; zero when nothing was recorded.
func (c AttendanceCounts) Rate() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return RoundTo(float64(c.Present+c.Late)/float64(total)*100, 1)
}

// AttendanceSummary is the derived attendance view for a filter.
type AttendanceSummary struct {
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Late    int     `json:"late"`
	Excused int     `json:"excused"`
	Total   int     `json:"total"`
	Rate    float64 `json:"rate"`
}

// Summary expands the tally into its reported form.
func (c AttendanceCounts) Summary() AttendanceSummary {
	return AttendanceSummary{
		Present: c.Present,
		Absent:  c.Absent,
		Late:    c.Late,
		Excused: c.Excused,
		Total:   c.Total(),
		Rate:    c.Rate(),
	}
}
