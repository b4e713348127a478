package models

import "github.com/lib/pq"

// Teacher represents a member of the teaching staff, optionally linked to a user account.
type Teacher struct {
	ID            int64          `db:"id" json:"id"`
	TeacherID     string         `db:"teacher_id" json:"teacherId"`
	Name          string         `db:"name" json:"name"`
	Email         string         `db:"email" json:"email"`
	Phone         string         `db:"phone" json:"phone"`
	Qualification string         `db:"qualification" json:"qualification"`
	JoinDate      Date           `db:"join_date" json:"joinDate"`
	Subjects      pq.StringArray `db:"subjects" json:"subjects"`
	Avatar        string         `db:"avatar" json:"avatar"`
	UserID        *int64         `db:"user_id" json:"userId"`
}

// Label is the human readable name used in activity entries.
func (t Teacher) Label() string {
	return t.Name + " (" + t.TeacherID + ")"
}
