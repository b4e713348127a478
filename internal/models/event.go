package models

// Event types accepted for calendar entries.
const (
	EventExam     = "exam"
	EventMeeting  = "meeting"
	EventHoliday  = "holiday"
	EventActivity = "activity"
)

// Event represents a standalone school calendar entry.
type Event struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	StartDate   Date   `db:"start_date" json:"startDate"`
	EndDate     *Date  `db:"end_date" json:"endDate"`
	StartTime   string `db:"start_time" json:"startTime"`
	EndTime     string `db:"end_time" json:"endTime"`
	AllDay      bool   `db:"all_day" json:"allDay"`
	Location    string `db:"location" json:"location"`
	Type        string `db:"type" json:"type"`
}
