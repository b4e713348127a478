package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceRate(t *testing.T) {
	var empty AttendanceCounts
	assert.Equal(t, 0.0, empty.Rate())

	counts := AttendanceCounts{Present: 2, Late: 1, Absent: 1}
	assert.Equal(t, 4, counts.Total())
	assert.Equal(t, 75.0, counts.Rate())

	third := AttendanceCounts{Present: 1, Absent: 1, Excused: 1}
	assert.Equal(t, 33.3, third.Rate())

	twoThirds := AttendanceCounts{Present: 1, Late: 1, Excused: 1}
	assert.Equal(t, 66.7, twoThirds.Rate())
}

func TestAttendanceCountsAdd(t *testing.T) {
	var counts AttendanceCounts
	for _, s := range []AttendanceStatus{AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused, "bogus"} {
		counts.Add(s)
	}
	summary := counts.Summary()
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 50.0, summary.Rate)
}

func TestAttendanceFilterComparesCalendarDay(t *testing.T) {
	day, _ := ParseDate("2024-05-01T07:00:00Z")
	later, _ := ParseDate("2024-05-01T18:30:00Z")
	other, _ := ParseDate("2024-05-02")

	filter := AttendanceFilter{Date: &later}
	assert.True(t, filter.Matches(Attendance{Date: day}))
	assert.False(t, filter.Matches(Attendance{Date: other}))
	assert.False(t, AttendanceFilter{ClassID: 2}.Matches(Attendance{ClassID: 1}))
}

func TestGPAFromPercentage(t *testing.T) {
	cases := []struct {
		pct    float64
		points float64
		letter string
	}{
		{100, 4.0, "A"},
		{93, 4.0, "A"},
		{92.9, 3.7, "A-"},
		{85, 3.0, "B"},
		{71, 1.7, "C-"},
		{65, 1.0, "D"},
		{64.9, 0, "F"},
	}
	for _, tc := range cases {
		points, letter := GPAFromPercentage(tc.pct)
		assert.Equal(t, tc.points, points, "pct %v", tc.pct)
		assert.Equal(t, tc.letter, letter, "pct %v", tc.pct)
	}
}

func TestSummarizeGrades(t *testing.T) {
	summary := SummarizeGrades([]Grade{
		{Score: 45, MaxScore: 50},
		{Score: 18, MaxScore: 20},
		{Score: 12, MaxScore: 10},
	})
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 75.0, summary.TotalScore)
	assert.Equal(t, 80.0, summary.TotalMaxScore)
	assert.Equal(t, 93.8, summary.Percentage)
	assert.Equal(t, 4.0, summary.GPA)
	assert.Equal(t, "A", summary.Letter)

	empty := SummarizeGrades(nil)
	assert.Equal(t, "N/A", empty.Letter)
	assert.Equal(t, 0.0, empty.Percentage)
}
