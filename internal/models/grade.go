package models

// Assignment types accepted for grades.
const (
	AssignmentExam     = "exam"
	AssignmentQuiz     = "quiz"
	AssignmentHomework = "homework"
	AssignmentProject  = "project"
)

// Grade records a scored assignment for a student in a class. Score may exceed MaxScore.
type Grade struct {
	ID             int64   `db:"id" json:"id"`
	ClassID        int64   `db:"class_id" json:"classId"`
	StudentID      int64   `db:"student_id" json:"studentId"`
	AssignmentName string  `db:"assignment_name" json:"assignmentName"`
	AssignmentType string  `db:"assignment_type" json:"assignmentType"`
	MaxScore       float64 `db:"max_score" json:"maxScore"`
	Score          float64 `db:"score" json:"score"`
	GradedDate     Date    `db:"graded_date" json:"gradedDate"`
	Comments       string  `db:"comments" json:"comments"`
}

// GradeFilter narrows grade listings; zero values are ignored.
type GradeFilter struct {
	ClassID   int64
	StudentID int64
}

// Matches reports whether the grade satisfies the filter.
func (f GradeFilter) Matches(g Grade) bool {
	if f.ClassID != 0 && g.ClassID != f.ClassID {
		return false
	}
	if f.StudentID != 0 && g.StudentID != f.StudentID {
		return false
	}
	return true
}

// GradeSummary aggregates grades into a percentage and a 4.0 scale GPA.
type GradeSummary struct {
	Count         int     `json:"count"`
	TotalScore    float64 `json:"totalScore"`
	TotalMaxScore float64 `json:"totalMaxScore"`
	Percentage    float64 `json:"percentage"`
	GPA           float64 `json:"gpa"`
	Letter        string  `json:"letter"`
}

type gpaBand struct {
	min    float64
	letter string
	points float64
}

var gpaScale = []gpaBand{
	{93, "A", 4.0},
	{90, "A-", 3.7},
	{87, "B+", 3.3},
	{83, "B", 3.0},
	{80, "B-", 2.7},
	{77, "C+", 2.3},
	{73, "C", 2.0},
	{70, "C-", 1.7},
	{67, "D+", 1.3},
	{65, "D", 1.0},
}

// GPAFromPercentage maps a percentage onto the letter grade and 4.0 scale points.
func GPAFromPercentage(pct float64) (float64, string) {
	for _, band := range gpaScale {
		if pct >= band.min {
			return band.points, band.letter
		}
	}
	return 0, "F"
}

// SummarizeGrades totals scores and derives the percentage and GPA. Percentage is
// total score over total max score; an empty or zero-max set yields zeros and "N/A".
func SummarizeGrades(grades []Grade) GradeSummary {
	summary := GradeSummary{Count: len(grades), Letter: "N/A"}
	for _, g := range grades {
		summary.TotalScore += g.Score
		summary.TotalMaxScore += g.MaxScore
	}
	summary.TotalScore = RoundTo(summary.TotalScore, 2)
	summary.TotalMaxScore = RoundTo(summary.TotalMaxScore, 2)
	if summary.TotalMaxScore <= 0 {
		return summary
	}
	pct := summary.TotalScore / summary.TotalMaxScore * 100
	summary.Percentage = RoundTo(pct, 1)
	summary.GPA, summary.Letter = GPAFromPercentage(pct)
	return summary
}
