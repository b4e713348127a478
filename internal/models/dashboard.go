package models

import "math"

// DashboardStats is the aggregate summary shown on the dashboard.
type DashboardStats struct {
	TotalStudents  int     `json:"totalStudents"`
	TotalTeachers  int     `json:"totalTeachers"`
	TotalClasses   int     `json:"totalClasses"`
	AttendanceRate float64 `json:"attendanceRate"`
}

// RoundTo rounds v half away from zero to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
