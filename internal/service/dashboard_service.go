package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

const dashboardStatsKey = "dash:stats"

type counter interface {
	Count(ctx context.Context) (int, error)
}

type attendanceCounter interface {
	StatusCounts(ctx context.Context, filter models.AttendanceFilter) (models.AttendanceCounts, error)
}

// DashboardService composes the dashboard summary from several collections.
type DashboardService struct {
	students   counter
	teachers   counter
	classes    counter
	attendance attendanceCounter
	cache      *CacheService
	logger     *zap.Logger
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Students   counter
	Teachers   counter
	Classes    counter
	Attendance attendanceCounter
	Cache      *CacheService
	Logger     *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		students:   params.Students,
		teachers:   params.Teachers,
		classes:    params.Classes,
		attendance: params.Attendance,
		cache:      params.Cache,
		logger:     logger,
	}
}

// Stats returns record totals and the overall attendance rate, served from cache when enabled.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var cached models.DashboardStats
	if s.cache.Load(ctx, dashboardStatsKey, &cached) {
		return &cached, nil
	}
	generation := s.cache.Generation()

	stats := &models.DashboardStats{}
	var err error
	if stats.TotalStudents, err = s.students.Count(ctx); err != nil {
		return nil, internalError(err, "failed to count students")
	}
	if stats.TotalTeachers, err = s.teachers.Count(ctx); err != nil {
		return nil, internalError(err, "failed to count teachers")
	}
	if stats.TotalClasses, err = s.classes.Count(ctx); err != nil {
		return nil, internalError(err, "failed to count classes")
	}
	counts, err := s.attendance.StatusCounts(ctx, models.AttendanceFilter{})
	if err != nil {
		return nil, internalError(err, "failed to count attendance")
	}
	stats.AttendanceRate = counts.Rate()

	s.cache.Store(ctx, dashboardStatsKey, stats, generation)
	return stats, nil
}
