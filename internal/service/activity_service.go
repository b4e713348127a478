package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

// Activity verbs written after each successful mutation.
const (
	actionCreated = "created"
	actionUpdated = "updated"
	actionDeleted = "deleted"
)

type activityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
}

// activityRecorder is what mutating services depend on to leave an audit entry.
type activityRecorder interface {
	Record(ctx context.Context, entity, action, details string)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, string, string) {}

func defaultRecorder(r activityRecorder) activityRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// ActivityService appends and lists audit entries.
type ActivityService struct {
	repo    activityRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewActivityService constructs the activity service. cache and metrics may be nil.
func NewActivityService(repo activityRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, cache: cache, metrics: metrics, logger: logger}
}

// Record appends "<action> <entity>" for the acting user. The write is best-effort:
// a failure is logged and counted but never returned. Derived dashboard figures
// are invalidated on every call since each one follows a mutation.
func (s *ActivityService) Record(ctx context.Context, entity, action, details string) {
	s.metrics.RecordMutation(entity, action)
	s.cache.Invalidate(ctx, dashboardCachePattern)

	activity := &models.Activity{
		UserID:  ActorFromContext(ctx),
		Action:  action + " " + entity,
		Details: details,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		s.metrics.RecordActivityFailure()
		s.logger.Warn("failed to record activity",
			zap.String("action", activity.Action),
			zap.String("details", details),
			zap.Error(err),
		)
	}
}

// List returns activities newest first, at most limit entries when limit > 0.
func (s *ActivityService) List(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit < 0 {
		limit = 0
	}
	activities, err := s.repo.List(ctx, models.ActivityFilter{Limit: limit})
	if err != nil {
		return nil, internalError(err, "failed to list activities")
	}
	return activities, nil
}
