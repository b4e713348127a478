package memory

import (
	"context"

	"github.com/noah-isme/school-records-api/internal/models"
)

// ActivityRepository stores the append-only activity log.
type ActivityRepository struct {
	s *Store
}

// Activities returns the activity collection of the store.
func (s *Store) Activities() *ActivityRepository {
	return &ActivityRepository{s: s}
}

// Create appends the activity, stamping its id and timestamp.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	activity.ID = r.s.activities.nextID()
	activity.Timestamp = r.s.now().UTC()
	row := *activity
	row.UserID = cloneID(activity.UserID)
	r.s.activities.insert(activity.ID, row)
	return nil
}

// List returns activities newest first, bounded by filter.Limit when positive.
func (r *ActivityRepository) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	r.s.mu.RLock()
	rows := r.s.activities.scan(nil)
	r.s.mu.RUnlock()

	for i := range rows {
		rows[i].UserID = cloneID(rows[i].UserID)
	}
	sortNewestFirst(rows)
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}
