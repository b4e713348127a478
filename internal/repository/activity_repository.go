package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

// ActivityRepository persists the append-only activity log.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs the repository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity; the database assigns id and timestamp.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	const query = `INSERT INTO activities (user_id, action, details, timestamp) VALUES ($1, $2, $3, NOW()) RETURNING id, timestamp`
	if err := r.db.QueryRowxContext(ctx, query, activity.UserID, activity.Action, activity.Details).Scan(&activity.ID, &activity.Timestamp); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// List returns activities newest first.
func (r *ActivityRepository) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	query := "SELECT id, user_id, action, details, timestamp FROM activities ORDER BY timestamp DESC, id DESC"
	var args []interface{}
	if filter.Limit > 0 {
		query += " LIMIT $1"
		args = append(args, filter.Limit)
	}
	activities := []models.Activity{}
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
