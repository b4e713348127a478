package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const eventColumns = "id, title, description, start_date, end_date, start_time, end_time, all_day, location, type"

// EventRepository persists calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events ordered by id.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, "SELECT "+eventColumns+" FROM events ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// FindByID fetches an event by id.
func (r *EventRepository) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := r.db.GetContext(ctx, &event, "SELECT "+eventColumns+" FROM events WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	const query = `INSERT INTO events (title, description, start_date, end_date, start_time, end_time, all_day, location, type)
        VALUES (:title, :description, :start_date, :end_date, :start_time, :end_time, :all_day, :location, :type) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, event, "create event")
	if err != nil {
		return err
	}
	event.ID = id
	return nil
}

// Update writes the merged event record.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	const query = `UPDATE events SET title = :title, description = :description, start_date = :start_date, end_date = :end_date, start_time = :start_time,
        end_time = :end_time, all_day = :all_day, location = :location, type = :type WHERE id = :id`
	return updateOne(ctx, r.db, query, event, "update event")
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "events", id)
}
