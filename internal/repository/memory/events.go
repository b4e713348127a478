package memory

import (
	"context"
	"database/sql"

	"github.com/noah-isme/school-records-api/internal/models"
)

// EventRepository stores calendar events.
type EventRepository struct {
	s *Store
}

// Events returns the event collection of the store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{s: s}
}

func cloneEvent(e models.Event) models.Event {
	if e.EndDate != nil {
		end := *e.EndDate
		e.EndDate = &end
	}
	return e
}

// List returns events in insertion order.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.events.scan(nil)
	for i := range rows {
		rows[i] = cloneEvent(rows[i])
	}
	return rows, nil
}

// FindByID fetches an event by id.
func (r *EventRepository) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	event, ok := r.s.events.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	event = cloneEvent(event)
	return &event, nil
}

// Create inserts the event and assigns its id.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	event.ID = r.s.events.nextID()
	r.s.events.insert(event.ID, cloneEvent(*event))
	return nil
}

// Update replaces the stored event with the merged record.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.events.replace(event.ID, cloneEvent(*event)) {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the event.
func (r *EventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.events.remove(id), nil
}
