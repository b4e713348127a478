package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

const entityEvent = "event"

type eventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateEventRequest holds payload for calendar entries.
type CreateEventRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	StartDate   models.Date  `json:"startDate" validate:"required" swaggertype:"string" example:"2024-12-20"`
	EndDate     *models.Date `json:"endDate" swaggertype:"string"`
	StartTime   string       `json:"startTime" validate:"clock"`
	EndTime     string       `json:"endTime" validate:"clock"`
	AllDay      bool         `json:"allDay"`
	Location    string       `json:"location"`
	Type        string       `json:"type" validate:"required,oneof=exam meeting holiday activity"`
}

// UpdateEventRequest is a partial update; an empty endDate, startTime or endTime clears it.
type UpdateEventRequest struct {
	Title       *string      `json:"title" validate:"omitempty,min=1"`
	Description *string      `json:"description"`
	StartDate   *models.Date `json:"startDate" validate:"omitempty" swaggertype:"string"`
	EndDate     *models.Date `json:"endDate" swaggertype:"string"`
	StartTime   *string      `json:"startTime" validate:"omitempty,clock"`
	EndTime     *string      `json:"endTime" validate:"omitempty,clock"`
	AllDay      *bool        `json:"allDay"`
	Location    *string      `json:"location"`
	Type        *string      `json:"type" validate:"omitempty,oneof=exam meeting holiday activity"`
}

// Apply merges the supplied fields onto event.
func (r UpdateEventRequest) Apply(event *models.Event) {
	setString(&event.Title, r.Title)
	setString(&event.Description, r.Description)
	setDate(&event.StartDate, r.StartDate)
	setOptionalDate(&event.EndDate, r.EndDate)
	setString(&event.StartTime, r.StartTime)
	setString(&event.EndTime, r.EndTime)
	setBool(&event.AllDay, r.AllDay)
	setString(&event.Location, r.Location)
	setString(&event.Type, r.Type)
}

// EventService manages the school calendar.
type EventService struct {
	repo       eventRepository
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewEventService constructs the event service.
func NewEventService(repo eventRepository, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, activities: defaultRecorder(activities), validator: defaultValidator(validate), logger: logger}
}

// List returns all events.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list events")
	}
	return events, nil
}

// Get returns a single event.
func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityEvent)
	}
	return event, nil
}

// Create adds a calendar entry.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if err := validatePayload(s.validator, req, "invalid event payload"); err != nil {
		return nil, err
	}
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AllDay:      req.AllDay,
		Location:    req.Location,
		Type:        req.Type,
	}
	setOptionalDate(&event.EndDate, req.EndDate)
	if err := checkEventRange(event); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, writeError(err, "failed to create event")
	}
	s.activities.Record(ctx, entityEvent, actionCreated, event.Title)
	return event, nil
}

// Update merges the supplied fields into an existing event.
func (s *EventService) Update(ctx context.Context, id int64, req UpdateEventRequest) (*models.Event, error) {
	if err := validatePayload(s.validator, req, "invalid event payload"); err != nil {
		return nil, err
	}
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityEvent)
	}
	req.Apply(event)
	if err := checkEventRange(event); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, event); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityEvent)
		}
		return nil, writeError(err, "failed to update event")
	}
	s.activities.Record(ctx, entityEvent, actionUpdated, event.Title)
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityEvent)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete event")
	}
	if !removed {
		return notFound(entityEvent)
	}
	s.activities.Record(ctx, entityEvent, actionDeleted, event.Title)
	return nil
}

func checkEventRange(event *models.Event) error {
	if event.EndDate != nil && event.EndDate.Before(event.StartDate.Time) {
		return appErrors.Validation("invalid event payload", appErrors.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	return nil
}
