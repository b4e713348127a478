package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func TestEventServiceRejectsEndBeforeStart(t *testing.T) {
	f := newFixture(t)

	end := mustDate(t, "2024-12-19")
	_, err := f.events.Create(context.Background(), CreateEventRequest{
		Title:     "Winter break",
		StartDate: mustDate(t, "2024-12-20"),
		EndDate:   &end,
		AllDay:    true,
		Type:      models.EventHoliday,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "endDate", appErr.Details[0].Field)
}

func TestEventServiceValidatesClockTimes(t *testing.T) {
	f := newFixture(t)

	_, err := f.events.Create(context.Background(), CreateEventRequest{
		Title:     "Staff meeting",
		StartDate: mustDate(t, "2024-11-04"),
		StartTime: "25:00",
		Type:      models.EventMeeting,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "startTime", appErr.Details[0].Field)
	assert.Equal(t, "must be a time in HH:MM format", appErr.Details[0].Message)
}

func TestEventServiceUpdateClearsEndDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	end := mustDate(t, "2025-01-03")
	event, err := f.events.Create(ctx, CreateEventRequest{
		Title:     "Winter break",
		StartDate: mustDate(t, "2024-12-20"),
		EndDate:   &end,
		AllDay:    true,
		Type:      models.EventHoliday,
	})
	require.NoError(t, err)

	cleared := models.Date{}
	updated, err := f.events.Update(ctx, event.ID, UpdateEventRequest{EndDate: &cleared, Location: strPtr("Campus")})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
	assert.Equal(t, "Campus", updated.Location)
	assert.Equal(t, "Winter break", updated.Title)
}

func TestEventServiceUpdateClearsClockTimes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	event, err := f.events.Create(ctx, CreateEventRequest{
		Title:     "Parent-teacher meeting",
		StartDate: mustDate(t, "2024-11-14"),
		StartTime: "16:00",
		EndTime:   "18:00",
		Type:      models.EventMeeting,
	})
	require.NoError(t, err)

	updated, err := f.events.Update(ctx, event.ID, UpdateEventRequest{StartTime: strPtr(""), EndTime: strPtr(""), AllDay: boolPtr(true)})
	require.NoError(t, err)
	assert.Empty(t, updated.StartTime)
	assert.Empty(t, updated.EndTime)
	assert.True(t, updated.AllDay)

	_, err = f.events.Update(ctx, event.ID, UpdateEventRequest{EndTime: strPtr("7pm")})
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "endTime", appErr.Details[0].Field)
	assert.Equal(t, "must be a time in HH:MM format", appErr.Details[0].Message)
}
