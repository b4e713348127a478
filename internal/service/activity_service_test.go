package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/repository/memory"
)

type failingActivityRepo struct{}

func (failingActivityRepo) Create(context.Context, *models.Activity) error {
	return errors.New("disk full")
}

func (failingActivityRepo) List(context.Context, models.ActivityFilter) ([]models.Activity, error) {
	return nil, errors.New("disk full")
}

func TestActivityFailureDoesNotFailMutation(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)
	store := memory.New()
	activities := NewActivityService(failingActivityRepo{}, nil, nil, logger)
	students := NewStudentService(store.Students(), activities, nil, logger)

	student, err := students.Create(context.Background(), studentRequest(t, "STU001", "Jane Doe"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.ID)

	entries := logs.FilterMessage("failed to record activity").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "created student", entries[0].ContextMap()["action"])
}

func TestActivityListNewestFirstWithLimit(t *testing.T) {
	base := time.Date(2024, 10, 7, 8, 0, 0, 0, time.UTC)
	ticks := []time.Time{base.Add(2 * time.Minute), base, base.Add(time.Minute)}
	i := 0
	store := memory.New(memory.WithClock(func() time.Time {
		now := ticks[i%len(ticks)]
		i++
		return now
	}))
	service := NewActivityService(store.Activities(), nil, nil, nil)
	ctx := context.Background()

	service.Record(ctx, "event", actionCreated, "first")
	service.Record(ctx, "event", actionCreated, "second")
	service.Record(ctx, "event", actionCreated, "third")

	all, err := service.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for j := 1; j < len(all); j++ {
		assert.False(t, all[j].Timestamp.After(all[j-1].Timestamp))
	}
	assert.Equal(t, "first", all[0].Details)

	limited, err := service.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestActivityRecordInvalidatesDashboardCache(t *testing.T) {
	cache := newFakeCache()
	cache.values[dashboardStatsKey] = []byte(`{"totalStudents":9}`)
	service := NewActivityService(memory.New().Activities(), NewCacheService(cache, nil, time.Minute, nil, true), nil, nil)

	service.Record(context.Background(), "class", actionDeleted, "Algebra (MATH-10A)")

	assert.Equal(t, []string{dashboardCachePattern}, cache.invalidated)
	assert.Empty(t, cache.values)
}
