package service

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type fakeCache struct {
	values      map[string][]byte
	invalidated []string
	getErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	if c.getErr != nil {
		return c.getErr
	}
	raw, ok := c.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.invalidated = append(c.invalidated, pattern)
	for key := range c.values {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.values, key)
		}
	}
	return nil
}

func TestCacheServiceDisabledNeverHits(t *testing.T) {
	cache := newFakeCache()
	service := NewCacheService(cache, nil, 0, nil, false)

	service.Store(context.Background(), dashboardStatsKey, models.DashboardStats{TotalStudents: 1}, service.Generation())
	var stats models.DashboardStats
	assert.False(t, service.Load(context.Background(), dashboardStatsKey, &stats))
	assert.Empty(t, cache.values)
}

func TestCacheServiceSwallowsBackendErrors(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	service := NewCacheService(cache, NewMetricsService(), time.Minute, nil, true)

	var stats models.DashboardStats
	assert.False(t, service.Load(context.Background(), dashboardStatsKey, &stats))
}

func TestCacheServiceDropsValueComputedBeforeInvalidation(t *testing.T) {
	cache := newFakeCache()
	service := NewCacheService(cache, NewMetricsService(), time.Minute, nil, true)
	ctx := context.Background()

	before := service.Generation()
	service.Invalidate(ctx, dashboardCachePattern)
	service.Store(ctx, dashboardStatsKey, models.DashboardStats{TotalStudents: 1}, before)

	var stats models.DashboardStats
	assert.False(t, service.Load(ctx, dashboardStatsKey, &stats))

	service.Store(ctx, dashboardStatsKey, models.DashboardStats{TotalStudents: 2}, service.Generation())
	assert.True(t, service.Load(ctx, dashboardStatsKey, &stats))
	assert.Equal(t, 2, stats.TotalStudents)
}
