package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
)

type fakeDashboardSrv struct {
	stats *models.DashboardStats
	err   error
}

func (f *fakeDashboardSrv) Stats(context.Context) (*models.DashboardStats, error) {
	return f.stats, f.err
}

type fakeActivityFeed struct {
	lastLimit int
	items     []models.Activity
}

func (f *fakeActivityFeed) List(_ context.Context, limit int) ([]models.Activity, error) {
	f.lastLimit = limit
	return f.items, nil
}

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error map[string]interface{} `json:"error"`
}

func TestDashboardHandlerStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&fakeDashboardSrv{stats: &models.DashboardStats{TotalStudents: 3, AttendanceRate: 66.7}}, &fakeActivityFeed{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)

	h.Stats(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.JSONEq(t, `{"totalStudents":3,"totalTeachers":0,"totalClasses":0,"attendanceRate":66.7}`, string(envelope.Data))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestDashboardHandlerStatsHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&fakeDashboardSrv{err: errors.New("connection refused")}, &fakeActivityFeed{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)

	h.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Len(t, c.Errors, 1)
}

func TestDashboardHandlerActivitiesLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	feed := &fakeActivityFeed{items: []models.Activity{{ID: 2, Action: "created student"}}}
	h := NewDashboardHandler(&fakeDashboardSrv{}, feed)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/activities?limit=5", nil)
	h.Activities(c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, feed.lastLimit)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/activities?limit=many", nil)
	h.Activities(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
