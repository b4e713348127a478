package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
	"github.com/noah-isme/school-records-api/pkg/response"
)

type dashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type activityFeed interface {
	List(ctx context.Context, limit int) ([]models.Activity, error)
}

// DashboardHandler serves the aggregate views: dashboard statistics and the activity feed.
type DashboardHandler struct {
	dashboard  dashboardService
	activities activityFeed
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(dashboard dashboardService, activities activityFeed) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, activities: activities}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Record totals and the overall attendance rate
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// Activities godoc
// @Summary Activity feed
// @Description Newest first. Without limit the whole log is returned.
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {object} response.Envelope
// @Router /activities [get]
func (h *DashboardHandler) Activities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, appErrors.Validation("invalid query parameter", appErrors.FieldError{Field: "limit", Message: "must be a non-negative integer"}))
			return
		}
		limit = parsed
	}
	activities, err := h.activities.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, activities)
}
