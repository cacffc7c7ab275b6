package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paintops/damagecast/internal/models"
	"github.com/paintops/damagecast/internal/services"
)

// AnalyticsHandler handles historical analytics endpoints
type AnalyticsHandler struct {
	analyticsSvc *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsSvc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// Summary handles GET /api/v1/analytics/summary
// @Summary Aggregate damage statistics
// @Tags analytics
// @Produce json
// @Param start_date query string false "inclusive lower date bound (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "inclusive upper date bound (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} models.AnalyticsSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	summary, err := h.analyticsSvc.Summary(c.Request.Context(), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Dealers handles GET /api/v1/analytics/dealers
// @Summary Per-dealer damage statistics, worst loss first
// @Tags analytics
// @Produce json
// @Param limit query int false "maximum dealers" default(20)
// @Success 200 {array} models.DealerAnalytics
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analytics/dealers [get]
func (h *AnalyticsHandler) Dealers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid limit",
		})
		return
	}

	dealers, err := h.analyticsSvc.Dealers(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dealers)
}

// Warehouses handles GET /api/v1/analytics/warehouses
// @Summary Per-warehouse damage statistics, worst rate first
// @Tags analytics
// @Produce json
// @Success 200 {array} models.WarehouseAnalytics
// @Failure 500 {object} models.ErrorResponse
// @Router /analytics/warehouses [get]
func (h *AnalyticsHandler) Warehouses(c *gin.Context) {
	warehouses, err := h.analyticsSvc.Warehouses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, warehouses)
}

// Trends handles GET /api/v1/analytics/trends
// @Summary Damage rate trend over a rolling window
// @Tags analytics
// @Produce json
// @Param period query string false "bucket size: daily, weekly or monthly" default(daily)
// @Param days query int false "window length in days" default(30)
// @Success 200 {object} models.TrendAnalysis
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	period := c.DefaultQuery("period", "daily")
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid days",
		})
		return
	}

	trend, err := h.analyticsSvc.Trend(c.Request.Context(), period, days)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, trend)
}

// Problems handles GET /api/v1/analytics/problems
// @Summary Worst dealers, warehouses, and warehouse-vehicle combinations
// @Tags analytics
// @Produce json
// @Success 200 {object} models.TopProblems
// @Failure 500 {object} models.ErrorResponse
// @Router /analytics/problems [get]
func (h *AnalyticsHandler) Problems(c *gin.Context) {
	problems, err := h.analyticsSvc.Problems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, problems)
}
