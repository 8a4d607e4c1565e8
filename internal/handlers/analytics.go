package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumen-app/lumen/backend/internal/models"
	"github.com/lumen-app/lumen/backend/internal/service"
)

// AnalyticsHandler serves the /analytics endpoints
type AnalyticsHandler struct {
	service service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler
func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// Aggregate handles POST /api/v1/analytics/aggregate
func (h *AnalyticsHandler) Aggregate(c *gin.Context) {
	var req models.AggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	data, err := h.service.Aggregate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// CompletionRates handles POST /api/v1/analytics/completion-rates
func (h *AnalyticsHandler) CompletionRates(c *gin.Context) {
	var req models.CompletionRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	data, err := h.service.CompletionRates(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Trend handles POST /api/v1/analytics/trend
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	var req models.TrendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	trend, err := h.service.Trend(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// Correlation handles POST /api/v1/analytics/correlation
func (h *AnalyticsHandler) Correlation(c *gin.Context) {
	var req models.CorrelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.service.Correlate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MovingAverage handles POST /api/v1/analytics/moving-average
func (h *AnalyticsHandler) MovingAverage(c *gin.Context) {
	var req models.MovingAverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	points, err := h.service.MovingAverage(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// Summary handles POST /api/v1/analytics/summary
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	var req models.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
