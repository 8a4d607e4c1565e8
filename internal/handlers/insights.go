package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumen-app/lumen/backend/internal/models"
	"github.com/lumen-app/lumen/backend/internal/service"
)

// InsightsHandler serves the /insights endpoints
type InsightsHandler struct {
	service service.InsightService
}

// NewInsightsHandler creates an InsightsHandler
func NewInsightsHandler(svc service.InsightService) *InsightsHandler {
	return &InsightsHandler{service: svc}
}

// Streaks handles POST /api/v1/insights/streaks
func (h *InsightsHandler) Streaks(c *gin.Context) {
	var req models.StreaksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.service.Streaks(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Predictive handles POST /api/v1/insights/predictive
func (h *InsightsHandler) Predictive(c *gin.Context) {
	var req models.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	insights, err := h.service.Predictive(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// Dashboard handles POST /api/v1/insights/dashboard
func (h *InsightsHandler) Dashboard(c *gin.Context) {
	var req models.DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	resp, err := h.service.Dashboard(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
