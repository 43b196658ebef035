package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/admin-service/internal/render"
	"github.com/cloud-wave-best-zizon/admin-service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load dashboard",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cards": render.DashboardCards(summary),
	})
}
