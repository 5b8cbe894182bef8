package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// DashboardHandler serves the caller's own channel dashboard
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns aggregate counters for the caller's channel
// @Summary Channel stats
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// Videos returns every video of the caller's channel, published or not
// @Summary List channel videos
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Router /dashboard/videos [get]
func (h *DashboardHandler) Videos(c *gin.Context) {
	videos, err := h.dashboardService.Videos(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	message := "Channel videos fetched successfully"
	if len(videos) == 0 {
		message = "No videos found"
	}
	respond(c, http.StatusOK, videos, message)
}
