package api

import (
	"net/http"

	resdto "linenhire/internal/handler/dto/response"
	"linenhire/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Admin dashboard
// @Description Booking counts by status, query inbox summary and the five newest queries
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}
