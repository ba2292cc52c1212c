package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amarhadpad/artistgrade/internal/server/http/dto"
)

// DashboardHandler serves admin dashboard aggregates.
type DashboardHandler struct {
	facade DashboardFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Counts handles GET /api/dashboard/counts.
func (h *DashboardHandler) Counts(c *gin.Context) {
	counts, err := h.facade.DashboardCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{
		TotalProducts: counts.TotalProducts,
		TotalOrders:   counts.TotalOrders,
		TotalUsers:    counts.TotalUsers,
	})
}
