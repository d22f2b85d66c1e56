package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ventaspos/ledger-api/internal/application/service"
	"github.com/ventaspos/ledger-api/internal/presentation/http/dto/response"
)

// StatsHandler handles dashboard analytics HTTP requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles computing dashboard stats for a filtered ledger subset
func (h *StatsHandler) GetStats(c *gin.Context) {
	var filter service.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters: "+err.Error())
		return
	}

	stats, err := h.statsService.GetStats(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stats computed successfully", stats)
}

// GetMethods handles listing the distinct payment method names
func (h *StatsHandler) GetMethods(c *gin.Context) {
	methods, err := h.statsService.MethodNames(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment methods retrieved successfully", methods)
}
