package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ventaspos/ledger-api/internal/application/service"
	"github.com/ventaspos/ledger-api/internal/presentation/http/dto/response"
)

// LoyaltyHandler handles customer loyalty HTTP requests
type LoyaltyHandler struct {
	loyaltyService *service.LoyaltyService
}

// NewLoyaltyHandler creates a new loyalty handler
func NewLoyaltyHandler(loyaltyService *service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

// List handles listing all customers with lifetime purchase metrics
func (h *LoyaltyHandler) List(c *gin.Context) {
	metrics, err := h.loyaltyService.CustomerMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer metrics retrieved successfully", metrics)
}

// TopSpenders handles listing the highest-spending customers
func (h *LoyaltyHandler) TopSpenders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	top, err := h.loyaltyService.TopSpenders(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top spenders retrieved successfully", top)
}
