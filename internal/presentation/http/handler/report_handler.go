package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ventaspos/ledger-api/internal/application/service"
	"github.com/ventaspos/ledger-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSalesReport handles building a sales report for a filtered period
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	var filter service.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters: "+err.Error())
		return
	}

	report, err := h.reportService.BuildSalesReport(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated successfully", report)
}

// PrintSalesReport handles sending a sales report to the thermal printer
func (h *ReportHandler) PrintSalesReport(c *gin.Context) {
	var filter service.SaleFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	report, err := h.reportService.PrintSalesReport(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report printed successfully", report)
}
