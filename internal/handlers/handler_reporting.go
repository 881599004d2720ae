package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/SscSPs/tallypro_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const summaryCSVFilename = "report-summary.csv"

// reportingHandler handles HTTP requests for the dashboard and reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the dashboard and report routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getReportSummary)
		reportingGroup.GET("/summary.csv", h.exportReportSummary)
		reportingGroup.GET("/revenue-by-party", h.getRevenueByParty)
		reportingGroup.GET("/top-products", h.getTopProducts)
		reportingGroup.GET("/forecast", h.getForecast)
	}
}

// getDashboard godoc
// @Summary Dashboard
// @Description KPI cards, monthly revenue/expenses, expense distribution and recent transactions
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Dashboard not found", "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(*dashboard))
}

// getReportSummary godoc
// @Summary Report summary
// @Description Gross sales, net earnings, total expenses and inventory value
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ReportSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build report summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getReportSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.GetReportSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Report not found", "Failed to build report summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportSummaryResponse(rows))
}

// exportReportSummary godoc
// @Summary Export report summary
// @Description Downloads the report summary as a Metric,Value CSV file
// @Tags reports
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export report"
// @Router /reports/summary.csv [get]
func (h *reportingHandler) exportReportSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	csv, err := h.reportingService.ExportReportSummaryCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Report not found", "Failed to export report")
		return
	}

	logger.Info("Report summary exported", slog.Int("bytes", len(csv)))
	c.Header("Content-Disposition", `attachment; filename="`+summaryCSVFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}

// getRevenueByParty godoc
// @Summary Revenue by party
// @Description Total CREDIT amount received from each party
// @Tags reports
// @Produce json
// @Success 200 {array} domain.PartyRevenue
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/revenue-by-party [get]
func (h *reportingHandler) getRevenueByParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	revenue, err := h.reportingService.GetRevenueByParty(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Report not found", "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, revenue)
}

// getTopProducts godoc
// @Summary Top products
// @Description Products ranked by quantity times sale price
// @Tags reports
// @Produce json
// @Param limit query int false "Number of products (1-50)"
// @Success 200 {array} dto.TopProductResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/top-products [get]
func (h *reportingHandler) getTopProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "GetTopProducts", err)
		return
	}

	top, err := h.reportingService.GetTopProducts(c.Request.Context(), params.Limit)
	if err != nil {
		respondServiceError(c, logger, err, "Report not found", "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTopProductsResponse(top))
}

// getForecast godoc
// @Summary Revenue forecast
// @Description Projected revenue for the coming periods
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ForecastResponse
// @Failure 500 {object} map[string]string "Failed to build forecast"
// @Router /reports/forecast [get]
func (h *reportingHandler) getForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.reportingService.GetForecast(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Forecast not found", "Failed to build forecast")
		return
	}
	c.JSON(http.StatusOK, dto.ForecastResponse{Points: points})
}
