package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/SscSPs/tallypro_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type daybookHandler struct {
	daybookService portssvc.DaybookSvc
}

func newDaybookHandler(ds portssvc.DaybookSvc) *daybookHandler {
	return &daybookHandler{daybookService: ds}
}

func registerDaybookRoutes(rg *gin.RouterGroup, daybookService portssvc.DaybookSvc) {
	h := newDaybookHandler(daybookService)
	rg.GET("/daybook", h.getDaybook)
}

// getDaybook godoc
// @Summary Daybook
// @Description Transactions in date order with a running balance, filtered by category/party and date prefix
// @Tags daybook
// @Produce  json
// @Param   search query string false "Category or party name fragment"
// @Param   date query string false "Date prefix, e.g. 2025 or 2025-01"
// @Success 200 {object} dto.DaybookResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to build daybook"
// @Router /daybook [get]
func (h *daybookHandler) getDaybook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DaybookParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "GetDaybook", err)
		return
	}

	rows, err := h.daybookService.GetDaybook(c.Request.Context(), params.ToLedgerFilter())
	if err != nil {
		respondServiceError(c, logger, err, "Daybook not found", "Failed to build daybook")
		return
	}

	logger.Debug("Daybook served", slog.Int("rows", len(rows)))
	c.JSON(http.StatusOK, dto.ToDaybookResponse(rows))
}
