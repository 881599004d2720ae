package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/SscSPs/tallypro_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{
		partyService: ps,
	}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/summary", h.getPartyTotals)
		parties.GET("/:partyID", h.getParty)
		parties.PUT("/:partyID", h.updateParty)
		parties.DELETE("/:partyID", h.deleteParty)
	}
}

// createParty godoc
// @Summary Create a party
// @Description Adds a customer or supplier with an opening balance
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "CreateParty", err)
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Party not found", "Failed to create party")
		return
	}

	// A new party has no transactions, so its balance is the opening balance.
	c.JSON(http.StatusCreated, dto.ToPartyResponse(domain.PartyBalance{Party: *party, Balance: party.OpeningBalance}))
}

// listParties godoc
// @Summary List parties
// @Description Lists parties with their derived balances, optionally filtered by name or phone
// @Tags parties
// @Produce  json
// @Param   search query string false "Name or phone fragment"
// @Success 200 {array} dto.PartyResponse
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "ListParties", err)
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), params.Search)
	if err != nil {
		respondServiceError(c, logger, err, "Party not found", "Failed to list parties")
		return
	}

	logger.Debug("Parties listed successfully", slog.Int("count", len(parties)))
	c.JSON(http.StatusOK, dto.ToListPartyResponse(parties))
}

// getPartyTotals godoc
// @Summary Party balance totals
// @Description Sums what the business is owed (to get) and owes (to give)
// @Tags parties
// @Produce  json
// @Success 200 {object} dto.PartyTotalsResponse
// @Failure 500 {object} map[string]string "Failed to compute totals"
// @Router /parties/summary [get]
func (h *partyHandler) getPartyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.partyService.GetPartyTotals(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Party not found", "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyTotalsResponse(*totals))
}

// getParty godoc
// @Summary Get a party
// @Description Retrieves a party and its derived current balance
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to retrieve party"
// @Router /parties/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	partyID := c.Param("partyID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", partyID))

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		respondServiceError(c, logger, err, "Party not found", "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(*party))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates the provided fields of a party
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to update party"
// @Router /parties/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	partyID := c.Param("partyID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", partyID))

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "UpdateParty", err)
		return
	}

	if _, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req); err != nil {
		respondServiceError(c, logger, err, "Party not found", "Failed to update party")
		return
	}

	// Re-read so the response carries the derived balance.
	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		respondServiceError(c, logger, err, "Party not found", "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(*party))
}

// deleteParty godoc
// @Summary Delete a party
// @Description Removes a party. Its transactions are kept and show as walk-in.
// @Tags parties
// @Param   partyID path string true "Party ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to delete party"
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	partyID := c.Param("partyID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", partyID))

	if err := h.partyService.DeleteParty(c.Request.Context(), partyID); err != nil {
		respondServiceError(c, logger, err, "Party not found", "Failed to delete party")
		return
	}
	c.Status(http.StatusNoContent)
}
