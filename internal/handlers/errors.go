package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError writes the JSON error for a failed service call.
// Validation and conflict messages are passed through; anything unexpected
// is logged and replaced by fallback.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, notFound, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFound)
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindError writes the 400 for a request that failed gin binding.
func bindError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Warn("Failed to bind request for "+op, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
