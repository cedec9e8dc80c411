package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/dto"
	"github.com/SscSPs/money_changer_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error to a status code and an ErrorResponse body.
// failureMessage is returned for unexpected errors so internals never leak.
func respondWithError(c *gin.Context, err error, failureMessage string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if fe, ok := apperrors.AsFieldError(err); ok {
		logger.Warn("Validation failed", slog.String("kind", fe.KindName()), slog.String("field", fe.Field), slog.Int("row", fe.Row))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: fe.Message,
			Kind:  fe.KindName(),
			Field: fe.Field,
			Row:   fe.Row,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidTransition):
		logger.Warn("Operation not allowed in current step", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Kind: "InvalidTransition"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: "Validation"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Kind: "NotFound"})
	default:
		logger.Error(failureMessage, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failureMessage})
	}
}

// requireSessionID reads the session resolved by the session middleware.
func requireSessionID(c *gin.Context) (string, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session ID not found in context")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Session not available"})
		return "", false
	}
	return sessionID, true
}
