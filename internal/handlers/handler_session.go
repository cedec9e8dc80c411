package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
	"github.com/SscSPs/money_changer_pos/internal/dto"
	"github.com/SscSPs/money_changer_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler exposes the counter workflow of the caller's session as JSON.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService: ss,
	}
}

// registerSessionRoutes registers routes for the caller's counter session.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	session := rg.Group("/session")
	{
		session.GET("", h.getSession)
		session.PUT("/customer", h.submitCustomer)
		session.POST("/rows", h.addRow)
		session.PATCH("/rows/:index", h.editRow)
		session.DELETE("/rows/:index", h.removeRow)
		session.POST("/exchange", h.submitExchange)
		session.GET("/receipt", h.getReceipt)
		session.POST("/reset", h.reset)
	}
}

// getSession godoc
// @Summary Get the current session
// @Description Returns the step, customer and exchange rows of the caller's session
// @Tags session
// @Produce  json
// @Success 200 {object} dto.SessionResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to load session"
// @Router /session [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	state, err := h.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err, "Failed to load session")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

// submitCustomer godoc
// @Summary Submit customer information
// @Description Validates and stores the customer record and opens the exchange step
// @Tags session
// @Accept  json
// @Produce  json
// @Param   customer body dto.CustomerRequest true "Customer details"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Not allowed while the receipt is shown"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Failed to save customer"
// @Router /session/customer [put]
func (h *sessionHandler) submitCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.sessionService.SubmitCustomer(c.Request.Context(), sessionID, req)
	if err != nil {
		respondWithError(c, err, "Failed to save customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

// addRow godoc
// @Summary Add an exchange row
// @Description Appends a blank exchange row
// @Tags session
// @Produce  json
// @Success 201 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse "Not in the exchange step"
// @Failure 500 {object} dto.ErrorResponse "Failed to add row"
// @Router /session/rows [post]
func (h *sessionHandler) addRow(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	state, err := h.sessionService.AddRow(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err, "Failed to add row")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(state))
}

// editRow godoc
// @Summary Edit one field of an exchange row
// @Description Sets currencyCode, amountReceived or rateOffered; amountIssued is recomputed
// @Tags session
// @Accept  json
// @Produce  json
// @Param   index path int true "Zero-based row index"
// @Param   edit body dto.EditLineItemRequest true "Field and value"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Not in the exchange step"
// @Failure 500 {object} dto.ErrorResponse "Failed to edit row"
// @Router /session/rows/{index} [patch]
func (h *sessionHandler) editRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	index, ok := parseRowIndex(c)
	if !ok {
		return
	}

	var req dto.EditLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditField", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.sessionService.EditField(c.Request.Context(), sessionID, index, domain.LineItemField(req.Field), req.Value)
	if err != nil {
		respondWithError(c, err, "Failed to edit row")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

// removeRow godoc
// @Summary Remove an exchange row
// @Description Removes the row at index; the last remaining row is never removed
// @Tags session
// @Produce  json
// @Param   index path int true "Zero-based row index"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid index"
// @Failure 409 {object} dto.ErrorResponse "Not in the exchange step"
// @Failure 500 {object} dto.ErrorResponse "Failed to remove row"
// @Router /session/rows/{index} [delete]
func (h *sessionHandler) removeRow(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	index, ok := parseRowIndex(c)
	if !ok {
		return
	}

	state, err := h.sessionService.RemoveRow(c.Request.Context(), sessionID, index)
	if err != nil {
		respondWithError(c, err, "Failed to remove row")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

// submitExchange godoc
// @Summary Finalize the exchange
// @Description Validates every row, issues the receipt and moves to the receipt step
// @Tags session
// @Produce  json
// @Success 200 {object} dto.ReceiptResponse
// @Failure 409 {object} dto.ErrorResponse "Not in the exchange step"
// @Failure 422 {object} dto.ErrorResponse "Row validation failed"
// @Failure 500 {object} dto.ErrorResponse "Failed to complete transaction"
// @Router /session/exchange [post]
func (h *sessionHandler) submitExchange(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	state, err := h.sessionService.SubmitExchange(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err, "Failed to complete transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Receipt issued", slog.String("serial", state.Receipt.SerialNumber))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(state.Receipt))
}

// getReceipt godoc
// @Summary Get the receipt
// @Description Returns the issued receipt while the session is showing it
// @Tags session
// @Produce  json
// @Success 200 {object} dto.ReceiptResponse
// @Failure 409 {object} dto.ErrorResponse "No receipt issued yet"
// @Failure 500 {object} dto.ErrorResponse "Failed to load receipt"
// @Router /session/receipt [get]
func (h *sessionHandler) getReceipt(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	receipt, err := h.sessionService.GetReceipt(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err, "Failed to load receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// reset godoc
// @Summary Start a new transaction
// @Description Clears the customer, rows and receipt and returns to the customer step
// @Tags session
// @Produce  json
// @Success 200 {object} dto.SessionResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to reset session"
// @Router /session/reset [post]
func (h *sessionHandler) reset(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	state, err := h.sessionService.Reset(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err, "Failed to reset session")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func parseRowIndex(c *gin.Context) (int, bool) {
	raw := c.Param("index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		respondWithError(c, fmt.Errorf("row index %q is not a non-negative integer: %w", raw, apperrors.ErrValidation), "Invalid row index")
		return 0, false
	}
	return index, true
}
