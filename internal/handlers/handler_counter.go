package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
	"github.com/SscSPs/money_changer_pos/internal/dto"
	"github.com/SscSPs/money_changer_pos/internal/middleware"
	"github.com/SscSPs/money_changer_pos/internal/web"
	"github.com/gin-gonic/gin"
)

const (
	actionAdd          = "add"
	actionRecalculate  = "recalc"
	actionSubmit       = "submit"
	actionRemovePrefix = "remove-"
)

// counterHandler serves the server-rendered counter page and its form posts.
// Every successful post redirects back to the page.
type counterHandler struct {
	sessionService  portssvc.SessionSvcFacade
	currencyService portssvc.CurrencyReaderSvc
	exportService   portssvc.ReceiptExportSvc
}

func newCounterHandler(services *portssvc.ServiceContainer) *counterHandler {
	return &counterHandler{
		sessionService:  services.Session,
		currencyService: services.Currency,
		exportService:   services.ReceiptExport,
	}
}

// registerCounterRoutes registers the HTML counter pages.
func registerCounterRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCounterHandler(services)

	rg.GET("/", h.showCounter)
	rg.POST("/customer", h.submitCustomer)
	rg.POST("/exchange", h.submitExchange)
	rg.POST("/reset", h.reset)
	rg.GET("/receipt/export.xlsx", h.exportReceipt)
}

func (h *counterHandler) showCounter(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	notice, err := h.sessionService.TakeNotice(c.Request.Context(), sessionID)
	if err != nil {
		h.renderFailure(c, err)
		return
	}
	h.render(c, http.StatusOK, sessionID, notice, nil)
}

func (h *counterHandler) submitCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	var form dto.CustomerRequest
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind customer form", slog.String("error", err.Error()))
		h.render(c, http.StatusBadRequest, sessionID, errorNotice("Invalid form submission"), &form)
		return
	}

	_, err := h.sessionService.SubmitCustomer(c.Request.Context(), sessionID, form)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, apperrors.ErrValidation):
		h.render(c, http.StatusUnprocessableEntity, sessionID, errorNotice(userMessage(err)), &form)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		h.redirectWithError(c, sessionID, "Start a new transaction before entering another customer")
	default:
		h.renderFailure(c, err)
	}
}

func (h *counterHandler) submitExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	action := c.PostForm("action")

	rows := postedRows(c)
	var err error
	if len(rows) > 0 {
		_, err = h.sessionService.SyncRows(ctx, sessionID, rows)
	}
	if err == nil {
		switch {
		case action == actionAdd:
			_, err = h.sessionService.AddRow(ctx, sessionID)
		case action == actionSubmit:
			_, err = h.sessionService.SubmitExchange(ctx, sessionID)
		case action == actionRecalculate || action == "":
			// rows were recomputed while syncing
		case strings.HasPrefix(action, actionRemovePrefix):
			index, convErr := strconv.Atoi(strings.TrimPrefix(action, actionRemovePrefix))
			if convErr != nil {
				err = fmt.Errorf("invalid remove action %q: %w", action, apperrors.ErrValidation)
				break
			}
			_, err = h.sessionService.RemoveRow(ctx, sessionID, index)
		default:
			err = fmt.Errorf("unknown exchange action %q: %w", action, apperrors.ErrValidation)
		}
	}

	switch {
	case err == nil:
		logger.Debug("Exchange action applied", slog.String("action", action))
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, apperrors.ErrValidation):
		h.render(c, http.StatusUnprocessableEntity, sessionID, errorNotice(userMessage(err)), nil)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		h.redirectWithError(c, sessionID, "This action is not available at the current step")
	default:
		h.renderFailure(c, err)
	}
}

func (h *counterHandler) reset(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	if _, err := h.sessionService.Reset(c.Request.Context(), sessionID); err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *counterHandler) exportReceipt(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	data, contentType, fileName, err := h.exportService.ExportReceipt(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			h.redirectWithError(c, sessionID, "No receipt has been issued yet")
			return
		}
		h.renderFailure(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, contentType, data)
}

// render draws the page for the current session state. form, when set,
// replaces the stored customer values so a rejected submission keeps its input.
func (h *counterHandler) render(c *gin.Context, status int, sessionID string, notice *domain.Notification, form *dto.CustomerRequest) {
	ctx := c.Request.Context()

	state, err := h.sessionService.GetSession(ctx, sessionID)
	if err != nil {
		h.renderFailure(c, err)
		return
	}
	currencies, err := h.currencyService.ListCurrencies(ctx)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	view := web.NewPageView(state, currencies, notice)
	if form != nil {
		view.SetCustomerForm(*form)
	}
	c.HTML(status, web.IndexTemplate, view)
}

func (h *counterHandler) redirectWithError(c *gin.Context, sessionID, message string) {
	if err := h.sessionService.Notify(c.Request.Context(), sessionID, message, domain.NoticeError); err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *counterHandler) renderFailure(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Counter request failed", slog.String("error", err.Error()))
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// postedRows zips the parallel row inputs of the exchange form.
func postedRows(c *gin.Context) []dto.LineItemRequest {
	codes := c.PostFormArray("currencyCode")
	amounts := c.PostFormArray("amountReceived")
	rates := c.PostFormArray("rateOffered")

	n := max(len(codes), len(amounts), len(rates))
	rows := make([]dto.LineItemRequest, n)
	for i := range rows {
		rows[i] = dto.LineItemRequest{
			CurrencyCode:   at(codes, i),
			AmountReceived: at(amounts, i),
			RateOffered:    at(rates, i),
		}
	}
	return rows
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func errorNotice(message string) *domain.Notification {
	return &domain.Notification{Message: message, Level: domain.NoticeError}
}

func userMessage(err error) string {
	if fe, ok := apperrors.AsFieldError(err); ok {
		return fe.Message
	}
	return "Please check the highlighted values and try again"
}
