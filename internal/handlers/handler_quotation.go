package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/core/workflow"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quotationHandler handles HTTP requests related to quotations.
type quotationHandler struct {
	quotationService portssvc.QuotationSvcFacade
}

// RegisterQuotationRoutes registers routes related to quotations, including
// the workflow action and conversion endpoints. Exported so handler tests can
// mount the routes on their own router.
func RegisterQuotationRoutes(rg *gin.RouterGroup, quotationService portssvc.QuotationSvcFacade) {
	h := &quotationHandler{quotationService: quotationService}

	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.createQuotation)
		quotations.GET("", h.listQuotations)
		quotations.GET("/:id", h.getQuotation)
		quotations.PUT("/:id", h.updateQuotation)
		quotations.POST("/:id/send", h.transition(workflow.QuotationSend))
		quotations.POST("/:id/approve", h.transition(workflow.QuotationApprove))
		quotations.POST("/:id/reject", h.transition(workflow.QuotationReject))
		quotations.POST("/:id/expire", h.transition(workflow.QuotationExpire))
		quotations.POST("/:id/convert", h.convertToInvoice)
	}
}

// createQuotation godoc
// @Summary Create a new quotation
// @Description Creates a draft quotation. Totals are computed server-side;
// @Description client-supplied totals are cross-checked and a mismatch is rejected.
// @Tags quotations
// @Accept json
// @Produce json
// @Param quotation body dto.SaveQuotationRequest true "Quotation details"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input or totals mismatch"
// @Security BearerAuth
// @Router /quotations [post]
func (h *quotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuotation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create quotation")
		return
	}
	logger.Info("Quotation created", slog.String("quotation_id", quotation.QuotationID), slog.String("number", quotation.Number))
	actions := actionStrings(workflow.Quotation.Actions(string(quotation.Status), actor.Role))
	c.JSON(http.StatusCreated, dto.ToQuotationResponse(quotation, actions))
}

// getQuotation godoc
// @Summary Get a quotation by ID
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Security BearerAuth
// @Router /quotations/{id} [get]
func (h *quotationHandler) getQuotation(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	quotation, err := h.quotationService.GetQuotationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve quotation")
		return
	}
	actions := actionStrings(workflow.Quotation.Actions(string(quotation.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation, actions))
}

// listQuotations godoc
// @Summary List quotations
// @Tags quotations
// @Produce json
// @Param customerID query string false "Filter by customer"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListQuotationsResponse
// @Security BearerAuth
// @Router /quotations [get]
func (h *quotationHandler) listQuotations(c *gin.Context) {
	var params dto.ListQuotationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.quotationService.ListQuotations(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list quotations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateQuotation godoc
// @Summary Update a draft quotation
// @Description Replaces a draft quotation's items and discounts and recomputes
// @Description totals. Quotations past DRAFT are immutable.
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param quotation body dto.SaveQuotationRequest true "Quotation details"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 412 {object} map[string]string "Quotation is not editable"
// @Security BearerAuth
// @Router /quotations/{id} [put]
func (h *quotationHandler) updateQuotation(c *gin.Context) {
	var req dto.SaveQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update quotation")
		return
	}
	actions := actionStrings(workflow.Quotation.Actions(string(quotation.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation, actions))
}

// transition returns a handler applying the given workflow action.
func (h *quotationHandler) transition(action workflow.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := mustActor(c)
		if !ok {
			return
		}
		quotation, err := h.quotationService.TransitionQuotation(c.Request.Context(), actor, c.Param("id"), string(action))
		if err != nil {
			respondError(c, err, "Failed to apply quotation action")
			return
		}
		actions := actionStrings(workflow.Quotation.Actions(string(quotation.Status), actor.Role))
		c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation, actions))
	}
}

// convertToInvoice godoc
// @Summary Convert an approved quotation into an invoice
// @Description Creates a draft invoice carrying the quotation's lines, discounts
// @Description and tax snapshots. A quotation converts at most once; repeating the
// @Description call fails with 412 and creates nothing.
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param conversion body dto.ConvertQuotationRequest false "Invoice dates"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 412 {object} map[string]string "Quotation not approved or already converted"
// @Security BearerAuth
// @Router /quotations/{id}/convert [post]
func (h *quotationHandler) convertToInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertQuotationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	invoice, err := h.quotationService.ConvertQuotationToInvoice(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to convert quotation")
		return
	}
	logger.Info("Quotation converted to invoice",
		slog.String("quotation_id", c.Param("id")),
		slog.String("invoice_id", invoice.InvoiceID))
	actions := actionStrings(workflow.Invoice.Actions(string(invoice.Status), actor.Role))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, time.Now().UTC(), actions))
}
