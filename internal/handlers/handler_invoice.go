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

// invoiceHandler handles HTTP requests related to invoices and the payments
// recorded against them.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// registerInvoiceRoutes registers routes related to invoices and payments.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService, paymentService: paymentService}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.POST("/:id/send", h.transition(workflow.InvoiceSend))
		invoices.POST("/:id/cancel", h.transition(workflow.InvoiceCancel))
		invoices.POST("/:id/payments", h.recordPayment)
		invoices.GET("/:id/payments", h.listPayments)
	}

	payments := rg.Group("/payments")
	{
		payments.GET("/:id", h.getPayment)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates a draft invoice. Totals are computed server-side;
// @Description client-supplied totals are cross-checked and a mismatch is rejected.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input or totals mismatch"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}
	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("number", invoice.Number))
	actions := actionStrings(workflow.Invoice.Actions(string(invoice.Status), actor.Role))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, time.Now().UTC(), actions))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves an invoice. An unpaid invoice past its due date
// @Description reports the derived OVERDUE status.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	actions := actionStrings(workflow.Invoice.Actions(string(invoice.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC(), actions))
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param customerID query string false "Filter by customer"
// @Param status query string false "Filter by status; OVERDUE matches unpaid invoices past due"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListInvoicesResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateInvoice godoc
// @Summary Update a draft invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 412 {object} map[string]string "Invoice is not editable"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update invoice")
		return
	}
	actions := actionStrings(workflow.Invoice.Actions(string(invoice.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC(), actions))
}

// transition returns a handler applying the given workflow action.
func (h *invoiceHandler) transition(action workflow.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := mustActor(c)
		if !ok {
			return
		}
		invoice, err := h.invoiceService.TransitionInvoice(c.Request.Context(), actor, c.Param("id"), string(action))
		if err != nil {
			respondError(c, err, "Failed to apply invoice action")
			return
		}
		actions := actionStrings(workflow.Invoice.Actions(string(invoice.Status), actor.Role))
		c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC(), actions))
	}
}

// recordPayment godoc
// @Summary Record a payment against an invoice
// @Description Records money received against a sent or partially paid invoice
// @Description and moves it to PARTIAL or PAID. Overpayment is rejected.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid amount or overpayment"
// @Failure 412 {object} map[string]string "Invoice does not accept payments"
// @Security BearerAuth
// @Router /invoices/{id}/payments [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("invoice_id", payment.InvoiceID),
		slog.String("amount", payment.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments recorded against an invoice
// @Tags payments
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/payments [get]
func (h *invoiceHandler) listPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsByInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *invoiceHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
