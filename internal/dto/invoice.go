package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveInvoiceRequest creates an invoice or replaces a draft one.
type SaveInvoiceRequest struct {
	CustomerID             string            `json:"customerID" binding:"required"`
	InvoiceDate            time.Time         `json:"invoiceDate" binding:"required"`
	DueDate                time.Time         `json:"dueDate"`
	Items                  []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	OverallDiscountPercent decimal.Decimal   `json:"overallDiscountPercent" binding:"omitempty,min=0,max=100"`
	TaxRateIDs             []string          `json:"taxRateIDs"`
	Notes                  string            `json:"notes"`
	Totals                 *TotalsRequest    `json:"totals"` // Optional client figures, cross-checked server-side
}

// InvoiceResponse is the invoice representation returned by the API.
// Status reports the effective status: an unpaid invoice past its due date
// shows OVERDUE while persistedStatus keeps the workflow state.
type InvoiceResponse struct {
	InvoiceID              string               `json:"invoiceID"`
	Number                 string               `json:"number"`
	CustomerID             string               `json:"customerID"`
	SourceQuotationID      string               `json:"sourceQuotationID,omitempty"`
	InvoiceDate            time.Time            `json:"invoiceDate"`
	DueDate                time.Time            `json:"dueDate,omitempty"`
	Items                  []LineItemResponse   `json:"items,omitempty"`
	OverallDiscountPercent decimal.Decimal      `json:"overallDiscountPercent"`
	AppliedTaxes           []AppliedTaxResponse `json:"appliedTaxes,omitempty"`
	Totals                 TotalsResponse       `json:"totals"`
	PaidAmount             decimal.Decimal      `json:"paidAmount"`
	BalanceAmount          decimal.Decimal      `json:"balanceAmount"`
	Status                 string               `json:"status"`
	PersistedStatus        string               `json:"persistedStatus"`
	Notes                  string               `json:"notes,omitempty"`
	AvailableActions       []string             `json:"availableActions,omitempty"`
	CreatedAt              time.Time            `json:"createdAt"`
}

// ToInvoiceResponse converts a domain Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice, now time.Time, availableActions []string) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:              inv.InvoiceID,
		Number:                 inv.Number,
		CustomerID:             inv.CustomerID,
		SourceQuotationID:      inv.SourceQuotationID,
		InvoiceDate:            inv.InvoiceDate,
		DueDate:                inv.DueDate,
		Items:                  toLineItemResponses(inv.Items),
		OverallDiscountPercent: inv.OverallDiscountPercent,
		AppliedTaxes:           toAppliedTaxResponses(inv.AppliedTaxes),
		Totals:                 toTotalsResponse(inv.TotalsSnapshot),
		PaidAmount:             inv.PaidAmount,
		BalanceAmount:          inv.BalanceAmount,
		Status:                 string(inv.EffectiveStatus(now)),
		PersistedStatus:        string(inv.Status),
		Notes:                  inv.Notes,
		AvailableActions:       availableActions,
		CreatedAt:              inv.CreatedAt,
	}
}

// ListInvoicesParams are the query parameters accepted by the list endpoint.
type ListInvoicesParams struct {
	CustomerID string  `form:"customerID"`
	Status     string  `form:"status"`
	Limit      int     `form:"limit"`
	NextToken  *string `form:"nextToken"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListInvoicesResponse maps a page of domain invoices (without items).
func ToListInvoicesResponse(invoices []domain.Invoice, now time.Time, nextToken *string) ListInvoicesResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i], now, nil)
	}
	return ListInvoicesResponse{Invoices: out, NextToken: nextToken}
}
