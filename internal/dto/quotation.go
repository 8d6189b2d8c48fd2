package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveQuotationRequest creates a quotation or replaces a draft one.
type SaveQuotationRequest struct {
	CustomerID             string            `json:"customerID" binding:"required"`
	QuotationDate          time.Time         `json:"quotationDate" binding:"required"`
	ExpiryDate             time.Time         `json:"expiryDate"`
	Items                  []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	OverallDiscountPercent decimal.Decimal   `json:"overallDiscountPercent" binding:"omitempty,min=0,max=100"`
	TaxRateIDs             []string          `json:"taxRateIDs"`
	Notes                  string            `json:"notes"`
	Totals                 *TotalsRequest    `json:"totals"` // Optional client figures, cross-checked server-side
}

// ConvertQuotationRequest carries the invoice dates for a quotation
// conversion. Zero dates default to now and now plus the configured
// payment terms.
type ConvertQuotationRequest struct {
	InvoiceDate time.Time `json:"invoiceDate"`
	DueDate     time.Time `json:"dueDate"`
}

// QuotationResponse is the quotation representation returned by the API.
type QuotationResponse struct {
	QuotationID            string               `json:"quotationID"`
	Number                 string               `json:"number"`
	CustomerID             string               `json:"customerID"`
	QuotationDate          time.Time            `json:"quotationDate"`
	ExpiryDate             time.Time            `json:"expiryDate,omitempty"`
	Items                  []LineItemResponse   `json:"items,omitempty"`
	OverallDiscountPercent decimal.Decimal      `json:"overallDiscountPercent"`
	AppliedTaxes           []AppliedTaxResponse `json:"appliedTaxes,omitempty"`
	Totals                 TotalsResponse       `json:"totals"`
	Status                 string               `json:"status"`
	ConvertedToInvoice     bool                 `json:"convertedToInvoice"`
	InvoiceID              string               `json:"invoiceID,omitempty"`
	Notes                  string               `json:"notes,omitempty"`
	AvailableActions       []string             `json:"availableActions,omitempty"`
	CreatedAt              time.Time            `json:"createdAt"`
}

// ToQuotationResponse converts a domain Quotation to its response DTO.
// availableActions lists the workflow actions the actor's role may take next.
func ToQuotationResponse(q *domain.Quotation, availableActions []string) QuotationResponse {
	return QuotationResponse{
		QuotationID:            q.QuotationID,
		Number:                 q.Number,
		CustomerID:             q.CustomerID,
		QuotationDate:          q.QuotationDate,
		ExpiryDate:             q.ExpiryDate,
		Items:                  toLineItemResponses(q.Items),
		OverallDiscountPercent: q.OverallDiscountPercent,
		AppliedTaxes:           toAppliedTaxResponses(q.AppliedTaxes),
		Totals:                 toTotalsResponse(q.TotalsSnapshot),
		Status:                 string(q.Status),
		ConvertedToInvoice:     q.ConvertedToInvoice,
		InvoiceID:              q.InvoiceID,
		Notes:                  q.Notes,
		AvailableActions:       availableActions,
		CreatedAt:              q.CreatedAt,
	}
}

// ListQuotationsParams are the query parameters accepted by the list endpoint.
type ListQuotationsParams struct {
	CustomerID string  `form:"customerID"`
	Status     string  `form:"status"`
	Limit      int     `form:"limit"`
	NextToken  *string `form:"nextToken"`
}

// ListQuotationsResponse wraps a page of quotations.
type ListQuotationsResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	NextToken  *string             `json:"nextToken,omitempty"`
}

// ToListQuotationsResponse maps a page of domain quotations (without items).
func ToListQuotationsResponse(quotations []domain.Quotation, nextToken *string) ListQuotationsResponse {
	out := make([]QuotationResponse, len(quotations))
	for i := range quotations {
		out[i] = ToQuotationResponse(&quotations[i], nil)
	}
	return ListQuotationsResponse{Quotations: out, NextToken: nextToken}
}
