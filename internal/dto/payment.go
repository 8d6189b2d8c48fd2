package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest records money received against an invoice.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
}

// PaymentResponse is the payment representation returned by the API.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	Number      string          `json:"number"`
	InvoiceID   string          `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"paymentDate"`
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		Number:      p.Number,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		Method:      string(p.Method),
		PaymentDate: p.PaymentDate,
		Reference:   p.Reference,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPaymentResponses maps a slice of domain payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out
}
