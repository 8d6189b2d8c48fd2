package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus indicates where a quotation is in its lifecycle.
type QuotationStatus string

const (
	QuotationDraft     QuotationStatus = "DRAFT"
	QuotationSent      QuotationStatus = "SENT"
	QuotationApproved  QuotationStatus = "APPROVED"
	QuotationRejected  QuotationStatus = "REJECTED"
	QuotationExpired   QuotationStatus = "EXPIRED"
	QuotationConverted QuotationStatus = "CONVERTED"
)

// IsValid checks if the status is a known QuotationStatus.
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationDraft, QuotationSent, QuotationApproved, QuotationRejected, QuotationExpired, QuotationConverted:
		return true
	}
	return false
}

// Quotation represents a sales quotation (SQ-prefixed numbering).
type Quotation struct {
	QuotationID            string          `json:"quotationID"` // Primary Key (UUID)
	Number                 string          `json:"number"`      // e.g. SQ-0001, assigned at creation
	CustomerID             string          `json:"customerID"`
	QuotationDate          time.Time       `json:"quotationDate"`
	ExpiryDate             time.Time       `json:"expiryDate"`
	Items                  []LineItem      `json:"items"`
	OverallDiscountPercent decimal.Decimal `json:"overallDiscountPercent"` // 0-100, applied after line discounts
	AppliedTaxes           []AppliedTax    `json:"appliedTaxes"`
	TotalsSnapshot
	Status             QuotationStatus `json:"status"`
	ConvertedToInvoice bool            `json:"convertedToInvoice"` // One-way flag; re-conversion forbidden
	InvoiceID          string          `json:"invoiceID"`          // Set when converted
	Notes              string          `json:"notes"`
	AuditFields
}

// IsEditable reports whether item and discount edits are still allowed.
func (q Quotation) IsEditable() bool {
	return q.Status == QuotationDraft
}
