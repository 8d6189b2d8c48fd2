package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates where an invoice is in its lifecycle.
// Overdue is derived from the due date and is never persisted.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoicePartial   InvoiceStatus = "PARTIAL"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"

	// InvoiceOverdue is a reporting-only status returned by EffectiveStatus.
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// IsValid checks if the status is a persistable InvoiceStatus.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePartial, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// Invoice represents a sales invoice (SI-prefixed numbering).
type Invoice struct {
	InvoiceID              string          `json:"invoiceID"` // Primary Key (UUID)
	Number                 string          `json:"number"`    // e.g. SI-0002
	CustomerID             string          `json:"customerID"`
	SourceQuotationID      string          `json:"sourceQuotationID"` // Set when converted from a quotation
	InvoiceDate            time.Time       `json:"invoiceDate"`
	DueDate                time.Time       `json:"dueDate"`
	Items                  []LineItem      `json:"items"`
	OverallDiscountPercent decimal.Decimal `json:"overallDiscountPercent"`
	AppliedTaxes           []AppliedTax    `json:"appliedTaxes"`
	TotalsSnapshot
	PaidAmount    decimal.Decimal `json:"paidAmount"`    // Mutated only by payment recording
	BalanceAmount decimal.Decimal `json:"balanceAmount"` // Total - PaidAmount
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes"`
	AuditFields
}

// IsEditable reports whether item and discount edits are still allowed.
func (inv Invoice) IsEditable() bool {
	return inv.Status == InvoiceDraft
}

// EffectiveStatus returns the status as seen by the caller: an unpaid,
// uncancelled invoice past its due date reports as overdue regardless of the
// persisted workflow status.
func (inv Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	switch inv.Status {
	case InvoicePaid, InvoiceCancelled, InvoiceDraft:
		return inv.Status
	}
	if !inv.DueDate.IsZero() && now.After(inv.DueDate) {
		return InvoiceOverdue
	}
	return inv.Status
}
