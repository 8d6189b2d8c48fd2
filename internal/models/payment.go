package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database representation of a payment row.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	Number      string          `json:"number"`
	InvoiceID   string          `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"paymentDate"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
	AuditFields
}
