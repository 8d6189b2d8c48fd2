package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodBank   PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodCheque PaymentMethod = "CHEQUE"
)

// IsValid checks if the method is a known PaymentMethod.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodCard, PaymentMethodCheque:
		return true
	}
	return false
}

// Payment records money received against an invoice (PAY-prefixed numbering).
// Invoice paid/balance amounts are mutated exclusively through payments.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	Number      string          `json:"number"`    // e.g. PAY-0003
	InvoiceID   string          `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	PaymentDate time.Time       `json:"paymentDate"`
	Reference   string          `json:"reference"` // Cheque/transfer reference
	Notes       string          `json:"notes"`
	AuditFields
}
