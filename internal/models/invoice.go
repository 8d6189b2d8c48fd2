package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the database representation of an invoice header row.
type Invoice struct {
	InvoiceID              string          `json:"invoiceID"`
	Number                 string          `json:"number"`
	CustomerID             string          `json:"customerID"`
	SourceQuotationID      *string         `json:"sourceQuotationID"`
	InvoiceDate            time.Time       `json:"invoiceDate"`
	DueDate                *time.Time      `json:"dueDate"`
	OverallDiscountPercent decimal.Decimal `json:"overallDiscountPercent"`
	Subtotal               decimal.Decimal `json:"subtotal"`
	DiscountAmount         decimal.Decimal `json:"discountAmount"`
	TaxAmount              decimal.Decimal `json:"taxAmount"`
	Total                  decimal.Decimal `json:"total"`
	PaidAmount             decimal.Decimal `json:"paidAmount"`
	BalanceAmount          decimal.Decimal `json:"balanceAmount"`
	Status                 string          `json:"status"`
	Notes                  string          `json:"notes"`
	AuditFields
}
