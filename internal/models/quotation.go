package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is the database representation of a quotation header row.
// Items and applied taxes live in their own tables.
type Quotation struct {
	QuotationID            string          `json:"quotationID"`
	Number                 string          `json:"number"`
	CustomerID             string          `json:"customerID"`
	QuotationDate          time.Time       `json:"quotationDate"`
	ExpiryDate             *time.Time      `json:"expiryDate"`
	OverallDiscountPercent decimal.Decimal `json:"overallDiscountPercent"`
	Subtotal               decimal.Decimal `json:"subtotal"`
	DiscountAmount         decimal.Decimal `json:"discountAmount"`
	TaxAmount              decimal.Decimal `json:"taxAmount"`
	Total                  decimal.Decimal `json:"total"`
	Status                 string          `json:"status"`
	ConvertedToInvoice     bool            `json:"convertedToInvoice"`
	InvoiceID              *string         `json:"invoiceID"`
	Notes                  string          `json:"notes"`
	AuditFields
}
