package domain

import "github.com/shopspring/decimal"

// TaxRate is a named percentage (e.g. VAT 18%) that can be applied to
// commercial documents. Multiple rates may apply to one document; each is
// computed independently against the post-discount subtotal and summed.
type TaxRate struct {
	TaxRateID string          `json:"taxRateID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"` // Percentage, 0-100
	Enabled   bool            `json:"enabled"`
	IsDefault bool            `json:"isDefault"`
	AuditFields
}

// AppliedTax is the snapshot of a tax rate captured on a document at save
// time, so later edits to the rate never change historical documents.
type AppliedTax struct {
	TaxRateID string          `json:"taxRateID"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"` // Percentage, 0-100
}
