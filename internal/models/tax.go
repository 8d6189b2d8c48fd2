package models

import "github.com/shopspring/decimal"

// TaxRate is the database representation of a tax rate row.
type TaxRate struct {
	TaxRateID string          `json:"taxRateID"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Enabled   bool            `json:"enabled"`
	IsDefault bool            `json:"isDefault"`
	AuditFields
}
