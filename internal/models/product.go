package models

import "github.com/shopspring/decimal"

// Product is the database representation of a product row.
type Product struct {
	ProductID   string          `json:"productID"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
