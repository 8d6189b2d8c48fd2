package domain

import "github.com/shopspring/decimal"

// Product represents a sellable/purchasable item.
type Product struct {
	ProductID   string          `json:"productID"` // Primary Key (UUID)
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`      // e.g. "pcs", "kg"
	UnitPrice   decimal.Decimal `json:"unitPrice"` // Default selling price
	CostPrice   decimal.Decimal `json:"costPrice"` // Default purchase cost
	IsActive    bool            `json:"isActive"`  // Soft delete flag
	AuditFields
}
