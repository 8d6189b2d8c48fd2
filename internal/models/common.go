package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// DocumentItem is one line row belonging to a quotation, invoice or purchase
// order. Each document family has its own items table with this shape.
type DocumentItem struct {
	LineItemID      string          `json:"lineItemID"`
	DocumentID      string          `json:"documentID"`
	ProductID       *string         `json:"productID"` // Nullable product reference
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Position        int             `json:"position"` // Preserves line order
}

// DocumentTax is one applied tax snapshot row belonging to a document.
type DocumentTax struct {
	DocumentID string          `json:"documentID"`
	TaxRateID  string          `json:"taxRateID"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Position   int             `json:"position"`
}
