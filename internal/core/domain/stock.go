package domain

import "github.com/shopspring/decimal"

// DefaultLocationID is used when a document does not name a stock location.
const DefaultLocationID = "MAIN"

// StockLevel is the on-hand quantity of a product at a location.
// It is incremented by goods receipt completion and by manual adjustments.
type StockLevel struct {
	ProductID  string          `json:"productID"`
	LocationID string          `json:"locationID"`
	Quantity   decimal.Decimal `json:"quantity"`
	AuditFields
}
