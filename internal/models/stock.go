package models

import "github.com/shopspring/decimal"

// StockLevel is the database representation of a stock level row, keyed by
// (productID, locationID).
type StockLevel struct {
	ProductID  string          `json:"productID"`
	LocationID string          `json:"locationID"`
	Quantity   decimal.Decimal `json:"quantity"`
	AuditFields
}
