package domain

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// LineItem is one row of a commercial document (quotation, invoice, purchase
// order). Items are freely editable while the parent document is in draft and
// become immutable once it leaves draft.
type LineItem struct {
	LineItemID      string          `json:"lineItemID"` // Primary Key (UUID)
	ProductID       string          `json:"productID"`  // Optional product reference
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"` // 0-100
}

// GrossAmount returns quantity * unitPrice before any discount.
func (li LineItem) GrossAmount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// DiscountAmount returns the per-line discount value.
func (li LineItem) DiscountAmount() decimal.Decimal {
	return li.GrossAmount().Mul(li.DiscountPercent).Div(oneHundred)
}

// NetAmount returns the line total after the per-line discount.
func (li LineItem) NetAmount() decimal.Decimal {
	return li.GrossAmount().Sub(li.DiscountAmount())
}
