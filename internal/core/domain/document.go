package domain

import "github.com/shopspring/decimal"

// TotalsSnapshot holds the persisted result of the totals calculation at the
// last save of a commercial document. The server recomputes these from the
// line items on every write; they are never trusted from the client.
type TotalsSnapshot struct {
	Subtotal       decimal.Decimal `json:"subtotal"`       // Sum of quantity*unitPrice before discounts
	DiscountAmount decimal.Decimal `json:"discountAmount"` // Line discounts + overall discount
	TaxAmount      decimal.Decimal `json:"taxAmount"`      // Sum of additive tax contributions
	Total          decimal.Decimal `json:"total"`          // Grand total
}
