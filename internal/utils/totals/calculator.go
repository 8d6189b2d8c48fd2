// Package totals is the single source of truth for commercial document
// arithmetic. Every document service recomputes its figures here; the
// calculation the frontend shows while editing follows the same step order.
package totals

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Result holds the computed figures for one document.
type Result struct {
	Subtotal              decimal.Decimal // Sum of quantity*unitPrice, before any discount
	ItemDiscountsTotal    decimal.Decimal // Sum of per-line discount amounts
	OverallDiscountAmount decimal.Decimal // Overall discount applied to the remainder
	TaxAmount             decimal.Decimal // Sum of additive tax contributions
	Total                 decimal.Decimal // Grand total
}

// DiscountTotal returns line discounts plus the overall discount.
func (r Result) DiscountTotal() decimal.Decimal {
	return r.ItemDiscountsTotal.Add(r.OverallDiscountAmount)
}

// Snapshot converts the result into the persisted snapshot shape.
func (r Result) Snapshot() domain.TotalsSnapshot {
	return domain.TotalsSnapshot{
		Subtotal:       r.Subtotal,
		DiscountAmount: r.DiscountTotal(),
		TaxAmount:      r.TaxAmount,
		Total:          r.Total,
	}
}

// Calculate computes document totals from line items, the overall discount
// percentage and the applied tax rates.
//
// Step order is fixed and load-bearing: per-line discounts are fully applied
// first, the overall discount applies to the remainder, and each tax is
// computed independently against the final subtotal and summed (additive, not
// compounded). Derived values that would go negative clamp to zero, so the
// calculation never errors.
func Calculate(items []domain.LineItem, overallDiscountPercent decimal.Decimal, taxes []domain.AppliedTax) Result {
	subtotal := decimal.Zero
	itemDiscounts := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.GrossAmount())
		itemDiscounts = itemDiscounts.Add(item.DiscountAmount())
	}

	afterItemDiscount := clampZero(subtotal.Sub(itemDiscounts))
	overallDiscount := afterItemDiscount.Mul(overallDiscountPercent).Div(oneHundred)
	finalSubtotal := clampZero(afterItemDiscount.Sub(overallDiscount))

	taxAmount := decimal.Zero
	for _, tax := range taxes {
		taxAmount = taxAmount.Add(finalSubtotal.Mul(tax.Value).Div(oneHundred))
	}

	return Result{
		Subtotal:              subtotal,
		ItemDiscountsTotal:    itemDiscounts,
		OverallDiscountAmount: overallDiscount,
		TaxAmount:             taxAmount,
		Total:                 finalSubtotal.Add(taxAmount),
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
