package totals

import (
	"testing"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCalculate_LineDiscountThenTax(t *testing.T) {
	// Two units at 100 with a 10% line discount and an 18% tax.
	items := []domain.LineItem{
		{
			Description:     "Widget",
			Quantity:        dec("2"),
			UnitPrice:       dec("100"),
			DiscountPercent: dec("10"),
		},
	}
	taxes := []domain.AppliedTax{
		{TaxRateID: "t1", Name: "GST", Value: dec("18")},
	}

	result := Calculate(items, decimal.Zero, taxes)

	assert.True(t, dec("200").Equal(result.Subtotal), "subtotal should be 200, got %s", result.Subtotal)
	assert.True(t, dec("20").Equal(result.ItemDiscountsTotal), "item discounts should be 20, got %s", result.ItemDiscountsTotal)
	assert.True(t, result.OverallDiscountAmount.IsZero(), "no overall discount expected")
	assert.True(t, dec("32.4").Equal(result.TaxAmount), "tax should be 32.4, got %s", result.TaxAmount)
	assert.True(t, dec("212.4").Equal(result.Total), "total should be 212.4, got %s", result.Total)
}

func TestCalculate_AdditiveTaxesDoNotCompound(t *testing.T) {
	// 10% + 5% on 1000 must yield 150, not the 157.5 that compounding
	// would produce.
	items := []domain.LineItem{
		{Description: "Service", Quantity: dec("1"), UnitPrice: dec("1000")},
	}
	taxes := []domain.AppliedTax{
		{TaxRateID: "t1", Name: "Tax A", Value: dec("10")},
		{TaxRateID: "t2", Name: "Tax B", Value: dec("5")},
	}

	result := Calculate(items, decimal.Zero, taxes)

	assert.True(t, dec("150").Equal(result.TaxAmount), "additive taxes should sum to 150, got %s", result.TaxAmount)
	assert.True(t, dec("1150").Equal(result.Total), "total should be 1150, got %s", result.Total)
}

func TestCalculate_OverallDiscountAppliesAfterLineDiscounts(t *testing.T) {
	items := []domain.LineItem{
		{Description: "A", Quantity: dec("2"), UnitPrice: dec("100"), DiscountPercent: dec("10")},
		{Description: "B", Quantity: dec("1"), UnitPrice: dec("300")},
	}

	// Subtotal 500, line discounts 20, remainder 480, 25% overall = 120.
	result := Calculate(items, dec("25"), nil)

	assert.True(t, dec("500").Equal(result.Subtotal))
	assert.True(t, dec("20").Equal(result.ItemDiscountsTotal))
	assert.True(t, dec("120").Equal(result.OverallDiscountAmount))
	assert.True(t, dec("140").Equal(result.DiscountTotal()))
	assert.True(t, dec("360").Equal(result.Total))
}

func TestCalculate_FullDiscounts(t *testing.T) {
	items := []domain.LineItem{
		{Description: "Free", Quantity: dec("1"), UnitPrice: dec("100"), DiscountPercent: dec("100")},
	}
	taxes := []domain.AppliedTax{{TaxRateID: "t1", Name: "GST", Value: dec("18")}}

	result := Calculate(items, dec("100"), taxes)

	assert.True(t, dec("100").Equal(result.Subtotal))
	assert.True(t, result.TaxAmount.IsZero(), "tax on a zero base must be zero")
	assert.True(t, result.Total.IsZero(), "total must be zero, got %s", result.Total)
}

func TestCalculate_EmptyDocument(t *testing.T) {
	result := Calculate(nil, decimal.Zero, nil)

	assert.True(t, result.Subtotal.IsZero())
	assert.True(t, result.TaxAmount.IsZero())
	assert.True(t, result.Total.IsZero())
}

func TestCalculate_FractionalQuantities(t *testing.T) {
	items := []domain.LineItem{
		{Description: "Bulk", Quantity: dec("2.5"), UnitPrice: dec("19.99")},
	}

	result := Calculate(items, decimal.Zero, nil)

	assert.True(t, dec("49.975").Equal(result.Subtotal), "got %s", result.Subtotal)
	assert.True(t, dec("49.975").Equal(result.Total))
}

func TestSnapshot(t *testing.T) {
	items := []domain.LineItem{
		{Description: "A", Quantity: dec("2"), UnitPrice: dec("100"), DiscountPercent: dec("10")},
	}
	taxes := []domain.AppliedTax{{TaxRateID: "t1", Name: "GST", Value: dec("18")}}

	snap := Calculate(items, decimal.Zero, taxes).Snapshot()

	assert.True(t, dec("200").Equal(snap.Subtotal))
	assert.True(t, dec("20").Equal(snap.DiscountAmount))
	assert.True(t, dec("32.4").Equal(snap.TaxAmount))
	assert.True(t, dec("212.4").Equal(snap.Total))
}
