package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func qty(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestGoodsReceiptItemDerivedQuantities(t *testing.T) {
	// Ordered 10, received 8, accepted 8: nothing rejected, 2 short.
	item := GoodsReceiptItem{
		OrderedQuantity:  qty("10"),
		ReceivedQuantity: qty("8"),
		AcceptedQuantity: qty("8"),
	}

	assert.True(t, item.RejectedQuantity().IsZero(), "rejected should be zero, got %s", item.RejectedQuantity())
	assert.True(t, qty("2").Equal(item.ShortQuantity()), "short should be 2, got %s", item.ShortQuantity())
	assert.NoError(t, item.Validate())
}

func TestGoodsReceiptItemPartialAcceptance(t *testing.T) {
	item := GoodsReceiptItem{
		OrderedQuantity:  qty("10"),
		ReceivedQuantity: qty("10"),
		AcceptedQuantity: qty("7"),
	}

	assert.True(t, qty("3").Equal(item.RejectedQuantity()))
	assert.True(t, item.ShortQuantity().IsZero())
	assert.NoError(t, item.Validate())
}

func TestGoodsReceiptItemValidate(t *testing.T) {
	t.Run("accepted exceeds received", func(t *testing.T) {
		item := GoodsReceiptItem{ReceivedQuantity: qty("5"), AcceptedQuantity: qty("6")}
		assert.Error(t, item.Validate())
	})

	t.Run("received exceeds ordered", func(t *testing.T) {
		item := GoodsReceiptItem{OrderedQuantity: qty("5"), ReceivedQuantity: qty("6"), AcceptedQuantity: qty("6")}
		assert.Error(t, item.Validate())
	})

	t.Run("direct receipt has no ordered cap", func(t *testing.T) {
		// Ordered is zero for direct receipts, so any received amount is fine.
		item := GoodsReceiptItem{ReceivedQuantity: qty("100"), AcceptedQuantity: qty("100")}
		assert.NoError(t, item.Validate())
	})

	t.Run("negative quantities", func(t *testing.T) {
		assert.Error(t, GoodsReceiptItem{ReceivedQuantity: qty("-1")}.Validate())
		assert.Error(t, GoodsReceiptItem{ReceivedQuantity: qty("1"), AcceptedQuantity: qty("-1")}.Validate())
	})
}

func TestGoodsReceiptIsEditable(t *testing.T) {
	assert.True(t, GoodsReceipt{Status: GoodsReceiptDraft}.IsEditable())
	for _, s := range []GoodsReceiptStatus{GoodsReceiptInspected, GoodsReceiptApproved, GoodsReceiptRejected, GoodsReceiptCompleted} {
		assert.False(t, GoodsReceipt{Status: s}.IsEditable(), "status %s must not be editable", s)
	}
}
