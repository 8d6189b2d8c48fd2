package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GoodsReceiptStatus indicates where a goods receipt note is in its lifecycle.
type GoodsReceiptStatus string

const (
	GoodsReceiptDraft     GoodsReceiptStatus = "DRAFT"
	GoodsReceiptInspected GoodsReceiptStatus = "INSPECTED"
	GoodsReceiptApproved  GoodsReceiptStatus = "APPROVED"
	GoodsReceiptRejected  GoodsReceiptStatus = "REJECTED"
	GoodsReceiptCompleted GoodsReceiptStatus = "COMPLETED"
)

// IsValid checks if the status is a known GoodsReceiptStatus.
func (s GoodsReceiptStatus) IsValid() bool {
	switch s {
	case GoodsReceiptDraft, GoodsReceiptInspected, GoodsReceiptApproved,
		GoodsReceiptRejected, GoodsReceiptCompleted:
		return true
	}
	return false
}

// GoodsReceiptItem is one received line on a goods receipt note.
// Invariant: 0 <= accepted <= received, and received <= ordered when the line
// comes from a purchase order (ordered > 0).
type GoodsReceiptItem struct {
	GoodsReceiptItemID string          `json:"goodsReceiptItemID"` // Primary Key (UUID)
	ProductID          string          `json:"productID"`
	Description        string          `json:"description"`
	OrderedQuantity    decimal.Decimal `json:"orderedQuantity"`  // Zero for direct receipts
	ReceivedQuantity   decimal.Decimal `json:"receivedQuantity"` // Physically received
	AcceptedQuantity   decimal.Decimal `json:"acceptedQuantity"` // Passed inspection
	UnitCost           decimal.Decimal `json:"unitCost"`
}

// RejectedQuantity returns received - accepted.
func (it GoodsReceiptItem) RejectedQuantity() decimal.Decimal {
	return it.ReceivedQuantity.Sub(it.AcceptedQuantity)
}

// ShortQuantity returns ordered - received when positive, otherwise zero.
func (it GoodsReceiptItem) ShortQuantity() decimal.Decimal {
	short := it.OrderedQuantity.Sub(it.ReceivedQuantity)
	if short.IsNegative() {
		return decimal.Zero
	}
	return short
}

// Validate enforces the quantity invariants. Over-acceptance and over-receipt
// are hard errors here; the UI's input caps are not a contract.
func (it GoodsReceiptItem) Validate() error {
	if it.ReceivedQuantity.IsNegative() {
		return fmt.Errorf("received quantity must not be negative")
	}
	if it.AcceptedQuantity.IsNegative() {
		return fmt.Errorf("accepted quantity must not be negative")
	}
	if it.AcceptedQuantity.GreaterThan(it.ReceivedQuantity) {
		return fmt.Errorf("accepted quantity %s exceeds received quantity %s",
			it.AcceptedQuantity.String(), it.ReceivedQuantity.String())
	}
	if it.OrderedQuantity.IsPositive() && it.ReceivedQuantity.GreaterThan(it.OrderedQuantity) {
		return fmt.Errorf("received quantity %s exceeds ordered quantity %s",
			it.ReceivedQuantity.String(), it.OrderedQuantity.String())
	}
	return nil
}

// GoodsReceipt records physical receipt of goods, either against a purchase
// order or directly (GRN-prefixed numbering).
type GoodsReceipt struct {
	GoodsReceiptID  string             `json:"goodsReceiptID"`  // Primary Key (UUID)
	Number          string             `json:"number"`          // e.g. GRN-0001
	SupplierID      string             `json:"supplierID"`
	PurchaseOrderID string             `json:"purchaseOrderID"` // Empty for direct receipts
	LocationID      string             `json:"locationID"`      // Stock location receiving the goods
	ReceiptDate     time.Time          `json:"receiptDate"`
	Items           []GoodsReceiptItem `json:"items"`
	Status          GoodsReceiptStatus `json:"status"`
	StockUpdated    bool               `json:"stockUpdated"` // Guards the stock increment; makes completion idempotent
	Notes           string             `json:"notes"`
	AuditFields
}

// IsEditable reports whether item edits are still allowed.
func (g GoodsReceipt) IsEditable() bool {
	return g.Status == GoodsReceiptDraft
}
