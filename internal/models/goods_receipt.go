package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsReceipt is the database representation of a goods receipt header row.
type GoodsReceipt struct {
	GoodsReceiptID  string    `json:"goodsReceiptID"`
	Number          string    `json:"number"`
	SupplierID      string    `json:"supplierID"`
	PurchaseOrderID *string   `json:"purchaseOrderID"`
	LocationID      string    `json:"locationID"`
	ReceiptDate     time.Time `json:"receiptDate"`
	Status          string    `json:"status"`
	StockUpdated    bool      `json:"stockUpdated"`
	Notes           string    `json:"notes"`
	AuditFields
}

// GoodsReceiptItem is one received line row belonging to a goods receipt.
type GoodsReceiptItem struct {
	GoodsReceiptItemID string          `json:"goodsReceiptItemID"`
	GoodsReceiptID     string          `json:"goodsReceiptID"`
	ProductID          *string         `json:"productID"`
	Description        string          `json:"description"`
	OrderedQuantity    decimal.Decimal `json:"orderedQuantity"`
	ReceivedQuantity   decimal.Decimal `json:"receivedQuantity"`
	AcceptedQuantity   decimal.Decimal `json:"acceptedQuantity"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	Position           int             `json:"position"`
}
