package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is the database representation of a purchase order header row.
type PurchaseOrder struct {
	PurchaseOrderID        string          `json:"purchaseOrderID"`
	Number                 string          `json:"number"`
	SupplierID             string          `json:"supplierID"`
	OrderDate              time.Time       `json:"orderDate"`
	ExpectedDate           *time.Time      `json:"expectedDate"`
	LocationID             string          `json:"locationID"`
	OverallDiscountPercent decimal.Decimal `json:"overallDiscountPercent"`
	Subtotal               decimal.Decimal `json:"subtotal"`
	DiscountAmount         decimal.Decimal `json:"discountAmount"`
	TaxAmount              decimal.Decimal `json:"taxAmount"`
	Total                  decimal.Decimal `json:"total"`
	Status                 string          `json:"status"`
	ConvertedToGRN         bool            `json:"convertedToGRN"`
	GoodsReceiptID         *string         `json:"goodsReceiptID"`
	Notes                  string          `json:"notes"`
	AuditFields
}
