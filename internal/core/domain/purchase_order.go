package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus indicates where a purchase order is in its lifecycle.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderApproved  PurchaseOrderStatus = "APPROVED"
	PurchaseOrderSent      PurchaseOrderStatus = "SENT"
	PurchaseOrderCompleted PurchaseOrderStatus = "COMPLETED"
	PurchaseOrderCancelled PurchaseOrderStatus = "CANCELLED"
	PurchaseOrderConverted PurchaseOrderStatus = "CONVERTED"
)

// IsValid checks if the status is a known PurchaseOrderStatus.
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderDraft, PurchaseOrderApproved, PurchaseOrderSent,
		PurchaseOrderCompleted, PurchaseOrderCancelled, PurchaseOrderConverted:
		return true
	}
	return false
}

// PurchaseOrder represents a purchase order raised against a supplier
// (PO-prefixed numbering).
type PurchaseOrder struct {
	PurchaseOrderID        string          `json:"purchaseOrderID"` // Primary Key (UUID)
	Number                 string          `json:"number"`          // e.g. PO-0001
	SupplierID             string          `json:"supplierID"`
	OrderDate              time.Time       `json:"orderDate"`
	ExpectedDate           time.Time       `json:"expectedDate"`
	LocationID             string          `json:"locationID"` // Delivery location for the eventual receipt
	Items                  []LineItem      `json:"items"`
	OverallDiscountPercent decimal.Decimal `json:"overallDiscountPercent"`
	AppliedTaxes           []AppliedTax    `json:"appliedTaxes"`
	TotalsSnapshot
	Status         PurchaseOrderStatus `json:"status"`
	ConvertedToGRN bool                `json:"convertedToGRN"` // One-way flag; only one GRN per PO
	GoodsReceiptID string              `json:"goodsReceiptID"` // Set when converted
	Notes          string              `json:"notes"`
	AuditFields
}

// IsEditable reports whether item and discount edits are still allowed.
func (po PurchaseOrder) IsEditable() bool {
	return po.Status == PurchaseOrderDraft
}

// IsConvertible reports whether the order is in a state that allows
// conversion to a goods receipt.
func (po PurchaseOrder) IsConvertible() bool {
	return !po.ConvertedToGRN &&
		(po.Status == PurchaseOrderApproved || po.Status == PurchaseOrderSent)
}
