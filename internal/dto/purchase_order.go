package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavePurchaseOrderRequest creates a purchase order or replaces a draft one.
type SavePurchaseOrderRequest struct {
	SupplierID             string            `json:"supplierID" binding:"required"`
	OrderDate              time.Time         `json:"orderDate" binding:"required"`
	ExpectedDate           time.Time         `json:"expectedDate"`
	LocationID             string            `json:"locationID"`
	Items                  []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	OverallDiscountPercent decimal.Decimal   `json:"overallDiscountPercent" binding:"omitempty,min=0,max=100"`
	TaxRateIDs             []string          `json:"taxRateIDs"`
	Notes                  string            `json:"notes"`
	Totals                 *TotalsRequest    `json:"totals"` // Optional client figures, cross-checked server-side
}

// PurchaseOrderResponse is the purchase order representation returned by the API.
type PurchaseOrderResponse struct {
	PurchaseOrderID        string               `json:"purchaseOrderID"`
	Number                 string               `json:"number"`
	SupplierID             string               `json:"supplierID"`
	OrderDate              time.Time            `json:"orderDate"`
	ExpectedDate           time.Time            `json:"expectedDate,omitempty"`
	LocationID             string               `json:"locationID,omitempty"`
	Items                  []LineItemResponse   `json:"items,omitempty"`
	OverallDiscountPercent decimal.Decimal      `json:"overallDiscountPercent"`
	AppliedTaxes           []AppliedTaxResponse `json:"appliedTaxes,omitempty"`
	Totals                 TotalsResponse       `json:"totals"`
	Status                 string               `json:"status"`
	ConvertedToGRN         bool                 `json:"convertedToGRN"`
	GoodsReceiptID         string               `json:"goodsReceiptID,omitempty"`
	Notes                  string               `json:"notes,omitempty"`
	AvailableActions       []string             `json:"availableActions,omitempty"`
	CreatedAt              time.Time            `json:"createdAt"`
}

// ToPurchaseOrderResponse converts a domain PurchaseOrder to its response DTO.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder, availableActions []string) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseOrderID:        po.PurchaseOrderID,
		Number:                 po.Number,
		SupplierID:             po.SupplierID,
		OrderDate:              po.OrderDate,
		ExpectedDate:           po.ExpectedDate,
		LocationID:             po.LocationID,
		Items:                  toLineItemResponses(po.Items),
		OverallDiscountPercent: po.OverallDiscountPercent,
		AppliedTaxes:           toAppliedTaxResponses(po.AppliedTaxes),
		Totals:                 toTotalsResponse(po.TotalsSnapshot),
		Status:                 string(po.Status),
		ConvertedToGRN:         po.ConvertedToGRN,
		GoodsReceiptID:         po.GoodsReceiptID,
		Notes:                  po.Notes,
		AvailableActions:       availableActions,
		CreatedAt:              po.CreatedAt,
	}
}

// ListPurchaseOrdersParams are the query parameters accepted by the list endpoint.
type ListPurchaseOrdersParams struct {
	SupplierID string  `form:"supplierID"`
	Status     string  `form:"status"`
	Limit      int     `form:"limit"`
	NextToken  *string `form:"nextToken"`
}

// ListPurchaseOrdersResponse wraps a page of purchase orders.
type ListPurchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrderResponse `json:"purchaseOrders"`
	NextToken      *string                 `json:"nextToken,omitempty"`
}

// ToListPurchaseOrdersResponse maps a page of domain purchase orders (without items).
func ToListPurchaseOrdersResponse(orders []domain.PurchaseOrder, nextToken *string) ListPurchaseOrdersResponse {
	out := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		out[i] = ToPurchaseOrderResponse(&orders[i], nil)
	}
	return ListPurchaseOrdersResponse{PurchaseOrders: out, NextToken: nextToken}
}
