package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoodsReceiptItemRequest is one received line as submitted by the client.
type GoodsReceiptItemRequest struct {
	ProductID        string          `json:"productID" binding:"required"`
	Description      string          `json:"description"`
	OrderedQuantity  decimal.Decimal `json:"orderedQuantity" binding:"omitempty,min=0"`
	ReceivedQuantity decimal.Decimal `json:"receivedQuantity" binding:"required"`
	AcceptedQuantity decimal.Decimal `json:"acceptedQuantity" binding:"omitempty,min=0"`
	UnitCost         decimal.Decimal `json:"unitCost" binding:"omitempty,min=0"`
}

// SaveGoodsReceiptRequest creates a direct goods receipt or replaces a draft one.
type SaveGoodsReceiptRequest struct {
	SupplierID  string                    `json:"supplierID" binding:"required"`
	LocationID  string                    `json:"locationID"`
	ReceiptDate time.Time                 `json:"receiptDate" binding:"required"`
	Items       []GoodsReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes       string                    `json:"notes"`
}

// InspectGoodsReceiptItem records the inspection outcome for one line.
type InspectGoodsReceiptItem struct {
	GoodsReceiptItemID string          `json:"goodsReceiptItemID" binding:"required"`
	AcceptedQuantity   decimal.Decimal `json:"acceptedQuantity" binding:"min=0"`
}

// InspectGoodsReceiptRequest records accepted quantities after inspection.
type InspectGoodsReceiptRequest struct {
	Items []InspectGoodsReceiptItem `json:"items" binding:"required,min=1,dive"`
	Notes string                    `json:"notes"`
}

// GoodsReceiptItemResponse is one received line as returned to the client,
// including the derived rejected/short quantities.
type GoodsReceiptItemResponse struct {
	GoodsReceiptItemID string          `json:"goodsReceiptItemID"`
	ProductID          string          `json:"productID"`
	Description        string          `json:"description,omitempty"`
	OrderedQuantity    decimal.Decimal `json:"orderedQuantity"`
	ReceivedQuantity   decimal.Decimal `json:"receivedQuantity"`
	AcceptedQuantity   decimal.Decimal `json:"acceptedQuantity"`
	RejectedQuantity   decimal.Decimal `json:"rejectedQuantity"`
	ShortQuantity      decimal.Decimal `json:"shortQuantity"`
	UnitCost           decimal.Decimal `json:"unitCost"`
}

// GoodsReceiptResponse is the goods receipt representation returned by the API.
type GoodsReceiptResponse struct {
	GoodsReceiptID   string                     `json:"goodsReceiptID"`
	Number           string                     `json:"number"`
	SupplierID       string                     `json:"supplierID"`
	PurchaseOrderID  string                     `json:"purchaseOrderID,omitempty"`
	LocationID       string                     `json:"locationID"`
	ReceiptDate      time.Time                  `json:"receiptDate"`
	Items            []GoodsReceiptItemResponse `json:"items,omitempty"`
	Status           string                     `json:"status"`
	StockUpdated     bool                       `json:"stockUpdated"`
	Notes            string                     `json:"notes,omitempty"`
	AvailableActions []string                   `json:"availableActions,omitempty"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

// ToGoodsReceiptResponse converts a domain GoodsReceipt to its response DTO.
func ToGoodsReceiptResponse(g *domain.GoodsReceipt, availableActions []string) GoodsReceiptResponse {
	items := make([]GoodsReceiptItemResponse, len(g.Items))
	for i, item := range g.Items {
		items[i] = GoodsReceiptItemResponse{
			GoodsReceiptItemID: item.GoodsReceiptItemID,
			ProductID:          item.ProductID,
			Description:        item.Description,
			OrderedQuantity:    item.OrderedQuantity,
			ReceivedQuantity:   item.ReceivedQuantity,
			AcceptedQuantity:   item.AcceptedQuantity,
			RejectedQuantity:   item.RejectedQuantity(),
			ShortQuantity:      item.ShortQuantity(),
			UnitCost:           item.UnitCost,
		}
	}
	return GoodsReceiptResponse{
		GoodsReceiptID:   g.GoodsReceiptID,
		Number:           g.Number,
		SupplierID:       g.SupplierID,
		PurchaseOrderID:  g.PurchaseOrderID,
		LocationID:       g.LocationID,
		ReceiptDate:      g.ReceiptDate,
		Items:            items,
		Status:           string(g.Status),
		StockUpdated:     g.StockUpdated,
		Notes:            g.Notes,
		AvailableActions: availableActions,
		CreatedAt:        g.CreatedAt,
	}
}

// ListGoodsReceiptsParams are the query parameters accepted by the list endpoint.
type ListGoodsReceiptsParams struct {
	SupplierID string  `form:"supplierID"`
	Status     string  `form:"status"`
	Limit      int     `form:"limit"`
	NextToken  *string `form:"nextToken"`
}

// ListGoodsReceiptsResponse wraps a page of goods receipts.
type ListGoodsReceiptsResponse struct {
	GoodsReceipts []GoodsReceiptResponse `json:"goodsReceipts"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToListGoodsReceiptsResponse maps a page of domain goods receipts (without items).
func ToListGoodsReceiptsResponse(receipts []domain.GoodsReceipt, nextToken *string) ListGoodsReceiptsResponse {
	out := make([]GoodsReceiptResponse, len(receipts))
	for i := range receipts {
		out[i] = ToGoodsReceiptResponse(&receipts[i], nil)
	}
	return ListGoodsReceiptsResponse{GoodsReceipts: out, NextToken: nextToken}
}
