package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// PurchaseOrderReaderSvc defines read operations for purchase order data
type PurchaseOrderReaderSvc interface {
	// GetPurchaseOrderByID retrieves a specific purchase order by its ID.
	GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves a paginated list of purchase orders.
	ListPurchaseOrders(ctx context.Context, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error)
}

// PurchaseOrderWriterSvc defines write operations for purchase order data
type PurchaseOrderWriterSvc interface {
	// CreatePurchaseOrder persists a new draft purchase order.
	CreatePurchaseOrder(ctx context.Context, actor domain.Actor, req dto.SavePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// UpdatePurchaseOrder replaces a draft purchase order's details and
	// recomputes totals. Non-draft orders are immutable.
	UpdatePurchaseOrder(ctx context.Context, actor domain.Actor, purchaseOrderID string, req dto.SavePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// TransitionPurchaseOrder applies a workflow action (approve, send,
	// complete, cancel) to a purchase order.
	TransitionPurchaseOrder(ctx context.Context, actor domain.Actor, purchaseOrderID string, action string) (*domain.PurchaseOrder, error)

	// ConvertPurchaseOrderToGoodsReceipt creates a goods receipt from an
	// approved or sent purchase order, pre-filling received and accepted
	// quantities from the ordered ones. The operation is idempotent: a
	// second conversion attempt fails without creating another receipt.
	ConvertPurchaseOrderToGoodsReceipt(ctx context.Context, actor domain.Actor, purchaseOrderID string) (*domain.GoodsReceipt, error)
}

// PurchaseOrderSvcFacade combines all purchase-order-related service interfaces
type PurchaseOrderSvcFacade interface {
	PurchaseOrderReaderSvc
	PurchaseOrderWriterSvc
}
