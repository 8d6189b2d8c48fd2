package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// GoodsReceiptReaderSvc defines read operations for goods receipt data
type GoodsReceiptReaderSvc interface {
	// GetGoodsReceiptByID retrieves a specific goods receipt by its ID.
	GetGoodsReceiptByID(ctx context.Context, goodsReceiptID string) (*domain.GoodsReceipt, error)

	// ListGoodsReceipts retrieves a paginated list of goods receipts.
	ListGoodsReceipts(ctx context.Context, params dto.ListGoodsReceiptsParams) (*dto.ListGoodsReceiptsResponse, error)
}

// GoodsReceiptWriterSvc defines write operations for goods receipt data
type GoodsReceiptWriterSvc interface {
	// CreateGoodsReceipt persists a new draft goods receipt not linked to a
	// purchase order. Accepted quantity may not exceed received, and
	// received may not exceed ordered when an ordered quantity is set.
	CreateGoodsReceipt(ctx context.Context, actor domain.Actor, req dto.SaveGoodsReceiptRequest) (*domain.GoodsReceipt, error)

	// UpdateGoodsReceipt replaces a draft goods receipt's lines. Receipts
	// past DRAFT are immutable except for the inspection step.
	UpdateGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string, req dto.SaveGoodsReceiptRequest) (*domain.GoodsReceipt, error)

	// InspectGoodsReceipt records accepted quantities per line and moves
	// the receipt to INSPECTED.
	InspectGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string, req dto.InspectGoodsReceiptRequest) (*domain.GoodsReceipt, error)

	// TransitionGoodsReceipt applies a workflow action (approve, reject) to
	// a goods receipt.
	TransitionGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string, action string) (*domain.GoodsReceipt, error)

	// CompleteGoodsReceipt moves an approved receipt to COMPLETED and
	// increments stock by the accepted quantities. Stock is applied exactly
	// once: completing an already stock-updated receipt fails.
	CompleteGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string) (*domain.GoodsReceipt, error)
}

// GoodsReceiptSvcFacade combines all goods-receipt-related service interfaces
type GoodsReceiptSvcFacade interface {
	GoodsReceiptReaderSvc
	GoodsReceiptWriterSvc
}
