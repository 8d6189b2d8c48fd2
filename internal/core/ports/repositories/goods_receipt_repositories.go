package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoodsReceiptReader defines read operations for goods receipt data.
type GoodsReceiptReader interface {
	FindGoodsReceiptByID(ctx context.Context, goodsReceiptID string) (*domain.GoodsReceipt, error)
	ListGoodsReceipts(ctx context.Context, supplierID string, status string, limit int, nextToken *string) ([]domain.GoodsReceipt, *string, error)
}

// GoodsReceiptWriter defines write operations for goods receipt data.
type GoodsReceiptWriter interface {
	SaveGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error
	UpdateGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error
	UpdateGoodsReceiptStatus(ctx context.Context, goodsReceiptID string, status domain.GoodsReceiptStatus, updatedBy string, updatedAt time.Time) error

	// CompleteWithStock atomically sets the receipt to completed, flips the
	// stock_updated flag and increments the stock levels at the receipt's
	// location by the given accepted quantities. The flag check runs inside
	// the transaction; an already-updated receipt causes
	// apperrors.ErrPrecondition and no stock change, so the increment can
	// never happen twice.
	CompleteWithStock(ctx context.Context, goodsReceiptID string, locationID string, increments map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// GoodsReceiptRepositoryFacade combines all goods receipt repository interfaces.
type GoodsReceiptRepositoryFacade interface {
	GoodsReceiptReader
	GoodsReceiptWriter
}
