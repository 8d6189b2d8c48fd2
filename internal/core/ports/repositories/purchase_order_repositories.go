package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// PurchaseOrderReader defines read operations for purchase order data.
type PurchaseOrderReader interface {
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, supplierID string, status string, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error)
}

// PurchaseOrderWriter defines write operations for purchase order data.
type PurchaseOrderWriter interface {
	SavePurchaseOrder(ctx context.Context, purchaseOrder domain.PurchaseOrder) error
	UpdatePurchaseOrder(ctx context.Context, purchaseOrder domain.PurchaseOrder) error
	UpdatePurchaseOrderStatus(ctx context.Context, purchaseOrderID string, status domain.PurchaseOrderStatus, updatedBy string, updatedAt time.Time) error

	// ConvertToGoodsReceipt atomically inserts the goods receipt and marks
	// the purchase order converted. A purchase order already flagged
	// converted causes apperrors.ErrPrecondition and no receipt row, so only
	// one GRN can ever exist per order.
	ConvertToGoodsReceipt(ctx context.Context, purchaseOrderID string, receipt domain.GoodsReceipt, updatedBy string, updatedAt time.Time) error
}

// PurchaseOrderRepositoryFacade combines all purchase order repository interfaces.
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}
