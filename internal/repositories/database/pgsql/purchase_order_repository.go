package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/models"
	"github.com/bizgrid/erp_backend/internal/utils/mapping"
	"github.com/bizgrid/erp_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

// newPgxPurchaseOrderRepository creates a new repository for purchase order data.
func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepositoryFacade {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPurchaseOrderRepository implements portsrepo.PurchaseOrderRepositoryFacade
var _ portsrepo.PurchaseOrderRepositoryFacade = (*PgxPurchaseOrderRepository)(nil)

const purchaseOrderColumns = `purchase_order_id, number, supplier_id, order_date, expected_date, location_id, overall_discount_percent, subtotal, discount_amount, tax_amount, total, status, converted_to_grn, goods_receipt_id, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchaseOrder(row pgx.Row) (models.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.PurchaseOrderID,
		&m.Number,
		&m.SupplierID,
		&m.OrderDate,
		&m.ExpectedDate,
		&m.LocationID,
		&m.OverallDiscountPercent,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.Total,
		&m.Status,
		&m.ConvertedToGRN,
		&m.GoodsReceiptID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePurchaseOrder persists a new purchase order with its items and applied
// taxes in one transaction.
func (r *PgxPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, purchaseOrder domain.PurchaseOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPurchaseOrder(purchaseOrder)
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, query,
		m.PurchaseOrderID, m.Number, m.SupplierID, m.OrderDate, m.ExpectedDate, m.LocationID,
		m.OverallDiscountPercent, m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.Status, m.ConvertedToGRN, m.GoodsReceiptID, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase order "+m.PurchaseOrderID, err)
	}

	items := mapping.ToModelDocumentItems(purchaseOrder.PurchaseOrderID, purchaseOrder.Items)
	if err := insertDocumentItemsTx(ctx, tx, "purchase_order_items", "purchase_order_id", items); err != nil {
		return err
	}
	taxes := mapping.ToModelDocumentTaxes(purchaseOrder.PurchaseOrderID, purchaseOrder.AppliedTaxes)
	if err := insertDocumentTaxesTx(ctx, tx, "purchase_order_taxes", "purchase_order_id", taxes); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindPurchaseOrderByID retrieves a purchase order with its items and applied taxes.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE purchase_order_id = $1;`
	m, err := scanPurchaseOrder(r.Pool.QueryRow(ctx, query, purchaseOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query purchase order "+purchaseOrderID, err)
	}

	items, err := loadDocumentItems(ctx, r.Pool, "purchase_order_items", "purchase_order_id", purchaseOrderID)
	if err != nil {
		return nil, err
	}
	taxes, err := loadDocumentTaxes(ctx, r.Pool, "purchase_order_taxes", "purchase_order_id", purchaseOrderID)
	if err != nil {
		return nil, err
	}

	purchaseOrder := mapping.ToDomainPurchaseOrder(m, items, taxes)
	return &purchaseOrder, nil
}

// ListPurchaseOrders retrieves purchase order headers filtered by optional
// supplier and status, newest first, using keyset pagination.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, supplierID string, status string, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE 1=1`
	args := []any{}
	argIdx := 1

	if supplierID != "" {
		query += ` AND supplier_id = $` + strconv.Itoa(argIdx)
		args = append(args, supplierID)
		argIdx++
	}
	if status != "" {
		query += ` AND status = $` + strconv.Itoa(argIdx)
		args = append(args, status)
		argIdx++
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` AND (created_at, purchase_order_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, purchase_order_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query purchase orders", err)
	}
	defer rows.Close()

	var purchaseOrders []domain.PurchaseOrder
	for rows.Next() {
		m, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan purchase order row", err)
		}
		purchaseOrders = append(purchaseOrders, mapping.ToDomainPurchaseOrder(m, nil, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating purchase order rows", err)
	}

	var newNextToken *string
	if len(purchaseOrders) > limit {
		purchaseOrders = purchaseOrders[:limit]
		last := purchaseOrders[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PurchaseOrderID)
		newNextToken = &token
	}
	return purchaseOrders, newNextToken, nil
}

// UpdatePurchaseOrder replaces a draft purchase order's header, items and
// taxes in one transaction.
func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, purchaseOrder domain.PurchaseOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPurchaseOrder(purchaseOrder)
	query := `
		UPDATE purchase_orders
		SET supplier_id = $2, order_date = $3, expected_date = $4, location_id = $5,
			overall_discount_percent = $6, subtotal = $7, discount_amount = $8, tax_amount = $9, total = $10,
			status = $11, converted_to_grn = $12, goods_receipt_id = $13, notes = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE purchase_order_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.PurchaseOrderID, m.SupplierID, m.OrderDate, m.ExpectedDate, m.LocationID,
		m.OverallDiscountPercent, m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.Status, m.ConvertedToGRN, m.GoodsReceiptID, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update purchase order "+m.PurchaseOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := deleteDocumentRowsTx(ctx, tx, "purchase_order_items", "purchase_order_id", purchaseOrder.PurchaseOrderID); err != nil {
		return err
	}
	if err := deleteDocumentRowsTx(ctx, tx, "purchase_order_taxes", "purchase_order_id", purchaseOrder.PurchaseOrderID); err != nil {
		return err
	}
	items := mapping.ToModelDocumentItems(purchaseOrder.PurchaseOrderID, purchaseOrder.Items)
	if err := insertDocumentItemsTx(ctx, tx, "purchase_order_items", "purchase_order_id", items); err != nil {
		return err
	}
	taxes := mapping.ToModelDocumentTaxes(purchaseOrder.PurchaseOrderID, purchaseOrder.AppliedTaxes)
	if err := insertDocumentTaxesTx(ctx, tx, "purchase_order_taxes", "purchase_order_id", taxes); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdatePurchaseOrderStatus sets the status of a purchase order.
func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrderStatus(ctx context.Context, purchaseOrderID string, status domain.PurchaseOrderStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE purchase_orders
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, purchaseOrderID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of purchase order "+purchaseOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ConvertToGoodsReceipt atomically inserts the goods receipt and marks the
// purchase order converted. The converted flag is re-checked under a row
// lock inside the transaction, and the unique index on
// goods_receipts.purchase_order_id backs it up, so only one receipt can ever
// exist per order.
func (r *PgxPurchaseOrderRepository) ConvertToGoodsReceipt(ctx context.Context, purchaseOrderID string, receipt domain.GoodsReceipt, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var converted bool
	lockQuery := `SELECT converted_to_grn FROM purchase_orders WHERE purchase_order_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, purchaseOrderID).Scan(&converted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock purchase order "+purchaseOrderID, err)
	}
	if converted {
		return apperrors.ErrPrecondition
	}

	if err := insertGoodsReceiptTx(ctx, tx, receipt); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrPrecondition
		}
		return err
	}

	markQuery := `
		UPDATE purchase_orders
		SET status = $2, converted_to_grn = TRUE, goods_receipt_id = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE purchase_order_id = $1;
	`
	_, err = tx.Exec(ctx, markQuery, purchaseOrderID, string(domain.PurchaseOrderConverted), receipt.GoodsReceiptID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark purchase order "+purchaseOrderID+" converted", err)
	}
	return r.Commit(ctx, tx)
}
