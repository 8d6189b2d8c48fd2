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
	"github.com/shopspring/decimal"
)

type PgxGoodsReceiptRepository struct {
	BaseRepository
}

// newPgxGoodsReceiptRepository creates a new repository for goods receipt data.
func newPgxGoodsReceiptRepository(pool *pgxpool.Pool) portsrepo.GoodsReceiptRepositoryFacade {
	return &PgxGoodsReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxGoodsReceiptRepository implements portsrepo.GoodsReceiptRepositoryFacade
var _ portsrepo.GoodsReceiptRepositoryFacade = (*PgxGoodsReceiptRepository)(nil)

const goodsReceiptColumns = `goods_receipt_id, number, supplier_id, purchase_order_id, location_id, receipt_date, status, stock_updated, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanGoodsReceipt(row pgx.Row) (models.GoodsReceipt, error) {
	var m models.GoodsReceipt
	err := row.Scan(
		&m.GoodsReceiptID,
		&m.Number,
		&m.SupplierID,
		&m.PurchaseOrderID,
		&m.LocationID,
		&m.ReceiptDate,
		&m.Status,
		&m.StockUpdated,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// insertGoodsReceiptItemsTx batch-inserts receipt line rows.
func insertGoodsReceiptItemsTx(ctx context.Context, tx pgx.Tx, rows []models.GoodsReceiptItem) error {
	if len(rows) == 0 {
		return nil
	}
	query := `
		INSERT INTO goods_receipt_items (goods_receipt_item_id, goods_receipt_id, product_id, description, ordered_quantity, received_quantity, accepted_quantity, unit_cost, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query,
			row.GoodsReceiptItemID,
			row.GoodsReceiptID,
			row.ProductID,
			row.Description,
			row.OrderedQuantity,
			row.ReceivedQuantity,
			row.AcceptedQuantity,
			row.UnitCost,
			row.Position,
		)
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range rows {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert goods receipt items", err)
		}
	}
	return nil
}

// insertGoodsReceiptTx inserts a goods receipt header with its items inside
// an existing transaction. Shared with the purchase order conversion.
func insertGoodsReceiptTx(ctx context.Context, tx pgx.Tx, receipt domain.GoodsReceipt) error {
	m := mapping.ToModelGoodsReceipt(receipt)
	query := `
		INSERT INTO goods_receipts (` + goodsReceiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.GoodsReceiptID, m.Number, m.SupplierID, m.PurchaseOrderID, m.LocationID, m.ReceiptDate,
		m.Status, m.StockUpdated, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert goods receipt "+m.GoodsReceiptID, err)
	}
	items := mapping.ToModelGoodsReceiptItems(receipt.GoodsReceiptID, receipt.Items)
	return insertGoodsReceiptItemsTx(ctx, tx, items)
}

// loadGoodsReceiptItems reads the item rows of a receipt ordered by position.
func loadGoodsReceiptItems(ctx context.Context, q dbQuerier, goodsReceiptID string) ([]models.GoodsReceiptItem, error) {
	query := `
		SELECT goods_receipt_item_id, goods_receipt_id, product_id, description, ordered_quantity, received_quantity, accepted_quantity, unit_cost, position
		FROM goods_receipt_items
		WHERE goods_receipt_id = $1
		ORDER BY position ASC;
	`
	rows, err := q.Query(ctx, query, goodsReceiptID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goods receipt items", err)
	}
	defer rows.Close()

	var items []models.GoodsReceiptItem
	for rows.Next() {
		var item models.GoodsReceiptItem
		if err := rows.Scan(
			&item.GoodsReceiptItemID,
			&item.GoodsReceiptID,
			&item.ProductID,
			&item.Description,
			&item.OrderedQuantity,
			&item.ReceivedQuantity,
			&item.AcceptedQuantity,
			&item.UnitCost,
			&item.Position,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan goods receipt item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating goods receipt item rows", err)
	}
	return items, nil
}

// SaveGoodsReceipt persists a new goods receipt with its items in one
// transaction.
func (r *PgxGoodsReceiptRepository) SaveGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertGoodsReceiptTx(ctx, tx, receipt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindGoodsReceiptByID retrieves a goods receipt with its items.
func (r *PgxGoodsReceiptRepository) FindGoodsReceiptByID(ctx context.Context, goodsReceiptID string) (*domain.GoodsReceipt, error) {
	query := `SELECT ` + goodsReceiptColumns + ` FROM goods_receipts WHERE goods_receipt_id = $1;`
	m, err := scanGoodsReceipt(r.Pool.QueryRow(ctx, query, goodsReceiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query goods receipt "+goodsReceiptID, err)
	}

	items, err := loadGoodsReceiptItems(ctx, r.Pool, goodsReceiptID)
	if err != nil {
		return nil, err
	}

	receipt := mapping.ToDomainGoodsReceipt(m, items)
	return &receipt, nil
}

// ListGoodsReceipts retrieves receipt headers filtered by optional supplier
// and status, newest first, using keyset pagination. Items are not populated.
func (r *PgxGoodsReceiptRepository) ListGoodsReceipts(ctx context.Context, supplierID string, status string, limit int, nextToken *string) ([]domain.GoodsReceipt, *string, error) {
	query := `SELECT ` + goodsReceiptColumns + ` FROM goods_receipts WHERE 1=1`
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
		query += ` AND (created_at, goods_receipt_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, goods_receipt_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query goods receipts", err)
	}
	defer rows.Close()

	var receipts []domain.GoodsReceipt
	for rows.Next() {
		m, err := scanGoodsReceipt(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan goods receipt row", err)
		}
		receipts = append(receipts, mapping.ToDomainGoodsReceipt(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating goods receipt rows", err)
	}

	var newNextToken *string
	if len(receipts) > limit {
		receipts = receipts[:limit]
		last := receipts[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.GoodsReceiptID)
		newNextToken = &token
	}
	return receipts, newNextToken, nil
}

// UpdateGoodsReceipt replaces a receipt's header and items in one transaction.
func (r *PgxGoodsReceiptRepository) UpdateGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelGoodsReceipt(receipt)
	query := `
		UPDATE goods_receipts
		SET supplier_id = $2, location_id = $3, receipt_date = $4, status = $5, stock_updated = $6, notes = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE goods_receipt_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.GoodsReceiptID, m.SupplierID, m.LocationID, m.ReceiptDate, m.Status, m.StockUpdated, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update goods receipt "+m.GoodsReceiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM goods_receipt_items WHERE goods_receipt_id = $1;`, receipt.GoodsReceiptID); err != nil {
		return apperrors.NewAppError(500, "failed to delete goods receipt items", err)
	}
	items := mapping.ToModelGoodsReceiptItems(receipt.GoodsReceiptID, receipt.Items)
	if err := insertGoodsReceiptItemsTx(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateGoodsReceiptStatus sets the status of a goods receipt.
func (r *PgxGoodsReceiptRepository) UpdateGoodsReceiptStatus(ctx context.Context, goodsReceiptID string, status domain.GoodsReceiptStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE goods_receipts
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE goods_receipt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, goodsReceiptID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of goods receipt "+goodsReceiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CompleteWithStock atomically sets the receipt to completed, flips the
// stock_updated flag and increments stock levels by the accepted quantities.
// The flag is re-checked under a row lock inside the transaction, so the
// increment can never be applied twice.
func (r *PgxGoodsReceiptRepository) CompleteWithStock(ctx context.Context, goodsReceiptID string, locationID string, increments map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var stockUpdated bool
	lockQuery := `SELECT stock_updated FROM goods_receipts WHERE goods_receipt_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, goodsReceiptID).Scan(&stockUpdated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock goods receipt "+goodsReceiptID, err)
	}
	if stockUpdated {
		return apperrors.ErrPrecondition
	}

	stockQuery := `
		INSERT INTO stock_levels (product_id, location_id, quantity, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $4, $5)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = stock_levels.quantity + EXCLUDED.quantity, last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	for productID, quantity := range increments {
		if _, err := tx.Exec(ctx, stockQuery, productID, locationID, quantity, updatedAt, updatedBy); err != nil {
			return apperrors.NewAppError(500, "failed to increment stock for product "+productID, err)
		}
	}

	completeQuery := `
		UPDATE goods_receipts
		SET status = $2, stock_updated = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE goods_receipt_id = $1;
	`
	_, err = tx.Exec(ctx, completeQuery, goodsReceiptID, string(domain.GoodsReceiptCompleted), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to complete goods receipt "+goodsReceiptID, err)
	}
	return r.Commit(ctx, tx)
}
