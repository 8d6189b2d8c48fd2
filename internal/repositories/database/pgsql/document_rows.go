package pgsql

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/models"
	"github.com/jackc/pgx/v5"
)

// dbQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so the row
// helpers below work inside and outside transactions.
type dbQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// insertDocumentItemsTx batch-inserts line item rows into the given items
// table. Quotations, invoices and purchase orders share the row shape; only
// the table and the FK column name differ.
func insertDocumentItemsTx(ctx context.Context, tx pgx.Tx, table, fkColumn string, rows []models.DocumentItem) error {
	if len(rows) == 0 {
		return nil
	}
	query := `
		INSERT INTO ` + table + ` (line_item_id, ` + fkColumn + `, product_id, description, quantity, unit_price, discount_percent, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query,
			row.LineItemID,
			row.DocumentID,
			row.ProductID,
			row.Description,
			row.Quantity,
			row.UnitPrice,
			row.DiscountPercent,
			row.Position,
		)
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range rows {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert line items into "+table, err)
		}
	}
	return nil
}

// insertDocumentTaxesTx batch-inserts applied tax snapshot rows.
func insertDocumentTaxesTx(ctx context.Context, tx pgx.Tx, table, fkColumn string, rows []models.DocumentTax) error {
	if len(rows) == 0 {
		return nil
	}
	query := `
		INSERT INTO ` + table + ` (` + fkColumn + `, tax_rate_id, name, value, position)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query,
			row.DocumentID,
			row.TaxRateID,
			row.Name,
			row.Value,
			row.Position,
		)
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range rows {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert applied taxes into "+table, err)
		}
	}
	return nil
}

// deleteDocumentRowsTx removes all child rows of a document. Used by updates,
// which replace items and taxes wholesale while the document is in draft.
func deleteDocumentRowsTx(ctx context.Context, tx pgx.Tx, table, fkColumn, documentID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE `+fkColumn+` = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete rows from "+table, err)
	}
	return nil
}

// loadDocumentItems reads the line item rows of a document ordered by position.
func loadDocumentItems(ctx context.Context, q dbQuerier, table, fkColumn, documentID string) ([]models.DocumentItem, error) {
	query := `
		SELECT line_item_id, ` + fkColumn + `, product_id, description, quantity, unit_price, discount_percent, position
		FROM ` + table + `
		WHERE ` + fkColumn + ` = $1
		ORDER BY position ASC;
	`
	rows, err := q.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items from "+table, err)
	}
	defer rows.Close()

	var items []models.DocumentItem
	for rows.Next() {
		var item models.DocumentItem
		if err := rows.Scan(
			&item.LineItemID,
			&item.DocumentID,
			&item.ProductID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.DiscountPercent,
			&item.Position,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row from "+table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows from "+table, err)
	}
	return items, nil
}

// loadDocumentTaxes reads the applied tax rows of a document ordered by position.
func loadDocumentTaxes(ctx context.Context, q dbQuerier, table, fkColumn, documentID string) ([]models.DocumentTax, error) {
	query := `
		SELECT ` + fkColumn + `, tax_rate_id, name, value, position
		FROM ` + table + `
		WHERE ` + fkColumn + ` = $1
		ORDER BY position ASC;
	`
	rows, err := q.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query applied taxes from "+table, err)
	}
	defer rows.Close()

	var taxes []models.DocumentTax
	for rows.Next() {
		var tax models.DocumentTax
		if err := rows.Scan(
			&tax.DocumentID,
			&tax.TaxRateID,
			&tax.Name,
			&tax.Value,
			&tax.Position,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan applied tax row from "+table, err)
		}
		taxes = append(taxes, tax)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating applied tax rows from "+table, err)
	}
	return taxes, nil
}
