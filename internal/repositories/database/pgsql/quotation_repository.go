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

type PgxQuotationRepository struct {
	BaseRepository
}

// newPgxQuotationRepository creates a new repository for quotation data.
func newPgxQuotationRepository(pool *pgxpool.Pool) portsrepo.QuotationRepositoryFacade {
	return &PgxQuotationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxQuotationRepository implements portsrepo.QuotationRepositoryFacade
var _ portsrepo.QuotationRepositoryFacade = (*PgxQuotationRepository)(nil)

const quotationColumns = `quotation_id, number, customer_id, quotation_date, expiry_date, overall_discount_percent, subtotal, discount_amount, tax_amount, total, status, converted_to_invoice, invoice_id, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanQuotation(row pgx.Row) (models.Quotation, error) {
	var m models.Quotation
	err := row.Scan(
		&m.QuotationID,
		&m.Number,
		&m.CustomerID,
		&m.QuotationDate,
		&m.ExpiryDate,
		&m.OverallDiscountPercent,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.Total,
		&m.Status,
		&m.ConvertedToInvoice,
		&m.InvoiceID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// insertQuotationTx inserts a quotation header with its items and taxes
// inside an existing transaction.
func insertQuotationTx(ctx context.Context, tx pgx.Tx, quotation domain.Quotation) error {
	m := mapping.ToModelQuotation(quotation)
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, query,
		m.QuotationID, m.Number, m.CustomerID, m.QuotationDate, m.ExpiryDate,
		m.OverallDiscountPercent, m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.Status, m.ConvertedToInvoice, m.InvoiceID, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert quotation "+m.QuotationID, err)
	}

	items := mapping.ToModelDocumentItems(quotation.QuotationID, quotation.Items)
	if err := insertDocumentItemsTx(ctx, tx, "quotation_items", "quotation_id", items); err != nil {
		return err
	}
	taxes := mapping.ToModelDocumentTaxes(quotation.QuotationID, quotation.AppliedTaxes)
	return insertDocumentTaxesTx(ctx, tx, "quotation_taxes", "quotation_id", taxes)
}

// SaveQuotation persists a new quotation with its items and applied taxes in
// one transaction.
func (r *PgxQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertQuotationTx(ctx, tx, quotation); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindQuotationByID retrieves a quotation with its items and applied taxes.
func (r *PgxQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE quotation_id = $1;`
	m, err := scanQuotation(r.Pool.QueryRow(ctx, query, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query quotation "+quotationID, err)
	}

	items, err := loadDocumentItems(ctx, r.Pool, "quotation_items", "quotation_id", quotationID)
	if err != nil {
		return nil, err
	}
	taxes, err := loadDocumentTaxes(ctx, r.Pool, "quotation_taxes", "quotation_id", quotationID)
	if err != nil {
		return nil, err
	}

	quotation := mapping.ToDomainQuotation(m, items, taxes)
	return &quotation, nil
}

// ListQuotations retrieves quotation headers filtered by optional customer
// and status, newest first, using keyset pagination. Items are not populated.
func (r *PgxQuotationRepository) ListQuotations(ctx context.Context, customerID string, status string, limit int, nextToken *string) ([]domain.Quotation, *string, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE 1=1`
	args := []any{}
	argIdx := 1

	if customerID != "" {
		query += ` AND customer_id = $` + strconv.Itoa(argIdx)
		args = append(args, customerID)
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
		query += ` AND (created_at, quotation_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, quotation_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query quotations", err)
	}
	defer rows.Close()

	var quotations []domain.Quotation
	for rows.Next() {
		m, err := scanQuotation(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan quotation row", err)
		}
		quotations = append(quotations, mapping.ToDomainQuotation(m, nil, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating quotation rows", err)
	}

	var newNextToken *string
	if len(quotations) > limit {
		quotations = quotations[:limit]
		last := quotations[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.QuotationID)
		newNextToken = &token
	}
	return quotations, newNextToken, nil
}

// UpdateQuotation replaces a draft quotation's header, items and taxes in one
// transaction.
func (r *PgxQuotationRepository) UpdateQuotation(ctx context.Context, quotation domain.Quotation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelQuotation(quotation)
	query := `
		UPDATE quotations
		SET customer_id = $2, quotation_date = $3, expiry_date = $4, overall_discount_percent = $5,
			subtotal = $6, discount_amount = $7, tax_amount = $8, total = $9,
			status = $10, converted_to_invoice = $11, invoice_id = $12, notes = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE quotation_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.QuotationID, m.CustomerID, m.QuotationDate, m.ExpiryDate, m.OverallDiscountPercent,
		m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.Status, m.ConvertedToInvoice, m.InvoiceID, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update quotation "+m.QuotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := deleteDocumentRowsTx(ctx, tx, "quotation_items", "quotation_id", quotation.QuotationID); err != nil {
		return err
	}
	if err := deleteDocumentRowsTx(ctx, tx, "quotation_taxes", "quotation_id", quotation.QuotationID); err != nil {
		return err
	}
	items := mapping.ToModelDocumentItems(quotation.QuotationID, quotation.Items)
	if err := insertDocumentItemsTx(ctx, tx, "quotation_items", "quotation_id", items); err != nil {
		return err
	}
	taxes := mapping.ToModelDocumentTaxes(quotation.QuotationID, quotation.AppliedTaxes)
	if err := insertDocumentTaxesTx(ctx, tx, "quotation_taxes", "quotation_id", taxes); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateQuotationStatus sets the status of a quotation.
func (r *PgxQuotationRepository) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE quotations
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE quotation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, quotationID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of quotation "+quotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ConvertToInvoice atomically inserts the invoice and marks the quotation
// converted. The converted flag is re-checked under a row lock inside the
// transaction, so a quotation can never produce two invoices.
func (r *PgxQuotationRepository) ConvertToInvoice(ctx context.Context, quotationID string, invoice domain.Invoice, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var converted bool
	lockQuery := `SELECT converted_to_invoice FROM quotations WHERE quotation_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, quotationID).Scan(&converted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock quotation "+quotationID, err)
	}
	if converted {
		return apperrors.ErrPrecondition
	}

	if err := insertInvoiceTx(ctx, tx, invoice); err != nil {
		return err
	}

	markQuery := `
		UPDATE quotations
		SET status = $2, converted_to_invoice = TRUE, invoice_id = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE quotation_id = $1;
	`
	_, err = tx.Exec(ctx, markQuery, quotationID, string(domain.QuotationConverted), invoice.InvoiceID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark quotation "+quotationID+" converted", err)
	}
	return r.Commit(ctx, tx)
}
