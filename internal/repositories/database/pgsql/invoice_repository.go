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

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, number, customer_id, source_quotation_id, invoice_date, due_date, overall_discount_percent, subtotal, discount_amount, tax_amount, total, paid_amount, balance_amount, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.Number,
		&m.CustomerID,
		&m.SourceQuotationID,
		&m.InvoiceDate,
		&m.DueDate,
		&m.OverallDiscountPercent,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.Total,
		&m.PaidAmount,
		&m.BalanceAmount,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// insertInvoiceTx inserts an invoice header with its items and taxes inside
// an existing transaction. Shared with the quotation conversion.
func insertInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, query,
		m.InvoiceID, m.Number, m.CustomerID, m.SourceQuotationID, m.InvoiceDate, m.DueDate,
		m.OverallDiscountPercent, m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.PaidAmount, m.BalanceAmount, m.Status, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	items := mapping.ToModelDocumentItems(invoice.InvoiceID, invoice.Items)
	if err := insertDocumentItemsTx(ctx, tx, "invoice_items", "invoice_id", items); err != nil {
		return err
	}
	taxes := mapping.ToModelDocumentTaxes(invoice.InvoiceID, invoice.AppliedTaxes)
	return insertDocumentTaxesTx(ctx, tx, "invoice_taxes", "invoice_id", taxes)
}

// SaveInvoice persists a new invoice with its items and applied taxes in one
// transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertInvoiceTx(ctx, tx, invoice); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice with its items and applied taxes.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query invoice "+invoiceID, err)
	}

	items, err := loadDocumentItems(ctx, r.Pool, "invoice_items", "invoice_id", invoiceID)
	if err != nil {
		return nil, err
	}
	taxes, err := loadDocumentTaxes(ctx, r.Pool, "invoice_taxes", "invoice_id", invoiceID)
	if err != nil {
		return nil, err
	}

	invoice := mapping.ToDomainInvoice(m, items, taxes)
	return &invoice, nil
}

// ListInvoices retrieves invoice headers filtered by optional customer and
// status, newest first, using keyset pagination. The OVERDUE filter is
// derived: unpaid, uncancelled invoices past their due date.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, customerID string, status string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := []any{}
	argIdx := 1

	if customerID != "" {
		query += ` AND customer_id = $` + strconv.Itoa(argIdx)
		args = append(args, customerID)
		argIdx++
	}
	if status == string(domain.InvoiceOverdue) {
		query += ` AND status IN ('SENT', 'PARTIAL') AND due_date IS NOT NULL AND due_date < $` + strconv.Itoa(argIdx)
		args = append(args, time.Now().UTC())
		argIdx++
	} else if status != "" {
		query += ` AND status = $` + strconv.Itoa(argIdx)
		args = append(args, status)
		argIdx++
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` AND (created_at, invoice_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, invoice_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m, nil, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}

	var newNextToken *string
	if len(invoices) > limit {
		invoices = invoices[:limit]
		last := invoices[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.InvoiceID)
		newNextToken = &token
	}
	return invoices, newNextToken, nil
}

// UpdateInvoice replaces a draft invoice's header, items and taxes in one
// transaction.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET customer_id = $2, invoice_date = $3, due_date = $4, overall_discount_percent = $5,
			subtotal = $6, discount_amount = $7, tax_amount = $8, total = $9,
			paid_amount = $10, balance_amount = $11, status = $12, notes = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.InvoiceID, m.CustomerID, m.InvoiceDate, m.DueDate, m.OverallDiscountPercent,
		m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.PaidAmount, m.BalanceAmount, m.Status, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := deleteDocumentRowsTx(ctx, tx, "invoice_items", "invoice_id", invoice.InvoiceID); err != nil {
		return err
	}
	if err := deleteDocumentRowsTx(ctx, tx, "invoice_taxes", "invoice_id", invoice.InvoiceID); err != nil {
		return err
	}
	items := mapping.ToModelDocumentItems(invoice.InvoiceID, invoice.Items)
	if err := insertDocumentItemsTx(ctx, tx, "invoice_items", "invoice_id", items); err != nil {
		return err
	}
	taxes := mapping.ToModelDocumentTaxes(invoice.InvoiceID, invoice.AppliedTaxes)
	if err := insertDocumentTaxesTx(ctx, tx, "invoice_taxes", "invoice_id", taxes); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateInvoiceStatus sets the status of an invoice.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of invoice "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyPayment atomically inserts the payment row and updates the invoice's
// paid amount, balance and status. The invoice row is locked so concurrent
// payments serialize and each sees the balance left by the previous one.
func (r *PgxInvoiceRepository) ApplyPayment(ctx context.Context, payment domain.Payment, newPaid, newBalance decimal.Decimal, newStatus domain.InvoiceStatus, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var currentBalance decimal.Decimal
	lockQuery := `SELECT balance_amount FROM invoices WHERE invoice_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, payment.InvoiceID).Scan(&currentBalance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock invoice "+payment.InvoiceID, err)
	}
	if payment.Amount.GreaterThan(currentBalance) {
		return apperrors.ErrValidation
	}

	m := mapping.ToModelPayment(payment)
	insertQuery := `
		INSERT INTO payments (payment_id, number, invoice_id, amount, method, payment_date, reference, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID, m.Number, m.InvoiceID, m.Amount, m.Method, m.PaymentDate, m.Reference, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	updateQuery := `
		UPDATE invoices
		SET paid_amount = $2, balance_amount = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE invoice_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		payment.InvoiceID, newPaid, newBalance, string(newStatus), updatedAt, payment.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+payment.InvoiceID+" after payment", err)
	}
	return r.Commit(ctx, tx)
}
