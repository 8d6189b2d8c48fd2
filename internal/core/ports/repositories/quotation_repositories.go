package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// QuotationReader defines read operations for quotation data.
type QuotationReader interface {
	// FindQuotationByID retrieves a quotation with its items and applied taxes.
	FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves quotations filtered by optional customer and
	// status, newest first, with token pagination. Items are not populated.
	ListQuotations(ctx context.Context, customerID string, status string, limit int, nextToken *string) ([]domain.Quotation, *string, error)
}

// QuotationWriter defines write operations for quotation data.
type QuotationWriter interface {
	// SaveQuotation persists a new quotation with its items and applied taxes
	// in one transaction.
	SaveQuotation(ctx context.Context, quotation domain.Quotation) error

	// UpdateQuotation replaces a draft quotation's header, items and taxes.
	UpdateQuotation(ctx context.Context, quotation domain.Quotation) error

	// UpdateQuotationStatus sets the status of a quotation.
	UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updatedBy string, updatedAt time.Time) error

	// ConvertToInvoice atomically inserts the invoice and marks the quotation
	// converted. The flag check happens inside the transaction: a quotation
	// already flagged converted causes apperrors.ErrPrecondition and no
	// invoice row.
	ConvertToInvoice(ctx context.Context, quotationID string, invoice domain.Invoice, updatedBy string, updatedAt time.Time) error
}

// QuotationRepositoryFacade combines all quotation repository interfaces.
type QuotationRepositoryFacade interface {
	QuotationReader
	QuotationWriter
}
