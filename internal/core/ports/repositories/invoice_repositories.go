package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its items and applied taxes.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices filtered by optional customer and
	// status, newest first, with token pagination. Items are not populated.
	ListInvoices(ctx context.Context, customerID string, status string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice with its items and applied taxes in
	// one transaction.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice replaces a draft invoice's header, items and taxes.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceStatus sets the status of an invoice.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error

	// ApplyPayment atomically inserts the payment row and updates the
	// invoice's paid amount, balance and status.
	ApplyPayment(ctx context.Context, payment domain.Payment, newPaid, newBalance decimal.Decimal, newStatus domain.InvoiceStatus, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// PaymentRepositoryFacade defines read operations for payments. Payment
// writes go through InvoiceWriter.ApplyPayment so paid/balance amounts and
// the payment row always change together.
type PaymentRepositoryFacade interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error)
}
