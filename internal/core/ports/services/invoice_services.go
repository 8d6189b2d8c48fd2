package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its ID.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices. A status filter
	// of OVERDUE matches unpaid invoices past their due date.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new draft invoice. Totals are computed
	// server-side; client-supplied totals are cross-checked and a mismatch
	// is rejected.
	CreateInvoice(ctx context.Context, actor domain.Actor, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice replaces a draft invoice's details and recomputes
	// totals. Non-draft invoices are immutable.
	UpdateInvoice(ctx context.Context, actor domain.Actor, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error)

	// TransitionInvoice applies a workflow action (send, cancel) to an
	// invoice. Paid invoices cannot be cancelled.
	TransitionInvoice(ctx context.Context, actor domain.Actor, invoiceID string, action string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByInvoice retrieves all payments recorded against an invoice.
	ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// RecordPayment records money received against a sent or partially paid
	// invoice and moves the invoice to PARTIAL or PAID. Overpayment is
	// rejected.
	RecordPayment(ctx context.Context, actor domain.Actor, invoiceID string, req dto.RecordPaymentRequest) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
