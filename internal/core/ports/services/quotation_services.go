package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// QuotationReaderSvc defines read operations for quotation data
type QuotationReaderSvc interface {
	// GetQuotationByID retrieves a specific quotation by its ID.
	GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves a paginated list of quotations.
	ListQuotations(ctx context.Context, params dto.ListQuotationsParams) (*dto.ListQuotationsResponse, error)
}

// QuotationWriterSvc defines write operations for quotation data
type QuotationWriterSvc interface {
	// CreateQuotation persists a new draft quotation. Totals are computed
	// server-side; client-supplied totals are cross-checked and a mismatch
	// is rejected.
	CreateQuotation(ctx context.Context, actor domain.Actor, req dto.SaveQuotationRequest) (*domain.Quotation, error)

	// UpdateQuotation replaces a draft quotation's details and recomputes
	// totals. Non-draft quotations are immutable.
	UpdateQuotation(ctx context.Context, actor domain.Actor, quotationID string, req dto.SaveQuotationRequest) (*domain.Quotation, error)

	// TransitionQuotation applies a workflow action (send, approve, reject,
	// expire) to a quotation.
	TransitionQuotation(ctx context.Context, actor domain.Actor, quotationID string, action string) (*domain.Quotation, error)

	// ConvertQuotationToInvoice creates an invoice from an approved
	// quotation. The operation is idempotent: a second conversion attempt
	// fails without creating another invoice.
	ConvertQuotationToInvoice(ctx context.Context, actor domain.Actor, quotationID string, req dto.ConvertQuotationRequest) (*domain.Invoice, error)
}

// QuotationSvcFacade combines all quotation-related service interfaces
type QuotationSvcFacade interface {
	QuotationReaderSvc
	QuotationWriterSvc
}
