package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/core/workflow"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/bizgrid/erp_backend/internal/utils/totals"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotEditable is returned when a document past draft receives an edit.
var ErrNotEditable = fmt.Errorf("%w: only draft documents can be edited", apperrors.ErrPrecondition)

type QuotationService struct {
	quotationRepo portsrepo.QuotationRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
	taxRateRepo   portsrepo.TaxRateRepositoryFacade
	numbering     portssvc.NumberingSvc
}

func NewQuotationService(
	quotationRepo portsrepo.QuotationRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	taxRateRepo portsrepo.TaxRateRepositoryFacade,
	numbering portssvc.NumberingSvc,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		taxRateRepo:   taxRateRepo,
		numbering:     numbering,
	}
}

// buildQuotationBody validates the request and assembles items, tax
// snapshots and recomputed totals. Shared by create and update.
func (s *QuotationService) buildQuotationBody(ctx context.Context, req dto.SaveQuotationRequest) ([]domain.LineItem, []domain.AppliedTax, totals.Result, error) {
	var zero totals.Result

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, zero, fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, nil, zero, err
	}

	items, err := buildLineItems(req.Items)
	if err != nil {
		return nil, nil, zero, err
	}
	if err := validateOverallDiscount(req.OverallDiscountPercent); err != nil {
		return nil, nil, zero, err
	}
	taxes, err := resolveAppliedTaxes(ctx, s.taxRateRepo, req.TaxRateIDs)
	if err != nil {
		return nil, nil, zero, err
	}

	result := totals.Calculate(items, req.OverallDiscountPercent, taxes)
	if err := verifyClientTotals(result, req.Totals); err != nil {
		return nil, nil, zero, err
	}
	return items, taxes, result, nil
}

func (s *QuotationService) CreateQuotation(ctx context.Context, actor domain.Actor, req dto.SaveQuotationRequest) (*domain.Quotation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	items, taxes, result, err := s.buildQuotationBody(ctx, req)
	if err != nil {
		return nil, err
	}

	number, err := s.numbering.NextNumber(ctx, domain.DocTypeQuotation)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quotation := domain.Quotation{
		QuotationID:            uuid.NewString(),
		Number:                 number,
		CustomerID:             req.CustomerID,
		QuotationDate:          req.QuotationDate,
		ExpiryDate:             req.ExpiryDate,
		Items:                  items,
		OverallDiscountPercent: req.OverallDiscountPercent,
		AppliedTaxes:           taxes,
		TotalsSnapshot:         result.Snapshot(),
		Status:                 domain.QuotationDraft,
		Notes:                  req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.quotationRepo.SaveQuotation(ctx, quotation); err != nil {
		logger.Error("Failed to save quotation in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Quotation created successfully",
		slog.String("quotation_id", quotation.QuotationID),
		slog.String("number", quotation.Number))
	return &quotation, nil
}

func (s *QuotationService) GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find quotation by ID", slog.String("error", err.Error()), slog.String("quotation_id", quotationID))
		}
		return nil, err
	}
	return quotation, nil
}

func (s *QuotationService) ListQuotations(ctx context.Context, params dto.ListQuotationsParams) (*dto.ListQuotationsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if params.Status != "" && !domain.QuotationStatus(params.Status).IsValid() {
		return nil, fmt.Errorf("%w: unknown quotation status %s", apperrors.ErrValidation, params.Status)
	}

	quotations, nextToken, err := s.quotationRepo.ListQuotations(ctx, params.CustomerID, params.Status, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list quotations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	resp := dto.ToListQuotationsResponse(quotations, nextToken)
	return &resp, nil
}

func (s *QuotationService) UpdateQuotation(ctx context.Context, actor domain.Actor, quotationID string, req dto.SaveQuotationRequest) (*domain.Quotation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if !quotation.IsEditable() {
		return nil, fmt.Errorf("%w: quotation %s is %s", ErrNotEditable, quotation.Number, quotation.Status)
	}

	items, taxes, result, err := s.buildQuotationBody(ctx, req)
	if err != nil {
		return nil, err
	}

	quotation.CustomerID = req.CustomerID
	quotation.QuotationDate = req.QuotationDate
	quotation.ExpiryDate = req.ExpiryDate
	quotation.Items = items
	quotation.OverallDiscountPercent = req.OverallDiscountPercent
	quotation.AppliedTaxes = taxes
	quotation.TotalsSnapshot = result.Snapshot()
	quotation.Notes = req.Notes
	quotation.LastUpdatedAt = time.Now()
	quotation.LastUpdatedBy = actor.UserID

	if err := s.quotationRepo.UpdateQuotation(ctx, *quotation); err != nil {
		logger.Error("Failed to update quotation", slog.String("error", err.Error()), slog.String("quotation_id", quotationID))
		return nil, err
	}

	logger.Info("Quotation updated successfully", slog.String("quotation_id", quotationID))
	return quotation, nil
}

// TransitionQuotation applies a send/approve/reject/expire action. The
// convert action has dedicated handling in ConvertQuotationToInvoice.
func (s *QuotationService) TransitionQuotation(ctx context.Context, actor domain.Actor, quotationID string, action string) (*domain.Quotation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if workflow.Action(action) == workflow.QuotationConvert {
		return nil, fmt.Errorf("%w: use the convert endpoint to convert a quotation", apperrors.ErrValidation)
	}

	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.Quotation.Next(string(quotation.Status), workflow.Action(action), actor.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newStatus := domain.QuotationStatus(next)
	if err := s.quotationRepo.UpdateQuotationStatus(ctx, quotationID, newStatus, actor.UserID, now); err != nil {
		logger.Error("Failed to update quotation status",
			slog.String("error", err.Error()),
			slog.String("quotation_id", quotationID),
			slog.String("action", action))
		return nil, err
	}

	quotation.Status = newStatus
	quotation.LastUpdatedAt = now
	quotation.LastUpdatedBy = actor.UserID
	logger.Info("Quotation transitioned",
		slog.String("quotation_id", quotationID),
		slog.String("action", action),
		slog.String("status", next))
	return quotation, nil
}

// ConvertQuotationToInvoice copies the approved quotation's lines, tax
// snapshots and totals onto a fresh invoice. The invoice insert and the
// conversion flag flip share one transaction, so a concurrent or repeated
// convert cannot produce a second invoice.
func (s *QuotationService) ConvertQuotationToInvoice(ctx context.Context, actor domain.Actor, quotationID string, req dto.ConvertQuotationRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if _, err := workflow.Quotation.Next(string(quotation.Status), workflow.QuotationConvert, actor.Role); err != nil {
		return nil, err
	}
	if quotation.ConvertedToInvoice {
		return nil, fmt.Errorf("%w: quotation %s was already converted to invoice", apperrors.ErrPrecondition, quotation.Number)
	}

	number, err := s.numbering.NextNumber(ctx, domain.DocTypeInvoice)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoiceDate := req.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = now
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = invoiceDate.AddDate(0, 0, 30)
	}

	// Items get fresh IDs; the commercial content is copied verbatim.
	items := make([]domain.LineItem, len(quotation.Items))
	for i, item := range quotation.Items {
		item.LineItemID = uuid.NewString()
		items[i] = item
	}

	invoice := domain.Invoice{
		InvoiceID:              uuid.NewString(),
		Number:                 number,
		CustomerID:             quotation.CustomerID,
		SourceQuotationID:      quotation.QuotationID,
		InvoiceDate:            invoiceDate,
		DueDate:                dueDate,
		Items:                  items,
		OverallDiscountPercent: quotation.OverallDiscountPercent,
		AppliedTaxes:           quotation.AppliedTaxes,
		TotalsSnapshot:         quotation.TotalsSnapshot,
		PaidAmount:             decimal.Zero,
		BalanceAmount:          quotation.Total,
		Status:                 domain.InvoiceDraft,
		Notes:                  quotation.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.quotationRepo.ConvertToInvoice(ctx, quotationID, invoice, actor.UserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrPrecondition) {
			logger.Error("Failed to convert quotation",
				slog.String("error", err.Error()),
				slog.String("quotation_id", quotationID))
		}
		return nil, err
	}

	logger.Info("Quotation converted to invoice",
		slog.String("quotation_id", quotationID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.Number))
	return &invoice, nil
}
