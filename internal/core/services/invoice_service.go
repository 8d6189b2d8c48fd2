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

type InvoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	taxRateRepo  portsrepo.TaxRateRepositoryFacade
	numbering    portssvc.NumberingSvc
}

func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	taxRateRepo portsrepo.TaxRateRepositoryFacade,
	numbering portssvc.NumberingSvc,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		taxRateRepo:  taxRateRepo,
		numbering:    numbering,
	}
}

func (s *InvoiceService) buildInvoiceBody(ctx context.Context, req dto.SaveInvoiceRequest) ([]domain.LineItem, []domain.AppliedTax, totals.Result, error) {
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

func (s *InvoiceService) CreateInvoice(ctx context.Context, actor domain.Actor, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	items, taxes, result, err := s.buildInvoiceBody(ctx, req)
	if err != nil {
		return nil, err
	}

	number, err := s.numbering.NextNumber(ctx, domain.DocTypeInvoice)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	snap := result.Snapshot()
	invoice := domain.Invoice{
		InvoiceID:              uuid.NewString(),
		Number:                 number,
		CustomerID:             req.CustomerID,
		InvoiceDate:            req.InvoiceDate,
		DueDate:                req.DueDate,
		Items:                  items,
		OverallDiscountPercent: req.OverallDiscountPercent,
		AppliedTaxes:           taxes,
		TotalsSnapshot:         snap,
		PaidAmount:             decimal.Zero,
		BalanceAmount:          snap.Total,
		Status:                 domain.InvoiceDraft,
		Notes:                  req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save invoice in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Invoice created successfully",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("number", invoice.Number))
	return &invoice, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find invoice by ID", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	// OVERDUE is accepted as a filter even though it is never stored; the
	// repository translates it into a due-date predicate.
	if params.Status != "" &&
		!domain.InvoiceStatus(params.Status).IsValid() &&
		domain.InvoiceStatus(params.Status) != domain.InvoiceOverdue {
		return nil, fmt.Errorf("%w: unknown invoice status %s", apperrors.ErrValidation, params.Status)
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, params.CustomerID, params.Status, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	resp := dto.ToListInvoicesResponse(invoices, time.Now(), nextToken)
	return &resp, nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, actor domain.Actor, invoiceID string, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.IsEditable() {
		return nil, fmt.Errorf("%w: invoice %s is %s", ErrNotEditable, invoice.Number, invoice.Status)
	}

	items, taxes, result, err := s.buildInvoiceBody(ctx, req)
	if err != nil {
		return nil, err
	}

	snap := result.Snapshot()
	invoice.CustomerID = req.CustomerID
	invoice.InvoiceDate = req.InvoiceDate
	invoice.DueDate = req.DueDate
	invoice.Items = items
	invoice.OverallDiscountPercent = req.OverallDiscountPercent
	invoice.AppliedTaxes = taxes
	invoice.TotalsSnapshot = snap
	invoice.BalanceAmount = snap.Total
	invoice.Notes = req.Notes
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = actor.UserID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		logger.Error("Failed to update invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	logger.Info("Invoice updated successfully", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *InvoiceService) TransitionInvoice(ctx context.Context, actor domain.Actor, invoiceID string, action string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.Invoice.Next(string(invoice.Status), workflow.Action(action), actor.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newStatus := domain.InvoiceStatus(next)
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, newStatus, actor.UserID, now); err != nil {
		logger.Error("Failed to update invoice status",
			slog.String("error", err.Error()),
			slog.String("invoice_id", invoiceID),
			slog.String("action", action))
		return nil, err
	}

	invoice.Status = newStatus
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = actor.UserID
	logger.Info("Invoice transitioned",
		slog.String("invoice_id", invoiceID),
		slog.String("action", action),
		slog.String("status", next))
	return invoice, nil
}
