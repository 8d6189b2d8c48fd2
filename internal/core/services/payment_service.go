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
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/google/uuid"
)

// ErrOverpayment is returned when a payment would exceed the outstanding
// balance.
var ErrOverpayment = fmt.Errorf("%w: payment exceeds outstanding balance", apperrors.ErrValidation)

type PaymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	numbering   portssvc.NumberingSvc
}

func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	numbering portssvc.NumberingSvc,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		numbering:   numbering,
	}
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find payment by ID", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	payments, err := s.paymentRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to list payments for invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// RecordPayment applies money received to an invoice. The payment row and
// the invoice's paid/balance/status change in one repository transaction.
// The resulting status is derived, never client-chosen: partial while a
// balance remains, paid when it reaches zero.
func (s *PaymentService) RecordPayment(ctx context.Context, actor domain.Actor, invoiceID string, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	method := domain.PaymentMethod(req.Method)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %s", apperrors.ErrValidation, req.Method)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceSent && invoice.Status != domain.InvoicePartial {
		return nil, fmt.Errorf("%w: invoice %s is %s and cannot receive payments",
			apperrors.ErrPrecondition, invoice.Number, invoice.Status)
	}
	if req.Amount.GreaterThan(invoice.BalanceAmount) {
		return nil, fmt.Errorf("%w: balance is %s, payment is %s", ErrOverpayment,
			invoice.BalanceAmount.StringFixed(2), req.Amount.StringFixed(2))
	}

	number, err := s.numbering.NextNumber(ctx, domain.DocTypePayment)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		Number:      number,
		InvoiceID:   invoiceID,
		Amount:      req.Amount,
		Method:      method,
		PaymentDate: paymentDate,
		Reference:   req.Reference,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	newPaid := invoice.PaidAmount.Add(req.Amount)
	newBalance := invoice.BalanceAmount.Sub(req.Amount)
	newStatus := domain.InvoicePartial
	if newBalance.IsZero() {
		newStatus = domain.InvoicePaid
	}

	if err := s.invoiceRepo.ApplyPayment(ctx, payment, newPaid, newBalance, newStatus, now); err != nil {
		logger.Error("Failed to apply payment",
			slog.String("error", err.Error()),
			slog.String("invoice_id", invoiceID),
			slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.String("invoice_id", invoiceID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("invoice_status", string(newStatus)))
	return &payment, nil
}
