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
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/google/uuid"
)

type TaxRateService struct {
	taxRateRepo portsrepo.TaxRateRepositoryFacade
}

func NewTaxRateService(repo portsrepo.TaxRateRepositoryFacade) *TaxRateService {
	return &TaxRateService{taxRateRepo: repo}
}

func (s *TaxRateService) CreateTaxRate(ctx context.Context, actor domain.Actor, req dto.SaveTaxRateRequest) (*domain.TaxRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}
	if req.Value.IsNegative() || req.Value.GreaterThan(percentMax) {
		return nil, fmt.Errorf("%w: tax rate value must be between 0 and 100", apperrors.ErrValidation)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	isDefault := false
	if req.IsDefault != nil {
		isDefault = *req.IsDefault
	}

	now := time.Now()
	taxRate := domain.TaxRate{
		TaxRateID: uuid.NewString(),
		Name:      req.Name,
		Value:     req.Value,
		Enabled:   enabled,
		IsDefault: isDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.taxRateRepo.SaveTaxRate(ctx, taxRate); err != nil {
		logger.Error("Failed to save tax rate in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Tax rate created successfully", slog.String("tax_rate_id", taxRate.TaxRateID))
	return &taxRate, nil
}

func (s *TaxRateService) GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	taxRate, err := s.taxRateRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find tax rate by ID", slog.String("error", err.Error()), slog.String("tax_rate_id", taxRateID))
		}
		return nil, err
	}
	return taxRate, nil
}

func (s *TaxRateService) ListTaxRates(ctx context.Context, onlyEnabled bool) ([]domain.TaxRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	taxRates, err := s.taxRateRepo.ListTaxRates(ctx, onlyEnabled)
	if err != nil {
		logger.Error("Failed to list tax rates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list tax rates: %w", err)
	}
	if taxRates == nil {
		return []domain.TaxRate{}, nil
	}
	return taxRates, nil
}

// UpdateTaxRate changes the rate for future documents only: existing
// documents carry their own snapshots and are untouched.
func (s *TaxRateService) UpdateTaxRate(ctx context.Context, actor domain.Actor, taxRateID string, req dto.SaveTaxRateRequest) (*domain.TaxRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}
	if req.Value.IsNegative() || req.Value.GreaterThan(percentMax) {
		return nil, fmt.Errorf("%w: tax rate value must be between 0 and 100", apperrors.ErrValidation)
	}

	taxRate, err := s.taxRateRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		return nil, err
	}

	taxRate.Name = req.Name
	taxRate.Value = req.Value
	if req.Enabled != nil {
		taxRate.Enabled = *req.Enabled
	}
	if req.IsDefault != nil {
		taxRate.IsDefault = *req.IsDefault
	}
	taxRate.LastUpdatedAt = time.Now()
	taxRate.LastUpdatedBy = actor.UserID

	if err := s.taxRateRepo.UpdateTaxRate(ctx, *taxRate); err != nil {
		logger.Error("Failed to update tax rate", slog.String("error", err.Error()), slog.String("tax_rate_id", taxRateID))
		return nil, err
	}

	logger.Info("Tax rate updated successfully", slog.String("tax_rate_id", taxRateID))
	return taxRate, nil
}
