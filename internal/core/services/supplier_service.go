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

type SupplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

func NewSupplierService(repo portsrepo.SupplierRepositoryFacade) *SupplierService {
	return &SupplierService{supplierRepo: repo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, actor domain.Actor, req dto.SaveSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		TaxNumber:  req.TaxNumber,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Supplier created successfully", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find supplier by ID", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) (*dto.ListSuppliersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	suppliers, nextToken, err := s.supplierRepo.ListSuppliers(ctx, params.Search, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list suppliers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	resp := dto.ToListSuppliersResponse(suppliers, nextToken)
	return &resp, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, actor domain.Actor, supplierID string, req dto.SaveSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.Address = req.Address
	supplier.TaxNumber = req.TaxNumber
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = actor.UserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		logger.Error("Failed to update supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return nil, err
	}

	logger.Info("Supplier updated successfully", slog.String("supplier_id", supplierID))
	return supplier, nil
}

func (s *SupplierService) DeactivateSupplier(ctx context.Context, actor domain.Actor, supplierID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return err
	}

	if err := s.supplierRepo.DeactivateSupplier(ctx, supplierID, actor.UserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return err
	}

	logger.Info("Supplier deactivated successfully", slog.String("supplier_id", supplierID))
	return nil
}
