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

type ProductService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

func NewProductService(repo portsrepo.ProductRepositoryFacade) *ProductService {
	return &ProductService{productRepo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, actor domain.Actor, req dto.SaveProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}
	if req.UnitPrice.IsNegative() || req.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: product prices must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		CostPrice:   req.CostPrice,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Product created successfully", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product by ID", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	products, nextToken, err := s.productRepo.ListProducts(ctx, params.Search, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	resp := dto.ToListProductsResponse(products, nextToken)
	return &resp, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, actor domain.Actor, productID string, req dto.SaveProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}
	if req.UnitPrice.IsNegative() || req.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: product prices must not be negative", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.SKU = req.SKU
	product.Name = req.Name
	product.Description = req.Description
	product.Unit = req.Unit
	product.UnitPrice = req.UnitPrice
	product.CostPrice = req.CostPrice
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = actor.UserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, err
	}

	logger.Info("Product updated successfully", slog.String("product_id", productID))
	return product, nil
}

func (s *ProductService) DeactivateProduct(ctx context.Context, actor domain.Actor, productID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return err
	}

	if err := s.productRepo.DeactivateProduct(ctx, productID, actor.UserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate product", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return err
	}

	logger.Info("Product deactivated successfully", slog.String("product_id", productID))
	return nil
}
