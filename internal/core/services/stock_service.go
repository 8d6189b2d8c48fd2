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
)

type StockService struct {
	stockRepo   portsrepo.StockRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

func NewStockService(stockRepo portsrepo.StockRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) *StockService {
	return &StockService{stockRepo: stockRepo, productRepo: productRepo}
}

func (s *StockService) GetStockLevel(ctx context.Context, productID string, locationID string) (*domain.StockLevel, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if locationID == "" {
		locationID = domain.DefaultLocationID
	}
	level, err := s.stockRepo.FindStockLevel(ctx, productID, locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No row means no movements yet; report zero instead of 404.
			return &domain.StockLevel{ProductID: productID, LocationID: locationID}, nil
		}
		logger.Error("Failed to find stock level", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, err
	}
	return level, nil
}

func (s *StockService) ListStockLevels(ctx context.Context, params dto.ListStockLevelsParams) (*dto.ListStockLevelsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	levels, nextToken, err := s.stockRepo.ListStockLevels(ctx, params.ProductID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list stock levels", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list stock levels: %w", err)
	}

	resp := dto.ToListStockLevelsResponse(levels, nextToken)
	return &resp, nil
}

// AdjustStock applies a signed manual correction, e.g. after a physical
// count. Receipt-driven increments do not come through here. Corrections
// bypass the document trail, so only managers and admins may make them.
func (s *StockService) AdjustStock(ctx context.Context, actor domain.Actor, req dto.AdjustStockRequest) (*domain.StockLevel, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleManager {
		return nil, fmt.Errorf("%w: role %s cannot adjust stock", apperrors.ErrForbidden, actor.Role)
	}
	if req.Delta.IsZero() {
		return nil, fmt.Errorf("%w: adjustment delta must not be zero", apperrors.ErrValidation)
	}

	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %s not found", apperrors.ErrValidation, req.ProductID)
		}
		return nil, err
	}

	locationID := req.LocationID
	if locationID == "" {
		locationID = domain.DefaultLocationID
	}

	now := time.Now()
	if err := s.stockRepo.AdjustStock(ctx, req.ProductID, locationID, req.Delta, actor.UserID, now); err != nil {
		logger.Error("Failed to adjust stock",
			slog.String("error", err.Error()),
			slog.String("product_id", req.ProductID),
			slog.String("location_id", locationID))
		return nil, err
	}

	logger.Info("Stock adjusted",
		slog.String("product_id", req.ProductID),
		slog.String("location_id", locationID),
		slog.String("delta", req.Delta.String()),
		slog.String("reason", req.Reason))
	return s.stockRepo.FindStockLevel(ctx, req.ProductID, locationID)
}
