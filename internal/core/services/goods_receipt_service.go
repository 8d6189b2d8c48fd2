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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoodsReceiptService struct {
	goodsReceiptRepo portsrepo.GoodsReceiptRepositoryFacade
	supplierRepo     portsrepo.SupplierRepositoryFacade
	numbering        portssvc.NumberingSvc
}

func NewGoodsReceiptService(
	goodsReceiptRepo portsrepo.GoodsReceiptRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
	numbering portssvc.NumberingSvc,
) *GoodsReceiptService {
	return &GoodsReceiptService{
		goodsReceiptRepo: goodsReceiptRepo,
		supplierRepo:     supplierRepo,
		numbering:        numbering,
	}
}

// buildReceiptItems validates request lines. Accepted defaults to received
// when the client omits it; inspection adjusts it later.
func buildReceiptItems(items []dto.GoodsReceiptItemRequest) ([]domain.GoodsReceiptItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: goods receipt must have at least one line", apperrors.ErrValidation)
	}
	out := make([]domain.GoodsReceiptItem, len(items))
	for i, item := range items {
		accepted := item.AcceptedQuantity
		if accepted.IsZero() {
			accepted = item.ReceivedQuantity
		}
		line := domain.GoodsReceiptItem{
			GoodsReceiptItemID: uuid.NewString(),
			ProductID:          item.ProductID,
			Description:        item.Description,
			OrderedQuantity:    item.OrderedQuantity,
			ReceivedQuantity:   item.ReceivedQuantity,
			AcceptedQuantity:   accepted,
			UnitCost:           item.UnitCost,
		}
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i+1, err.Error())
		}
		out[i] = line
	}
	return out, nil
}

func (s *GoodsReceiptService) CreateGoodsReceipt(ctx context.Context, actor domain.Actor, req dto.SaveGoodsReceiptRequest) (*domain.GoodsReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: supplier %s not found", apperrors.ErrValidation, req.SupplierID)
		}
		return nil, err
	}

	items, err := buildReceiptItems(req.Items)
	if err != nil {
		return nil, err
	}

	number, err := s.numbering.NextNumber(ctx, domain.DocTypeGoodsReceipt)
	if err != nil {
		return nil, err
	}

	locationID := req.LocationID
	if locationID == "" {
		locationID = domain.DefaultLocationID
	}

	now := time.Now()
	receipt := domain.GoodsReceipt{
		GoodsReceiptID: uuid.NewString(),
		Number:         number,
		SupplierID:     req.SupplierID,
		LocationID:     locationID,
		ReceiptDate:    req.ReceiptDate,
		Items:          items,
		Status:         domain.GoodsReceiptDraft,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.goodsReceiptRepo.SaveGoodsReceipt(ctx, receipt); err != nil {
		logger.Error("Failed to save goods receipt in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Goods receipt created successfully",
		slog.String("goods_receipt_id", receipt.GoodsReceiptID),
		slog.String("number", receipt.Number))
	return &receipt, nil
}

func (s *GoodsReceiptService) GetGoodsReceiptByID(ctx context.Context, goodsReceiptID string) (*domain.GoodsReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	receipt, err := s.goodsReceiptRepo.FindGoodsReceiptByID(ctx, goodsReceiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find goods receipt by ID", slog.String("error", err.Error()), slog.String("goods_receipt_id", goodsReceiptID))
		}
		return nil, err
	}
	return receipt, nil
}

func (s *GoodsReceiptService) ListGoodsReceipts(ctx context.Context, params dto.ListGoodsReceiptsParams) (*dto.ListGoodsReceiptsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if params.Status != "" && !domain.GoodsReceiptStatus(params.Status).IsValid() {
		return nil, fmt.Errorf("%w: unknown goods receipt status %s", apperrors.ErrValidation, params.Status)
	}

	receipts, nextToken, err := s.goodsReceiptRepo.ListGoodsReceipts(ctx, params.SupplierID, params.Status, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list goods receipts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list goods receipts: %w", err)
	}

	resp := dto.ToListGoodsReceiptsResponse(receipts, nextToken)
	return &resp, nil
}

func (s *GoodsReceiptService) UpdateGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string, req dto.SaveGoodsReceiptRequest) (*domain.GoodsReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	receipt, err := s.goodsReceiptRepo.FindGoodsReceiptByID(ctx, goodsReceiptID)
	if err != nil {
		return nil, err
	}
	if !receipt.IsEditable() {
		return nil, fmt.Errorf("%w: goods receipt %s is %s", ErrNotEditable, receipt.Number, receipt.Status)
	}

	items, err := buildReceiptItems(req.Items)
	if err != nil {
		return nil, err
	}

	receipt.SupplierID = req.SupplierID
	if req.LocationID != "" {
		receipt.LocationID = req.LocationID
	}
	receipt.ReceiptDate = req.ReceiptDate
	receipt.Items = items
	receipt.Notes = req.Notes
	receipt.LastUpdatedAt = time.Now()
	receipt.LastUpdatedBy = actor.UserID

	if err := s.goodsReceiptRepo.UpdateGoodsReceipt(ctx, *receipt); err != nil {
		logger.Error("Failed to update goods receipt", slog.String("error", err.Error()), slog.String("goods_receipt_id", goodsReceiptID))
		return nil, err
	}

	logger.Info("Goods receipt updated successfully", slog.String("goods_receipt_id", goodsReceiptID))
	return receipt, nil
}

// InspectGoodsReceipt records the accepted quantity per line and moves the
// receipt to inspected. Accepted above received is rejected outright.
func (s *GoodsReceiptService) InspectGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string, req dto.InspectGoodsReceiptRequest) (*domain.GoodsReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.goodsReceiptRepo.FindGoodsReceiptByID(ctx, goodsReceiptID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.GoodsReceipt.Next(string(receipt.Status), workflow.GoodsReceiptInspect, actor.Role)
	if err != nil {
		return nil, err
	}

	accepted := make(map[string]decimal.Decimal, len(req.Items))
	for _, item := range req.Items {
		accepted[item.GoodsReceiptItemID] = item.AcceptedQuantity
	}
	for i := range receipt.Items {
		qty, ok := accepted[receipt.Items[i].GoodsReceiptItemID]
		if !ok {
			continue
		}
		receipt.Items[i].AcceptedQuantity = qty
		if err := receipt.Items[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i+1, err.Error())
		}
		delete(accepted, receipt.Items[i].GoodsReceiptItemID)
	}
	if len(accepted) > 0 {
		return nil, fmt.Errorf("%w: inspection references unknown receipt lines", apperrors.ErrValidation)
	}

	now := time.Now()
	receipt.Status = domain.GoodsReceiptStatus(next)
	if req.Notes != "" {
		receipt.Notes = req.Notes
	}
	receipt.LastUpdatedAt = now
	receipt.LastUpdatedBy = actor.UserID

	if err := s.goodsReceiptRepo.UpdateGoodsReceipt(ctx, *receipt); err != nil {
		logger.Error("Failed to record inspection", slog.String("error", err.Error()), slog.String("goods_receipt_id", goodsReceiptID))
		return nil, err
	}

	logger.Info("Goods receipt inspected", slog.String("goods_receipt_id", goodsReceiptID))
	return receipt, nil
}

// TransitionGoodsReceipt applies approve/reject. Inspect and complete have
// dedicated methods because they carry extra effects.
func (s *GoodsReceiptService) TransitionGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string, action string) (*domain.GoodsReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch workflow.Action(action) {
	case workflow.GoodsReceiptInspect:
		return nil, fmt.Errorf("%w: use the inspect endpoint to record inspection results", apperrors.ErrValidation)
	case workflow.GoodsReceiptComplete:
		return nil, fmt.Errorf("%w: use the complete endpoint to finish a goods receipt", apperrors.ErrValidation)
	}

	receipt, err := s.goodsReceiptRepo.FindGoodsReceiptByID(ctx, goodsReceiptID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.GoodsReceipt.Next(string(receipt.Status), workflow.Action(action), actor.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newStatus := domain.GoodsReceiptStatus(next)
	if err := s.goodsReceiptRepo.UpdateGoodsReceiptStatus(ctx, goodsReceiptID, newStatus, actor.UserID, now); err != nil {
		logger.Error("Failed to update goods receipt status",
			slog.String("error", err.Error()),
			slog.String("goods_receipt_id", goodsReceiptID),
			slog.String("action", action))
		return nil, err
	}

	receipt.Status = newStatus
	receipt.LastUpdatedAt = now
	receipt.LastUpdatedBy = actor.UserID
	logger.Info("Goods receipt transitioned",
		slog.String("goods_receipt_id", goodsReceiptID),
		slog.String("action", action),
		slog.String("status", next))
	return receipt, nil
}

// CompleteGoodsReceipt finishes the receipt and books the accepted
// quantities into stock. The status change, the stock_updated flag and the
// increments commit in one repository transaction, with the flag checked
// inside it, so stock can never be booked twice for one receipt.
func (s *GoodsReceiptService) CompleteGoodsReceipt(ctx context.Context, actor domain.Actor, goodsReceiptID string) (*domain.GoodsReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.goodsReceiptRepo.FindGoodsReceiptByID(ctx, goodsReceiptID)
	if err != nil {
		return nil, err
	}

	if _, err := workflow.GoodsReceipt.Next(string(receipt.Status), workflow.GoodsReceiptComplete, actor.Role); err != nil {
		return nil, err
	}
	if receipt.StockUpdated {
		return nil, fmt.Errorf("%w: goods receipt %s has already updated stock", apperrors.ErrPrecondition, receipt.Number)
	}

	increments := make(map[string]decimal.Decimal)
	for _, item := range receipt.Items {
		if item.ProductID == "" || !item.AcceptedQuantity.IsPositive() {
			continue
		}
		increments[item.ProductID] = increments[item.ProductID].Add(item.AcceptedQuantity)
	}

	now := time.Now()
	if err := s.goodsReceiptRepo.CompleteWithStock(ctx, goodsReceiptID, receipt.LocationID, increments, actor.UserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrPrecondition) {
			logger.Error("Failed to complete goods receipt",
				slog.String("error", err.Error()),
				slog.String("goods_receipt_id", goodsReceiptID))
		}
		return nil, err
	}

	receipt.Status = domain.GoodsReceiptCompleted
	receipt.StockUpdated = true
	receipt.LastUpdatedAt = now
	receipt.LastUpdatedBy = actor.UserID
	logger.Info("Goods receipt completed, stock updated",
		slog.String("goods_receipt_id", goodsReceiptID),
		slog.Int("product_count", len(increments)))
	return receipt, nil
}
