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
)

type PurchaseOrderService struct {
	purchaseOrderRepo portsrepo.PurchaseOrderRepositoryFacade
	supplierRepo      portsrepo.SupplierRepositoryFacade
	taxRateRepo       portsrepo.TaxRateRepositoryFacade
	numbering         portssvc.NumberingSvc
}

func NewPurchaseOrderService(
	purchaseOrderRepo portsrepo.PurchaseOrderRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
	taxRateRepo portsrepo.TaxRateRepositoryFacade,
	numbering portssvc.NumberingSvc,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		purchaseOrderRepo: purchaseOrderRepo,
		supplierRepo:      supplierRepo,
		taxRateRepo:       taxRateRepo,
		numbering:         numbering,
	}
}

func (s *PurchaseOrderService) buildPurchaseOrderBody(ctx context.Context, req dto.SavePurchaseOrderRequest) ([]domain.LineItem, []domain.AppliedTax, totals.Result, error) {
	var zero totals.Result

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, zero, fmt.Errorf("%w: supplier %s not found", apperrors.ErrValidation, req.SupplierID)
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

func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, actor domain.Actor, req dto.SavePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	items, taxes, result, err := s.buildPurchaseOrderBody(ctx, req)
	if err != nil {
		return nil, err
	}

	number, err := s.numbering.NextNumber(ctx, domain.DocTypePurchaseOrder)
	if err != nil {
		return nil, err
	}

	locationID := req.LocationID
	if locationID == "" {
		locationID = domain.DefaultLocationID
	}

	now := time.Now()
	order := domain.PurchaseOrder{
		PurchaseOrderID:        uuid.NewString(),
		Number:                 number,
		SupplierID:             req.SupplierID,
		OrderDate:              req.OrderDate,
		ExpectedDate:           req.ExpectedDate,
		LocationID:             locationID,
		Items:                  items,
		OverallDiscountPercent: req.OverallDiscountPercent,
		AppliedTaxes:           taxes,
		TotalsSnapshot:         result.Snapshot(),
		Status:                 domain.PurchaseOrderDraft,
		Notes:                  req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.purchaseOrderRepo.SavePurchaseOrder(ctx, order); err != nil {
		logger.Error("Failed to save purchase order in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Purchase order created successfully",
		slog.String("purchase_order_id", order.PurchaseOrderID),
		slog.String("number", order.Number))
	return &order, nil
}

func (s *PurchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	order, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find purchase order by ID", slog.String("error", err.Error()), slog.String("purchase_order_id", purchaseOrderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if params.Status != "" && !domain.PurchaseOrderStatus(params.Status).IsValid() {
		return nil, fmt.Errorf("%w: unknown purchase order status %s", apperrors.ErrValidation, params.Status)
	}

	orders, nextToken, err := s.purchaseOrderRepo.ListPurchaseOrders(ctx, params.SupplierID, params.Status, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list purchase orders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	resp := dto.ToListPurchaseOrdersResponse(orders, nextToken)
	return &resp, nil
}

func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, actor domain.Actor, purchaseOrderID string, req dto.SavePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	order, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	if !order.IsEditable() {
		return nil, fmt.Errorf("%w: purchase order %s is %s", ErrNotEditable, order.Number, order.Status)
	}

	items, taxes, result, err := s.buildPurchaseOrderBody(ctx, req)
	if err != nil {
		return nil, err
	}

	order.SupplierID = req.SupplierID
	order.OrderDate = req.OrderDate
	order.ExpectedDate = req.ExpectedDate
	if req.LocationID != "" {
		order.LocationID = req.LocationID
	}
	order.Items = items
	order.OverallDiscountPercent = req.OverallDiscountPercent
	order.AppliedTaxes = taxes
	order.TotalsSnapshot = result.Snapshot()
	order.Notes = req.Notes
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = actor.UserID

	if err := s.purchaseOrderRepo.UpdatePurchaseOrder(ctx, *order); err != nil {
		logger.Error("Failed to update purchase order", slog.String("error", err.Error()), slog.String("purchase_order_id", purchaseOrderID))
		return nil, err
	}

	logger.Info("Purchase order updated successfully", slog.String("purchase_order_id", purchaseOrderID))
	return order, nil
}

func (s *PurchaseOrderService) TransitionPurchaseOrder(ctx context.Context, actor domain.Actor, purchaseOrderID string, action string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if workflow.Action(action) == workflow.PurchaseOrderConvert {
		return nil, fmt.Errorf("%w: use the convert endpoint to convert a purchase order", apperrors.ErrValidation)
	}

	order, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.PurchaseOrder.Next(string(order.Status), workflow.Action(action), actor.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newStatus := domain.PurchaseOrderStatus(next)
	if err := s.purchaseOrderRepo.UpdatePurchaseOrderStatus(ctx, purchaseOrderID, newStatus, actor.UserID, now); err != nil {
		logger.Error("Failed to update purchase order status",
			slog.String("error", err.Error()),
			slog.String("purchase_order_id", purchaseOrderID),
			slog.String("action", action))
		return nil, err
	}

	order.Status = newStatus
	order.LastUpdatedAt = now
	order.LastUpdatedBy = actor.UserID
	logger.Info("Purchase order transitioned",
		slog.String("purchase_order_id", purchaseOrderID),
		slog.String("action", action),
		slog.String("status", next))
	return order, nil
}

// ConvertPurchaseOrderToGoodsReceipt creates the receiving document for an
// order. Ordered, received and accepted quantities are all pre-filled from
// the order lines; inspection then lowers accepted where needed. The receipt
// insert and the conversion flag flip share one transaction, so only one
// receipt can ever exist per order.
func (s *PurchaseOrderService) ConvertPurchaseOrderToGoodsReceipt(ctx context.Context, actor domain.Actor, purchaseOrderID string) (*domain.GoodsReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.purchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}

	if _, err := workflow.PurchaseOrder.Next(string(order.Status), workflow.PurchaseOrderConvert, actor.Role); err != nil {
		return nil, err
	}
	if order.ConvertedToGRN {
		return nil, fmt.Errorf("%w: purchase order %s already has a goods receipt", apperrors.ErrPrecondition, order.Number)
	}

	number, err := s.numbering.NextNumber(ctx, domain.DocTypeGoodsReceipt)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]domain.GoodsReceiptItem, len(order.Items))
	for i, line := range order.Items {
		items[i] = domain.GoodsReceiptItem{
			GoodsReceiptItemID: uuid.NewString(),
			ProductID:          line.ProductID,
			Description:        line.Description,
			OrderedQuantity:    line.Quantity,
			ReceivedQuantity:   line.Quantity,
			AcceptedQuantity:   line.Quantity,
			UnitCost:           line.UnitPrice,
		}
	}

	receipt := domain.GoodsReceipt{
		GoodsReceiptID:  uuid.NewString(),
		Number:          number,
		SupplierID:      order.SupplierID,
		PurchaseOrderID: order.PurchaseOrderID,
		LocationID:      order.LocationID,
		ReceiptDate:     now,
		Items:           items,
		Status:          domain.GoodsReceiptDraft,
		Notes:           order.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.purchaseOrderRepo.ConvertToGoodsReceipt(ctx, purchaseOrderID, receipt, actor.UserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrPrecondition) {
			logger.Error("Failed to convert purchase order",
				slog.String("error", err.Error()),
				slog.String("purchase_order_id", purchaseOrderID))
		}
		return nil, err
	}

	logger.Info("Purchase order converted to goods receipt",
		slog.String("purchase_order_id", purchaseOrderID),
		slog.String("goods_receipt_id", receipt.GoodsReceiptID),
		slog.String("receipt_number", receipt.Number))
	return &receipt, nil
}
