package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/core/workflow"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	purchaseOrderService portssvc.PurchaseOrderSvcFacade
}

// registerPurchaseOrderRoutes registers routes related to purchase orders.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, purchaseOrderService portssvc.PurchaseOrderSvcFacade) {
	h := &purchaseOrderHandler{purchaseOrderService: purchaseOrderService}

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.createPurchaseOrder)
		orders.GET("", h.listPurchaseOrders)
		orders.GET("/:id", h.getPurchaseOrder)
		orders.PUT("/:id", h.updatePurchaseOrder)
		orders.POST("/:id/approve", h.transition(workflow.PurchaseOrderApprove))
		orders.POST("/:id/send", h.transition(workflow.PurchaseOrderSend))
		orders.POST("/:id/complete", h.transition(workflow.PurchaseOrderComplete))
		orders.POST("/:id/cancel", h.transition(workflow.PurchaseOrderCancel))
		orders.POST("/:id/convert", h.convertToGoodsReceipt)
	}
}

// createPurchaseOrder godoc
// @Summary Create a new purchase order
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param purchaseOrder body dto.SavePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input or totals mismatch"
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	order, err := h.purchaseOrderService.CreatePurchaseOrder(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create purchase order")
		return
	}
	logger.Info("Purchase order created", slog.String("purchase_order_id", order.PurchaseOrderID), slog.String("number", order.Number))
	actions := actionStrings(workflow.PurchaseOrder.Actions(string(order.Status), actor.Role))
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order, actions))
}

// getPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Tags purchase-orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Security BearerAuth
// @Router /purchase-orders/{id} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	order, err := h.purchaseOrderService.GetPurchaseOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve purchase order")
		return
	}
	actions := actionStrings(workflow.PurchaseOrder.Actions(string(order.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, actions))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce json
// @Param supplierID query string false "Filter by supplier"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	var params dto.ListPurchaseOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.purchaseOrderService.ListPurchaseOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list purchase orders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updatePurchaseOrder godoc
// @Summary Update a draft purchase order
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param purchaseOrder body dto.SavePurchaseOrderRequest true "Purchase order details"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 412 {object} map[string]string "Purchase order is not editable"
// @Security BearerAuth
// @Router /purchase-orders/{id} [put]
func (h *purchaseOrderHandler) updatePurchaseOrder(c *gin.Context) {
	var req dto.SavePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	order, err := h.purchaseOrderService.UpdatePurchaseOrder(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update purchase order")
		return
	}
	actions := actionStrings(workflow.PurchaseOrder.Actions(string(order.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, actions))
}

// transition returns a handler applying the given workflow action.
func (h *purchaseOrderHandler) transition(action workflow.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := mustActor(c)
		if !ok {
			return
		}
		order, err := h.purchaseOrderService.TransitionPurchaseOrder(c.Request.Context(), actor, c.Param("id"), string(action))
		if err != nil {
			respondError(c, err, "Failed to apply purchase order action")
			return
		}
		actions := actionStrings(workflow.PurchaseOrder.Actions(string(order.Status), actor.Role))
		c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, actions))
	}
}

// convertToGoodsReceipt godoc
// @Summary Convert a purchase order into a goods receipt
// @Description Creates a draft goods receipt pre-filled from the order's lines,
// @Description with received and accepted quantities defaulting to the ordered
// @Description ones. An order converts at most once; repeating the call fails
// @Description with 412 and creates nothing.
// @Tags purchase-orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 201 {object} dto.GoodsReceiptResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 412 {object} map[string]string "Order not convertible or already converted"
// @Security BearerAuth
// @Router /purchase-orders/{id}/convert [post]
func (h *purchaseOrderHandler) convertToGoodsReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	receipt, err := h.purchaseOrderService.ConvertPurchaseOrderToGoodsReceipt(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to convert purchase order")
		return
	}
	logger.Info("Purchase order converted to goods receipt",
		slog.String("purchase_order_id", c.Param("id")),
		slog.String("goods_receipt_id", receipt.GoodsReceiptID))
	actions := actionStrings(workflow.GoodsReceipt.Actions(string(receipt.Status), actor.Role))
	c.JSON(http.StatusCreated, dto.ToGoodsReceiptResponse(receipt, actions))
}
