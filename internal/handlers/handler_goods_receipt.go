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

// goodsReceiptHandler handles HTTP requests related to goods receipts.
type goodsReceiptHandler struct {
	goodsReceiptService portssvc.GoodsReceiptSvcFacade
}

// registerGoodsReceiptRoutes registers routes related to goods receipts,
// including the inspection and completion endpoints.
func registerGoodsReceiptRoutes(rg *gin.RouterGroup, goodsReceiptService portssvc.GoodsReceiptSvcFacade) {
	h := &goodsReceiptHandler{goodsReceiptService: goodsReceiptService}

	receipts := rg.Group("/goods-receipts")
	{
		receipts.POST("", h.createGoodsReceipt)
		receipts.GET("", h.listGoodsReceipts)
		receipts.GET("/:id", h.getGoodsReceipt)
		receipts.PUT("/:id", h.updateGoodsReceipt)
		receipts.POST("/:id/inspect", h.inspectGoodsReceipt)
		receipts.POST("/:id/approve", h.transition(workflow.GoodsReceiptApprove))
		receipts.POST("/:id/reject", h.transition(workflow.GoodsReceiptReject))
		receipts.POST("/:id/complete", h.completeGoodsReceipt)
	}
}

// createGoodsReceipt godoc
// @Summary Create a direct goods receipt
// @Description Creates a draft goods receipt not linked to a purchase order.
// @Description Accepted quantity may not exceed received.
// @Tags goods-receipts
// @Accept json
// @Produce json
// @Param goodsReceipt body dto.SaveGoodsReceiptRequest true "Goods receipt details"
// @Success 201 {object} dto.GoodsReceiptResponse
// @Failure 400 {object} map[string]string "Invalid quantities"
// @Security BearerAuth
// @Router /goods-receipts [post]
func (h *goodsReceiptHandler) createGoodsReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoodsReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	receipt, err := h.goodsReceiptService.CreateGoodsReceipt(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create goods receipt")
		return
	}
	logger.Info("Goods receipt created", slog.String("goods_receipt_id", receipt.GoodsReceiptID), slog.String("number", receipt.Number))
	actions := actionStrings(workflow.GoodsReceipt.Actions(string(receipt.Status), actor.Role))
	c.JSON(http.StatusCreated, dto.ToGoodsReceiptResponse(receipt, actions))
}

// getGoodsReceipt godoc
// @Summary Get a goods receipt by ID
// @Tags goods-receipts
// @Produce json
// @Param id path string true "Goods receipt ID"
// @Success 200 {object} dto.GoodsReceiptResponse
// @Failure 404 {object} map[string]string "Goods receipt not found"
// @Security BearerAuth
// @Router /goods-receipts/{id} [get]
func (h *goodsReceiptHandler) getGoodsReceipt(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	receipt, err := h.goodsReceiptService.GetGoodsReceiptByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve goods receipt")
		return
	}
	actions := actionStrings(workflow.GoodsReceipt.Actions(string(receipt.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToGoodsReceiptResponse(receipt, actions))
}

// listGoodsReceipts godoc
// @Summary List goods receipts
// @Tags goods-receipts
// @Produce json
// @Param supplierID query string false "Filter by supplier"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListGoodsReceiptsResponse
// @Security BearerAuth
// @Router /goods-receipts [get]
func (h *goodsReceiptHandler) listGoodsReceipts(c *gin.Context) {
	var params dto.ListGoodsReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.goodsReceiptService.ListGoodsReceipts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list goods receipts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateGoodsReceipt godoc
// @Summary Update a draft goods receipt
// @Tags goods-receipts
// @Accept json
// @Produce json
// @Param id path string true "Goods receipt ID"
// @Param goodsReceipt body dto.SaveGoodsReceiptRequest true "Goods receipt details"
// @Success 200 {object} dto.GoodsReceiptResponse
// @Failure 404 {object} map[string]string "Goods receipt not found"
// @Failure 412 {object} map[string]string "Goods receipt is not editable"
// @Security BearerAuth
// @Router /goods-receipts/{id} [put]
func (h *goodsReceiptHandler) updateGoodsReceipt(c *gin.Context) {
	var req dto.SaveGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	receipt, err := h.goodsReceiptService.UpdateGoodsReceipt(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update goods receipt")
		return
	}
	actions := actionStrings(workflow.GoodsReceipt.Actions(string(receipt.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToGoodsReceiptResponse(receipt, actions))
}

// inspectGoodsReceipt godoc
// @Summary Record inspection results for a goods receipt
// @Description Sets accepted quantities per line and moves the receipt to
// @Description INSPECTED. Accepted may not exceed received on any line.
// @Tags goods-receipts
// @Accept json
// @Produce json
// @Param id path string true "Goods receipt ID"
// @Param inspection body dto.InspectGoodsReceiptRequest true "Accepted quantities per line"
// @Success 200 {object} dto.GoodsReceiptResponse
// @Failure 400 {object} map[string]string "Invalid quantities"
// @Failure 412 {object} map[string]string "Receipt cannot be inspected in its current status"
// @Security BearerAuth
// @Router /goods-receipts/{id}/inspect [post]
func (h *goodsReceiptHandler) inspectGoodsReceipt(c *gin.Context) {
	var req dto.InspectGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	receipt, err := h.goodsReceiptService.InspectGoodsReceipt(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to inspect goods receipt")
		return
	}
	actions := actionStrings(workflow.GoodsReceipt.Actions(string(receipt.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToGoodsReceiptResponse(receipt, actions))
}

// transition returns a handler applying the given workflow action.
func (h *goodsReceiptHandler) transition(action workflow.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := mustActor(c)
		if !ok {
			return
		}
		receipt, err := h.goodsReceiptService.TransitionGoodsReceipt(c.Request.Context(), actor, c.Param("id"), string(action))
		if err != nil {
			respondError(c, err, "Failed to apply goods receipt action")
			return
		}
		actions := actionStrings(workflow.GoodsReceipt.Actions(string(receipt.Status), actor.Role))
		c.JSON(http.StatusOK, dto.ToGoodsReceiptResponse(receipt, actions))
	}
}

// completeGoodsReceipt godoc
// @Summary Complete a goods receipt and update stock
// @Description Moves an approved receipt to COMPLETED and increments stock at
// @Description the receipt's location by the accepted quantities. Stock is
// @Description applied exactly once; completing again fails with 412.
// @Tags goods-receipts
// @Produce json
// @Param id path string true "Goods receipt ID"
// @Success 200 {object} dto.GoodsReceiptResponse
// @Failure 404 {object} map[string]string "Goods receipt not found"
// @Failure 412 {object} map[string]string "Receipt not approved or stock already updated"
// @Security BearerAuth
// @Router /goods-receipts/{id}/complete [post]
func (h *goodsReceiptHandler) completeGoodsReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	receipt, err := h.goodsReceiptService.CompleteGoodsReceipt(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to complete goods receipt")
		return
	}
	logger.Info("Goods receipt completed, stock updated", slog.String("goods_receipt_id", receipt.GoodsReceiptID))
	actions := actionStrings(workflow.GoodsReceipt.Actions(string(receipt.Status), actor.Role))
	c.JSON(http.StatusOK, dto.ToGoodsReceiptResponse(receipt, actions))
}
