package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests related to stock levels.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

// registerStockRoutes registers routes related to stock levels and manual
// adjustments.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := &stockHandler{stockService: stockService}

	rg.GET("/stock-levels", h.listStockLevels)
	rg.GET("/stock-levels/:productID", h.getStockLevel)
	rg.POST("/stock-adjustments", h.adjustStock)
}

// getStockLevel godoc
// @Summary Get the stock level for a product
// @Tags stock
// @Produce json
// @Param productID path string true "Product ID"
// @Param locationID query string false "Location ID (defaults to MAIN)"
// @Success 200 {object} dto.StockLevelResponse
// @Failure 404 {object} map[string]string "No stock record for the product"
// @Security BearerAuth
// @Router /stock-levels/{productID} [get]
func (h *stockHandler) getStockLevel(c *gin.Context) {
	locationID := c.Query("locationID")
	if locationID == "" {
		locationID = domain.DefaultLocationID
	}
	level, err := h.stockService.GetStockLevel(c.Request.Context(), c.Param("productID"), locationID)
	if err != nil {
		respondError(c, err, "Failed to retrieve stock level")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockLevelResponse(level))
}

// listStockLevels godoc
// @Summary List stock levels
// @Tags stock
// @Produce json
// @Param productID query string false "Filter by product"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListStockLevelsResponse
// @Security BearerAuth
// @Router /stock-levels [get]
func (h *stockHandler) listStockLevels(c *gin.Context) {
	var params dto.ListStockLevelsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.stockService.ListStockLevels(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list stock levels")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// adjustStock godoc
// @Summary Apply a manual stock adjustment
// @Description Applies a signed delta to a product's stock level, for counts
// @Description and corrections outside the goods receipt flow.
// @Tags stock
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustStockRequest true "Adjustment details"
// @Success 200 {object} dto.StockLevelResponse
// @Failure 400 {object} map[string]string "Invalid adjustment"
// @Security BearerAuth
// @Router /stock-adjustments [post]
func (h *stockHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	level, err := h.stockService.AdjustStock(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to adjust stock")
		return
	}
	logger.Info("Stock adjusted",
		slog.String("product_id", level.ProductID),
		slog.String("location_id", level.LocationID),
		slog.String("delta", req.Delta.String()))
	c.JSON(http.StatusOK, dto.ToStockLevelResponse(level))
}
