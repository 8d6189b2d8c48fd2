package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := &supplierHandler{supplierService: supplierService}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deactivateSupplier)
	}
}

// createSupplier godoc
// @Summary Create a new supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.SaveSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}
	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Param search query string false "Name search term"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListSuppliersResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	var params dto.ListSuppliersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.supplierService.ListSuppliers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body dto.SaveSupplierRequest true "Supplier details"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	var req dto.SaveSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deactivateSupplier godoc
// @Summary Deactivate a supplier
// @Tags suppliers
// @Param id path string true "Supplier ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deactivateSupplier(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.supplierService.DeactivateSupplier(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to deactivate supplier")
		return
	}
	c.Status(http.StatusNoContent)
}
