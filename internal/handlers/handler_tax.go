package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxRateHandler handles HTTP requests related to tax rates.
type taxRateHandler struct {
	taxRateService portssvc.TaxRateSvcFacade
}

// registerTaxRateRoutes registers routes related to tax rates.
func registerTaxRateRoutes(rg *gin.RouterGroup, taxRateService portssvc.TaxRateSvcFacade) {
	h := &taxRateHandler{taxRateService: taxRateService}

	taxRates := rg.Group("/tax-rates")
	{
		taxRates.POST("", h.createTaxRate)
		taxRates.GET("", h.listTaxRates)
		taxRates.GET("/:id", h.getTaxRate)
		taxRates.PUT("/:id", h.updateTaxRate)
	}
}

// createTaxRate godoc
// @Summary Create a new tax rate
// @Tags tax-rates
// @Accept json
// @Produce json
// @Param taxRate body dto.SaveTaxRateRequest true "Tax rate details"
// @Success 201 {object} dto.TaxRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /tax-rates [post]
func (h *taxRateHandler) createTaxRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTaxRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	taxRate, err := h.taxRateService.CreateTaxRate(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create tax rate")
		return
	}
	logger.Info("Tax rate created", slog.String("tax_rate_id", taxRate.TaxRateID))
	c.JSON(http.StatusCreated, dto.ToTaxRateResponse(taxRate))
}

// getTaxRate godoc
// @Summary Get a tax rate by ID
// @Tags tax-rates
// @Produce json
// @Param id path string true "Tax rate ID"
// @Success 200 {object} dto.TaxRateResponse
// @Failure 404 {object} map[string]string "Tax rate not found"
// @Security BearerAuth
// @Router /tax-rates/{id} [get]
func (h *taxRateHandler) getTaxRate(c *gin.Context) {
	taxRate, err := h.taxRateService.GetTaxRateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve tax rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxRateResponse(taxRate))
}

// listTaxRates godoc
// @Summary List tax rates
// @Tags tax-rates
// @Produce json
// @Param enabled query bool false "Only enabled rates"
// @Success 200 {array} dto.TaxRateResponse
// @Security BearerAuth
// @Router /tax-rates [get]
func (h *taxRateHandler) listTaxRates(c *gin.Context) {
	onlyEnabled := c.Query("enabled") == "true"
	taxRates, err := h.taxRateService.ListTaxRates(c.Request.Context(), onlyEnabled)
	if err != nil {
		respondError(c, err, "Failed to list tax rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxRateResponses(taxRates))
}

// updateTaxRate godoc
// @Summary Update a tax rate
// @Description Updates a tax rate. Existing documents keep their snapshotted
// @Description tax values; only documents saved afterwards see the change.
// @Tags tax-rates
// @Accept json
// @Produce json
// @Param id path string true "Tax rate ID"
// @Param taxRate body dto.SaveTaxRateRequest true "Tax rate details"
// @Success 200 {object} dto.TaxRateResponse
// @Failure 404 {object} map[string]string "Tax rate not found"
// @Security BearerAuth
// @Router /tax-rates/{id} [put]
func (h *taxRateHandler) updateTaxRate(c *gin.Context) {
	var req dto.SaveTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	taxRate, err := h.taxRateService.UpdateTaxRate(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update tax rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxRateResponse(taxRate))
}
