package handlers

import (
	"net/http"

	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// settingHandler handles HTTP requests related to application settings.
type settingHandler struct {
	settingService portssvc.SettingSvcFacade
}

// registerSettingRoutes registers routes related to application settings.
func registerSettingRoutes(rg *gin.RouterGroup, settingService portssvc.SettingSvcFacade) {
	h := &settingHandler{settingService: settingService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.GET("/:key", h.getSetting)
		settings.PUT("/:key", h.upsertSetting)
	}
}

// listSettings godoc
// @Summary List all settings
// @Tags settings
// @Produce json
// @Success 200 {array} dto.SettingResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingHandler) listSettings(c *gin.Context) {
	settings, err := h.settingService.ListSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingResponses(settings))
}

// getSetting godoc
// @Summary Get a setting by key
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse
// @Failure 404 {object} map[string]string "Setting not found"
// @Security BearerAuth
// @Router /settings/{key} [get]
func (h *settingHandler) getSetting(c *gin.Context) {
	setting, err := h.settingService.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err, "Failed to retrieve setting")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// upsertSetting godoc
// @Summary Create or replace a setting
// @Description Sets a configuration value such as the company profile or the
// @Description default currency. Manager or above.
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param setting body dto.SaveSettingRequest true "Setting value"
// @Success 200 {object} dto.SettingResponse
// @Failure 403 {object} map[string]string "Caller may not change settings"
// @Security BearerAuth
// @Router /settings/{key} [put]
func (h *settingHandler) upsertSetting(c *gin.Context) {
	var req dto.SaveSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	setting, err := h.settingService.UpsertSetting(c.Request.Context(), actor, c.Param("key"), req)
	if err != nil {
		respondError(c, err, "Failed to save setting")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}
