package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, ss portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: ss}
	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
}

// getSettings godoc
// @Summary Get posting policies
// @Tags settings
// @Produce json
// @Success 200 {object} domain.AppSettings
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "get settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Change posting policies
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} domain.AppSettings
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
