package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
)

// settingHandler handles HTTP requests related to the settings store.
type settingHandler struct {
	settingService portssvc.SettingSvcFacade
}

// newSettingHandler creates a new settingHandler.
func newSettingHandler(ss portssvc.SettingSvcFacade) *settingHandler {
	return &settingHandler{
		settingService: ss,
	}
}

// registerSettingRoutes registers routes related to settings.
func registerSettingRoutes(rg *gin.RouterGroup, settingService portssvc.SettingSvcFacade) {
	h := newSettingHandler(settingService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.PUT("", h.bulkUpdateSettings)
		settings.GET("/:key", h.getSetting)
		settings.PUT("/:key", h.updateSetting)
	}
}

func settingsToMap(settings []domain.Setting) map[string]string {
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out
}

// listSettings godoc
// @Summary List all settings
// @Description Retrieves the full key-value settings store
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} ErrorResponse "Failed to list settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingHandler) listSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingService.ListSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list settings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list settings"})
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: settingsToMap(settings)})
}

// getSetting godoc
// @Summary Get a setting
// @Description Retrieves one setting by key
// @Tags settings
// @Produce  json
// @Param   key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse
// @Failure 404 {object} ErrorResponse "Setting not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve setting"
// @Security BearerAuth
// @Router /settings/{key} [get]
func (h *settingHandler) getSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := c.Param("key")

	setting, err := h.settingService.GetSetting(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Setting not found"})
			return
		}
		logger.Error("Failed to get setting from service", slog.String("setting_key", key), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve setting"})
		return
	}

	c.JSON(http.StatusOK, dto.SettingResponse{Key: setting.Key, Value: setting.Value})
}

// updateSetting godoc
// @Summary Upsert a setting
// @Description Inserts or replaces one setting
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   key path string true "Setting key"
// @Param   setting body dto.UpdateSettingRequest true "New value"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to update setting"
// @Security BearerAuth
// @Router /settings/{key} [put]
func (h *settingHandler) updateSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := c.Param("key")

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSetting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	setting, err := h.settingService.UpdateSetting(c.Request.Context(), key, req, requestingUserID)
	if err != nil {
		logger.Error("Failed to update setting in service", slog.String("setting_key", key), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update setting"})
		return
	}

	logger.Info("Setting updated successfully", slog.String("setting_key", key))
	c.JSON(http.StatusOK, dto.SettingResponse{Key: setting.Key, Value: setting.Value})
}

// bulkUpdateSettings godoc
// @Summary Upsert several settings
// @Description Inserts or replaces several settings in one transaction
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.BulkUpdateSettingsRequest true "Settings to upsert"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to update settings"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingHandler) bulkUpdateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkUpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkUpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.settingService.BulkUpdateSettings(c.Request.Context(), req, requestingUserID)
	if err != nil {
		logger.Error("Failed to bulk update settings in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update settings"})
		return
	}

	logger.Info("Settings updated successfully", slog.Int("count", len(settings)))
	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: settingsToMap(settings)})
}
