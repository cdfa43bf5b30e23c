package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/adapter/http/dto"
	"github.com/mariepimienta/task-app/internal/adapter/http/mapper"
	"github.com/mariepimienta/task-app/internal/adapter/http/middleware"
	"github.com/mariepimienta/task-app/internal/adapter/http/validation"
	"github.com/mariepimienta/task-app/internal/core/ports"
	"github.com/mariepimienta/task-app/pkg/apierrors"
)

type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	lang := middleware.GetLang(c)

	settings, err := h.settings.Settings(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSettings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingsItem(settings))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	lang := middleware.GetLang(c)

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSettings, lang),
		)
		return
	}
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSettings, lang),
		)
		return
	}

	update, err := validation.BuildSettingsUpdate(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSettings, lang),
		)
		return
	}

	settings, err := h.settings.UpdateSettings(c.Request.Context(), update)
	if err != nil {
		zap.L().Error("failed to update settings", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSettings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingsItem(settings))
}
