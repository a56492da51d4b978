package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService settings.SettingsService
	logger          *Logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService settings.SettingsService, logger *Logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings handles reading the effective settings document
// @Summary Get settings
// @Description Get the effective settings document: saved values merged over factory defaults
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SettingsDocumentResponse "Settings document"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	tree := h.settingsService.GetSettings(c.Request.Context())
	c.JSON(http.StatusOK, SettingsDocumentResponse{Settings: tree})
}

// UpdateSettings handles merging a patch into the settings document
// @Summary Update settings
// @Description Merge the given patch over the effective document and save the result
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body settings.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} SettingsUpdatedResponse "Settings updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req settings.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	tree, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		switch err {
		case settings.ErrInvalidPayload:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid settings payload"})
		default:
			h.logger.Errorf("update settings error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SettingsUpdatedResponse{
		Message:  "Settings updated successfully",
		Settings: tree,
	})
}

// ResetSettings handles restoring factory defaults
// @Summary Reset settings
// @Description Discard the saved document and restore factory defaults
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SettingsUpdatedResponse "Settings reset successfully"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings/reset [post]
func (h *SettingsHandler) ResetSettings(c *gin.Context) {
	tree, err := h.settingsService.Reset(c.Request.Context())
	if err != nil {
		h.logger.Errorf("reset settings error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, SettingsUpdatedResponse{
		Message:  "Settings reset successfully",
		Settings: tree,
	})
}

// GetValue handles reading a single value by dotted path
// @Summary Get a settings value
// @Description Read one value from the effective document by dotted path
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param path query string true "Dotted path, e.g. whisper.language"
// @Success 200 {object} SettingsValueResponse "Value at the path"
// @Failure 400 {object} ErrorResponse "Path is required"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Value not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings/value [get]
func (h *SettingsHandler) GetValue(c *gin.Context) {
	path := c.Query("path")

	value, err := h.settingsService.GetValue(c.Request.Context(), path)
	if err != nil {
		switch err {
		case settings.ErrEmptyPath:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Path is required"})
		case settings.ErrValueNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Value not found"})
		default:
			h.logger.Errorf("get settings value error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SettingsValueResponse{
		Path:  path,
		Value: value,
	})
}

// UpdateValue handles writing a single value by dotted path
// @Summary Update a settings value
// @Description Write one leaf value addressed by dotted path and save the document
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body settings.UpdateValueRequest true "Path and value"
// @Success 200 {object} SettingsUpdatedResponse "Value updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings/value [put]
func (h *SettingsHandler) UpdateValue(c *gin.Context) {
	var req settings.UpdateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	tree, err := h.settingsService.UpdateValue(c.Request.Context(), req)
	if err != nil {
		switch err {
		case settings.ErrEmptyPath:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Path is required"})
		default:
			h.logger.Errorf("update settings value error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SettingsUpdatedResponse{
		Message:  "Settings updated successfully",
		Settings: tree,
	})
}

// RegisterSettingsRoutes registers all settings-related routes
func (h *SettingsHandler) RegisterSettingsRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/settings")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.GET("", h.GetSettings)
		protected.PUT("", h.UpdateSettings)
		protected.POST("/reset", h.ResetSettings)
		protected.GET("/value", h.GetValue)
		protected.PUT("/value", h.UpdateValue)
	}
}
