package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// RelatednessRequest represents the request to classify a piece of text
type RelatednessRequest struct {
	Text string `json:"text" binding:"required"`
}

// ExtractionHandler handles text analysis HTTP requests
type ExtractionHandler struct {
	extractionService extraction.ExtractionService
	logger            *Logger.Logger
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(extractionService extraction.ExtractionService, logger *Logger.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
		logger:            logger,
	}
}

// Extract handles extracting tasks and events from text
// @Summary Extract tasks and events
// @Description Analyze a piece of text and extract task and event entities. Analysis trouble is reported inside the result, not as an HTTP error.
// @Tags Extraction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body extraction.ExtractRequest true "Text to analyze and the mode (rule or llm)"
// @Success 200 {object} extraction.ExtractResult "Extracted entities with per-kind errors"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Router /extract [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var req extraction.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	result := h.extractionService.ExtractAll(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}

// Relatedness handles classifying whether text mentions tasks or events
// @Summary Classify text relatedness
// @Description Report whether a piece of text looks task-related or event-related without extracting entities
// @Tags Extraction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RelatednessRequest true "Text to classify"
// @Success 200 {object} extraction.RelatednessResult "Relatedness predicates"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Router /extract/relatedness [post]
func (h *ExtractionHandler) Relatedness(c *gin.Context) {
	var req RelatednessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.extractionService.Relatedness(req.Text))
}

// RegisterExtractionRoutes registers all extraction-related routes
func (h *ExtractionHandler) RegisterExtractionRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/extract")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.POST("", h.Extract)
		protected.POST("/relatedness", h.Relatedness)
	}
}
