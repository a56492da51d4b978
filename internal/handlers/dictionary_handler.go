package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/dictionary"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// DictionaryHandler handles user dictionary HTTP requests
type DictionaryHandler struct {
	dictionaryService dictionary.DictionaryService
	logger            *Logger.Logger
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictionaryService dictionary.DictionaryService, logger *Logger.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryService: dictionaryService,
		logger:            logger,
	}
}

// GetDictionary handles reading the whole dictionary
// @Summary Get the user dictionary
// @Description Get every category with its terms
// @Tags Dictionary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dictionary.DictionaryResponse "Dictionary document"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dictionary [get]
func (h *DictionaryHandler) GetDictionary(c *gin.Context) {
	resp, err := h.dictionaryService.GetDictionary(c.Request.Context())
	if err != nil {
		h.logger.Errorf("get dictionary error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddTerm handles adding a term to the dictionary
// @Summary Add a dictionary term
// @Description Add a term with its definition under a category, creating the category when needed
// @Tags Dictionary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dictionary.AddTermRequest true "Term data"
// @Success 201 {object} TermCreatedResponse "Term added successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dictionary/terms [post]
func (h *DictionaryHandler) AddTerm(c *gin.Context) {
	var req dictionary.AddTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	term, err := h.dictionaryService.AddTerm(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorf("add term error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, TermCreatedResponse{
		Message: "Term added successfully",
		Term:    *term,
	})
}

// GetTerm handles reading a single term
// @Summary Get a dictionary term
// @Description Get one term by category and name
// @Tags Dictionary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category name"
// @Param term path string true "Term"
// @Success 200 {object} TermDetailResponse "Term data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Term not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dictionary/terms/{category}/{term} [get]
func (h *DictionaryHandler) GetTerm(c *gin.Context) {
	term, err := h.dictionaryService.GetTerm(c.Request.Context(), c.Param("category"), c.Param("term"))
	if err != nil {
		switch err {
		case dictionary.ErrTermNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Term not found"})
		default:
			h.logger.Errorf("get term error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TermDetailResponse{Term: *term})
}

// RemoveTerm handles removing a term
// @Summary Remove a dictionary term
// @Description Remove one term by category and name
// @Tags Dictionary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category name"
// @Param term path string true "Term"
// @Success 200 {object} SuccessResponse "Term removed successfully"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Term not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dictionary/terms/{category}/{term} [delete]
func (h *DictionaryHandler) RemoveTerm(c *gin.Context) {
	if err := h.dictionaryService.RemoveTerm(c.Request.Context(), c.Param("category"), c.Param("term")); err != nil {
		switch err {
		case dictionary.ErrTermNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Term not found"})
		default:
			h.logger.Errorf("remove term error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Term removed successfully"})
}

// ApplyCorrections handles correcting a piece of text
// @Summary Apply dictionary corrections
// @Description Rewrite known terms in the text to their definitions, longest terms first
// @Tags Dictionary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ApplyCorrectionsRequest true "Text to correct"
// @Success 200 {object} dictionary.CorrectionResponse "Corrected text with the replacement count"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dictionary/apply [post]
func (h *DictionaryHandler) ApplyCorrections(c *gin.Context) {
	var req ApplyCorrectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.dictionaryService.ApplyCorrections(c.Request.Context(), req.Text)
	if err != nil {
		h.logger.Errorf("apply corrections error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterDictionaryRoutes registers all dictionary-related routes
func (h *DictionaryHandler) RegisterDictionaryRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/dictionary")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.GET("", h.GetDictionary)
		protected.POST("/terms", h.AddTerm)
		protected.GET("/terms/:category/:term", h.GetTerm)
		protected.DELETE("/terms/:category/:term", h.RemoveTerm)
		protected.POST("/apply", h.ApplyCorrections)
	}
}
