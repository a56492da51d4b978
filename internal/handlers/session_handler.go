package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// SessionHandler handles capture session HTTP requests
type SessionHandler struct {
	sessionService session.SessionService
	logger         *Logger.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService session.SessionService, logger *Logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// OpenSession handles opening a capture session
// @Summary Open a capture session
// @Description Verify the access password (when one is configured) and issue a session token
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body session.OpenSessionRequest false "Access password when one is configured"
// @Success 201 {object} SessionOpenedResponse "Session opened successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Invalid password"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions [post]
func (h *SessionHandler) OpenSession(c *gin.Context) {
	// The body is optional: no password configured means an empty open works.
	var req session.OpenSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid request data",
				Details: err.Error(),
			})
			return
		}
	}

	resp, err := h.sessionService.OpenSession(c.Request.Context(), req)
	if err != nil {
		switch err {
		case session.ErrInvalidPassword:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
		default:
			h.logger.Errorf("open session error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, SessionOpenedResponse{
		Message:   "Session opened successfully",
		Session:   resp.Session,
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
	})
}

// GetCurrentSession handles getting the session behind the token
// @Summary Get current session
// @Description Get the capture session the bearer token belongs to
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionStatusResponse "Session data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/current [get]
func (h *SessionHandler) GetCurrentSession(c *gin.Context) {
	info, ok := ExtractSessionInfo(c)
	if !ok {
		return
	}

	resp, err := h.sessionService.GetSession(c.Request.Context(), info.SessionID)
	if err != nil {
		switch err {
		case session.ErrSessionNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		default:
			h.logger.Errorf("get session error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SessionStatusResponse{Session: resp})
}

// CloseCurrentSession handles closing the session behind the token
// @Summary Close current session
// @Description Close the capture session and drop its utterance timeline
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse "Session closed successfully"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/current [delete]
func (h *SessionHandler) CloseCurrentSession(c *gin.Context) {
	info, ok := ExtractSessionInfo(c)
	if !ok {
		return
	}

	if err := h.sessionService.CloseSession(c.Request.Context(), info.SessionID); err != nil {
		switch err {
		case session.ErrSessionNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		default:
			h.logger.Errorf("close session error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Session closed successfully"})
}

// GetSessionHistory handles reading the recent utterance timeline
// @Summary Get session history
// @Description Get the most recent utterances recorded for the current session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of utterances to return" default(20)
// @Success 200 {object} SessionHistoryResponse "Recent utterances, newest first"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/current/history [get]
func (h *SessionHandler) GetSessionHistory(c *gin.Context) {
	info, ok := ExtractSessionInfo(c)
	if !ok {
		return
	}

	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = 20
	}

	utterances, err := h.sessionService.History(c.Request.Context(), info.SessionID, limit)
	if err != nil {
		h.logger.Errorf("session history error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, SessionHistoryResponse{Utterances: utterances})
}

// RegisterSessionRoutes registers all session-related routes
func (h *SessionHandler) RegisterSessionRoutes(r *gin.RouterGroup) {
	sessions := r.Group("/sessions")
	sessions.POST("", h.OpenSession)

	protected := sessions.Group("")
	protected.Use(AuthMiddleware(h.sessionService, h.logger))
	{
		protected.GET("/current", h.GetCurrentSession)
		protected.DELETE("/current", h.CloseCurrentSession)
		protected.GET("/current/history", h.GetSessionHistory)
	}
}
