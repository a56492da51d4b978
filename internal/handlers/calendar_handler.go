package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/calendarsync"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// CalendarHandler handles whole-calendar sync HTTP requests
type CalendarHandler struct {
	syncService calendarsync.SyncService
	logger      *Logger.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(syncService calendarsync.SyncService, logger *Logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		syncService: syncService,
		logger:      logger,
	}
}

// SyncAll handles pushing every unsynced task and event
// @Summary Push unsynced records to Google Calendar
// @Description Mirror every unsynced dated task and event to Google Calendar. Per-record failures are reported inside the report.
// @Tags Calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CalendarSyncResponse "Sync report"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 503 {object} ErrorResponse "Google Calendar is not linked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /calendar/sync [post]
func (h *CalendarHandler) SyncAll(c *gin.Context) {
	report, err := h.syncService.PushAll(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, calendarsync.ErrNotLinked):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: calendarsync.ErrNotLinked.Error()})
		default:
			h.logger.Errorf("calendar sync error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CalendarSyncResponse{
		Message: "Calendar sync completed",
		Report:  report,
	})
}

// Import handles pulling upcoming remote events
// @Summary Import upcoming Google Calendar events
// @Description Pull upcoming events from Google Calendar and store the unseen ones locally
// @Tags Calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CalendarImportResponse "Import report"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 503 {object} ErrorResponse "Google Calendar is not linked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /calendar/import [post]
func (h *CalendarHandler) Import(c *gin.Context) {
	report, err := h.syncService.Import(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, calendarsync.ErrNotLinked):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: calendarsync.ErrNotLinked.Error()})
		default:
			h.logger.Errorf("calendar import error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CalendarImportResponse{
		Message: "Calendar import completed",
		Report:  report,
	})
}

// RegisterCalendarRoutes registers all calendar-related routes
func (h *CalendarHandler) RegisterCalendarRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/calendar")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.POST("/sync", h.SyncAll)
		protected.POST("/import", h.Import)
	}
}
